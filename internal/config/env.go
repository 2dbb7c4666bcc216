// This file contains the environment variable overrides.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// Aliased flags list both the short and long form.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride maps an env key (without the EXACTSUM_ prefix) to the flag
// name(s) it shadows and a function applying the value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func intOverride(key, flagName string, field func(*AppConfig) *int) envOverride {
	return envOverride{key, []string{flagName}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			*field(c) = parsed
		}
	}}
}

func boolOverride(key string, flags []string, field func(*AppConfig) *bool) envOverride {
	return envOverride{key, flags, func(c *AppConfig, v string) {
		*field(c) = parseBoolEnv(v, *field(c))
	}}
}

// envOverrides is the declarative table of environment overrides.
var envOverrides = []envOverride{
	// Numeric overrides
	intOverride("WORKERS", "workers", func(c *AppConfig) *int { return &c.Workers }),
	intOverride("N", "n", func(c *AppConfig) *int { return &c.Count }),
	intOverride("KARATSUBA_THRESHOLD", "karatsuba-threshold", func(c *AppConfig) *int { return &c.KaratsubaThreshold }),
	intOverride("TOOM_THRESHOLD", "toom-threshold", func(c *AppConfig) *int { return &c.ToomThreshold }),
	intOverride("KARATSUBA_SQUARE_THRESHOLD", "karatsuba-square-threshold", func(c *AppConfig) *int { return &c.KaratsubaSquareThreshold }),
	intOverride("TOOM_SQUARE_THRESHOLD", "toom-square-threshold", func(c *AppConfig) *int { return &c.ToomSquareThreshold }),
	intOverride("BZ_THRESHOLD", "bz-threshold", func(c *AppConfig) *int { return &c.BZThreshold }),
	intOverride("BZ_OFFSET", "bz-offset", func(c *AppConfig) *int { return &c.BZOffset }),
	intOverride("MAX_WORDS", "max-words", func(c *AppConfig) *int { return &c.MaxWords }),
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"OP", []string{"op"}, func(c *AppConfig, v string) { c.Op = v }},
	{"INPUT", []string{"input", "i"}, func(c *AppConfig, v string) { c.Input = v }},
	{"GENERATE", []string{"generate"}, func(c *AppConfig, v string) { c.Generate = v }},
	{"COMPARE", []string{"compare"}, func(c *AppConfig, v string) { c.Compare = v }},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, v string) { c.MetricsFile = v }},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) { c.OutputFile = v }},

	// Boolean overrides
	boolOverride("PARTIAL", []string{"partial"}, func(c *AppConfig) *bool { return &c.Partial }),
	boolOverride("QUIET", []string{"quiet", "q"}, func(c *AppConfig) *bool { return &c.Quiet }),
	boolOverride("VERBOSE", []string{"verbose", "v"}, func(c *AppConfig) *bool { return &c.Verbose }),
	boolOverride("NO_COLOR", []string{"no-color"}, func(c *AppConfig) *bool { return &c.NoColor }),
}

// parseBoolEnv accepts "true", "1", "yes" and "false", "0", "no"
// (case-insensitive). Anything else keeps defaultVal.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment values for every flag not set on
// the command line, giving CLI flags > environment > defaults.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}

// Package config parses the exactsum command line and environment into an
// AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/agbru/exactsum/internal/accumulate"
	"github.com/agbru/exactsum/internal/dataset"
	apperrors "github.com/agbru/exactsum/internal/errors"
)

// EnvPrefix prefixes every environment override (e.g., EXACTSUM_OP).
const EnvPrefix = "EXACTSUM_"

// DefaultTimeout bounds a whole run.
const DefaultTimeout = 5 * time.Minute

// AppConfig holds the resolved configuration of one run.
type AppConfig struct {
	// Op is the reduction to compute.
	Op string
	// Input is the file to read values from. Empty or "-" reads stdin.
	Input string
	// Generate, when set, replaces the input with generated values.
	Generate string
	// Count is the number of generated values.
	Count int
	// Seed seeds the generator.
	Seed uint64
	// Partial prints the running value after every element.
	Partial bool
	// Compare is a comma-separated list of accumulators, or "all".
	Compare string
	// Workers bounds the goroutines of the parallel exact reduction.
	Workers int
	// Timeout bounds the run.
	Timeout time.Duration
	// MetricsFile, when set, receives Prometheus metrics in text format.
	MetricsFile string
	// OutputFile, when set, receives the report.
	OutputFile string
	Quiet      bool
	Verbose    bool
	NoColor    bool

	// Arithmetic thresholds, in 32-bit words. Zero keeps the default.
	KaratsubaThreshold       int
	ToomThreshold            int
	KaratsubaSquareThreshold int
	ToomSquareThreshold      int
	BZThreshold              int
	BZOffset                 int
	MaxWords                 int
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Flags take precedence over EXACTSUM_* environment variables, which take
// precedence over defaults. Usage and flag errors go to errorWriter.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAccumulators []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	config := AppConfig{}

	ops := make([]string, 0, len(accumulate.Ops()))
	for _, op := range accumulate.Ops() {
		ops = append(ops, string(op))
	}
	dists := make([]string, 0, len(dataset.Distributions()))
	for _, d := range dataset.Distributions() {
		dists = append(dists, string(d))
	}

	fs.StringVar(&config.Op, "op", string(accumulate.OpSum), fmt.Sprintf("Reduction to compute (%s).", strings.Join(ops, ", ")))
	fs.StringVar(&config.Input, "input", "", "Input file, one value (or two for binary ops) per line. Defaults to stdin.")
	fs.StringVar(&config.Input, "i", "", "Input file (shorthand).")
	fs.StringVar(&config.Generate, "generate", "", fmt.Sprintf("Generate input from a distribution (%s).", strings.Join(dists, ", ")))
	fs.IntVar(&config.Count, "n", 100000, "Number of values to generate.")
	fs.Uint64Var(&config.Seed, "seed", 1, "Generator seed.")
	fs.BoolVar(&config.Partial, "partial", false, "Print the running value after every element.")
	fs.StringVar(&config.Compare, "compare", accumulate.ExactName, fmt.Sprintf("Accumulators to compare, comma-separated or 'all' (%s).", strings.Join(availableAccumulators, ", ")))
	fs.IntVar(&config.Workers, "workers", 0, "Goroutines for the parallel exact reduction (0 = number of CPUs).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum run time.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file.")
	fs.StringVar(&config.OutputFile, "output", "", "Also write the report to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the result.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print exact values and memory statistics.")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.IntVar(&config.KaratsubaThreshold, "karatsuba-threshold", 0, "Operand words at which multiplication uses Karatsuba.")
	fs.IntVar(&config.ToomThreshold, "toom-threshold", 0, "Operand words at which multiplication uses Toom-Cook-3.")
	fs.IntVar(&config.KaratsubaSquareThreshold, "karatsuba-square-threshold", 0, "Operand words at which squaring uses Karatsuba.")
	fs.IntVar(&config.ToomSquareThreshold, "toom-square-threshold", 0, "Operand words at which squaring uses Toom-Cook-3.")
	fs.IntVar(&config.BZThreshold, "bz-threshold", 0, "Divisor words at which division uses Burnikel-Ziegler.")
	fs.IntVar(&config.BZOffset, "bz-offset", 0, "Minimum dividend excess, in words, for Burnikel-Ziegler.")
	fs.IntVar(&config.MaxWords, "max-words", 0, "Largest supported magnitude, in words.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	applyEnvOverrides(&config, fs)

	if err := config.Validate(availableAccumulators); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate(availableAccumulators []string) error {
	if _, err := accumulate.ParseOp(c.Op); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be a strictly positive duration")
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers must not be negative")
	}
	if c.Generate != "" {
		if !slices.Contains(dataset.Distributions(), dataset.Distribution(c.Generate)) {
			return apperrors.NewConfigError("unknown distribution %q", c.Generate)
		}
		if c.Count < 0 {
			return apperrors.NewConfigError("n must not be negative")
		}
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("quiet and verbose are mutually exclusive")
	}
	names := c.Accumulators(availableAccumulators)
	if len(names) == 0 {
		return apperrors.NewConfigError("no accumulator selected")
	}
	for _, name := range names {
		if !slices.Contains(availableAccumulators, name) {
			return apperrors.NewConfigError("unknown accumulator %q (available: %s)", name, strings.Join(availableAccumulators, ", "))
		}
	}
	if _, err := ToThresholds(c); err != nil {
		return err
	}
	return nil
}

// Accumulators expands Compare into a list of names. "all" selects every
// available accumulator. Duplicates are dropped, order is kept.
func (c AppConfig) Accumulators(available []string) []string {
	if strings.TrimSpace(c.Compare) == "all" {
		return slices.Clone(available)
	}
	var names []string
	for _, part := range strings.Split(c.Compare, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name != "" && !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

// Columns returns how many values each input line must hold.
func (c AppConfig) Columns() int {
	if accumulate.Op(c.Op).Binary() {
		return 2
	}
	return 1
}

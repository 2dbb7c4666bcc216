package cli

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/agbru/exactsum/internal/config"
	"github.com/agbru/exactsum/internal/natural"
)

var ansi = regexp.MustCompile("\033\\[[0-9;]*m")

func stripANSI(s string) string { return ansi.ReplaceAllString(s, "") }

func TestPrintExecutionConfig(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	cfg := config.AppConfig{
		Op:      "l2",
		Timeout: time.Minute,
		Workers: 4,
	}

	PrintExecutionConfig(cfg, 12345, natural.DefaultThresholds(), &buf)

	output := stripANSI(buf.String())
	for _, want := range []string{"l2", "12,345", "1m0s", "Karatsuba=80", "Burnikel-Ziegler=80"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got:\n%s", want, output)
		}
	}
}

func TestPrintExecutionMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"single", []string{"exact"}, "Single run with the"},
		{"comparison", []string{"exact", "naive", "kahan"}, "Parallel comparison of 3 accumulators"},
		{"none", nil, "No accumulator selected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			PrintExecutionMode(tt.names, &buf)
			if !strings.Contains(stripANSI(buf.String()), tt.want) {
				t.Errorf("output %q should contain %q", buf.String(), tt.want)
			}
		})
	}
}

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/exactsum/internal/errors"
	"github.com/agbru/exactsum/internal/metrics"
	"github.com/agbru/exactsum/internal/orchestration"
	"github.com/agbru/exactsum/internal/sysmon"
)

func TestPresentComparisonTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(sampleResults(), &buf)

	out := stripANSI(buf.String())
	for _, want := range []string{"Comparison Summary", "Accumulator", "exact", "naive", "approximate", "Failure (boom)", "Success", "< 1µs"} {
		if !strings.Contains(out, want) {
			t.Errorf("table should contain %q:\n%s", want, out)
		}
	}
}

func TestComparisonRow(t *testing.T) {
	t.Parallel()
	row := comparisonRow(orchestration.ComparisonResult{Name: "kahan", Value: 1.5, ULPs: 0, Duration: 2 * time.Millisecond})
	want := []string{"kahan", "approximate", "1.5", "0", "2ms", "Success"}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, row[i], want[i])
		}
	}
}

func TestPresentResult(t *testing.T) {
	t.Parallel()
	res := orchestration.ComparisonResult{Name: "exact", Exact: true, Value: 0.75, Text: "0x3p-2"}

	var plain, verbose bytes.Buffer
	CLIResultPresenter{}.PresentResult(res, orchestration.PresentationOptions{Op: "sum", Rows: 1500}, &plain)
	CLIResultPresenter{}.PresentResult(res, orchestration.PresentationOptions{Op: "sum", Rows: 1500, Verbose: true}, &verbose)

	out := stripANSI(plain.String())
	for _, want := range []string{"sum(1,500 values) = 0.75", "0x1.8p-01", "exact"} {
		if !strings.Contains(out, want) {
			t.Errorf("result should contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0x3p-2") {
		t.Error("exact rendering should only appear in verbose output")
	}
	if !strings.Contains(stripANSI(verbose.String()), "Exact value:  0x3p-2") {
		t.Errorf("verbose output should show the exact value:\n%s", verbose.String())
	}
}

func TestPresentPartials(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentPartials("exact", []float64{1, 5}, &buf)
	if got, want := buf.String(), "# exact partial values (2)\n1 1\n2 5\n"; got != want {
		t.Errorf("PresentPartials() = %q, want %q", got, want)
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	code := CLIResultPresenter{}.HandleError(context.DeadlineExceeded, time.Second, &buf)
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("HandleError() = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayMemoryStats(metrics.MemoryDelta{PeakHeap: 2048, Allocated: 1 << 20, Allocations: 1234, GCCycles: 2, PauseTotalNs: 1500000}, &buf)
	out := buf.String()
	for _, want := range []string{"2.0 KiB", "1.0 MiB", "1,234", "GC cycles:       2", "1.50ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("memory stats should contain %q:\n%s", want, out)
		}
	}
}

func TestDisplaySystemStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplaySystemStats(sysmon.Stats{CPUPercent: 12.5, MemPercent: 40, MemAvailable: 3 << 30}, &buf)
	out := buf.String()
	for _, want := range []string{"12.5%", "40.0% used", "3.0 GiB available"} {
		if !strings.Contains(out, want) {
			t.Errorf("system stats should contain %q:\n%s", want, out)
		}
	}
}

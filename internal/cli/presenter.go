package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	apperrors "github.com/agbru/exactsum/internal/errors"
	"github.com/agbru/exactsum/internal/format"
	"github.com/agbru/exactsum/internal/metrics"
	"github.com/agbru/exactsum/internal/orchestration"
	"github.com/agbru/exactsum/internal/sysmon"
	"github.com/agbru/exactsum/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing runs.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numAccumulators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numAccumulators, out)
}

// CLIColorProvider exposes the active theme to apperrors.
type CLIColorProvider struct{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// CLIResultPresenter implements orchestration.ResultPresenter and
// orchestration.ErrorHandler for terminal output.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable renders one row per accumulator with its value,
// its distance from the exact reference and its duration.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.ComparisonResult, out io.Writer) {
	styles := ui.GetTableStyles()

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, comparisonRow(res))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Dim).
		Headers("Accumulator", "Kind", "Value", "Error", "Duration", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			res := results[row]
			switch col {
			case 0:
				return styles.Name
			case 2:
				return styles.Value
			case 3, 5:
				if res.Err != nil || (res.Exact && res.ULPs != 0 && !math.IsNaN(res.ULPs)) {
					return styles.Bad
				}
				return styles.Good
			}
			return styles.Dim
		})

	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")
	fmt.Fprintln(out, t.Render())
}

func comparisonRow(res orchestration.ComparisonResult) []string {
	kind := "approximate"
	if res.Exact {
		kind = "exact"
	}
	duration := format.FormatExecutionDuration(res.Duration)
	if res.Duration == 0 {
		duration = "< 1µs"
	}
	if res.Err != nil {
		return []string{res.Name, kind, "-", "-", duration, "Failure (" + res.Err.Error() + ")"}
	}
	return []string{res.Name, kind, format.FormatFloat(res.Value), format.FormatULPs(res.ULPs), duration, "Success"}
}

// PresentResult displays the reference result. Verbose output adds the
// accumulator's native rendering.
func (CLIResultPresenter) PresentResult(result orchestration.ComparisonResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n--- Result ---\n")
	fmt.Fprintf(out, "%s(%s values) = %s%s%s\n",
		opts.Op, humanize.Comma(int64(opts.Rows)), ui.ColorBold(), format.FormatFloat(result.Value), ui.ColorReset())
	fmt.Fprintf(out, "Hex:          %s\n", format.FormatHexFloat(result.Value))
	fmt.Fprintf(out, "Accumulator:  %s%s%s\n", ui.ColorGreen(), result.Name, ui.ColorReset())
	fmt.Fprintf(out, "Time:         %s\n", format.FormatExecutionDuration(result.Duration))
	if opts.Verbose && result.Text != "" {
		fmt.Fprintf(out, "Exact value:  %s%s%s\n", ui.ColorCyan(), result.Text, ui.ColorReset())
	}
}

// PresentPartials prints one running value per line, indexed from 1.
func (CLIResultPresenter) PresentPartials(name string, values []float64, out io.Writer) {
	fmt.Fprintf(out, "# %s partial values (%s)\n", name, humanize.Comma(int64(len(values))))
	width := len(strconv.Itoa(len(values)))
	for i, v := range values {
		fmt.Fprintf(out, "%*d %s\n", width, i+1, format.FormatFloat(v))
	}
}

// HandleError reports err and returns the matching exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// DisplayMemoryStats shows what a run allocated.
func DisplayMemoryStats(delta metrics.MemoryDelta, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", humanize.IBytes(delta.PeakHeap))
	fmt.Fprintf(out, "  Total allocated: %s\n", humanize.IBytes(delta.Allocated))
	fmt.Fprintf(out, "  Allocations:     %s\n", humanize.Comma(int64(delta.Allocations)))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.GCCycles)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(delta.PauseTotalNs)/1e6)
}

// DisplaySystemStats shows the host load sampled after a run.
func DisplaySystemStats(stats sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "  Host CPU:        %.1f%%\n", stats.CPUPercent)
	fmt.Fprintf(out, "  Host memory:     %.1f%% used, %s available\n", stats.MemPercent, humanize.IBytes(stats.MemAvailable))
}

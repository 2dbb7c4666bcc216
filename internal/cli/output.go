// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayQuietResult], [DisplayProgress], [DisplayMemoryStats].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteReportToFile], [WritePartialsToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/agbru/exactsum/internal/format"
	"github.com/agbru/exactsum/internal/orchestration"
	"github.com/agbru/exactsum/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
	// Quiet mode prints only the result value.
	Quiet bool
	// Verbose adds the exact rendering of the reference value.
	Verbose bool
}

func createOutputFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, nil
}

// WriteReportToFile writes a comparison report as a Markdown table. An
// empty path writes nothing.
func WriteReportToFile(path string, results []orchestration.ComparisonResult, opts orchestration.PresentationOptions) (err error) {
	if path == "" {
		return nil
	}
	file, err := createOutputFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	fmt.Fprintf(file, "# exactsum report\n\n")
	fmt.Fprintf(file, "- Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "- Operation: %s\n", opts.Op)
	fmt.Fprintf(file, "- Values: %d\n\n", opts.Rows)

	table := tablewriter.NewWriter(file)
	table.SetHeader([]string{"Accumulator", "Kind", "Value", "Hex", "ULPs", "Duration", "Status"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoFormatHeaders(false)
	for _, res := range results {
		kind := "approximate"
		if res.Exact {
			kind = "exact"
		}
		if res.Err != nil {
			table.Append([]string{res.Name, kind, "-", "-", "-", res.Duration.String(), res.Err.Error()})
			continue
		}
		table.Append([]string{
			res.Name, kind,
			format.FormatFloat(res.Value), format.FormatHexFloat(res.Value),
			format.FormatULPs(res.ULPs), res.Duration.String(), "ok",
		})
	}
	table.Render()

	for _, res := range results {
		if res.Exact && res.Err == nil && res.Text != "" {
			fmt.Fprintf(file, "\n%s exact value: `%s`\n", res.Name, res.Text)
		}
	}
	return nil
}

// WritePartialsToFile writes one running value per line. An empty path
// writes nothing.
func WritePartialsToFile(path, name string, values []float64) (err error) {
	if path == "" {
		return nil
	}
	file, err := createOutputFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	fmt.Fprintf(file, "# %s partial values\n", name)
	for _, v := range values {
		fmt.Fprintln(file, format.FormatFloat(v))
	}
	return nil
}

// FormatQuietResult formats a result for quiet mode: the value alone,
// suitable for scripting.
func FormatQuietResult(result orchestration.ComparisonResult) string {
	return format.FormatFloat(result.Value)
}

// DisplayQuietResult outputs a result in quiet mode.
func DisplayQuietResult(out io.Writer, result orchestration.ComparisonResult) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// DisplaySaved confirms that a report was written.
func DisplaySaved(out io.Writer, path string) {
	fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s%s\n",
		ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
}

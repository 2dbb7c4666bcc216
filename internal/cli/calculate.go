package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/dustin/go-humanize"

	"github.com/agbru/exactsum/internal/config"
	"github.com/agbru/exactsum/internal/natural"
	"github.com/agbru/exactsum/internal/ui"
)

// PrintExecutionConfig displays the operation, input size, environment
// and the arithmetic thresholds in effect.
func PrintExecutionConfig(cfg config.AppConfig, rows int, th natural.Thresholds, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Computing %s%s%s over %s%s%s values with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Op, ui.ColorReset(),
		ui.ColorCyan(), humanize.Comma(int64(rows)), ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, %s%d%s workers.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset(),
		ui.ColorCyan(), cfg.Workers, ui.ColorReset())
	fmt.Fprintf(out, "Thresholds (words): Karatsuba=%s%d%s, Toom-3=%s%d%s, Burnikel-Ziegler=%s%d%s.\n",
		ui.ColorCyan(), th.KaratsubaMul, ui.ColorReset(),
		ui.ColorCyan(), th.ToomCookMul, ui.ColorReset(),
		ui.ColorCyan(), th.BurnikelZiegler, ui.ColorReset())
}

// PrintExecutionMode displays whether one accumulator runs or several
// are compared.
func PrintExecutionMode(names []string, out io.Writer) {
	var modeDesc string
	switch len(names) {
	case 0:
		modeDesc = "No accumulator selected"
	case 1:
		modeDesc = fmt.Sprintf("Single run with the %s%s%s accumulator",
			ui.ColorGreen(), names[0], ui.ColorReset())
	default:
		modeDesc = fmt.Sprintf("Parallel comparison of %d accumulators", len(names))
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

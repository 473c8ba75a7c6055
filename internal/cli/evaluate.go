package cli

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/agbru/polycalc/internal/config"
	"github.com/agbru/polycalc/internal/polynomial"
	"github.com/agbru/polycalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the polynomial, the evaluation point, the timeout, and
// environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - coeffs: The resolved coefficient sequence.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, coeffs polynomial.Coefficients, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Evaluating %sp(x) = %s%s at x = %s%g%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), coeffs, ui.ColorReset(),
		ui.ColorYellow(), cfg.X, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Degree: %s%d%s (%d coefficients).\n",
		ui.ColorCyan(), coeffs.Degree(), ui.ColorReset(), len(coeffs))
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single algorithm vs
// comparison).
//
// Parameters:
//   - evaluators: The slice of evaluators that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(evaluators []polynomial.Evaluator, out io.Writer) {
	var modeDesc string
	if len(evaluators) > 1 {
		modeDesc = "Parallel comparison of all algorithms"
	} else {
		modeDesc = fmt.Sprintf("Single evaluation with the %s%s%s algorithm",
			ui.ColorGreen(), evaluators[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

// DisplayResult displays the final evaluation result.
//
// Parameters:
//   - value: The computed polynomial value.
//   - coeffs: The evaluated polynomial.
//   - x: The evaluation point.
//   - algo: The algorithm name that produced the value.
//   - duration: The evaluation duration.
//   - verbose: When true, also prints the full-precision value and input.
//   - out: The writer for standard output.
func DisplayResult(value float64, coeffs polynomial.Coefficients, x float64, algo string, duration time.Duration, verbose bool, out io.Writer) {
	fmt.Fprintf(out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Algorithm: %s%s%s\n", ui.ColorCyan(), algo, ui.ColorReset())
	fmt.Fprintf(out, "  Time:      %s%s%s\n", ui.ColorGreen(), FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(out, "  p(%g) = %s%.12g%s\n", x, ui.ColorGreen(), value, ui.ColorReset())

	if verbose {
		fmt.Fprintf(out, "\n%sDetails:%s\n", ui.ColorBold(), ui.ColorReset())
		fmt.Fprintf(out, "  Polynomial:     %s\n", coeffs)
		fmt.Fprintf(out, "  Coefficients:   %v\n", []float64(coeffs))
		fmt.Fprintf(out, "  Full precision: %.17g\n", value)
	}
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line value suitable for scripting.
//
// Parameters:
//   - value: The computed polynomial value.
//
// Returns:
//   - string: The formatted result string.
func FormatQuietResult(value float64) string {
	return fmt.Sprintf("%.17g", value)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
//
// Parameters:
//   - out: The output writer.
//   - value: The computed polynomial value.
func DisplayQuietResult(out io.Writer, value float64) {
	fmt.Fprintln(out, FormatQuietResult(value))
}

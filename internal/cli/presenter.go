package cli

import (
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/polycalc/internal/errors"
	"github.com/agbru/polycalc/internal/orchestration"
	"github.com/agbru/polycalc/internal/ui"
)

// CLIColorProvider implements apperrors.ColorProvider with the active theme.
type CLIColorProvider struct{}

// Verify interface compliance.
var _ apperrors.ColorProvider = CLIColorProvider{}

// Red returns the red color code.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the yellow color code.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the reset color code.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for evaluation results in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays the comparison summary table with
// algorithm names, values, durations, and status in a formatted tabular
// layout. Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.EvaluationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	// Find the maximum column widths for proper alignment
	maxNameLen := 9     // "Algorithm" header length
	maxValueLen := 5    // "Value" header length
	maxDurationLen := 8 // "Duration" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		if res.Err == nil {
			if l := len(formatValue(res.Value)); l > maxValueLen {
				maxValueLen = l
			}
		}
		if l := len(formatTableDuration(res.Duration)); l > maxDurationLen {
			maxDurationLen = l
		}
	}

	// Print header with proper padding
	fmt.Fprintf(out, "%sAlgorithm%s%s   %sValue%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-9),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxValueLen-5),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	// Print each result row
	for _, res := range results {
		var status string
		value := ""
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
			value = formatValue(res.Value)
		}
		duration := formatTableDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorGreen(), value, ui.ColorReset(), padRight("", maxValueLen-len(value)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// formatValue renders a polynomial value for the comparison table.
func formatValue(v float64) string {
	return fmt.Sprintf("%.12g", v)
}

// formatTableDuration renders a duration for the comparison table, flooring
// sub-resolution timings.
func formatTableDuration(d time.Duration) string {
	if d == 0 {
		return "< 1ns"
	}
	return FormatExecutionDuration(d)
}

// padRight returns s followed by the given number of spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the final evaluation result using the CLI's
// DisplayResult function.
func (CLIResultPresenter) PresentResult(result orchestration.EvaluationResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result.Value, opts.Coefficients, opts.X, result.Name, result.Duration, opts.Verbose, out)
}

// HandleError handles evaluation errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleEvaluationError(err, duration, out, CLIColorProvider{})
}

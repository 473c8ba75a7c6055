package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/agbru/polycalc/internal/bench"
	"github.com/agbru/polycalc/internal/polynomial"
	"github.com/agbru/polycalc/internal/sysmon"
	"github.com/agbru/polycalc/internal/ui"
)

// RunBenchmark executes a benchmark campaign with spinner-based progress
// reporting and writes the final report.
//
// Parameters:
//   - ctx: The context for cancellation between trials.
//   - evaluators: The evaluators to measure.
//   - opts: The campaign parameters.
//   - out: The writer for the report.
//
// Returns:
//   - error: An error if the campaign could not complete.
func RunBenchmark(ctx context.Context, evaluators []polynomial.Evaluator, opts bench.Options, out io.Writer) error {
	s := NewSpinner()
	s.Start()
	defer s.Stop()

	progress := func(name string, index, total int) {
		s.UpdateSuffix(fmt.Sprintf(" Benchmarking %s (%d/%d)...", name, index+1, total))
	}

	report, err := bench.Run(ctx, evaluators, opts, progress)
	if err != nil {
		return err
	}

	s.Stop()
	DisplayBenchReport(report, out)
	return nil
}

// DisplayBenchReport writes a benchmark campaign report as a formatted table.
// Evaluators appear fastest first; the winner's row is highlighted.
//
// Parameters:
//   - report: The campaign report to display.
//   - out: The writer for the report.
func DisplayBenchReport(report *bench.Report, out io.Writer) {
	fmt.Fprintf(out, "\n%s--- Benchmark Report ---%s\n", ui.ColorBold(), ui.ColorReset())
	displayBenchHeader(report, out)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tTRIALS\tMIN\tMEDIAN\tMEAN\tMAX\tALLOC/TRIAL\tSTATUS")
	for i, algo := range report.Algorithms {
		if algo.Err != nil {
			fmt.Fprintf(w, "%s\t%d\t-\t-\t-\t-\t-\tfailed: %v\n", algo.Name, algo.Trials, algo.Err)
			continue
		}
		status := "ok"
		if i == 0 {
			status = "ok (fastest)"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			algo.Name,
			algo.Trials,
			FormatExecutionDuration(algo.Min),
			FormatExecutionDuration(algo.Median),
			FormatExecutionDuration(algo.Mean),
			FormatExecutionDuration(algo.Max),
			formatAllocPerTrial(algo),
			status)
	}
	w.Flush()

	fmt.Fprintf(out, "\nTotal campaign time: %s%s%s\n",
		ui.ColorYellow(), FormatExecutionDuration(report.TotalDuration), ui.ColorReset())
}

// displayBenchHeader prints the campaign inputs and a system snapshot.
func displayBenchHeader(report *bench.Report, out io.Writer) {
	fmt.Fprintf(out, "Polynomial degree: %s%d%s, evaluation point: %s%g%s\n",
		ui.ColorCyan(), report.Coefficients.Degree(), ui.ColorReset(),
		ui.ColorCyan(), report.X, ui.ColorReset())

	stats := sysmon.Sample()
	fmt.Fprintf(out, "System: %d logical processors, CPU %.1f%%, memory %.0f/%.0f MiB (%.1f%%), load %.2f\n\n",
		runtime.NumCPU(), stats.CPUPercent, stats.MemUsedMB, stats.MemTotalMB, stats.MemPercent, stats.Load1)
}

// formatAllocPerTrial renders the average heap allocation of a single trial.
func formatAllocPerTrial(algo bench.AlgorithmReport) string {
	if algo.Trials == 0 {
		return "-"
	}
	bytesPerTrial := float64(algo.AllocBytes) / float64(algo.Trials)
	objectsPerTrial := float64(algo.AllocObjects) / float64(algo.Trials)
	return fmt.Sprintf("%.0f B / %.1f objs", bytesPerTrial, objectsPerTrial)
}

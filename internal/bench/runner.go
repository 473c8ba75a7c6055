package bench

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	apperrors "github.com/agbru/polycalc/internal/errors"
	"github.com/agbru/polycalc/internal/metrics"
	"github.com/agbru/polycalc/internal/polynomial"
)

const (
	// DefaultTrials is the campaign size used when the caller leaves
	// Options.Trials at zero.
	DefaultTrials = 10000

	// warmupFraction of the trial count is executed before measurement
	// starts, so first-call effects do not skew the minimum.
	warmupFraction = 100
	minWarmup      = 3
)

// Options configures a benchmark campaign.
type Options struct {
	// Trials is the number of measured evaluations per evaluator. Zero
	// selects DefaultTrials; zero is the only field treated as unset, since
	// a zero-trial campaign is meaningless while degree 0 and x = 0 are
	// legitimate inputs.
	Trials int
	// Degree is the degree of the generated polynomial. Must be
	// non-negative; 0 benchmarks a constant polynomial.
	Degree int
	// X is the evaluation point shared by every trial.
	X float64
	// Seed seeds the coefficient generator, making campaigns reproducible.
	Seed int64
}

// AlgorithmReport holds the measured statistics for one evaluator.
type AlgorithmReport struct {
	// Name is the evaluator's algorithm name.
	Name string
	// Trials is the number of measured evaluations.
	Trials int
	// Min, Median, Mean and Max summarize the per-trial durations.
	Min    time.Duration
	Median time.Duration
	Mean   time.Duration
	Max    time.Duration
	// AllocBytes and AllocObjects are the heap totals allocated across the
	// whole campaign for this evaluator.
	AllocBytes   uint64
	AllocObjects uint64
	// Value is the result of the final trial, kept for cross-checking.
	Value float64
	// Err is the first evaluation error, nil when every trial succeeded.
	Err error
}

// Report is the outcome of a full benchmark campaign.
type Report struct {
	// Coefficients is the generated input polynomial.
	Coefficients polynomial.Coefficients
	// X is the shared evaluation point.
	X float64
	// Algorithms holds one report per evaluator, sorted by median duration
	// with failed evaluators last.
	Algorithms []AlgorithmReport
	// TotalDuration is the wall-clock time of the whole campaign.
	TotalDuration time.Duration
}

// ProgressFunc receives campaign progress: the evaluator being measured and
// its position in the campaign. A nil ProgressFunc is valid and disables
// reporting.
type ProgressFunc func(name string, index, total int)

// Run executes a benchmark campaign over the given evaluators.
//
// Evaluators are measured one after another rather than concurrently, so the
// trials never contend with each other for cores.
//
// Parameters:
//   - ctx: The context for cancellation between trials.
//   - evaluators: The evaluators to measure.
//   - opts: The campaign parameters. A zero trial count falls back to
//     DefaultTrials; Degree and X are used exactly as given.
//   - progress: Optional progress callback, invoked once per evaluator.
//
// Returns:
//   - *Report: The campaign report.
//   - error: An InvalidInputError for unusable options, or the context error
//     if the campaign was canceled.
func Run(ctx context.Context, evaluators []polynomial.Evaluator, opts Options, progress ProgressFunc) (*Report, error) {
	opts = withDefaults(opts)
	if opts.Trials < 1 {
		return nil, apperrors.NewInvalidInputError("trials", "must be positive, got %d", opts.Trials)
	}
	if len(evaluators) == 0 {
		return nil, apperrors.NewInvalidInputError("evaluators", "at least one evaluator is required")
	}

	coeffs, err := polynomial.RandomCoefficients(opts.Degree, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return nil, err
	}

	report := &Report{Coefficients: coeffs, X: opts.X}
	campaignStart := time.Now()

	for i, evaluator := range evaluators {
		if progress != nil {
			progress(evaluator.Name(), i, len(evaluators))
		}
		algoReport, err := measure(ctx, evaluator, coeffs, opts.X, opts.Trials)
		if err != nil {
			return nil, err
		}
		report.Algorithms = append(report.Algorithms, algoReport)
	}

	report.TotalDuration = time.Since(campaignStart)
	sortAlgorithms(report.Algorithms)
	metrics.RecordBenchRun()
	return report, nil
}

// measure runs the warmup and measured trials for a single evaluator.
// A failing evaluator yields a report carrying the error instead of aborting
// the campaign; only context cancellation stops the run.
func measure(ctx context.Context, evaluator polynomial.Evaluator, coeffs polynomial.Coefficients, x float64, trials int) (AlgorithmReport, error) {
	report := AlgorithmReport{Name: evaluator.Name(), Trials: trials}

	warmup := trials / warmupFraction
	if warmup < minWarmup {
		warmup = minWarmup
	}
	for i := 0; i < warmup; i++ {
		if _, err := evaluator.Evaluate(ctx, coeffs, x); err != nil {
			if apperrors.IsContextError(err) {
				return report, err
			}
			report.Err = err
			return report, nil
		}
	}

	durations := make([]float64, 0, trials)
	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	for i := 0; i < trials; i++ {
		start := time.Now()
		value, err := evaluator.Evaluate(ctx, coeffs, x)
		elapsed := time.Since(start)

		if err != nil {
			if apperrors.IsContextError(err) {
				return report, err
			}
			report.Err = err
			return report, nil
		}
		report.Value = value
		durations = append(durations, float64(elapsed))
	}

	after := collector.Snapshot()
	report.AllocBytes, report.AllocObjects = after.AllocDelta(before)
	fillStatistics(&report, durations)
	return report, nil
}

// fillStatistics computes the duration summary of one evaluator's trials.
func fillStatistics(report *AlgorithmReport, durations []float64) {
	min, _ := stats.Min(durations)
	max, _ := stats.Max(durations)
	median, _ := stats.Median(durations)
	mean, _ := stats.Mean(durations)

	report.Min = time.Duration(min)
	report.Max = time.Duration(max)
	report.Median = time.Duration(median)
	report.Mean = time.Duration(mean)
}

// sortAlgorithms orders reports by median duration, failed evaluators last.
func sortAlgorithms(reports []AlgorithmReport) {
	sort.Slice(reports, func(i, j int) bool {
		if (reports[i].Err == nil) != (reports[j].Err == nil) {
			return reports[i].Err == nil
		}
		return reports[i].Median < reports[j].Median
	})
}

// withDefaults fills the trial count when left unset. Degree and X pass
// through untouched: their zero values are valid campaign inputs, not
// absence markers.
func withDefaults(opts Options) Options {
	if opts.Trials == 0 {
		opts.Trials = DefaultTrials
	}
	return opts
}

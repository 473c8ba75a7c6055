package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/polycalc/internal/errors"
	"github.com/agbru/polycalc/internal/metrics"
	"github.com/agbru/polycalc/internal/polynomial"
)

// tracerName identifies this package's spans to whichever tracer provider the
// application installed (the default no-op provider when tracing is off).
const tracerName = "github.com/agbru/polycalc/internal/orchestration"

// ExecuteEvaluations orchestrates the concurrent execution of one or more
// polynomial evaluations over the same input.
//
// Every evaluator runs in its own goroutine; individual failures are captured
// in the result slice rather than aborting the group, so one broken algorithm
// never hides the others' results. This function is the core of the
// application's concurrency model.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - evaluators: A slice of evaluators to execute.
//   - coeffs: The coefficient sequence, constant term first.
//   - x: The evaluation point.
//
// Returns:
//   - []EvaluationResult: A slice containing the result of each evaluation,
//     in evaluator order.
func ExecuteEvaluations(ctx context.Context, evaluators []polynomial.Evaluator, coeffs polynomial.Coefficients, x float64) []EvaluationResult {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "ExecuteEvaluations")
	span.SetAttributes(
		attribute.Int("polynomial.degree", coeffs.Degree()),
		attribute.Float64("polynomial.point", x),
		attribute.Int("evaluators.count", len(evaluators)),
	)
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	results := make([]EvaluationResult, len(evaluators))

	for i, ev := range evaluators {
		idx, evaluator := i, ev
		g.Go(func() error {
			evalCtx, evalSpan := tracer.Start(ctx, "Evaluate")
			evalSpan.SetAttributes(attribute.String("evaluator.name", evaluator.Name()))

			startTime := time.Now()
			value, err := evaluator.Evaluate(evalCtx, coeffs, x)
			duration := time.Since(startTime)

			if err != nil {
				evalSpan.SetStatus(codes.Error, err.Error())
			}
			evalSpan.End()

			metrics.ObserveEvaluation(evaluator.Name(), duration, err)
			results[idx] = EvaluationResult{
				Name: evaluator.Name(), Value: value, Duration: duration, Err: err,
			}
			return nil
		})
	}

	g.Wait()
	return results
}

// AnalyzeComparisonResults processes the results from multiple algorithms and
// generates a summary report.
//
// It sorts the results by execution time, cross-checks consistency across
// successful evaluations within the agreement tolerance, and displays a
// comparative table. It handles the logic for determining global success or
// failure based on the individual outcomes.
//
// Parameters:
//   - results: The slice of evaluation results to analyze.
//   - opts: The presentation options for the final result display.
//   - presenter: The result presenter for display formatting.
//   - errorHandler: The handler mapping an all-failed run to an exit code.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []EvaluationResult, opts PresentationOptions, presenter ResultPresenter, errorHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *EvaluationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the evaluation.\n")
		return errorHandler.HandleError(firstError, 0, out)
	}

	if mismatch := findMismatch(results, firstValidResult); mismatch != nil {
		metrics.RecordMismatch()
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the algorithms.\n")
		fmt.Fprintf(out, "%v\n", mismatch)
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}

// findMismatch returns a MismatchError describing the first successful result
// that disagrees with the reference result beyond tolerance, or nil when all
// successful results agree.
func findMismatch(results []EvaluationResult, reference *EvaluationResult) error {
	for _, res := range results {
		if res.Err == nil && !polynomial.WithinTolerance(res.Value, reference.Value) {
			return apperrors.MismatchError{
				NameA:  reference.Name,
				NameB:  res.Name,
				ValueA: reference.Value,
				ValueB: res.Value,
			}
		}
	}
	return nil
}

package orchestration

import (
	"io"
	"time"

	"github.com/agbru/polycalc/internal/polynomial"
)

// EvaluationResult encapsulates the outcome of a single polynomial
// evaluation. It serves as the shared domain type between orchestration and
// presentation layers.
type EvaluationResult struct {
	// Name is the identifier of the algorithm used (e.g., "Horner Scheme").
	Name string
	// Value is the computed polynomial value. It is meaningless if Err is
	// non-nil.
	Value float64
	// Duration is the time taken to complete the evaluation.
	Duration time.Duration
	// Err contains any error that occurred during the evaluation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Coefficients polynomial.Coefficients
	X            float64
	Verbose      bool
}

// ResultPresenter defines the interface for presenting evaluation results.
// This interface decouples the orchestration layer from presentation
// concerns, allowing different output formats (CLI, file, TUI) without
// modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []EvaluationResult, out io.Writer)

	// PresentResult displays the final evaluation result.
	PresentResult(result EvaluationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles evaluation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}

package polynomial

import (
	"context"

	apperrors "github.com/agbru/polycalc/internal/errors"
	"github.com/agbru/polycalc/internal/symbolic"
)

// Reference evaluates a polynomial through an injected symbolic backend:
// it constructs a backend polynomial object from the coefficients and asks
// the backend for its value at x. It exists as a correctness oracle for the
// three native evaluators rather than as a production evaluator; it is
// expected to be orders of magnitude slower.
type Reference struct {
	backend symbolic.Backend
}

// Verify interface compliance.
var _ Evaluator = (*Reference)(nil)

// NewReference creates the reference evaluator on top of a symbolic backend.
//
// Parameters:
//   - backend: The backend performing construction and evaluation.
//
// Returns:
//   - *Reference: The evaluator instance.
func NewReference(backend symbolic.Backend) *Reference {
	return &Reference{backend: backend}
}

// Name returns the algorithm name.
func (*Reference) Name() string { return "Symbolic Reference" }

// Evaluate constructs a backend polynomial and evaluates it at x.
//
// Backend failures that are not input-validation errors are wrapped in an
// UnavailableError: the caller treats a broken reference backend as a
// degraded-but-running condition, not a fatal one.
func (r *Reference) Evaluate(ctx context.Context, coeffs Coefficients, x float64) (float64, error) {
	if err := coeffs.Validate(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	poly, err := r.backend.Construct(coeffs)
	if err != nil {
		if apperrors.IsInvalidInput(err) {
			return 0, err
		}
		return 0, apperrors.UnavailableError{Component: "symbolic backend", Cause: err}
	}

	value, err := r.backend.EvaluateAt(poly, x)
	if err != nil {
		return 0, apperrors.UnavailableError{Component: "symbolic backend", Cause: err}
	}
	return value, nil
}

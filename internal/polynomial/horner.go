package polynomial

import "context"

// Horner evaluates a polynomial with the nested scheme
//
//	(((c[n]·x + c[n-1])·x + c[n-2])·x + ...)·x + c[0]
//
// traversing coefficients from highest index to lowest. One multiplication
// and one addition per coefficient, no exponentiation: the fastest and
// numerically preferred of the evaluators. Near multiple roots its result
// may drift further from the term-summation evaluators; that is inherent to
// the scheme, not a defect.
type Horner struct{}

// Verify interface compliance.
var _ Evaluator = (*Horner)(nil)

// Name returns the algorithm name.
func (*Horner) Name() string { return "Horner Scheme" }

// Evaluate computes the polynomial value via Horner's nested scheme.
// For a single coefficient the loop body never executes and c[0] is returned
// unchanged, for any x.
func (*Horner) Evaluate(ctx context.Context, coeffs Coefficients, x float64) (float64, error) {
	if err := coeffs.Validate(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	n := len(coeffs) - 1
	acc := coeffs[n]
	for i := n - 1; i >= 0; i-- {
		if err := checkContext(ctx, n-i); err != nil {
			return 0, err
		}
		acc = acc*x + coeffs[i]
	}
	return acc, nil
}

package polynomial

import "context"

// PowerAccumulation evaluates a polynomial with a running power accumulator:
// the current power of x is multiplied by x once per iteration instead of
// being recomputed, bringing the cost down to O(n) multiplications. Same
// left-to-right summation order as DirectSum, so the two agree within
// rounding-order differences.
type PowerAccumulation struct{}

// Verify interface compliance.
var _ Evaluator = (*PowerAccumulation)(nil)

// Name returns the algorithm name.
func (*PowerAccumulation) Name() string { return "Power Accumulation" }

// Evaluate computes Σ coeffs[i]·x^i with a single running power accumulator,
// in increasing-power order.
func (*PowerAccumulation) Evaluate(ctx context.Context, coeffs Coefficients, x float64) (float64, error) {
	if err := coeffs.Validate(); err != nil {
		return 0, err
	}

	var sum float64
	pow := 1.0 // x^0; the 0^0 = 1 convention falls out naturally
	for i, c := range coeffs {
		if err := checkContext(ctx, i); err != nil {
			return 0, err
		}
		sum += c * pow
		pow *= x
	}
	return sum, nil
}

package polynomial

import "context"

// DirectSum evaluates a polynomial by forming every term independently:
// each x^i is recomputed from scratch by repeated multiplication, so the
// total work is O(n²) multiplications. It exists as the baseline the other
// evaluators are compared against, both for correctness and in benchmarks.
type DirectSum struct{}

// Verify interface compliance.
var _ Evaluator = (*DirectSum)(nil)

// Name returns the algorithm name.
func (*DirectSum) Name() string { return "Direct Summation" }

// Evaluate computes Σ coeffs[i]·x^i, recomputing every power from scratch.
// Terms are produced in increasing-power order and summed left-to-right so
// the rounding behavior is deterministic and comparable with the power
// accumulator within tolerance.
func (*DirectSum) Evaluate(ctx context.Context, coeffs Coefficients, x float64) (float64, error) {
	if err := coeffs.Validate(); err != nil {
		return 0, err
	}

	var sum float64
	for i, c := range coeffs {
		if err := checkContext(ctx, i); err != nil {
			return 0, err
		}
		sum += c * powFromScratch(x, i)
	}
	return sum, nil
}

// powFromScratch computes x^n by repeated multiplication.
// powFromScratch(x, 0) is 1 for every x, including 0 (the 0^0 = 1 convention
// required so a constant term survives evaluation at x = 0).
func powFromScratch(x float64, n int) float64 {
	p := 1.0
	for i := 0; i < n; i++ {
		p *= x
	}
	return p
}

package polynomial

import "math"

// Agreement tolerances for cross-checking evaluator results. Two values agree
// when they are within RelTolerance of each other relative to the larger
// magnitude, or within AbsTolerance absolutely. The absolute floor keeps the
// comparison meaningful near zero, where a relative test degenerates.
const (
	RelTolerance = 1e-9
	AbsTolerance = 1e-12
)

// WithinTolerance reports whether a and b agree under the combined
// relative/absolute tolerance. NaN never agrees with anything, including
// itself. Two infinities of the same sign agree.
//
// Parameters:
//   - a: The first value.
//   - b: The second value.
//
// Returns:
//   - bool: true if the values agree.
func WithinTolerance(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	diff := math.Abs(a - b)
	if diff <= AbsTolerance {
		return true
	}
	return diff <= RelTolerance*math.Max(math.Abs(a), math.Abs(b))
}

package polynomial

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	apperrors "github.com/agbru/polycalc/internal/errors"
)

// Coefficients is an ordered sequence of real polynomial coefficients.
// Index 0 is the constant term; index k is the coefficient of x^k. A slice of
// length n+1 represents a degree-n polynomial; a single element is a constant
// polynomial. The sequence is treated as immutable for the duration of an
// evaluation.
type Coefficients []float64

// ErrEmptyCoefficients is returned when an empty coefficient sequence is
// passed to an evaluator. An empty sequence represents no polynomial at all,
// not the zero polynomial.
var ErrEmptyCoefficients = apperrors.InvalidInputError{
	Field:   "coefficients",
	Message: "sequence must contain at least one term",
}

// Degree returns the polynomial degree implied by the sequence length.
// An empty sequence returns -1.
func (c Coefficients) Degree() int { return len(c) - 1 }

// Validate checks that the sequence can be evaluated.
//
// Returns:
//   - error: ErrEmptyCoefficients if the sequence is empty, or an
//     InvalidInputError if any coefficient is NaN.
func (c Coefficients) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCoefficients
	}
	for i, v := range c {
		if math.IsNaN(v) {
			return apperrors.NewInvalidInputError("coefficients", "term %d is NaN", i)
		}
	}
	return nil
}

// String renders the polynomial in conventional increasing-power notation,
// e.g. "1 - 3x + 2x^2". Zero terms other than a lone constant are omitted.
func (c Coefficients) String() string {
	if len(c) == 0 {
		return "<empty>"
	}

	var b strings.Builder
	wrote := false
	for i, v := range c {
		if v == 0 && len(c) > 1 {
			continue
		}
		switch {
		case !wrote && v < 0:
			b.WriteString("-")
		case wrote && v < 0:
			b.WriteString(" - ")
		case wrote:
			b.WriteString(" + ")
		}
		abs := math.Abs(v)
		if abs != 1 || i == 0 {
			b.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		}
		switch i {
		case 0:
		case 1:
			b.WriteString("x")
		default:
			fmt.Fprintf(&b, "x^%d", i)
		}
		wrote = true
	}
	if !wrote {
		return "0"
	}
	return b.String()
}

// RandomCoefficients generates degree+1 coefficients uniformly distributed
// in [0, 1), as used by the interactive driver.
//
// Parameters:
//   - degree: The polynomial degree. Must be non-negative.
//   - rng: The random source. A nil rng is an error; callers own seeding so
//     runs are reproducible when they want them to be.
//
// Returns:
//   - Coefficients: The generated sequence of length degree+1.
//   - error: An InvalidInputError if degree is negative or rng is nil.
func RandomCoefficients(degree int, rng *rand.Rand) (Coefficients, error) {
	if degree < 0 {
		return nil, apperrors.NewInvalidInputError("degree", "must be non-negative, got %d", degree)
	}
	if rng == nil {
		return nil, apperrors.NewInvalidInputError("rng", "random source must not be nil")
	}

	coeffs := make(Coefficients, degree+1)
	for i := range coeffs {
		coeffs[i] = rng.Float64()
	}
	return coeffs, nil
}

// ParseCoefficients parses a comma-separated list of real numbers into a
// coefficient sequence, constant term first (e.g. "1,-3,2" for 1 - 3x + 2x²).
//
// Parameters:
//   - s: The comma-separated coefficient list.
//
// Returns:
//   - Coefficients: The parsed sequence.
//   - error: An InvalidInputError if the list is empty or any entry fails to
//     parse as a float64.
func ParseCoefficients(s string) (Coefficients, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, ErrEmptyCoefficients
	}

	parts := strings.Split(trimmed, ",")
	coeffs := make(Coefficients, 0, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("coefficients", "term %d (%q) is not a number", i, strings.TrimSpace(part))
		}
		coeffs = append(coeffs, v)
	}
	return coeffs, nil
}

//go:generate mockgen -source=symbolic.go -destination=mocks/mock_backend.go -package=mocks

package symbolic

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"

	apperrors "github.com/agbru/polycalc/internal/errors"
)

// Precision is the mantissa precision, in bits, used for all backend
// arithmetic. 256 bits leaves roughly 60 decimal digits of headroom over
// float64's 53-bit mantissa, so rounding the final result back to float64 is
// correct for every well-conditioned input the application accepts.
const Precision = 256

// Polynomial is an opaque polynomial object constructed by a Backend.
// Its internal representation is backend-specific.
type Polynomial interface {
	// Degree returns the degree of the constructed polynomial.
	Degree() int
}

// Backend constructs polynomial objects and evaluates them at scalar points.
// It is the injected capability behind the reference evaluator: the
// application works with any implementation, and tests substitute a mock.
type Backend interface {
	// Construct builds an opaque polynomial from a coefficient sequence,
	// constant term first.
	Construct(coeffs []float64) (Polynomial, error)

	// EvaluateAt evaluates a previously constructed polynomial at x and
	// rounds the result to float64.
	EvaluateAt(p Polynomial, x float64) (float64, error)
}

// BigFloatBackend implements Backend with math/big.Float arithmetic at
// Precision bits, delegating the power kernel to the bigfloat library.
// Every term is computed exactly enough that the rounded float64 result can
// serve as the agreement oracle for the native evaluators.
type BigFloatBackend struct{}

// Verify interface compliance.
var _ Backend = (*BigFloatBackend)(nil)

// NewBigFloatBackend creates the arbitrary-precision backend.
//
// Returns:
//   - *BigFloatBackend: The backend instance.
func NewBigFloatBackend() *BigFloatBackend {
	return &BigFloatBackend{}
}

// bigFloatPolynomial is the opaque polynomial representation of
// BigFloatBackend: the coefficient sequence lifted to big.Float.
type bigFloatPolynomial struct {
	coeffs []*big.Float
}

// Degree returns the degree of the constructed polynomial.
func (p *bigFloatPolynomial) Degree() int { return len(p.coeffs) - 1 }

// Construct builds an opaque polynomial from a coefficient sequence.
//
// Parameters:
//   - coeffs: The coefficient sequence, constant term first. Must be
//     non-empty and free of NaNs.
//
// Returns:
//   - Polynomial: The constructed polynomial object.
//   - error: An InvalidInputError for an empty sequence or NaN coefficient.
func (b *BigFloatBackend) Construct(coeffs []float64) (Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, apperrors.InvalidInputError{Field: "coefficients", Message: "sequence must contain at least one term"}
	}

	lifted := make([]*big.Float, len(coeffs))
	for i, c := range coeffs {
		if math.IsNaN(c) {
			return nil, apperrors.NewInvalidInputError("coefficients", "term %d is NaN", i)
		}
		lifted[i] = big.NewFloat(c).SetPrec(Precision)
	}
	return &bigFloatPolynomial{coeffs: lifted}, nil
}

// EvaluateAt evaluates a constructed polynomial at x by term-wise summation
// in Precision-bit arithmetic, then rounds to float64.
//
// Parameters:
//   - p: A polynomial previously returned by Construct on this backend.
//   - x: The evaluation point.
//
// Returns:
//   - float64: The polynomial value at x, rounded once at the end.
//   - error: An EvaluationError if p was not constructed by this backend.
func (b *BigFloatBackend) EvaluateAt(p Polynomial, x float64) (float64, error) {
	poly, ok := p.(*bigFloatPolynomial)
	if !ok {
		return 0, apperrors.EvaluationError{
			Cause: apperrors.NewConfigError("polynomial object of type %T was not constructed by this backend", p),
		}
	}

	point := big.NewFloat(x).SetPrec(Precision)
	sum := new(big.Float).SetPrec(Precision)
	term := new(big.Float).SetPrec(Precision)

	for i, c := range poly.coeffs {
		term.Mul(c, powInt(point, i))
		sum.Add(sum, term)
	}

	result, _ := sum.Float64()
	return result, nil
}

// powInt computes x^n for a non-negative integer exponent at Precision bits.
// The bigfloat power kernel is defined for positive bases only (it goes
// through exp·log), so the sign is handled by parity and the zero base and
// zero exponent cases are resolved first (0^0 = 1).
func powInt(x *big.Float, n int) *big.Float {
	one := new(big.Float).SetPrec(Precision).SetInt64(1)
	if n == 0 {
		return one
	}
	if x.Sign() == 0 {
		return new(big.Float).SetPrec(Precision)
	}

	abs := new(big.Float).SetPrec(Precision).Abs(x)
	exponent := new(big.Float).SetPrec(Precision).SetInt64(int64(n))
	p := bigfloat.Pow(abs, exponent)

	if x.Sign() < 0 && n%2 == 1 {
		p.Neg(p)
	}
	return p
}

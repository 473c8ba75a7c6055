package symbolic

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/polycalc/internal/errors"
)

// evalAt is a shorthand that constructs and evaluates in one step.
func evalAt(t *testing.T, coeffs []float64, x float64) float64 {
	t.Helper()
	backend := NewBigFloatBackend()
	p, err := backend.Construct(coeffs)
	require.NoError(t, err)
	v, err := backend.EvaluateAt(p, x)
	require.NoError(t, err)
	return v
}

// TestBigFloatBackend_KnownValues tests the backend against hand-computed
// polynomial values.
func TestBigFloatBackend_KnownValues(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		x      float64
		want   float64
	}{
		{"factored quadratic at root", []float64{1.0, -3.0, 2.0}, 0.5, 0.0},
		{"cubic", []float64{2.0, 0.0, 0.0, 1.0}, 3.0, 29.0},
		{"constant ignores x", []float64{7.5}, 123.456, 7.5},
		{"constant at zero", []float64{7.5}, 0, 7.5},
		{"zero point returns constant term", []float64{4.0, 5.0, 6.0}, 0, 4.0},
		{"negative point odd powers", []float64{0.0, 1.0, 0.0, 1.0}, -2.0, -10.0},
		{"negative point even powers", []float64{0.0, 0.0, 3.0}, -2.0, 12.0},
		{"linear", []float64{1.0, 2.0}, -0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalAt(t, tt.coeffs, tt.x)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

// TestBigFloatBackend_Construct tests input validation in Construct.
func TestBigFloatBackend_Construct(t *testing.T) {
	backend := NewBigFloatBackend()

	t.Run("empty sequence is invalid input", func(t *testing.T) {
		_, err := backend.Construct(nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsInvalidInput(err))
	})

	t.Run("NaN coefficient is invalid input", func(t *testing.T) {
		_, err := backend.Construct([]float64{1.0, math.NaN()})
		require.Error(t, err)
		assert.True(t, apperrors.IsInvalidInput(err))
	})

	t.Run("degree is preserved", func(t *testing.T) {
		p, err := backend.Construct([]float64{1, 2, 3, 4})
		require.NoError(t, err)
		assert.Equal(t, 3, p.Degree())
	})
}

// TestBigFloatBackend_ForeignPolynomial tests rejection of polynomial objects
// from a different backend.
func TestBigFloatBackend_ForeignPolynomial(t *testing.T) {
	backend := NewBigFloatBackend()

	_, err := backend.EvaluateAt(foreignPolynomial{}, 1.0)
	require.Error(t, err)

	var evalErr apperrors.EvaluationError
	assert.ErrorAs(t, err, &evalErr)
}

// foreignPolynomial implements Polynomial without being a backend product.
type foreignPolynomial struct{}

func (foreignPolynomial) Degree() int { return 0 }

// TestBigFloatBackend_AgreesWithFloat64Horner cross-checks the backend
// against a plain float64 Horner evaluation over a grid of inputs.
func TestBigFloatBackend_AgreesWithFloat64Horner(t *testing.T) {
	coeffs := []float64{0.25, -1.5, 3.75, -0.125, 2.0}
	points := []float64{-10, -3.5, -1, -0.5, 0, 0.5, 1, 2.25, 10}

	for _, x := range points {
		want := 0.0
		for i := len(coeffs) - 1; i >= 0; i-- {
			want = want*x + coeffs[i]
		}
		got := evalAt(t, coeffs, x)
		assert.InEpsilonf(t, want+1, got+1, 1e-9, "x = %g", x) // +1 shifts away from zero for relative compare
	}
}

// TestPowInt tests the integer power kernel directly, including the sign
// handling around the positive-base bigfloat kernel.
func TestPowInt(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		n    int
		want float64
	}{
		{"zero exponent", 5.0, 0, 1.0},
		{"zero base zero exponent", 0.0, 0, 1.0},
		{"zero base", 0.0, 5, 0.0},
		{"positive base", 2.0, 10, 1024.0},
		{"negative base odd exponent", -2.0, 3, -8.0},
		{"negative base even exponent", -2.0, 4, 16.0},
		{"fractional base", 0.5, 3, 0.125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := big.NewFloat(tt.x).SetPrec(Precision)
			got, _ := powInt(base, tt.n).Float64()
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

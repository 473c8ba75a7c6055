package polynomial

import (
	"context"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genCoefficients generates non-empty coefficient sequences with terms in
// [-100, 100]. Slice length is bounded by the test parameters' MaxSize.
func genCoefficients() gopter.Gen {
	return gen.SliceOf(gen.Float64Range(-100, 100)).
		Map(func(vs []float64) Coefficients { return Coefficients(vs) }).
		SuchThat(func(c Coefficients) bool { return len(c) > 0 })
}

// genPoint generates evaluation points in [-10, 10].
func genPoint() gopter.Gen {
	return gen.Float64Range(-10, 10)
}

// agreementBound returns the absolute tolerance for comparing two evaluations
// of the given polynomial at x. The bound scales with the term magnitudes so
// that cancellation-heavy inputs do not produce false mismatches.
func agreementBound(coeffs Coefficients, x float64) float64 {
	scale := 0.0
	pow := 1.0
	for _, c := range coeffs {
		scale += math.Abs(c * pow)
		pow *= x
	}
	return AbsTolerance + RelTolerance*scale
}

// propertyParams returns the shared gopter configuration. MaxSize bounds the
// generated slice lengths, keeping the scale of the largest term moderate.
func propertyParams() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.MaxSize = 20
	return parameters
}

// TestEvaluatorAgreementProperties verifies that every evaluator reproduces
// the symbolic reference within the scale-aware agreement bound on arbitrary
// inputs.
func TestEvaluatorAgreementProperties(t *testing.T) {
	factory := NewDefaultFactory()
	reference, err := factory.Get(AlgoReference)
	if err != nil {
		t.Fatalf("reference evaluator unavailable: %v", err)
	}

	properties := gopter.NewProperties(propertyParams())

	for _, e := range nativeEvaluators() {
		e := e
		properties.Property(e.Name()+" agrees with the symbolic reference", prop.ForAll(
			func(coeffs Coefficients, x float64) bool {
				want, err := reference.Evaluate(context.Background(), coeffs, x)
				if err != nil {
					return false
				}
				got, err := e.Evaluate(context.Background(), coeffs, x)
				if err != nil {
					return false
				}
				return math.Abs(got-want) <= agreementBound(coeffs, x)
			},
			genCoefficients(),
			genPoint(),
		))
	}

	properties.TestingRun(t)
}

// TestEvaluatorAlgebraicProperties verifies structural identities that hold
// for any correct polynomial evaluator.
func TestEvaluatorAlgebraicProperties(t *testing.T) {
	horner := &Horner{}
	properties := gopter.NewProperties(propertyParams())

	properties.Property("evaluation is additive in the coefficients", prop.ForAll(
		func(a Coefficients, x float64) bool {
			b := make(Coefficients, len(a))
			for i := range b {
				b[i] = -0.5 * a[i]
			}
			sum := make(Coefficients, len(a))
			for i := range sum {
				sum[i] = a[i] + b[i]
			}

			va, _ := horner.Evaluate(context.Background(), a, x)
			vb, _ := horner.Evaluate(context.Background(), b, x)
			vs, _ := horner.Evaluate(context.Background(), sum, x)
			return math.Abs(vs-(va+vb)) <= agreementBound(a, x)+agreementBound(b, x)
		},
		genCoefficients(),
		genPoint(),
	))

	properties.Property("scaling every coefficient by k scales the result by k", prop.ForAll(
		func(a Coefficients, x, k float64) bool {
			scaled := make(Coefficients, len(a))
			for i := range scaled {
				scaled[i] = k * a[i]
			}

			va, _ := horner.Evaluate(context.Background(), a, x)
			vk, _ := horner.Evaluate(context.Background(), scaled, x)
			bound := agreementBound(scaled, x) + math.Abs(k)*agreementBound(a, x)
			return math.Abs(vk-k*va) <= bound
		},
		genCoefficients(),
		genPoint(),
		gen.Float64Range(-100, 100),
	))

	properties.Property("p(x) = c0 + x·q(x) for the shifted tail q", prop.ForAll(
		func(coeffs Coefficients, x float64) bool {
			if len(coeffs) < 2 {
				return true
			}
			tail := coeffs[1:]

			p, _ := horner.Evaluate(context.Background(), coeffs, x)
			q, _ := horner.Evaluate(context.Background(), tail, x)
			return math.Abs(p-(coeffs[0]+x*q)) <= agreementBound(coeffs, x)
		},
		genCoefficients(),
		genPoint(),
	))

	properties.Property("a constant polynomial ignores the evaluation point", prop.ForAll(
		func(c, x float64) bool {
			got, err := horner.Evaluate(context.Background(), Coefficients{c}, x)
			return err == nil && got == c
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("repeated evaluation is bit-identical", prop.ForAll(
		func(coeffs Coefficients, x float64) bool {
			first, err := horner.Evaluate(context.Background(), coeffs, x)
			if err != nil {
				return false
			}
			again, err := horner.Evaluate(context.Background(), coeffs, x)
			if err != nil {
				return false
			}
			return math.Float64bits(first) == math.Float64bits(again)
		},
		genCoefficients(),
		genPoint(),
	))

	properties.TestingRun(t)
}

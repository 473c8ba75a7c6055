package orchestration

import (
	"testing"

	"github.com/agbru/polycalc/internal/polynomial"
)

// TestGetEvaluatorsToRun tests evaluator selection from the registry.
func TestGetEvaluatorsToRun(t *testing.T) {
	factory := polynomial.NewDefaultFactory()

	t.Run("all returns every registered evaluator in key order", func(t *testing.T) {
		evaluators := GetEvaluatorsToRun(AlgoAll, factory)
		keys := factory.List()
		if len(evaluators) != len(keys) {
			t.Fatalf("got %d evaluators, want %d", len(evaluators), len(keys))
		}
	})

	t.Run("single selection", func(t *testing.T) {
		evaluators := GetEvaluatorsToRun(polynomial.AlgoHorner, factory)
		if len(evaluators) != 1 {
			t.Fatalf("got %d evaluators, want 1", len(evaluators))
		}
		if _, ok := evaluators[0].(*polynomial.Horner); !ok {
			t.Errorf("got %T, want *polynomial.Horner", evaluators[0])
		}
	})

	t.Run("unknown selection returns nil", func(t *testing.T) {
		if evaluators := GetEvaluatorsToRun("newton", factory); evaluators != nil {
			t.Errorf("got %v, want nil", evaluators)
		}
	})
}

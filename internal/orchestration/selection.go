package orchestration

import "github.com/agbru/polycalc/internal/polynomial"

// AlgoAll is the selection value requesting every registered evaluator.
const AlgoAll = "all"

// GetEvaluatorsToRun determines which evaluators should be executed based on
// the algorithm selection. Returns evaluators in sorted registry-key order
// for consistent, reproducible behavior.
//
// Parameters:
//   - algo: The algorithm selection ("all" or a single registry key).
//   - factory: The evaluator factory to retrieve implementations from.
//
// Returns:
//   - []polynomial.Evaluator: A slice of evaluators to execute. Nil when the
//     selection names no registered evaluator.
func GetEvaluatorsToRun(algo string, factory polynomial.EvaluatorFactory) []polynomial.Evaluator {
	if algo == AlgoAll {
		keys := factory.List() // List() returns sorted keys
		evaluators := make([]polynomial.Evaluator, 0, len(keys))
		for _, k := range keys {
			if ev, err := factory.Get(k); err == nil {
				evaluators = append(evaluators, ev)
			}
		}
		return evaluators
	}
	if ev, err := factory.Get(algo); err == nil {
		return []polynomial.Evaluator{ev}
	}
	return nil
}

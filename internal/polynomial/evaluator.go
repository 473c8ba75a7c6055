package polynomial

import (
	"context"
	"sort"

	apperrors "github.com/agbru/polycalc/internal/errors"
	"github.com/agbru/polycalc/internal/symbolic"
)

// Registry keys for the built-in evaluators. These are the identifiers
// accepted by the -algo flag and the REPL "algo" command.
const (
	AlgoDirect    = "direct"
	AlgoPower     = "power"
	AlgoHorner    = "horner"
	AlgoReference = "reference"
)

// ctxCheckInterval is the number of loop iterations between context checks
// inside an evaluator. Evaluation is O(n) and fast, so the check only matters
// for very large degrees.
const ctxCheckInterval = 4096

// Evaluator computes the value of a polynomial at a point.
// Implementations are pure: identical inputs yield bit-identical outputs, and
// no state is retained between calls, so a single Evaluator may be used from
// multiple goroutines concurrently.
type Evaluator interface {
	// Name returns the human-readable algorithm name (e.g., "Horner Scheme").
	Name() string

	// Evaluate computes Σ coeffs[i]·x^i for i = 0..degree.
	//
	// Parameters:
	//   - ctx: The context for cancellation of very large evaluations.
	//   - coeffs: The coefficient sequence, constant term first. Must be
	//     non-empty.
	//   - x: The evaluation point.
	//
	// Returns:
	//   - float64: The polynomial value at x.
	//   - error: ErrEmptyCoefficients for an empty sequence, or a context
	//     error if the evaluation was canceled.
	Evaluate(ctx context.Context, coeffs Coefficients, x float64) (float64, error)
}

// EvaluatorFactory provides access to the registered evaluator
// implementations. It decouples callers (orchestration, CLI, TUI) from the
// concrete set of algorithms.
type EvaluatorFactory interface {
	// Get returns the evaluator registered under the given key.
	Get(name string) (Evaluator, error)
	// GetAll returns every registered evaluator, sorted by registry key.
	GetAll() []Evaluator
	// List returns the sorted registry keys.
	List() []string
}

// DefaultFactory is the standard EvaluatorFactory backed by a registry map.
type DefaultFactory struct {
	registry map[string]Evaluator
}

// Verify interface compliance.
var _ EvaluatorFactory = (*DefaultFactory)(nil)

// NewDefaultFactory creates a factory with all built-in evaluators
// registered. The reference evaluator is wired to the big-float symbolic
// backend; if no backend is available the reference entry is simply omitted
// and the three self-contained evaluators remain (graceful degradation).
//
// Returns:
//   - *DefaultFactory: The populated factory.
func NewDefaultFactory() *DefaultFactory {
	f := NewFactory(
		&DirectSum{},
		&PowerAccumulation{},
		&Horner{},
	)
	if backend := symbolic.NewBigFloatBackend(); backend != nil {
		f.registry[AlgoReference] = NewReference(backend)
	}
	return f
}

// NewFactory creates a factory containing exactly the given evaluators,
// keyed by their registry keys. Primarily used by tests to assemble partial
// or stubbed evaluator sets.
//
// Parameters:
//   - evaluators: The evaluators to register.
//
// Returns:
//   - *DefaultFactory: The populated factory.
func NewFactory(evaluators ...Evaluator) *DefaultFactory {
	registry := make(map[string]Evaluator, len(evaluators))
	for _, e := range evaluators {
		registry[registryKey(e)] = e
	}
	return &DefaultFactory{registry: registry}
}

// registryKey maps a concrete evaluator to its registry key.
func registryKey(e Evaluator) string {
	switch e.(type) {
	case *DirectSum:
		return AlgoDirect
	case *PowerAccumulation:
		return AlgoPower
	case *Horner:
		return AlgoHorner
	case *Reference:
		return AlgoReference
	default:
		return e.Name()
	}
}

// Get returns the evaluator registered under the given key.
//
// Parameters:
//   - name: The registry key (e.g., "horner").
//
// Returns:
//   - Evaluator: The registered evaluator.
//   - error: A ConfigError if no evaluator is registered under that key.
func (f *DefaultFactory) Get(name string) (Evaluator, error) {
	e, ok := f.registry[name]
	if !ok {
		return nil, apperrors.NewConfigError("unknown algorithm %q (available: %v)", name, f.List())
	}
	return e, nil
}

// GetAll returns every registered evaluator, sorted by registry key for
// reproducible ordering.
func (f *DefaultFactory) GetAll() []Evaluator {
	all := make([]Evaluator, 0, len(f.registry))
	for _, key := range f.List() {
		all = append(all, f.registry[key])
	}
	return all
}

// List returns the sorted registry keys.
func (f *DefaultFactory) List() []string {
	keys := make([]string, 0, len(f.registry))
	for k := range f.registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// checkContext returns the context error, if any, every ctxCheckInterval
// iterations. The i == 0 case is included so even degree-0 evaluations
// observe cancellation.
func checkContext(ctx context.Context, i int) error {
	if i%ctxCheckInterval == 0 {
		return ctx.Err()
	}
	return nil
}

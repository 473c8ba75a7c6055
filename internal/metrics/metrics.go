package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instruments. Registered on the default registry so the optional
// observability server can expose them through promhttp without extra wiring.
var (
	// EvaluationsTotal counts polynomial evaluations by algorithm and outcome.
	EvaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polycalc_evaluations_total",
		Help: "Total number of polynomial evaluations, by algorithm and status.",
	}, []string{"algorithm", "status"})

	// EvaluationDuration tracks per-algorithm evaluation latency. Evaluations
	// are sub-millisecond for typical degrees, hence the sub-microsecond
	// starting bucket.
	EvaluationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "polycalc_evaluation_duration_seconds",
		Help:    "Polynomial evaluation latency, by algorithm.",
		Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
	}, []string{"algorithm"})

	// MismatchesTotal counts cross-check runs where at least two algorithms
	// disagreed beyond tolerance.
	MismatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polycalc_result_mismatches_total",
		Help: "Total number of cross-check runs that detected a result mismatch.",
	})

	// BenchRunsTotal counts completed benchmark campaigns.
	BenchRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polycalc_bench_runs_total",
		Help: "Total number of completed benchmark campaigns.",
	})
)

// ObserveEvaluation records one evaluation outcome.
//
// Parameters:
//   - algorithm: The registry key of the evaluator (e.g., "horner").
//   - d: The wall-clock duration of the evaluation.
//   - err: The evaluation error, nil on success.
func ObserveEvaluation(algorithm string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	EvaluationsTotal.WithLabelValues(algorithm, status).Inc()
	if err == nil {
		EvaluationDuration.WithLabelValues(algorithm).Observe(d.Seconds())
	}
}

// RecordMismatch counts a cross-check run that detected disagreement.
func RecordMismatch() {
	MismatchesTotal.Inc()
}

// RecordBenchRun counts a completed benchmark campaign.
func RecordBenchRun() {
	BenchRunsTotal.Inc()
}

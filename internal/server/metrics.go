package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP-layer instruments. Package-level so repeated NewMetrics calls (tests)
// never re-register on the default registry.
var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "polycalc_active_requests",
		Help: "Number of HTTP requests currently being served.",
	})

	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polycalc_requests_total",
		Help: "Total number of HTTP requests served, by path.",
	}, []string{"path"})
)

// Metrics bundles the HTTP instruments with the Prometheus exposition
// handler.
type Metrics struct {
	handler http.Handler
}

// NewMetrics creates the metrics facade over the default registry.
//
// Returns:
//   - *Metrics: The metrics facade.
func NewMetrics() *Metrics {
	return &Metrics{handler: promhttp.Handler()}
}

// IncrementActiveRequests increments the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() {
	activeRequests.Inc()
}

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() {
	activeRequests.Dec()
}

// CountRequest counts one served request for the given path.
func (m *Metrics) CountRequest(path string) {
	requestsTotal.WithLabelValues(path).Inc()
}

// WritePrometheus serves the Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// Package metrics holds the Prometheus instruments recording evaluation
// activity and a runtime memory collector used by the benchmark runner and
// the TUI dashboard.
package metrics

// Package server implements the optional observability HTTP server: the
// Prometheus /metrics endpoint, a health probe, and a small evaluation
// endpoint. The server is opt-in; the evaluation core never requires it.
package server

package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agbru/polycalc/internal/logging"
	"github.com/agbru/polycalc/internal/polynomial"
)

func newTestServer() *Server {
	return New("localhost:0", polynomial.NewDefaultFactory(), newTestLogger())
}

func TestMetricsExposition(t *testing.T) {
	m := NewMetrics()
	if m == nil || m.handler == nil {
		t.Fatal("NewMetrics should return an initialized collector")
	}

	m.IncrementActiveRequests()
	defer m.DecrementActiveRequests()
	m.CountRequest("/metrics")

	rec := httptest.NewRecorder()
	m.WritePrometheus(rec, httptest.NewRequest("GET", "/metrics", http.NoBody))

	body := rec.Body.String()
	for _, metric := range []string{"polycalc_active_requests", "polycalc_requests_total", "go_"} {
		if !strings.Contains(body, metric) {
			t.Errorf("Exposition output missing %q", metric)
		}
	}
}

func TestMetricsMiddleware(t *testing.T) {
	s := newTestServer()

	nextCalled := false
	handler := s.metricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/healthz", http.NoBody))

	if !nextCalled {
		t.Error("Middleware must invoke the wrapped handler")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestHandleMetricsMethodGuard(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.handleMetrics(rec, httptest.NewRequest("GET", "/metrics", http.NoBody))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /metrics status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "polycalc_") {
		t.Error("GET /metrics should expose polycalc metrics")
	}

	rec = httptest.NewRecorder()
	s.handleMetrics(rec, httptest.NewRequest("POST", "/metrics", http.NoBody))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /metrics status = %d, want 405", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest("GET", "/healthz", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %q, want status ok", rec.Body.String())
	}
}

// testLogger is a no-op logging.Logger for handler tests.
type testLogger struct{}

func newTestLogger() *testLogger                                  { return &testLogger{} }
func (l *testLogger) Info(_ string, _ ...logging.Field)           {}
func (l *testLogger) Error(_ string, _ error, _ ...logging.Field) {}
func (l *testLogger) Debug(_ string, _ ...logging.Field)          {}
func (l *testLogger) Printf(_ string, _ ...any)                   {}
func (l *testLogger) Println(_ ...any)                            {}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/polycalc/internal/logging"
	"github.com/agbru/polycalc/internal/orchestration"
	"github.com/agbru/polycalc/internal/polynomial"
)

// Server is the optional observability HTTP server. It exposes Prometheus
// metrics, a health probe, and a read-only evaluation endpoint.
type Server struct {
	addr     string
	metrics  *Metrics
	logger   logging.Logger
	security SecurityConfig
	factory  polynomial.EvaluatorFactory

	httpServer *http.Server
}

// shutdownTimeout bounds graceful shutdown once the context is canceled.
const shutdownTimeout = 5 * time.Second

// New creates a Server listening on addr once started.
//
// Parameters:
//   - addr: The listen address (e.g., "localhost:9090").
//   - factory: The evaluator factory backing the evaluation endpoint.
//   - logger: The structured logger.
//
// Returns:
//   - *Server: The configured server, not yet listening.
func New(addr string, factory polynomial.EvaluatorFactory, logger logging.Logger) *Server {
	return &Server{
		addr:     addr,
		metrics:  NewMetrics(),
		logger:   logger,
		security: DefaultSecurityConfig(),
		factory:  factory,
	}
}

// Start runs the server until the context is canceled, then shuts it down
// gracefully.
//
// Parameters:
//   - ctx: The context whose cancellation stops the server.
//
// Returns:
//   - error: A listen failure, or nil after a clean shutdown.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.metricsMiddleware(SecurityMiddleware(s.security, s.handleMetrics)))
	mux.HandleFunc("/healthz", s.metricsMiddleware(SecurityMiddleware(s.security, s.handleHealth)))
	mux.HandleFunc("/evaluate", s.metricsMiddleware(SecurityMiddleware(s.security, s.handleEvaluate)))

	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.ListenAndServe()
	}()

	s.logger.Info("observability server started", logging.String("addr", s.addr))

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// metricsMiddleware tracks in-flight and total request counts around the
// wrapped handler.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		s.metrics.CountRequest(r.URL.Path)
		next(w, r)
	}
}

// handleMetrics serves the Prometheus exposition endpoint. GET only.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// handleHealth serves the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// evaluateResponse is the JSON body of a successful evaluation request.
type evaluateResponse struct {
	Polynomial string            `json:"polynomial"`
	X          float64           `json:"x"`
	Results    []evaluationEntry `json:"results"`
}

type evaluationEntry struct {
	Algorithm string  `json:"algorithm"`
	Value     float64 `json:"value,omitempty"`
	Duration  string  `json:"duration"`
	Error     string  `json:"error,omitempty"`
}

// handleEvaluate evaluates a polynomial supplied via query parameters:
//
//	GET /evaluate?coeffs=1,-3,2&x=0.5&algo=all
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}

	coeffs, err := polynomial.ParseCoefficients(r.URL.Query().Get("coeffs"))
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	if coeffs.Degree() > s.security.MaxDegree {
		s.badRequest(w, r, errors.New("degree exceeds the server limit"))
		return
	}

	x, err := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	if err != nil {
		s.badRequest(w, r, errors.New("query parameter x must be a number"))
		return
	}

	algo := r.URL.Query().Get("algo")
	if algo == "" {
		algo = orchestration.AlgoAll
	}
	evaluators := orchestration.GetEvaluatorsToRun(algo, s.factory)
	if len(evaluators) == 0 {
		s.badRequest(w, r, errors.New("unknown algorithm "+strconv.Quote(algo)))
		return
	}

	results := orchestration.ExecuteEvaluations(r.Context(), evaluators, coeffs, x)

	resp := evaluateResponse{Polynomial: coeffs.String(), X: x}
	for _, res := range results {
		entry := evaluationEntry{Algorithm: res.Name, Duration: res.Duration.String()}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		} else {
			entry.Value = res.Value
		}
		resp.Results = append(resp.Results, entry)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// methodNotAllowed rejects a request with 405 and logs it.
func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("method not allowed",
		logging.String("method", r.Method),
		logging.String("path", r.URL.Path))
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

// badRequest rejects a request with 400 and logs the reason.
func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Debug("bad request",
		logging.String("path", r.URL.Path),
		logging.Err(err))
	http.Error(w, err.Error(), http.StatusBadRequest)
}

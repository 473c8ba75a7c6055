package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the security behavior of the observability server.
type SecurityConfig struct {
	// EnableCORS toggles CORS header handling.
	EnableCORS bool
	// AllowedOrigins lists the origins granted cross-origin access. A single
	// "*" entry allows any origin.
	AllowedOrigins []string
	// AllowedMethods lists the methods advertised in preflight responses.
	AllowedMethods []string
	// MaxDegree bounds the polynomial degree accepted by the evaluation
	// endpoint, preventing request-driven CPU exhaustion.
	MaxDegree int
}

// DefaultSecurityConfig returns the configuration used unless overridden:
// permissive CORS for read-only endpoints and a generous degree bound.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		MaxDegree:      1_000_000,
	}
}

// SecurityMiddleware applies the standard security headers and, when
// enabled, CORS handling to the wrapped handler. Preflight OPTIONS requests
// from allowed origins are answered directly.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := allowedOrigin(config, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
		}

		next(w, r)
	}
}

// allowedOrigin returns the Access-Control-Allow-Origin value for the given
// request origin, or an empty string when the origin is not allowed.
func allowedOrigin(config SecurityConfig, origin string) string {
	if origin == "" {
		return ""
	}
	for _, allowed := range config.AllowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if allowed == origin {
			return origin
		}
	}
	return ""
}

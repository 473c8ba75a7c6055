package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

// TestConfigError tests ConfigError construction and message formatting.
func TestConfigError(t *testing.T) {
	err := NewConfigError("unknown algorithm %q", "fast")

	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("NewConfigError should produce a ConfigError, got %T", err)
	}
	if want := `unknown algorithm "fast"`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// TestInvalidInputError tests InvalidInputError construction and detection.
func TestInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("degree", "must be non-negative, got %d", -3)

	if !IsInvalidInput(err) {
		t.Error("IsInvalidInput should detect an InvalidInputError")
	}
	if !strings.Contains(err.Error(), "degree") {
		t.Errorf("Error() should mention the field, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "-3") {
		t.Errorf("Error() should include the formatted message, got %q", err.Error())
	}

	t.Run("wrapped input error is still detected", func(t *testing.T) {
		wrapped := WrapError(err, "parsing flags")
		if !IsInvalidInput(wrapped) {
			t.Error("IsInvalidInput should see through wrapping")
		}
	})

	t.Run("unrelated error is not invalid input", func(t *testing.T) {
		if IsInvalidInput(errors.New("boom")) {
			t.Error("IsInvalidInput should reject unrelated errors")
		}
	})
}

// TestEvaluationError_Unwrap tests cause preservation through EvaluationError.
func TestEvaluationError_Unwrap(t *testing.T) {
	cause := errors.New("backend exploded")
	err := EvaluationError{Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the original cause")
	}
	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), cause.Error())
	}
}

// TestUnavailableError tests the degradation error for optional components.
func TestUnavailableError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("no backend registered")
		err := UnavailableError{Component: "reference evaluator", Cause: cause}

		if !strings.Contains(err.Error(), "reference evaluator") {
			t.Errorf("Error() should name the component, got %q", err.Error())
		}
		if !errors.Is(err, cause) {
			t.Error("errors.Is should find the cause")
		}
		if !IsUnavailable(err) {
			t.Error("IsUnavailable should detect an UnavailableError")
		}
	})

	t.Run("without cause", func(t *testing.T) {
		err := UnavailableError{Component: "benchmark runner"}
		if want := "benchmark runner unavailable"; err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})
}

// TestMismatchError tests the disagreement error message.
func TestMismatchError(t *testing.T) {
	err := MismatchError{NameA: "horner", ValueA: 29.0, NameB: "direct", ValueB: 29.5}

	for _, want := range []string{"horner", "direct", "29", "29.5"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Error() should contain %q, got %q", want, err.Error())
		}
	}
}

// TestTimeoutError tests the timeout error message.
func TestTimeoutError(t *testing.T) {
	err := TimeoutError{Operation: "evaluate", Limit: 5 * time.Second}
	if want := `operation "evaluate" timed out after 5s`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// TestWrapError tests error wrapping behavior.
func TestWrapError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should return nil")
		}
	})

	t.Run("wrapped error preserves chain", func(t *testing.T) {
		base := errors.New("root cause")
		wrapped := WrapError(base, "while evaluating degree %d", 7)

		if !errors.Is(wrapped, base) {
			t.Error("wrapped error should match the base with errors.Is")
		}
		if !strings.Contains(wrapped.Error(), "degree 7") {
			t.Errorf("wrapped message should include context, got %q", wrapped.Error())
		}
	})
}

// TestIsContextError tests context error detection.
func TestIsContextError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("run: %w", context.Canceled), true},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestHandleEvaluationError tests the error-to-exit-code mapping and that
// every error kind produces a user-visible message.
func TestHandleEvaluationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"nil error", nil, ExitSuccess, ""},
		{"deadline", context.DeadlineExceeded, ExitErrorTimeout, "timed out"},
		{"canceled", context.Canceled, ExitErrorCanceled, "canceled"},
		{"mismatch", MismatchError{NameA: "a", NameB: "b"}, ExitErrorMismatch, "mismatch"},
		{"invalid input", NewInvalidInputError("point", "not a number"), ExitErrorConfig, "point"},
		{"config", NewConfigError("bad flag"), ExitErrorConfig, "bad flag"},
		{"unavailable degrades to success", UnavailableError{Component: "benchmark runner"}, ExitSuccess, "unavailable"},
		{"generic", errors.New("boom"), ExitErrorGeneric, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := HandleEvaluationError(tt.err, time.Second, &buf, NoColorProvider{})

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantMsg != "" && !strings.Contains(buf.String(), tt.wantMsg) {
				t.Errorf("output should contain %q, got %q", tt.wantMsg, buf.String())
			}
			if tt.err != nil && buf.Len() == 0 {
				t.Error("non-nil error must produce a user-visible message")
			}
		})
	}
}

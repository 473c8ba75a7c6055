package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result disagreement between evaluators.
	ExitErrorConfig   = 4   // Indicates a configuration or input error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InvalidInputError represents a rejected user input: a negative or
// non-numeric degree, an unparsable evaluation point, or an empty coefficient
// sequence passed directly to an evaluator. It identifies which field was
// rejected and provides a human-readable explanation.
type InvalidInputError struct {
	// Field is the name of the input that was rejected.
	Field string
	// Message explains why the input was rejected.
	Message string
}

// Error returns a formatted message describing the rejected input.
//
// Returns:
//   - string: The error message string.
func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %q: %s", e.Field, e.Message)
}

// NewInvalidInputError creates a new InvalidInputError with a formatted message.
//
// Parameters:
//   - field: The name of the rejected input.
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new InvalidInputError instance.
func NewInvalidInputError(field, format string, a ...any) error {
	return InvalidInputError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// EvaluationError encapsulates an evaluator failure while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong during a polynomial evaluation.
type EvaluationError struct {
	// Cause is the underlying error that triggered this evaluation error.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e EvaluationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the EvaluationError.
func (e EvaluationError) Unwrap() error { return e.Cause }

// UnavailableError reports that an optional component could not be used:
// the reference evaluator's symbolic backend, or the benchmark runner's
// timing machinery. The affected component degrades gracefully; the rest of
// the application proceeds unaffected.
type UnavailableError struct {
	// Component names the degraded component (e.g., "reference evaluator").
	Component string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a formatted message describing the degraded component.
//
// Returns:
//   - string: The error message string.
func (e UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Component, e.Cause)
	}
	return fmt.Sprintf("%s unavailable", e.Component)
}

// Unwrap returns the underlying cause, which may be nil.
//
// Returns:
//   - error: The underlying cause of the UnavailableError.
func (e UnavailableError) Unwrap() error { return e.Cause }

// MismatchError reports that two evaluators disagreed beyond the configured
// floating-point tolerance for the same inputs. It carries both values for
// diagnostics.
type MismatchError struct {
	// NameA and NameB identify the disagreeing evaluators.
	NameA, NameB string
	// ValueA and ValueB are the disagreeing results.
	ValueA, ValueB float64
}

// Error returns a formatted message describing the disagreement.
//
// Returns:
//   - string: The error message string.
func (e MismatchError) Error() string {
	return fmt.Sprintf("result mismatch: %s returned %g, %s returned %g", e.NameA, e.ValueA, e.NameB, e.ValueB)
}

// TimeoutError represents an evaluation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsInvalidInput checks if the error chain contains an InvalidInputError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is an invalid-input error.
func IsInvalidInput(err error) bool {
	var iie InvalidInputError
	return errors.As(err, &iie)
}

// IsUnavailable checks if the error chain contains an UnavailableError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is an unavailable-component error.
func IsUnavailable(err error) bool {
	var ue UnavailableError
	return errors.As(err, &ue)
}

package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies ANSI color codes for error reporting. The interface
// decouples error presentation from the UI layer so this package does not
// depend on the CLI.
type ColorProvider interface {
	// Red returns the escape code for error text.
	Red() string
	// Yellow returns the escape code for warning text.
	Yellow() string
	// Reset returns the escape code that clears formatting.
	Reset() string
}

// NoColorProvider is a ColorProvider that emits no escape codes.
type NoColorProvider struct{}

// Red returns an empty string.
func (NoColorProvider) Red() string { return "" }

// Yellow returns an empty string.
func (NoColorProvider) Yellow() string { return "" }

// Reset returns an empty string.
func (NoColorProvider) Reset() string { return "" }

// HandleEvaluationError reports an evaluation failure to the user and maps it
// to the appropriate process exit code. Every error kind produces a visible
// message; nothing is silently swallowed.
//
// Parameters:
//   - err: The error to report. A nil error returns ExitSuccess.
//   - duration: How long the operation ran before failing.
//   - out: The writer for the user-visible message.
//   - colors: The color provider for message formatting.
//
// Returns:
//   - int: The exit code corresponding to the error kind.
func HandleEvaluationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sError: evaluation timed out after %s.%s\n", colors.Red(), duration, colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sEvaluation canceled.%s\n", colors.Yellow(), colors.Reset())
		return ExitErrorCanceled
	}

	var mismatchErr MismatchError
	if errors.As(err, &mismatchErr) {
		fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), mismatchErr, colors.Reset())
		return ExitErrorMismatch
	}

	var inputErr InvalidInputError
	if errors.As(err, &inputErr) {
		fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), inputErr, colors.Reset())
		return ExitErrorConfig
	}

	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), cfgErr, colors.Reset())
		return ExitErrorConfig
	}

	var unavailErr UnavailableError
	if errors.As(err, &unavailErr) {
		fmt.Fprintf(out, "%sWarning: %v%s\n", colors.Yellow(), unavailErr, colors.Reset())
		return ExitSuccess
	}

	fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), err, colors.Reset())
	return ExitErrorGeneric
}

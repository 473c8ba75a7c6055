package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/polycalc/internal/errors"
	"github.com/agbru/polycalc/internal/orchestration"
	"github.com/agbru/polycalc/internal/polynomial"
)

func TestPresentComparisonTable(t *testing.T) {
	t.Parallel()

	results := []orchestration.EvaluationResult{
		{Name: "Horner Scheme", Value: 29, Duration: 120 * time.Nanosecond},
		{Name: "Direct Summation", Value: 29, Duration: 450 * time.Nanosecond},
		{Name: "Symbolic Reference", Err: errors.New("backend unavailable"), Duration: time.Microsecond},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	output := buf.String()

	if !strings.Contains(output, "Comparison Summary") {
		t.Error("Output should contain the table title")
	}
	for _, want := range []string{"Horner Scheme", "Direct Summation", "Symbolic Reference"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output should contain %q", want)
		}
	}
	if !strings.Contains(output, "Success") {
		t.Error("Output should mark successful evaluators")
	}
	if !strings.Contains(output, "Failure") {
		t.Error("Output should mark the failed evaluator")
	}
	if !strings.Contains(output, "backend unavailable") {
		t.Error("Output should include the failure reason")
	}
}

func TestPresentResult(t *testing.T) {
	t.Parallel()

	result := orchestration.EvaluationResult{
		Name:     "Horner Scheme",
		Value:    29,
		Duration: 120 * time.Nanosecond,
	}
	opts := orchestration.PresentationOptions{
		Coefficients: polynomial.Coefficients{2, 0, 0, 1},
		X:            3,
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentResult(result, opts, &buf)
	output := buf.String()

	if !strings.Contains(output, "Horner Scheme") {
		t.Error("Output should name the algorithm")
	}
	if !strings.Contains(output, "29") {
		t.Error("Output should contain the value")
	}
	if !strings.Contains(output, "p(3)") {
		t.Error("Output should show the evaluation point")
	}
}

func TestPresentResultVerbose(t *testing.T) {
	t.Parallel()

	result := orchestration.EvaluationResult{
		Name:     "Horner Scheme",
		Value:    0.1,
		Duration: time.Microsecond,
	}
	opts := orchestration.PresentationOptions{
		Coefficients: polynomial.Coefficients{0.1},
		X:            2,
		Verbose:      true,
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentResult(result, opts, &buf)
	output := buf.String()

	if !strings.Contains(output, "Full precision") {
		t.Error("Verbose output should include the full-precision value")
	}
	if !strings.Contains(output, "0.10000000000000001") {
		t.Error("Verbose output should render all 17 significant digits")
	}
}

func TestHandleErrorExitCodes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"Timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{"Canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"Invalid input", apperrors.NewInvalidInputError("x", "not a number"), apperrors.ExitErrorConfig},
		{"Generic", errors.New("boom"), apperrors.ExitErrorGeneric},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := CLIResultPresenter{}.HandleError(tc.err, time.Second, &buf)
			if code != tc.wantCode {
				t.Errorf("HandleError(%v) = %d, want %d", tc.err, code, tc.wantCode)
			}
			if buf.Len() == 0 {
				t.Error("HandleError should write a diagnostic message")
			}
		})
	}
}

func TestFormatTableDuration(t *testing.T) {
	t.Parallel()

	if got := formatTableDuration(0); got != "< 1ns" {
		t.Errorf("formatTableDuration(0) = %q, want %q", got, "< 1ns")
	}
	if got := formatTableDuration(time.Millisecond); got == "< 1ns" {
		t.Errorf("formatTableDuration(1ms) should not floor, got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	if got := padRight("abc", 3); got != "abc   " {
		t.Errorf("padRight(\"abc\", 3) = %q", got)
	}
	if got := padRight("abc", 0); got != "abc" {
		t.Errorf("padRight(\"abc\", 0) = %q", got)
	}
	if got := padRight("abc", -2); got != "abc" {
		t.Errorf("padRight(\"abc\", -2) = %q", got)
	}
}

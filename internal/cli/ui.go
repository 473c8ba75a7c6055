//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/polycalc/internal/format"
)

// SpinnerRefreshRate defines the refresh frequency of the benchmark spinner.
const SpinnerRefreshRate = 200 * time.Millisecond

// FormatExecutionDuration formats a time.Duration for display. It delegates
// to the shared formatting helper so the CLI, REPL and benchmark report all
// render durations identically.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the benchmark display to be decoupled from a specific spinner
// implementation, facilitating easier testing. It defines the essential
// controls for a spinner: starting, stopping, and updating its status
// message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// NewSpinner is the spinner constructor used by the benchmark display.
// Tests replace it with a silent implementation.
var NewSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// Package app wires configuration, evaluators, and presentation into the
// polycalc application and dispatches the selected run mode.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/polycalc/internal/cli"
	"github.com/agbru/polycalc/internal/config"
	apperrors "github.com/agbru/polycalc/internal/errors"
	"github.com/agbru/polycalc/internal/logging"
	"github.com/agbru/polycalc/internal/polynomial"
	"github.com/agbru/polycalc/internal/server"
	"github.com/agbru/polycalc/internal/tui"
	"github.com/agbru/polycalc/internal/ui"
)

// Application represents the polycalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   polynomial.EvaluatorFactory
	Logger    logging.Logger
	ErrWriter io.Writer

	// in feeds the REPL and guided mode; os.Stdin in production, a canned
	// reader in tests.
	in io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom EvaluatorFactory for the application.
func WithFactory(f polynomial.EvaluatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithInput sets the interactive input reader (used by tests).
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.in = in }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The writer for usage and configuration errors.
//   - opts: Optional construction overrides.
//
// Returns:
//   - *Application: The configured application.
//   - error: flag.ErrHelp when -h was requested, or a ConfigError.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = polynomial.NewDefaultFactory()
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "app")
	}

	cfg, err := config.ParseConfig(args, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(false)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.MetricsAddr != "" {
		a.startMetricsServer(ctx)
	}

	switch {
	case a.Config.Calibrate:
		return a.runCalibration(ctx, out)
	case a.Config.TUI:
		return a.runTUI(ctx)
	case a.Config.Interactive:
		return a.runREPL(out)
	case a.Config.Bench:
		return a.runBench(ctx, out)
	case !a.Config.HasExplicitInput() && !a.Config.Quiet:
		return a.runGuided(ctx, out)
	}

	return a.runEvaluate(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// startMetricsServer launches the observability HTTP server in the
// background. A failing server is logged but never takes down an evaluation.
func (a *Application) startMetricsServer(ctx context.Context) {
	srv := server.New(a.Config.MetricsAddr, a.Factory, a.Logger)
	go func() {
		if err := srv.Start(ctx); err != nil {
			a.Logger.Error("observability server failed", err,
				logging.String("addr", a.Config.MetricsAddr))
		}
	}()
}

// runTUI launches the interactive TUI dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	coeffs, code := a.resolveCoefficients()
	if code != apperrors.ExitSuccess {
		return code
	}
	return tui.Run(ctx, a.Factory, coeffs, a.Config)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

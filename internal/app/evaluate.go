package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/agbru/polycalc/internal/bench"
	"github.com/agbru/polycalc/internal/cli"
	apperrors "github.com/agbru/polycalc/internal/errors"
	"github.com/agbru/polycalc/internal/orchestration"
	"github.com/agbru/polycalc/internal/polynomial"
)

// runEvaluate orchestrates a one-shot evaluation or comparison run.
func (a *Application) runEvaluate(ctx context.Context, out io.Writer) int {
	coeffs, code := a.resolveCoefficients()
	if code != apperrors.ExitSuccess {
		return code
	}

	evaluators := orchestration.GetEvaluatorsToRun(a.Config.Algo, a.Factory)
	if len(evaluators) == 0 {
		fmt.Fprintf(a.ErrWriter, "Unknown algorithm: %s (available: %v)\n",
			a.Config.Algo, a.Factory.List())
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, coeffs, out)
		cli.PrintExecutionMode(evaluators, out)
	}

	evalCtx, cancel := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancel()

	results := orchestration.ExecuteEvaluations(evalCtx, evaluators, coeffs, a.Config.X)

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	return a.analyzeResultsWithOutput(results, coeffs, outputCfg, out)
}

// analyzeResultsWithOutput analyzes the evaluation results and handles quiet
// mode and optional file output.
func (a *Application) analyzeResultsWithOutput(results []orchestration.EvaluationResult, coeffs polynomial.Coefficients, outputCfg cli.OutputConfig, out io.Writer) int {
	bestResult := findBestResult(results)

	// Quiet mode prints only the value, but a cross-check failure must still
	// surface through the exit code.
	if outputCfg.Quiet {
		if bestResult == nil {
			presenter := cli.CLIResultPresenter{}
			return presenter.HandleError(firstError(results), 0, a.ErrWriter)
		}
		if code := quietMismatchCode(results, bestResult); code != apperrors.ExitSuccess {
			fmt.Fprintln(a.ErrWriter, "Error: evaluators disagree on the result")
			return code
		}
		if err := cli.DisplayResultWithConfig(out, bestResult.Value, coeffs, a.Config.X, bestResult.Name, bestResult.Duration, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	presOpts := orchestration.PresentationOptions{
		Coefficients: coeffs,
		X:            a.Config.X,
		Verbose:      a.Config.Verbose,
	}
	presenter := cli.CLIResultPresenter{}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, out)

	if bestResult != nil && exitCode == apperrors.ExitSuccess && outputCfg.OutputFile != "" {
		if err := cli.WriteResultToFile(bestResult.Value, coeffs, a.Config.X, bestResult.Name, bestResult.Duration, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		fmt.Fprintf(out, "\nResult saved to: %s\n", outputCfg.OutputFile)
	}

	return exitCode
}

// runBench executes a benchmark campaign.
func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	evaluators := orchestration.GetEvaluatorsToRun(a.Config.Algo, a.Factory)
	if len(evaluators) == 0 {
		fmt.Fprintf(a.ErrWriter, "Unknown algorithm: %s\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	opts := bench.Options{
		Trials: a.Config.Trials,
		Degree: a.Config.Degree,
		X:      a.Config.X,
		Seed:   a.effectiveSeed(),
	}

	// An untouched trial count defers to the calibration profile.
	if opts.Trials == 0 {
		if profile := bench.LoadValidProfile(a.profilePath(), a.Config.Degree); profile != nil {
			opts.Trials = profile.CalibratedTrials
			if !a.Config.Quiet {
				fmt.Fprintf(out, "Using calibrated trial count: %d\n", opts.Trials)
			}
		}
	}

	if err := cli.RunBenchmark(ctx, evaluators, opts, out); err != nil {
		presenter := cli.CLIResultPresenter{}
		return presenter.HandleError(err, 0, a.ErrWriter)
	}
	return apperrors.ExitSuccess
}

// runCalibration measures the per-trial cost and persists the calibrated
// trial count.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	evaluators := a.Factory.GetAll()
	path := a.profilePath()

	fmt.Fprintf(out, "Calibrating benchmark trial count (degree %d, target %s per evaluator)...\n",
		a.Config.Degree, bench.DefaultTargetDuration)

	profile, err := bench.CalibrateAndSave(ctx, evaluators, a.Config.Degree, a.Config.X, bench.DefaultTargetDuration, path)
	if err != nil {
		presenter := cli.CLIResultPresenter{}
		return presenter.HandleError(err, 0, a.ErrWriter)
	}

	fmt.Fprintf(out, "Calibrated trials: %d (measured in %s)\n", profile.CalibratedTrials, profile.CalibrationTime)
	if path != "" {
		fmt.Fprintf(out, "Profile saved to: %s\n", path)
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive session.
func (a *Application) runREPL(out io.Writer) int {
	coeffs, code := a.resolveCoefficients()
	if code != apperrors.ExitSuccess {
		return code
	}

	repl := cli.NewREPL(a.Factory, coeffs, cli.REPLConfig{
		DefaultAlgo: a.Config.Algo,
		Timeout:     a.Config.Timeout,
		Verbose:     a.Config.Verbose,
	})
	if a.in != nil {
		repl.SetInput(a.in)
	}
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runGuided starts the step-by-step dialogue used when no explicit input was
// given.
func (a *Application) runGuided(ctx context.Context, out io.Writer) int {
	in := a.in
	if in == nil {
		in = os.Stdin
	}
	return cli.NewGuidedSession(a.Factory, a.Config, in, out).Run(ctx)
}

// resolveCoefficients produces the input polynomial from the configuration.
func (a *Application) resolveCoefficients() (polynomial.Coefficients, int) {
	coeffs, generated, err := a.Config.Coefficients()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Invalid coefficients: %v\n", err)
		return nil, apperrors.ExitErrorConfig
	}
	if generated {
		rng := rand.New(rand.NewSource(a.effectiveSeed()))
		coeffs, err = polynomial.RandomCoefficients(a.Config.Degree, rng)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Invalid degree: %v\n", err)
			return nil, apperrors.ExitErrorConfig
		}
	}
	return coeffs, apperrors.ExitSuccess
}

// effectiveSeed maps the configured seed to a usable one. Zero derives the
// seed from the clock.
func (a *Application) effectiveSeed() int64 {
	if a.Config.Seed != 0 {
		return a.Config.Seed
	}
	return time.Now().UnixNano()
}

// profilePath returns the calibration profile location.
func (a *Application) profilePath() string {
	if a.Config.CalibrationProfile != "" {
		return a.Config.CalibrationProfile
	}
	return bench.DefaultProfilePath()
}

// findBestResult returns the fastest successful result, or nil when every
// evaluator failed.
func findBestResult(results []orchestration.EvaluationResult) *orchestration.EvaluationResult {
	var best *orchestration.EvaluationResult
	for i := range results {
		if results[i].Err == nil {
			if best == nil || results[i].Duration < best.Duration {
				best = &results[i]
			}
		}
	}
	return best
}

// firstError returns the first evaluation error in the result set.
func firstError(results []orchestration.EvaluationResult) error {
	for _, res := range results {
		if res.Err != nil {
			return res.Err
		}
	}
	return nil
}

// quietMismatchCode cross-checks successful results against the reference
// even when the comparison table is suppressed.
func quietMismatchCode(results []orchestration.EvaluationResult, reference *orchestration.EvaluationResult) int {
	for _, res := range results {
		if res.Err == nil && !polynomial.WithinTolerance(reference.Value, res.Value) {
			return apperrors.ExitErrorMismatch
		}
	}
	return apperrors.ExitSuccess
}

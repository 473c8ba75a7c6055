package bench

import (
	"context"
	"math/rand"
	"time"

	apperrors "github.com/agbru/polycalc/internal/errors"
	"github.com/agbru/polycalc/internal/polynomial"
)

// Calibration bounds. The trial count is clamped so a pathologically fast or
// slow evaluator still yields a usable campaign.
const (
	MinTrials = 100
	MaxTrials = 5_000_000

	// DefaultTargetDuration is the per-evaluator measurement budget the
	// calibrated trial count aims for.
	DefaultTargetDuration = 2 * time.Second

	// probeRounds is the number of timing probes averaged per estimate.
	probeRounds = 5
	// probeBatch is the number of evaluations per timing probe.
	probeBatch = 64
)

// CalibrateTrials estimates the trial count that makes one evaluator's
// measured campaign last roughly target.
//
// The estimate times small batches of evaluations of the slowest registered
// evaluator shape (the caller passes whichever evaluator should bound the
// campaign) and divides the target budget by the observed per-trial cost.
//
// Parameters:
//   - ctx: The context for cancellation between probe batches.
//   - evaluator: The evaluator whose cost bounds the campaign.
//   - degree: The polynomial degree the campaign will use.
//   - x: The evaluation point the campaign will use.
//   - target: The per-evaluator measurement budget.
//
// Returns:
//   - int: The calibrated trial count, clamped to [MinTrials, MaxTrials].
//   - error: The context error if calibration was canceled, or the
//     evaluator's error if it cannot evaluate the probe input.
func CalibrateTrials(ctx context.Context, evaluator polynomial.Evaluator, degree int, x float64, target time.Duration) (int, error) {
	if target <= 0 {
		target = DefaultTargetDuration
	}

	coeffs, err := polynomial.RandomCoefficients(degree, rand.New(rand.NewSource(1)))
	if err != nil {
		return 0, err
	}

	var total time.Duration
	for round := 0; round < probeRounds; round++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		start := time.Now()
		for i := 0; i < probeBatch; i++ {
			if _, err := evaluator.Evaluate(ctx, coeffs, x); err != nil {
				if apperrors.IsContextError(err) {
					return 0, err
				}
				return 0, apperrors.WrapError(err, "calibration probe failed")
			}
		}
		total += time.Since(start)
	}

	perTrial := total / (probeRounds * probeBatch)
	if perTrial <= 0 {
		perTrial = time.Nanosecond
	}

	trials := int(target / perTrial)
	if trials < MinTrials {
		trials = MinTrials
	}
	if trials > MaxTrials {
		trials = MaxTrials
	}
	return trials, nil
}

// CalibrateAndSave runs trial calibration against the slowest evaluator in
// the set and persists the result at path. The returned profile is usable
// even when persistence fails; the error then reports the save failure.
//
// Parameters:
//   - ctx: The context for cancellation.
//   - evaluators: The evaluator set the campaign will measure.
//   - degree: The polynomial degree the campaign will use.
//   - x: The evaluation point the campaign will use.
//   - target: The per-evaluator measurement budget.
//   - path: The profile file location. Empty disables persistence.
//
// Returns:
//   - *Profile: The calibrated profile.
//   - error: A calibration or persistence failure.
func CalibrateAndSave(ctx context.Context, evaluators []polynomial.Evaluator, degree int, x float64, target time.Duration, path string) (*Profile, error) {
	if len(evaluators) == 0 {
		return nil, apperrors.NewInvalidInputError("evaluators", "at least one evaluator is required")
	}

	start := time.Now()
	trials := MaxTrials
	for _, evaluator := range evaluators {
		t, err := CalibrateTrials(ctx, evaluator, degree, x, target)
		if err != nil {
			return nil, err
		}
		// The slowest evaluator bounds the campaign.
		if t < trials {
			trials = t
		}
	}

	profile := NewProfile()
	profile.CalibratedTrials = trials
	profile.CalibrationDegree = degree
	profile.CalibrationTime = time.Since(start).Round(time.Millisecond).String()

	if path != "" {
		if err := profile.SaveProfile(path); err != nil {
			return profile, apperrors.WrapError(err, "saving calibration profile")
		}
	}
	return profile, nil
}

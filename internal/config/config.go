package config

import (
	"flag"
	"io"
	"math"
	"time"

	apperrors "github.com/agbru/polycalc/internal/errors"
	"github.com/agbru/polycalc/internal/polynomial"
)

// EnvPrefix is the prefix of every environment variable read by the
// application (e.g., POLYCALC_ALGO).
const EnvPrefix = "POLYCALC_"

// Defaults applied before environment and flag resolution.
const (
	DefaultDegree  = 16
	DefaultX       = 0.5
	DefaultAlgo    = "all"
	DefaultTimeout = 1 * time.Minute
	DefaultTrials  = 0 // 0 lets the bench runner pick its own default
	DefaultSeed    = 0 // 0 derives the seed from the clock at run time
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Degree is the polynomial degree used when coefficients are generated.
	Degree int
	// Coeffs is the raw comma-separated coefficient list, empty when the
	// polynomial should be generated from Degree and Seed.
	Coeffs string
	// X is the evaluation point.
	X float64
	// Algo selects the evaluators to run ("all" or a registry key).
	Algo string
	// Timeout bounds a single evaluation run.
	Timeout time.Duration
	// Seed seeds coefficient generation. Zero means time-derived.
	Seed int64

	// Bench requests a benchmark campaign instead of a single evaluation.
	Bench bool
	// Trials is the per-evaluator trial count for benchmarks. Zero defers to
	// the calibration profile or the runner default.
	Trials int
	// Calibrate runs trial calibration and persists the profile.
	Calibrate bool
	// CalibrationProfile overrides the profile location.
	CalibrationProfile string

	// Interactive starts the REPL.
	Interactive bool
	// TUI starts the terminal dashboard.
	TUI bool
	// Completion emits a shell completion script ("bash", "zsh", "fish",
	// "powershell") and exits.
	Completion string
	// Version prints version information and exits.
	Version bool

	// Verbose enables detailed output; Quiet suppresses everything except
	// the final value.
	Verbose bool
	Quiet   bool
	// OutputFile, when set, receives a copy of the evaluation result.
	OutputFile string
	// MetricsAddr, when set, starts the observability HTTP server.
	MetricsAddr string

	// explicitInput records whether the user supplied -coeffs, -degree or -x
	// on the command line. Without explicit input the driver enters guided
	// mode.
	explicitInput bool
}

// HasExplicitInput reports whether the user specified the polynomial or the
// evaluation point on the command line.
func (c AppConfig) HasExplicitInput() bool { return c.explicitInput }

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment overrides for flags the user did not set.
//
// Parameters:
//   - args: The command-line arguments, excluding the program name.
//   - output: The writer for flag-package usage output.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when -h was requested, or a ConfigError for
//     invalid values.
func ParseConfig(args []string, output io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Degree:  DefaultDegree,
		X:       DefaultX,
		Algo:    DefaultAlgo,
		Timeout: DefaultTimeout,
		Trials:  DefaultTrials,
		Seed:    DefaultSeed,
	}

	fs := flag.NewFlagSet("polycalc", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&cfg.Degree, "degree", cfg.Degree, "Degree of the generated polynomial")
	fs.StringVar(&cfg.Coeffs, "coeffs", cfg.Coeffs, "Comma-separated coefficients, constant term first (e.g. \"1,-3,2\")")
	fs.Float64Var(&cfg.X, "x", cfg.X, "Evaluation point")
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, "Algorithm to run: all, direct, power, horner, reference")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Evaluation timeout (e.g. 30s, 2m)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for coefficient generation (0 = time-derived)")

	fs.BoolVar(&cfg.Bench, "bench", false, "Run a benchmark campaign")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "Benchmark trials per algorithm (0 = calibrated or default)")
	fs.BoolVar(&cfg.Calibrate, "calibrate", false, "Calibrate the benchmark trial count and save the profile")
	fs.StringVar(&cfg.CalibrationProfile, "calibration-profile", "", "Calibration profile path (default ~/"+profileHint+")")

	fs.BoolVar(&cfg.Interactive, "i", false, "Start the interactive REPL")
	fs.BoolVar(&cfg.TUI, "tui", false, "Start the terminal dashboard")
	fs.StringVar(&cfg.Completion, "completion", "", "Emit a shell completion script: bash, zsh, fish, powershell")
	fs.BoolVar(&cfg.Version, "version", false, "Print version information and exit")

	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only the final value")
	fs.BoolVar(&cfg.Quiet, "q", false, "Print only the final value")
	fs.StringVar(&cfg.OutputFile, "output", "", "Write the result to a file")
	fs.StringVar(&cfg.OutputFile, "o", "", "Write the result to a file")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "Start the observability server on this address (e.g. localhost:9090)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	applyEnvOverrides(&cfg, fs)
	cfg.explicitInput = isFlagSetAny(fs, "coeffs", "degree", "x") || cfg.Coeffs != ""

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// profileHint keeps the usage text in sync with the bench package's default
// file name without importing it (config stays dependency-light).
const profileHint = ".polycalc_bench.json"

// Validate checks the resolved configuration for contradictions and
// unusable values.
//
// Returns:
//   - error: A ConfigError describing the first problem found.
func (c AppConfig) Validate() error {
	if c.Degree < 0 {
		return apperrors.NewConfigError("degree must be non-negative, got %d", c.Degree)
	}
	if c.Coeffs != "" {
		if _, err := polynomial.ParseCoefficients(c.Coeffs); err != nil {
			return apperrors.NewConfigError("invalid -coeffs value: %v", err)
		}
	}
	if math.IsNaN(c.X) {
		return apperrors.NewConfigError("evaluation point must not be NaN")
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Trials < 0 {
		return apperrors.NewConfigError("trials must be non-negative, got %d", c.Trials)
	}
	if c.Verbose && c.Quiet {
		return apperrors.NewConfigError("-verbose and -quiet are mutually exclusive")
	}
	switch c.Completion {
	case "", "bash", "zsh", "fish", "powershell":
	default:
		return apperrors.NewConfigError("unsupported completion shell %q", c.Completion)
	}
	return nil
}

// Coefficients resolves the input polynomial: parsed from -coeffs when
// given, otherwise generated from Degree with the given rng-ready seed.
//
// Returns:
//   - polynomial.Coefficients: The resolved coefficient sequence.
//   - bool: true when the coefficients were generated rather than parsed.
//   - error: A parse failure (Validate catches this earlier in normal flow).
func (c AppConfig) Coefficients() (polynomial.Coefficients, bool, error) {
	if c.Coeffs != "" {
		coeffs, err := polynomial.ParseCoefficients(c.Coeffs)
		return coeffs, false, err
	}
	return nil, true, nil
}

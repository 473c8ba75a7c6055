package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// envOverride maps one POLYCALC_-prefixed environment variable to the CLI
// flag name(s) it mirrors. The env value is applied only when none of the
// flags was given explicitly, keeping the priority CLI > env > defaults.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// Typed setters keep the override table declarative. Unparsable values are
// ignored so a bad environment cannot break startup.

func setInt(dst *int) func(*AppConfig, string) {
	return func(_ *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setInt64(dst *int64) func(*AppConfig, string) {
	return func(_ *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = parsed
		}
	}
}

func setFloat(dst *float64) func(*AppConfig, string) {
	return func(_ *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
}

func setDuration(dst *time.Duration) func(*AppConfig, string) {
	return func(_ *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}

func setString(dst *string) func(*AppConfig, string) {
	return func(_ *AppConfig, v string) { *dst = v }
}

func setBool(dst *bool) func(*AppConfig, string) {
	return func(_ *AppConfig, v string) { *dst = parseBoolEnv(v, *dst) }
}

// envOverrideTable builds the override table bound to config's fields.
func envOverrideTable(config *AppConfig) []envOverride {
	return []envOverride{
		{"DEGREE", []string{"degree"}, setInt(&config.Degree)},
		{"X", []string{"x"}, setFloat(&config.X)},
		{"TRIALS", []string{"trials"}, setInt(&config.Trials)},
		{"SEED", []string{"seed"}, setInt64(&config.Seed)},
		{"TIMEOUT", []string{"timeout"}, setDuration(&config.Timeout)},
		{"COEFFS", []string{"coeffs"}, setString(&config.Coeffs)},
		{"ALGO", []string{"algo"}, setString(&config.Algo)},
		{"OUTPUT", []string{"output", "o"}, setString(&config.OutputFile)},
		{"CALIBRATION_PROFILE", []string{"calibration-profile"}, setString(&config.CalibrationProfile)},
		{"METRICS_ADDR", []string{"metrics-addr"}, setString(&config.MetricsAddr)},
		{"VERBOSE", []string{"v", "verbose"}, setBool(&config.Verbose)},
		{"QUIET", []string{"quiet", "q"}, setBool(&config.Quiet)},
		{"BENCH", []string{"bench"}, setBool(&config.Bench)},
		{"CALIBRATE", []string{"calibrate"}, setBool(&config.Calibrate)},
		{"TUI", []string{"tui"}, setBool(&config.TUI)},
	}
}

// parseBoolEnv interprets common boolean spellings, case-insensitively.
// Unrecognized values keep defaultVal.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// isFlagSetAny reports whether any of the named flags appeared on the
// command line. Aliased flags (short and long form) pass both names.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// applyEnvOverrides folds POLYCALC_* environment variables into config for
// every flag the command line left untouched.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrideTable(config) {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}

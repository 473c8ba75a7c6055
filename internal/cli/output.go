package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/polycalc/internal/polynomial"
	"github.com/agbru/polycalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything except the final value.
	Quiet bool
	// Verbose shows the full-precision value and input details.
	Verbose bool
}

// WriteResultToFile writes an evaluation result to a file.
//
// Parameters:
//   - value: The computed polynomial value.
//   - coeffs: The evaluated polynomial.
//   - x: The evaluation point.
//   - algo: The algorithm name used.
//   - duration: The evaluation duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(value float64, coeffs polynomial.Coefficients, x float64, algo string, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Polynomial Evaluation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Algorithm: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Degree: %d\n", coeffs.Degree())
	fmt.Fprintf(file, "# Polynomial: %s\n", coeffs)
	fmt.Fprintf(file, "\n")

	// Write result
	fmt.Fprintf(file, "p(%g) = %.17g\n", x, value)

	return nil
}

// DisplayResultWithConfig displays a result with the given output
// configuration. This is a unified function that handles all output modes.
//
// Parameters:
//   - out: The output writer.
//   - value: The computed polynomial value.
//   - coeffs: The evaluated polynomial.
//   - x: The evaluation point.
//   - algo: The algorithm name.
//   - duration: The evaluation duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, value float64, coeffs polynomial.Coefficients, x float64, algo string, duration time.Duration, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, value)
	} else {
		DisplayResult(value, coeffs, x, algo, duration, config.Verbose, out)
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteResultToFile(value, coeffs, x, algo, duration, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}

package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E verifies the built binary functions correctly.
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	binName := "polycalc"
	if runtime.GOOS == "windows" {
		binName = "polycalc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD; build from the module
	// root two levels up.
	rootDir := "../.."

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/polycalc")
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build polycalc: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Basic Evaluation",
			args:     []string{"-coeffs", "2,0,0,1", "-x", "3", "-algo", "horner"},
			wantOut:  "p(3) = 29",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "All Algorithms Comparison",
			args:     []string{"-coeffs", "1,-3,2", "-x", "0.5"},
			wantOut:  "comparison summary",
			wantCode: 0,
		},
		{
			name:     "Quiet Mode",
			args:     []string{"-coeffs", "2,0,0,1", "-x", "3", "--quiet"},
			wantOut:  "29",
			wantCode: 0,
		},
		{
			name:     "Generated Polynomial",
			args:     []string{"-degree", "8", "-seed", "42", "-x", "0.5"},
			wantOut:  "degree: 8",
			wantCode: 0,
		},
		{
			name:     "Unknown Algorithm",
			args:     []string{"-coeffs", "1,2", "--algo", "newton"},
			wantOut:  "newton",
			wantCode: 4,
		},
		{
			name:     "Invalid Coefficients",
			args:     []string{"-coeffs", "1,banana"},
			wantOut:  "invalid",
			wantCode: 4,
		},
		{
			name:     "Benchmark",
			args:     []string{"--bench", "-trials", "30", "-degree", "8", "-seed", "7"},
			wantOut:  "benchmark report",
			wantCode: 0,
		},
		{
			name:     "Completion Bash",
			args:     []string{"-completion", "bash"},
			wantOut:  "_polycalc_completions",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "polycalc",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()

			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else {
				if err == nil {
					t.Errorf("Expected non-zero exit code, but command succeeded.\nOutput: %s", outStr)
				} else if exitErr, ok := err.(*exec.ExitError); ok {
					if exitErr.ExitCode() != tt.wantCode {
						t.Errorf("Exit code mismatch: got %d, want %d\nOutput: %s",
							exitErr.ExitCode(), tt.wantCode, outStr)
					}
				}
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}
}

// TestCLI_E2E_EnvOverride verifies environment variables feed defaults.
func TestCLI_E2E_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	binPath := filepath.Join(tmpDir, "polycalc")
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/polycalc")
	cmd.Dir = "../.."
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build polycalc: %v", err)
	}

	run := exec.Command(binPath, "-x", "3", "--quiet")
	run.Env = append(os.Environ(), "NO_COLOR=1", "POLYCALC_COEFFS=2,0,0,1")
	output, err := run.CombinedOutput()
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if strings.TrimSpace(string(output)) != "29" {
		t.Errorf("POLYCALC_COEFFS should feed the polynomial, got %q", output)
	}
}

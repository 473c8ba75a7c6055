package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/polycalc/internal/polynomial"
)

var outputTestCoeffs = polynomial.Coefficients{2, 0, 0, 1}

func TestWriteResultToFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "result.txt")

	cfg := OutputConfig{OutputFile: path}
	if err := WriteResultToFile(29, outputTestCoeffs, 3, "Horner Scheme", 100*time.Microsecond, cfg); err != nil {
		t.Fatalf("WriteResultToFile returned error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	for _, want := range []string{"p(3) =", "29", "# Algorithm: Horner Scheme", "# Degree: 3"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("File missing %q:\n%s", want, content)
		}
	}
}

func TestWriteResultToFileCreatesNestedDirectories(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "reports", "2026", "result.txt")

	cfg := OutputConfig{OutputFile: path}
	if err := WriteResultToFile(29, outputTestCoeffs, 3, "Horner Scheme", time.Millisecond, cfg); err != nil {
		t.Fatalf("WriteResultToFile returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("File should exist under the nested directory: %v", err)
	}
}

func TestWriteResultToFileNoPath(t *testing.T) {
	t.Parallel()
	// An empty path means no file output was requested.
	if err := WriteResultToFile(29, outputTestCoeffs, 3, "Horner Scheme", time.Millisecond, OutputConfig{}); err != nil {
		t.Errorf("Empty output path should be a no-op, got %v", err)
	}
}

func TestFormatQuietResult(t *testing.T) {
	t.Parallel()

	if got := FormatQuietResult(29); got != "29" {
		t.Errorf("FormatQuietResult(29) = %q, want \"29\"", got)
	}
	// %.17g keeps the full float64 round-trip precision.
	if got := FormatQuietResult(0.1); got != "0.10000000000000001" {
		t.Errorf("FormatQuietResult(0.1) = %q, want the full-precision form", got)
	}
}

func TestDisplayQuietResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	DisplayQuietResult(&buf, 29)
	if strings.TrimSpace(buf.String()) != "29" {
		t.Errorf("Quiet output should be the bare value, got %q", buf.String())
	}
}

func TestDisplayResultWithConfig(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	tests := []struct {
		name        string
		cfg         OutputConfig
		wantSaveMsg bool
		wantDetails bool
	}{
		{"quiet without file", OutputConfig{Quiet: true}, false, false},
		{"normal with file", OutputConfig{OutputFile: filepath.Join(tmpDir, "a.txt")}, true, true},
		{"quiet with file", OutputConfig{Quiet: true, OutputFile: filepath.Join(tmpDir, "b.txt")}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := DisplayResultWithConfig(&buf, 29, outputTestCoeffs, 3, "Horner Scheme", 100*time.Microsecond, tt.cfg)
			if err != nil {
				t.Fatalf("DisplayResultWithConfig returned error: %v", err)
			}

			out := buf.String()
			if !strings.Contains(out, "29") {
				t.Errorf("Output should contain the value, got %q", out)
			}
			if got := strings.Contains(out, "Result saved to"); got != tt.wantSaveMsg {
				t.Errorf("Save message present = %v, want %v\noutput: %q", got, tt.wantSaveMsg, out)
			}
			if got := strings.Contains(out, "Algorithm"); got != tt.wantDetails {
				t.Errorf("Detail output present = %v, want %v\noutput: %q", got, tt.wantDetails, out)
			}
			if tt.cfg.OutputFile != "" {
				if _, err := os.Stat(tt.cfg.OutputFile); err != nil {
					t.Errorf("Output file should exist: %v", err)
				}
			}
		})
	}
}

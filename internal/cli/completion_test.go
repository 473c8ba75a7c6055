package cli

import (
	"bytes"
	"strings"
	"testing"
)

var completionAlgorithms = []string{"direct", "horner", "power", "reference"}

func TestGenerateCompletionSupportedShells(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		shell    string
		contains []string
	}{
		{
			shell: "bash",
			contains: []string{
				"_polycalc_completions",
				"complete -F _polycalc_completions polycalc",
				"--algo",
				"--bench",
				"horner",
			},
		},
		{
			shell: "zsh",
			contains: []string{
				"#compdef polycalc",
				"_arguments",
				"--algo",
				"horner",
			},
		},
		{
			shell: "fish",
			contains: []string{
				"complete -c polycalc",
				"-l algo",
				"-l calibration-profile",
				"horner",
			},
		},
		{
			shell: "powershell",
			contains: []string{
				"Register-ArgumentCompleter",
				"$polycalcAlgorithms",
				"--algo",
				"'horner'",
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := GenerateCompletion(&buf, tc.shell, completionAlgorithms)
			if err != nil {
				t.Fatalf("GenerateCompletion(%q) returned error: %v", tc.shell, err)
			}
			output := buf.String()
			for _, want := range tc.contains {
				if !strings.Contains(output, want) {
					t.Errorf("%s completion should contain %q", tc.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletionPowerShellAlias(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, "ps", completionAlgorithms); err != nil {
		t.Fatalf("GenerateCompletion(\"ps\") returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "Register-ArgumentCompleter") {
		t.Error("\"ps\" should generate the PowerShell script")
	}
}

func TestGenerateCompletionUnsupportedShell(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, "tcsh", completionAlgorithms)
	if err == nil {
		t.Fatal("Expected error for unsupported shell")
	}
	if !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("Error should name the problem, got: %v", err)
	}
}

func TestFlagRegistryCoversCLIFlags(t *testing.T) {
	t.Parallel()

	// Every value-taking flag needs a ValueName so zsh renders a placeholder.
	for _, f := range flagRegistry {
		if len(f.Values) > 0 && f.ValueName == "" {
			t.Errorf("Flag %q has values but no ValueName", f.Long)
		}
		if f.Long == "" && f.Short == "" {
			t.Error("Flag registry entry with neither long nor short name")
		}
	}
}

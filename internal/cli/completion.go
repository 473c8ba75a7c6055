package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsAlgo    bool     // true if values come from the algorithm list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Help: "Show version information"},
	{Long: "coeffs", Help: "Comma-separated coefficients, constant first", ValueName: "coefficients"},
	{Long: "degree", Help: "Degree of the generated polynomial", Values: []string{"8", "16", "32", "64", "128"}, ValueName: "degree"},
	{Long: "x", Help: "Evaluation point", ValueName: "point"},
	{Long: "algo", Help: "Algorithm to use", IsAlgo: true, ValueName: "algorithm"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "30s", "1m", "5m"}, ValueName: "duration"},
	{Long: "bench", Help: "Run a benchmark campaign"},
	{Long: "trials", Help: "Trials per evaluator in benchmark mode", Values: []string{"1000", "10000", "100000"}, ValueName: "trials"},
	{Long: "seed", Help: "Seed for random coefficient generation", ValueName: "seed"},
	{Long: "calibrate", Help: "Run trial-count calibration"},
	{Long: "calibration-profile", Help: "Calibration profile file", IsFile: true, ValueName: "file"},
	{Short: "i", Help: "Start the interactive REPL"},
	{Long: "tui", Help: "Start the terminal dashboard"},
	{Long: "metrics-addr", Help: "Address of the observability HTTP server", ValueName: "address"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "verbose", Short: "v", Help: "Verbose output"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified
// shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//   - algorithms: List of available algorithm names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, algorithms)
	case "zsh":
		return generateZshCompletion(out, algorithms)
	case "fish":
		return generateFishCompletion(out, algorithms)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, algorithms)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// joinAlgorithms renders the algorithm names as a space-separated word list.
func joinAlgorithms(algorithms []string) string {
	return strings.Join(algorithms, " ")
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, algorithms []string) error {
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	var caseBody strings.Builder
	writeCase := func(patterns []string, body string) {
		caseBody.WriteString("        ")
		caseBody.WriteString(strings.Join(patterns, "|"))
		caseBody.WriteString(")\n            ")
		caseBody.WriteString(body)
		caseBody.WriteString("\n            return 0\n            ;;\n")
	}

	var filePatterns []string
	for _, f := range flagRegistry {
		switch {
		case f.IsAlgo:
			writeCase([]string{"--" + f.Long}, `COMPREPLY=( $(compgen -W "${algorithms}" -- "${cur}") )`)
		case f.IsFile:
			filePatterns = append(filePatterns, "--"+f.Long)
			if f.Short != "" {
				filePatterns = append(filePatterns, "-"+f.Short)
			}
		case len(f.Values) > 0:
			writeCase([]string{"--" + f.Long},
				fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " ")))
		}
	}
	if len(filePatterns) > 0 {
		writeCase(filePatterns, `COMPREPLY=( $(compgen -f -- "${cur}") )`)
	}

	script := fmt.Sprintf(`# Bash completion script for polycalc
# Add this to your ~/.bashrc or ~/.bash_completion

_polycalc_completions() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="%s"

    # Available algorithms
    algorithms="%s all"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _polycalc_completions polycalc
`, strings.Join(opts, " "), joinAlgorithms(algorithms), caseBody.String())

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("write bash completion: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, algorithms []string) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef polycalc

# Zsh completion script for polycalc
# Add this to your ~/.zshrc or place in $fpath

_polycalc() {
    local -a algorithms
    algorithms=(%s all)

    _arguments -s \
%s
}

_polycalc "$@"
`, joinAlgorithms(algorithms), strings.Join(args, " \\\n"))

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("write zsh completion: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsAlgo:
		valueSuffix = fmt.Sprintf(":%s:($algorithms)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		// Value-taking flag with no suggestions (e.g., --x)
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, algorithms []string) error {
	algoList := joinAlgorithms(algorithms)

	lines := []string{
		"# Fish completion script for polycalc",
		"# Add this to ~/.config/fish/completions/polycalc.fish",
		"",
		"# Disable file completion by default",
		"complete -c polycalc -f",
		"",
	}
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, algoList))
	}
	lines = append(lines, "")

	_, err := fmt.Fprint(out, strings.Join(lines, "\n"))
	if err != nil {
		return fmt.Errorf("write fish completion: %w", err)
	}
	return nil
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, algoList string) string {
	var parts []string
	parts = append(parts, "complete -c polycalc")

	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	if f.Long != "" {
		parts = append(parts, fmt.Sprintf("-l %s", f.Long))
	}

	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case f.IsAlgo:
		parts = append(parts, fmt.Sprintf("-xa '%s all'", algoList))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		// Takes a value but no suggestions (e.g., --x)
		parts = append(parts, "-x")
	}

	return strings.Join(parts, " ")
}

// generatePowerShellCompletion generates a PowerShell completion script.
func generatePowerShellCompletion(out io.Writer, algorithms []string) error {
	var optionEntries []string
	for _, f := range flagRegistry {
		if f.Short != "" {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '-%s'; Description = '%s' }", f.Short, f.Help))
		}
		if f.Long != "" {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '--%s'; Description = '%s' }", f.Long, f.Help))
		}
	}

	var switchEntries []string
	for _, f := range flagRegistry {
		switch {
		case f.IsAlgo:
			switchEntries = append(switchEntries, fmt.Sprintf(`        '--%s' {
            $polycalcAlgorithms | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long))
		case !f.IsFile && len(f.Values) > 0:
			var quotedVals []string
			for _, v := range f.Values {
				quotedVals = append(quotedVals, fmt.Sprintf("'%s'", v))
			}
			switchEntries = append(switchEntries, fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, strings.Join(quotedVals, ", ")))
		}
	}

	var psAlgoList strings.Builder
	for i, algo := range algorithms {
		if i > 0 {
			psAlgoList.WriteString(", ")
		}
		fmt.Fprintf(&psAlgoList, "'%s'", algo)
	}

	script := fmt.Sprintf(`# PowerShell completion script for polycalc
# Add this to your $PROFILE

$polycalcAlgorithms = @(%s, 'all')

Register-ArgumentCompleter -CommandName 'polycalc' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    # Context-aware completions
    switch ($prevElement) {
%s
    }

    # Default: show options
    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, psAlgoList.String(), strings.Join(optionEntries, "\n"), strings.Join(switchEntries, "\n"))

	_, err := fmt.Fprint(out, script)
	return err
}

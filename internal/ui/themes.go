package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme groups the ANSI escape codes used for colorized CLI output. One
// field per color category; the zero value renders everything uncolored.
type Theme struct {
	Name      string
	Primary   string // main accent for headings and prompts
	Secondary string // de-emphasized detail
	Success   string
	Warning   string
	Error     string
	Info      string
	Accent    string // highlighted values such as evaluator names
	Bold      string
	Underline string
	Reset     string
}

var (
	// DarkTheme targets dark terminal backgrounds with bright accents.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;75m",
		Secondary: "\033[38;5;245m",
		Success:   "\033[38;5;118m",
		Warning:   "\033[38;5;214m",
		Error:     "\033[38;5;203m",
		Info:      "\033[38;5;80m",
		Accent:    "\033[38;5;177m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme uses darker tones readable on light backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;25m",
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;22m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;88m",
		Info:      "\033[38;5;30m",
		Accent:    "\033[38;5;91m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all styling. Active when NO_COLOR is set.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme carries the lipgloss palette for the dashboard. Fields are
// lipgloss.TerminalColor values usable with Foreground/Background.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
}

// DarkTUITheme is the blue-accented dashboard palette.
var DarkTUITheme = TUITheme{
	Text:    lipgloss.Color("#D8DEE9"),
	Border:  lipgloss.Color("#5E81AC"),
	Accent:  lipgloss.Color("#88C0D0"),
	Success: lipgloss.Color("#A3BE8C"),
	Warning: lipgloss.Color("#EBCB8B"),
	Error:   lipgloss.Color("#BF616A"),
	Dim:     lipgloss.Color("#616E88"),
	Info:    lipgloss.Color("#81A1C1"),
}

// NoColorTUITheme renders the dashboard with the terminal's defaults.
var NoColorTUITheme = TUITheme{
	Text:    lipgloss.NoColor{},
	Border:  lipgloss.NoColor{},
	Accent:  lipgloss.NoColor{},
	Success: lipgloss.NoColor{},
	Warning: lipgloss.NoColor{},
	Error:   lipgloss.NoColor{},
	Dim:     lipgloss.NoColor{},
	Info:    lipgloss.NoColor{},
}

// GetCurrentTUITheme returns the dashboard palette matching the active CLI
// theme: NoColorTUITheme when colors are off, DarkTUITheme otherwise.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == "none" {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Mainly used by tests to
// restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name ("dark", "light", "none"). Unknown
// names fall back to dark.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme selects the startup theme. Colors are disabled when noColor is
// true or the NO_COLOR environment variable is present (any value counts,
// per no-color.org).
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}

	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}

	currentTheme = DarkTheme
}

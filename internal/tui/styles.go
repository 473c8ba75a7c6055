package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/polycalc/internal/ui"
)

// Style variables for the TUI dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	titleStyle       lipgloss.Style
	polyStyle        lipgloss.Style
	labelStyle       lipgloss.Style
	valueStyle       lipgloss.Style
	successStyle     lipgloss.Style
	errorStyle       lipgloss.Style
	dimStyle         lipgloss.Style
	winnerStyle      lipgloss.Style
	inputLabelStyle  lipgloss.Style
	statusAgreeStyle lipgloss.Style
	statusSplitStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been
// invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	polyStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	successStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	winnerStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	statusAgreeStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusSplitStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)
}

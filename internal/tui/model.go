package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/polycalc/internal/config"
	apperrors "github.com/agbru/polycalc/internal/errors"
	"github.com/agbru/polycalc/internal/format"
	"github.com/agbru/polycalc/internal/orchestration"
	"github.com/agbru/polycalc/internal/polynomial"
	"github.com/agbru/polycalc/internal/sysmon"
)

// tickInterval is the refresh period for system statistics.
const tickInterval = time.Second

// Messages exchanged between commands and the model.
type (
	// resultsMsg carries a finished evaluation round.
	resultsMsg struct {
		x       float64
		results []orchestration.EvaluationResult
	}
	// sysStatsMsg carries a system resource snapshot.
	sysStatsMsg sysmon.Stats
	// tickMsg drives periodic sampling.
	tickMsg time.Time
)

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	factory polynomial.EvaluatorFactory
	config  config.AppConfig
	coeffs  polynomial.Coefficients
	rng     *rand.Rand

	pointInput textinput.Model
	keymap     KeyMap
	help       help.Model

	lastX      float64
	results    []orchestration.EvaluationResult
	evaluating bool
	inputErr   error
	sys        sysmon.Stats

	width    int
	height   int
	exitCode int
}

// NewModel creates a new TUI model.
func NewModel(factory polynomial.EvaluatorFactory, coeffs polynomial.Coefficients, cfg config.AppConfig) Model {
	ti := textinput.New()
	ti.Placeholder = "0.5"
	ti.SetValue(strconv.FormatFloat(cfg.X, 'g', -1, 64))
	ti.CharLimit = 32
	ti.Width = 20

	return Model{
		factory:    factory,
		config:     cfg,
		coeffs:     coeffs,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		pointInput: ti,
		keymap:     DefaultKeyMap(),
		help:       help.New(),
		exitCode:   apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), sampleSysStatsCmd())
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case resultsMsg:
		m.evaluating = false
		m.lastX = msg.x
		m.results = msg.results
		return m, nil

	case sysStatsMsg:
		m.sys = sysmon.Stats(msg)
		return m, nil

	case tickMsg:
		return m, tea.Batch(tickCmd(), sampleSysStatsCmd())
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the point input has focus, only a handful of bindings are
	// global; everything else edits the field.
	if m.pointInput.Focused() {
		switch {
		case key.Matches(msg, m.keymap.Quit) && msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Focus):
			m.pointInput.Blur()
			return m, nil
		case key.Matches(msg, m.keymap.Evaluate):
			m.pointInput.Blur()
			return m.startEvaluation()
		}
		var cmd tea.Cmd
		m.pointInput, cmd = m.pointInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Focus):
		m.pointInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.Evaluate):
		return m.startEvaluation()

	case key.Matches(msg, m.keymap.Regenerate):
		coeffs, err := polynomial.RandomCoefficients(m.config.Degree, m.rng)
		if err != nil {
			m.inputErr = err
			return m, nil
		}
		m.coeffs = coeffs
		m.results = nil
		m.inputErr = nil
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// startEvaluation parses the point field and launches an evaluation round.
func (m Model) startEvaluation() (tea.Model, tea.Cmd) {
	x, err := strconv.ParseFloat(m.pointInput.Value(), 64)
	if err != nil {
		m.inputErr = fmt.Errorf("invalid evaluation point: %q", m.pointInput.Value())
		return m, nil
	}

	m.inputErr = nil
	m.evaluating = true
	return m, evaluateCmd(m.factory.GetAll(), m.coeffs, x, m.config.Timeout)
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := titleStyle.Render("Polynomial Evaluator Dashboard")

	input := m.renderInputPanel()
	results := m.renderResultsPanel()
	system := m.renderSystemPanel()

	footer := m.help.View(m.keymap)

	return lipgloss.JoinVertical(lipgloss.Left, header, input, results, system, footer)
}

// renderInputPanel shows the current polynomial and the evaluation point
// field.
func (m Model) renderInputPanel() string {
	poly := polyStyle.Render(m.coeffs.String())
	line1 := fmt.Sprintf("%s %s  %s",
		labelStyle.Render("p(x) ="), poly,
		dimStyle.Render(fmt.Sprintf("(degree %d)", m.coeffs.Degree())))

	line2 := fmt.Sprintf("%s %s", inputLabelStyle.Render("x ="), m.pointInput.View())
	if m.inputErr != nil {
		line2 += "  " + errorStyle.Render(m.inputErr.Error())
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, line1, line2))
}

// renderResultsPanel shows the last evaluation round.
func (m Model) renderResultsPanel() string {
	if m.evaluating {
		return panelStyle.Render(dimStyle.Render("Evaluating..."))
	}
	if len(m.results) == 0 {
		return panelStyle.Render(dimStyle.Render("Press enter to evaluate."))
	}

	rows := []string{titleStyle.Render(fmt.Sprintf("Results for p(%g)", m.lastX))}

	var reference *orchestration.EvaluationResult
	var fastest *orchestration.EvaluationResult
	for i := range m.results {
		if m.results[i].Err != nil {
			continue
		}
		if reference == nil {
			reference = &m.results[i]
		}
		if fastest == nil || m.results[i].Duration < fastest.Duration {
			fastest = &m.results[i]
		}
	}

	agree := true
	for _, res := range m.results {
		var line string
		switch {
		case res.Err != nil:
			line = fmt.Sprintf("  %-20s %s", res.Name, errorStyle.Render(res.Err.Error()))
		default:
			marker := " "
			if fastest != nil && res.Name == fastest.Name {
				marker = winnerStyle.Render("►")
			}
			if reference != nil && !polynomial.WithinTolerance(reference.Value, res.Value) {
				agree = false
			}
			line = fmt.Sprintf("%s %-20s %s  %s",
				marker, res.Name,
				valueStyle.Render(fmt.Sprintf("%.12g", res.Value)),
				dimStyle.Render(format.FormatExecutionDuration(res.Duration)))
		}
		rows = append(rows, line)
	}

	switch {
	case reference == nil:
		rows = append(rows, statusSplitStyle.Render("All evaluators failed"))
	case agree:
		rows = append(rows, statusAgreeStyle.Render("✓ All results agree"))
	default:
		rows = append(rows, statusSplitStyle.Render("✗ Results disagree"))
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderSystemPanel shows the latest system resource snapshot.
func (m Model) renderSystemPanel() string {
	line := fmt.Sprintf("%s %s   %s %s   %s %s",
		labelStyle.Render("CPU"),
		valueStyle.Render(fmt.Sprintf("%.1f%%", m.sys.CPUPercent)),
		labelStyle.Render("Mem"),
		valueStyle.Render(fmt.Sprintf("%.0f/%.0f MiB", m.sys.MemUsedMB, m.sys.MemTotalMB)),
		labelStyle.Render("Load"),
		valueStyle.Render(fmt.Sprintf("%.2f", m.sys.Load1)))
	return panelStyle.Render(line)
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, factory polynomial.EvaluatorFactory, coeffs polynomial.Coefficients, cfg config.AppConfig) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(factory, coeffs, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// evaluateCmd returns a tea.Cmd that runs every evaluator at the given point.
func evaluateCmd(evaluators []polynomial.Evaluator, coeffs polynomial.Coefficients, x float64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		results := orchestration.ExecuteEvaluations(ctx, evaluators, coeffs, x)
		return resultsMsg{x: x, results: results}
	}
}

// tickCmd returns a command that sends a tickMsg after the sample interval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide resource stats.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return sysStatsMsg(sysmon.Sample())
	}
}

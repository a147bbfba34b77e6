package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/rayleigh/internal/pipeline"
)

// Explorer steps through the trace of a single evaluation.
type Explorer struct {
	result    *pipeline.Result
	precision int
	cursor    int
	quitting  bool
}

func NewExplorer(res *pipeline.Result, precision int) Explorer {
	return Explorer{result: res, precision: precision}
}

// Cursor returns the index of the selected trace step.
func (m Explorer) Cursor() int { return m.cursor }

func (m Explorer) Quitting() bool { return m.quitting }

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	last := len(m.result.Trace) - 1
	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "right", "l", "down", "j":
		if m.cursor < last {
			m.cursor++
		}
	case "left", "h", "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(last, 0)
	}
	return m, nil
}

func (m Explorer) View() string {
	if m.quitting {
		return ""
	}

	var steps strings.Builder
	for i, step := range m.result.Trace {
		line := fmt.Sprintf("%d. %s", i, step.Label)
		if i == m.cursor {
			steps.WriteString(SelectedStyle.Render("▸ "+line) + "\n")
		} else {
			steps.WriteString("  " + LabelStyle.Render(line) + "\n")
		}
	}

	var detail strings.Builder
	if len(m.result.Trace) > 0 {
		step := m.result.Trace[m.cursor]
		detail.WriteString(ValueStyle.Render(FormatValue(step.Value.Value(), m.precision)) + "\n")
		detail.WriteString(Subtle.Render(step.Value.Dimension().String()) + "\n\n")
		detail.WriteString(ExponentBars(step.Value.Dimension()))
	}
	if m.cursor == len(m.result.Trace)-1 {
		detail.WriteString("\n\n" + renderOutcome(m.result, m.precision))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		PanelStyle.Render(strings.TrimRight(steps.String(), "\n")),
		PanelStyle.Render(detail.String()),
	)

	return TitleStyle.Render(m.result.Pipeline) + "\n\n" + body + "\n\n" +
		KeyHint.Render("←/→ step  g/G first/last  q quit") + "\n"
}

package calc

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qalc/internal/engine"
)

const displayWidth = 32

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.styles.App.Render(m.renderHelp())
	}

	switch m.viewMode {
	case HistoryView:
		return m.styles.App.Render(m.historyPage.View() + "\n" + m.renderFooter())
	case StatsView:
		return m.styles.App.Render(m.statsPage.View() + "\n" + m.renderFooter())
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.renderDisplay())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")
	sb.WriteString(m.renderPanel())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderFooter())
	return m.styles.App.Render(sb.String())
}

func (m Model) renderHeader() string {
	title := fmt.Sprintf("qalc — %s", m.viewMode)
	if m.viewMode == ProgrammerView {
		title += fmt.Sprintf(" [%s]", m.calc.ActiveBase())
	}
	return m.styles.Header.Render(title) + "\n"
}

func (m Model) renderDisplay() string {
	upper := " "
	if m.calc.Previous() != "" {
		upper = fmt.Sprintf("%s %s", m.calc.Previous(), m.calc.Pending())
	}
	lines := lipgloss.JoinVertical(lipgloss.Right,
		m.styles.DisplayUpper.Width(displayWidth).Render(upper),
		m.styles.Display.Width(displayWidth).Render(m.calc.Current()),
	)
	return m.styles.DisplayBox.Render(lines)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return " "
	}
	if m.statusErr {
		return m.styles.StatusError.Render(m.status)
	}
	return m.styles.StatusInfo.Render(m.status)
}

// panel rows: each cell is "key label". The grid is informational; all
// input comes from the keyboard.
func (m Model) renderPanel() string {
	switch m.viewMode {
	case ScientificView:
		return m.renderGrid([][]string{
			{"S sin", "O cos", "T tan"},
			{"L log", "N ln", "R √"},
			{"Q x²", "U x³", "I ∛"},
			{"F n!", "^ pow", "% pct"},
		})
	case ProgrammerView:
		return m.renderBasePanel()
	default:
		return m.renderGrid([][]string{
			{"7", "8", "9", "÷"},
			{"4", "5", "6", "×"},
			{"1", "2", "3", "-"},
			{"0", ".", "=", "+"},
		})
	}
}

func (m Model) renderGrid(rows [][]string) string {
	var rendered []string
	for _, row := range rows {
		var cells []string
		for _, label := range row {
			style := m.styles.Button
			if isAccentLabel(label) {
				style = m.styles.ButtonAccent
			}
			cells = append(cells, style.Width(8).Render(label))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rendered, "\n")
}

func (m Model) renderBasePanel() string {
	bases := []struct {
		key  string
		base engine.Base
	}{
		{"ctrl+d", engine.BaseDecimal},
		{"ctrl+x", engine.BaseHex},
		{"ctrl+o", engine.BaseOctal},
		{"ctrl+b", engine.BaseBinary},
	}

	var rows []string
	for _, b := range bases {
		style := m.styles.Button
		if b.base == m.calc.ActiveBase() {
			style = m.styles.ButtonActive
		}
		label := fmt.Sprintf("%-6s %s", b.key, b.base)
		value := m.baseValue(b.base)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			style.Width(14).Render(label),
			m.styles.Muted.Render(value),
		))
	}
	return strings.Join(rows, "\n")
}

// baseValue renders the current value in the given base for the
// conversion panel.
func (m Model) baseValue(to engine.Base) string {
	v, err := engine.ConvertBase(m.calc.Current(), m.calc.ActiveBase(), to)
	if err != nil {
		return "—"
	}
	return v
}

func (m Model) renderFooter() string {
	return m.styles.Footer.Render(m.help.View(m.keys))
}

func isAccentLabel(label string) bool {
	switch label {
	case "÷", "×", "-", "+", "=":
		return true
	}
	return strings.Contains(label, " ")
}

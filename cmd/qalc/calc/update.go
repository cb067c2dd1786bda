package calc

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"qalc/cmd/qalc/ui"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.historyPage.SetSize(msg.Width, msg.Height)
		m.statsPage.SetSize(msg.Width, msg.Height)
		return m, nil

	case configReloadedMsg:
		return m.applyConfig(msg), nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		var handled bool
		m, cmd, handled = m.handleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		// Unhandled keys scroll the focused page.
		switch m.viewMode {
		case HistoryView:
			m.historyPage, cmd = m.historyPage.Update(msg)
		case StatsView:
			m.statsPage, cmd = m.statsPage.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

// applyConfig folds a live config reload into the model. Only the
// presentation settings take effect mid-session; history size and
// telemetry wiring apply on next start.
func (m Model) applyConfig(msg configReloadedMsg) Model {
	m.cfg = msg.cfg
	m.styles = ui.NewStyles(ui.ThemeFromName(msg.cfg.Theme))
	m.historyPage = ui.NewHistoryPageModel(m.calc.History(), m.styles)
	m.statsPage = ui.NewStatsPageModel(m.tracker, m.styles)
	if m.width > 0 {
		m.historyPage.SetSize(m.width, m.height)
		m.statsPage.SetSize(m.width, m.height)
	}
	m.logger.Info("config reloaded", zap.String("theme", msg.cfg.Theme))
	return m
}

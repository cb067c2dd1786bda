package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"qalc/internal/engine"
)

// HistoryPageModel renders the calculation history log.
type HistoryPageModel struct {
	viewport viewport.Model
	history  *engine.History
	styles   Styles
	width    int
	height   int
}

// NewHistoryPageModel creates a history page component.
func NewHistoryPageModel(history *engine.History, styles Styles) HistoryPageModel {
	vp := viewport.New(80, 20)
	return HistoryPageModel{
		viewport: vp,
		history:  history,
		styles:   styles,
	}
}

// SetSize updates the size of the viewport.
func (m *HistoryPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 4 // Reserve space for header/footer
	m.UpdateContent()
}

// UpdateContent refreshes the viewport content from the history log.
func (m *HistoryPageModel) UpdateContent() {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Calculation History"))
	sb.WriteString("\n\n")

	entries := m.history.Strings()
	if len(entries) == 0 {
		sb.WriteString(m.styles.Muted.Render("No calculations yet."))
	}
	for _, line := range entries {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	m.viewport.SetContent(sb.String())
}

// Update forwards scroll keys to the viewport.
func (m HistoryPageModel) Update(msg tea.Msg) (HistoryPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m HistoryPageModel) View() string {
	return m.viewport.View()
}

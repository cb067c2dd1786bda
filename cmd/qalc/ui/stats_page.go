package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"qalc/internal/telemetry"
)

// StatsPageModel handles the rendering of operation usage statistics.
type StatsPageModel struct {
	viewport viewport.Model
	tracker  *telemetry.Tracker
	styles   Styles
	width    int
	height   int
}

// NewStatsPageModel creates a stats page component. The tracker may be
// nil when telemetry is disabled.
func NewStatsPageModel(tracker *telemetry.Tracker, styles Styles) StatsPageModel {
	vp := viewport.New(80, 20)
	return StatsPageModel{
		viewport: vp,
		tracker:  tracker,
		styles:   styles,
	}
}

// SetSize updates the size of the viewport.
func (m *StatsPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 4 // Reserve space for header/footer
	m.UpdateContent()
}

// UpdateContent refreshes the viewport content from the tracker data.
func (m *StatsPageModel) UpdateContent() {
	if m.tracker == nil {
		m.viewport.SetContent("Telemetry is disabled. Enable it in config.yaml to collect usage stats.")
		return
	}

	m.viewport.SetContent(RenderStats(m.tracker.Stats(), m.styles))
}

// Update forwards scroll keys to the viewport.
func (m StatsPageModel) Update(msg tea.Msg) (StatsPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m StatsPageModel) View() string {
	return m.viewport.View()
}

// RenderStats formats aggregated telemetry as text tables. Shared with
// the `qalc stats` subcommand.
func RenderStats(stats telemetry.Aggregated, styles Styles) string {
	var sb strings.Builder

	sb.WriteString(styles.Header.Render("Operation Usage Statistics"))
	sb.WriteString("\n\n")

	total := stats.Total
	sb.WriteString(fmt.Sprintf("Total Calls:  %d\n", total.Calls))
	sb.WriteString(fmt.Sprintf("Total Errors: %d\n", total.Errors))
	sb.WriteString(fmt.Sprintf("Total Time:   %dµs\n", total.TotalMicros))
	sb.WriteString("\n")

	renderTable := func(title string, data map[string]telemetry.OpCounts) {
		if len(data) == 0 {
			return
		}
		sb.WriteString(styles.Title.Render(title))
		sb.WriteString("\n")

		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString(fmt.Sprintf("%-20s | %-10s | %-10s | %-10s\n", "Name", "Calls", "Errors", "Micros"))
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		for _, k := range keys {
			c := data[k]
			sb.WriteString(fmt.Sprintf("%-20s | %-10d | %-10d | %-10d\n", truncate(k, 20), c.Calls, c.Errors, c.TotalMicros))
		}
		sb.WriteString("\n")
	}

	renderTable("By Operation", stats.ByOperation)
	renderTable("By Session", stats.BySession)

	if len(stats.ByError) > 0 {
		sb.WriteString(styles.Title.Render("By Error Kind"))
		sb.WriteString("\n")
		keys := make([]string, 0, len(stats.ByError))
		for k := range stats.ByError {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("%-20s | %d\n", truncate(k, 20), stats.ByError[k]))
		}
	}

	return sb.String()
}

func truncate(s string, l int) string {
	if len(s) > l {
		return s[:l-1] + "…"
	}
	return s
}

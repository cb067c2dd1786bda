// Package calc provides the interactive TUI calculator widget. The
// widget is split across files:
//   - model.go: types, construction, Init
//   - keys.go: keybindings and key routing
//   - update.go: the Update loop
//   - view.go: rendering
//   - help.go: the markdown help overlay
//   - run.go: program wiring (logger, prefs, telemetry, config watcher)
package calc

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"qalc/cmd/qalc/ui"
	"qalc/internal/config"
	"qalc/internal/engine"
	"qalc/internal/prefs"
	"qalc/internal/telemetry"
)

// ViewMode determines which panel is focused/active.
type ViewMode int

const (
	BasicView ViewMode = iota
	ScientificView
	ProgrammerView
	HistoryView
	StatsView
)

// String returns the mode name used in the header and preferences.
func (v ViewMode) String() string {
	switch v {
	case BasicView:
		return "basic"
	case ScientificView:
		return "scientific"
	case ProgrammerView:
		return "programmer"
	case HistoryView:
		return "history"
	case StatsView:
		return "stats"
	default:
		return "unknown"
	}
}

// calculatorMode reports whether the mode shows the calculator display
// (as opposed to a full-screen page).
func (v ViewMode) calculatorMode() bool {
	return v == BasicView || v == ScientificView || v == ProgrammerView
}

// configReloadedMsg is sent by the config watcher when config.yaml
// changes on disk.
type configReloadedMsg struct {
	cfg *config.Config
}

// Deps carries the wired components for the widget. Tracker, Prefs and
// Logger are optional.
type Deps struct {
	Calc    *engine.Calculator
	Config  *config.Config
	Prefs   *prefs.Manager
	Tracker *telemetry.Tracker
	Logger  *zap.Logger
}

// Model is the bubbletea model for the calculator widget.
type Model struct {
	calc     *engine.Calculator
	cfg      *config.Config
	prefsMgr *prefs.Manager
	tracker  *telemetry.Tracker
	logger   *zap.Logger

	styles      ui.Styles
	keys        KeyMap
	help        help.Model
	historyPage ui.HistoryPageModel
	statsPage   ui.StatsPageModel
	renderer    *glamour.TermRenderer

	viewMode ViewMode
	showHelp bool

	// status is the transient message line below the display; statusErr
	// selects the error style.
	status    string
	statusErr bool

	width  int
	height int
}

// NewModel builds the widget model from its dependencies.
func NewModel(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Config == nil {
		deps.Config = config.Default()
	}

	styles := ui.NewStyles(ui.ThemeFromName(deps.Config.Theme))

	m := Model{
		calc:     deps.Calc,
		cfg:      deps.Config,
		prefsMgr: deps.Prefs,
		tracker:  deps.Tracker,
		logger:   deps.Logger,
		styles:   styles,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		viewMode: BasicView,
	}
	m.historyPage = ui.NewHistoryPageModel(deps.Calc.History(), styles)
	m.statsPage = ui.NewStatsPageModel(deps.Tracker, styles)

	// Markdown renderer for the help overlay; rendering falls back to
	// plain text if construction fails.
	if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(76)); err == nil {
		m.renderer = r
	}

	if deps.Prefs != nil {
		p := deps.Prefs.Get()
		switch p.LastMode {
		case "scientific":
			m.viewMode = ScientificView
		case "programmer":
			m.viewMode = ProgrammerView
		}
		if !p.HelpShown {
			m.status = "Press ? for help"
		}
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Calculator exposes the engine for the final preference snapshot.
func (m Model) Calculator() *engine.Calculator { return m.calc }

// Mode exposes the active view mode for the final preference snapshot.
func (m Model) Mode() ViewMode { return m.viewMode }

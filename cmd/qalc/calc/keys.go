package calc

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"qalc/internal/engine"
	"qalc/internal/prefs"
)

// KeyMap holds the named keybindings shown in the help footer. Digit,
// operator and scientific-function keys are routed by rune in
// handleKeyMsg and documented on the button panels instead.
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Mode     key.Binding
	History  key.Binding
	Stats    key.Binding
	Back     key.Binding
	Clear    key.Binding
	Delete   key.Binding
	Evaluate key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Mode:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "mode")),
		History:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Stats:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "stats")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back/clear")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Delete:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Evaluate: key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "=")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mode, k.History, k.Stats, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mode, k.History, k.Stats},
		{k.Clear, k.Delete, k.Evaluate},
		{k.Help, k.Back, k.Quit},
	}
}

// scientificKeys maps uppercase function keys to engine function names.
// Uppercase avoids colliding with lowercase hex digit entry; the digit
// check in handleKeyMsg still wins for A-F while in hex base.
var scientificKeys = map[string]string{
	"S": "sin",
	"O": "cos",
	"T": "tan",
	"L": "log",
	"N": "ln",
	"R": "sqrt",
	"Q": "square",
	"U": "cube",
	"I": "cbrt",
	"F": "factorial",
}

// baseKeys maps base-switch chords, available in programmer mode.
// Control chords are used because d, b and o collide with hex digits.
var baseKeys = map[string]engine.Base{
	"ctrl+d": engine.BaseDecimal,
	"ctrl+b": engine.BaseBinary,
	"ctrl+o": engine.BaseOctal,
	"ctrl+x": engine.BaseHex,
}

// handleKeyMsg processes all keyboard input for Update. Returns
// (model, cmd, handled); handled=false means the key should fall
// through to the focused page component.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	ks := msg.String()

	// Global keybindings.
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		if m.showHelp {
			m.markHelpShown()
		}
		return m, nil, true

	case key.Matches(msg, m.keys.Back):
		if m.showHelp {
			m.showHelp = false
			return m, nil, true
		}
		if !m.viewMode.calculatorMode() {
			m.viewMode = BasicView
			return m, nil, true
		}
		// In calculator modes Esc acts as all-clear.
		m.calc.Clear()
		m.clearStatus()
		return m, nil, true
	}

	if m.showHelp {
		// Any other key closes the overlay.
		m.showHelp = false
		return m, nil, true
	}

	switch {
	case key.Matches(msg, m.keys.Mode):
		switch m.viewMode {
		case BasicView:
			m.viewMode = ScientificView
		case ScientificView:
			m.viewMode = ProgrammerView
		default:
			m.viewMode = BasicView
		}
		m.clearStatus()
		return m, nil, true

	case key.Matches(msg, m.keys.History) && !m.isDigitKey(ks):
		m.historyPage.UpdateContent()
		m.viewMode = HistoryView
		return m, nil, true

	case key.Matches(msg, m.keys.Stats) && !m.isDigitKey(ks):
		m.statsPage.UpdateContent()
		m.viewMode = StatsView
		return m, nil, true
	}

	if !m.viewMode.calculatorMode() {
		// Remaining keys scroll the focused page.
		return m, nil, false
	}

	// Digit entry wins over named keys so hex digits stay typeable.
	// Plain 0-9 always routes to the engine so an out-of-base digit
	// surfaces its rejection on the status line.
	if r := []rune(ks); len(r) == 1 && (r[0] >= '0' && r[0] <= '9' || m.calc.ActiveBase().DigitValid(r[0])) {
		m.reportOp(m.calc.InputDigit(r[0]))
		return m, nil, true
	}

	if base, ok := baseKeys[ks]; ok {
		m.reportOp(m.calc.SetBase(base))
		return m, nil, true
	}

	if fn, ok := scientificKeys[ks]; ok {
		m.reportOp(m.calc.ApplyScientific(fn))
		return m, nil, true
	}

	if op, ok := engine.ParseOperator(ks); ok {
		m.reportOp(m.calc.SetOperator(op))
		return m, nil, true
	}

	switch {
	case key.Matches(msg, m.keys.Evaluate):
		m.reportOp(m.calc.Evaluate())
	case key.Matches(msg, m.keys.Clear):
		m.calc.Clear()
		m.clearStatus()
	case key.Matches(msg, m.keys.Delete):
		m.calc.DeleteLastChar()
		m.clearStatus()
	case ks == ".":
		m.calc.AddDecimalPoint()
		m.clearStatus()
	}
	return m, nil, true
}

// isDigitKey reports whether the key is a single rune valid as a digit
// in the active base.
func (m Model) isDigitKey(ks string) bool {
	r := []rune(ks)
	return len(r) == 1 && m.calc.ActiveBase().DigitValid(r[0])
}

// reportOp maps an engine result onto the status line.
func (m *Model) reportOp(err error) {
	if err == nil {
		m.clearStatus()
		return
	}
	m.logger.Debug("operation rejected", zap.Error(err))
	m.status = displaySentinel(err, m.calc.ActiveBase())
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

func (m *Model) markHelpShown() {
	if m.prefsMgr == nil {
		return
	}
	m.prefsMgr.Update(func(p *prefs.Preferences) { p.HelpShown = true })
}

// displaySentinel maps engine error kinds to the strings shown on the
// status line.
func displaySentinel(err error, base engine.Base) string {
	switch {
	case errors.Is(err, engine.ErrDivisionByZero):
		return "Cannot divide by zero"
	case errors.Is(err, engine.ErrInvalidDigit):
		return fmt.Sprintf("Digit not valid in %s", base)
	case errors.Is(err, engine.ErrOverflow):
		return "Too large"
	case errors.Is(err, engine.ErrInvalidNumber):
		return "Invalid input"
	case errors.Is(err, engine.ErrDomain):
		return "Error"
	default:
		return "Error"
	}
}

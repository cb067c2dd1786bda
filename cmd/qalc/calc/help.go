package calc

const helpMarkdown = `# qalc

## Modes

| Key | Action |
|-----|--------|
| tab | cycle basic → scientific → programmer |
| h   | history page |
| g   | usage stats page |
| esc | back to calculator / all-clear |

## Calculator

Digits, ` + "`.`" + ` and the operators ` + "`+ - * / ^ %`" + ` work as on any
calculator. ` + "`enter`" + ` or ` + "`=`" + ` evaluates, ` + "`backspace`" + `
deletes the last character, ` + "`c`" + ` clears. ` + "`%`" + ` divides the
display by 100 in place.

## Scientific (uppercase keys)

S sin · O cos · T tan · L log · N ln · R sqrt · Q square · U cube ·
I cube root · F factorial. Trig operands are degrees.

## Programmer

ctrl+d / ctrl+x / ctrl+o / ctrl+b switch the base; the panel shows the
current value in every base. Digit entry is constrained to the active
base.
`

// renderHelp renders the help overlay, falling back to the raw
// markdown if the renderer is unavailable or panics on odd terminals.
func (m Model) renderHelp() (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = helpMarkdown
		}
	}()

	if m.renderer == nil {
		return helpMarkdown
	}
	rendered, err := m.renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return rendered
}

// Package engine implements the calculator core: an explicit state
// machine over operand strings with digit entry, pending-operator
// capture, chained evaluation, bounded history, numeric base handling
// and pure scientific functions. The package has no UI or persistence
// concerns; the surrounding shell routes key events into these
// operations and renders the resulting state.
package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Operator is a pending binary operation, stored in display form.
type Operator string

const (
	OpNone     Operator = ""
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "×"
	OpDivide   Operator = "÷"
	OpPower    Operator = "^"

	// OpPercent is unary: SetOperator applies it immediately to the
	// current value instead of capturing a pending operation.
	OpPercent Operator = "%"
)

// ParseOperator resolves a typed operator key, accepting the usual
// keyboard aliases for multiply and divide.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSubtract, true
	case "*", "x", "×":
		return OpMultiply, true
	case "/", "÷":
		return OpDivide, true
	case "^":
		return OpPower, true
	case "%":
		return OpPercent, true
	}
	return OpNone, false
}

// Calculator holds the full engine state. The zero value is not usable;
// construct with New. A Calculator is not safe for concurrent use: the
// contract is one caller thread, one mutation per user action.
type Calculator struct {
	current     string
	previous    string
	op          Operator
	resetScreen bool
	base        Base
	history     *History
	observer    Observer
}

// Option configures a Calculator at construction time.
type Option func(*Calculator)

// WithHistoryLimit bounds the calculation history log.
func WithHistoryLimit(n int) Option {
	return func(c *Calculator) { c.history = newHistory(n) }
}

// WithObserver installs a post-operation observer, the supported way to
// collect timing or usage data without wrapping engine methods.
func WithObserver(o Observer) Option {
	return func(c *Calculator) { c.observer = o }
}

// WithBase sets the starting numeral base. Invalid bases are ignored
// and the calculator starts in decimal.
func WithBase(b Base) Option {
	return func(c *Calculator) {
		if b.Valid() {
			c.base = b
		}
	}
}

// New returns a calculator in its initial state: display "0", no
// pending operation, decimal base, empty history.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		current: "0",
		base:    BaseDecimal,
		history: newHistory(DefaultHistoryLimit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns the display value being typed or last computed.
func (c *Calculator) Current() string { return c.current }

// Previous returns the captured left operand, or "" when none is
// pending.
func (c *Calculator) Previous() string { return c.previous }

// Pending returns the pending operator, or OpNone.
func (c *Calculator) Pending() Operator { return c.op }

// ActiveBase returns the numeral base constraining digit entry.
func (c *Calculator) ActiveBase() Base { return c.base }

// History returns the bounded calculation log.
func (c *Calculator) History() *History { return c.history }

func (c *Calculator) observe(name string, start time.Time, err error) {
	if c.observer != nil {
		c.observer.ObserveOp(name, time.Since(start), err)
	}
}

// InputDigit appends one digit to the display. Digits outside the
// active base are rejected with ErrInvalidDigit and the state is left
// unchanged. When the screen is flagged for reset (after an operator or
// evaluation) or still shows "0", the digit replaces the display.
func (c *Calculator) InputDigit(d rune) (err error) {
	start := time.Now()
	defer func() { c.observe("input_digit", start, err) }()

	if !c.base.DigitValid(d) {
		return fmt.Errorf("%w: %q in %s", ErrInvalidDigit, d, c.base)
	}
	if c.base == BaseHex {
		d = unicode.ToUpper(d)
	}
	if c.resetScreen || c.current == "0" {
		c.current = string(d)
		c.resetScreen = false
		return nil
	}
	c.current += string(d)
	return nil
}

// AddDecimalPoint appends a decimal point unless the display already
// contains one. After an operator or evaluation it starts a fresh "0."
// operand.
func (c *Calculator) AddDecimalPoint() {
	start := time.Now()
	defer func() { c.observe("decimal_point", start, nil) }()

	if c.resetScreen {
		c.current = "0."
		c.resetScreen = false
		return
	}
	if strings.ContainsRune(c.current, '.') {
		return
	}
	c.current += "."
}

// DeleteLastChar removes the last character of the display; deleting
// the final character leaves "0".
func (c *Calculator) DeleteLastChar() {
	start := time.Now()
	defer func() { c.observe("delete", start, nil) }()

	r := []rune(c.current)
	if len(r) <= 1 {
		c.current = "0"
		return
	}
	c.current = string(r[:len(r)-1])
}

// SetOperator captures a pending binary operation. If an operator is
// already pending and a right operand has been typed, the pending
// operation is evaluated first; a failure there (division by zero)
// propagates and the new operator is not captured. OpPercent is unary
// and divides the display by 100 in place.
func (c *Calculator) SetOperator(op Operator) (err error) {
	start := time.Now()
	name := "set_operator"
	defer func() { c.observe(name, start, err) }()

	switch op {
	case OpPercent:
		name = "percent"
		v, perr := strconv.ParseFloat(c.current, 64)
		if perr != nil {
			return fmt.Errorf("%w: %q", ErrInvalidNumber, c.current)
		}
		c.current = formatNumber(v / 100)
		return nil
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower:
	default:
		return fmt.Errorf("unknown operator %q", op)
	}

	if c.op != OpNone && c.previous != "" && !c.resetScreen {
		if err = c.evaluate(); err != nil {
			return err
		}
	}
	c.previous = c.current
	c.op = op
	c.resetScreen = true
	return nil
}

// Evaluate applies the pending operation. It is a no-op when no
// operator or left operand is pending, so repeated presses of "=" are
// idempotent. Division by zero reports ErrDivisionByZero and leaves the
// state unchanged. The result is rounded to 12 significant digits and a
// history entry is recorded from the pre-mutation operands.
func (c *Calculator) Evaluate() (err error) {
	start := time.Now()
	defer func() { c.observe("evaluate", start, err) }()
	return c.evaluate()
}

func (c *Calculator) evaluate() error {
	if c.op == OpNone || c.previous == "" {
		return nil
	}
	left, lerr := strconv.ParseFloat(c.previous, 64)
	right, rerr := strconv.ParseFloat(c.current, 64)
	if lerr != nil || rerr != nil {
		return fmt.Errorf("%w: %q %s %q", ErrInvalidNumber, c.previous, c.op, c.current)
	}

	// Snapshot operands before any mutation so the history line cannot
	// pick up cleared or reassigned state.
	prev, op, cur := c.previous, c.op, c.current

	var result float64
	switch op {
	case OpAdd:
		result = left + right
	case OpSubtract:
		result = left - right
	case OpMultiply:
		result = left * right
	case OpDivide:
		if right == 0 {
			return ErrDivisionByZero
		}
		result = left / right
	case OpPower:
		result = math.Pow(left, right)
	default:
		return fmt.Errorf("unsupported operator %q", op)
	}

	c.current = formatNumber(roundSignificant(result, 12))
	c.previous = ""
	c.op = OpNone
	c.resetScreen = true
	c.history.add(Entry{Left: prev, Op: op, Right: cur, Result: c.current, At: time.Now()})
	return nil
}

// Clear resets the display and any pending operation. History is kept.
func (c *Calculator) Clear() {
	start := time.Now()
	defer func() { c.observe("clear", start, nil) }()

	c.current = "0"
	c.previous = ""
	c.op = OpNone
	c.resetScreen = false
}

// SetBase switches the active numeral base, re-rendering the display in
// the new radix. A fractional display cannot be re-rendered and resets
// to "0". Any pending operation is dropped since its captured operand
// is only meaningful in the old base.
func (c *Calculator) SetBase(b Base) (err error) {
	start := time.Now()
	defer func() { c.observe("set_base", start, err) }()

	if !b.Valid() {
		return fmt.Errorf("unsupported base %d", int(b))
	}
	if b == c.base {
		return nil
	}
	if strings.ContainsRune(c.current, '.') {
		c.current = "0"
	} else {
		converted, cerr := ConvertBase(c.current, c.base, b)
		if cerr != nil {
			return cerr
		}
		c.current = converted
	}
	c.base = b
	c.previous = ""
	c.op = OpNone
	c.resetScreen = false
	return nil
}

// ApplyScientific runs a scientific function on the display value and
// replaces it with the result. The display is left unchanged on error.
func (c *Calculator) ApplyScientific(name string) (err error) {
	start := time.Now()
	defer func() { c.observe("scientific", start, err) }()

	result, err := Scientific(name, c.current)
	if err != nil {
		return err
	}
	c.current = result
	c.resetScreen = true
	return nil
}

// roundSignificant rounds v to the given number of significant decimal
// digits to suppress floating-point noise (0.1+0.2 style artifacts).
func roundSignificant(v float64, digits int) float64 {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	s := strconv.FormatFloat(v, 'g', digits, 64)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return r
}

// formatNumber renders a float in canonical decimal display form,
// falling back to exponent notation only for extreme magnitudes.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if len(s) > 21 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return s
}

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeDigits(t *testing.T, c *Calculator, digits string) {
	t.Helper()
	for _, d := range digits {
		require.NoError(t, c.InputDigit(d))
	}
}

func TestNewDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, "0", c.Current())
	assert.Equal(t, "", c.Previous())
	assert.Equal(t, OpNone, c.Pending())
	assert.Equal(t, BaseDecimal, c.ActiveBase())
	assert.Equal(t, 0, c.History().Len())
}

func TestInputDigitConcatenates(t *testing.T) {
	c := New()
	typeDigits(t, c, "407")
	assert.Equal(t, "407", c.Current())
}

func TestInputDigitReplacesLeadingZero(t *testing.T) {
	c := New()
	typeDigits(t, c, "07")
	assert.Equal(t, "7", c.Current())
}

func TestInputDigitRejectedByBase(t *testing.T) {
	c := New(WithBase(BaseBinary))
	typeDigits(t, c, "10")

	err := c.InputDigit('2')
	require.ErrorIs(t, err, ErrInvalidDigit)
	assert.Equal(t, "10", c.Current(), "rejected digit must leave state unchanged")

	require.NoError(t, c.InputDigit('1'))
	assert.Equal(t, "101", c.Current())
}

func TestInputDigitHexUppercased(t *testing.T) {
	c := New(WithBase(BaseHex))
	typeDigits(t, c, "f")
	require.NoError(t, c.InputDigit('A'))
	assert.Equal(t, "FA", c.Current())
}

func TestAddDecimalPoint(t *testing.T) {
	c := New()
	typeDigits(t, c, "3")
	c.AddDecimalPoint()
	typeDigits(t, c, "14")
	c.AddDecimalPoint() // second point is a no-op
	assert.Equal(t, "3.14", c.Current())
}

func TestAddDecimalPointAfterEvaluateStartsFresh(t *testing.T) {
	c := New()
	typeDigits(t, c, "2")
	require.NoError(t, c.SetOperator(OpAdd))
	typeDigits(t, c, "2")
	require.NoError(t, c.Evaluate())

	c.AddDecimalPoint()
	typeDigits(t, c, "5")
	assert.Equal(t, "0.5", c.Current())
}

func TestDeleteLastChar(t *testing.T) {
	c := New()
	typeDigits(t, c, "42")
	c.DeleteLastChar()
	assert.Equal(t, "4", c.Current())
	c.DeleteLastChar()
	assert.Equal(t, "0", c.Current())
	c.DeleteLastChar()
	assert.Equal(t, "0", c.Current())
}

func TestAddSubtractMultiply(t *testing.T) {
	tests := []struct {
		name string
		op   Operator
		want string
	}{
		{"add", OpAdd, "10"},
		{"subtract", OpSubtract, "4"},
		{"multiply", OpMultiply, "21"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			typeDigits(t, c, "7")
			require.NoError(t, c.SetOperator(tt.op))
			typeDigits(t, c, "3")
			require.NoError(t, c.Evaluate())
			assert.Equal(t, tt.want, c.Current())
		})
	}
}

func TestEvaluateRecordsHistory(t *testing.T) {
	c := New()
	typeDigits(t, c, "7")
	require.NoError(t, c.SetOperator(OpAdd))
	typeDigits(t, c, "3")
	require.NoError(t, c.Evaluate())

	assert.Equal(t, "10", c.Current())
	require.Equal(t, 1, c.History().Len())
	assert.Equal(t, "7 + 3 = 10", c.History().Entries()[0].String())
}

func TestEvaluateClearsPendingState(t *testing.T) {
	c := New()
	typeDigits(t, c, "8")
	require.NoError(t, c.SetOperator(OpDivide))
	typeDigits(t, c, "2")
	require.NoError(t, c.Evaluate())

	assert.Equal(t, "4", c.Current())
	assert.Equal(t, "", c.Previous())
	assert.Equal(t, OpNone, c.Pending())
}

func TestEvaluateIdempotentWithoutPendingOp(t *testing.T) {
	c := New()
	typeDigits(t, c, "7")
	require.NoError(t, c.SetOperator(OpAdd))
	typeDigits(t, c, "3")
	require.NoError(t, c.Evaluate())

	require.NoError(t, c.Evaluate())
	require.NoError(t, c.Evaluate())
	assert.Equal(t, "10", c.Current())
	assert.Equal(t, 1, c.History().Len(), "repeated evaluate must not re-log")
}

func TestDivisionByZeroLeavesStateUnchanged(t *testing.T) {
	c := New()
	typeDigits(t, c, "5")
	require.NoError(t, c.SetOperator(OpDivide))
	typeDigits(t, c, "0")

	err := c.Evaluate()
	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, "0", c.Current())
	assert.Equal(t, "5", c.Previous())
	assert.Equal(t, OpDivide, c.Pending())
	assert.Equal(t, 0, c.History().Len())
}

func TestPowerOperator(t *testing.T) {
	c := New()
	typeDigits(t, c, "2")
	require.NoError(t, c.SetOperator(OpPower))
	typeDigits(t, c, "10")
	require.NoError(t, c.Evaluate())
	assert.Equal(t, "1024", c.Current())
}

func TestChainedOperatorsEvaluateEagerly(t *testing.T) {
	// 2 + 3 * ... evaluates "2 + 3" the moment "*" is pressed.
	c := New()
	typeDigits(t, c, "2")
	require.NoError(t, c.SetOperator(OpAdd))
	typeDigits(t, c, "3")
	require.NoError(t, c.SetOperator(OpMultiply))

	assert.Equal(t, "5", c.Current())
	assert.Equal(t, "5", c.Previous())
	assert.Equal(t, OpMultiply, c.Pending())

	typeDigits(t, c, "4")
	require.NoError(t, c.Evaluate())
	assert.Equal(t, "20", c.Current())
}

func TestOperatorCorrectionDoesNotEvaluate(t *testing.T) {
	c := New()
	typeDigits(t, c, "6")
	require.NoError(t, c.SetOperator(OpAdd))
	require.NoError(t, c.SetOperator(OpMultiply))

	assert.Equal(t, OpMultiply, c.Pending())
	assert.Equal(t, 0, c.History().Len())

	typeDigits(t, c, "7")
	require.NoError(t, c.Evaluate())
	assert.Equal(t, "42", c.Current())
}

func TestChainedDivisionByZeroPropagates(t *testing.T) {
	c := New()
	typeDigits(t, c, "9")
	require.NoError(t, c.SetOperator(OpDivide))
	typeDigits(t, c, "0")

	err := c.SetOperator(OpAdd)
	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, OpDivide, c.Pending(), "failed chain must not capture the new operator")
	assert.Equal(t, "9", c.Previous())
}

func TestPercentIsUnary(t *testing.T) {
	c := New()
	typeDigits(t, c, "50")
	require.NoError(t, c.SetOperator(OpPercent))

	assert.Equal(t, "0.5", c.Current())
	assert.Equal(t, "", c.Previous())
	assert.Equal(t, OpNone, c.Pending())
}

func TestPercentKeepsPendingOperation(t *testing.T) {
	c := New()
	typeDigits(t, c, "200")
	require.NoError(t, c.SetOperator(OpAdd))
	typeDigits(t, c, "10")
	require.NoError(t, c.SetOperator(OpPercent))

	assert.Equal(t, "0.1", c.Current())
	assert.Equal(t, "200", c.Previous())
	assert.Equal(t, OpAdd, c.Pending())
}

func TestClear(t *testing.T) {
	c := New()
	typeDigits(t, c, "9")
	require.NoError(t, c.SetOperator(OpAdd))
	typeDigits(t, c, "1")
	c.Clear()

	assert.Equal(t, "0", c.Current())
	assert.Equal(t, "", c.Previous())
	assert.Equal(t, OpNone, c.Pending())
}

func TestResetScreenAfterEvaluate(t *testing.T) {
	c := New()
	typeDigits(t, c, "7")
	require.NoError(t, c.SetOperator(OpAdd))
	typeDigits(t, c, "3")
	require.NoError(t, c.Evaluate())

	// Typing a digit after "=" starts a new entry instead of appending.
	typeDigits(t, c, "5")
	assert.Equal(t, "5", c.Current())
}

func TestFloatingPointNoiseSuppressed(t *testing.T) {
	c := New()
	typeDigits(t, c, "0")
	c.AddDecimalPoint()
	typeDigits(t, c, "1")
	require.NoError(t, c.SetOperator(OpAdd))
	typeDigits(t, c, "0")
	c.AddDecimalPoint()
	typeDigits(t, c, "2")
	require.NoError(t, c.Evaluate())
	assert.Equal(t, "0.3", c.Current())
}

func TestSetBaseRendersCurrentValue(t *testing.T) {
	c := New()
	typeDigits(t, c, "255")
	require.NoError(t, c.SetBase(BaseHex))
	assert.Equal(t, "FF", c.Current())
	assert.Equal(t, BaseHex, c.ActiveBase())

	require.NoError(t, c.SetBase(BaseBinary))
	assert.Equal(t, "11111111", c.Current())

	require.NoError(t, c.SetBase(BaseDecimal))
	assert.Equal(t, "255", c.Current())
}

func TestSetBaseDropsFraction(t *testing.T) {
	c := New()
	typeDigits(t, c, "1")
	c.AddDecimalPoint()
	typeDigits(t, c, "5")
	require.NoError(t, c.SetBase(BaseHex))
	assert.Equal(t, "0", c.Current())
}

func TestApplyScientific(t *testing.T) {
	c := New()
	typeDigits(t, c, "9")
	require.NoError(t, c.ApplyScientific("sqrt"))
	assert.Equal(t, "3", c.Current())

	// Errors leave the display alone.
	require.NoError(t, c.SetOperator(OpSubtract))
	typeDigits(t, c, "4")
	require.NoError(t, c.Evaluate())
	assert.Equal(t, "-1", c.Current())
	err := c.ApplyScientific("sqrt")
	require.ErrorIs(t, err, ErrDomain)
	assert.Equal(t, "-1", c.Current())
}

func TestObserverSeesEveryMutatingOp(t *testing.T) {
	var ops []string
	var errs int
	obs := ObserverFunc(func(name string, took time.Duration, err error) {
		ops = append(ops, name)
		if err != nil {
			errs++
		}
	})

	c := New(WithObserver(obs))
	require.NoError(t, c.InputDigit('5'))
	require.NoError(t, c.SetOperator(OpDivide))
	require.NoError(t, c.InputDigit('0'))
	require.ErrorIs(t, c.Evaluate(), ErrDivisionByZero)
	c.Clear()

	assert.Equal(t, []string{"input_digit", "set_operator", "input_digit", "evaluate", "clear"}, ops)
	assert.Equal(t, 1, errs)
}

func TestParseOperatorAliases(t *testing.T) {
	for key, want := range map[string]Operator{
		"+": OpAdd, "-": OpSubtract, "*": OpMultiply, "x": OpMultiply,
		"/": OpDivide, "÷": OpDivide, "×": OpMultiply, "^": OpPower, "%": OpPercent,
	} {
		got, ok := ParseOperator(key)
		require.True(t, ok, "key %q", key)
		assert.Equal(t, want, got, "key %q", key)
	}
	_, ok := ParseOperator("?")
	assert.False(t, ok)
}

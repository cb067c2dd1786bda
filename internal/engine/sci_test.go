package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScientificResults(t *testing.T) {
	tests := []struct {
		fn      string
		operand string
		want    string
	}{
		{"sqrt", "9", "3"},
		{"sqrt", "2", "1.41421356237"},
		{"square", "12", "144"},
		{"cube", "3", "27"},
		{"cbrt", "27", "3"},
		{"∛", "8", "2"},
		{"x³", "2", "8"},
		{"log", "1000", "3"},
		{"ln", "1", "0"},
		{"sin", "30", "0.5"},
		{"cos", "60", "0.5"},
		{"tan", "45", "1"},
		{"factorial", "5", "120"},
		{"factorial", "0", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.fn+"_"+tt.operand, func(t *testing.T) {
			got, err := Scientific(tt.fn, tt.operand)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScientificDomainErrors(t *testing.T) {
	for _, tt := range []struct{ fn, operand string }{
		{"sqrt", "-1"},
		{"sqrt", "0"},
		{"log", "0"},
		{"log", "-5"},
		{"ln", "-2"},
		{"factorial", "-3"},
		{"factorial", "2.5"},
	} {
		_, err := Scientific(tt.fn, tt.operand)
		assert.ErrorIs(t, err, ErrDomain, "%s(%s)", tt.fn, tt.operand)
	}
}

func TestFactorialCeiling(t *testing.T) {
	_, err := Scientific("factorial", "101")
	require.ErrorIs(t, err, ErrOverflow)

	got, err := Scientific("factorial", "100")
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestScientificInvalidOperand(t *testing.T) {
	_, err := Scientific("sqrt", "abc")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestScientificUnknownFunction(t *testing.T) {
	_, err := Scientific("sinh", "1")
	assert.Error(t, err)
}

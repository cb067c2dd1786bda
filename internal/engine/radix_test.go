package engine

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBase(t *testing.T) {
	tests := []struct {
		value    string
		from, to Base
		want     string
	}{
		{"255", BaseDecimal, BaseHex, "FF"},
		{"255", BaseDecimal, BaseBinary, "11111111"},
		{"255", BaseDecimal, BaseOctal, "377"},
		{"ff", BaseHex, BaseDecimal, "255"},
		{"1010", BaseBinary, BaseDecimal, "10"},
		{"777", BaseOctal, BaseDecimal, "511"},
		{"0", BaseDecimal, BaseHex, "0"},
		{"-26", BaseDecimal, BaseHex, "-1A"},
	}
	for _, tt := range tests {
		got, err := ConvertBase(tt.value, tt.from, tt.to)
		require.NoError(t, err, "%s %s->%s", tt.value, tt.from, tt.to)
		assert.Equal(t, tt.want, got)
	}
}

func TestConvertBaseRoundTrip(t *testing.T) {
	for _, b := range []Base{BaseBinary, BaseOctal, BaseHex} {
		for _, n := range []int64{0, 1, 7, 8, 42, 255, 256, 4095, 1 << 30} {
			dec := strconv.FormatInt(n, 10)
			there, err := ConvertBase(dec, BaseDecimal, b)
			require.NoError(t, err)
			back, err := ConvertBase(there, b, BaseDecimal)
			require.NoError(t, err)
			assert.Equal(t, dec, back, "round trip via %s", b)
		}
	}
}

func TestConvertBaseInvalidInput(t *testing.T) {
	for _, tt := range []struct {
		value string
		from  Base
	}{
		{"2", BaseBinary},
		{"9", BaseOctal},
		{"G1", BaseHex},
		{"3.5", BaseDecimal},
		{"", BaseDecimal},
	} {
		_, err := ConvertBase(tt.value, tt.from, BaseDecimal)
		assert.ErrorIs(t, err, ErrInvalidNumber, "%q in %s", tt.value, tt.from)
	}
}

func TestParseBase(t *testing.T) {
	for s, want := range map[string]Base{
		"dec": BaseDecimal, "DEC": BaseDecimal, "10": BaseDecimal,
		"bin": BaseBinary, "2": BaseBinary,
		"oct": BaseOctal, "hex": BaseHex, "16": BaseHex,
	} {
		got, err := ParseBase(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err := ParseBase("base64")
	assert.Error(t, err)
}

func TestDigitValid(t *testing.T) {
	assert.True(t, BaseBinary.DigitValid('1'))
	assert.False(t, BaseBinary.DigitValid('2'))
	assert.True(t, BaseOctal.DigitValid('7'))
	assert.False(t, BaseOctal.DigitValid('8'))
	assert.True(t, BaseDecimal.DigitValid('9'))
	assert.False(t, BaseDecimal.DigitValid('a'))
	assert.True(t, BaseHex.DigitValid('a'))
	assert.True(t, BaseHex.DigitValid('F'))
	assert.False(t, BaseHex.DigitValid('g'))
}

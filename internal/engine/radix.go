package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Base is a numeral radix supported by the calculator.
type Base int

const (
	BaseBinary  Base = 2
	BaseOctal   Base = 8
	BaseDecimal Base = 10
	BaseHex     Base = 16
)

// String returns the short name used in config files and CLI flags.
func (b Base) String() string {
	switch b {
	case BaseBinary:
		return "bin"
	case BaseOctal:
		return "oct"
	case BaseDecimal:
		return "dec"
	case BaseHex:
		return "hex"
	default:
		return fmt.Sprintf("base(%d)", int(b))
	}
}

// Valid reports whether b is one of the supported radices.
func (b Base) Valid() bool {
	switch b {
	case BaseBinary, BaseOctal, BaseDecimal, BaseHex:
		return true
	}
	return false
}

// DigitValid reports whether r may be typed as a digit in base b.
func (b Base) DigitValid(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return int(r-'0') < int(b)
	case r >= 'a' && r <= 'f':
		return b == BaseHex
	case r >= 'A' && r <= 'F':
		return b == BaseHex
	}
	return false
}

// ParseBase resolves a base name ("dec", "bin", "oct", "hex" or the
// numeric radix) as used by CLI flags and config files.
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bin", "binary", "2":
		return BaseBinary, nil
	case "oct", "octal", "8":
		return BaseOctal, nil
	case "dec", "decimal", "10", "":
		return BaseDecimal, nil
	case "hex", "hexadecimal", "16":
		return BaseHex, nil
	}
	return 0, fmt.Errorf("unknown base %q (want dec, bin, oct or hex)", s)
}

// ConvertBase re-renders an integer value from one radix to another.
// Hex output uses uppercase digits. A value that does not parse as an
// integer in the source base yields ErrInvalidNumber.
func ConvertBase(value string, from, to Base) (string, error) {
	if !from.Valid() || !to.Valid() {
		return "", fmt.Errorf("unsupported base %d -> %d", int(from), int(to))
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), int(from), 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a %s integer", ErrInvalidNumber, value, from)
	}
	out := strconv.FormatInt(n, int(to))
	if to == BaseHex {
		out = strings.ToUpper(out)
	}
	return out, nil
}

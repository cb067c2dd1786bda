package engine

import (
	"fmt"
	"math"
	"strconv"
)

// FactorialLimit is the largest operand Scientific("factorial") will
// compute. Larger operands report ErrOverflow instead of looping.
const FactorialLimit = 100

// Scientific computes a named unary function over a decimal operand and
// returns the result in canonical display form. It is pure: no
// calculator state is read or written. Trig operands are degrees.
//
// Domain failures (log/ln/sqrt of a non-positive value, factorial of a
// negative or fractional value) report ErrDomain; factorial operands
// above FactorialLimit report ErrOverflow; an unparseable operand
// reports ErrInvalidNumber.
func Scientific(name, operand string) (string, error) {
	v, err := strconv.ParseFloat(operand, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, operand)
	}

	var result float64
	switch name {
	case "sin":
		result = math.Sin(v * math.Pi / 180)
	case "cos":
		result = math.Cos(v * math.Pi / 180)
	case "tan":
		result = math.Tan(v * math.Pi / 180)
	case "log":
		if v <= 0 {
			return "", fmt.Errorf("%w: log of %s", ErrDomain, operand)
		}
		result = math.Log10(v)
	case "ln":
		if v <= 0 {
			return "", fmt.Errorf("%w: ln of %s", ErrDomain, operand)
		}
		result = math.Log(v)
	case "sqrt":
		if v <= 0 {
			return "", fmt.Errorf("%w: sqrt of %s", ErrDomain, operand)
		}
		result = math.Sqrt(v)
	case "square", "x²":
		result = v * v
	case "cube", "x³":
		result = v * v * v
	case "cbrt", "∛":
		result = math.Cbrt(v)
	case "factorial":
		return factorial(v)
	default:
		return "", fmt.Errorf("unknown function %q", name)
	}
	return formatNumber(roundSignificant(result, 12)), nil
}

func factorial(v float64) (string, error) {
	if v < 0 || v != math.Trunc(v) {
		return "", fmt.Errorf("%w: factorial of %s", ErrDomain, formatNumber(v))
	}
	if v > FactorialLimit {
		return "", fmt.Errorf("%w: factorial of %s exceeds %d", ErrOverflow, formatNumber(v), FactorialLimit)
	}
	result := 1.0
	for i := 2.0; i <= v; i++ {
		result *= i
	}
	return formatNumber(roundSignificant(result, 12)), nil
}

package engine

import "errors"

// Sentinel errors for the recoverable failure conditions of the engine.
// Every failed operation leaves the calculator state untouched; callers
// match with errors.Is and decide how to surface the condition.
var (
	// ErrInvalidDigit is returned when a typed digit is not valid in the
	// active numeral base.
	ErrInvalidDigit = errors.New("digit not valid in active base")

	// ErrDivisionByZero is returned by Evaluate when the right operand
	// of a division is exactly zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDomain is returned by scientific functions for operands outside
	// the function's domain.
	ErrDomain = errors.New("operand outside function domain")

	// ErrOverflow is returned when a factorial operand exceeds the
	// computation ceiling.
	ErrOverflow = errors.New("result too large")

	// ErrInvalidNumber is returned when an operand string cannot be
	// parsed in the expected base.
	ErrInvalidNumber = errors.New("invalid numeric input")
)

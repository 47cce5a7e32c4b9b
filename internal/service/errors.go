package service

import "errors"

var (
	// ErrInvalidNumbers is returned when either operand of a two-operand
	// operation is not a number.
	ErrInvalidNumbers = errors.New("invalid numbers provided")
	// ErrInvalidNumber is returned when the operand of sqrt is not a number.
	ErrInvalidNumber = errors.New("invalid number provided")

	ErrDivisionByZero     = errors.New("division by zero")
	ErrModuloByZero       = errors.New("modulo by zero")
	ErrNegativeSquareRoot = errors.New("square root of negative number")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

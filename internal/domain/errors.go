package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidFormat is returned when textual input does not match the
	// expected grammar. This is usually wrapped with the offending input.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOutOfRange is returned when a numeric value lies outside the
	// bounds permitted by its type (e.g. an hour greater than 23).
	ErrOutOfRange = errors.New("value out of range")

	// ErrOverflow is returned when an arithmetic operation would carry past
	// the representable range, or past the wrap point of a single-unit step.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrUnderflow is returned when an operation would borrow below zero.
	ErrUnderflow = errors.New("arithmetic underflow")

	// ErrDivisionByZero is returned when dividing by or taking a modulo of zero.
	ErrDivisionByZero = errors.New("division by zero")
)

package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Domain errors (domain.ErrOverflow, domain.ErrInvalidFormat, ...) pass
// through unchanged and remain reachable with errors.Is.
var (
	// ErrInvalidStep indicates a step could not be parsed or names an unknown
	// operation or unit. API layer should map this to HTTP 400 Bad Request.
	ErrInvalidStep = errors.New("invalid step")

	// ErrUnsupportedOperation indicates a well-formed step that does not apply
	// to the value being evaluated, such as multiplying a clock time.
	// API layer should map this to HTTP 400 Bad Request.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// StepError reports which step of a chain failed.
type StepError struct {
	// Index is the zero-based position of the failing step
	Index int
	// Step is the step that failed
	Step Step
	// Err is the underlying error
	Err error
}

// Error implements the error interface for StepError.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index+1, e.Step, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StepError) Unwrap() error {
	return e.Err
}

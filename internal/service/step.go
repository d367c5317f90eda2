package service

import (
	"fmt"
	"strings"

	"github.com/phrazzld/timekeeper/internal/domain"
	"github.com/phrazzld/timekeeper/internal/domain/duration"
)

// Operation names one arithmetic step.
type Operation string

// Supported operations. Multiply, divide and modulo apply to durations only.
const (
	OpAdd       Operation = "add"
	OpSubtract  Operation = "subtract"
	OpIncrement Operation = "increment"
	OpDecrement Operation = "decrement"
	OpMultiply  Operation = "multiply"
	OpDivide    Operation = "divide"
	OpModulo    Operation = "modulo"
)

// Unit names the operand of an add, subtract, increment or decrement step.
type Unit string

// Supported units. UnitDuration is only valid for add and subtract.
const (
	UnitHours    Unit = "hours"
	UnitMinutes  Unit = "minutes"
	UnitSeconds  Unit = "seconds"
	UnitDuration Unit = "duration"
)

// Step is one operation in a chain evaluated by the calculator.
//
// Amount carries the operand for hours, minutes and seconds units and the
// factor or divisor for multiply, divide and modulo. Duration carries the
// operand when Unit is UnitDuration.
type Step struct {
	Op       Operation
	Unit     Unit
	Amount   int64
	Duration duration.Duration
}

// ParseOperation validates an operation name.
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(strings.ToLower(s)); op {
	case OpAdd, OpSubtract, OpIncrement, OpDecrement, OpMultiply, OpDivide, OpModulo:
		return op, nil
	}
	return "", fmt.Errorf("%w: unknown operation %q", ErrInvalidStep, s)
}

// ParseUnit validates a unit name. Singular forms ("hour") are accepted.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(s) {
	case "hour", "hours":
		return UnitHours, nil
	case "minute", "minutes":
		return UnitMinutes, nil
	case "second", "seconds":
		return UnitSeconds, nil
	case "duration":
		return UnitDuration, nil
	}
	return "", fmt.Errorf("%w: unknown unit %q", ErrInvalidStep, s)
}

// ParseStep reads the colon-separated step form used on the command line:
//
//	add:hours:25
//	subtract:PT1H30M
//	increment:second
//	multiply:3
func ParseStep(s string) (Step, error) {
	parts := strings.Split(s, ":")
	op, err := ParseOperation(parts[0])
	if err != nil {
		return Step{}, err
	}

	switch op {
	case OpMultiply, OpDivide, OpModulo:
		if len(parts) != 2 {
			return Step{}, fmt.Errorf("%w: %q must be %s:<number>", ErrInvalidStep, s, op)
		}
		amount, err := domain.ParseDigits(parts[1])
		if err != nil {
			return Step{}, fmt.Errorf("%w: %q: %v", ErrInvalidStep, s, err)
		}
		return Step{Op: op, Amount: amount}, nil

	case OpIncrement, OpDecrement:
		if len(parts) != 2 {
			return Step{}, fmt.Errorf("%w: %q must be %s:<unit>", ErrInvalidStep, s, op)
		}
		unit, err := parseScalarUnit(s, parts[1])
		if err != nil {
			return Step{}, err
		}
		return Step{Op: op, Unit: unit}, nil
	}

	// add and subtract take either a duration literal or a unit and amount.
	switch {
	case len(parts) == 2 && strings.HasPrefix(parts[1], "PT"):
		d, err := duration.Parse(parts[1])
		if err != nil {
			return Step{}, fmt.Errorf("%w: %q: %v", ErrInvalidStep, s, err)
		}
		return Step{Op: op, Unit: UnitDuration, Duration: d}, nil
	case len(parts) == 3:
		unit, err := parseScalarUnit(s, parts[1])
		if err != nil {
			return Step{}, err
		}
		amount, err := domain.ParseDigits(parts[2])
		if err != nil {
			return Step{}, fmt.Errorf("%w: %q: %v", ErrInvalidStep, s, err)
		}
		return Step{Op: op, Unit: unit, Amount: amount}, nil
	}
	return Step{}, fmt.Errorf("%w: %q must be %s:<unit>:<number> or %s:PT...", ErrInvalidStep, s, op, op)
}

// parseScalarUnit accepts hours, minutes or seconds. A duration operand is
// only written as a PT literal.
func parseScalarUnit(step, s string) (Unit, error) {
	unit, err := ParseUnit(s)
	if err != nil {
		return "", err
	}
	if unit == UnitDuration {
		return "", fmt.Errorf("%w: %q: unit %q needs a PT literal operand", ErrInvalidStep, step, unit)
	}
	return unit, nil
}

// ParseSteps parses each argument with ParseStep.
func ParseSteps(args []string) ([]Step, error) {
	steps := make([]Step, 0, len(args))
	for i, arg := range args {
		step, err := ParseStep(arg)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// String renders the step in the form accepted by ParseStep.
func (s Step) String() string {
	switch s.Op {
	case OpMultiply, OpDivide, OpModulo:
		return fmt.Sprintf("%s:%d", s.Op, s.Amount)
	case OpIncrement, OpDecrement:
		return fmt.Sprintf("%s:%s", s.Op, s.Unit)
	}
	if s.Unit == UnitDuration {
		return fmt.Sprintf("%s:%s", s.Op, s.Duration)
	}
	return fmt.Sprintf("%s:%s:%d", s.Op, s.Unit, s.Amount)
}

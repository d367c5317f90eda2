package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/timekeeper/internal/domain/clock"
	"github.com/phrazzld/timekeeper/internal/domain/duration"
)

// CalculatorService evaluates chains of arithmetic steps on clock times and
// durations. Steps apply left to right and evaluation stops at the first
// failing step; no partial result is returned.
type CalculatorService interface {
	// EvaluateTime applies steps to start and returns the resulting time.
	EvaluateTime(ctx context.Context, start clock.Time, steps []Step) (clock.Time, error)

	// EvaluateDuration applies steps to start and returns the resulting duration.
	EvaluateDuration(ctx context.Context, start duration.Duration, steps []Step) (duration.Duration, error)
}

// calculatorServiceImpl implements the CalculatorService interface
type calculatorServiceImpl struct {
	logger *slog.Logger
}

// NewCalculatorService creates a new CalculatorService.
// A nil logger falls back to slog.Default().
func NewCalculatorService(logger *slog.Logger) CalculatorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &calculatorServiceImpl{
		logger: logger.With("component", "calculator_service"),
	}
}

// EvaluateTime implements CalculatorService.
func (s *calculatorServiceImpl) EvaluateTime(
	ctx context.Context,
	start clock.Time,
	steps []Step,
) (clock.Time, error) {
	current := start
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return clock.Time{}, fmt.Errorf("evaluate time: %w", err)
		}

		next, err := applyToTime(current, step)
		if err != nil {
			s.logger.DebugContext(ctx, "time evaluation failed",
				"start", start.String(),
				"step_index", i,
				"step", step.String(),
				"error", err)
			return clock.Time{}, &StepError{Index: i, Step: step, Err: err}
		}
		current = next
	}

	s.logger.DebugContext(ctx, "time evaluated",
		"start", start.String(),
		"steps", len(steps),
		"result", current.String())
	return current, nil
}

// EvaluateDuration implements CalculatorService.
func (s *calculatorServiceImpl) EvaluateDuration(
	ctx context.Context,
	start duration.Duration,
	steps []Step,
) (duration.Duration, error) {
	current := start
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return duration.Duration{}, fmt.Errorf("evaluate duration: %w", err)
		}

		next, err := applyToDuration(current, step)
		if err != nil {
			s.logger.DebugContext(ctx, "duration evaluation failed",
				"start", start.String(),
				"step_index", i,
				"step", step.String(),
				"error", err)
			return duration.Duration{}, &StepError{Index: i, Step: step, Err: err}
		}
		current = next
	}

	s.logger.DebugContext(ctx, "duration evaluated",
		"start", start.String(),
		"steps", len(steps),
		"result", current.String())
	return current, nil
}

func applyToTime(t clock.Time, step Step) (clock.Time, error) {
	switch step.Op {
	case OpAdd, OpSubtract:
		return shiftTime(t, step)
	case OpIncrement:
		switch step.Unit {
		case UnitHours:
			return t.IncrementHour()
		case UnitMinutes:
			return t.IncrementMinute()
		case UnitSeconds:
			return t.IncrementSecond()
		}
	case OpDecrement:
		switch step.Unit {
		case UnitHours:
			return t.DecrementHour()
		case UnitMinutes:
			return t.DecrementMinute()
		case UnitSeconds:
			return t.DecrementSecond()
		}
	case OpMultiply, OpDivide, OpModulo:
		return clock.Time{}, fmt.Errorf("%w: %s is not defined for a clock time", ErrUnsupportedOperation, step.Op)
	default:
		return clock.Time{}, fmt.Errorf("%w: unknown operation %q", ErrInvalidStep, step.Op)
	}
	return clock.Time{}, fmt.Errorf("%w: cannot %s unit %q", ErrUnsupportedOperation, step.Op, step.Unit)
}

func shiftTime(t clock.Time, step Step) (clock.Time, error) {
	subtract := step.Op == OpSubtract

	switch step.Unit {
	case UnitDuration:
		if subtract {
			return t.SubtractDuration(step.Duration), nil
		}
		return t.AddDuration(step.Duration)
	case UnitHours:
		h, err := duration.NewHours(step.Amount)
		if err != nil {
			return clock.Time{}, err
		}
		if subtract {
			return t.SubtractHours(h), nil
		}
		return t.AddHours(h)
	case UnitMinutes:
		m, err := duration.NewMinutes(step.Amount)
		if err != nil {
			return clock.Time{}, err
		}
		if subtract {
			return t.SubtractMinutes(m), nil
		}
		return t.AddMinutes(m)
	case UnitSeconds:
		sec, err := duration.NewSeconds(step.Amount)
		if err != nil {
			return clock.Time{}, err
		}
		if subtract {
			return t.SubtractSeconds(sec), nil
		}
		return t.AddSeconds(sec)
	}
	return clock.Time{}, fmt.Errorf("%w: unknown unit %q", ErrInvalidStep, step.Unit)
}

func applyToDuration(d duration.Duration, step Step) (duration.Duration, error) {
	switch step.Op {
	case OpAdd, OpSubtract:
		return shiftDuration(d, step)
	case OpMultiply:
		return d.Multiply(step.Amount)
	case OpDivide:
		return d.Divide(step.Amount)
	case OpModulo:
		return d.Modulo(step.Amount)
	case OpIncrement:
		switch step.Unit {
		case UnitHours:
			return d.IncrementHours()
		case UnitMinutes:
			return d.IncrementMinutes()
		case UnitSeconds:
			return d.IncrementSeconds()
		}
	case OpDecrement:
		switch step.Unit {
		case UnitHours:
			return d.DecrementHours()
		case UnitMinutes:
			return d.DecrementMinutes()
		case UnitSeconds:
			return d.DecrementSeconds()
		}
	default:
		return duration.Duration{}, fmt.Errorf("%w: unknown operation %q", ErrInvalidStep, step.Op)
	}
	return duration.Duration{}, fmt.Errorf("%w: cannot %s unit %q", ErrUnsupportedOperation, step.Op, step.Unit)
}

// shiftDuration applies an add or subtract step through the unit's own
// operation, so subtracting hours stays confined to the hours field.
func shiftDuration(d duration.Duration, step Step) (duration.Duration, error) {
	subtract := step.Op == OpSubtract

	switch step.Unit {
	case UnitDuration:
		if subtract {
			return d.Subtract(step.Duration), nil
		}
		return d.Add(step.Duration)
	case UnitHours:
		h, err := duration.NewHours(step.Amount)
		if err != nil {
			return duration.Duration{}, err
		}
		if subtract {
			return d.SubtractHours(h), nil
		}
		return d.AddHours(h)
	case UnitMinutes:
		m, err := duration.NewMinutes(step.Amount)
		if err != nil {
			return duration.Duration{}, err
		}
		if subtract {
			return d.SubtractMinutes(m), nil
		}
		return d.AddMinutes(m)
	case UnitSeconds:
		sec, err := duration.NewSeconds(step.Amount)
		if err != nil {
			return duration.Duration{}, err
		}
		if subtract {
			return d.SubtractSeconds(sec), nil
		}
		return d.AddSeconds(sec)
	}
	return duration.Duration{}, fmt.Errorf("%w: unknown unit %q", ErrInvalidStep, step.Unit)
}

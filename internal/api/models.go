package api

import (
	"fmt"

	"github.com/phrazzld/timekeeper/internal/domain/clock"
	"github.com/phrazzld/timekeeper/internal/domain/duration"
	"github.com/phrazzld/timekeeper/internal/service"
)

// StepRequest is one operation of an evaluation chain.
//
// Add and subtract take either a unit with an amount or a duration literal;
// increment and decrement take a unit; multiply, divide and modulo take an
// amount only.
type StepRequest struct {
	Op       string `json:"op"                 validate:"required,oneof=add subtract increment decrement multiply divide modulo"`
	Unit     string `json:"unit,omitempty"     validate:"omitempty,oneof=hours minutes seconds hour minute second"`
	Amount   int64  `json:"amount,omitempty"   validate:"min=0"`
	Duration string `json:"duration,omitempty" validate:"omitempty,startswith=PT,max=14"`
}

// EvaluateTimeRequest defines the payload for POST /api/times/evaluate.
type EvaluateTimeRequest struct {
	Time  string        `json:"time"  validate:"required,max=8"`
	Steps []StepRequest `json:"steps" validate:"max=100,dive"`
}

// EvaluateDurationRequest defines the payload for POST /api/durations/evaluate.
type EvaluateDurationRequest struct {
	Duration string        `json:"duration" validate:"required,startswith=PT,max=14"`
	Steps    []StepRequest `json:"steps"    validate:"max=100,dive"`
}

// TimeResponse describes a clock time.
type TimeResponse struct {
	Time   string `json:"time"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Second int    `json:"second"`
}

// EvaluateTimeResponse is the result of a time evaluation.
type EvaluateTimeResponse struct {
	Time string `json:"time"`
}

// DurationResponse describes a duration. TotalSeconds is omitted when the
// duration is too long to express in int64 seconds.
type DurationResponse struct {
	Duration     string `json:"duration"`
	Hours        int64  `json:"hours"`
	Minutes      int64  `json:"minutes"`
	Seconds      int64  `json:"seconds"`
	TotalSeconds *int64 `json:"total_seconds,omitempty"`
}

// EvaluateDurationResponse is the result of a duration evaluation.
type EvaluateDurationResponse struct {
	Duration string `json:"duration"`
}

// toStep converts a validated StepRequest into a service.Step.
func (s StepRequest) toStep() (service.Step, error) {
	op, err := service.ParseOperation(s.Op)
	if err != nil {
		return service.Step{}, err
	}
	step := service.Step{Op: op, Amount: s.Amount}

	switch op {
	case service.OpMultiply, service.OpDivide, service.OpModulo:
		if s.Unit != "" || s.Duration != "" {
			return service.Step{}, fmt.Errorf("%w: %s takes only an amount", service.ErrInvalidStep, op)
		}
		return step, nil
	case service.OpIncrement, service.OpDecrement:
		if s.Duration != "" || s.Unit == "" || s.Amount != 0 {
			return service.Step{}, fmt.Errorf("%w: %s takes only a unit", service.ErrInvalidStep, op)
		}
	}

	if s.Duration != "" {
		if s.Unit != "" || s.Amount != 0 {
			return service.Step{}, fmt.Errorf("%w: %s takes a unit and amount or a duration, not both", service.ErrInvalidStep, op)
		}
		d, err := duration.Parse(s.Duration)
		if err != nil {
			return service.Step{}, err
		}
		step.Unit = service.UnitDuration
		step.Duration = d
		return step, nil
	}

	if s.Unit == "" {
		return service.Step{}, fmt.Errorf("%w: %s requires a unit or a duration", service.ErrInvalidStep, op)
	}
	if step.Unit, err = service.ParseUnit(s.Unit); err != nil {
		return service.Step{}, err
	}
	return step, nil
}

func toSteps(reqs []StepRequest) ([]service.Step, error) {
	steps := make([]service.Step, 0, len(reqs))
	for i, req := range reqs {
		step, err := req.toStep()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func timeToResponse(t clock.Time) TimeResponse {
	return TimeResponse{
		Time:   t.String(),
		Hour:   t.Hour().Value(),
		Minute: t.Minute().Value(),
		Second: t.Second().Value(),
	}
}

func durationToResponse(d duration.Duration) DurationResponse {
	resp := DurationResponse{
		Duration: d.String(),
		Hours:    d.Hours().Value(),
		Minutes:  d.Minutes().Value(),
		Seconds:  d.Seconds().Value(),
	}
	if total, err := d.TotalSeconds(); err == nil {
		resp.TotalSeconds = &total
	}
	return resp
}

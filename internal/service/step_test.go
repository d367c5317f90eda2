package service

import (
	"testing"

	"github.com/phrazzld/timekeeper/internal/domain/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStep(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Step
		wantErr bool
	}{
		{
			name:  "add hours",
			input: "add:hours:25",
			want:  Step{Op: OpAdd, Unit: UnitHours, Amount: 25},
		},
		{
			name:  "case insensitive singular unit",
			input: "ADD:Hour:1",
			want:  Step{Op: OpAdd, Unit: UnitHours, Amount: 1},
		},
		{
			name:  "subtract seconds",
			input: "subtract:seconds:90",
			want:  Step{Op: OpSubtract, Unit: UnitSeconds, Amount: 90},
		},
		{
			name:  "subtract duration literal",
			input: "subtract:PT1H30M",
			want:  Step{Op: OpSubtract, Unit: UnitDuration, Duration: duration.MustOf(1, 30, 0)},
		},
		{
			name:  "increment",
			input: "increment:second",
			want:  Step{Op: OpIncrement, Unit: UnitSeconds},
		},
		{
			name:  "decrement",
			input: "decrement:minutes",
			want:  Step{Op: OpDecrement, Unit: UnitMinutes},
		},
		{
			name:  "multiply",
			input: "multiply:3",
			want:  Step{Op: OpMultiply, Amount: 3},
		},
		{
			name:  "modulo",
			input: "modulo:7",
			want:  Step{Op: OpModulo, Amount: 7},
		},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown operation", input: "jump:hours:1", wantErr: true},
		{name: "unknown unit", input: "add:weeks:1", wantErr: true},
		{name: "missing amount", input: "add:hours", wantErr: true},
		{name: "negative amount", input: "add:hours:-1", wantErr: true},
		{name: "malformed duration", input: "add:PTxH", wantErr: true},
		{name: "multiply without factor", input: "multiply", wantErr: true},
		{name: "multiply with unit", input: "multiply:hours:2", wantErr: true},
		{name: "increment without unit", input: "increment", wantErr: true},
		{name: "too many parts", input: "add:hours:1:2", wantErr: true},
		{name: "duration unit with amount", input: "add:duration:5", wantErr: true},
		{name: "increment duration unit", input: "increment:duration", wantErr: true},
		{name: "decrement duration unit", input: "decrement:duration", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStep(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidStep)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSteps(t *testing.T) {
	t.Run("parses every argument", func(t *testing.T) {
		steps, err := ParseSteps([]string{"add:minutes:5", "increment:hour"})
		require.NoError(t, err)
		assert.Equal(t, []Step{
			{Op: OpAdd, Unit: UnitMinutes, Amount: 5},
			{Op: OpIncrement, Unit: UnitHours},
		}, steps)
	})

	t.Run("reports the failing position", func(t *testing.T) {
		_, err := ParseSteps([]string{"add:minutes:5", "bogus"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidStep)
		assert.Contains(t, err.Error(), "step 2")
	})

	t.Run("empty input", func(t *testing.T) {
		steps, err := ParseSteps(nil)
		require.NoError(t, err)
		assert.Empty(t, steps)
	})
}

func TestStepStringRoundTrip(t *testing.T) {
	steps := []Step{
		{Op: OpAdd, Unit: UnitHours, Amount: 25},
		{Op: OpSubtract, Unit: UnitDuration, Duration: duration.MustOf(1, 30, 0)},
		{Op: OpIncrement, Unit: UnitSeconds},
		{Op: OpDivide, Amount: 4},
	}

	for _, step := range steps {
		t.Run(step.String(), func(t *testing.T) {
			parsed, err := ParseStep(step.String())
			require.NoError(t, err)
			assert.Equal(t, step, parsed)
		})
	}
}

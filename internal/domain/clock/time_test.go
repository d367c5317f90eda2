package clock

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/phrazzld/timekeeper/internal/domain"
	"github.com/phrazzld/timekeeper/internal/domain/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	tm, err := Of(9, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, 9, tm.Hour().Value())
	assert.Equal(t, 5, tm.Minute().Value())
	assert.Equal(t, 7, tm.Second().Value())

	_, err = Of(24, 0, 0)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
	_, err = Of(0, 60, 0)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
	_, err = Of(0, 0, 60)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)

	assert.Equal(t, Midnight(), MustOf(0, 0, 0))
	assert.Equal(t, Time{}, Midnight())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "hour_only", input: "9", want: "09:00:00"},
		{name: "padded_hour_only", input: "09", want: "09:00:00"},
		{name: "hour_and_minute", input: "9:30", want: "09:30:00"},
		{name: "single_digit_components", input: "9:5:7", want: "09:05:07"},
		{name: "full", input: "23:59:59", want: "23:59:59"},
		{name: "midnight", input: "00:00:00", want: "00:00:00"},
		{name: "hour_out_of_range", input: "24", wantErr: domain.ErrOutOfRange},
		{name: "minute_out_of_range", input: "12:60", wantErr: domain.ErrOutOfRange},
		{name: "second_out_of_range", input: "12:00:60", wantErr: domain.ErrOutOfRange},
		{name: "empty", input: "", wantErr: domain.ErrInvalidFormat},
		{name: "three_digit_hour", input: "123", wantErr: domain.ErrInvalidFormat},
		{name: "trailing_colon", input: "12:", wantErr: domain.ErrInvalidFormat},
		{name: "too_long", input: "12:30:45:00", wantErr: domain.ErrInvalidFormat},
		{name: "letters", input: "ab", wantErr: domain.ErrInvalidFormat},
		{name: "negative", input: "-1", wantErr: domain.ErrInvalidFormat},
		{name: "trailing_space", input: "1:2:3 ", wantErr: domain.ErrInvalidFormat},
		{name: "dot_separator", input: "12.30", wantErr: domain.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseShortFormEqualsFullForm(t *testing.T) {
	assert.True(t, MustParse("9").Equal(MustOf(9, 0, 0)))
	assert.Panics(t, func() { MustParse("25:00") })
}

func TestCompare(t *testing.T) {
	early := MustOf(8, 59, 59)
	late := MustOf(9, 0, 0)

	assert.Equal(t, -1, early.Compare(late))
	assert.Equal(t, 1, late.Compare(early))
	assert.Equal(t, 0, late.Compare(MustParse("9")))
	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, late.Before(late))
	assert.Equal(t, -1, MustOf(9, 0, 1).Compare(MustOf(9, 1, 0)))
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name  string
		start string
		apply func(Time) (Time, error)
		want  string
	}{
		{
			name:  "hours_wrap_past_midnight",
			start: "23:00:00",
			apply: func(t Time) (Time, error) { return t.AddHours(duration.MustHours(25)) },
			want:  "00:00:00",
		},
		{
			name:  "minutes_carry_and_wrap",
			start: "23:30:00",
			apply: func(t Time) (Time, error) { return t.AddMinutes(duration.MustMinutes(61)) },
			want:  "00:31:00",
		},
		{
			name:  "seconds_whole_day",
			start: "12:00:00",
			apply: func(t Time) (Time, error) { return t.AddSeconds(duration.MustSeconds(24*3600 + 1)) },
			want:  "12:00:01",
		},
		{
			name:  "seconds_carry_through_minutes",
			start: "10:59:59",
			apply: func(t Time) (Time, error) { return t.AddSeconds(duration.MustSeconds(1)) },
			want:  "11:00:00",
		},
		{
			name:  "duration",
			start: "22:45:45",
			apply: func(t Time) (Time, error) { return t.AddDuration(duration.MustParse("PT25H30M30S")) },
			want:  "00:16:15",
		},
		{
			name:  "largest_second_count",
			start: "00:00:00",
			apply: func(t Time) (Time, error) { return t.AddSeconds(duration.MustSeconds(math.MaxInt64)) },
			want:  "15:30:07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.apply(MustParse(tt.start))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAddOverflow(t *testing.T) {
	_, err := MustOf(1, 0, 0).AddHours(duration.MustHours(math.MaxInt64))
	assert.ErrorIs(t, err, domain.ErrOverflow)

	_, err = MustOf(0, 1, 0).AddMinutes(duration.MustMinutes(math.MaxInt64))
	assert.ErrorIs(t, err, domain.ErrOverflow)

	_, err = MustOf(0, 0, 1).AddSeconds(duration.MustSeconds(math.MaxInt64))
	assert.ErrorIs(t, err, domain.ErrOverflow)

	_, err = MustOf(1, 0, 0).AddDuration(duration.MustOf(math.MaxInt64, 0, 0))
	assert.ErrorIs(t, err, domain.ErrOverflow)
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name string
		got  Time
		want string
	}{
		{name: "second_below_midnight", got: Midnight().SubtractSeconds(duration.MustSeconds(1)), want: "23:59:59"},
		{name: "hours_wrap", got: MustOf(1, 0, 0).SubtractHours(duration.MustHours(25)), want: "00:00:00"},
		{name: "minutes_borrow", got: MustOf(0, 30, 0).SubtractMinutes(duration.MustMinutes(31)), want: "23:59:00"},
		{name: "duration", got: Midnight().SubtractDuration(duration.MustOf(1, 0, 1)), want: "22:59:59"},
		{name: "within_day", got: MustOf(12, 30, 30).SubtractDuration(duration.MustOf(2, 15, 15)), want: "10:15:15"},
		{name: "largest_hour_count", got: MustOf(10, 0, 0).SubtractHours(duration.MustHours(math.MaxInt64)), want: "03:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.String())
		})
	}
}

func TestIncrement(t *testing.T) {
	got, err := MustOf(22, 59, 59).IncrementSecond()
	require.NoError(t, err)
	assert.Equal(t, "23:00:00", got.String())

	got, err = MustOf(10, 59, 0).IncrementMinute()
	require.NoError(t, err)
	assert.Equal(t, "11:00:00", got.String())

	got, err = MustOf(10, 0, 0).IncrementHour()
	require.NoError(t, err)
	assert.Equal(t, "11:00:00", got.String())

	_, err = MustOf(23, 0, 0).IncrementHour()
	assert.ErrorIs(t, err, domain.ErrOverflow)

	_, err = MustOf(23, 59, 0).IncrementMinute()
	assert.ErrorIs(t, err, domain.ErrOverflow)

	_, err = MustOf(23, 59, 59).IncrementSecond()
	assert.ErrorIs(t, err, domain.ErrOverflow)
}

func TestDecrement(t *testing.T) {
	got, err := MustOf(1, 0, 0).DecrementSecond()
	require.NoError(t, err)
	assert.Equal(t, "00:59:59", got.String())

	got, err = MustOf(5, 0, 30).DecrementMinute()
	require.NoError(t, err)
	assert.Equal(t, "04:59:30", got.String())

	got, err = MustOf(5, 0, 0).DecrementHour()
	require.NoError(t, err)
	assert.Equal(t, "04:00:00", got.String())

	_, err = Midnight().DecrementSecond()
	assert.ErrorIs(t, err, domain.ErrUnderflow)

	_, err = MustOf(0, 10, 0).DecrementHour()
	assert.ErrorIs(t, err, domain.ErrUnderflow)

	_, err = MustOf(0, 0, 30).DecrementMinute()
	assert.ErrorIs(t, err, domain.ErrUnderflow)
}

// Bulk arithmetic wraps silently while single-unit steps report the same
// crossing as an error. Both behaviors are intentional.
func TestWrapPolicyAsymmetry(t *testing.T) {
	lastHour := MustOf(23, 0, 0)

	wrapped, err := lastHour.AddHours(duration.MustHours(1))
	require.NoError(t, err)
	assert.Equal(t, "00:00:00", wrapped.String())

	_, err = lastHour.IncrementHour()
	assert.ErrorIs(t, err, domain.ErrOverflow)

	assert.Equal(t, "23:00:00", Midnight().SubtractHours(duration.MustHours(1)).String())

	_, err = Midnight().DecrementHour()
	assert.ErrorIs(t, err, domain.ErrUnderflow)
}

func TestTimeJSON(t *testing.T) {
	type payload struct {
		At Time `json:"at"`
	}

	data, err := json.Marshal(payload{At: MustOf(7, 5, 0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"07:05:00"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"at":"9:30"}`), &p))
	assert.Equal(t, "09:30:00", p.At.String())

	err = json.Unmarshal([]byte(`{"at":"24:00"}`), &p)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
}

package clock

import (
	"fmt"

	"github.com/phrazzld/timekeeper/internal/domain"
	"github.com/phrazzld/timekeeper/internal/domain/duration"
)

const (
	secondsPerHour = secondsPerMinute * minutesPerHour
	minutesPerDay  = minutesPerHour * hoursPerDay
	secondsPerDay  = secondsPerHour * hoursPerDay
)

// AddHours moves the clock forward, wrapping past 23:59:59.
func (t Time) AddHours(h duration.Hours) (Time, error) {
	hours, err := domain.CheckedAdd(int64(t.hour.value), h.Value())
	if err != nil {
		return Time{}, fmt.Errorf("add %s hours to %s: %w", h, t, err)
	}
	return fold(hours, int64(t.minute.value), int64(t.second.value)), nil
}

// AddMinutes moves the clock forward, carrying into the hour and wrapping.
func (t Time) AddMinutes(m duration.Minutes) (Time, error) {
	minutes, err := domain.CheckedAdd(int64(t.minute.value), m.Value())
	if err != nil {
		return Time{}, fmt.Errorf("add %s minutes to %s: %w", m, t, err)
	}
	return fold(int64(t.hour.value), minutes, int64(t.second.value)), nil
}

// AddSeconds moves the clock forward, carrying into minutes and hours.
func (t Time) AddSeconds(s duration.Seconds) (Time, error) {
	seconds, err := domain.CheckedAdd(int64(t.second.value), s.Value())
	if err != nil {
		return Time{}, fmt.Errorf("add %s seconds to %s: %w", s, t, err)
	}
	return fold(int64(t.hour.value), int64(t.minute.value), seconds), nil
}

// AddDuration moves the clock forward by every component of d.
func (t Time) AddDuration(d duration.Duration) (Time, error) {
	hours, err := domain.CheckedAdd(int64(t.hour.value), d.Hours().Value())
	if err != nil {
		return Time{}, fmt.Errorf("add %s to %s: %w", d, t, err)
	}
	return fold(
		hours,
		int64(t.minute.value)+d.Minutes().Value(),
		int64(t.second.value)+d.Seconds().Value(),
	), nil
}

// SubtractHours moves the clock back, wrapping below 00:00:00.
func (t Time) SubtractHours(h duration.Hours) Time {
	return fold(int64(t.hour.value)-h.Value(), int64(t.minute.value), int64(t.second.value))
}

// SubtractMinutes moves the clock back, borrowing from the hour.
func (t Time) SubtractMinutes(m duration.Minutes) Time {
	return fold(int64(t.hour.value), int64(t.minute.value)-m.Value(), int64(t.second.value))
}

// SubtractSeconds moves the clock back, borrowing from minutes and hours.
func (t Time) SubtractSeconds(s duration.Seconds) Time {
	return fold(int64(t.hour.value), int64(t.minute.value), int64(t.second.value)-s.Value())
}

// SubtractDuration moves the clock back by every component of d.
func (t Time) SubtractDuration(d duration.Duration) Time {
	return fold(
		int64(t.hour.value)-d.Hours().Value(),
		int64(t.minute.value)-d.Minutes().Value(),
		int64(t.second.value)-d.Seconds().Value(),
	)
}

// IncrementHour advances one hour. Stepping past hour 23 is an overflow.
func (t Time) IncrementHour() (Time, error) {
	if t.hour.value == hoursPerDay-1 {
		return Time{}, fmt.Errorf("%w: cannot increment hour of %s past midnight", domain.ErrOverflow, t)
	}
	t.hour.value++
	return t, nil
}

// IncrementMinute advances one minute, carrying into the hour.
func (t Time) IncrementMinute() (Time, error) {
	if t.minute.value < minutesPerHour-1 {
		t.minute.value++
		return t, nil
	}
	next, err := t.IncrementHour()
	if err != nil {
		return Time{}, err
	}
	next.minute.value = 0
	return next, nil
}

// IncrementSecond advances one second, carrying into the minute.
func (t Time) IncrementSecond() (Time, error) {
	if t.second.value < secondsPerMinute-1 {
		t.second.value++
		return t, nil
	}
	next, err := t.IncrementMinute()
	if err != nil {
		return Time{}, err
	}
	next.second.value = 0
	return next, nil
}

// DecrementHour steps back one hour. Stepping below hour 0 is an underflow.
func (t Time) DecrementHour() (Time, error) {
	if t.hour.value == 0 {
		return Time{}, fmt.Errorf("%w: cannot decrement hour of %s past midnight", domain.ErrUnderflow, t)
	}
	t.hour.value--
	return t, nil
}

// DecrementMinute steps back one minute, borrowing from the hour.
func (t Time) DecrementMinute() (Time, error) {
	if t.minute.value > 0 {
		t.minute.value--
		return t, nil
	}
	prev, err := t.DecrementHour()
	if err != nil {
		return Time{}, err
	}
	prev.minute.value = minutesPerHour - 1
	return prev, nil
}

// DecrementSecond steps back one second, borrowing from the minute.
func (t Time) DecrementSecond() (Time, error) {
	if t.second.value > 0 {
		t.second.value--
		return t, nil
	}
	prev, err := t.DecrementMinute()
	if err != nil {
		return Time{}, err
	}
	prev.second.value = secondsPerMinute - 1
	return prev, nil
}

// fold reduces signed, unnormalized field values onto the 24-hour clock.
// Each field is reduced modulo one day first so the sum cannot overflow.
func fold(hours, minutes, seconds int64) Time {
	_, h := domain.FloorDivMod(hours, hoursPerDay)
	_, m := domain.FloorDivMod(minutes, minutesPerDay)
	_, s := domain.FloorDivMod(seconds, secondsPerDay)

	_, total := domain.FloorDivMod(h*secondsPerHour+m*secondsPerMinute+s, secondsPerDay)
	return Time{
		hour:   Hour{value: int(total / secondsPerHour)},
		minute: Minute{value: int(total / secondsPerMinute % minutesPerHour)},
		second: Second{value: int(total % secondsPerMinute)},
	}
}

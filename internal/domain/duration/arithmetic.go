package duration

import (
	"fmt"
	"math/big"

	"github.com/phrazzld/timekeeper/internal/domain"
)

// Add returns d + other. Hours overflowing int64 yield domain.ErrOverflow.
func (d Duration) Add(other Duration) (Duration, error) {
	hours, err := domain.CheckedAdd(d.hours, other.hours)
	if err != nil {
		return Duration{}, fmt.Errorf("add %s to %s: %w", other, d, err)
	}
	sum, err := normalize(hours, d.minutes+other.minutes, d.seconds+other.seconds)
	if err != nil {
		return Duration{}, fmt.Errorf("add %s to %s: %w", other, d, err)
	}
	return sum, nil
}

// AddHours returns d plus the given number of hours.
func (d Duration) AddHours(h Hours) (Duration, error) {
	return d.Add(Duration{hours: h.value})
}

// AddMinutes returns d plus the given number of minutes.
func (d Duration) AddMinutes(m Minutes) (Duration, error) {
	return d.Add(fromMinutes(m))
}

// AddSeconds returns d plus the given number of seconds.
func (d Duration) AddSeconds(s Seconds) (Duration, error) {
	return d.Add(fromSeconds(s))
}

// Subtract returns the absolute difference between d and other. A Duration
// never goes negative: subtracting a longer duration from a shorter one
// yields the positive gap between them rather than an error.
func (d Duration) Subtract(other Duration) Duration {
	larger, smaller := d, other
	if d.Compare(other) < 0 {
		larger, smaller = other, d
	}

	var borrow int64
	seconds := larger.seconds - smaller.seconds
	if seconds < 0 {
		seconds += secondsPerMinute
		borrow = 1
	}
	minutes := larger.minutes - smaller.minutes - borrow
	borrow = 0
	if minutes < 0 {
		minutes += minutesPerHour
		borrow = 1
	}

	return Duration{
		hours:   larger.hours - smaller.hours - borrow,
		minutes: minutes,
		seconds: seconds,
	}
}

// SubtractHours replaces the hours field with its absolute difference from h.
// Minutes and seconds are kept, so PT1H30M minus 2 hours is PT1H30M.
func (d Duration) SubtractHours(h Hours) Duration {
	if h.value > d.hours {
		d.hours = h.value - d.hours
	} else {
		d.hours -= h.value
	}
	return d
}

// SubtractMinutes subtracts m minutes, borrowing from hours. When the minutes
// exceed everything above the seconds field the result is the absolute
// difference between the two durations.
func (d Duration) SubtractMinutes(m Minutes) Duration {
	return d.Subtract(fromMinutes(m))
}

// SubtractSeconds subtracts s seconds, borrowing from minutes and hours. A
// subtrahend larger than d yields the absolute difference.
func (d Duration) SubtractSeconds(s Seconds) Duration {
	return d.Subtract(fromSeconds(s))
}

// Multiply scales d by a non-negative factor, computed on total seconds.
func (d Duration) Multiply(factor int64) (Duration, error) {
	if factor < 0 {
		return Duration{}, fmt.Errorf("%w: multiplier must not be negative, got %d", domain.ErrOutOfRange, factor)
	}
	total := d.totalSeconds()
	total.Mul(total, big.NewInt(factor))
	product, err := fromTotalSeconds(total)
	if err != nil {
		return Duration{}, fmt.Errorf("multiply %s by %d: %w", d, factor, err)
	}
	return product, nil
}

// Divide returns floor(total seconds / divisor) as a Duration.
func (d Duration) Divide(divisor int64) (Duration, error) {
	if err := checkDivisor(divisor); err != nil {
		return Duration{}, fmt.Errorf("divide %s: %w", d, err)
	}
	total := d.totalSeconds()
	return fromTotalSeconds(total.Quo(total, big.NewInt(divisor)))
}

// Modulo returns the remainder of total seconds divided by divisor.
func (d Duration) Modulo(divisor int64) (Duration, error) {
	if err := checkDivisor(divisor); err != nil {
		return Duration{}, fmt.Errorf("modulo %s: %w", d, err)
	}
	total := d.totalSeconds()
	return fromTotalSeconds(total.Rem(total, big.NewInt(divisor)))
}

// IncrementHours adds one hour.
func (d Duration) IncrementHours() (Duration, error) {
	hours, err := domain.CheckedAdd(d.hours, 1)
	if err != nil {
		return Duration{}, fmt.Errorf("increment hours of %s: %w", d, err)
	}
	d.hours = hours
	return d, nil
}

// IncrementMinutes adds one minute, carrying into hours at 60.
func (d Duration) IncrementMinutes() (Duration, error) {
	if d.minutes < minutesPerHour-1 {
		d.minutes++
		return d, nil
	}
	next, err := d.IncrementHours()
	if err != nil {
		return Duration{}, err
	}
	next.minutes = 0
	return next, nil
}

// IncrementSeconds adds one second, carrying into minutes at 60.
func (d Duration) IncrementSeconds() (Duration, error) {
	if d.seconds < secondsPerMinute-1 {
		d.seconds++
		return d, nil
	}
	next, err := d.IncrementMinutes()
	if err != nil {
		return Duration{}, err
	}
	next.seconds = 0
	return next, nil
}

// DecrementHours removes one hour. A zero hour count cannot be decremented.
func (d Duration) DecrementHours() (Duration, error) {
	if d.hours == 0 {
		return Duration{}, fmt.Errorf("%w: cannot decrement hours of %s", domain.ErrUnderflow, d)
	}
	d.hours--
	return d, nil
}

// DecrementMinutes removes one minute, borrowing from hours at zero.
func (d Duration) DecrementMinutes() (Duration, error) {
	if d.minutes > 0 {
		d.minutes--
		return d, nil
	}
	prev, err := d.DecrementHours()
	if err != nil {
		return Duration{}, err
	}
	prev.minutes = minutesPerHour - 1
	return prev, nil
}

// DecrementSeconds removes one second, borrowing from minutes at zero.
func (d Duration) DecrementSeconds() (Duration, error) {
	if d.seconds > 0 {
		d.seconds--
		return d, nil
	}
	prev, err := d.DecrementMinutes()
	if err != nil {
		return Duration{}, err
	}
	prev.seconds = secondsPerMinute - 1
	return prev, nil
}

func fromMinutes(m Minutes) Duration {
	return Duration{hours: m.value / minutesPerHour, minutes: m.value % minutesPerHour}
}

func fromSeconds(s Seconds) Duration {
	return Duration{
		hours:   s.value / secondsPerHour,
		minutes: s.value / secondsPerMinute % minutesPerHour,
		seconds: s.value % secondsPerMinute,
	}
}

func checkDivisor(divisor int64) error {
	switch {
	case divisor == 0:
		return domain.ErrDivisionByZero
	case divisor < 0:
		return fmt.Errorf("%w: divisor must not be negative, got %d", domain.ErrOutOfRange, divisor)
	}
	return nil
}

package duration

import (
	"cmp"
	"fmt"
	"math/big"

	"github.com/phrazzld/timekeeper/internal/domain"
)

const (
	secondsPerMinute = 60
	minutesPerHour   = 60
	secondsPerHour   = secondsPerMinute * minutesPerHour
)

var bigSecondsPerHour = big.NewInt(secondsPerHour)

// Duration is an elapsed, non-negative amount of time. Hours are unbounded
// (up to int64) while minutes and seconds are always normalized into [0, 59].
//
// The zero value is the zero duration.
type Duration struct {
	hours   int64
	minutes int64
	seconds int64
}

// Zero returns the zero duration.
func Zero() Duration {
	return Duration{}
}

// New creates a Duration from magnitudes, folding excess seconds into minutes
// and excess minutes into hours.
func New(hours Hours, minutes Minutes, seconds Seconds) (Duration, error) {
	return normalize(hours.value, minutes.value, seconds.value)
}

// Of creates a Duration from raw integers. Negative components are rejected
// with domain.ErrOutOfRange. Of(0, 0, 125) is 0h 2m 5s.
func Of(hours, minutes, seconds int64) (Duration, error) {
	if hours < 0 || minutes < 0 || seconds < 0 {
		return Duration{}, fmt.Errorf("%w: duration components must not be negative, got (%d, %d, %d)",
			domain.ErrOutOfRange, hours, minutes, seconds)
	}
	return normalize(hours, minutes, seconds)
}

// MustOf is like Of but panics on error.
func MustOf(hours, minutes, seconds int64) Duration {
	d, err := Of(hours, minutes, seconds)
	if err != nil {
		panic(err)
	}
	return d
}

// FromSeconds creates a Duration from a total number of seconds.
func FromSeconds(total int64) (Duration, error) {
	return Of(0, 0, total)
}

// normalize folds non-negative components into canonical form using two
// divmod steps. Only the final hour carry can overflow.
func normalize(hours, minutes, seconds int64) (Duration, error) {
	carriedMinutes := seconds / secondsPerMinute
	mins := minutes%minutesPerHour + carriedMinutes%minutesPerHour
	carry := minutes/minutesPerHour + seconds/secondsPerHour + mins/minutesPerHour

	h, err := domain.CheckedAdd(hours, carry)
	if err != nil {
		return Duration{}, fmt.Errorf("normalize duration: %w", err)
	}

	return Duration{
		hours:   h,
		minutes: mins % minutesPerHour,
		seconds: seconds % secondsPerMinute,
	}, nil
}

// Hours returns the cumulative hour component.
func (d Duration) Hours() Hours { return Hours{value: d.hours} }

// Minutes returns the normalized minute component in [0, 59].
func (d Duration) Minutes() Minutes { return Minutes{value: d.minutes} }

// Seconds returns the normalized second component in [0, 59].
func (d Duration) Seconds() Seconds { return Seconds{value: d.seconds} }

// IsZero reports whether d is the zero duration.
func (d Duration) IsZero() bool { return d == Duration{} }

// Equal reports whether d and other represent the same amount of time.
func (d Duration) Equal(other Duration) bool { return d == other }

// Compare orders durations lexicographically by hours, minutes, seconds.
func (d Duration) Compare(other Duration) int {
	if c := cmp.Compare(d.hours, other.hours); c != 0 {
		return c
	}
	if c := cmp.Compare(d.minutes, other.minutes); c != 0 {
		return c
	}
	return cmp.Compare(d.seconds, other.seconds)
}

// String renders the duration as PT<h>H<m>M<s>S with every group present.
func (d Duration) String() string {
	return fmt.Sprintf("PT%dH%dM%dS", d.hours, d.minutes, d.seconds)
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TotalSeconds returns the duration as whole seconds. It fails with
// domain.ErrOverflow when the total does not fit in int64.
func (d Duration) TotalSeconds() (int64, error) {
	total := d.totalSeconds()
	if !total.IsInt64() {
		return 0, fmt.Errorf("%w: %s exceeds the int64 second range", domain.ErrOverflow, d)
	}
	return total.Int64(), nil
}

func (d Duration) totalSeconds() *big.Int {
	total := big.NewInt(d.hours)
	total.Mul(total, bigSecondsPerHour)
	return total.Add(total, big.NewInt(d.minutes*secondsPerMinute+d.seconds))
}

func fromTotalSeconds(total *big.Int) (Duration, error) {
	hours, rem := new(big.Int).QuoRem(total, bigSecondsPerHour, new(big.Int))
	if !hours.IsInt64() {
		return Duration{}, fmt.Errorf("%w: %s seconds exceeds the representable duration", domain.ErrOverflow, total)
	}
	r := rem.Int64()
	return Duration{
		hours:   hours.Int64(),
		minutes: r / secondsPerMinute,
		seconds: r % secondsPerMinute,
	}, nil
}

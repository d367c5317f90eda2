package clock

import (
	"fmt"
	"regexp"

	"github.com/phrazzld/timekeeper/internal/domain"
)

const maxParseLength = 8

// timePattern matches hh[:mm[:ss]] with one or two digits per component.
var timePattern = regexp.MustCompile(`^([0-9]{1,2})(?::([0-9]{1,2})(?::([0-9]{1,2}))?)?$`)

// Time is a wall-clock instant within a single day, with no date component.
//
// Bulk arithmetic (AddHours, SubtractDuration, ...) wraps around the clock
// silently, while the single-unit steps (IncrementHour, DecrementSecond, ...)
// report domain.ErrOverflow or domain.ErrUnderflow when they would cross
// midnight. The two policies are inconsistent and both are kept as they are.
//
// The zero value is midnight, 00:00:00.
type Time struct {
	hour   Hour
	minute Minute
	second Second
}

// New creates a Time from validated fields.
func New(hour Hour, minute Minute, second Second) Time {
	return Time{hour: hour, minute: minute, second: second}
}

// Of creates a Time from raw integers, validating each field.
func Of(hour, minute, second int) (Time, error) {
	h, err := NewHour(hour)
	if err != nil {
		return Time{}, err
	}
	m, err := NewMinute(minute)
	if err != nil {
		return Time{}, err
	}
	s, err := NewSecond(second)
	if err != nil {
		return Time{}, err
	}
	return New(h, m, s), nil
}

// MustOf is like Of but panics on error.
func MustOf(hour, minute, second int) Time {
	t, err := Of(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

// Midnight returns 00:00:00.
func Midnight() Time {
	return Time{}
}

// Parse reads a time written as hh[:mm[:ss]]. Leading zeros are optional and
// missing minutes or seconds default to zero, so "9" is 09:00:00. Malformed
// input fails with domain.ErrInvalidFormat and a component outside its
// bounds (such as "24") with domain.ErrOutOfRange.
func Parse(s string) (Time, error) {
	if s == "" || len(s) > maxParseLength {
		return Time{}, fmt.Errorf("%w: time %q must be 1 to %d characters", domain.ErrInvalidFormat, s, maxParseLength)
	}

	match := timePattern.FindStringSubmatch(s)
	if match == nil {
		return Time{}, fmt.Errorf("%w: time %q does not match hh[:mm[:ss]]", domain.ErrInvalidFormat, s)
	}

	h, err := ParseHour(match[1])
	if err != nil {
		return Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}

	var m Minute
	if match[2] != "" {
		if m, err = ParseMinute(match[2]); err != nil {
			return Time{}, fmt.Errorf("parse time %q: %w", s, err)
		}
	}

	var sec Second
	if match[3] != "" {
		if sec, err = ParseSecond(match[3]); err != nil {
			return Time{}, fmt.Errorf("parse time %q: %w", s, err)
		}
	}

	return New(h, m, sec), nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
func MustParse(s string) Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Hour returns the hour field.
func (t Time) Hour() Hour { return t.hour }

// Minute returns the minute field.
func (t Time) Minute() Minute { return t.minute }

// Second returns the second field.
func (t Time) Second() Second { return t.second }

// String renders the time as zero-padded HH:MM:SS.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour.value, t.minute.value, t.second.value)
}

// Compare orders times lexicographically by hour, minute, second.
func (t Time) Compare(other Time) int {
	if c := t.hour.Compare(other.hour); c != 0 {
		return c
	}
	if c := t.minute.Compare(other.minute); c != 0 {
		return c
	}
	return t.second.Compare(other.second)
}

// Equal reports whether t and other are the same instant.
func (t Time) Equal(other Time) bool { return t == other }

// Before reports whether t is earlier in the day than other.
func (t Time) Before(other Time) bool { return t.Compare(other) < 0 }

// After reports whether t is later in the day than other.
func (t Time) After(other Time) bool { return t.Compare(other) > 0 }

// MarshalText implements encoding.TextMarshaler.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

package clock

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/phrazzld/timekeeper/internal/domain"
)

const (
	hoursPerDay      = 24
	minutesPerHour   = 60
	secondsPerMinute = 60
)

// Hour is an hour of the day in [0, 23].
type Hour struct {
	value int
}

// Minute is a minute of the hour in [0, 59].
type Minute struct {
	value int
}

// Second is a second of the minute in [0, 59].
type Second struct {
	value int
}

// NewHour validates n as an hour of the day.
func NewHour(n int) (Hour, error) {
	if err := checkField("hour", n, hoursPerDay-1); err != nil {
		return Hour{}, err
	}
	return Hour{value: n}, nil
}

// NewMinute validates n as a minute of the hour.
func NewMinute(n int) (Minute, error) {
	if err := checkField("minute", n, minutesPerHour-1); err != nil {
		return Minute{}, err
	}
	return Minute{value: n}, nil
}

// NewSecond validates n as a second of the minute.
func NewSecond(n int) (Second, error) {
	if err := checkField("second", n, secondsPerMinute-1); err != nil {
		return Second{}, err
	}
	return Second{value: n}, nil
}

// ParseHour parses a decimal digit string such as "9" or "09".
func ParseHour(s string) (Hour, error) {
	n, err := parseField("hour", s)
	if err != nil {
		return Hour{}, err
	}
	return NewHour(n)
}

// ParseMinute parses a decimal digit string into a Minute.
func ParseMinute(s string) (Minute, error) {
	n, err := parseField("minute", s)
	if err != nil {
		return Minute{}, err
	}
	return NewMinute(n)
}

// ParseSecond parses a decimal digit string into a Second.
func ParseSecond(s string) (Second, error) {
	n, err := parseField("second", s)
	if err != nil {
		return Second{}, err
	}
	return NewSecond(n)
}

// Value returns the hour as an int in [0, 23].
func (h Hour) Value() int { return h.value }

// Value returns the minute as an int in [0, 59].
func (m Minute) Value() int { return m.value }

// Value returns the second as an int in [0, 59].
func (s Second) Value() int { return s.value }

// String renders the hour without zero padding.
func (h Hour) String() string { return strconv.Itoa(h.value) }

// String renders the minute without zero padding.
func (m Minute) String() string { return strconv.Itoa(m.value) }

// String renders the second without zero padding.
func (s Second) String() string { return strconv.Itoa(s.value) }

// Compare returns -1, 0 or +1 as h is before, equal to or after other.
func (h Hour) Compare(other Hour) int { return cmp.Compare(h.value, other.value) }

// Compare orders minutes by their integer value.
func (m Minute) Compare(other Minute) int { return cmp.Compare(m.value, other.value) }

// Compare orders seconds by their integer value.
func (s Second) Compare(other Second) int { return cmp.Compare(s.value, other.value) }

// MarshalText implements encoding.TextMarshaler.
func (h Hour) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hour) UnmarshalText(text []byte) error {
	parsed, err := ParseHour(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Minute) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Minute) UnmarshalText(text []byte) error {
	parsed, err := ParseMinute(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Second) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Second) UnmarshalText(text []byte) error {
	parsed, err := ParseSecond(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func checkField(name string, n, upper int) error {
	if n < 0 || n > upper {
		return fmt.Errorf("%w: %s must be between 0 and %d, got %d", domain.ErrOutOfRange, name, upper, n)
	}
	return nil
}

// parseField maps literals too large for int64 to ErrOutOfRange: for a
// bounded field they are simply out of range, not an arithmetic overflow.
func parseField(name, s string) (int, error) {
	n, err := domain.ParseDigits(s)
	if errors.Is(err, domain.ErrOverflow) {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrOutOfRange, name, s)
	}
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrOutOfRange, name, s)
	}
	return int(n), nil
}

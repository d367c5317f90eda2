package duration

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/phrazzld/timekeeper/internal/domain"
)

// Hours is a non-negative count of hours used as an arithmetic operand.
type Hours struct {
	value int64
}

// Minutes is a non-negative count of minutes used as an arithmetic operand.
type Minutes struct {
	value int64
}

// Seconds is a non-negative count of seconds used as an arithmetic operand.
type Seconds struct {
	value int64
}

// NewHours creates an Hours magnitude. Negative values are rejected.
func NewHours(n int64) (Hours, error) {
	if err := checkMagnitude("hours", n); err != nil {
		return Hours{}, err
	}
	return Hours{value: n}, nil
}

// NewMinutes creates a Minutes magnitude. Negative values are rejected.
func NewMinutes(n int64) (Minutes, error) {
	if err := checkMagnitude("minutes", n); err != nil {
		return Minutes{}, err
	}
	return Minutes{value: n}, nil
}

// NewSeconds creates a Seconds magnitude. Negative values are rejected.
func NewSeconds(n int64) (Seconds, error) {
	if err := checkMagnitude("seconds", n); err != nil {
		return Seconds{}, err
	}
	return Seconds{value: n}, nil
}

// ParseHours parses a decimal digit string into an Hours magnitude.
func ParseHours(s string) (Hours, error) {
	n, err := parseMagnitude("hours", s)
	if err != nil {
		return Hours{}, err
	}
	return Hours{value: n}, nil
}

// ParseMinutes parses a decimal digit string into a Minutes magnitude.
func ParseMinutes(s string) (Minutes, error) {
	n, err := parseMagnitude("minutes", s)
	if err != nil {
		return Minutes{}, err
	}
	return Minutes{value: n}, nil
}

// ParseSeconds parses a decimal digit string into a Seconds magnitude.
func ParseSeconds(s string) (Seconds, error) {
	n, err := parseMagnitude("seconds", s)
	if err != nil {
		return Seconds{}, err
	}
	return Seconds{value: n}, nil
}

// MustHours is like NewHours but panics on a negative value.
func MustHours(n int64) Hours {
	h, err := NewHours(n)
	if err != nil {
		panic(err)
	}
	return h
}

// MustMinutes is like NewMinutes but panics on a negative value.
func MustMinutes(n int64) Minutes {
	m, err := NewMinutes(n)
	if err != nil {
		panic(err)
	}
	return m
}

// MustSeconds is like NewSeconds but panics on a negative value.
func MustSeconds(n int64) Seconds {
	s, err := NewSeconds(n)
	if err != nil {
		panic(err)
	}
	return s
}

// Value returns the number of hours.
func (h Hours) Value() int64 { return h.value }

// Value returns the number of minutes.
func (m Minutes) Value() int64 { return m.value }

// Value returns the number of seconds.
func (s Seconds) Value() int64 { return s.value }

// String renders the hour count in decimal.
func (h Hours) String() string { return strconv.FormatInt(h.value, 10) }

// String renders the minute count in decimal.
func (m Minutes) String() string { return strconv.FormatInt(m.value, 10) }

// String renders the second count in decimal.
func (s Seconds) String() string { return strconv.FormatInt(s.value, 10) }

// Compare returns -1, 0 or +1 depending on whether h is less than, equal to,
// or greater than other.
func (h Hours) Compare(other Hours) int { return cmp.Compare(h.value, other.value) }

// Compare orders minutes by their integer value.
func (m Minutes) Compare(other Minutes) int { return cmp.Compare(m.value, other.value) }

// Compare orders seconds by their integer value.
func (s Seconds) Compare(other Seconds) int { return cmp.Compare(s.value, other.value) }

// MarshalText implements encoding.TextMarshaler.
func (h Hours) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hours) UnmarshalText(text []byte) error {
	parsed, err := ParseHours(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Minutes) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Minutes) UnmarshalText(text []byte) error {
	parsed, err := ParseMinutes(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Seconds) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Seconds) UnmarshalText(text []byte) error {
	parsed, err := ParseSeconds(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func checkMagnitude(unit string, n int64) error {
	if n < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %d", domain.ErrOutOfRange, unit, n)
	}
	return nil
}

func parseMagnitude(unit, s string) (int64, error) {
	n, err := domain.ParseDigits(s)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", unit, err)
	}
	return n, nil
}

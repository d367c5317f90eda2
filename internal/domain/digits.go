package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// ParseDigits parses s as a non-negative decimal integer literal. Only ASCII
// digits are accepted: signs, spaces and the empty string are rejected with
// ErrInvalidFormat. Literals too large for int64 are rejected with ErrOverflow.
func ParseDigits(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty number", ErrInvalidFormat)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidFormat, s)
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q does not fit in 64 bits", ErrOverflow, s)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return n, nil
}

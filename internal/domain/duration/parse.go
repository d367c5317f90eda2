package duration

import (
	"fmt"
	"regexp"

	"github.com/phrazzld/timekeeper/internal/domain"
)

const (
	minParseLength = 4
	maxParseLength = 14
)

// durationPattern matches PT[<n>H][<n>M][<n>S]. Every group is optional.
var durationPattern = regexp.MustCompile(`^PT(?:([0-9]+)H)?(?:([0-9]+)M)?(?:([0-9]+)S)?$`)

// Parse reads a duration written as PT[<n>H][<n>M][<n>S]. The bare literal
// "PT" is the zero duration; otherwise the input must be 4 to 14 characters
// long. Components above 59 are folded upward, so "PT90M" equals "PT1H30M".
func Parse(s string) (Duration, error) {
	if s == "PT" {
		return Zero(), nil
	}
	if len(s) < minParseLength || len(s) > maxParseLength {
		return Duration{}, fmt.Errorf("%w: duration %q must be %d to %d characters",
			domain.ErrInvalidFormat, s, minParseLength, maxParseLength)
	}

	match := durationPattern.FindStringSubmatch(s)
	if match == nil {
		return Duration{}, fmt.Errorf("%w: duration %q does not match PT[nH][nM][nS]", domain.ErrInvalidFormat, s)
	}

	var parts [3]int64
	for i, group := range match[1:] {
		if group == "" {
			continue
		}
		n, err := domain.ParseDigits(group)
		if err != nil {
			return Duration{}, fmt.Errorf("parse duration %q: %w", s, err)
		}
		parts[i] = n
	}

	return normalize(parts[0], parts[1], parts[2])
}

// MustParse is like Parse but panics if the string cannot be parsed.
func MustParse(s string) Duration {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

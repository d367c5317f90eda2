package domain

import (
	"fmt"
	"math"
)

// CheckedAdd returns a+b, or ErrOverflow when the sum does not fit in int64.
func CheckedAdd(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

// FloorDivMod divides a by a positive b, rounding the quotient toward
// negative infinity so the remainder is always in [0, b).
func FloorDivMod(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

package mathx

import "golang.org/x/exp/constraints"

// RoundDiv returns a/b rounded to nearest, halves rounding up. b == 0 yields 0.
// Computed without forming a+b/2 so it cannot overflow near the top of T.
func RoundDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	q, r := a/b, a%b
	if r >= b-r {
		q++
	}
	return q
}

package lcm

import (
	"math"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// GCD returns the greatest common divisor, using the Euclidean algorithm.
func GCD(a, b int64) int64 {
	for b != 0 {
		b, a = a%b, b
	}
	return a
}

// Pair returns the least common multiple of a and b. ok is false when the
// result does not fit in an int64.
func Pair(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	return mul(a/GCD(a, b), b)
}

// LCM reduces nums left to right with Pair. A single element is returned
// unchanged and an empty list yields 0.
func LCM(nums domain.NumberList) (int64, error) {
	if len(nums) == 0 {
		return 0, nil
	}

	acc := nums[0]
	for _, n := range nums[1:] {
		next, ok := Pair(acc, n)
		if !ok {
			return 0, domain.NewInputError(domain.ReasonOverflow, "")
		}
		acc = next
	}
	return acc, nil
}

func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}

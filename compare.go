package fmath

import (
	"cmp"

	"github.com/tphakala/go-fmath/internal/platform"
)

// IsWithin reports whether min <= v < max.
func IsWithin[T cmp.Ordered](v, minValue, maxValue T) bool {
	return v >= minValue && v < maxValue
}

// IsWithinInclusive reports whether min <= v <= max.
func IsWithinInclusive[T cmp.Ordered](v, minValue, maxValue T) bool {
	return v >= minValue && v <= maxValue
}

// IsNearlyEqual reports whether |a-b| <= tolerance. Equal infinities and a
// negative tolerance both report false.
func IsNearlyEqual[T Float](a, b, tolerance T) bool {
	return platform.Abs(a-b) <= tolerance
}

// IsNearlyZero reports whether |v| <= tolerance.
func IsNearlyZero[T Float](v, tolerance T) bool {
	return platform.Abs(v) <= tolerance
}

// IsNearlyEqualDefault is IsNearlyEqual with SmallNumber as the tolerance.
func IsNearlyEqualDefault[T Float](a, b T) bool {
	return IsNearlyEqual(a, b, SmallNumber)
}

// IsNearlyZeroDefault is IsNearlyZero with SmallNumber as the tolerance.
func IsNearlyZeroDefault[T Float](v T) bool {
	return IsNearlyZero(v, SmallNumber)
}

// IsPowerOfTwo reports whether v has at most one bit set.
// Zero reports true; callers that need a strictly positive power of two
// must check v > 0 themselves.
func IsPowerOfTwo[T Integer](v T) bool {
	return v&(v-1) == 0
}

// Max3 returns the largest of a, b and c.
func Max3[T cmp.Ordered](a, b, c T) T {
	return max(max(a, b), c)
}

// Min3 returns the smallest of a, b and c.
func Min3[T cmp.Ordered](a, b, c T) T {
	return min(min(a, b), c)
}

// Square returns a*a.
func Square[T Number](a T) T {
	return a * a
}

// Clamp limits x to [lo, hi]. The result is unspecified when lo > hi.
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	checkPrecondition(lo <= hi, "fmath: Clamp called with lo > hi", "lo", lo, "hi", hi)
	if x < lo {
		return lo
	}
	if x < hi {
		return x
	}
	return hi
}

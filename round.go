package fmath

import (
	"github.com/tphakala/go-fmath/internal/platform"
)

// RoundFromZero rounds f away from zero to an integral value.
func RoundFromZero[T Float](f T) T {
	if f < 0 {
		return platform.Floor(f)
	}
	return platform.Ceil(f)
}

// RoundToZero rounds f toward zero to an integral value.
func RoundToZero[T Float](f T) T {
	if f < 0 {
		return platform.Ceil(f)
	}
	return platform.Floor(f)
}

// RoundToNegativeInfinity is Floor.
func RoundToNegativeInfinity[T Float](f T) T {
	return platform.Floor(f)
}

// RoundToPositiveInfinity is Ceil.
func RoundToPositiveInfinity[T Float](f T) T {
	return platform.Ceil(f)
}

// TruncateToHalfIfClose snaps f to the nearest half when its fractional part
// is within SmallNumber of ±0.5, so that the half-rounding functions treat
// values produced by accumulated error as exact ties.
func TruncateToHalfIfClose[T Float](f T) T {
	intPart, frac := platform.Modf(f)
	if f < 0 {
		if IsNearlyEqualDefault(frac, -0.5) {
			frac = -0.5
		}
		return intPart + frac
	}
	if IsNearlyEqualDefault(frac, 0.5) {
		frac = 0.5
	}
	return intPart + frac
}

// RoundHalfToEven rounds to the nearest integer, resolving ties to the even
// neighbor (banker's rounding): 2.5 → 2, 3.5 → 4, -2.5 → -2.
func RoundHalfToEven[T Float](f T) T {
	f = TruncateToHalfIfClose(f)

	negative := f < 0
	magnitude := f
	if negative {
		magnitude = -f
	}
	valueIsEven := uint64(platform.Floor(magnitude))%2 == 0

	if valueIsEven {
		// Ties move toward the even integer below the magnitude.
		if negative {
			return platform.Floor(f + 0.5)
		}
		return platform.Ceil(f - 0.5)
	}
	// Ties move away, onto the even integer above the magnitude.
	if negative {
		return platform.Ceil(f - 0.5)
	}
	return platform.Floor(f + 0.5)
}

// RoundHalfFromZero rounds to the nearest integer with ties away from zero:
// 2.5 → 3, -2.5 → -3.
func RoundHalfFromZero[T Float](f T) T {
	f = TruncateToHalfIfClose(f)
	if f < 0 {
		return platform.Ceil(f - 0.5)
	}
	return platform.Floor(f + 0.5)
}

// RoundHalfToZero rounds to the nearest integer with ties toward zero:
// 2.5 → 2, -2.5 → -2.
func RoundHalfToZero[T Float](f T) T {
	f = TruncateToHalfIfClose(f)
	if f < 0 {
		return platform.Floor(f + 0.5)
	}
	return platform.Ceil(f - 0.5)
}

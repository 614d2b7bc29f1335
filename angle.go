package fmath

import (
	"github.com/tphakala/go-fmath/internal/platform"
)

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees[T Float](rad T) T {
	return rad * radToDegFactor
}

// DegreesToRadians converts degrees to radians.
func DegreesToRadians[T Float](deg T) T {
	return deg * degToRadFactor
}

// FindDeltaAngleDegrees returns the signed shortest rotation from a1 to a2,
// in (-180, 180].
func FindDeltaAngleDegrees[T Float](a1, a2 T) T {
	delta := UnwindDegrees(a2 - a1)
	if delta == -halfTurnDegrees {
		return halfTurnDegrees
	}
	return delta
}

// FindDeltaAngleRadians returns the signed shortest rotation from a1 to a2,
// in (-π, π].
func FindDeltaAngleRadians[T Float](a1, a2 T) T {
	delta := UnwindRadians(a2 - a1)
	if delta == -T(Pi) {
		return T(Pi)
	}
	return delta
}

// UnwindDegrees maps an angle in degrees into [-180, 180].
//
// Angles more than a half turn out are first reduced with a floating-point
// remainder; the final adjustment subtracts or adds whole turns exactly as
// an iterative unwind would, so in-range inputs come back untouched and the
// function terminates for every input, including ±Inf (which yield NaN).
func UnwindDegrees[T Float](value T) T {
	return unwind(value, halfTurnDegrees, fullTurnDegrees)
}

// UnwindRadians maps an angle in radians into [-π, π].
func UnwindRadians[T Float](value T) T {
	return unwind(value, T(Pi), T(twoPi))
}

func unwind[T Float](value, half, full T) T {
	if value > half || value < -half {
		value = platform.Mod(value, full)
	}
	for value > half {
		value -= full
	}
	for value < -half {
		value += full
	}
	return value
}

// WindRelativeAnglesDegrees returns angle1 shifted by whole turns so that it
// is within a half turn of angle0.
func WindRelativeAnglesDegrees[T Float](angle0, angle1 T) T {
	diff := angle0 - angle1
	absDiff := platform.Abs(diff)
	if absDiff > halfTurnDegrees {
		sign := T(1)
		if diff < 0 {
			sign = -1
		}
		angle1 += fullTurnDegrees * sign * platform.Floor((absDiff/fullTurnDegrees)+0.5)
	}
	return angle1
}

// CartesianToPolar converts (x, y) to a radius and an angle in (-π, π].
func (m *Math) CartesianToPolar(x, y float64) (rad, ang float64) {
	rad = m.prim.Sqrt(Square(x) + Square(y))
	ang = m.prim.Atan2(y, x)
	return rad, ang
}

// PolarToCartesian converts a radius and angle to (x, y).
func (m *Math) PolarToCartesian(rad, ang float64) (x, y float64) {
	x = rad * m.prim.Cos(ang)
	y = rad * m.prim.Sin(ang)
	return x, y
}

// CartesianToPolar is [Math.CartesianToPolar] on the default provider.
func CartesianToPolar[T Float](x, y T) (rad, ang T) {
	r, a := Default().CartesianToPolar(float64(x), float64(y))
	return T(r), T(a)
}

// PolarToCartesian is [Math.PolarToCartesian] on the default provider.
func PolarToCartesian[T Float](rad, ang T) (x, y T) {
	px, py := Default().PolarToCartesian(float64(rad), float64(ang))
	return T(px), T(py)
}

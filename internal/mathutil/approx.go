// Package mathutil provides polynomial approximations and lookup tables
// behind the fast paths of the fmath package.
package mathutil

import (
	"github.com/tphakala/go-fmath/internal/platform"
)

// Float is the type constraint for supported floating-point types.
type Float = platform.Float

// SinCos computes approximations of sin(value) and cos(value) at once.
//
// The angle is first reduced to the nearest multiple of 2π, then reflected
// into [-π/2, π/2] while tracking the sign of the cosine:
//
//	q = round(value / 2π)
//	y = value - 2π*q
//	y > π/2:  y = π - y,  cos sign = -1
//	y < -π/2: y = -π - y, cos sign = -1
//
// An 11th degree odd polynomial then gives sin(y) and a 10th degree even
// polynomial gives cos(y).
//
// Accuracy: ~1e-7 absolute error for float32, which is the precision the
// coefficients were fitted for. float64 callers get the same curve.
func SinCos[F Float](value F) (sin, cos F) {
	quotient := F(halfInv) * value
	if value >= 0 {
		quotient = platform.Trunc(quotient + roundUp)
	} else {
		quotient = platform.Trunc(quotient - roundUp)
	}
	y := value - F(twoPi)*quotient

	var sign F
	switch {
	case y > F(halfPi):
		y = F(pi) - y
		sign = -1
	case y < -F(halfPi):
		y = -F(pi) - y
		sign = -1
	default:
		sign = 1
	}

	y2 := y * y

	sin = (((((F(sinCoeff5)*y2+F(sinCoeff4))*y2+F(sinCoeff3))*y2+F(sinCoeff2))*y2+F(sinCoeff1))*y2 + 1) * y

	p := ((((F(cosCoeff5)*y2+F(cosCoeff4))*y2+F(cosCoeff3))*y2+F(cosCoeff2))*y2+F(cosCoeff1))*y2 + 1
	cos = sign * p

	return sin, cos
}

// FastAsin approximates asin(value) for value in [-1, 1].
//
// Uses the classic minimax form asin(x) = π/2 - sqrt(1-x)*P(x) on |x| with a
// 7th degree P, and reflects for negative inputs. 1-|x| is clamped at zero so
// inputs slightly outside [-1, 1] saturate instead of producing NaN.
//
// Accuracy: ~7e-8 absolute error over the domain.
func FastAsin[F Float](value F) F {
	nonNegative := value >= 0
	x := platform.Abs(value)
	omx := 1 - x
	if omx < 0 {
		omx = 0
	}
	root := platform.Sqrt(omx)

	result := ((((((F(asinCoeff7)*x+F(asinCoeff6))*x+F(asinCoeff5))*x+F(asinCoeff4))*x+
		F(asinCoeff3))*x+F(asinCoeff2))*x+F(asinCoeff1))*x + F(asinHalfPi)
	result *= root

	if nonNegative {
		return F(asinHalfPi) - result
	}
	return result - F(asinHalfPi)
}

package fmath

import (
	"github.com/tphakala/go-fmath/internal/platform"
)

// Lerp linearly interpolates from a to b: a + alpha*(b-a).
// alpha is not clamped; values outside [0, 1] extrapolate.
func Lerp[T Float](a, b, alpha T) T {
	return a + alpha*(b-a)
}

// LerpStable interpolates as a*(1-alpha) + b*alpha in double precision.
// Unlike Lerp it returns b exactly at alpha == 1 and loses less precision
// when a and b differ greatly in magnitude.
func LerpStable[T Float](a, b T, alpha float64) T {
	return T(float64(a)*(1.0-alpha) + float64(b)*alpha)
}

// LerpStable32 is LerpStable with a single-precision alpha. The weights are
// formed in float32 and applied in the precision of T.
func LerpStable32[T Float](a, b T, alpha float32) T {
	return a*T(1.0-alpha) + b*T(alpha)
}

// BiLerp performs bilinear interpolation: p00→p10 and p01→p11 along X by
// fracX, then between the two results along Y by fracY.
func BiLerp[T Float](p00, p10, p01, p11, fracX, fracY T) T {
	return Lerp(
		Lerp(p00, p10, fracX),
		Lerp(p01, p11, fracX),
		fracY,
	)
}

// CubicInterp evaluates the cubic Hermite curve from position p0 with
// tangent t0 to position p1 with tangent t1 at a ∈ [0, 1]:
//
//	h(a) = (2a³-3a²+1)p0 + (a³-2a²+a)t0 + (a³-a²)t1 + (-2a³+3a²)p1
func CubicInterp[T Float](p0, t0, p1, t1, a T) T {
	a2 := a * a
	a3 := a2 * a

	return ((2*a3)-(3*a2)+1)*p0 + (a3-(2*a2)+a)*t0 + (a3-a2)*t1 + ((-2*a3)+(3*a2))*p1
}

// CubicInterpDerivative returns dh/da of CubicInterp.
func CubicInterpDerivative[T Float](p0, t0, p1, t1, a T) T {
	x := 6*p0 + 3*t0 + 3*t1 - 6*p1
	y := -6*p0 - 4*t0 - 2*t1 + 6*p1
	z := t0
	a2 := a * a

	return (x * a2) + (y * a) + z
}

// CubicInterpSecondDerivative returns d²h/da² of CubicInterp.
func CubicInterpSecondDerivative[T Float](p0, t0, p1, t1, a T) T {
	x := 12*p0 + 6*t0 + 6*t1 - 12*p1
	y := -6*p0 - 4*t0 - 2*t1 + 6*p1

	return (x * a) + y
}

// InterpStep interpolates from a to b in discrete steps.
//
// It returns a when steps <= 1 or alpha <= 0, and b when alpha >= 1.
// Otherwise alpha is quantized to floor(alpha*steps)/(steps-1).
func InterpStep[T Float](a, b, alpha T, steps int32) T {
	checkPrecondition(steps >= 0, "fmath: InterpStep called with negative steps", "steps", steps)
	if steps <= 1 || alpha <= 0 {
		return a
	}
	if alpha >= 1 {
		return b
	}

	stepsAsFloat := T(steps)
	numIntervals := stepsAsFloat - 1
	modifiedAlpha := platform.Floor(alpha*stepsAsFloat) / numIntervals
	return Lerp(a, b, modifiedAlpha)
}

// SmoothStep returns the Hermite smoothstep of x between edges a and b:
// 0 below a, 1 at or above b, and 3t²-2t³ in between.
func SmoothStep[T Float](a, b, x T) T {
	if x < a {
		return 0
	}
	if x >= b {
		return 1
	}
	frac := (x - a) / (b - a)
	return frac * frac * (3 - 2*frac)
}

// GetRangePct returns where v lies in [minValue, maxValue] as a fraction.
// For a range narrower than SmallNumber it returns 1 if v >= maxValue and
// 0 otherwise.
func GetRangePct[T Float](minValue, maxValue, v T) T {
	divisor := maxValue - minValue
	if IsNearlyZeroDefault(divisor) {
		if v >= maxValue {
			return 1
		}
		return 0
	}
	return (v - minValue) / divisor
}

// GridSnap rounds location to the nearest multiple of grid.
// A zero grid returns location unchanged.
func GridSnap[T Float](location, grid T) T {
	if grid == 0 {
		return location
	}
	return platform.Floor((location+0.5*grid)/grid) * grid
}

// FInterpTo moves current toward target by a fraction deltaTime*speed of
// the remaining distance, clamped to [0, 1]. A non-positive speed jumps
// straight to target.
func FInterpTo[T Float](current, target, deltaTime, speed T) T {
	if speed <= 0 {
		return target
	}
	dist := target - current
	if Square(dist) < SmallNumber {
		return target
	}
	deltaMove := dist * Clamp(deltaTime*speed, 0, 1)
	return current + deltaMove
}

// FInterpConstantTo moves current toward target by at most speed*deltaTime.
func FInterpConstantTo[T Float](current, target, deltaTime, speed T) T {
	dist := target - current
	if Square(dist) < SmallNumber {
		return target
	}
	step := speed * deltaTime
	return current + Clamp(dist, -step, step)
}

// MakePulsatingValue returns a value oscillating in [0, 1] at
// pulsesPerSecond, peaking at currentTime == 0 when phase is 0.
// phase is expressed in cycles.
func (m *Math) MakePulsatingValue(currentTime, pulsesPerSecond, phase float64) float64 {
	angle := ((pulsePhaseOffset + phase) * Pi * 2.0) + (currentTime*Pi*2.0)*pulsesPerSecond
	return 0.5 + 0.5*m.prim.Sin(angle)
}

// MakePulsatingValue is [Math.MakePulsatingValue] on the default provider.
func MakePulsatingValue(currentTime float64, pulsesPerSecond, phase float32) float32 {
	return float32(Default().MakePulsatingValue(currentTime, float64(pulsesPerSecond), float64(phase)))
}

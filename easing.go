package fmath

// An alphaCurve remaps an interpolation parameter before it is fed to Lerp.
type alphaCurve func(p Primitives, alpha float64) float64

func sinInCurve(p Primitives, alpha float64) float64 {
	return -1*p.Cos(alpha*HalfPi) + 1
}

func sinOutCurve(p Primitives, alpha float64) float64 {
	return p.Sin(alpha * HalfPi)
}

func expoInCurve(p Primitives, alpha float64) float64 {
	if alpha == 0 {
		return 0
	}
	return p.Pow(expoBase, expoExponentGain*(alpha-1))
}

func expoOutCurve(p Primitives, alpha float64) float64 {
	if alpha == 1 {
		return 1
	}
	return -p.Pow(expoBase, -expoExponentGain*alpha) + 1
}

func circularInCurve(p Primitives, alpha float64) float64 {
	return -1 * (p.Sqrt(1-alpha*alpha) - 1)
}

func circularOutCurve(p Primitives, alpha float64) float64 {
	alpha -= 1
	return p.Sqrt(1 - alpha*alpha)
}

func easeInCurve(exp float64) alphaCurve {
	return func(p Primitives, alpha float64) float64 {
		return p.Pow(alpha, exp)
	}
}

func easeOutCurve(exp float64) alphaCurve {
	return func(p Primitives, alpha float64) float64 {
		return 1 - p.Pow(1-alpha, exp)
	}
}

// inOutCurve composes an In and an Out curve symmetrically: the first half
// of the range runs In over [0, 1] scaled to [0, 0.5], the second half runs
// Out over [0, 1] scaled and offset to [0.5, 1].
func inOutCurve(in, out alphaCurve) alphaCurve {
	return func(p Primitives, alpha float64) float64 {
		if alpha < easeHalf {
			return in(p, alpha*2) * easeHalf
		}
		return out(p, alpha*2-1)*easeHalf + easeHalf
	}
}

var (
	sinInOutCurve      = inOutCurve(sinInCurve, sinOutCurve)
	expoInOutCurve     = inOutCurve(expoInCurve, expoOutCurve)
	circularInOutCurve = inOutCurve(circularInCurve, circularOutCurve)
)

func easeInOutCurve(exp float64) alphaCurve {
	return inOutCurve(easeInCurve(exp), easeOutCurve(exp))
}

func interpCurve[T Float](p Primitives, a, b, alpha T, curve alphaCurve) T {
	return Lerp(a, b, T(curve(p, float64(alpha))))
}

// InterpEaseIn interpolates from a to b with alpha raised to exp,
// accelerating from a.
func (m *Math) InterpEaseIn(a, b, alpha, exp float64) float64 {
	return interpCurve(m.prim, a, b, alpha, easeInCurve(exp))
}

// InterpEaseOut interpolates from a to b with 1-(1-alpha)^exp,
// decelerating into b.
func (m *Math) InterpEaseOut(a, b, alpha, exp float64) float64 {
	return interpCurve(m.prim, a, b, alpha, easeOutCurve(exp))
}

// InterpEaseInOut accelerates with InterpEaseIn for the first half and
// decelerates with InterpEaseOut for the second.
func (m *Math) InterpEaseInOut(a, b, alpha, exp float64) float64 {
	return interpCurve(m.prim, a, b, alpha, easeInOutCurve(exp))
}

// InterpSinIn interpolates along the first quarter of a cosine wave.
func (m *Math) InterpSinIn(a, b, alpha float64) float64 {
	return interpCurve(m.prim, a, b, alpha, sinInCurve)
}

// InterpSinOut interpolates along the first quarter of a sine wave.
func (m *Math) InterpSinOut(a, b, alpha float64) float64 {
	return interpCurve(m.prim, a, b, alpha, sinOutCurve)
}

// InterpSinInOut is InterpSinIn over the first half and InterpSinOut over
// the second, meeting at the midpoint.
func (m *Math) InterpSinInOut(a, b, alpha float64) float64 {
	return interpCurve(m.prim, a, b, alpha, sinInOutCurve)
}

// InterpExpoIn interpolates with 2^(10(alpha-1)), exactly a at alpha == 0.
func (m *Math) InterpExpoIn(a, b, alpha float64) float64 {
	return interpCurve(m.prim, a, b, alpha, expoInCurve)
}

// InterpExpoOut interpolates with 1-2^(-10 alpha), exactly b at alpha == 1.
func (m *Math) InterpExpoOut(a, b, alpha float64) float64 {
	return interpCurve(m.prim, a, b, alpha, expoOutCurve)
}

// InterpExpoInOut composes InterpExpoIn and InterpExpoOut around alpha 0.5.
func (m *Math) InterpExpoInOut(a, b, alpha float64) float64 {
	return interpCurve(m.prim, a, b, alpha, expoInOutCurve)
}

// InterpCircularIn interpolates along a quarter circle, slow at a.
// alpha outside [-1, 1] yields NaN.
func (m *Math) InterpCircularIn(a, b, alpha float64) float64 {
	return interpCurve(m.prim, a, b, alpha, circularInCurve)
}

// InterpCircularOut interpolates along a quarter circle, slow at b.
func (m *Math) InterpCircularOut(a, b, alpha float64) float64 {
	return interpCurve(m.prim, a, b, alpha, circularOutCurve)
}

// InterpCircularInOut composes the two quarter circles, slow at both ends.
func (m *Math) InterpCircularInOut(a, b, alpha float64) float64 {
	return interpCurve(m.prim, a, b, alpha, circularInOutCurve)
}

// InterpEaseIn is [Math.InterpEaseIn] on the default provider.
func InterpEaseIn[T Float](a, b, alpha, exp T) T {
	return interpCurve(Default().prim, a, b, alpha, easeInCurve(float64(exp)))
}

// InterpEaseOut is [Math.InterpEaseOut] on the default provider.
func InterpEaseOut[T Float](a, b, alpha, exp T) T {
	return interpCurve(Default().prim, a, b, alpha, easeOutCurve(float64(exp)))
}

// InterpEaseInOut is [Math.InterpEaseInOut] on the default provider.
func InterpEaseInOut[T Float](a, b, alpha, exp T) T {
	return interpCurve(Default().prim, a, b, alpha, easeInOutCurve(float64(exp)))
}

// InterpSinIn is [Math.InterpSinIn] on the default provider.
func InterpSinIn[T Float](a, b, alpha T) T {
	return interpCurve(Default().prim, a, b, alpha, sinInCurve)
}

// InterpSinOut is [Math.InterpSinOut] on the default provider.
func InterpSinOut[T Float](a, b, alpha T) T {
	return interpCurve(Default().prim, a, b, alpha, sinOutCurve)
}

// InterpSinInOut is [Math.InterpSinInOut] on the default provider.
func InterpSinInOut[T Float](a, b, alpha T) T {
	return interpCurve(Default().prim, a, b, alpha, sinInOutCurve)
}

// InterpExpoIn is [Math.InterpExpoIn] on the default provider.
func InterpExpoIn[T Float](a, b, alpha T) T {
	return interpCurve(Default().prim, a, b, alpha, expoInCurve)
}

// InterpExpoOut is [Math.InterpExpoOut] on the default provider.
func InterpExpoOut[T Float](a, b, alpha T) T {
	return interpCurve(Default().prim, a, b, alpha, expoOutCurve)
}

// InterpExpoInOut is [Math.InterpExpoInOut] on the default provider.
func InterpExpoInOut[T Float](a, b, alpha T) T {
	return interpCurve(Default().prim, a, b, alpha, expoInOutCurve)
}

// InterpCircularIn is [Math.InterpCircularIn] on the default provider.
func InterpCircularIn[T Float](a, b, alpha T) T {
	return interpCurve(Default().prim, a, b, alpha, circularInCurve)
}

// InterpCircularOut is [Math.InterpCircularOut] on the default provider.
func InterpCircularOut[T Float](a, b, alpha T) T {
	return interpCurve(Default().prim, a, b, alpha, circularOutCurve)
}

// InterpCircularInOut is [Math.InterpCircularInOut] on the default provider.
func InterpCircularInOut[T Float](a, b, alpha T) T {
	return interpCurve(Default().prim, a, b, alpha, circularInOutCurve)
}

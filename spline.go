package fmath

// CubicCRSplineInterp evaluates a Catmull-Rom spline through control values
// p0..p3 placed at increasing parameter positions t0..t3, at parameter t.
// The segment of interest runs from p1 at t1 to p2 at t2.
//
// Evaluation uses the Barry-Goldman pyramid of linear interpolations:
// three first-level lerps over adjacent knots, two second-level lerps over
// knot pairs, and a final lerp over [t1, t2].
//
// Knots must be strictly increasing; coincident knots divide by zero.
// Use CubicCRSplineInterpSafe when that cannot be guaranteed.
func CubicCRSplineInterp[T Float](p0, p1, p2, p3, t0, t1, t2, t3, t T) T {
	checkPrecondition(t0 < t1 && t1 < t2 && t2 < t3,
		"fmath: CubicCRSplineInterp called with unordered knots",
		"t0", t0, "t1", t1, "t2", t2, "t3", t3)
	return crSpline(p0, p1, p2, p3, t0, t1, t2, t3, t, t1-t0, t2-t1, t3-t2, t2-t0, t3-t1)
}

// CubicCRSplineInterpSafe is CubicCRSplineInterp guarded against degenerate
// knot spacing: if any of t1-t0, t2-t1, t3-t2, t2-t0 or t3-t1 is within
// SmallNumber of zero it returns p1 unchanged. Otherwise the result is
// bit-identical to CubicCRSplineInterp.
func CubicCRSplineInterpSafe[T Float](p0, p1, p2, p3, t0, t1, t2, t3, t T) T {
	t1MinusT0 := t1 - t0
	t2MinusT1 := t2 - t1
	t3MinusT2 := t3 - t2
	t2MinusT0 := t2 - t0
	t3MinusT1 := t3 - t1
	if IsNearlyZeroDefault(t1MinusT0) || IsNearlyZeroDefault(t2MinusT1) || IsNearlyZeroDefault(t3MinusT2) ||
		IsNearlyZeroDefault(t2MinusT0) || IsNearlyZeroDefault(t3MinusT1) {
		return p1
	}
	return crSpline(p0, p1, p2, p3, t0, t1, t2, t3, t, t1MinusT0, t2MinusT1, t3MinusT2, t2MinusT0, t3MinusT1)
}

func crSpline[T Float](p0, p1, p2, p3, t0, t1, t2, t3, t, d10, d21, d32, d20, d31 T) T {
	invT1MinusT0 := 1 / d10
	l01 := (p0 * ((t1 - t) * invT1MinusT0)) + (p1 * ((t - t0) * invT1MinusT0))
	invT2MinusT1 := 1 / d21
	l12 := (p1 * ((t2 - t) * invT2MinusT1)) + (p2 * ((t - t1) * invT2MinusT1))
	invT3MinusT2 := 1 / d32
	l23 := (p2 * ((t3 - t) * invT3MinusT2)) + (p3 * ((t - t2) * invT3MinusT2))

	invT2MinusT0 := 1 / d20
	l012 := (l01 * ((t2 - t) * invT2MinusT0)) + (l12 * ((t - t0) * invT2MinusT0))
	invT3MinusT1 := 1 / d31
	l123 := (l12 * ((t3 - t) * invT3MinusT1)) + (l23 * ((t - t1) * invT3MinusT1))

	return (l012 * ((t2 - t) * invT2MinusT1)) + (l123 * ((t - t1) * invT2MinusT1))
}

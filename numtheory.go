package fmath

// GreatestCommonDivisor returns the GCD of a and b using the iterative
// Euclidean algorithm. GreatestCommonDivisor(a, 0) == a.
func GreatestCommonDivisor[T Integer](a, b T) T {
	for b != 0 {
		t := b
		b = a % b
		a = t
	}
	return a
}

// LeastCommonMultiplier returns the LCM of a and b, or 0 when both are 0.
func LeastCommonMultiplier[T Integer](a, b T) T {
	currentGCD := GreatestCommonDivisor(a, b)
	if currentGCD == 0 {
		return 0
	}
	return (a / currentGCD) * b
}

// DivideAndRoundUp divides and rounds toward positive infinity.
// Both operands must be positive.
func DivideAndRoundUp[T Integer](dividend, divisor T) T {
	return (dividend + divisor - 1) / divisor
}

// DivideAndRoundDown divides with Go's truncating integer division.
func DivideAndRoundDown[T Integer](dividend, divisor T) T {
	return dividend / divisor
}

// DivideAndRoundNearest divides and rounds to the nearest integer. Ties
// round toward positive infinity: 7/2 gives 4, -7/2 gives -3.
// divisor must be positive.
func DivideAndRoundNearest[T Integer](dividend, divisor T) T {
	if dividend >= 0 {
		return (dividend + divisor/2) / divisor
	}
	return (dividend - divisor/2 + 1) / divisor
}

package mathutil

// Range reduction constants for SinCos
// Literal precision matches the single-precision constants the polynomial
// coefficients were fitted against.
const (
	pi      = 3.1415926535897932
	halfPi  = 1.57079632679
	invPi   = 0.31830988618
	twoPi   = 2.0 * pi
	halfInv = invPi * 0.5 // 1/(2π)
	roundUp = 0.5         // Added before truncation to round the quotient
)

// Odd polynomial coefficients for sin(y), y ∈ [-π/2, π/2]
// sin(y) ≈ y * (1 + y²(s1 + y²(s2 + y²(s3 + y²(s4 + y²*s5)))))
const (
	sinCoeff1 = -0.16666667
	sinCoeff2 = 0.0083333310
	sinCoeff3 = -0.00019840874
	sinCoeff4 = 2.7525562e-06
	sinCoeff5 = -2.3889859e-08
)

// Even polynomial coefficients for cos(y), y ∈ [-π/2, π/2]
// cos(y) ≈ 1 + y²(c1 + y²(c2 + y²(c3 + y²(c4 + y²*c5))))
const (
	cosCoeff1 = -0.5
	cosCoeff2 = 0.041666638
	cosCoeff3 = -0.0013888378
	cosCoeff4 = 2.4760495e-05
	cosCoeff5 = -2.6051615e-07
)

// Minimax coefficients for asin(x) = π/2 - sqrt(1-x) * P(x), x ∈ [0, 1]
const (
	asinHalfPi = 1.5707963050 // π/2 as fitted by the polynomial, not math.Pi/2
	asinCoeff1 = -0.2145988016
	asinCoeff2 = 0.0889789874
	asinCoeff3 = -0.0501743046
	asinCoeff4 = 0.0308918810
	asinCoeff5 = -0.0170881256
	asinCoeff6 = 0.0066700901
	asinCoeff7 = -0.0012624911
)

// Perlin noise constants
const (
	permutationSize = 256
	permutationMask = permutationSize - 1
	gradientMask    = 15 // Index mask into gradientScales
	noiseOutputGain = 2.0

	// Quintic fade curve 6t⁵ - 15t⁴ + 10t³
	fadeCoeff6  = 6.0
	fadeCoeff15 = 15.0
	fadeCoeff10 = 10.0
)

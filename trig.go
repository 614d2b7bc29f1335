package fmath

import (
	"github.com/tphakala/go-fmath/internal/mathutil"
)

// SinCos returns fast polynomial approximations of sin(value) and
// cos(value), accurate to about 1e-7. See mathutil.SinCos for the range
// reduction.
func SinCos(value float32) (sin, cos float32) {
	return mathutil.SinCos(value)
}

// SinCos64 is SinCos evaluated in double precision. The polynomial is the
// same, so the accuracy bound does not improve beyond ~2e-8.
func SinCos64(value float64) (sin, cos float64) {
	return mathutil.SinCos(value)
}

// FastAsin approximates asin(value) to about 1e-7 for value ∈ [-1, 1].
// Inputs with |value| > 1 saturate to ±π/2.
func FastAsin(value float32) float32 {
	return mathutil.FastAsin(value)
}

// FastAsin64 is FastAsin evaluated in double precision.
func FastAsin64(value float64) float64 {
	return mathutil.FastAsin(value)
}

// PerlinNoise1D returns one-dimensional gradient noise in [-2, 2] that is
// zero at every integer and repeats every 256 units.
func PerlinNoise1D[T Float](value T) T {
	return mathutil.PerlinNoise1D(value)
}

// Log2 returns the base-2 logarithm of value.
func (m *Math) Log2(value float64) float64 {
	logToLog2 := 1 / m.prim.Loge(2)
	return m.prim.Loge(value) * logToLog2
}

// Log2 is [Math.Log2] on the default provider.
func Log2[T Float](value T) T {
	return T(Default().Log2(float64(value)))
}

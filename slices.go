package fmath

import (
	"github.com/tphakala/go-fmath/internal/simdops"
)

// LerpStableSlice writes a[i]*(1-alpha) + b[i]*alpha into dst[i] for every
// element. dst, a and b must have equal length; dst may alias a.
func LerpStableSlice[F Float](dst, a, b []F, alpha F) {
	if len(a) != len(dst) || len(b) != len(dst) {
		panic("fmath: LerpStableSlice length mismatch")
	}
	simdops.For[F]().Scale(dst, a, 1-alpha)
	for i, v := range b {
		dst[i] += v * alpha
	}
}

// Quantize8UnsignedBytes applies Quantize8UnsignedByte to every element of
// src, writing into dst. dst must be at least as long as src.
func Quantize8UnsignedBytes(dst []uint8, src []float32) {
	if len(dst) < len(src) {
		panic("fmath: Quantize8UnsignedBytes destination too short")
	}
	scaled := make([]float32, len(src))
	simdops.For[float32]().Scale(scaled, src, quantizeUnsignedScale)
	for i, v := range scaled {
		dst[i] = uint8(int32(v))
	}
}

// WeightedAverage returns Σ values[i]*weights[i] / Σ weights[i].
// It returns 0 when the weights sum to within SmallNumber of zero.
func WeightedAverage[F Float](values, weights []F) F {
	if len(values) != len(weights) {
		panic("fmath: WeightedAverage length mismatch")
	}
	if len(values) == 0 {
		return 0
	}
	ops := simdops.For[F]()
	total := ops.Sum(weights)
	if IsNearlyZeroDefault(total) {
		return 0
	}
	return ops.DotProductUnsafe(values, weights) / total
}

// PolarToCartesianInterleaved converts paired radius/angle slices to
// interleaved x, y coordinates: dst[2i] = x_i, dst[2i+1] = y_i.
// dst must hold 2*len(rad) elements.
func (m *Math) PolarToCartesianInterleaved(dst, rad, ang []float64) {
	if len(rad) != len(ang) || len(dst) < 2*len(rad) {
		panic("fmath: PolarToCartesianInterleaved length mismatch")
	}
	xs := make([]float64, len(rad))
	ys := make([]float64, len(rad))
	for i := range rad {
		xs[i], ys[i] = m.PolarToCartesian(rad[i], ang[i])
	}
	simdops.For[float64]().Interleave2(dst[:2*len(rad)], xs, ys)
}

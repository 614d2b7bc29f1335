package fmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestRoundDirected(t *testing.T) {
	tests := []struct {
		in                 float64
		fromZero, toZero   float64
		toNegInf, toPosInf float64
	}{
		{1.2, 2, 1, 1, 2},
		{-1.2, -2, -1, -2, -1},
		{1.7, 2, 1, 1, 2},
		{-1.7, -2, -1, -2, -1},
		{3, 3, 3, 3, 3},
		{-3, -3, -3, -3, -3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.fromZero, RoundFromZero(tt.in), "RoundFromZero(%v)", tt.in)
		assert.Equal(t, tt.toZero, RoundToZero(tt.in), "RoundToZero(%v)", tt.in)
		assert.Equal(t, tt.toNegInf, RoundToNegativeInfinity(tt.in), "RoundToNegativeInfinity(%v)", tt.in)
		assert.Equal(t, tt.toPosInf, RoundToPositiveInfinity(tt.in), "RoundToPositiveInfinity(%v)", tt.in)
	}
}

func TestRoundHalf(t *testing.T) {
	tests := []struct {
		in                     float64
		toEven, fromZero, zero float64
	}{
		{2.5, 2, 3, 2},
		{3.5, 4, 4, 3},
		{-2.5, -2, -3, -2},
		{-3.5, -4, -4, -3},
		{0.5, 0, 1, 0},
		{-0.5, 0, -1, 0},
		{2.4, 2, 2, 2},
		{2.6, 3, 3, 3},
		{-2.6, -3, -3, -3},
		{7, 7, 7, 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.toEven, RoundHalfToEven(tt.in), "RoundHalfToEven(%v)", tt.in)
		assert.Equal(t, tt.fromZero, RoundHalfFromZero(tt.in), "RoundHalfFromZero(%v)", tt.in)
		assert.Equal(t, tt.zero, RoundHalfToZero(tt.in), "RoundHalfToZero(%v)", tt.in)
	}
}

func TestRoundHalf_Float32(t *testing.T) {
	assert.Equal(t, float32(2), RoundHalfToEven(float32(2.5)))
	assert.Equal(t, float32(4), RoundHalfToEven(float32(3.5)))
	assert.Equal(t, float32(-3), RoundHalfFromZero(float32(-2.5)))
	assert.Equal(t, float32(-2), RoundHalfToZero(float32(-2.5)))
}

// TestRoundHalfToEven_MatchesGonum compares against gonum's banker's
// rounding on a grid that includes every kind of tie.
func TestRoundHalfToEven_MatchesGonum(t *testing.T) {
	for k := -40; k <= 40; k++ {
		x := float64(k) / 4
		assert.Equal(t, scalar.RoundEven(x, 0), RoundHalfToEven(x), "x=%v", x)
	}
}

func TestTruncateToHalfIfClose(t *testing.T) {
	assert.Equal(t, 1.5, TruncateToHalfIfClose(1.500000001))
	assert.Equal(t, 1.5, TruncateToHalfIfClose(1.499999999))
	assert.Equal(t, -1.5, TruncateToHalfIfClose(-1.499999999))
	assert.Equal(t, 1.3, TruncateToHalfIfClose(1.3))
	assert.Equal(t, -7.25, TruncateToHalfIfClose(-7.25))
}

func TestRoundHalf_AccumulatedErrorTreatedAsTie(t *testing.T) {
	// 0.1 summed 25 times lands just off 2.5.
	x := 0.0
	for range 25 {
		x += 0.1
	}
	assert.NotEqual(t, 2.5, x)
	assert.Equal(t, 2.0, RoundHalfToEven(x))
	assert.Equal(t, 3.0, RoundHalfFromZero(x))
	assert.Equal(t, 2.0, RoundHalfToZero(x))
}

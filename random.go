package fmath

import "github.com/chewxy/math32"

// RandHelper returns a uniformly distributed integer in [0, n).
// It returns 0 for n <= 0.
func (m *Math) RandHelper(n int32) int32 {
	if n <= 0 {
		return 0
	}
	return min(int32(m.prim.FRand()*float64(n)), n-1)
}

// RandRange returns a uniformly distributed integer in [lo, hi], inclusive.
func (m *Math) RandRange(lo, hi int32) int32 {
	span := (hi - lo) + 1
	return lo + m.RandHelper(span)
}

// FRandRange returns a uniformly distributed value in [lo, hi).
func (m *Math) FRandRange(lo, hi float64) float64 {
	return lo + (hi-lo)*m.prim.FRand()
}

// RandBool returns true or false with equal probability.
func (m *Math) RandBool() bool {
	return m.RandRange(0, 1) == 1
}

// RandHelper is [Math.RandHelper] on the default provider.
func RandHelper(n int32) int32 {
	return Default().RandHelper(n)
}

// RandRange is [Math.RandRange] on the default provider.
func RandRange(lo, hi int32) int32 {
	return Default().RandRange(lo, hi)
}

// FRandRange returns a uniformly distributed value in [lo, hi) drawn from
// the default provider. The sample is kept below 1 after conversion to T;
// for wide ranges lo+(hi-lo)*sample can still round up to hi.
func FRandRange[T Float](lo, hi T) T {
	return lo + (hi-lo)*unitSample[T](Default().prim.FRand())
}

// unitSample converts an FRand draw to T without letting it round up to 1.
func unitSample[T Float](v float64) T {
	r := T(v)
	if r >= 1 {
		r = T(math32.Nextafter(1, 0))
	}
	return r
}

// RandRangeFloat is an alias of FRandRange.
func RandRangeFloat[T Float](lo, hi T) T {
	return FRandRange(lo, hi)
}

// RandBool is [Math.RandBool] on the default provider.
func RandBool() bool {
	return Default().RandBool()
}

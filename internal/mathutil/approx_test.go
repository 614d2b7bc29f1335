package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-fmath/internal/testutil"
)

// TestSinCos tests SinCos against the standard library.
func TestSinCos(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"Zero", 0},
		{"Quarter turn", math.Pi / 2},
		{"Half turn", math.Pi},
		{"Negative half turn", -math.Pi},
		{"Three quarter turn", 3 * math.Pi / 2},
		{"Small positive", 0.1},
		{"Small negative", -0.1},
		{"Second quadrant", 2.0},
		{"Third quadrant", -2.5},
		{"Several turns", 7.5 * math.Pi},
		{"Several negative turns", -9.25 * math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, c := SinCos(tt.value)
			assert.InDelta(t, math.Sin(tt.value), s, 1e-6, "sin(%v)", tt.value)
			assert.InDelta(t, math.Cos(tt.value), c, 1e-6, "cos(%v)", tt.value)

			s32, c32 := SinCos(float32(tt.value))
			assert.InDelta(t, math.Sin(tt.value), float64(s32), 1e-5, "float32 sin(%v)", tt.value)
			assert.InDelta(t, math.Cos(tt.value), float64(c32), 1e-5, "float32 cos(%v)", tt.value)
		})
	}
}

// TestSinCos_Sweep checks the error bound over a dense range.
func TestSinCos_Sweep(t *testing.T) {
	for x := -20.0; x <= 20.0; x += 0.01 {
		s, c := SinCos(x)
		if !assert.InDelta(t, math.Sin(x), s, 1e-6, "sin at x=%v", x) {
			return
		}
		if !assert.InDelta(t, math.Cos(x), c, 1e-6, "cos at x=%v", x) {
			return
		}
	}
}

// TestSinCos_Identity tests sin² + cos² = 1.
func TestSinCos_Identity(t *testing.T) {
	for x := -10.0; x <= 10.0; x += 0.37 {
		s, c := SinCos(x)
		assert.InDelta(t, 1.0, s*s+c*c, 2e-6, "sin²+cos² at x=%v", x)
	}
}

// TestFastAsin tests FastAsin against math.Asin.
func TestFastAsin(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"Zero", 0},
		{"Half", 0.5},
		{"Negative half", -0.5},
		{"One", 1},
		{"Negative one", -1},
		{"Near one", 0.999},
		{"Small", 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, math.Asin(tt.value), FastAsin(tt.value), 1e-6)
			assert.InDelta(t, math.Asin(tt.value), float64(FastAsin(float32(tt.value))), 1e-6)
		})
	}
}

// TestFastAsin_Symmetry tests asin(-x) = -asin(x) (odd function property).
func TestFastAsin_Symmetry(t *testing.T) {
	for _, x := range []float64{0.1, 0.25, 0.5, 0.75, 0.9, 1.0} {
		assert.InDelta(t, -FastAsin(x), FastAsin(-x), 1e-12,
			"FastAsin not odd at x=%v", x)
	}
}

// TestFastAsin_OutOfDomainSaturates tests that |x| > 1 clamps instead of NaN.
func TestFastAsin_OutOfDomainSaturates(t *testing.T) {
	above := FastAsin(1.5)
	below := FastAsin(-1.5)
	assert.False(t, math.IsNaN(above))
	assert.False(t, math.IsNaN(below))
	assert.InDelta(t, asinHalfPi, above, 1e-12)
	assert.InDelta(t, -asinHalfPi, below, 1e-12)
}

// TestFastAsin_Monotonic tests that FastAsin is increasing on [-1, 1].
func TestFastAsin_Monotonic(t *testing.T) {
	values := make([]float64, 0, 201)
	for i := -100; i <= 100; i++ {
		values = append(values, FastAsin(float64(i)/100))
	}
	testutil.AssertMonotonic(t, values)
}

func BenchmarkSinCos32(b *testing.B) {
	x := float32(1.2345)
	for b.Loop() {
		_, _ = SinCos(x)
	}
}

func BenchmarkFastAsin32(b *testing.B) {
	x := float32(0.4321)
	for b.Loop() {
		_ = FastAsin(x)
	}
}

package fmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/interp"
)

func TestLerp_Endpoints(t *testing.T) {
	pairs := [][2]float64{
		{0, 1}, {-3, 5}, {1e6, -1e6}, {0.5, 0.25}, {-7.75, -7.75}, {128, 1024},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.Equal(t, a, Lerp(a, b, 0), "Lerp(%v,%v,0)", a, b)
		assert.Equal(t, b, Lerp(a, b, 1), "Lerp(%v,%v,1)", a, b)
		assert.Equal(t, float32(a), Lerp(float32(a), float32(b), 0))
		assert.Equal(t, float32(b), Lerp(float32(a), float32(b), 1))
	}
}

func TestLerp_Extrapolates(t *testing.T) {
	assert.Equal(t, 20.0, Lerp(0.0, 10.0, 2.0))
	assert.Equal(t, -10.0, Lerp(0.0, 10.0, -1.0))
	assert.Equal(t, 2.5, Lerp(0.0, 10.0, 0.25))
}

func TestLerpStable(t *testing.T) {
	// Lerp loses b at alpha == 1 when |a| dwarfs |b|; LerpStable does not.
	a, b := 1e20, 1.0
	assert.Equal(t, b, LerpStable(a, b, 1.0))
	assert.Equal(t, a, LerpStable(a, b, 0.0))
	assert.NotEqual(t, b, Lerp(a, b, 1.0))

	assert.Equal(t, float32(b), LerpStable32(float32(1e20), float32(b), 1))
	assert.Equal(t, float32(5), LerpStable32(float32(0), float32(10), 0.5))
	assert.Equal(t, 5.0, LerpStable32(0.0, 10.0, 0.5))
	assert.InDelta(t, 7.5, LerpStable(float32(5), float32(10), 0.5), 1e-6)
}

func TestBiLerp(t *testing.T) {
	tests := []struct {
		name         string
		fracX, fracY float64
		expected     float64
	}{
		{"Corner 00", 0, 0, 1},
		{"Corner 10", 1, 0, 2},
		{"Corner 01", 0, 1, 3},
		{"Corner 11", 1, 1, 4},
		{"Center", 0.5, 0.5, 2.5},
		{"Edge", 0.5, 0, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, BiLerp(1.0, 2.0, 3.0, 4.0, tt.fracX, tt.fracY), 1e-12)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 10))
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 10, Clamp(15, 0, 10))
	assert.Equal(t, 10, Clamp(10, 0, 10))
	assert.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
	assert.Equal(t, "b", Clamp("z", "a", "b"))
}

func TestClamp_Idempotent(t *testing.T) {
	for x := -3.0; x <= 3.0; x += 0.125 {
		once := Clamp(x, -1.0, 1.5)
		assert.Equal(t, once, Clamp(once, -1.0, 1.5), "x=%v", x)
	}
}

// TestCubicInterp_MatchesGonumHermite cross-checks against gonum's
// piecewise cubic Hermite fit on the unit interval.
func TestCubicInterp_MatchesGonumHermite(t *testing.T) {
	cases := [][4]float64{
		{0, 1, 1, 0},
		{2, -3, 5, 4},
		{-1, 0, -1, 0},
		{10, 50, -10, -50},
	}

	for _, c := range cases {
		p0, t0, p1, t1 := c[0], c[1], c[2], c[3]
		var pc interp.PiecewiseCubic
		pc.FitWithDerivatives([]float64{0, 1}, []float64{p0, p1}, []float64{t0, t1})

		for a := 0.05; a < 1; a += 0.05 {
			assert.InDelta(t, pc.Predict(a), CubicInterp(p0, t0, p1, t1, a), 1e-9,
				"value at a=%v for %v", a, c)
			assert.InDelta(t, pc.PredictDerivative(a), CubicInterpDerivative(p0, t0, p1, t1, a), 1e-9,
				"derivative at a=%v for %v", a, c)
		}
	}
}

func TestCubicInterp_Endpoints(t *testing.T) {
	assert.Equal(t, 3.0, CubicInterp(3.0, 7.0, -2.0, 1.0, 0.0))
	assert.Equal(t, -2.0, CubicInterp(3.0, 7.0, -2.0, 1.0, 1.0))
	assert.Equal(t, 7.0, CubicInterpDerivative(3.0, 7.0, -2.0, 1.0, 0.0))
	assert.Equal(t, 1.0, CubicInterpDerivative(3.0, 7.0, -2.0, 1.0, 1.0))
}

// TestCubicInterp_DerivativesConsistent checks the derivative formulas by
// central differences.
func TestCubicInterp_DerivativesConsistent(t *testing.T) {
	const h = 1e-5
	p0, t0, p1, t1 := 1.5, -2.0, 4.0, 0.5

	for a := 0.1; a < 1; a += 0.1 {
		numeric := (CubicInterp(p0, t0, p1, t1, a+h) - CubicInterp(p0, t0, p1, t1, a-h)) / (2 * h)
		assert.InDelta(t, numeric, CubicInterpDerivative(p0, t0, p1, t1, a), 1e-6, "first derivative at %v", a)

		numeric2 := (CubicInterpDerivative(p0, t0, p1, t1, a+h) - CubicInterpDerivative(p0, t0, p1, t1, a-h)) / (2 * h)
		assert.InDelta(t, numeric2, CubicInterpSecondDerivative(p0, t0, p1, t1, a), 1e-6, "second derivative at %v", a)
	}
}

func TestInterpStep(t *testing.T) {
	for _, alpha := range []float64{-1, 0, 0.3, 0.99, 1, 2} {
		assert.Equal(t, 2.0, InterpStep(2.0, 8.0, alpha, 1), "steps=1 alpha=%v", alpha)
		assert.Equal(t, 2.0, InterpStep(2.0, 8.0, alpha, 0), "steps=0 alpha=%v", alpha)
	}

	assert.Equal(t, 2.0, InterpStep(2.0, 8.0, -0.1, 5))
	assert.Equal(t, 8.0, InterpStep(2.0, 8.0, 1.1, 5))
	assert.Equal(t, 8.0, InterpStep(2.0, 8.0, 1.0, 5))

	// 5 steps over [0, 4]: floor(alpha*5)/4
	tests := []struct {
		alpha    float64
		expected float64
	}{
		{0.1, 0}, {0.2, 1}, {0.39, 1}, {0.4, 2}, {0.6, 3}, {0.79, 3}, {0.8, 4}, {0.95, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, InterpStep(0.0, 4.0, tt.alpha, 5), "alpha=%v", tt.alpha)
	}
}

func TestSmoothStep(t *testing.T) {
	assert.Equal(t, 0.0, SmoothStep(1.0, 3.0, 0.5))
	assert.Equal(t, 0.0, SmoothStep(1.0, 3.0, 1.0))
	assert.Equal(t, 0.5, SmoothStep(1.0, 3.0, 2.0))
	assert.Equal(t, 1.0, SmoothStep(1.0, 3.0, 3.0))
	assert.Equal(t, 1.0, SmoothStep(1.0, 3.0, 10.0))
	assert.InDelta(t, 0.15625, SmoothStep(0.0, 1.0, 0.25), 1e-12)
}

func TestGetRangePct(t *testing.T) {
	assert.Equal(t, 0.25, GetRangePct(0.0, 8.0, 2.0))
	assert.Equal(t, 1.5, GetRangePct(0.0, 8.0, 12.0))
	assert.Equal(t, 0.0, GetRangePct(5.0, 5.0, 4.0))
	assert.Equal(t, 1.0, GetRangePct(5.0, 5.0, 5.0))
	assert.Equal(t, float32(1), GetRangePct(float32(5), float32(5), float32(6)))
}

func TestGridSnap(t *testing.T) {
	tests := []struct {
		name           string
		location, grid float64
		expected       float64
	}{
		{"Zero grid", 3.7, 0, 3.7},
		{"Round down", 12, 10, 10},
		{"Round up", 16, 10, 20},
		{"Halfway rounds up", 15, 10, 20},
		{"Negative", -12, 10, -10},
		{"Fractional grid", 0.74, 0.25, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, GridSnap(tt.location, tt.grid), 1e-12)
		})
	}
}

func TestFInterpTo(t *testing.T) {
	assert.Equal(t, 10.0, FInterpTo(0.0, 10.0, 0.1, 0))
	assert.Equal(t, 10.0, FInterpTo(0.0, 10.0, 0.1, -1))
	assert.InDelta(t, 5.0, FInterpTo(0.0, 10.0, 0.1, 5), 1e-12)
	assert.Equal(t, 10.0, FInterpTo(0.0, 10.0, 1, 5), "fraction clamps to 1")
	assert.Equal(t, 10.0, FInterpTo(10.00001, 10.0, 0.1, 5), "snaps when close")

	current := 0.0
	for range 200 {
		current = FInterpTo(current, 1.0, 1.0/60, 6)
	}
	assert.Equal(t, 1.0, current, "converges to target")
}

func TestFInterpConstantTo(t *testing.T) {
	assert.InDelta(t, 1.0, FInterpConstantTo(0.0, 10.0, 0.5, 2), 1e-12)
	assert.InDelta(t, -1.0, FInterpConstantTo(0.0, -10.0, 0.5, 2), 1e-12)
	assert.Equal(t, 10.0, FInterpConstantTo(9.5, 10.0, 0.5, 2), "does not overshoot")
	assert.Equal(t, 10.0, FInterpConstantTo(10.00001, 10.0, 0.5, 2))
}

func TestMakePulsatingValue(t *testing.T) {
	m := New(nil)
	assert.InDelta(t, 1.0, m.MakePulsatingValue(0, 1, 0), 1e-12, "peaks at t=0")
	assert.InDelta(t, 0.0, m.MakePulsatingValue(0.5, 1, 0), 1e-12, "trough half a period later")
	assert.InDelta(t, 0.5, m.MakePulsatingValue(0.25, 1, 0), 1e-12)
	assert.InDelta(t, 1.0, m.MakePulsatingValue(2, 0.5, 0), 1e-12, "one full period at 0.5 Hz")
	assert.InDelta(t, 0.0, m.MakePulsatingValue(0, 1, 0.5), 1e-12, "half-cycle phase")

	v := MakePulsatingValue(0.1, 3, 0.2)
	assert.GreaterOrEqual(t, v, float32(0))
	assert.LessOrEqual(t, v, float32(1))
}

func BenchmarkLerp(b *testing.B) {
	x := 0.37
	for b.Loop() {
		_ = Lerp(1.0, 5.0, x)
	}
}

func BenchmarkCubicInterp(b *testing.B) {
	x := float32(0.37)
	for b.Loop() {
		_ = CubicInterp(float32(1), 2, 3, 4, x)
	}
}

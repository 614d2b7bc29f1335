package fmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindDeltaAngleDegrees(t *testing.T) {
	tests := []struct {
		name     string
		a1, a2   float64
		expected float64
	}{
		{"Wraps through 360", 350, 10, 20},
		{"Wraps backwards", 10, 350, -20},
		{"Simple", 10, 30, 20},
		{"Half turn forward", 0, 180, 180},
		{"Half turn backward maps to +180", 180, 0, 180},
		{"Full turn", 10, 370, 0},
		{"Beyond one turn", 0, 540, 180},
		{"Across zero", 170, -170, 20},
		{"Large inputs", 7200, 7230, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindDeltaAngleDegrees(tt.a1, tt.a2)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.Greater(t, got, -180.0)
			assert.LessOrEqual(t, got, 180.0)
		})
	}
}

func TestFindDeltaAngleDegrees_Float32(t *testing.T) {
	assert.Equal(t, float32(20), FindDeltaAngleDegrees(float32(350), float32(10)))
	assert.Equal(t, float32(-20), FindDeltaAngleDegrees(float32(10), float32(350)))
}

func TestFindDeltaAngleRadians(t *testing.T) {
	assert.InDelta(t, 0.2, FindDeltaAngleRadians(2*math.Pi-0.1, 0.1), 1e-12)
	assert.InDelta(t, -0.2, FindDeltaAngleRadians(0.1, 2*math.Pi-0.1), 1e-12)
	assert.Equal(t, float64(Pi), FindDeltaAngleRadians(Pi, 0.0))
	assert.Equal(t, float64(Pi), FindDeltaAngleRadians(0.0, Pi))
}

func TestUnwindDegrees(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{45, 45}, {180, 180}, {-180, -180}, {190, -170}, {-190, 170},
		{765, 45}, {-765, -45}, {360, 0}, {1e6, 1e6 - 2778*360},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, UnwindDegrees(tt.in), 1e-6, "UnwindDegrees(%v)", tt.in)
	}
	assert.Equal(t, float32(10), UnwindDegrees(float32(370)))
}

func TestUnwind_InfinityTerminates(t *testing.T) {
	assert.True(t, math.IsNaN(UnwindDegrees(math.Inf(1))))
	assert.True(t, math.IsNaN(UnwindRadians(math.Inf(-1))))
	assert.True(t, math.IsNaN(UnwindDegrees(math.NaN())))
}

func TestUnwindRadians(t *testing.T) {
	assert.InDelta(t, 0.5, UnwindRadians(0.5+4*math.Pi), 1e-12)
	assert.InDelta(t, -0.5, UnwindRadians(-0.5-6*math.Pi), 1e-12)
	for x := -20.0; x <= 20.0; x += 0.37 {
		got := UnwindRadians(x)
		assert.GreaterOrEqual(t, got, -math.Pi-1e-12)
		assert.LessOrEqual(t, got, math.Pi+1e-12)
		assert.InDelta(t, math.Sin(x), math.Sin(got), 1e-9, "x=%v", x)
	}
}

func TestWindRelativeAnglesDegrees(t *testing.T) {
	tests := []struct {
		name           string
		angle0, angle1 float64
		expected       float64
	}{
		{"Already close", 0, 100, 100},
		{"One turn down", 10, 350, -10},
		{"One turn up", 350, 10, 370},
		{"Two turns", 0, 730, 10},
		{"Negative two turns", 0, -730, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WindRelativeAnglesDegrees(tt.angle0, tt.angle1)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.LessOrEqual(t, math.Abs(tt.angle0-got), 180.0)
		})
	}
}

func TestDegreesRadians(t *testing.T) {
	assert.InDelta(t, 180.0, RadiansToDegrees(math.Pi), 1e-9)
	assert.InDelta(t, math.Pi/2, DegreesToRadians(90.0), 1e-12)
	assert.InDelta(t, float32(45), RadiansToDegrees(DegreesToRadians(float32(45))), 1e-5)
}

func TestCartesianPolar(t *testing.T) {
	m := New(nil)

	rad, ang := m.CartesianToPolar(0, 2)
	assert.InDelta(t, 2.0, rad, 1e-12)
	assert.InDelta(t, math.Pi/2, ang, 1e-12)

	rad, ang = m.CartesianToPolar(-1, 0)
	assert.InDelta(t, 1.0, rad, 1e-12)
	assert.InDelta(t, math.Pi, ang, 1e-12)

	x, y := m.PolarToCartesian(2, math.Pi/6)
	assert.InDelta(t, math.Sqrt(3), x, 1e-12)
	assert.InDelta(t, 1.0, y, 1e-12)

	for _, p := range [][2]float64{{3, 4}, {-2, 5}, {-1, -1}, {0.5, -7}} {
		r, a := CartesianToPolar(p[0], p[1])
		gx, gy := PolarToCartesian(r, a)
		assert.InDelta(t, p[0], gx, 1e-9)
		assert.InDelta(t, p[1], gy, 1e-9)
	}

	r32, _ := CartesianToPolar(float32(3), float32(4))
	assert.Equal(t, float32(5), r32)
}

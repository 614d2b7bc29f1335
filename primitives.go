package fmath

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/stat/distuv"
)

// Primitives is the set of platform numeric primitives the library builds on.
// Implementations decide precision and the source of randomness; the library
// composes a Primitives value and never extends it.
//
// FRand must return a uniformly distributed value in [0, 1). Callers that
// share a Primitives whose generator is not safe for concurrent use must
// serialize calls to the random-range family. The providers returned by
// NewStdPrimitives and NewFloat32Primitives are safe for concurrent use.
type Primitives interface {
	Sqrt(x float64) float64
	Sin(x float64) float64
	Cos(x float64) float64
	Atan2(y, x float64) float64
	Pow(x, y float64) float64
	Loge(x float64) float64
	FRand() float64
}

// uniformSource draws [0, 1) samples through a gonum uniform distribution.
// A nil source uses the goroutine-safe global generator; an explicit source
// is guarded by mu since rand.Source implementations are not.
type uniformSource struct {
	mu   sync.Mutex
	dist distuv.Uniform
}

func newUniformSource(src rand.Source) *uniformSource {
	return &uniformSource{
		dist: distuv.Uniform{Min: 0, Max: 1, Src: src},
	}
}

func (u *uniformSource) next() float64 {
	if u.dist.Src == nil {
		return u.dist.Rand()
	}
	u.mu.Lock()
	v := u.dist.Rand()
	u.mu.Unlock()
	return v
}

// StdPrimitives implements Primitives in double precision on top of the
// standard math package.
type StdPrimitives struct {
	rng *uniformSource
}

// NewStdPrimitives returns a double-precision provider. src seeds FRand;
// pass nil to use the global generator.
func NewStdPrimitives(src rand.Source) *StdPrimitives {
	return &StdPrimitives{rng: newUniformSource(src)}
}

func (p *StdPrimitives) Sqrt(x float64) float64     { return math.Sqrt(x) }
func (p *StdPrimitives) Sin(x float64) float64      { return math.Sin(x) }
func (p *StdPrimitives) Cos(x float64) float64      { return math.Cos(x) }
func (p *StdPrimitives) Atan2(y, x float64) float64 { return math.Atan2(y, x) }
func (p *StdPrimitives) Pow(x, y float64) float64   { return math.Pow(x, y) }
func (p *StdPrimitives) Loge(x float64) float64     { return math.Log(x) }
func (p *StdPrimitives) FRand() float64             { return p.rng.next() }

// Float32Primitives implements Primitives in single precision using
// github.com/chewxy/math32. Every result is rounded to float32, which
// reproduces the behavior of a float-only platform layer.
type Float32Primitives struct {
	rng *uniformSource
}

// NewFloat32Primitives returns a single-precision provider. src seeds FRand;
// pass nil to use the global generator.
func NewFloat32Primitives(src rand.Source) *Float32Primitives {
	return &Float32Primitives{rng: newUniformSource(src)}
}

func (p *Float32Primitives) Sqrt(x float64) float64 { return float64(math32.Sqrt(float32(x))) }
func (p *Float32Primitives) Sin(x float64) float64  { return float64(math32.Sin(float32(x))) }
func (p *Float32Primitives) Cos(x float64) float64  { return float64(math32.Cos(float32(x))) }
func (p *Float32Primitives) Atan2(y, x float64) float64 {
	return float64(math32.Atan2(float32(y), float32(x)))
}
func (p *Float32Primitives) Pow(x, y float64) float64 {
	return float64(math32.Pow(float32(x), float32(y)))
}
func (p *Float32Primitives) Loge(x float64) float64 { return float64(math32.Log(float32(x))) }

// FRand returns a float32-representable sample in [0, 1). Samples that
// would round up to 1 are folded back below it.
func (p *Float32Primitives) FRand() float64 {
	v := float32(p.rng.next())
	if v >= 1 {
		v = math32.Nextafter(1, 0)
	}
	return float64(v)
}

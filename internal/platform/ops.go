// Package platform provides the per-precision numeric primitives that the
// fmath functions are built on: floor, ceil, truncation, absolute value,
// square root and remainders.
//
// float32 entries are backed by github.com/chewxy/math32 so single-precision
// callers never round-trip through float64. float64 entries use the standard
// math package.
package platform

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops is a table of primitive operations for type F.
type Ops[F Float] struct {
	// Floor returns the greatest integer value less than or equal to x.
	Floor func(x F) F

	// Ceil returns the least integer value greater than or equal to x.
	Ceil func(x F) F

	// Trunc returns the integer value of x, rounding toward zero.
	Trunc func(x F) F

	Abs  func(x F) F
	Sqrt func(x F) F

	// Mod returns the floating-point remainder of x/y with the sign of x.
	Mod func(x, y F) F

	// Modf splits x into integer and fractional parts, both with the sign of x.
	Modf func(x F) (intPart, frac F)
}

var (
	ops32 = Ops[float32]{
		Floor: math32.Floor,
		Ceil:  math32.Ceil,
		Trunc: math32.Trunc,
		Abs:   math32.Abs,
		Sqrt:  math32.Sqrt,
		Mod:   math32.Mod,
		Modf:  math32.Modf,
	}
	ops64 = Ops[float64]{
		Floor: math.Floor,
		Ceil:  math.Ceil,
		Trunc: math.Trunc,
		Abs:   math.Abs,
		Sqrt:  math.Sqrt,
		Mod:   math.Mod,
		Modf:  math.Modf,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("platform: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("platform: type assertion failed for float64")
		}
		return ops
	default:
		panic("platform: unsupported float type")
	}
}

// Floor is a convenience wrapper around For[F]().Floor.
func Floor[F Float](x F) F { return For[F]().Floor(x) }

// Ceil is a convenience wrapper around For[F]().Ceil.
func Ceil[F Float](x F) F { return For[F]().Ceil(x) }

// Trunc is a convenience wrapper around For[F]().Trunc.
func Trunc[F Float](x F) F { return For[F]().Trunc(x) }

// Abs is a convenience wrapper around For[F]().Abs.
func Abs[F Float](x F) F { return For[F]().Abs(x) }

// Sqrt is a convenience wrapper around For[F]().Sqrt.
func Sqrt[F Float](x F) F { return For[F]().Sqrt(x) }

// Mod is a convenience wrapper around For[F]().Mod.
func Mod[F Float](x, y F) F { return For[F]().Mod(x, y) }

// Modf is a convenience wrapper around For[F]().Modf.
func Modf[F Float](x F) (intPart, frac F) { return For[F]().Modf(x) }

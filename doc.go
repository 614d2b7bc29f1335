// Package fmath provides scalar numeric utilities for real-time graphics,
// animation and audio code in pure Go.
//
// # Features
//
//   - Interpolation: Lerp, LerpStable, BiLerp, cubic Hermite with exact
//     first and second derivatives, stepped interpolation
//   - Easing families (power, sine, exponential, circular) with In, Out and
//     a symmetric InOut composition, selectable at runtime via [Ease]
//   - Catmull-Rom splines over non-uniform knots, with a guarded variant
//   - Rounding with explicit directional and tie-breaking policies
//   - 8-bit quantization, GCD/LCM, integer division helpers, packed bit fields
//   - Angle helpers, fast polynomial SinCos and FastAsin, 1D Perlin noise
//   - Random range helpers
//
// # Quick Start
//
//	x := fmath.Lerp(0.0, 10.0, 0.25)              // 2.5
//	y := fmath.InterpSinInOut(0.0, 1.0, 0.3)      // eased value
//	r := fmath.RoundHalfToEven(2.5)               // 2
//	d := fmath.FindDeltaAngleDegrees(350.0, 10.0) // 20
//
// # Primitives Providers
//
// Functions that need transcendental operations or randomness (easing,
// polar conversion, Log2, the random family) do not call a math package
// directly. They evaluate through a [Primitives] implementation composed
// into a [Math]:
//
//	m := fmath.New(fmath.NewFloat32Primitives(rand.NewPCG(1, 2)))
//	v := m.InterpExpoOut(0, 100, 0.5)
//
// Package-level functions use the provider installed with [SetDefault],
// which is double precision backed by the global random generator unless
// replaced.
//
// # Preconditions
//
// Hot-path functions do not validate their inputs. Unordered spline knots,
// negative step counts, quantizer inputs outside their range and Clamp
// bounds with lo > hi produce unspecified (but memory-safe) results. Build
// with -tags fmathdebug to have these reported through the logger set with
// [SetLogger]; return values are the same in both builds.
//
// # Thread Safety
//
// Every function is pure and safe for concurrent use. The only shared
// resource is the random generator behind [Primitives.FRand]. The built-in
// providers serialize access to it; custom providers whose generator is not
// goroutine-safe require callers to serialize the random family themselves.
package fmath

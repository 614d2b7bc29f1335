package fmath

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Ease enumerates the interpolation curves of the library so they can be
// selected by configuration rather than by function name.
type Ease int

const (
	// EaseLinear is plain Lerp.
	EaseLinear Ease = iota

	// EaseStep quantizes alpha into EaseSpec.Steps levels (InterpStep).
	EaseStep

	// EaseIn, EaseOut and EaseInOut are the power curves with EaseSpec.Exponent.
	EaseIn
	EaseOut
	EaseInOut

	EaseSinIn
	EaseSinOut
	EaseSinInOut

	EaseExpoIn
	EaseExpoOut
	EaseExpoInOut

	EaseCircularIn
	EaseCircularOut
	EaseCircularInOut

	easeCount
)

var easeNames = [easeCount]string{
	EaseLinear:        "linear",
	EaseStep:          "step",
	EaseIn:            "ease-in",
	EaseOut:           "ease-out",
	EaseInOut:         "ease-in-out",
	EaseSinIn:         "sin-in",
	EaseSinOut:        "sin-out",
	EaseSinInOut:      "sin-in-out",
	EaseExpoIn:        "expo-in",
	EaseExpoOut:       "expo-out",
	EaseExpoInOut:     "expo-in-out",
	EaseCircularIn:    "circular-in",
	EaseCircularOut:   "circular-out",
	EaseCircularInOut: "circular-in-out",
}

// Common errors returned by the easing configuration.
var (
	// ErrUnknownEase indicates an ease name or value outside the catalog.
	ErrUnknownEase = errors.New("unknown ease")

	// ErrInvalidExponent indicates a negative power-curve exponent.
	ErrInvalidExponent = errors.New("invalid ease exponent")

	// ErrInvalidSteps indicates a step count below 2 for EaseStep.
	ErrInvalidSteps = errors.New("invalid ease steps")
)

// Defaults applied by EaseSpec when the fields are zero.
const (
	DefaultEaseExponent = 2.0
	DefaultEaseSteps    = 4

	minEaseSteps = 2
)

// String returns the name accepted by ParseEase.
func (e Ease) String() string {
	if e < 0 || e >= easeCount {
		return fmt.Sprintf("Ease(%d)", int(e))
	}
	return easeNames[e]
}

// Eases returns every ease in catalog order.
func Eases() []Ease {
	out := make([]Ease, easeCount)
	for i := range out {
		out[i] = Ease(i)
	}
	return out
}

// ParseEase resolves a name such as "sin-in-out" to its Ease. Matching is
// case-insensitive and accepts underscores in place of dashes.
func ParseEase(name string) (Ease, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range easeNames {
		if n == normalized {
			return Ease(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEase, name)
}

// EaseSpec selects a curve together with its parameters.
type EaseSpec struct {
	Ease Ease

	// Exponent of the power curves. Zero selects DefaultEaseExponent.
	Exponent float64

	// Steps for EaseStep. Zero selects DefaultEaseSteps.
	Steps int32
}

// Validate checks if the spec is usable.
func (s *EaseSpec) Validate() error {
	if s.Ease < 0 || s.Ease >= easeCount {
		return fmt.Errorf("%w: %d", ErrUnknownEase, int(s.Ease))
	}
	if s.Exponent < 0 {
		return fmt.Errorf("%w: %v must not be negative", ErrInvalidExponent, s.Exponent)
	}
	if s.Ease == EaseStep && s.Steps != 0 && s.Steps < minEaseSteps {
		return fmt.Errorf("%w: %d must be at least %d", ErrInvalidSteps, s.Steps, minEaseSteps)
	}
	return nil
}

func (s *EaseSpec) exponent() float64 {
	if s.Exponent == 0 {
		return DefaultEaseExponent
	}
	return s.Exponent
}

func (s *EaseSpec) steps() int32 {
	if s.Steps == 0 {
		return DefaultEaseSteps
	}
	return s.Steps
}

// Evaluate interpolates from a to b at alpha along the curve of spec.
// The spec is assumed valid; an unknown ease falls back to linear.
func (m *Math) Evaluate(spec EaseSpec, a, b, alpha float64) float64 {
	switch spec.Ease {
	case EaseStep:
		return InterpStep(a, b, alpha, spec.steps())
	case EaseIn:
		return m.InterpEaseIn(a, b, alpha, spec.exponent())
	case EaseOut:
		return m.InterpEaseOut(a, b, alpha, spec.exponent())
	case EaseInOut:
		return m.InterpEaseInOut(a, b, alpha, spec.exponent())
	case EaseSinIn:
		return m.InterpSinIn(a, b, alpha)
	case EaseSinOut:
		return m.InterpSinOut(a, b, alpha)
	case EaseSinInOut:
		return m.InterpSinInOut(a, b, alpha)
	case EaseExpoIn:
		return m.InterpExpoIn(a, b, alpha)
	case EaseExpoOut:
		return m.InterpExpoOut(a, b, alpha)
	case EaseExpoInOut:
		return m.InterpExpoInOut(a, b, alpha)
	case EaseCircularIn:
		return m.InterpCircularIn(a, b, alpha)
	case EaseCircularOut:
		return m.InterpCircularOut(a, b, alpha)
	case EaseCircularInOut:
		return m.InterpCircularInOut(a, b, alpha)
	default:
		return Lerp(a, b, alpha)
	}
}

// SampleCurve fills dst with the curve of spec evaluated at len(dst) evenly
// spaced alphas from 0 to 1 inclusive, and returns dst. dst must hold at
// least two elements.
func (m *Math) SampleCurve(spec EaseSpec, dst []float64, a, b float64) []float64 {
	floats.Span(dst, 0, 1)
	for i, alpha := range dst {
		dst[i] = m.Evaluate(spec, a, b, alpha)
	}
	return dst
}

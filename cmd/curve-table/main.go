package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/tphakala/go-fmath"
	"gonum.org/v1/gonum/floats"
)

func main() {
	// Command-line flags
	var (
		easeName  = flag.String("ease", defaultEase, "Curve: "+easeList())
		samples   = flag.Int("samples", defaultSamples, "Number of evenly spaced alphas in [0, 1]")
		from      = flag.Float64("from", defaultFrom, "Value at alpha 0")
		to        = flag.Float64("to", defaultTo, "Value at alpha 1")
		exponent  = flag.Float64("exponent", fmath.DefaultEaseExponent, "Exponent for ease-in/ease-out/ease-in-out")
		steps     = flag.Int("steps", fmath.DefaultEaseSteps, "Number of levels for the step curve")
		precision = flag.String("precision", "float64", "Primitives provider: float64 or float32")
		demo      = flag.Bool("demo", false, "Print every curve side by side")
	)
	flag.Parse()

	m, err := newMath(*precision)
	if err != nil {
		log.Fatalf("Invalid precision: %v", err)
	}

	if *demo {
		runDemo(m)
		return
	}

	ease, err := fmath.ParseEase(*easeName)
	if err != nil {
		log.Fatalf("Invalid curve: %v", err)
	}

	spec := fmath.EaseSpec{
		Ease:     ease,
		Exponent: *exponent,
		Steps:    int32(*steps),
	}
	if err := spec.Validate(); err != nil {
		log.Fatalf("Invalid curve parameters: %v", err)
	}
	if *samples < minSamples {
		log.Fatalf("Need at least %d samples, got %d", minSamples, *samples)
	}

	alphas := floats.Span(make([]float64, *samples), 0, 1)
	values := m.SampleCurve(spec, make([]float64, *samples), *from, *to)

	fmt.Printf("Curve: %s (exponent %g, steps %d, %s)\n", ease, spec.Exponent, spec.Steps, *precision)
	fmt.Printf("%8s  %12s\n", "alpha", "value")
	for i, v := range values {
		fmt.Printf("%8.4f  %12.6f  %s\n", alphas[i], v, bar(v, *from, *to))
	}
}

func newMath(precision string) (*fmath.Math, error) {
	switch precision {
	case "float64", "64":
		return fmath.New(fmath.NewStdPrimitives(nil)), nil
	case "float32", "32":
		return fmath.New(fmath.NewFloat32Primitives(nil)), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", precision)
	}
}

func easeList() string {
	names := make([]string, 0, len(fmath.Eases()))
	for _, e := range fmath.Eases() {
		names = append(names, e.String())
	}
	return strings.Join(names, ", ")
}

// bar draws v as a horizontal bar scaled to the [from, to] range.
func bar(v, from, to float64) string {
	pct := fmath.Clamp(fmath.GetRangePct(from, to, v), 0, 1)
	return strings.Repeat("#", int(fmath.RoundHalfFromZero(pct*barWidth)))
}

func runDemo(m *fmath.Math) {
	fmt.Println("=== fmath Curve Demo ===")

	eases := fmath.Eases()
	fmt.Printf("%-16s", "curve")
	for _, alpha := range floats.Span(make([]float64, demoSamples), 0, 1) {
		fmt.Printf("%10.2f", alpha)
	}
	fmt.Println()

	for _, e := range eases {
		spec := fmath.EaseSpec{Ease: e, Exponent: demoExponent}
		values := m.SampleCurve(spec, make([]float64, demoSamples), 0, 1)
		fmt.Printf("%-16s", e)
		for _, v := range values {
			fmt.Printf("%10.4f", v)
		}
		fmt.Println()
	}

	fmt.Println("\n=== Demo Complete ===")
}

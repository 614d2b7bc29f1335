// Command curve-plot draws easing curves to a PNG image.
//
// Usage:
//
//	curve-plot -ease sin-in-out,expo-in-out -out curves.png
//	curve-plot -ease all -width 1024 -height 768
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/tphakala/go-fmath"
)

// Default command-line flag values
const (
	defaultWidth   = 800
	defaultHeight  = 600
	defaultSamples = 256
	defaultOut     = "curves.png"
	allEases       = "all"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	easeNames := flag.String("ease", "sin-in-out,expo-in-out,circular-in-out", "Comma-separated curves, or \"all\"")
	exponent := flag.Float64("exponent", fmath.DefaultEaseExponent, "Exponent for ease-in/ease-out/ease-in-out")
	steps := flag.Int("steps", fmath.DefaultEaseSteps, "Levels for the step curve")
	samples := flag.Int("samples", defaultSamples, "Points per curve")
	width := flag.Int("width", defaultWidth, "Image width in pixels")
	height := flag.Int("height", defaultHeight, "Image height in pixels")
	out := flag.String("out", defaultOut, "Output PNG path")
	flag.Parse()

	eases, err := parseEaseList(*easeNames)
	if err != nil {
		return err
	}
	if *samples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", *samples)
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", *width, *height)
	}

	series := make([]curveSeries, 0, len(eases))
	for _, e := range eases {
		spec := fmath.EaseSpec{Ease: e, Exponent: *exponent, Steps: int32(*steps)}
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("curve %s: %w", e, err)
		}
		series = append(series, sampleSeries(fmath.Default(), spec, *samples))
	}

	if err := renderPlot(*out, *width, *height, series); err != nil {
		return err
	}
	log.Printf("Wrote %d curves to %s", len(series), *out)
	return nil
}

// parseEaseList resolves a comma-separated list of ease names.
func parseEaseList(list string) ([]fmath.Ease, error) {
	if strings.EqualFold(strings.TrimSpace(list), allEases) {
		return fmath.Eases(), nil
	}

	var eases []fmath.Ease
	for name := range strings.SplitSeq(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		e, err := fmath.ParseEase(name)
		if err != nil {
			return nil, err
		}
		eases = append(eases, e)
	}
	if len(eases) == 0 {
		return nil, fmt.Errorf("no curves selected")
	}
	return eases, nil
}

// Command analyze-noise prints time and frequency domain statistics of the
// one-dimensional Perlin noise generator.
package main

import (
	"flag"
	"fmt"
	"log"
)

const (
	// Analysis defaults
	defaultSamplesPerUnit = 64  // Samples per lattice unit
	defaultUnits          = 256 // One full noise period
	defaultBands          = 10  // Octave bands to report

	// Display limits
	maxBandBar = 50 // Characters for a full-energy band
)

func main() {
	samplesPerUnit := flag.Int("rate", defaultSamplesPerUnit, "Samples per lattice unit (power of two)")
	units := flag.Int("units", defaultUnits, "Lattice units to analyze (power of two)")
	bands := flag.Int("bands", defaultBands, "Octave bands to report")
	offset := flag.Float64("offset", 0, "Lattice offset of the first sample")
	flag.Parse()

	cfg := analysisConfig{
		samplesPerUnit: *samplesPerUnit,
		units:          *units,
		offset:         *offset,
	}
	if err := cfg.validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	fmt.Println("=== Analyzing Perlin Noise ===")
	signal := sampleNoise(cfg)
	stats := timeStats(signal, cfg)

	fmt.Printf("Samples: %d (%d per unit over %d units)\n", len(signal), cfg.samplesPerUnit, cfg.units)
	fmt.Printf("  Mean:            %+.6f\n", stats.mean)
	fmt.Printf("  RMS:             %.6f\n", stats.rms)
	fmt.Printf("  Peak:            %.6f (bound 2)\n", stats.peak)
	fmt.Printf("  Zero crossings:  %d\n", stats.zeroCrossings)
	fmt.Printf("  Lattice zeros:   %d of %d\n", stats.latticeZeros, stats.latticePoints)

	spec := analyzeSpectrum(signal, cfg)
	fmt.Printf("\nSpectrum (%d bins, %.4f cycles per unit per bin):\n", len(spec.power), spec.binWidth)
	fmt.Printf("  DC power:         %.3e\n", spec.power[0])
	fmt.Printf("  Total energy:     %.6f (time domain %.6f)\n", spec.energy, stats.energy)
	fmt.Printf("  Centroid:         %.4f cycles per unit (octave %+.2f)\n", spec.centroid, spec.centroidOctave)

	fmt.Println("\nEnergy per octave band (cycles per unit):")
	for _, b := range octaveBands(spec, *bands) {
		fmt.Printf("  %9.4f - %9.4f  %6.2f%%  %s\n",
			b.lo, b.hi, b.fraction*percentScale, energyBar(b.fraction, maxBandBar))
	}
}

package main

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/tphakala/go-fmath"
	"github.com/tphakala/simd/c128"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

const (
	percentScale = 100

	// fftHermitianDivisor is used to calculate unique frequency bins in real FFT.
	// A real FFT of size N has N/2 + 1 unique complex coefficients.
	fftHermitianDivisor = 2

	// Interior bins stand for a conjugate pair
	hermitianPairWeight = 2
)

var errNotPowerOfTwo = errors.New("must be a positive power of two")

// analysisConfig selects how the noise is sampled.
type analysisConfig struct {
	samplesPerUnit int
	units          int
	offset         float64
}

func (c analysisConfig) validate() error {
	if c.samplesPerUnit <= 0 || !fmath.IsPowerOfTwo(c.samplesPerUnit) {
		return fmt.Errorf("rate %d %w", c.samplesPerUnit, errNotPowerOfTwo)
	}
	if c.units <= 0 || !fmath.IsPowerOfTwo(c.units) {
		return fmt.Errorf("units %d %w", c.units, errNotPowerOfTwo)
	}
	return nil
}

func (c analysisConfig) length() int {
	return c.samplesPerUnit * c.units
}

// sampleNoise evaluates PerlinNoise1D at length() evenly spaced points.
func sampleNoise(c analysisConfig) []float64 {
	signal := make([]float64, c.length())
	step := 1 / float64(c.samplesPerUnit)
	for i := range signal {
		signal[i] = fmath.PerlinNoise1D(c.offset + float64(i)*step)
	}
	return signal
}

type noiseStats struct {
	mean          float64
	rms           float64
	peak          float64
	energy        float64 // Sum of squares
	zeroCrossings int
	latticeZeros  int
	latticePoints int
}

// timeStats summarizes the signal in the time domain.
func timeStats(signal []float64, c analysisConfig) noiseStats {
	var s noiseStats
	n := float64(len(signal))
	s.mean = floats.Sum(signal) / n
	s.energy = floats.Dot(signal, signal)
	s.rms = math.Sqrt(s.energy / n)
	s.peak = math.Max(math.Abs(floats.Max(signal)), math.Abs(floats.Min(signal)))

	for i := 1; i < len(signal); i++ {
		if (signal[i-1] < 0) != (signal[i] < 0) {
			s.zeroCrossings++
		}
	}

	// Lattice points only fall on samples when the offset is integral
	if c.offset == fmath.RoundToNegativeInfinity(c.offset) {
		for i := 0; i < len(signal); i += c.samplesPerUnit {
			s.latticePoints++
			if signal[i] == 0 {
				s.latticeZeros++
			}
		}
	}
	return s
}

type spectrum struct {
	power          []float64 // |X[k]|² for k = 0..N/2
	binWidth       float64   // Cycles per lattice unit per bin
	energy         float64   // Parseval energy, comparable to the time domain sum of squares
	centroid       float64   // Power-weighted mean frequency in cycles per unit
	centroidOctave float64   // log2 of centroid
}

// analyzeSpectrum computes the one-sided power spectrum of signal.
func analyzeSpectrum(signal []float64, c analysisConfig) spectrum {
	n := len(signal)
	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, signal)

	conj := make([]complex128, len(coeffs))
	for i, v := range coeffs {
		conj[i] = cmplx.Conj(v)
	}
	product := make([]complex128, len(coeffs))
	c128.Mul(product, coeffs, conj)

	power := make([]float64, len(product))
	for i, v := range product {
		power[i] = real(v)
	}

	sp := spectrum{
		power:    power,
		binWidth: 1 / float64(c.units),
	}

	// Weight interior bins for their negative-frequency twins
	var weighted, moment float64
	last := n / fftHermitianDivisor
	for k, p := range power {
		w := p
		if k != 0 && k != last {
			w *= hermitianPairWeight
		}
		weighted += w
		moment += w * float64(k) * sp.binWidth
	}
	sp.energy = weighted / float64(n)
	if weighted > 0 {
		sp.centroid = moment / weighted
		sp.centroidOctave = fmath.Log2(sp.centroid)
	}
	return sp
}

type band struct {
	lo, hi   float64 // Cycles per unit
	fraction float64 // Share of non-DC energy
}

// octaveBands groups non-DC bins into octaves starting at bin 1. The last
// band absorbs every bin above it.
func octaveBands(sp spectrum, count int) []band {
	if count <= 0 || len(sp.power) < 2 {
		return nil
	}
	last := len(sp.power) - 1

	energies := make([]float64, count)
	for k := 1; k <= last; k++ {
		b := min(octaveOf(k), count-1)
		w := sp.power[k]
		if k != last {
			w *= hermitianPairWeight
		}
		energies[b] += w
	}

	total := floats.Sum(energies)
	bands := make([]band, count)
	for b := range bands {
		loBin := 1 << b
		hiBin := 1 << (b + 1)
		if b == count-1 {
			hiBin = last + 1
		}
		bands[b] = band{
			lo: float64(loBin) * sp.binWidth,
			hi: float64(hiBin) * sp.binWidth,
		}
		if total > 0 {
			bands[b].fraction = energies[b] / total
		}
	}
	return bands
}

// octaveOf returns floor(log2(k)) for k >= 1.
func octaveOf(k int) int {
	octave := 0
	for k > 1 {
		k >>= 1
		octave++
	}
	return octave
}

// energyBar renders fraction of width as a bar.
func energyBar(fraction float64, width int) string {
	n := int(fmath.RoundHalfFromZero(fmath.Clamp(fraction, 0, 1) * float64(width)))
	return strings.Repeat("=", n)
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-fmath/internal/testutil"
)

func TestAnalysisConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     analysisConfig
		wantErr bool
	}{
		{"Defaults", analysisConfig{samplesPerUnit: 64, units: 256}, false},
		{"Single unit", analysisConfig{samplesPerUnit: 8, units: 1}, false},
		{"Rate not power of two", analysisConfig{samplesPerUnit: 48, units: 256}, true},
		{"Zero rate", analysisConfig{samplesPerUnit: 0, units: 256}, true},
		{"Units not power of two", analysisConfig{samplesPerUnit: 64, units: 100}, true},
		{"Negative units", analysisConfig{samplesPerUnit: 64, units: -4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				require.ErrorIs(t, err, errNotPowerOfTwo)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTimeStats_LatticeZeros(t *testing.T) {
	cfg := analysisConfig{samplesPerUnit: 16, units: 32}
	signal := sampleNoise(cfg)
	require.Len(t, signal, 512)

	stats := timeStats(signal, cfg)
	assert.Equal(t, 32, stats.latticePoints)
	assert.Equal(t, 32, stats.latticeZeros)
	assert.LessOrEqual(t, stats.peak, 2.0)
	assert.Greater(t, stats.rms, 0.0)
	testutil.AssertAllInRange(t, signal, -2, 2)
}

func TestTimeStats_FractionalOffsetSkipsLattice(t *testing.T) {
	cfg := analysisConfig{samplesPerUnit: 16, units: 8, offset: 0.5}
	stats := timeStats(sampleNoise(cfg), cfg)
	assert.Zero(t, stats.latticePoints)
	assert.Zero(t, stats.latticeZeros)
}

func TestAnalyzeSpectrum_Parseval(t *testing.T) {
	cfg := analysisConfig{samplesPerUnit: 32, units: 64}
	signal := sampleNoise(cfg)

	stats := timeStats(signal, cfg)
	sp := analyzeSpectrum(signal, cfg)

	require.Len(t, sp.power, len(signal)/2+1)
	testutil.AssertRelativeError(t, stats.energy, sp.energy, 1e-9)
	assert.InDelta(t, 1.0/64, sp.binWidth, 1e-15)

	// Gradient noise concentrates its energy around the lattice rate.
	assert.Greater(t, sp.centroid, 0.1)
	assert.Less(t, sp.centroid, 4.0)
}

func TestOctaveBands(t *testing.T) {
	cfg := analysisConfig{samplesPerUnit: 16, units: 64}
	sp := analyzeSpectrum(sampleNoise(cfg), cfg)

	bands := octaveBands(sp, 6)
	require.Len(t, bands, 6)

	var total float64
	for i, b := range bands {
		assert.Less(t, b.lo, b.hi, "band %d", i)
		total += b.fraction
		if i > 0 {
			assert.Equal(t, bands[i-1].hi, b.lo, "bands %d and %d are contiguous", i-1, i)
		}
	}
	assert.InDelta(t, 1.0, total, 1e-12)
	assert.InDelta(t, float64(len(sp.power))*sp.binWidth, bands[5].hi, 1e-12, "last band reaches Nyquist")

	assert.Nil(t, octaveBands(sp, 0))
}

func TestOctaveOf(t *testing.T) {
	tests := []struct{ k, expected int }{
		{1, 0}, {2, 1}, {3, 1}, {4, 2}, {7, 2}, {8, 3}, {1023, 9}, {1024, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, octaveOf(tt.k), "octaveOf(%d)", tt.k)
	}
}

func TestEnergyBar(t *testing.T) {
	assert.Equal(t, "", energyBar(0, 10))
	assert.Equal(t, "=====", energyBar(0.5, 10))
	assert.Equal(t, "==========", energyBar(1.5, 10))
}

package bench

import (
	"math"
	"testing"

	"gotest.tools/v3/assert"
)

func TestGetRoundStats_IdenticalSamples(t *testing.T) {
	// Includes every production iteration count: reduction of identical
	// integer-nanosecond samples must be exact at any sample count, not
	// just powers of two.
	for _, nSamples := range []int{8, 1000, 4000, 32000, 64000, 128000} {
		samples := make([]float64, nSamples)
		for index := range samples {
			samples[index] = 100
		}

		stats := getRoundStats(samples)

		assert.Equal(t, stats.NSamples, nSamples)
		assert.Equal(t, stats.Mean, 100.0)
		assert.Equal(t, stats.Variance, 0.0)
		assert.Equal(t, stats.StdDev, 0.0)
		assert.Equal(t, stats.RSD, 0.0)
		assert.Equal(t, stats.Min, 100.0)
		assert.Equal(t, stats.Max, 100.0)
	}
}

func TestGetRoundStats_AlternatingSamples(t *testing.T) {
	samples := []float64{50, 150, 50, 150}

	stats := getRoundStats(samples)

	assert.Equal(t, stats.NSamples, 4)
	assert.Equal(t, stats.Mean, 100.0)
	assert.Equal(t, stats.Variance, 2500.0)
	assert.Equal(t, stats.StdDev, 50.0)
	assert.Equal(t, stats.RSD, 50.0)
	assert.Equal(t, stats.Min, 50.0)
	assert.Equal(t, stats.Max, 150.0)
}

func TestGetRoundStats_MixedSamples(t *testing.T) {
	samples := []float64{1, 2, 3, 4}

	stats := getRoundStats(samples)

	assert.Equal(t, stats.NSamples, 4)
	assert.Equal(t, stats.Mean, 2.5)
	assert.Equal(t, stats.Variance, 1.25)
	assert.Equal(t, stats.StdDev, math.Sqrt(1.25))
	assert.Equal(t, stats.RSD, math.Sqrt(1.25)*100/2.5)
	assert.Equal(t, stats.Min, 1.0)
	assert.Equal(t, stats.Max, 4.0)
}

func TestGetRoundStats_ZeroMean(t *testing.T) {
	samples := []float64{0, 0, 0}

	stats := getRoundStats(samples)

	assert.Equal(t, stats.Mean, 0.0)
	assert.Equal(t, stats.StdDev, 0.0)
	assert.Equal(t, stats.RSD, 0.0)
}

func TestGetRSD_ZeroMeanIsStable(t *testing.T) {
	assert.Equal(t, getRSD(25, 0), 0.0)
	assert.Equal(t, getRSD(50, 100), 50.0)
}

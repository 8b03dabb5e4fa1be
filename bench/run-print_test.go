package bench

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		ns       float64
		expected string
	}{
		{0, "0 ns"},
		{999, "999 ns"},
		{1000, "1 us"},
		{12345, "12 us"},
		{999499, "999 us"},
		{2300000, "2 ms"},
		{999000000, "999 ms"},
		{1000000000, "1 s"},
		{2700000000, "3 s"},
	}

	for _, c := range cases {
		assert.Equal(t, formatDuration(c.ns), c.expected)
	}
}

func TestFormatSignedDuration(t *testing.T) {
	assert.Equal(t, formatSignedDuration(500), "+500 ns")
	assert.Equal(t, formatSignedDuration(-500), "-500 ns")
	assert.Equal(t, formatSignedDuration(0), "+0 ns")
	assert.Equal(t, formatSignedDuration(-2300000), "-2 ms")
}

func TestOrdinal(t *testing.T) {
	cases := []struct {
		n        int
		expected string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{10, "10th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{102, "102nd"},
		{111, "111th"},
		{213, "213th"},
	}

	for _, c := range cases {
		assert.Equal(t, ordinal(c.n), c.expected)
	}
}

func TestPercentOfMean(t *testing.T) {
	assert.Equal(t, percentOfMean(-50, 100), -50.0)
	assert.Equal(t, percentOfMean(25, 100), 25.0)
	assert.Equal(t, percentOfMean(10, 0), 0.0)
}

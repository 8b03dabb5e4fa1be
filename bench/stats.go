package bench

import "math"

// getMean sums before the single division so integer-nanosecond samples
// reduce exactly at any sample count.
func getMean(series []float64) float64 {
	sum := float64(0)

	for _, element := range series {
		sum += element
	}

	return sum / float64(len(series))
}

// getVariance uses the population estimator (divide by N, not N-1). The
// squared-deviation form keeps a series of identical values at exactly 0.
func getVariance(series []float64, mean float64) float64 {
	sum := float64(0)

	for _, element := range series {
		deviation := element - mean
		sum += deviation * deviation
	}

	return sum / float64(len(series))
}

// getRSD treats a zero mean as perfectly stable rather than dividing by it;
// a round too fast to measure reports an RSD of 0.
func getRSD(stdDev, mean float64) float64 {
	if mean == 0 {
		return 0
	}

	return stdDev * 100 / mean
}

func getRoundStats(series []float64) *RoundStats {
	ret := &RoundStats{
		Min: math.Inf(1),
		Max: math.Inf(-1),
	}

	for _, element := range series {
		if element < ret.Min {
			ret.Min = element
		}
		if element > ret.Max {
			ret.Max = element
		}
	}

	ret.NSamples = len(series)
	ret.Mean = getMean(series)
	ret.Variance = getVariance(series, ret.Mean)
	ret.StdDev = math.Sqrt(ret.Variance)
	ret.RSD = getRSD(ret.StdDev, ret.Mean)

	return ret
}

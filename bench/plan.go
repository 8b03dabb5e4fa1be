package bench

import (
	"time"

	"github.com/pkg/errors"
)

const (
	defaultWarmupRuns = 10

	// PlanOnce, as Options.ReplanEvery, restricts policy planning to a
	// single pass before the first round.
	PlanOnce = -1
)

// The policy table trades per-round repetitions against the round budget so
// total harness time stays roughly bounded across callable costs: cheap
// operations get many repetitions to amortize timer resolution, expensive
// ones get few. The constants are tuned, not derived.
var defaultBuckets = []Bucket{
	{UpperBoundNS: 100, Plan: Plan{Iterations: 128000, MaxRuns: 10000}},    // tens of nanoseconds
	{UpperBoundNS: 1000, Plan: Plan{Iterations: 64000, MaxRuns: 5000}},     // hundreds of nanoseconds
	{UpperBoundNS: 1000000, Plan: Plan{Iterations: 32000, MaxRuns: 1000}},  // microseconds
	{UpperBoundNS: 1000000000, Plan: Plan{Iterations: 4000, MaxRuns: 100}}, // milliseconds
	{Plan: Plan{Iterations: 1000, MaxRuns: 10}},                            // seconds and beyond
}

// nowFunc is swapped out by tests driving the engine with a synthetic clock.
var nowFunc = time.Now

// estimateExecutionTime invokes fn warmupRuns times and returns the fastest
// observed call in nanoseconds, discarding the first call as
// baseline-setting. The minimum, not the mean, approximates steady-state
// cost: warm-up latency is dominated by one-sided noise (cache misses, lazy
// allocator init, preemption), so the fastest sample is the least inflated.
func estimateExecutionTime(fn Func, warmupRuns int) float64 {
	estimate := float64(0)

	for i := 0; i < warmupRuns; i++ {
		start := nowFunc()
		fn()
		elapsed := float64(nowFunc().Sub(start).Nanoseconds())

		if i == 1 || (i > 1 && elapsed < estimate) {
			estimate = elapsed
		}
	}

	return estimate
}

// planFor selects the bucket whose bound is the smallest one strictly
// exceeding the estimate. The last bucket is unbounded, so every estimate
// lands somewhere.
func planFor(estimateNS float64, buckets []Bucket) Plan {
	for _, bucket := range buckets[:len(buckets)-1] {
		if estimateNS < bucket.UpperBoundNS {
			return bucket.Plan
		}
	}

	return buckets[len(buckets)-1].Plan
}

func validateBuckets(buckets []Bucket) error {
	if len(buckets) == 0 {
		return errors.New("bucket table is empty")
	}

	for index, bucket := range buckets {
		if bucket.Plan.Iterations <= 0 || bucket.Plan.MaxRuns <= 0 {
			return errors.Errorf("bucket %d: iterations and max runs must be positive", index)
		}
		if index < len(buckets)-1 && bucket.UpperBoundNS <= 0 {
			return errors.Errorf("bucket %d: bound must be positive", index)
		}
		if index > 0 && index < len(buckets)-1 && bucket.UpperBoundNS <= buckets[index-1].UpperBoundNS {
			return errors.Errorf("bucket %d: bounds must be strictly ascending", index)
		}
	}

	return nil
}

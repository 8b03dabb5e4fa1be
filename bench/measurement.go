package bench

import (
	"context"
	"math"

	"github.com/pkg/errors"
)

// No round beats an RSD of 100% until one actually measures below it.
const initialLowestRSD = 100

func (opts Options) withDefaults() Options {
	// The estimator discards its first call, so fewer than two warm-up
	// runs cannot produce an estimate.
	if opts.WarmupRuns < 2 {
		opts.WarmupRuns = defaultWarmupRuns
	}
	if opts.ReplanEvery == 0 {
		opts.ReplanEvery = 1
	}
	if len(opts.Buckets) == 0 {
		opts.Buckets = defaultBuckets
	}

	return opts
}

// Run drives fn through the sampling loop: plan an iteration policy from a
// warm-up estimate, measure a round of timed calls, reduce the round to
// statistics, track the round with the lowest RSD, and stop once the number
// of completed rounds reaches the current round budget.
//
// Execution is strictly sequential on the calling goroutine; no round
// starts measuring before the previous one is fully reduced. The context
// is checked only between rounds, never mid-round, so cancellation cannot
// tear a timed batch. A cancelled run produces no partial result.
func Run(ctx context.Context, name string, fn Func, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	if err := validateBuckets(opts.Buckets); err != nil {
		return nil, errors.Wrapf(err, "benchmark %s: invalid bucket table", name)
	}

	conv := convergence{lowestRSD: initialLowestRSD}
	fastest := math.Inf(1)
	slowest := math.Inf(-1)

	plan := Plan{}
	durations := []float64{}
	runsDone := 0

	for {
		// PLANNING
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "benchmark %s interrupted after %d runs", name, runsDone)
		}

		if runsDone == 0 || (opts.ReplanEvery > 0 && runsDone%opts.ReplanEvery == 0) {
			next := planFor(estimateExecutionTime(fn, opts.WarmupRuns), opts.Buckets)
			if !opts.NoClamp && next.MaxRuns < runsDone {
				next.MaxRuns = runsDone
			}
			plan = next
		}

		// MEASURING
		durations = durations[:0]
		for iter := 0; iter < plan.Iterations; iter += 1 {
			start := nowFunc()
			fn()
			durations = append(durations, float64(nowFunc().Sub(start).Nanoseconds()))
		}

		// REDUCING
		stats := getRoundStats(durations)

		if stats.Min < fastest {
			fastest = stats.Min
		}
		if stats.Max > slowest {
			slowest = stats.Max
		}

		if stats.RSD < conv.lowestRSD {
			conv = convergence{
				lowestRSD:  stats.RSD,
				index:      runsDone,
				mean:       stats.Mean,
				iterations: plan.Iterations,
			}
		}

		runsDone += 1

		if opts.Progress != nil {
			opts.Progress(Progress{
				Round:          runsDone,
				MaxRuns:        plan.MaxRuns,
				BestMean:       conv.mean,
				BestRSD:        conv.lowestRSD,
				BestIterations: conv.iterations,
			})
		}

		if runsDone >= plan.MaxRuns {
			break
		}
	}

	return &Result{
		Name:                        name,
		NumRuns:                     runsDone,
		NumIterations:               plan.Iterations,
		MeanExecutionTime:           conv.mean,
		FastestExecutionTime:        fastest,
		SlowestExecutionTime:        slowest,
		LowestRSD:                   conv.lowestRSD,
		LowestRSDIndex:              conv.index,
		AverageIterationPerformance: perSecond(conv.mean),
		FastestIterationPerformance: perSecond(fastest),
		SlowestIterationPerformance: perSecond(slowest),
	}, nil
}

// perSecond converts nanoseconds per call into calls per second, mapping an
// immeasurably fast 0 to 0 rather than +Inf.
func perSecond(ns float64) float64 {
	if ns == 0 {
		return 0
	}

	return 1e9 / ns
}

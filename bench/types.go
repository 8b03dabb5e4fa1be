// Package bench implements an adaptive micro-benchmarking engine: it
// estimates the cost of a function, derives an iteration policy from a
// latency-bucket table, repeatedly measures batches of timed calls, and
// reduces the samples to a statistical summary keyed on the round with the
// lowest relative standard deviation.
package bench

// Func is a zero-argument unit of work under measurement. Any value it
// produces is ignored by the engine; side-effect safety across repeated
// invocations is the benchmark author's responsibility.
type Func func()

// Plan is the per-round sampling policy derived from a latency bucket.
type Plan struct {
	Iterations int
	MaxRuns    int
}

// Bucket maps a rough single-call latency to a sampling plan. Bounds are
// exclusive; the last bucket in a table is unbounded and its UpperBoundNS
// is ignored.
type Bucket struct {
	UpperBoundNS float64
	Plan         Plan
}

// RoundStats holds the statistics reduced from one round's samples. All
// durations are in nanoseconds. Variance is the population estimator
// (divide by N), and RSD is the standard deviation as a percentage of the
// mean, defined as 0 when the mean is 0.
type RoundStats struct {
	NSamples int
	Mean     float64
	Variance float64
	StdDev   float64
	RSD      float64
	Min      float64
	Max      float64
}

// convergence is the running record of the best round observed so far
// within one execution. It only moves when a strictly lower RSD is seen,
// so lowestRSD is non-increasing across rounds.
type convergence struct {
	lowestRSD  float64
	index      int
	mean       float64
	iterations int
}

// Progress is reported to the sink after every completed round.
type Progress struct {
	Round          int
	MaxRuns        int
	BestMean       float64
	BestRSD        float64
	BestIterations int
}

// ProgressFunc receives per-round progress. The engine has no opinion on
// how it is rendered.
type ProgressFunc func(Progress)

// Options tunes one benchmark execution. The zero value selects the
// defaults: 10 warm-up runs, re-planning before every round, clamped round
// budgets, the built-in bucket table, and no progress reporting.
type Options struct {
	// WarmupRuns is the number of estimator calls per planning step.
	WarmupRuns int

	// ReplanEvery is the number of rounds between policy re-plans.
	// 0 means every round; PlanOnce disables re-planning after the
	// first round.
	ReplanEvery int

	// NoClamp allows a re-plan to shrink the round budget below the
	// number of rounds already completed.
	NoClamp bool

	// Progress, when set, is invoked after every round.
	Progress ProgressFunc

	// Buckets overrides the policy table. Bounds must be strictly
	// ascending and every plan positive; the last bucket is unbounded.
	Buckets []Bucket
}

// Result is the immutable summary of one benchmark execution. Durations
// are nanoseconds, performance fields are iterations per second.
type Result struct {
	Name                        string  `json:"name"`
	NumRuns                     int     `json:"num_runs"`
	NumIterations               int     `json:"num_iterations"`
	MeanExecutionTime           float64 `json:"mean_execution_time"`
	FastestExecutionTime        float64 `json:"fastest_execution_time"`
	SlowestExecutionTime        float64 `json:"slowest_execution_time"`
	LowestRSD                   float64 `json:"lowest_rsd"`
	LowestRSDIndex              int     `json:"lowest_rsd_index"`
	AverageIterationPerformance float64 `json:"average_iteration_performance"`
	FastestIterationPerformance float64 `json:"fastest_iteration_performance"`
	SlowestIterationPerformance float64 `json:"slowest_iteration_performance"`
}

// Package bench implements the measurement pipeline: calibration of
// iterations per sample, sample collection, summary statistics, and the
// two-sample significance test used to compare runs.
//
// Everything here runs synchronously on the calling goroutine. Running the
// measured operation concurrently would corrupt timing attribution, so the
// package deliberately has no parallel execution path and no locks.
package bench

import "time"

// Operation is a zero-argument unit of work under measurement. It must be
// safe to invoke repeatedly. A returned error aborts the benchmark run
// immediately; no partial result is produced.
type Operation func() error

// Config controls calibration and sampling.
type Config struct {
	// MinSampleTime is the minimum cumulative duration one sample's batch of
	// iterations must reach for the measurement to be trustworthy.
	MinSampleTime time.Duration
	// SampleCount is the number of samples collected per benchmark.
	SampleCount int
	// MaxCalibrationIterations bounds the calibration loop so a clock that
	// never advances cannot hang the run.
	MaxCalibrationIterations int
	// Clock is the time source; defaults to the system monotonic clock.
	Clock Clock
	// Progress, when set, is invoked after each completed sample with
	// (completed, total). It is never invoked inside a timed region.
	Progress func(completed, total int)
}

// DefaultConfig returns the default benchmark configuration.
func DefaultConfig() Config {
	return Config{
		MinSampleTime:            500 * time.Millisecond,
		SampleCount:              50,
		MaxCalibrationIterations: 100_000_000,
		Clock:                    SystemClock,
	}
}

// withDefaults fills zero-valued fields with defaults.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.MinSampleTime <= 0 {
		c.MinSampleTime = def.MinSampleTime
	}
	if c.SampleCount <= 0 {
		c.SampleCount = def.SampleCount
	}
	if c.MaxCalibrationIterations <= 0 {
		c.MaxCalibrationIterations = def.MaxCalibrationIterations
	}
	if c.Clock == nil {
		c.Clock = def.Clock
	}
	return c
}

// Result holds the immutable sample population produced by one benchmark
// run. Each sample is the mean per-iteration duration, in seconds, of one
// calibrated batch of back-to-back invocations. Statistics are derived on
// demand and never mutate the result.
type Result struct {
	samples    []float64
	iterations int
}

// NewResult creates a result from a non-empty sample sequence. The slice is
// copied so later mutation by the caller cannot affect the result.
func NewResult(samples []float64, iterations int) *Result {
	s := make([]float64, len(samples))
	copy(s, samples)
	return &Result{samples: s, iterations: iterations}
}

// Len returns the number of samples.
func (r *Result) Len() int { return len(r.samples) }

// Iterations returns the calibrated iterations-per-sample count used to
// collect the samples.
func (r *Result) Iterations() int { return r.iterations }

// Samples returns a copy of the sample sequence, in seconds per iteration.
func (r *Result) Samples() []float64 {
	s := make([]float64, len(r.samples))
	copy(s, r.samples)
	return s
}

// Benchmark pairs a name with the result of one run.
type Benchmark struct {
	Name   string
	Result *Result
}

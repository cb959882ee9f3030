package bench

import "fmt"

// Sampler collects a fixed number of timing samples for an operation. Each
// sample times one batch of back-to-back invocations and records the mean
// per-iteration duration in seconds. Samples are collected strictly
// sequentially.
type Sampler struct {
	clock    Clock
	count    int
	progress func(completed, total int)
}

// NewSampler creates a sampler from the given configuration.
func NewSampler(cfg Config) *Sampler {
	cfg = cfg.withDefaults()
	return &Sampler{
		clock:    cfg.Clock,
		count:    cfg.SampleCount,
		progress: cfg.Progress,
	}
}

// Sample runs op for the calibrated iteration count once per sample and
// returns the resulting population. An error from op aborts the run; no
// partial result is returned. The progress callback, if any, fires after
// each sample, outside the timed region.
func (s *Sampler) Sample(op Operation, iterations int) (*Result, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("iterations per sample must be positive, got %d", iterations)
	}

	samples := make([]float64, 0, s.count)
	for i := 0; i < s.count; i++ {
		start := s.clock.Now()
		for j := 0; j < iterations; j++ {
			if err := op(); err != nil {
				return nil, err
			}
		}
		elapsed := s.clock.Now().Sub(start)
		samples = append(samples, elapsed.Seconds()/float64(iterations))

		if s.progress != nil {
			s.progress(i+1, s.count)
		}
	}
	return NewResult(samples, iterations), nil
}

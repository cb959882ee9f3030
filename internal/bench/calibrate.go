package bench

import (
	"fmt"
	"time"

	e "tempo/pkg/errors"
)

// Calibrator determines how many consecutive invocations of an operation
// make up one measurable sample, so that each sample's cumulative duration
// reaches the configured minimum even when single invocations are too fast
// for the clock to resolve.
type Calibrator struct {
	clock         Clock
	minSampleTime time.Duration
	maxIterations int
}

// NewCalibrator creates a calibrator from the given configuration.
func NewCalibrator(cfg Config) *Calibrator {
	cfg = cfg.withDefaults()
	return &Calibrator{
		clock:         cfg.Clock,
		minSampleTime: cfg.MinSampleTime,
		maxIterations: cfg.MaxCalibrationIterations,
	}
}

// Calibrate returns the iterations-per-sample count for op. Errors from op
// propagate immediately. If the clock fails to advance far enough within
// the iteration cap, a CALIBRATION_FAILED error is returned instead of
// looping forever.
func (c *Calibrator) Calibrate(op Operation) (int, error) {
	start := c.clock.Now()
	if err := op(); err != nil {
		return 0, err
	}
	first := c.clock.Now().Sub(start)

	if first >= c.minSampleTime {
		return 1, nil
	}
	if first == 0 {
		return c.calibrateCumulative(op)
	}

	// The clock resolves a single invocation; accumulate individually timed
	// invocations until the running total reaches the minimum.
	total := first
	count := 1
	for total < c.minSampleTime {
		if count >= c.maxIterations {
			return 0, c.failed(count, total)
		}
		start = c.clock.Now()
		if err := op(); err != nil {
			return 0, err
		}
		total += c.clock.Now().Sub(start)
		count++
	}
	return count, nil
}

// calibrateCumulative handles the degenerate case where one invocation
// measures as zero elapsed time: re-measure cumulatively from a fresh start,
// counting invocations until the total clears the minimum.
func (c *Calibrator) calibrateCumulative(op Operation) (int, error) {
	start := c.clock.Now()
	count := 0
	for {
		if err := op(); err != nil {
			return 0, err
		}
		count++
		elapsed := c.clock.Now().Sub(start)
		if elapsed >= c.minSampleTime {
			return count, nil
		}
		if count >= c.maxIterations {
			return 0, c.failed(count, elapsed)
		}
	}
}

func (c *Calibrator) failed(count int, elapsed time.Duration) error {
	return e.New(e.ErrCalibrationFailed,
		fmt.Sprintf("calibration did not reach %v after %d iterations", c.minSampleTime, count)).
		WithContext("elapsed", elapsed.String()).
		WithDetails("the clock did not advance far enough to size a sample")
}

package bench

import "time"

// fakeClock is a deterministic clock for calibration and sampling tests.
// Operations advance it explicitly; an optional granularity simulates a
// low-resolution clock that cannot see short durations.
type fakeClock struct {
	now         time.Duration
	granularity time.Duration
}

var clockEpoch = time.Unix(0, 0)

func (c *fakeClock) Now() time.Time {
	t := c.now
	if c.granularity > 0 {
		t = t.Truncate(c.granularity)
	}
	return clockEpoch.Add(t)
}

func (c *fakeClock) advance(d time.Duration) { c.now += d }

// steppingOp returns an operation that advances the clock by step per call
// and counts its invocations.
func steppingOp(clock *fakeClock, step time.Duration, calls *int) Operation {
	return func() error {
		clock.advance(step)
		*calls++
		return nil
	}
}

package bench

import "time"

// Clock is the monotonic time source used for all measurements. It needs at
// least microsecond resolution for calibration to take the fast path; lower
// resolution falls back to the cumulative calibration branch.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the system monotonic clock.
var SystemClock Clock = systemClock{}

package bench

import "gonum.org/v1/gonum/stat"

// Mean returns the arithmetic mean of the samples, in seconds.
func (r *Result) Mean() float64 {
	return stat.Mean(r.samples, nil)
}

// Variance returns the population variance of the samples (divisor N, not
// N-1): the samples are the entire population of this run, not a draw from
// a larger one.
func (r *Result) Variance() float64 {
	return stat.PopVariance(r.samples, nil)
}

// Stddev returns the population standard deviation, sqrt(Variance).
func (r *Result) Stddev() float64 {
	return stat.PopStdDev(r.samples, nil)
}

package bench

import (
	"math"
	"testing"
)

const statsEpsilon = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= statsEpsilon
}

// TestResultMean tests the mean over various sample populations
func TestResultMean(t *testing.T) {
	tests := []struct {
		name     string
		samples  []float64
		expected float64
	}{
		{
			name:     "single sample",
			samples:  []float64{0.5},
			expected: 0.5,
		},
		{
			name:     "simple average",
			samples:  []float64{1, 2, 3},
			expected: 2,
		},
		{
			name:     "constant sequence",
			samples:  []float64{0.25, 0.25, 0.25, 0.25},
			expected: 0.25,
		},
		{
			name:     "sub-microsecond durations",
			samples:  []float64{1e-9, 3e-9},
			expected: 2e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResult(tt.samples, 1)
			if got := r.Mean(); !almostEqual(got, tt.expected) {
				t.Errorf("Mean() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestResultVariance tests the population variance (divisor N)
func TestResultVariance(t *testing.T) {
	tests := []struct {
		name     string
		samples  []float64
		expected float64
	}{
		{
			name:     "single sample has zero variance",
			samples:  []float64{0.7},
			expected: 0,
		},
		{
			name:     "constant sequence has zero variance",
			samples:  []float64{2, 2, 2, 2},
			expected: 0,
		},
		{
			// mean 3; squared deviations 4+0+4; population divisor 3, not 2
			name:     "population divisor",
			samples:  []float64{1, 3, 5},
			expected: 8.0 / 3.0,
		},
		{
			name:     "two samples",
			samples:  []float64{1, 2},
			expected: 0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResult(tt.samples, 1)
			if got := r.Variance(); !almostEqual(got, tt.expected) {
				t.Errorf("Variance() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestResultStddev verifies stddev is the square root of the variance and
// never negative
func TestResultStddev(t *testing.T) {
	populations := [][]float64{
		{0.001},
		{1, 2},
		{1, 3, 5},
		{2, 2, 2, 2},
		{1e-9, 5e-9, 2.5e-9, 7e-9},
	}

	for _, samples := range populations {
		r := NewResult(samples, 1)
		variance := r.Variance()
		if variance < 0 {
			t.Errorf("Variance() = %v, want >= 0 for %v", variance, samples)
		}
		if got, want := r.Stddev(), math.Sqrt(variance); got != want {
			t.Errorf("Stddev() = %v, want sqrt(variance) = %v for %v", got, want, samples)
		}
	}
}

// TestResultImmutability verifies derived statistics are stable and the
// sample sequence cannot be mutated from outside
func TestResultImmutability(t *testing.T) {
	input := []float64{1, 2, 3}
	r := NewResult(input, 7)

	first := r.Mean()
	input[0] = 100 // mutating the caller's slice must not affect the result
	if got := r.Mean(); got != first {
		t.Errorf("Mean() changed after input mutation: %v != %v", got, first)
	}

	out := r.Samples()
	out[0] = 100
	if got := r.Mean(); got != first {
		t.Errorf("Mean() changed after output mutation: %v != %v", got, first)
	}

	if r.Len() != 3 || r.Iterations() != 7 {
		t.Errorf("Len()=%d Iterations()=%d, want 3 and 7", r.Len(), r.Iterations())
	}
}

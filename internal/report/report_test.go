package report

import (
	"strings"
	"testing"

	"tempo/internal/bench"
)

func resultOf(samples ...float64) *bench.Result {
	return bench.NewResult(samples, 1)
}

func TestResults(t *testing.T) {
	benchmarks := []bench.Benchmark{
		{Name: "fib(20)", Result: bench.NewResult([]float64{0.001, 0.001, 0.001}, 500)},
		{Name: "sort", Result: bench.NewResult([]float64{0.5, 0.5}, 1)},
	}

	out := Results(benchmarks)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Results() produced %d lines, want 4 (header, rule, two rows):\n%s", len(lines), out)
	}

	for _, header := range []string{"Benchmark", "Mean", "Stddev", "Samples", "Iterations"} {
		if !strings.Contains(lines[0], header) {
			t.Errorf("header line %q missing column %q", lines[0], header)
		}
	}

	// Rows come out in input order with engineering-notation durations.
	if !strings.Contains(lines[2], "fib(20)") || !strings.Contains(lines[2], "1.000ms") {
		t.Errorf("first row = %q, want fib(20) at 1.000ms", lines[2])
	}
	if !strings.Contains(lines[2], "500") {
		t.Errorf("first row = %q, want 500 iterations", lines[2])
	}
	if !strings.Contains(lines[3], "sort") || !strings.Contains(lines[3], "500.000ms") {
		t.Errorf("second row = %q, want sort at 500.000ms", lines[3])
	}
}

func TestComparison(t *testing.T) {
	records := []bench.Record{
		{
			Name:        "fib",
			New:         resultOf(0.001, 0.001, 0.001),
			Old:         resultOf(0.002, 0.002, 0.002),
			Significant: true,
			Direction:   bench.DirectionFaster,
			PercentDiff: -50,
			Ratio:       2,
		},
		{
			Name:      "fresh",
			New:       resultOf(0.003, 0.003),
			Direction: bench.DirectionUnknown,
		},
	}

	out := Comparison(records)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Comparison() produced %d lines, want 4:\n%s", len(lines), out)
	}

	if !strings.Contains(lines[2], "-50.0%") || !strings.Contains(lines[2], "~2.0x faster") {
		t.Errorf("fib row = %q, want -50.0%% and ~2.0x faster", lines[2])
	}
	// A benchmark without a baseline renders dashes, never a bogus percent.
	if !strings.Contains(lines[3], "fresh") || !strings.Contains(lines[3], "no baseline") {
		t.Errorf("fresh row = %q, want no baseline", lines[3])
	}
	if strings.Contains(lines[3], "%") {
		t.Errorf("fresh row = %q, must not contain a percent change", lines[3])
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		name string
		rec  bench.Record
		want string
	}{
		{
			name: "significantly faster",
			rec:  bench.Record{Direction: bench.DirectionFaster, Significant: true, Ratio: 2.5},
			want: "~2.5x faster",
		},
		{
			name: "significantly slower",
			rec:  bench.Record{Direction: bench.DirectionSlower, Significant: true, Ratio: 1.2},
			want: "~1.2x slower",
		},
		{
			name: "within noise",
			rec:  bench.Record{Direction: bench.DirectionNoChange},
			want: "no change",
		},
		{
			name: "no previous run",
			rec:  bench.Record{Direction: bench.DirectionUnknown},
			want: "no baseline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Verdict(tt.rec); got != tt.want {
				t.Errorf("Verdict() = %q, want %q", got, tt.want)
			}
		})
	}
}

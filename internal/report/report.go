package report

import (
	"fmt"
	"strings"

	"tempo/internal/bench"
)

// Results renders a run's benchmarks as a table, in insertion order.
func Results(benchmarks []bench.Benchmark) string {
	t := NewTable(
		Column{Header: "Benchmark", Align: AlignLeft},
		Column{Header: "Mean", Align: AlignRight},
		Column{Header: "Stddev", Align: AlignRight},
		Column{Header: "Samples", Align: AlignRight},
		Column{Header: "Iterations", Align: AlignRight},
	)
	for _, b := range benchmarks {
		// Cell counts match the fixed columns, so AddRow cannot fail here.
		_ = t.AddRow(
			b.Name,
			strings.TrimSpace(Duration(b.Result.Mean())),
			strings.TrimSpace(Duration(b.Result.Stddev())),
			fmt.Sprintf("%d", b.Result.Len()),
			fmt.Sprintf("%d", b.Result.Iterations()),
		)
	}
	return t.Render()
}

// Comparison renders comparison records as a table, preserving record order.
func Comparison(records []bench.Record) string {
	t := NewTable(
		Column{Header: "Benchmark", Align: AlignLeft},
		Column{Header: "Old", Align: AlignRight},
		Column{Header: "New", Align: AlignRight},
		Column{Header: "Change", Align: AlignRight},
		Column{Header: "Verdict", Align: AlignLeft},
	)
	for _, rec := range records {
		oldMean, change := "-", "-"
		if rec.Old != nil {
			oldMean = strings.TrimSpace(Duration(rec.Old.Mean()))
			change = fmt.Sprintf("%+.1f%%", rec.PercentDiff)
		}
		_ = t.AddRow(
			rec.Name,
			oldMean,
			strings.TrimSpace(Duration(rec.New.Mean())),
			change,
			Verdict(rec),
		)
	}
	return t.Render()
}

// Verdict phrases one comparison record for humans: "~2.0x faster" when the
// difference is significant, "no change" when it is noise, and "no baseline"
// when the previous run lacks the benchmark.
func Verdict(rec bench.Record) string {
	switch rec.Direction {
	case bench.DirectionFaster, bench.DirectionSlower:
		return fmt.Sprintf("~%.1fx %s", rec.Ratio, rec.Direction)
	case bench.DirectionNoChange:
		return rec.Direction.String()
	default:
		return "no baseline"
	}
}

package bench

// Direction classifies how a benchmark moved between two runs.
type Direction int

const (
	// DirectionUnknown means the previous run has no benchmark of this name.
	DirectionUnknown Direction = iota
	// DirectionNoChange means the difference is within measurement noise.
	DirectionNoChange
	// DirectionFaster means the new mean is significantly lower.
	DirectionFaster
	// DirectionSlower means the new mean is significantly higher.
	DirectionSlower
)

// String returns a human-readable direction label.
func (d Direction) String() string {
	switch d {
	case DirectionFaster:
		return "faster"
	case DirectionSlower:
		return "slower"
	case DirectionNoChange:
		return "no change"
	default:
		return "unknown"
	}
}

// Record is the outcome of comparing one named benchmark across two runs.
// Records are transient: built on demand and consumed by a reporter.
type Record struct {
	Name        string
	New         *Result
	Old         *Result // nil when the previous run lacks this benchmark
	Significant bool
	Direction   Direction
	// PercentDiff is 100*(new-old)/old, computed whenever Old exists,
	// regardless of significance.
	PercentDiff float64
	// Ratio is max(mean)/min(mean), populated only when Significant, for
	// "~Nx faster/slower" phrasing.
	Ratio float64
}

// Compare evaluates every benchmark in current against its namesake in
// previous, in current's insertion order. Benchmarks absent from previous
// produce Unknown records rather than errors.
func Compare(current, previous *Suite) []Record {
	benchmarks := current.Benchmarks()
	records := make([]Record, 0, len(benchmarks))

	for _, b := range benchmarks {
		rec := Record{
			Name:      b.Name,
			New:       b.Result,
			Direction: DirectionUnknown,
		}

		old, ok := previous.Lookup(b.Name)
		if !ok {
			records = append(records, rec)
			continue
		}

		rec.Old = old
		newMean, oldMean := b.Result.Mean(), old.Mean()
		rec.PercentDiff = 100 * (newMean - oldMean) / oldMean
		rec.Significant = Different(b.Result, old)

		switch {
		case !rec.Significant:
			rec.Direction = DirectionNoChange
		case newMean < oldMean:
			rec.Direction = DirectionFaster
		default:
			rec.Direction = DirectionSlower
		}

		if rec.Significant {
			if newMean > oldMean {
				rec.Ratio = newMean / oldMean
			} else {
				rec.Ratio = oldMean / newMean
			}
		}

		records = append(records, rec)
	}
	return records
}

package bench

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// maxTableDF is the largest degrees-of-freedom entry in the critical-value
// table. Beyond it the critical value is within a fraction of a percent of
// its 1.96 asymptote, so larger df clamp to this entry.
const maxTableDF = 200

// criticalValues holds the two-tailed Student's t critical values at
// alpha = 0.05, indexed by degrees of freedom. Precomputed once from the
// t-distribution quantile function.
var criticalValues [maxTableDF + 1]float64

func init() {
	for df := 1; df <= maxTableDF; df++ {
		dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
		criticalValues[df] = dist.Quantile(0.975)
	}
}

// criticalValue returns the two-tailed alpha = 0.05 critical t value for the
// given degrees of freedom, clamping df above the table bound.
func criticalValue(df int) float64 {
	if df < 1 {
		df = 1
	}
	if df > maxTableDF {
		df = maxTableDF
	}
	return criticalValues[df]
}

// Different reports whether the means of two sample populations differ
// beyond measurement noise, using a pooled-variance two-tailed Student's
// t-test at alpha = 0.05. The test is symmetric in its arguments.
//
// Degenerate populations are well-defined: equal means are never different
// regardless of variance, and unequal means with zero pooled variance are
// always different (the t statistic diverges).
func Different(a, b *Result) bool {
	meanA, meanB := a.Mean(), b.Mean()
	if meanA == meanB {
		return false
	}

	na, nb := a.Len(), b.Len()
	df := na + nb - 2
	if df < 1 {
		// Two single-sample populations carry no variance information.
		return false
	}

	pooledVariance := (float64(na-1)*a.Variance() + float64(nb-1)*b.Variance()) / float64(df)
	if pooledVariance == 0 {
		return true
	}

	standardError := math.Sqrt(pooledVariance) * math.Sqrt(1/float64(na)+1/float64(nb))
	t := math.Abs(meanA-meanB) / standardError
	return t >= criticalValue(df)
}

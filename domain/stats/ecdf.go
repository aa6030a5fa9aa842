package stats

import (
	"math"
	"sort"

	"daostats/domain/core"
)

// ksCriticalCoefficient is the asymptotic Kolmogorov-Smirnov critical value
// coefficient at alpha ~= 0.05.
const ksCriticalCoefficient = 1.36

// ECDF is a sample's empirical cumulative distribution function.
type ECDF struct {
	sorted []float64
}

// ECDF builds the empirical CDF of a non-empty sample.
func (s Sample) ECDF() (ECDF, error) {
	if len(s.values) == 0 {
		return ECDF{}, core.NewEmptyInputError("ecdf")
	}
	return ECDF{sorted: s.sorted()}, nil
}

// At returns the fraction of sample values <= x.
func (e ECDF) At(x float64) float64 {
	idx := sort.Search(len(e.sorted), func(i int) bool { return e.sorted[i] > x })
	return float64(idx) / float64(len(e.sorted))
}

// Comparison reports the two-sample ECDF max-difference statistic and the
// accompanying mean shift.
type Comparison struct {
	Statistic      float64 `json:"statistic"`
	Threshold      float64 `json:"threshold"`
	Significant    bool    `json:"significant"`
	MeanA          float64 `json:"mean_a"`
	MeanB          float64 `json:"mean_b"`
	MeanDifference float64 `json:"mean_difference"`
}

// CompareSamples computes the maximum absolute difference between the two
// samples' empirical CDFs over the union of their unique values, and flags
// it against the asymptotic KS critical value
// 1.36*sqrt((nA+nB)/(nA*nB)) at alpha ~= 0.05.
//
// This is an approximation of the exact two-sample Kolmogorov-Smirnov test
// (it evaluates at observed values rather than running the step-function
// crossing algorithm, and uses the asymptotic threshold). It is meant for
// descriptive "is there a visible difference" reporting, not rigorous
// hypothesis testing.
func CompareSamples(a, b Sample) (Comparison, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return Comparison{}, core.NewEmptyInputError("sample comparison")
	}
	ecdfA, _ := a.ECDF()
	ecdfB, _ := b.ECDF()

	union := unionValues(ecdfA.sorted, ecdfB.sorted)
	statistic := 0.0
	for _, x := range union {
		if d := math.Abs(ecdfA.At(x) - ecdfB.At(x)); d > statistic {
			statistic = d
		}
	}

	na := float64(a.Len())
	nb := float64(b.Len())
	threshold := ksCriticalCoefficient * math.Sqrt((na+nb)/(na*nb))

	meanA, _ := a.Mean()
	meanB, _ := b.Mean()
	return Comparison{
		Statistic:      statistic,
		Threshold:      threshold,
		Significant:    statistic > threshold,
		MeanA:          meanA,
		MeanB:          meanB,
		MeanDifference: meanA - meanB,
	}, nil
}

// unionValues merges two sorted slices into their sorted unique union.
func unionValues(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		var v float64
		switch {
		case i == len(a):
			v = b[j]
			j++
		case j == len(b):
			v = a[i]
			i++
		case a[i] <= b[j]:
			v = a[i]
			i++
		default:
			v = b[j]
			j++
		}
		if len(out) == 0 || out[len(out)-1] != v {
			out = append(out, v)
		}
	}
	return out
}

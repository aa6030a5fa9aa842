package stats

import (
	"math"

	"daostats/domain/core"
)

// QuantileSummary is the five-number summary plus IQR of a sample.
type QuantileSummary struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	IQR    float64 `json:"iqr"`
}

// Quantile returns the q-th quantile of the sample using linear
// interpolation between closest ranks (the R-7 method): with the sample
// sorted ascending, position = (n-1)*q, and the result interpolates between
// the floor and ceiling order statistics. This is the only quantile
// estimator in the repository; the nearest-rank sorted[floor(q*n)] form the
// charts previously mixed in is statistically biased and intentionally
// unavailable.
func (s Sample) Quantile(q float64) (float64, error) {
	if len(s.values) == 0 {
		return 0, core.NewEmptyInputError("quantile")
	}
	if q < 0 || q > 1 || math.IsNaN(q) {
		return 0, core.NewInvalidParameterError("q", "must be in [0,1]")
	}
	sorted := s.sorted()
	position := float64(len(sorted)-1) * q
	base := int(math.Floor(position))
	frac := position - float64(base)
	if base+1 < len(sorted) {
		return sorted[base] + frac*(sorted[base+1]-sorted[base]), nil
	}
	return sorted[base], nil
}

// Median is Quantile(0.5).
func (s Sample) Median() (float64, error) {
	return s.Quantile(0.5)
}

// IQR returns Q3 - Q1.
func (s Sample) IQR() (float64, error) {
	q1, err := s.Quantile(0.25)
	if err != nil {
		return 0, err
	}
	q3, _ := s.Quantile(0.75)
	return q3 - q1, nil
}

// Quantiles computes the QuantileSummary. Defined for any non-empty sample;
// with n = 1 every field collapses to the single value and IQR is 0.
func (s Sample) Quantiles() (QuantileSummary, error) {
	if len(s.values) == 0 {
		return QuantileSummary{}, core.NewEmptyInputError("quantile summary")
	}
	sorted := s.sorted()
	q1, _ := s.Quantile(0.25)
	median, _ := s.Quantile(0.5)
	q3, _ := s.Quantile(0.75)
	return QuantileSummary{
		Min:    sorted[0],
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    sorted[len(sorted)-1],
		IQR:    q3 - q1,
	}, nil
}

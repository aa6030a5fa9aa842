package stats

import (
	"math"

	"daostats/domain/core"
)

// MomentSummary bundles the moment-based statistics of a sample.
// Kurtosis is excess kurtosis (fourth standardized moment minus 3).
type MomentSummary struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// Mean returns the arithmetic mean. Defined for any non-empty sample.
func (s Sample) Mean() (float64, error) {
	if len(s.values) == 0 {
		return 0, core.NewEmptyInputError("mean")
	}
	sum := 0.0
	for _, v := range s.values {
		sum += v
	}
	return sum / float64(len(s.values)), nil
}

// Variance returns the unbiased sample variance (Bessel's n-1 denominator).
// Requires n >= 2; callers that want the population (n denominator) form
// must opt in via PopulationVariance.
func (s Sample) Variance() (float64, error) {
	if len(s.values) == 0 {
		return 0, core.NewEmptyInputError("variance")
	}
	if len(s.values) < 2 {
		return 0, core.NewInsufficientDataError("variance", 2, len(s.values))
	}
	mean, _ := s.Mean()
	return s.sumSquaredDev(mean) / float64(len(s.values)-1), nil
}

// PopulationVariance returns the biased (n denominator) variance. Defined
// for n >= 1; a single-element sample has variance 0.
func (s Sample) PopulationVariance() (float64, error) {
	if len(s.values) == 0 {
		return 0, core.NewEmptyInputError("population variance")
	}
	mean, _ := s.Mean()
	return s.sumSquaredDev(mean) / float64(len(s.values)), nil
}

// StdDev returns sqrt of the unbiased variance. Requires n >= 2.
func (s Sample) StdDev() (float64, error) {
	v, err := s.Variance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Skewness returns Fisher's moment coefficient: the mean of
// ((x-mean)/std)^3. A constant sample (std == 0) returns the documented
// sentinel 0 rather than an error, matching the kurtosis contract.
func (s Sample) Skewness() (float64, error) {
	return s.standardizedMoment(3)
}

// Kurtosis returns excess kurtosis: the mean of ((x-mean)/std)^4 minus 3,
// so a normal distribution scores 0. Constant samples return the sentinel 0.
func (s Sample) Kurtosis() (float64, error) {
	m, err := s.standardizedMoment(4)
	if err != nil {
		return 0, err
	}
	if m == 0 {
		// zero-std sentinel, keep it at 0 rather than -3
		return 0, nil
	}
	return m - 3, nil
}

// Moments computes the full MomentSummary in one pass over the prerequisites.
func (s Sample) Moments() (MomentSummary, error) {
	mean, err := s.Mean()
	if err != nil {
		return MomentSummary{}, err
	}
	variance, err := s.Variance()
	if err != nil {
		return MomentSummary{}, err
	}
	skew, err := s.Skewness()
	if err != nil {
		return MomentSummary{}, err
	}
	kurt, err := s.Kurtosis()
	if err != nil {
		return MomentSummary{}, err
	}
	return MomentSummary{
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Skewness: skew,
		Kurtosis: kurt,
	}, nil
}

func (s Sample) sumSquaredDev(mean float64) float64 {
	sum := 0.0
	for _, v := range s.values {
		dev := v - mean
		sum += dev * dev
	}
	return sum
}

// standardizedMoment returns the mean of ((x-mean)/std)^power, with 0 as the
// zero-std sentinel.
func (s Sample) standardizedMoment(power int) (float64, error) {
	if len(s.values) == 0 {
		return 0, core.NewEmptyInputError("standardized moment")
	}
	if len(s.values) < 2 {
		return 0, core.NewInsufficientDataError("standardized moment", 2, len(s.values))
	}
	mean, _ := s.Mean()
	std, _ := s.StdDev()
	if std == 0 {
		return 0, nil
	}
	sum := 0.0
	for _, v := range s.values {
		dev := (v - mean) / std
		term := dev
		for i := 1; i < power; i++ {
			term *= dev
		}
		sum += term
	}
	return sum / float64(len(s.values)), nil
}

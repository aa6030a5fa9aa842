package stats

import (
	"fmt"
	"math"
	"sort"

	"daostats/domain/core"
)

// Sample is an ordered sequence of finite float64 values. The zero value is
// an empty sample; operations that are undefined on it return typed errors.
type Sample struct {
	values []float64
}

// NewSample copies values into a Sample. Non-finite entries (NaN, +-Inf) are
// rejected so no downstream statistic can silently absorb them.
func NewSample(values []float64) (Sample, error) {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Sample{}, core.NewInvalidParameterError("values", fmt.Sprintf("non-finite value at index %d", i))
		}
	}
	copied := make([]float64, len(values))
	copy(copied, values)
	return Sample{values: copied}, nil
}

// MustSample builds a Sample from literal values, panicking on non-finite
// input. Intended for tests and fixed configuration.
func MustSample(values ...float64) Sample {
	s, err := NewSample(values)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of values.
func (s Sample) Len() int {
	return len(s.values)
}

// Values returns a copy of the underlying values in input order.
func (s Sample) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Min is well-defined for any non-empty sample, including n = 1.
func (s Sample) Min() (float64, error) {
	if len(s.values) == 0 {
		return 0, core.NewEmptyInputError("min")
	}
	min := s.values[0]
	for _, v := range s.values[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

// Max is well-defined for any non-empty sample, including n = 1.
func (s Sample) Max() (float64, error) {
	if len(s.values) == 0 {
		return 0, core.NewEmptyInputError("max")
	}
	max := s.values[0]
	for _, v := range s.values[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// sorted returns an ascending copy of the values.
func (s Sample) sorted() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	sort.Float64s(out)
	return out
}

// PairedSample holds two equal-length samples indexed correspondingly,
// e.g. largest-holder percent and participation percent per DAO.
type PairedSample struct {
	x Sample
	y Sample
}

// NewPairedSample validates lengths match and both series are finite.
func NewPairedSample(x, y []float64) (PairedSample, error) {
	if len(x) != len(y) {
		return PairedSample{}, core.NewInvalidParameterError("paired sample",
			fmt.Sprintf("length mismatch: %d vs %d", len(x), len(y)))
	}
	sx, err := NewSample(x)
	if err != nil {
		return PairedSample{}, err
	}
	sy, err := NewSample(y)
	if err != nil {
		return PairedSample{}, err
	}
	return PairedSample{x: sx, y: sy}, nil
}

// Len returns the number of pairs.
func (p PairedSample) Len() int {
	return p.x.Len()
}

// X returns the first series.
func (p PairedSample) X() Sample { return p.x }

// Y returns the second series.
func (p PairedSample) Y() Sample { return p.y }

// Swap returns the pair with series order reversed.
func (p PairedSample) Swap() PairedSample {
	return PairedSample{x: p.y, y: p.x}
}

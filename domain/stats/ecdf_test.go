package stats

import (
	"math"
	"testing"

	"daostats/domain/core"
)

// TestECDFFractions: At returns the fraction of values <= x.
func TestECDFFractions(t *testing.T) {
	s := MustSample(1, 2, 3, 4)
	ecdf, err := s.ECDF()
	if err != nil {
		t.Fatalf("ECDF: %v", err)
	}

	cases := []struct {
		x    float64
		want float64
	}{
		{0.5, 0},
		{1, 0.25},
		{2.5, 0.5},
		{4, 1},
		{100, 1},
	}
	for _, tt := range cases {
		if got := ecdf.At(tt.x); !approxEqual(got, tt.want, tolerance) {
			t.Errorf("At(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

// TestCompareIdenticalSamples: zero statistic, not significant.
func TestCompareIdenticalSamples(t *testing.T) {
	a := MustSample(1, 2, 3, 4, 5)
	b := MustSample(1, 2, 3, 4, 5)

	cmp, err := CompareSamples(a, b)
	if err != nil {
		t.Fatalf("CompareSamples: %v", err)
	}
	if cmp.Statistic != 0 {
		t.Errorf("Statistic = %v, want 0", cmp.Statistic)
	}
	if cmp.Significant {
		t.Error("identical samples flagged significant")
	}
	if cmp.MeanDifference != 0 {
		t.Errorf("MeanDifference = %v, want 0", cmp.MeanDifference)
	}
}

// TestCompareDisjointSamples: fully separated samples hit the maximum
// statistic of 1 and clear the threshold.
func TestCompareDisjointSamples(t *testing.T) {
	a := MustSample(1, 2, 3, 4, 5, 6)
	b := MustSample(100, 101, 102, 103, 104, 105)

	cmp, err := CompareSamples(a, b)
	if err != nil {
		t.Fatalf("CompareSamples: %v", err)
	}
	if cmp.Statistic != 1 {
		t.Errorf("Statistic = %v, want 1", cmp.Statistic)
	}
	wantThreshold := 1.36 * math.Sqrt(12.0/36.0)
	if !approxEqual(cmp.Threshold, wantThreshold, 1e-9) {
		t.Errorf("Threshold = %v, want %v", cmp.Threshold, wantThreshold)
	}
	if !cmp.Significant {
		t.Error("disjoint samples not flagged significant")
	}
	if !approxEqual(cmp.MeanA, 3.5, tolerance) || !approxEqual(cmp.MeanB, 102.5, tolerance) {
		t.Errorf("means = %v/%v, want 3.5/102.5", cmp.MeanA, cmp.MeanB)
	}
}

// TestCompareSmallShift: a mild shift on small samples stays under the
// asymptotic threshold.
func TestCompareSmallShift(t *testing.T) {
	a := MustSample(1, 2, 3, 4, 5, 6, 7, 8)
	b := MustSample(2, 3, 4, 5, 6, 7, 8, 9)

	cmp, err := CompareSamples(a, b)
	if err != nil {
		t.Fatalf("CompareSamples: %v", err)
	}
	// ECDFs differ by exactly one step of 1/8
	if !approxEqual(cmp.Statistic, 0.125, tolerance) {
		t.Errorf("Statistic = %v, want 0.125", cmp.Statistic)
	}
	if cmp.Significant {
		t.Error("one-step shift flagged significant")
	}
}

// TestCompareEmptyInputs rejects empty samples on either side.
func TestCompareEmptyInputs(t *testing.T) {
	var empty Sample
	full := MustSample(1, 2, 3)

	if _, err := CompareSamples(empty, full); !core.IsEmptyInputError(err) {
		t.Errorf("empty A: error = %v, want empty input", err)
	}
	if _, err := CompareSamples(full, empty); !core.IsEmptyInputError(err) {
		t.Errorf("empty B: error = %v, want empty input", err)
	}
}

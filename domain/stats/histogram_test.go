package stats

import (
	"testing"

	"daostats/domain/core"
)

func sumCounts(bins []HistogramBin) int {
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	return total
}

// TestHistogramExplicitEdgesScenario: the spec'd five-bin case with one
// value per bin at 20% each.
func TestHistogramExplicitEdgesScenario(t *testing.T) {
	s := MustSample(5, 15, 25, 35, 45)
	bins, err := s.HistogramEdges([]float64{0, 10, 20, 30, 40, 50})
	if err != nil {
		t.Fatalf("HistogramEdges: %v", err)
	}
	if len(bins) != 5 {
		t.Fatalf("got %d bins, want 5", len(bins))
	}
	for i, bin := range bins {
		if bin.Count != 1 {
			t.Errorf("bin %d count = %d, want 1", i, bin.Count)
		}
		if bin.RelativeFrequencyPercent != 20 {
			t.Errorf("bin %d relative frequency = %v, want 20", i, bin.RelativeFrequencyPercent)
		}
	}
}

// TestHistogramLastBinInclusive: the maximum lands in the final bin rather
// than falling off the right edge.
func TestHistogramLastBinInclusive(t *testing.T) {
	s := MustSample(0, 10, 20, 30, 40, 50)
	bins, err := s.HistogramEdges([]float64{0, 25, 50})
	if err != nil {
		t.Fatalf("HistogramEdges: %v", err)
	}
	if sumCounts(bins) != s.Len() {
		t.Errorf("counts sum to %d, want %d", sumCounts(bins), s.Len())
	}
	if bins[1].Count != 3 { // 30, 40, and the inclusive 50
		t.Errorf("last bin count = %d, want 3", bins[1].Count)
	}
}

// TestHistogramCountsSumToN across explicit, width, and FD modes.
func TestHistogramCountsSumToN(t *testing.T) {
	s := MustSample(10, 20, 30, 40, 50, 60, 70, 80, 90, 100)

	explicit, err := s.HistogramEdges([]float64{0, 33, 66, 100})
	if err != nil {
		t.Fatalf("HistogramEdges: %v", err)
	}
	if sumCounts(explicit) != 10 {
		t.Errorf("explicit mode: counts sum to %d, want 10", sumCounts(explicit))
	}

	width, err := s.HistogramWidth(17)
	if err != nil {
		t.Fatalf("HistogramWidth: %v", err)
	}
	if sumCounts(width) != 10 {
		t.Errorf("width mode: counts sum to %d, want 10", sumCounts(width))
	}

	fd, err := s.HistogramFD()
	if err != nil {
		t.Fatalf("HistogramFD: %v", err)
	}
	if sumCounts(fd) != 10 {
		t.Errorf("FD mode: counts sum to %d, want 10", sumCounts(fd))
	}
}

// TestHistogramDegenerateIQR: identical values fall back to a single bin.
func TestHistogramDegenerateIQR(t *testing.T) {
	s := MustSample(5, 5, 5, 5)
	bins, err := s.HistogramFD()
	if err != nil {
		t.Fatalf("HistogramFD(constant): %v", err)
	}
	if len(bins) != 1 {
		t.Fatalf("got %d bins, want 1", len(bins))
	}
	if bins[0].Count != 4 || bins[0].RelativeFrequencyPercent != 100 {
		t.Errorf("fallback bin = %+v, want count 4 at 100%%", bins[0])
	}
	if !(bins[0].LowerBound < 5 && bins[0].UpperBound > 5) {
		t.Errorf("fallback bin [%v, %v] does not bracket the shared value", bins[0].LowerBound, bins[0].UpperBound)
	}
}

// TestHistogramEdgeValidation: bad edges and uncovered samples are rejected.
func TestHistogramEdgeValidation(t *testing.T) {
	s := MustSample(5, 15)

	if _, err := s.HistogramEdges([]float64{10}); !core.IsInvalidParameterError(err) {
		t.Errorf("single edge: error = %v, want invalid parameter", err)
	}
	if _, err := s.HistogramEdges([]float64{10, 10, 20}); !core.IsInvalidParameterError(err) {
		t.Errorf("non-increasing edges: error = %v, want invalid parameter", err)
	}
	// 15 lies outside [0, 10]: counts could no longer sum to n
	if _, err := s.HistogramEdges([]float64{0, 10}); !core.IsInvalidParameterError(err) {
		t.Errorf("uncovered sample: error = %v, want invalid parameter", err)
	}
}

// TestHistogramWidthValidation rejects non-positive widths.
func TestHistogramWidthValidation(t *testing.T) {
	s := MustSample(1, 2, 3)
	for _, w := range []float64{0, -1} {
		if _, err := s.HistogramWidth(w); !core.IsInvalidParameterError(err) {
			t.Errorf("width %v: error = %v, want invalid parameter", w, err)
		}
	}

	var empty Sample
	if _, err := empty.HistogramWidth(1); !core.IsEmptyInputError(err) {
		t.Errorf("empty sample: error = %v, want empty input", err)
	}
}

// TestBinnedMode: the densest bin's midpoint wins.
func TestBinnedMode(t *testing.T) {
	s := MustSample(1, 1, 1, 2, 10)
	mode, err := s.BinnedMode(3)
	if err != nil {
		t.Fatalf("BinnedMode: %v", err)
	}
	// the [1, 4) bin holds four of five values; midpoint 2.5
	if !approxEqual(mode, 2.5, tolerance) {
		t.Errorf("BinnedMode = %v, want 2.5", mode)
	}

	constant := MustSample(3, 3, 3)
	mode, err = constant.BinnedMode(5)
	if err != nil {
		t.Fatalf("BinnedMode(constant): %v", err)
	}
	if mode != 3 {
		t.Errorf("BinnedMode(constant) = %v, want 3", mode)
	}
}

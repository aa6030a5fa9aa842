package stats

import (
	"fmt"
	"math"

	"daostats/domain/core"
)

// degenerateHalfWidth pads the single fallback bin when min == max, keeping
// the bin width positive so relative frequencies stay well-defined.
const degenerateHalfWidth = 0.5

// HistogramBin is one bin of a histogram. Bins are half-open
// [LowerBound, UpperBound), except the final bin, whose upper edge is
// inclusive so max always lands in a bin.
type HistogramBin struct {
	LowerBound               float64 `json:"lower_bound"`
	UpperBound               float64 `json:"upper_bound"`
	Count                    int     `json:"count"`
	RelativeFrequencyPercent float64 `json:"relative_frequency_percent"`
}

// HistogramEdges bins the sample into the explicit, possibly non-uniform
// edges (e.g. the threshold-aligned [0,10,...,66,75,85,100] used for
// governance percent metrics). Edges must be strictly increasing and must
// cover [min, max] of the sample so bin counts always sum to n.
func (s Sample) HistogramEdges(edges []float64) ([]HistogramBin, error) {
	if len(s.values) == 0 {
		return nil, core.NewEmptyInputError("histogram")
	}
	if len(edges) < 2 {
		return nil, core.NewInvalidParameterError("edges", "need at least two edges")
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return nil, core.NewInvalidParameterError("edges", "must be strictly increasing")
		}
	}
	min, _ := s.Min()
	max, _ := s.Max()
	if min < edges[0] || max > edges[len(edges)-1] {
		return nil, core.NewInvalidParameterError("edges",
			fmt.Sprintf("sample range [%g, %g] not covered by edges [%g, %g]",
				min, max, edges[0], edges[len(edges)-1]))
	}
	return s.fillBins(edges), nil
}

// HistogramWidth bins the sample into uniform bins of the given width
// starting at the sample minimum. A sample with zero range collapses to a
// single bin around the shared value.
func (s Sample) HistogramWidth(width float64) ([]HistogramBin, error) {
	if len(s.values) == 0 {
		return nil, core.NewEmptyInputError("histogram")
	}
	if width <= 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return nil, core.NewInvalidParameterError("width", "must be a positive finite number")
	}
	min, _ := s.Min()
	max, _ := s.Max()
	if min == max {
		return s.fillBins([]float64{min - degenerateHalfWidth, min + degenerateHalfWidth}), nil
	}
	binCount := int(math.Ceil((max - min) / width))
	if binCount < 1 {
		binCount = 1
	}
	edges := make([]float64, binCount+1)
	for i := 0; i <= binCount; i++ {
		edges[i] = min + float64(i)*width
	}
	// rounding can leave max a hair past the last edge
	if edges[binCount] < max {
		edges[binCount] = max
	}
	return s.fillBins(edges), nil
}

// HistogramFD bins the sample with the Freedman-Diaconis rule,
// width = 2*IQR*n^(-1/3). When the IQR is zero (identical values or a
// too-small n) it falls back to a single bin spanning [min, max].
func (s Sample) HistogramFD() ([]HistogramBin, error) {
	if len(s.values) == 0 {
		return nil, core.NewEmptyInputError("histogram")
	}
	width, err := s.FreedmanDiaconisWidth()
	if err != nil {
		if core.IsDegenerateError(err) {
			return s.degenerateBin(), nil
		}
		return nil, err
	}
	return s.HistogramWidth(width)
}

// FreedmanDiaconisWidth returns 2*IQR*n^(-1/3). A zero IQR yields a
// degenerate-distribution error; HistogramFD translates that into its
// single-bin fallback.
func (s Sample) FreedmanDiaconisWidth() (float64, error) {
	if len(s.values) == 0 {
		return 0, core.NewEmptyInputError("freedman-diaconis width")
	}
	iqr, err := s.IQR()
	if err != nil {
		return 0, err
	}
	if iqr == 0 {
		return 0, core.NewDegenerateError("freedman-diaconis width", "zero IQR")
	}
	return 2 * iqr * math.Pow(float64(len(s.values)), -1.0/3.0), nil
}

// BinnedMode returns the midpoint of the highest-count bin over binCount
// uniform bins. An approximate mode for continuous data, not an exact one;
// ties resolve to the lowest such bin. A zero-range sample returns the
// shared value.
func (s Sample) BinnedMode(binCount int) (float64, error) {
	if len(s.values) == 0 {
		return 0, core.NewEmptyInputError("binned mode")
	}
	if binCount < 1 {
		return 0, core.NewInvalidParameterError("binCount", "must be >= 1")
	}
	min, _ := s.Min()
	max, _ := s.Max()
	if min == max {
		return min, nil
	}
	bins, err := s.HistogramWidth((max - min) / float64(binCount))
	if err != nil {
		return 0, err
	}
	best := 0
	for i, bin := range bins {
		if bin.Count > bins[best].Count {
			best = i
		}
	}
	return (bins[best].LowerBound + bins[best].UpperBound) / 2, nil
}

func (s Sample) degenerateBin() []HistogramBin {
	min, _ := s.Min()
	max, _ := s.Max()
	if min == max {
		return s.fillBins([]float64{min - degenerateHalfWidth, min + degenerateHalfWidth})
	}
	return s.fillBins([]float64{min, max})
}

// fillBins counts values into the given edges. Assumes edges are valid and
// cover the sample range.
func (s Sample) fillBins(edges []float64) []HistogramBin {
	bins := make([]HistogramBin, len(edges)-1)
	for i := range bins {
		bins[i].LowerBound = edges[i]
		bins[i].UpperBound = edges[i+1]
	}
	last := len(bins) - 1
	for _, v := range s.values {
		for i := range bins {
			if v >= bins[i].LowerBound && (v < bins[i].UpperBound || (i == last && v <= bins[i].UpperBound)) {
				bins[i].Count++
				break
			}
		}
	}
	n := float64(len(s.values))
	for i := range bins {
		bins[i].RelativeFrequencyPercent = 100 * float64(bins[i].Count) / n
	}
	return bins
}

package dataset

import (
	"math"

	"daostats/domain/core"
	"daostats/domain/stats"
)

// Extraction is a metric column pulled out of the dataset: the finite
// values as a Sample, plus how many records were skipped for carrying a
// non-finite value in that field.
type Extraction struct {
	Metric  core.MetricKey `json:"metric"`
	Sample  stats.Sample   `json:"-"`
	Missing int            `json:"missing"`
}

// Extract pulls one metric column into a Sample, skipping (and counting)
// non-finite entries so the stats layer never sees them.
func (d *Dataset) Extract(key core.MetricKey) (Extraction, error) {
	values := make([]float64, 0, len(d.Records))
	missing := 0
	for _, r := range d.Records {
		v, ok := r.Metric(key)
		if !ok {
			return Extraction{}, core.NewInvalidParameterError("metric", "unknown metric "+key.String())
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			missing++
			continue
		}
		values = append(values, v)
	}
	sample, err := stats.NewSample(values)
	if err != nil {
		return Extraction{}, err
	}
	return Extraction{Metric: key, Sample: sample, Missing: missing}, nil
}

// ExtractPair pulls two metric columns into a PairedSample, dropping any
// record where either side is non-finite so the pairing stays aligned.
func (d *Dataset) ExtractPair(xKey, yKey core.MetricKey) (stats.PairedSample, error) {
	xs := make([]float64, 0, len(d.Records))
	ys := make([]float64, 0, len(d.Records))
	for _, r := range d.Records {
		x, ok := r.Metric(xKey)
		if !ok {
			return stats.PairedSample{}, core.NewInvalidParameterError("metric", "unknown metric "+xKey.String())
		}
		y, ok := r.Metric(yKey)
		if !ok {
			return stats.PairedSample{}, core.NewInvalidParameterError("metric", "unknown metric "+yKey.String())
		}
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return stats.NewPairedSample(xs, ys)
}

// SplitByCategory extracts one metric into two samples: records in the
// given category and everything else. Used for the two-group ECDF
// comparison charts.
func (d *Dataset) SplitByCategory(key core.MetricKey, category string) (in, out stats.Sample, err error) {
	var inValues, outValues []float64
	for _, r := range d.Records {
		v, ok := r.Metric(key)
		if !ok {
			return stats.Sample{}, stats.Sample{}, core.NewInvalidParameterError("metric", "unknown metric "+key.String())
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if r.Category == category {
			inValues = append(inValues, v)
		} else {
			outValues = append(outValues, v)
		}
	}
	in, err = stats.NewSample(inValues)
	if err != nil {
		return stats.Sample{}, stats.Sample{}, err
	}
	out, err = stats.NewSample(outValues)
	if err != nil {
		return stats.Sample{}, stats.Sample{}, err
	}
	return in, out, nil
}

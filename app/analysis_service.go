package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"daostats/domain/core"
	"daostats/domain/dataset"
	"daostats/domain/stats"
	"daostats/ports"

	"golang.org/x/sync/semaphore"
)

// thresholdEdges are the governance-threshold-aligned histogram edges for
// percent-scale metrics: 33/66 (supermajority), 50 (simple majority), and
// the common quorum tiers.
var thresholdEdges = []float64{0, 10, 20, 30, 33, 40, 50, 60, 66, 75, 85, 100}

// densityGridSize is the number of KDE/normal-fit evaluation points per
// metric, matching what the curves need to render smoothly.
const densityGridSize = 128

// AnalysisService computes the per-metric summaries and cross-metric
// relationships the dashboard charts render. All statistical work delegates
// to domain/stats; the service only owns fan-out and assembly.
type AnalysisService struct {
	reader  ports.DatasetReader
	workers int64
}

// NewAnalysisService creates a service reading from the given source.
// workers bounds concurrent per-metric computation; values below 1 are
// clamped to 1.
func NewAnalysisService(reader ports.DatasetReader, workers int64) *AnalysisService {
	if workers < 1 {
		workers = 1
	}
	return &AnalysisService{reader: reader, workers: workers}
}

// SweepRequest configures a metric sweep. Zero values select the defaults:
// all metrics, the robust bandwidth rule, a fresh sweep ID.
type SweepRequest struct {
	Metrics       []core.MetricKey
	BandwidthRule stats.BandwidthRule
	SweepID       core.SweepID
}

// MetricSummary is everything one metric's charts need: moments, quantiles,
// histogram, density curves, and the approximate mode.
type MetricSummary struct {
	Metric     core.MetricKey        `json:"metric"`
	SampleSize int                   `json:"sample_size"`
	Missing    int                   `json:"missing"`
	Moments    stats.MomentSummary   `json:"moments"`
	Quantiles  stats.QuantileSummary `json:"quantiles"`
	Histogram  []stats.HistogramBin  `json:"histogram"`
	Bandwidth  float64               `json:"bandwidth"`
	Density    stats.DensityCurve    `json:"density"`
	NormalFit  stats.DensityCurve    `json:"normal_fit,omitempty"`
	BinnedMode float64               `json:"binned_mode"`
}

// CorrelationCell is one entry of the pairwise Pearson matrix.
type CorrelationCell struct {
	MetricX    core.MetricKey            `json:"metric_x"`
	MetricY    core.MetricKey            `json:"metric_y"`
	R          float64                   `json:"r"`
	Strength   stats.CorrelationStrength `json:"strength"`
	SampleSize int                       `json:"sample_size"`
}

// SweepResult is the complete output of one sweep.
type SweepResult struct {
	SweepID      core.SweepID      `json:"sweep_id"`
	RecordCount  int               `json:"record_count"`
	Summaries    []MetricSummary   `json:"summaries"`
	Correlations []CorrelationCell `json:"correlations"`
	RuntimeMs    int64             `json:"runtime_ms"`
	CreatedAt    time.Time         `json:"created_at"`
}

// RunSweep loads the dataset and computes a MetricSummary for every
// requested metric plus the pairwise correlation matrix. Per-metric work
// fans out under the worker bound; the stats functions themselves are pure,
// so this is safe without coordination beyond result collection.
func (s *AnalysisService) RunSweep(ctx context.Context, req SweepRequest) (*SweepResult, error) {
	start := time.Now()

	sweepID := req.SweepID
	if sweepID == "" {
		sweepID = core.SweepID(core.NewID())
	}
	metrics := req.Metrics
	if len(metrics) == 0 {
		metrics = dataset.AllMetrics()
	}
	rule := req.BandwidthRule
	if rule == "" {
		rule = stats.BandwidthRobust
	}

	ds, err := s.reader.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("dataset read failed: %w", err)
	}

	summaries := make([]MetricSummary, len(metrics))
	errs := make([]error, len(metrics))

	sem := semaphore.NewWeighted(s.workers)
	var wg sync.WaitGroup
	for i, metric := range metrics {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("sweep cancelled: %w", err)
		}
		wg.Add(1)
		go func(i int, metric core.MetricKey) {
			defer wg.Done()
			defer sem.Release(1)
			summary, err := s.summarizeMetric(ds, metric, rule)
			if err != nil {
				errs[i] = fmt.Errorf("metric %s: %w", metric, err)
				return
			}
			summaries[i] = summary
		}(i, metric)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	correlations, err := s.correlationMatrix(ds, metrics)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{
		SweepID:      sweepID,
		RecordCount:  ds.Len(),
		Summaries:    summaries,
		Correlations: correlations,
		RuntimeMs:    time.Since(start).Milliseconds(),
		CreatedAt:    time.Now().UTC(),
	}
	log.Printf("[AnalysisService] Sweep %s: %d metrics, %d correlation cells in %dms",
		sweepID, len(summaries), len(correlations), result.RuntimeMs)
	return result, nil
}

// Correlate computes a single Pearson cell between two metrics.
func (s *AnalysisService) Correlate(ctx context.Context, xKey, yKey core.MetricKey) (*CorrelationCell, error) {
	ds, err := s.reader.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("dataset read failed: %w", err)
	}
	return pairCell(ds, xKey, yKey)
}

// GroupComparison is the two-group ECDF comparison for one metric split by
// category membership.
type GroupComparison struct {
	Metric     core.MetricKey   `json:"metric"`
	Category   string           `json:"category"`
	InGroupN   int              `json:"in_group_n"`
	OutGroupN  int              `json:"out_group_n"`
	Comparison stats.Comparison `json:"comparison"`
}

// Compare splits one metric by category and runs the ECDF max-difference
// comparison between the two groups.
func (s *AnalysisService) Compare(ctx context.Context, key core.MetricKey, category string) (*GroupComparison, error) {
	ds, err := s.reader.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("dataset read failed: %w", err)
	}
	in, out, err := ds.SplitByCategory(key, category)
	if err != nil {
		return nil, err
	}
	comparison, err := stats.CompareSamples(in, out)
	if err != nil {
		return nil, fmt.Errorf("comparison for %s split by %q: %w", key, category, err)
	}
	return &GroupComparison{
		Metric:     key,
		Category:   category,
		InGroupN:   in.Len(),
		OutGroupN:  out.Len(),
		Comparison: comparison,
	}, nil
}

func (s *AnalysisService) summarizeMetric(ds *dataset.Dataset, metric core.MetricKey, rule stats.BandwidthRule) (MetricSummary, error) {
	extraction, err := ds.Extract(metric)
	if err != nil {
		return MetricSummary{}, err
	}
	sample := extraction.Sample

	moments, err := sample.Moments()
	if err != nil {
		return MetricSummary{}, err
	}
	quantiles, err := sample.Quantiles()
	if err != nil {
		return MetricSummary{}, err
	}

	var bins []stats.HistogramBin
	if dataset.IsPercentMetric(metric) {
		bins, err = sample.HistogramEdges(thresholdEdges)
		if err != nil {
			// out-of-range percent values fall back to rule-derived bins
			bins, err = sample.HistogramFD()
		}
	} else {
		bins, err = sample.HistogramFD()
	}
	if err != nil {
		return MetricSummary{}, err
	}

	bandwidth, err := sample.Bandwidth(rule)
	if err != nil {
		return MetricSummary{}, err
	}
	density, err := sample.KDEGrid(densityGridSize, bandwidth)
	if err != nil {
		return MetricSummary{}, err
	}

	// normal overlay is undefined for constant samples; the summary simply
	// omits it then
	var normalFit stats.DensityCurve
	if moments.StdDev > 0 {
		normalFit, err = sample.NormalFitGrid(densityGridSize)
		if err != nil {
			return MetricSummary{}, err
		}
	}

	mode, err := sample.BinnedMode(len(bins))
	if err != nil {
		return MetricSummary{}, err
	}

	return MetricSummary{
		Metric:     metric,
		SampleSize: sample.Len(),
		Missing:    extraction.Missing,
		Moments:    moments,
		Quantiles:  quantiles,
		Histogram:  bins,
		Bandwidth:  bandwidth,
		Density:    density,
		NormalFit:  normalFit,
		BinnedMode: mode,
	}, nil
}

func (s *AnalysisService) correlationMatrix(ds *dataset.Dataset, metrics []core.MetricKey) ([]CorrelationCell, error) {
	var cells []CorrelationCell
	for i := 0; i < len(metrics); i++ {
		for j := i + 1; j < len(metrics); j++ {
			cell, err := pairCell(ds, metrics[i], metrics[j])
			if err != nil {
				return nil, err
			}
			cells = append(cells, *cell)
		}
	}
	return cells, nil
}

func pairCell(ds *dataset.Dataset, xKey, yKey core.MetricKey) (*CorrelationCell, error) {
	pair, err := ds.ExtractPair(xKey, yKey)
	if err != nil {
		return nil, err
	}
	r, err := pair.Pearson()
	if err != nil {
		return nil, fmt.Errorf("correlation %s vs %s: %w", xKey, yKey, err)
	}
	return &CorrelationCell{
		MetricX:    xKey,
		MetricY:    yKey,
		R:          r,
		Strength:   stats.Strength(r),
		SampleSize: pair.Len(),
	}, nil
}

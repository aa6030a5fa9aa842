package excel

import (
	"path/filepath"
	"testing"
	"time"

	"daostats/app"
	"daostats/domain/core"
	"daostats/domain/dataset"
	"daostats/domain/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func fixtureResult() *app.SweepResult {
	return &app.SweepResult{
		SweepID:     core.SweepID("sweep-test"),
		RecordCount: 3,
		Summaries: []app.MetricSummary{
			{
				Metric:     dataset.MetricApprovalRate,
				SampleSize: 3,
				Moments:    stats.MomentSummary{Mean: 80, Variance: 100, StdDev: 10},
				Quantiles:  stats.QuantileSummary{Min: 70, Q1: 75, Median: 80, Q3: 85, Max: 90, IQR: 10},
				Histogram: []stats.HistogramBin{
					{LowerBound: 70, UpperBound: 80, Count: 1, RelativeFrequencyPercent: 100.0 / 3},
					{LowerBound: 80, UpperBound: 90, Count: 2, RelativeFrequencyPercent: 200.0 / 3},
				},
				Bandwidth:  5.2,
				BinnedMode: 85,
			},
		},
		Correlations: []app.CorrelationCell{
			{
				MetricX:    dataset.MetricApprovalRate,
				MetricY:    dataset.MetricParticipationRate,
				R:          -0.42,
				Strength:   stats.StrengthModerate,
				SampleSize: 3,
			},
		},
		RuntimeMs: 1,
		CreatedAt: time.Now().UTC(),
	}
}

func TestWriteProducesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, NewReportWriter(path).Write(fixtureResult()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Histograms", "Correlations"}, f.GetSheetList())

	metric, err := f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "approval_rate", metric)

	mean, err := f.GetCellValue("Summary", "D2")
	require.NoError(t, err)
	assert.Equal(t, "80", mean)

	// two histogram bins under the header
	binMetric, err := f.GetCellValue("Histograms", "A3")
	require.NoError(t, err)
	assert.Equal(t, "approval_rate", binMetric)

	corrY, err := f.GetCellValue("Correlations", "B2")
	require.NoError(t, err)
	assert.Equal(t, "participation_rate", corrY)
}

func TestWriteFailsOnBadPath(t *testing.T) {
	writer := NewReportWriter(filepath.Join(t.TempDir(), "missing-dir", "report.xlsx"))
	assert.Error(t, writer.Write(fixtureResult()))
}

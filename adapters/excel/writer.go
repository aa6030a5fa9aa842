// Package excel exports sweep results to an .xlsx workbook so analysts can
// work with the summaries outside the dashboard.
package excel

import (
	"fmt"
	"log"

	"daostats/app"

	"github.com/xuri/excelize/v2"
)

// ReportWriter writes a SweepResult to an Excel workbook with three sheets:
// Summary (one row per metric), Histograms (one row per bin), and
// Correlations (the pairwise matrix cells).
type ReportWriter struct {
	filePath string
}

// NewReportWriter creates a writer targeting the given .xlsx path.
func NewReportWriter(filePath string) *ReportWriter {
	return &ReportWriter{filePath: filePath}
}

// Write renders the result and saves the workbook.
func (w *ReportWriter) Write(result *app.SweepResult) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[ExcelWriter] Close failed: %v", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	if err := w.writeSummary(f, result); err != nil {
		return err
	}
	if err := w.writeHistograms(f, result); err != nil {
		return err
	}
	if err := w.writeCorrelations(f, result); err != nil {
		return err
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", w.filePath, err)
	}
	log.Printf("[ExcelWriter] Wrote sweep %s (%d metrics) to %s",
		result.SweepID, len(result.Summaries), w.filePath)
	return nil
}

func (w *ReportWriter) writeSummary(f *excelize.File, result *app.SweepResult) error {
	headers := []interface{}{
		"metric", "n", "missing", "mean", "std_dev", "variance",
		"skewness", "kurtosis", "min", "q1", "median", "q3", "max", "iqr",
		"binned_mode", "bandwidth",
	}
	if err := setRow(f, "Summary", 1, headers); err != nil {
		return err
	}
	for i, s := range result.Summaries {
		row := []interface{}{
			s.Metric.String(), s.SampleSize, s.Missing,
			s.Moments.Mean, s.Moments.StdDev, s.Moments.Variance,
			s.Moments.Skewness, s.Moments.Kurtosis,
			s.Quantiles.Min, s.Quantiles.Q1, s.Quantiles.Median,
			s.Quantiles.Q3, s.Quantiles.Max, s.Quantiles.IQR,
			s.BinnedMode, s.Bandwidth,
		}
		if err := setRow(f, "Summary", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (w *ReportWriter) writeHistograms(f *excelize.File, result *app.SweepResult) error {
	if _, err := f.NewSheet("Histograms"); err != nil {
		return fmt.Errorf("failed to create histograms sheet: %w", err)
	}
	if err := setRow(f, "Histograms", 1, []interface{}{
		"metric", "lower_bound", "upper_bound", "count", "relative_frequency_percent",
	}); err != nil {
		return err
	}
	row := 2
	for _, s := range result.Summaries {
		for _, bin := range s.Histogram {
			if err := setRow(f, "Histograms", row, []interface{}{
				s.Metric.String(), bin.LowerBound, bin.UpperBound,
				bin.Count, bin.RelativeFrequencyPercent,
			}); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func (w *ReportWriter) writeCorrelations(f *excelize.File, result *app.SweepResult) error {
	if _, err := f.NewSheet("Correlations"); err != nil {
		return fmt.Errorf("failed to create correlations sheet: %w", err)
	}
	if err := setRow(f, "Correlations", 1, []interface{}{
		"metric_x", "metric_y", "r", "strength", "n",
	}); err != nil {
		return err
	}
	for i, c := range result.Correlations {
		if err := setRow(f, "Correlations", i+2, []interface{}{
			c.MetricX.String(), c.MetricY.String(), c.R, string(c.Strength), c.SampleSize,
		}); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

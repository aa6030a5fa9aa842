package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"daostats/adapters/excel"
	"daostats/adapters/jsonfile"
	"daostats/app"
	"daostats/domain/core"
	"daostats/domain/stats"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// optional .env for local defaults; absence is fine
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "daostats",
		Short: "Descriptive statistics over the DAO governance metrics dataset",
	}

	rootCmd.AddCommand(
		newSummarizeCmd(),
		newCorrelateCmd(),
		newCompareCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultDatasetPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return os.Getenv("DAOSTATS_DATASET")
}

func defaultWorkers() int64 {
	if v := os.Getenv("DAOSTATS_WORKERS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return 4
}

func newService(datasetPath string) (*app.AnalysisService, error) {
	if datasetPath == "" {
		return nil, fmt.Errorf("no dataset path given (argument or DAOSTATS_DATASET)")
	}
	return app.NewAnalysisService(jsonfile.NewReader(datasetPath), defaultWorkers()), nil
}

func newSummarizeCmd() *cobra.Command {
	var metrics []string
	var bandwidthRule string

	cmd := &cobra.Command{
		Use:   "summarize [dataset.json]",
		Short: "Compute per-metric summaries and the correlation matrix",
		Long: `Compute moments, quantiles, histogram, density curve, and approximate
mode for each metric, plus the pairwise Pearson matrix, and print the result
as JSON.

Example: daostats summarize data/governance.json --metric approval_rate --metric participation_rate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(defaultDatasetPath(args))
			if err != nil {
				return err
			}
			req := app.SweepRequest{BandwidthRule: stats.BandwidthRule(bandwidthRule)}
			for _, m := range metrics {
				req.Metrics = append(req.Metrics, core.MetricKey(m))
			}
			result, err := service.RunSweep(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringArrayVar(&metrics, "metric", nil, "Metric key to include (repeatable; default all)")
	cmd.Flags().StringVar(&bandwidthRule, "bandwidth-rule", string(stats.BandwidthRobust),
		"KDE bandwidth rule: silverman, scott, or robust")

	return cmd
}

func newCorrelateCmd() *cobra.Command {
	var xMetric, yMetric string

	cmd := &cobra.Command{
		Use:   "correlate [dataset.json]",
		Short: "Pearson correlation between two metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(defaultDatasetPath(args))
			if err != nil {
				return err
			}
			cell, err := service.Correlate(cmd.Context(), core.MetricKey(xMetric), core.MetricKey(yMetric))
			if err != nil {
				return err
			}
			return printJSON(cmd, cell)
		},
	}

	cmd.Flags().StringVar(&xMetric, "x", "largest_holder_percent", "First metric key")
	cmd.Flags().StringVar(&yMetric, "y", "participation_rate", "Second metric key")

	return cmd
}

func newCompareCmd() *cobra.Command {
	var metric, category string

	cmd := &cobra.Command{
		Use:   "compare [dataset.json]",
		Short: "Two-group ECDF comparison of a metric split by category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if category == "" {
				return fmt.Errorf("--split-category is required")
			}
			service, err := newService(defaultDatasetPath(args))
			if err != nil {
				return err
			}
			comparison, err := service.Compare(cmd.Context(), core.MetricKey(metric), category)
			if err != nil {
				return err
			}
			return printJSON(cmd, comparison)
		},
	}

	cmd.Flags().StringVar(&metric, "metric", "participation_rate", "Metric key to compare")
	cmd.Flags().StringVar(&category, "split-category", "", "Category defining the in-group")

	return cmd
}

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export [dataset.json]",
		Short: "Export the full sweep to an Excel workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(defaultDatasetPath(args))
			if err != nil {
				return err
			}
			result, err := service.RunSweep(cmd.Context(), app.SweepRequest{})
			if err != nil {
				return err
			}
			return excel.NewReportWriter(outPath).Write(result)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "governance-report.xlsx", "Output .xlsx path")

	return cmd
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

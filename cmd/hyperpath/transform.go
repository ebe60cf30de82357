package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperpath/batch"
	"github.com/katalvlaran/hyperpath/dataset"
	"github.com/katalvlaran/hyperpath/transform"
)

func newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform a CSV or YAML/JSON point file into JSON paths",
		Long: `Reads raw points, runs the batch transform and writes one JSON path per
valid point. Invalid points are listed under "failures" with their input index.`,
		RunE: runTransform,
	}

	cmd.Flags().StringP("input", "i", "", "Points file (.csv, .yaml, .yml or .json)")
	cmd.Flags().StringP("output", "o", "", "Output JSON file (default stdout)")
	cmd.Flags().String("metrics-out", "", "Write Prometheus text metrics to this file")
	cmd.Flags().Int("workers", 0, "Override batch.workers (0 keeps the configured value)")
	cmd.Flags().Bool("strict", false, "Exit non-zero when any point fails")
	cmd.Flags().Bool("header", false, "Treat the first CSV row as a header even without a label column")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runTransform(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	engine, err := cfg.EngineConfig()
	if err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	header, _ := cmd.Flags().GetBool("header")
	points, err := readPoints(input, header)
	if err != nil {
		return err
	}

	opts := []batch.Option{batch.WithLogger(logger)}
	workers, _ := cmd.Flags().GetInt("workers")
	if workers <= 0 {
		workers = cfg.Batch.Workers
	}
	if workers > 0 {
		opts = append(opts, batch.WithWorkers(workers))
	}
	metricsOut, _ := cmd.Flags().GetString("metrics-out")
	var metrics *batch.Metrics
	if metricsOut != "" {
		metrics = batch.NewMetrics()
		opts = append(opts, batch.WithMetrics(metrics))
	}

	res, err := batch.TransformAll(points, engine, opts...)
	if err != nil {
		return err
	}

	if err := writeResult(cmd, res); err != nil {
		return err
	}

	if metrics != nil {
		if err := prometheus.WriteToTextfile(metricsOut, metrics.Registry()); err != nil {
			return fmt.Errorf("write metrics %s: %w", metricsOut, err)
		}
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		return res.Err()
	}

	return nil
}

// writeResult writes res to --output, or to stdout when it is unset.
func writeResult(cmd *cobra.Command, res batch.Result) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return dataset.WriteJSON(cmd.OutOrStdout(), res)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output %s: %w", output, err)
	}
	if err := dataset.WriteJSON(f, res); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output %s: %w", output, err)
	}

	return nil
}

// readPoints picks the reader by file extension.
func readPoints(path string, header bool) ([]transform.RawPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		var opts []dataset.CSVOption
		if header {
			opts = append(opts, dataset.WithHeader())
		}
		return dataset.ReadCSV(f, opts...)
	case ".yaml", ".yml", ".json":
		return dataset.ReadYAML(f)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .csv, .yaml, .yml or .json)", filepath.Ext(path))
	}
}

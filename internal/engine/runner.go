/*
PURPOSE:
  High-level runners that orchestrate a full benchmark session.
  Discover graphs -> benchmark -> summarize -> persist -> plot.

REQUIREMENTS:
  User-specified:
  - Comparison run of Gunrock vs Giraph over a graph folder.
  - Thread scaling run of Giraph over the performance cores.
  - One-shot .gr -> .mtx conversion.

  Implementation-discovered:
  - Needs to report progress while a long batch runs.
  - An empty graph folder is a notice, not a failure.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/engine, internal/stats, internal/output, internal/chart

ERROR HANDLING:
  - Logs errors but continues (resilience).
  - Only an unusable core spec or unwritable results abort the run.
  - An interrupted run saves what it has, then returns the context error.

IMPLEMENTATION RULES:
  - Results are persisted before plotting so a rendering problem never
    loses measurements.

USAGE:
  engine.RunCompare(ctx, cfg, engine.ExecRunner{}, runID)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/batch.go

MAINTENANCE:
  - Update when adding new result sinks.
*/

package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/daryltucker/boruvka-bench/internal/chart"
	"github.com/daryltucker/boruvka-bench/internal/config"
	"github.com/daryltucker/boruvka-bench/internal/model"
	"github.com/daryltucker/boruvka-bench/internal/output"
	"github.com/daryltucker/boruvka-bench/internal/resource"
	"github.com/daryltucker/boruvka-bench/internal/stats"
)

// RunCompare executes the comparison benchmark suite.
func RunCompare(ctx context.Context, cfg *config.Config, runner CommandRunner, runID string) error {
	spec, err := resource.Resolve(cfg.Cores)
	if err != nil {
		return err
	}
	output.Logger.Info("Benchmark configuration", "cores", spec.Count, "mask", spec.Mask(), "runs", cfg.Runs)

	graphs, err := FindGraphs(cfg.GraphsDir)
	if err != nil {
		return fmt.Errorf("failed to list graphs in %s: %w", cfg.GraphsDir, err)
	}
	if len(graphs) == 0 {
		output.Logger.Warn("No .mtx files found. Did you run the convert command?", "dir", cfg.GraphsDir)
		return nil
	}
	output.Logger.Info("Found graphs to benchmark", "count", len(graphs))

	if err := os.MkdirAll(cfg.TempDir, 0o755); err != nil {
		return fmt.Errorf("failed to create temp directory %s: %w", cfg.TempDir, err)
	}

	e, err := New(cfg, runner)
	if err != nil {
		return err
	}
	if cfg.TrialLogFile != "" {
		csvWriter, err := output.NewCSVWriter(cfg.TrialLogFile)
		if err != nil {
			return fmt.Errorf("failed to init CSV writer at %s: %w", cfg.TrialLogFile, err)
		}
		defer csvWriter.Close()
		e.Trials.Sink = csvWriter
	}

	started := time.Now()
	res := e.Compare(ctx, graphs, spec, cfg.Runs)
	summaries := stats.SummarizeAll(res)
	logComparison(res, summaries, cfg.Runs)

	rec := model.ComparisonRecord{
		Metadata: model.RunMetadata{
			Timestamp:     started,
			RunsPerGraph:  cfg.Runs,
			GraphsFolder:  cfg.GraphsDir,
			CoreConfig:    spec.CoreConfig(),
			GunrockBinary: cfg.Gunrock.Binary,
			GiraphJar:     cfg.Giraph.Jar,
		},
		Results: summaries,
	}
	if err := output.SaveComparison(cfg.ResultsFile, rec); err != nil {
		return fmt.Errorf("failed to save results to %s: %w", cfg.ResultsFile, err)
	}
	output.Logger.Info("Results saved", "path", cfg.ResultsFile)
	if err := ctx.Err(); err != nil {
		output.Logger.Warn("Run interrupted, partial results saved", "path", cfg.ResultsFile)
		return fmt.Errorf("comparison interrupted: %w", err)
	}

	publishInflux(ctx, cfg, runID, rec)

	if err := chart.Comparison(cfg.ChartFile, summaries, spec.Count); err != nil {
		if errors.Is(err, chart.ErrNoData) {
			output.Logger.Warn("No results to plot")
			return nil
		}
		output.Logger.Error("Failed to render chart", "path", cfg.ChartFile, "error", err)
		return nil
	}
	output.Logger.Info("Plot saved", "path", cfg.ChartFile)
	return nil
}

// RunScale executes the performance-core scaling sweep.
func RunScale(ctx context.Context, cfg *config.Config, runner CommandRunner) error {
	graphs, err := MatchGraphs(cfg.GraphsDir, cfg.Scaling.Patterns)
	if err != nil {
		return fmt.Errorf("failed to list graphs in %s: %w", cfg.GraphsDir, err)
	}
	if len(graphs) == 0 {
		output.Logger.Warn("No graphs found. Check the graphs path.", "dir", cfg.GraphsDir)
		return nil
	}

	if err := os.MkdirAll(cfg.ScalingTempDir, 0o755); err != nil {
		return fmt.Errorf("failed to create temp directory %s: %w", cfg.ScalingTempDir, err)
	}

	e, err := New(cfg, runner)
	if err != nil {
		return err
	}

	started := time.Now()
	res := e.Scale(ctx, graphs, cfg.Scaling.PerfCores)

	rec := model.ScalingRecord{
		Metadata: model.ScalingMetadata{Timestamp: started, PerfCores: cfg.Scaling.PerfCores},
		Results:  res,
	}
	if err := output.SaveScaling(cfg.ScalingFile, rec); err != nil {
		return fmt.Errorf("failed to save scaling results to %s: %w", cfg.ScalingFile, err)
	}
	output.Logger.Info("Results saved", "path", cfg.ScalingFile)
	if err := ctx.Err(); err != nil {
		output.Logger.Warn("Run interrupted, partial results saved", "path", cfg.ScalingFile)
		return fmt.Errorf("scaling interrupted: %w", err)
	}

	curves, skipped := stats.SpeedupCurves(res)
	for _, g := range skipped {
		output.Logger.Warn("Skipping plot (missing 1-thread baseline)", "graph", g)
	}
	if err := chart.Speedup(cfg.ScalingChart, curves, cfg.Scaling.PerfCores); err != nil {
		if errors.Is(err, chart.ErrNoData) {
			output.Logger.Warn("No results to plot")
			return nil
		}
		output.Logger.Error("Failed to render chart", "path", cfg.ScalingChart, "error", err)
		return nil
	}
	output.Logger.Info("Plot saved", "path", cfg.ScalingChart)
	return nil
}

// RunConvert converts the raw .gr graphs into matrix-market files.
func RunConvert(ctx context.Context, cfg *config.Config, runner CommandRunner) error {
	e, err := New(cfg, runner)
	if err != nil {
		return err
	}
	_, _, err = e.Converter(cfg.TempDir).ConvertDir(ctx, cfg.RawGraphsDir, cfg.GraphsDir)
	return err
}

func logComparison(res model.ComparisonResult, summaries map[string]map[string]model.Summary, runs int) {
	for _, g := range stats.SortedKeys(summaries) {
		cells := summaries[g]
		gr, gi := cells[model.BackendGunrock], cells[model.BackendGiraph]
		attrs := []any{
			"graph", g,
			"gunrock_mean_ms", gr.Mean,
			"gunrock_ok", fmt.Sprintf("%d/%d", gr.RunsSuccessful, runs),
			"giraph_mean_ms", gi.Mean,
			"giraph_ok", fmt.Sprintf("%d/%d", gi.RunsSuccessful, runs),
		}
		if p, ok := stats.Welch(res[g][model.BackendGunrock], res[g][model.BackendGiraph]); ok {
			attrs = append(attrs, "p_value", p)
		}
		output.Logger.Info("Summary", attrs...)
	}
}

func publishInflux(ctx context.Context, cfg *config.Config, runID string, rec model.ComparisonRecord) {
	if cfg.Influx.URL == "" {
		return
	}
	sink := output.NewInfluxSink(cfg.Influx.URL, cfg.Influx.Token, cfg.Influx.Org, cfg.Influx.Bucket, cfg.Influx.Measurement)
	defer sink.Close()

	var points []*write.Point
	for _, g := range stats.SortedKeys(rec.Results) {
		for _, backend := range stats.SortedKeys(rec.Results[g]) {
			s := rec.Results[g][backend]
			points = append(points, output.SummaryPoint(sink.Measurement(), runID, g, backend, rec.Metadata.CoreConfig, s, stats.CI95(s), rec.Metadata.Timestamp))
		}
	}
	if err := sink.Publish(ctx, points...); err != nil {
		output.Logger.Error("Failed to publish results to InfluxDB", "url", cfg.Influx.URL, "error", err)
		return
	}
	output.Logger.Info("Results published to InfluxDB", "points", len(points))
}

package engine

import (
	"context"
	"strconv"

	"github.com/daryltucker/boruvka-bench/internal/model"
	"github.com/daryltucker/boruvka-bench/internal/output"
	"github.com/daryltucker/boruvka-bench/internal/resource"
)

// Compare benchmarks both backends on every graph with a fixed processor
// set. A graph whose conversion fails keeps its Gunrock times and gets an
// empty Giraph cell.
func (e *Engine) Compare(ctx context.Context, graphs []model.GraphRef, spec model.ResourceSpec, runs int) model.ComparisonResult {
	gunrock, giraph := e.Gunrock(), e.Giraph()
	conv := e.Converter(e.Config.TempDir)
	res := make(model.ComparisonResult, len(graphs))

	for _, g := range graphs {
		if ctx.Err() != nil {
			output.Logger.Warn("Batch interrupted", "remaining_from", g.Name)
			break
		}
		output.Logger.Info("Benchmarking", "graph", g.Name)

		output.Logger.Info("Running backend", "backend", gunrock.ID(), "graph", g.Name, "runs", runs)
		res.Add(g.Name, gunrock.ID(), e.Trials.Run(ctx, gunrock, Invocation{Graph: g.Name, Input: g.Path, Spec: spec}, runs))

		edges, err := conv.Convert(ctx, g.Path)
		if err != nil {
			res.Add(g.Name, giraph.ID(), nil)
			continue
		}
		output.Logger.Info("Running backend",
			"backend", giraph.ID(),
			"graph", g.Name,
			"runs", runs,
			"cores", spec.Count,
			"mask", spec.Mask(),
		)
		res.Add(g.Name, giraph.ID(), e.Trials.Run(ctx, giraph, Invocation{Graph: g.Name, Input: edges, Spec: spec}, runs))
	}
	return res
}

// Scale runs Giraph once per thread count t = 1..len(perfCores), pinned
// to the first t performance cores. Failed runs leave no cell.
func (e *Engine) Scale(ctx context.Context, graphs []model.GraphRef, perfCores []int) model.ScalingResult {
	giraph := e.ScalingGiraph()
	conv := e.Converter(e.Config.ScalingTempDir)
	res := make(model.ScalingResult, len(graphs))

	output.Logger.Info("Testing scaling on performance cores", "cores", resource.FromIDs(perfCores).Mask())
	for _, g := range graphs {
		if ctx.Err() != nil {
			output.Logger.Warn("Batch interrupted", "remaining_from", g.Name)
			break
		}
		output.Logger.Info("Benchmarking", "graph", g.Name)

		edges, err := conv.Convert(ctx, g.Path)
		if err != nil {
			continue
		}

		cells := make(map[int]float64, len(perfCores))
		for t := 1; t <= len(perfCores); t++ {
			spec := resource.FromIDs(perfCores[:t])
			inv := Invocation{Graph: g.Name, Input: edges, Spec: spec, Tag: "t" + strconv.Itoa(t)}

			times := e.Trials.Run(ctx, giraph, inv, 1)
			if len(times) == 0 {
				output.Logger.Info("Scaling run failed", "graph", g.Name, "threads", t, "cores", spec.Mask())
				continue
			}
			cells[t] = times[0]
			output.Logger.Info("Scaling run done", "graph", g.Name, "threads", t, "cores", spec.Mask(), "ms", times[0])
		}
		res[g.Name] = cells
	}
	return res
}

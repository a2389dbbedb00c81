/*
PURPOSE:
  Core engine for driving the external MST backends.
  Wires configuration, process runner, extractors and affinity together.

REQUIREMENTS:
  User-specified:
  - Benchmark Gunrock and Giraph on every input graph.
  - Sweep Giraph thread counts over the performance cores.

  Implementation-discovered:
  - Tool locations and patterns come from config, never globals, so the
    engine can be built against a fake CommandRunner in tests.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go, internal/cli
  - Uses: internal/config, internal/model, internal/output

ERROR HANDLING:
  - New fails only on invalid patterns.

IMPLEMENTATION RULES:
  - Backends are built per mode; scaling uses its own JVM flags and
    scratch directory.

USAGE:
  e, err := engine.New(cfg, engine.ExecRunner{})
  res := e.Compare(ctx, graphs, spec)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/batch.go

MAINTENANCE:
  - Update when a new backend is added.
*/

package engine

import (
	"github.com/daryltucker/boruvka-bench/internal/config"
	"github.com/daryltucker/boruvka-bench/internal/model"
)

// Engine handles backend interactions.
type Engine struct {
	Config     *config.Config
	Runner     CommandRunner
	Affinity   Affinity
	Extractors Extractors
	Trials     *TrialRunner
}

// New creates a new Engine.
func New(cfg *config.Config, runner CommandRunner) (*Engine, error) {
	ex, err := NewExtractors(cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{
		Config:     cfg,
		Runner:     runner,
		Affinity:   LookupAffinity(cfg.AffinityCommand),
		Extractors: ex,
		Trials:     &TrialRunner{Timeout: cfg.TrialTimeout},
	}, nil
}

// Gunrock returns the GPU backend.
func (e *Engine) Gunrock() Backend {
	return NewGunrock(e.Config, e.Runner, e.Affinity, e.Extractors[model.BackendGunrock])
}

// Giraph returns the JVM backend used in comparison runs.
func (e *Engine) Giraph() Backend {
	return NewGiraph(e.Config, e.Runner, e.Affinity, e.Extractors[model.BackendGiraph], e.Config.Giraph.JVMFlags, e.Config.TempDir)
}

// ScalingGiraph returns the JVM backend used in thread sweeps.
func (e *Engine) ScalingGiraph() Backend {
	return NewGiraph(e.Config, e.Runner, e.Affinity, e.Extractors[model.BackendGiraph], e.Config.Scaling.JVMFlags, e.Config.ScalingTempDir)
}

// Converter returns an edge-list converter caching into dir.
func (e *Engine) Converter(dir string) *Converter {
	return &Converter{
		Runner:        e.Runner,
		Java:          e.Config.Giraph.Java,
		Jar:           e.Config.Giraph.Jar,
		EdgeListClass: e.Config.Giraph.EdgeListClass,
		GrToMtxClass:  e.Config.Giraph.GrToMtxClass,
		CacheDir:      dir,
	}
}

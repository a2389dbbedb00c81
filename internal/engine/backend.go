/*
PURPOSE:
  Adapters for the external MST engines. Each adapter knows how to build
  a command line for its engine and which extractor reads its timing.

REQUIREMENTS:
  User-specified:
  - Gunrock: single binary, one positional input path.
  - Giraph: JVM jar with --input/--output/--threads and GC tuning flags.
  - Thread count and affinity mask follow the resolved resource spec.

  Implementation-discovered:
  - Giraph refuses to write into an existing output directory, so the
    scratch directory is removed before every attempt.

ARCHITECTURE INTEGRATION:
  - Called by: trials.go
  - Uses: process.go, extract.go, affinity.go

ERROR HANDLING:
  - Launch failures propagate (wrapping ErrLaunch).
  - Non-zero exit returns *ExitError with the captured output.
  - Missing timing returns *ParseError (matches ErrNoMeasurement).

IMPLEMENTATION RULES:
  - New engines are added by writing a command builder and registering
    an extractor; the trial runner does not change.

USAGE:
  b := engine.NewGiraph(cfg, runner, affinity, extractor, flags, tempDir)
  ms, err := b.Execute(ctx, engine.Invocation{...})

SELF-HEALING INSTRUCTIONS:
  - If timings stop parsing, compare backend output with the configured
    patterns in internal/config.

RELATED FILES:
  - internal/engine/extract.go

MAINTENANCE:
  - Update when backend CLIs change.
*/

package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/daryltucker/boruvka-bench/internal/config"
	"github.com/daryltucker/boruvka-bench/internal/model"
)

// Invocation describes one trial of one backend.
type Invocation struct {
	Graph   string
	Input   string
	Spec    model.ResourceSpec
	Attempt int
	// Tag distinguishes scratch directories between sweeps, e.g. "t4".
	Tag string
}

// Backend runs one trial and returns the algorithm time in ms.
type Backend interface {
	ID() string
	Execute(ctx context.Context, inv Invocation) (float64, error)
}

// Adapter is a Backend driven by an external process.
type Adapter struct {
	id        string
	runner    CommandRunner
	extractor Extractor
	affinity  Affinity
	pin       bool
	command   func(inv Invocation, scratch string) []string
	scratch   func(inv Invocation) string
}

// ID returns the backend identifier used in results.
func (a *Adapter) ID() string { return a.id }

// Execute runs a single attempt.
func (a *Adapter) Execute(ctx context.Context, inv Invocation) (float64, error) {
	var scratch string
	if a.scratch != nil {
		scratch = a.scratch(inv)
		if err := os.RemoveAll(scratch); err != nil {
			return 0, fmt.Errorf("clearing scratch dir %s: %w", scratch, err)
		}
	}

	argv := a.command(inv, scratch)
	if r, ok := a.runner.(PathResolver); ok {
		if _, err := r.LookPath(argv[0]); err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrLaunch, argv[0], err)
		}
	}
	if a.pin {
		argv = a.affinity.Wrap(inv.Spec, argv)
	}

	res, err := a.runner.Run(ctx, argv)
	if err != nil {
		return 0, err
	}

	out := res.Combined()
	if res.ExitCode != 0 {
		return 0, &ExitError{Argv: argv, Code: res.ExitCode, Output: out}
	}

	ms, ok := a.extractor.Extract(out)
	if !ok {
		return 0, &ParseError{Backend: a.id, Output: out}
	}
	return ms, nil
}

// NewGunrock builds the GPU backend adapter.
func NewGunrock(cfg *config.Config, runner CommandRunner, affinity Affinity, ex Extractor) *Adapter {
	bin := cfg.Gunrock.Binary
	return &Adapter{
		id:        model.BackendGunrock,
		runner:    runner,
		extractor: ex,
		affinity:  affinity,
		pin:       cfg.Gunrock.PinCPUs,
		command: func(inv Invocation, _ string) []string {
			return []string{bin, inv.Input}
		},
	}
}

// NewGiraph builds the JVM backend adapter. jvmFlags follow the
// ActiveProcessorCount flag; scratch output goes under tempDir.
func NewGiraph(cfg *config.Config, runner CommandRunner, affinity Affinity, ex Extractor, jvmFlags []string, tempDir string) *Adapter {
	java, jar := cfg.Giraph.Java, cfg.Giraph.Jar
	flags := append([]string(nil), jvmFlags...)
	return &Adapter{
		id:        model.BackendGiraph,
		runner:    runner,
		extractor: ex,
		affinity:  affinity,
		pin:       cfg.Giraph.PinCPUs,
		scratch: func(inv Invocation) string {
			name := "giraph_out_" + inv.Graph
			if inv.Tag != "" {
				name += "_" + inv.Tag
			}
			return filepath.Join(tempDir, name+"_"+strconv.Itoa(inv.Attempt))
		},
		command: func(inv Invocation, scratch string) []string {
			threads := strconv.Itoa(inv.Spec.Count)
			argv := []string{java, "-XX:ActiveProcessorCount=" + threads}
			argv = append(argv, flags...)
			return append(argv,
				"-jar", jar,
				"--input", inv.Input,
				"--output", scratch,
				"--threads", threads,
			)
		},
	}
}

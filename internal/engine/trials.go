package engine

import (
	"context"
	"errors"
	"time"

	"github.com/daryltucker/boruvka-bench/internal/model"
	"github.com/daryltucker/boruvka-bench/internal/output"
)

// TrialSink receives every attempt, successful or not.
type TrialSink interface {
	Record(m model.TrialMeasurement) error
}

// TrialRunner repeats a backend invocation and keeps the successes.
type TrialRunner struct {
	// Timeout bounds each attempt; zero means no bound.
	Timeout time.Duration
	Sink    TrialSink
}

// Run performs n independent attempts and returns successful times in
// attempt order. A failed attempt is logged and skipped. A launch failure
// stops the remaining attempts for this backend and input only.
func (r *TrialRunner) Run(ctx context.Context, b Backend, inv Invocation, n int) []float64 {
	times := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			output.Logger.Warn("Run interrupted", "backend", b.ID(), "graph", inv.Graph, "completed", i)
			break
		}

		inv.Attempt = i
		ms, err := r.attempt(ctx, b, inv)
		m := model.TrialMeasurement{
			Backend: b.ID(),
			Graph:   inv.Graph,
			Attempt: i + 1,
			Cores:   inv.Spec.Mask(),
		}
		if err == nil {
			m.ElapsedMs = ms
			m.Succeeded = true
			times = append(times, ms)
			output.Logger.Debug("Trial done", "backend", b.ID(), "graph", inv.Graph, "run", i+1, "ms", ms)
		} else {
			m.Err = err.Error()
			logTrialFailure(b.ID(), inv, i+1, err)
		}
		r.record(m)

		if errors.Is(err, ErrLaunch) {
			return times
		}
	}
	return times
}

func (r *TrialRunner) attempt(ctx context.Context, b Backend, inv Invocation) (float64, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	return b.Execute(ctx, inv)
}

func (r *TrialRunner) record(m model.TrialMeasurement) {
	if r.Sink == nil {
		return
	}
	if err := r.Sink.Record(m); err != nil {
		output.Logger.Error("Failed to record trial", "error", err)
	}
}

func logTrialFailure(backend string, inv Invocation, run int, err error) {
	var (
		exitErr  *ExitError
		parseErr *ParseError
	)
	switch {
	case errors.Is(err, ErrLaunch):
		output.Logger.Error("Failed to launch process", "backend", backend, "graph", inv.Graph, "run", run, "error", err)
	case errors.As(err, &exitErr):
		output.Logger.Error("Backend failed",
			"backend", backend,
			"graph", inv.Graph,
			"run", run,
			"status", exitErr.Code,
			"command", exitErr.Argv,
			"output", Truncate(exitErr.Output),
		)
	case errors.As(err, &parseErr):
		output.Logger.Warn("Could not parse time",
			"backend", backend,
			"graph", inv.Graph,
			"run", run,
			"output", Truncate(parseErr.Output),
		)
	case errors.Is(err, context.DeadlineExceeded):
		output.Logger.Error("Trial timed out", "backend", backend, "graph", inv.Graph, "run", run)
	default:
		output.Logger.Error("Trial failed", "backend", backend, "graph", inv.Graph, "run", run, "error", err)
	}
}

package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daryltucker/boruvka-bench/internal/config"
)

// fakeRunner records every command and answers with respond.
type fakeRunner struct {
	mu      sync.Mutex
	calls   [][]string
	respond func(argv []string) (*ProcessResult, error)
}

func (f *fakeRunner) Run(_ context.Context, argv []string) (*ProcessResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string(nil), argv...))
	f.mu.Unlock()
	return f.respond(argv)
}

// callsWith returns the recorded commands containing arg.
func (f *fakeRunner) callsWith(arg string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out [][]string
	for _, c := range f.calls {
		for _, a := range c {
			if a == arg {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func ok(stdout string) (*ProcessResult, error) {
	return &ProcessResult{Stdout: []byte(stdout)}, nil
}

func failed(code int, stderr string) (*ProcessResult, error) {
	return &ProcessResult{Stderr: []byte(stderr), ExitCode: code}, nil
}

func argAfter(argv []string, flag string) string {
	for i := 0; i < len(argv)-1; i++ {
		if argv[i] == flag {
			return argv[i+1]
		}
	}
	return ""
}

func isConverter(argv []string) bool {
	return len(argv) > 1 && argv[1] == "-cp"
}

func isGiraph(argv []string) bool {
	for _, a := range argv {
		if a == "-jar" {
			return true
		}
	}
	return false
}

// touchOutput mimics a converter writing its --output file.
func touchOutput(t *testing.T, argv []string) {
	t.Helper()
	out := argAfter(argv, "--output")
	require.NotEmpty(t, out)
	require.NoError(t, os.MkdirAll(filepath.Dir(out), 0o755))
	require.NoError(t, os.WriteFile(out, []byte("0 1 1.0\n"), 0o644))
}

func supersteps(ms ...string) string {
	var b strings.Builder
	for i, v := range ms {
		fmt.Fprintf(&b, "INFO Superstep %d BoruvkaMSTComputation (ms)=%s\n", i, v)
	}
	return b.String()
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.GraphsDir = filepath.Join(dir, "graphs_mtx")
	cfg.RawGraphsDir = filepath.Join(dir, "graphs_raw")
	cfg.TempDir = filepath.Join(dir, "tmp")
	cfg.ScalingTempDir = filepath.Join(dir, "tmp_scaling")
	cfg.ResultsFile = filepath.Join(dir, "benchmark_results.json")
	cfg.TrialLogFile = filepath.Join(dir, "benchmark_trials.csv")
	cfg.ChartFile = filepath.Join(dir, "benchmark_results.png")
	cfg.ScalingFile = filepath.Join(dir, "scaling_results.json")
	cfg.ScalingChart = filepath.Join(dir, "perf_core_scaling_results.png")
	cfg.AffinityCommand = ""
	cfg.Runs = 3
	require.NoError(t, os.MkdirAll(cfg.GraphsDir, 0o755))
	return cfg
}

func writeGraphs(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("%%MatrixMarket\n"), 0o644))
	}
}

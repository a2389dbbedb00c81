package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "./graphs_mtx", cfg.GraphsDir)
	assert.Equal(t, 5, cfg.Runs)
	assert.Equal(t, []int{0, 1, 3, 6, 8, 10}, cfg.Scaling.PerfCores)
}

func TestLoad_MissingDefaultsFallBack(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	body := `
runs: 3
cores: "0,2"
trial_timeout: 90s
gunrock:
  binary: /opt/gunrock/boruvka
scaling:
  perf_cores: [0, 2]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Runs)
	assert.Equal(t, "0,2", cfg.Cores)
	assert.Equal(t, 90*time.Second, cfg.TrialTimeout)
	assert.Equal(t, "/opt/gunrock/boruvka", cfg.Gunrock.Binary)
	assert.Equal(t, []int{0, 2}, cfg.Scaling.PerfCores)
	// untouched fields keep defaults
	assert.Equal(t, DefaultConfig().Giraph.Jar, cfg.Giraph.Jar)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero runs", "runs: 0\n"},
		{"bad pattern", "gunrock:\n  time_pattern: \"(\"\n"},
		{"empty perf cores", "scaling:\n  perf_cores: []\n"},
		{"bad influx url", "influx:\n  url: \"not a url\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bench.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewValidator_RegexpTag(t *testing.T) {
	v := newValidator()
	type patterned struct {
		Pattern string `validate:"regexp"`
	}
	assert.NoError(t, v.Struct(patterned{Pattern: `(\d+)ms`}))
	assert.Error(t, v.Struct(patterned{Pattern: `(`}))
}

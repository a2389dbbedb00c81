package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/boruvka-bench/internal/model"
	"github.com/daryltucker/boruvka-bench/internal/stats"
)

func TestComparison_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.png")
	sums := map[string]map[string]model.Summary{
		"USA-road-d.NY.mtx": {
			model.BackendGunrock: stats.Summarize([]float64{12.5, 13, 12.8}),
			model.BackendGiraph:  stats.Summarize([]float64{950, 1010, 990}),
		},
		"USA-road-d.CAL.mtx": {
			model.BackendGunrock: stats.Summarize([]float64{40, 41}),
			model.BackendGiraph:  stats.Summarize(nil),
		},
	}

	require.NoError(t, Comparison(path, sums, 6))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestComparison_NoData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.png")

	assert.ErrorIs(t, Comparison(path, nil, 4), ErrNoData)

	empty := map[string]map[string]model.Summary{
		"g.mtx": {model.BackendGunrock: stats.Summarize(nil)},
	}
	assert.ErrorIs(t, Comparison(path, empty, 4), ErrNoData)
	assert.NoFileExists(t, path)
}

func TestSpeedup_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaling.png")
	curves, skipped := stats.SpeedupCurves(model.ScalingResult{
		"CAL.mtx": {1: 1200, 2: 640, 3: 450, 4: 360, 5: 300, 6: 260},
		"NE.mtx":  {1: 800, 2: 420, 4: 230},
		"NW.mtx":  {2: 400},
	})
	require.Equal(t, []string{"NW.mtx"}, skipped)

	require.NoError(t, Speedup(path, curves, []int{0, 1, 3, 6, 8, 10}))
	assert.FileExists(t, path)
}

func TestSpeedup_NoData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaling.png")
	assert.ErrorIs(t, Speedup(path, nil, []int{0, 1}), ErrNoData)
	assert.NoFileExists(t, path)
}

func TestClampLow(t *testing.T) {
	assert.Equal(t, 2.0, clampLow(10, 2))
	assert.Less(t, clampLow(10, 15), 10.0)
	assert.Positive(t, 10-clampLow(10, 15))
}

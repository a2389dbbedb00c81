package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/boruvka-bench/internal/model"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0.0, s.Mean)
	assert.Equal(t, 0.0, s.Std)
	assert.Equal(t, 0, s.RunsSuccessful)
	assert.NotNil(t, s.RawTimes)
	assert.Equal(t, 0.0, CI95(s))
}

func TestSummarize_Values(t *testing.T) {
	s := Summarize([]float64{10, 20, 30})
	assert.Equal(t, 20.0, s.Mean)
	assert.Equal(t, 3, s.RunsSuccessful)
	// population std of {10,20,30}
	assert.InDelta(t, math.Sqrt(200.0/3.0), s.Std, 1e-9)
	assert.Equal(t, []float64{10, 20, 30}, s.RawTimes)
}

func TestSummarize_Single(t *testing.T) {
	s := Summarize([]float64{42})
	assert.Equal(t, 42.0, s.Mean)
	assert.Equal(t, 0.0, s.Std)
	assert.False(t, math.IsNaN(CI95(s)))
}

func TestSummarize_DoesNotAliasInput(t *testing.T) {
	in := []float64{3, 1, 2}
	s := Summarize(in)
	s.RawTimes[0] = 99
	assert.Equal(t, 3.0, in[0])
}

func TestCI95(t *testing.T) {
	s := model.Summary{Std: 4, RunsSuccessful: 4}
	assert.InDelta(t, 1.96*4/2, CI95(s), 1e-12)
}

func TestSpeedup(t *testing.T) {
	assert.Equal(t, 2.0, Speedup(100, 50))
	assert.Equal(t, 0.0, Speedup(100, 0))
}

func TestSpeedupCurve(t *testing.T) {
	points, ok := SpeedupCurve(map[int]float64{1: 100, 2: 50, 4: 25})
	require.True(t, ok)
	require.Len(t, points, 3)
	assert.Equal(t, Point{Threads: 2, TimeMs: 50, Speedup: 2}, points[1])
	assert.Equal(t, 4.0, points[2].Speedup)
}

func TestSpeedupCurve_GapsAndBaseline(t *testing.T) {
	points, ok := SpeedupCurve(map[int]float64{1: 90, 3: 30})
	require.True(t, ok)
	require.Len(t, points, 2)
	assert.Equal(t, 3, points[1].Threads)

	_, ok = SpeedupCurve(map[int]float64{2: 50, 3: 40})
	assert.False(t, ok)
}

func TestSpeedupCurves_SkipsMissingBaseline(t *testing.T) {
	curves, skipped := SpeedupCurves(model.ScalingResult{
		"b.mtx": {1: 10, 2: 5},
		"a.mtx": {2: 5},
		"c.mtx": {},
	})
	require.Len(t, curves, 1)
	assert.Equal(t, "b.mtx", curves[0].Graph)
	assert.Equal(t, []string{"a.mtx", "c.mtx"}, skipped)
}

func TestSummarizeAll(t *testing.T) {
	res := model.ComparisonResult{}
	res.Add("g.mtx", model.BackendGunrock, []float64{1, 3})
	res.Add("g.mtx", model.BackendGiraph, nil)

	sums := SummarizeAll(res)
	assert.Equal(t, 2.0, sums["g.mtx"][model.BackendGunrock].Mean)
	assert.Equal(t, 0, sums["g.mtx"][model.BackendGiraph].RunsSuccessful)
}

func TestWelch(t *testing.T) {
	_, ok := Welch([]float64{1}, []float64{1, 2})
	assert.False(t, ok)

	p, ok := Welch([]float64{10, 11, 10.5, 10.2}, []float64{100, 101, 99, 100.5})
	require.True(t, ok)
	assert.Less(t, p, 0.05)
}

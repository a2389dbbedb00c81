package stats

import (
	"sort"

	"github.com/daryltucker/boruvka-bench/internal/model"
)

// Speedup is baseline/t, or 0 when t is not positive.
func Speedup(baselineMs, timeMs float64) float64 {
	if timeMs > 0 {
		return baselineMs / timeMs
	}
	return 0
}

// Point is one measured thread count on a speedup curve.
type Point struct {
	Threads int
	TimeMs  float64
	Speedup float64
}

// Curve is the speedup series for one graph.
type Curve struct {
	Graph  string
	Points []Point
}

// SpeedupCurve converts thread->time cells into speedup points ordered by
// thread count. Thread counts without a measurement are left out so they
// show up as gaps. ok is false when the single-thread baseline is missing.
func SpeedupCurve(cells map[int]float64) (points []Point, ok bool) {
	baseline, found := cells[1]
	if !found || baseline <= 0 {
		return nil, false
	}

	threads := make([]int, 0, len(cells))
	for t := range cells {
		threads = append(threads, t)
	}
	sort.Ints(threads)

	for _, t := range threads {
		ms := cells[t]
		if ms <= 0 {
			continue
		}
		points = append(points, Point{Threads: t, TimeMs: ms, Speedup: Speedup(baseline, ms)})
	}
	return points, true
}

// SpeedupCurves builds a curve for every graph with a baseline, in graph
// order, and returns the names of graphs that had to be skipped.
func SpeedupCurves(res model.ScalingResult) (curves []Curve, skipped []string) {
	for _, graph := range SortedKeys(res) {
		points, ok := SpeedupCurve(res[graph])
		if !ok {
			skipped = append(skipped, graph)
			continue
		}
		curves = append(curves, Curve{Graph: graph, Points: points})
	}
	return curves, skipped
}

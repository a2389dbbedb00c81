// Package stats reduces raw benchmark measurements into summaries,
// confidence intervals and speedup curves.
package stats

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/daryltucker/boruvka-bench/internal/model"
)

// z95 is the two-sided normal quantile used for the 95% error bars.
const z95 = 1.96

// Summarize reduces successful trial times to a Summary. Std is the
// population standard deviation. An empty input yields zeros.
func Summarize(times []float64) model.Summary {
	raw := make([]float64, len(times))
	copy(raw, times)

	s := model.Summary{RawTimes: raw, RunsSuccessful: len(raw)}
	if len(raw) == 0 {
		return s
	}
	s.Mean = stats.Mean(raw)
	s.Std = popStdDev(raw)
	return s
}

// popStdDev rescales go-moremath's sample deviation to the population one.
func popStdDev(xs []float64) float64 {
	n := float64(len(xs))
	if len(xs) < 2 {
		return 0
	}
	return stats.StdDev(xs) * math.Sqrt((n-1)/n)
}

// CI95 is the half-width of the 95% confidence interval of the mean.
func CI95(s model.Summary) float64 {
	if s.RunsSuccessful == 0 {
		return 0
	}
	return z95 * s.Std / math.Sqrt(float64(s.RunsSuccessful))
}

// SummarizeAll reduces every cell of a comparison run.
func SummarizeAll(res model.ComparisonResult) map[string]map[string]model.Summary {
	out := make(map[string]map[string]model.Summary, len(res))
	for graph, cells := range res {
		sums := make(map[string]model.Summary, len(cells))
		for backend, times := range cells {
			sums[backend] = Summarize(times)
		}
		out[graph] = sums
	}
	return out
}

// Welch reports the p-value of a two-sample Welch t-test between two
// backends' times. ok is false when either side has fewer than two
// measurements or the test cannot be computed.
func Welch(a, b []float64) (p float64, ok bool) {
	if len(a) < 2 || len(b) < 2 {
		return 0, false
	}
	res, err := stats.TwoSampleWelchTTest(stats.Sample{Xs: a}, stats.Sample{Xs: b}, stats.LocationDiffers)
	if err != nil || math.IsNaN(res.P) {
		return 0, false
	}
	return res.P, true
}

// SortedKeys returns the keys of m in order.
func SortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package engine

import (
	"path/filepath"
	"sort"

	"github.com/daryltucker/boruvka-bench/internal/model"
	"github.com/daryltucker/boruvka-bench/internal/output"
)

// mtxPattern matches matrix-market files regardless of extension case.
const mtxPattern = "*.[mM][tT][xX]"

// FindGraphs lists the matrix-market files in dir, sorted.
func FindGraphs(dir string) ([]model.GraphRef, error) {
	matches, err := filepath.Glob(filepath.Join(dir, mtxPattern))
	if err != nil {
		return nil, err
	}
	return toRefs(matches), nil
}

// MatchGraphs lists files in dir matching any of patterns, deduplicated
// and sorted. Patterns without a match are reported as warnings.
func MatchGraphs(dir string, patterns []string) ([]model.GraphRef, error) {
	var all []string
	for _, p := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, p))
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			output.Logger.Warn("No files found for pattern", "pattern", p, "dir", dir)
			continue
		}
		all = append(all, matches...)
	}
	return toRefs(all), nil
}

func toRefs(paths []string) []model.GraphRef {
	seen := make(map[string]bool, len(paths))
	refs := make([]model.GraphRef, 0, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		refs = append(refs, model.GraphRef{Path: p, Name: filepath.Base(p)})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Path < refs[j].Path })
	return refs
}

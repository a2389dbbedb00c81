package engine

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/daryltucker/boruvka-bench/internal/config"
	"github.com/daryltucker/boruvka-bench/internal/model"
)

// Extractor pulls a single algorithm time (ms) out of backend output.
type Extractor interface {
	Extract(output string) (ms float64, ok bool)
}

// ScalarExtractor reads the first capture group of the first match.
type ScalarExtractor struct {
	Pattern *regexp.Regexp
}

func (e ScalarExtractor) Extract(output string) (float64, bool) {
	m := e.Pattern.FindStringSubmatch(output)
	if len(m) < 2 {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SumExtractor adds up the first capture group of every match, e.g. the
// per-superstep durations of a distributed run.
type SumExtractor struct {
	Pattern *regexp.Regexp
}

func (e SumExtractor) Extract(output string) (float64, bool) {
	matches := e.Pattern.FindAllStringSubmatch(output, -1)
	var total float64
	found := false
	for _, m := range matches {
		if len(m) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		total += v
		found = true
	}
	return total, found
}

// Extractors is the per-backend extractor registry.
type Extractors map[string]Extractor

// NewExtractors compiles the configured timing patterns.
func NewExtractors(cfg *config.Config) (Extractors, error) {
	gunrock, err := regexp.Compile(cfg.Gunrock.TimePattern)
	if err != nil {
		return nil, fmt.Errorf("gunrock time pattern: %w", err)
	}
	giraph, err := regexp.Compile(cfg.Giraph.SuperstepRegexp)
	if err != nil {
		return nil, fmt.Errorf("giraph superstep pattern: %w", err)
	}
	return Extractors{
		model.BackendGunrock: ScalarExtractor{Pattern: gunrock},
		model.BackendGiraph:  SumExtractor{Pattern: giraph},
	}, nil
}

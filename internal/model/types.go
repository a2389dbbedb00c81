/*
PURPOSE:
  Defines the core data structures shared by the benchmark harness.
  These models describe processor sets, benchmark inputs, per-attempt
  measurements and the aggregated summaries that get persisted.

REQUIREMENTS:
  User-specified:
  - Record algorithm time per trial, per graph, per backend.
  - Summaries carry raw times, mean, std and successful run count.

  Implementation-discovered:
  - JSON tags must match the published results schema exactly.
  - Missing data must never serialize as null arrays.

ARCHITECTURE INTEGRATION:
  - Used by: internal/resource, internal/engine, internal/stats,
    internal/output, internal/chart
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Times are float64 milliseconds, exactly as the backends report them.

USAGE:
  spec := model.ResourceSpec{Count: 2, ProcessorIDs: []int{0, 1}}

SELF-HEALING INSTRUCTIONS:
  - If the results schema changes, update the JSON tags here first.

RELATED FILES:
  - internal/output/json.go
  - internal/output/csv.go

MAINTENANCE:
  - Update when adding new metrics to capture.
*/

package model

import (
	"strconv"
	"strings"
	"time"
)

// Backend identifiers used as keys in results and extractor registries.
const (
	BackendGunrock = "gunrock"
	BackendGiraph  = "giraph"
)

// ResourceSpec is the ordered set of logical processors a backend may use.
type ResourceSpec struct {
	Count        int
	ProcessorIDs []int
}

// Mask renders the processor IDs as a taskset list, e.g. "0,1,3".
func (r ResourceSpec) Mask() string {
	parts := make([]string, len(r.ProcessorIDs))
	for i, id := range r.ProcessorIDs {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// CoreConfig returns the persisted form of the spec.
func (r ResourceSpec) CoreConfig() CoreConfig {
	return CoreConfig{Count: r.Count, Mask: r.Mask()}
}

// CoreConfig is how a ResourceSpec appears in the results record.
type CoreConfig struct {
	Count int    `json:"count"`
	Mask  string `json:"mask"`
}

// GraphRef identifies one benchmark input.
type GraphRef struct {
	Path string
	Name string
}

// TrialMeasurement is the outcome of a single timed attempt.
type TrialMeasurement struct {
	Backend   string
	Graph     string
	Attempt   int
	Cores     string
	ElapsedMs float64
	Succeeded bool
	Err       string
}

// ComparisonResult maps graph name -> backend id -> successful times (ms).
type ComparisonResult map[string]map[string][]float64

// Add records the successful times of one graph/backend cell.
func (c ComparisonResult) Add(graph, backend string, times []float64) {
	cells, ok := c[graph]
	if !ok {
		cells = make(map[string][]float64)
		c[graph] = cells
	}
	if times == nil {
		times = []float64{}
	}
	cells[backend] = times
}

// ScalingResult maps graph name -> thread count -> time (ms).
// A missing thread count means that run failed.
type ScalingResult map[string]map[int]float64

// Summary is the reduced form of one backend's trials on one graph.
type Summary struct {
	RawTimes       []float64 `json:"raw_times"`
	Mean           float64   `json:"mean"`
	Std            float64   `json:"std"`
	RunsSuccessful int       `json:"runs_successful"`
}

// RunMetadata describes a comparison run.
type RunMetadata struct {
	Timestamp     time.Time  `json:"timestamp"`
	RunsPerGraph  int        `json:"runs_per_graph"`
	GraphsFolder  string     `json:"graphs_folder"`
	CoreConfig    CoreConfig `json:"core_config"`
	GunrockBinary string     `json:"gunrock_binary"`
	GiraphJar     string     `json:"giraph_jar"`
}

// ComparisonRecord is the persisted results document.
type ComparisonRecord struct {
	Metadata RunMetadata                   `json:"metadata"`
	Results  map[string]map[string]Summary `json:"results"`
}

// ScalingMetadata describes a scaling run.
type ScalingMetadata struct {
	Timestamp time.Time `json:"timestamp"`
	PerfCores []int     `json:"perf_cores"`
}

// ScalingRecord is the persisted scaling document.
type ScalingRecord struct {
	Metadata ScalingMetadata `json:"metadata"`
	Results  ScalingResult   `json:"results"`
}

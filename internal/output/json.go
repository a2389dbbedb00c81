/*
PURPOSE:
  Persists benchmark results as a single JSON document.

REQUIREMENTS:
  User-specified:
  - One record per run at a fixed path, overwritten each run.
  - Schema: metadata + results[graph][backend]{raw_times, mean, std, runs_successful}.

  Implementation-discovered:
  - raw_times must be [] rather than null for failed cells.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Consumes: internal/model records

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Write to a temp file in the same directory and rename, so a crash
    never leaves a half-written record.

USAGE:
  err := output.SaveComparison("benchmark_results.json", rec)

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Keep in sync with the published schema.
*/

package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/daryltucker/boruvka-bench/internal/model"
)

// SaveComparison writes a comparison record to path, replacing any
// previous record.
func SaveComparison(path string, rec model.ComparisonRecord) error {
	for _, cells := range rec.Results {
		for backend, s := range cells {
			if s.RawTimes == nil {
				s.RawTimes = []float64{}
				cells[backend] = s
			}
		}
	}
	return writeJSON(path, rec)
}

// LoadComparison reads a record written by SaveComparison.
func LoadComparison(path string) (*model.ComparisonRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec model.ComparisonRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse results %s: %w", path, err)
	}
	return &rec, nil
}

// SaveScaling writes a scaling record to path.
func SaveScaling(path string, rec model.ScalingRecord) error {
	return writeJSON(path, rec)
}

// LoadScaling reads a record written by SaveScaling.
func LoadScaling(path string) (*model.ScalingRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec model.ScalingRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse scaling results %s: %w", path, err)
	}
	return &rec, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

/*
PURPOSE:
  Writes every trial attempt to a CSV file as it happens.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Keep a trace of failed attempts, not just the successes.

  Implementation-discovered:
  - A crashed or interrupted batch should still leave the attempts that
    ran on disk.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (as a TrialSink)
  - Consumes: internal/model.TrialMeasurement

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).

USAGE:
  w, err := output.NewCSVWriter("benchmark_trials.csv")
  w.Record(m)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If CSV format changes, update header and record conversion.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update Record() mapping when TrialMeasurement changes.
*/

package output

import (
	"encoding/csv"
	"os"
	"strconv"
	"sync"

	"github.com/daryltucker/boruvka-bench/internal/model"
)

// CSVWriter handles writing trial attempts to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	header := []string{"graph", "backend", "attempt", "cores", "elapsed_ms", "succeeded", "error"}
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Record writes a single attempt to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Record(m model.TrialMeasurement) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	elapsed := ""
	if m.Succeeded {
		elapsed = strconv.FormatFloat(m.ElapsedMs, 'f', -1, 64)
	}
	record := []string{
		m.Graph,
		m.Backend,
		strconv.Itoa(m.Attempt),
		m.Cores,
		elapsed,
		strconv.FormatBool(m.Succeeded),
		m.Err,
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}

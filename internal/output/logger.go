/*
PURPOSE:
  Provides a structured logger for boruvka-bench.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - Failures must be visible immediately while a long batch runs.

  Implementation-discovered:
  - Interactive runs read better as text; piped runs are easier to
    post-process as JSON.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - Unknown formats are rejected by NewLogger.

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).

USAGE:
  output.Logger.Info("message", "key", "value")

SELF-HEALING INSTRUCTIONS:
  - Ensure Go 1.21+ is used.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - None.
*/

package output

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}

// NewLogger builds a logger writing to w. format is "text", "json" or ""
// (text on a terminal, JSON otherwise).
func NewLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	if format == "" {
		format = "json"
		if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			format = "text"
		}
	}

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
}

/*
PURPOSE:
  Runs external backend and converter processes and captures their output.

REQUIREMENTS:
  User-specified:
  - Capture stdout and stderr for timing extraction.
  - A missing executable must be distinguishable from a failing one.

  Implementation-discovered:
  - A timed out JVM leaves worker children behind unless the whole
    process group is killed.

ARCHITECTURE INTEGRATION:
  - Used by: backend.go, convert.go
  - Replaced by fakes in tests through the CommandRunner interface.

ERROR HANDLING:
  - Start failures wrap ErrLaunch.
  - Non-zero exits are NOT errors here; callers inspect ExitCode.
  - Context cancellation is returned as an error wrapping ctx.Err().

IMPLEMENTATION RULES:
  - One process at a time; Run blocks until exit.

USAGE:
  res, err := engine.ExecRunner{}.Run(ctx, []string{"java", "-version"})

SELF-HEALING INSTRUCTIONS:
  - If children survive cancellation, check setProcessGroup for this OS.

RELATED FILES:
  - internal/engine/proc_unix.go

MAINTENANCE:
  - None.
*/

package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ProcessResult holds the captured output of a finished process.
type ProcessResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Combined joins stdout and stderr the way the timing patterns expect.
func (r *ProcessResult) Combined() string {
	return string(r.Stdout) + "\n" + string(r.Stderr)
}

// CommandRunner launches a process and waits for it.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) (*ProcessResult, error)
}

// PathResolver is implemented by runners that can check an executable
// exists before it is started behind a wrapper such as taskset.
type PathResolver interface {
	LookPath(name string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Dir is the working directory; empty means the current one.
	Dir string
}

// LookPath resolves name the way Run would.
func (r ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes argv and blocks until it exits or ctx is done.
func (r ExecRunner) Run(ctx context.Context, argv []string) (*ProcessResult, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: empty command", ErrLaunch)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.Dir
	setProcessGroup(cmd)
	cmd.WaitDelay = 5 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLaunch, argv[0], err)
	}

	err := cmd.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%s: %w", argv[0], ctxErr)
	}

	res := &ProcessResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("waiting for %s: %w", argv[0], err)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	return res, nil
}

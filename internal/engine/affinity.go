package engine

import (
	"os/exec"

	"github.com/daryltucker/boruvka-bench/internal/model"
)

// Affinity restricts a child process to a processor set by prefixing the
// command with an affinity tool such as taskset.
type Affinity struct {
	// Tool is the resolved tool path; empty disables pinning.
	Tool string
}

// LookupAffinity finds name on PATH. A missing tool yields a no-op Affinity.
func LookupAffinity(name string) Affinity {
	if name == "" {
		return Affinity{}
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return Affinity{}
	}
	return Affinity{Tool: path}
}

// Wrap returns argv pinned to spec's processors.
func (a Affinity) Wrap(spec model.ResourceSpec, argv []string) []string {
	if a.Tool == "" || len(spec.ProcessorIDs) == 0 {
		return argv
	}
	out := make([]string, 0, len(argv)+3)
	out = append(out, a.Tool, "-c", spec.Mask())
	return append(out, argv...)
}

//go:build linux

package resource

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// processorCount reports the processors this process may run on.
func processorCount() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err == nil {
		if n := set.Count(); n > 0 {
			return n
		}
	}
	return runtime.NumCPU()
}

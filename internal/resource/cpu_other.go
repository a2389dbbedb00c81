//go:build !linux

package resource

import "runtime"

func processorCount() int {
	return runtime.NumCPU()
}

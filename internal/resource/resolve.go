// Package resource turns a user supplied processor specification into the
// ordered set of logical processors a backend is pinned to.
package resource

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/daryltucker/boruvka-bench/internal/model"
)

// ErrInvalidResourceSpec is returned when a core specification cannot be
// interpreted. It is fatal for a run.
var ErrInvalidResourceSpec = errors.New("invalid core specification")

// fallbackCount is used when processor detection fails.
const fallbackCount = 4

// Resolve interprets raw as one of:
//
//	""          all detected logical processors
//	"0,1,3"     explicit ordered processor IDs
//	"6"         the first 6 processors
//
// Explicit lists are kept verbatim, duplicates included.
func Resolve(raw string) (model.ResourceSpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return firstN(detectCount()), nil
	}

	if strings.Contains(raw, ",") {
		var ids []int
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.Atoi(part)
			if err != nil || id < 0 {
				return model.ResourceSpec{}, fmt.Errorf("%w: %q is not a processor id", ErrInvalidResourceSpec, part)
			}
			ids = append(ids, id)
		}
		if len(ids) == 0 {
			return model.ResourceSpec{}, fmt.Errorf("%w: %q lists no processors", ErrInvalidResourceSpec, raw)
		}
		return model.ResourceSpec{Count: len(ids), ProcessorIDs: ids}, nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return model.ResourceSpec{}, fmt.Errorf("%w: %q", ErrInvalidResourceSpec, raw)
	}
	if count <= 0 {
		return model.ResourceSpec{}, fmt.Errorf("%w: core count must be positive, got %d", ErrInvalidResourceSpec, count)
	}
	return firstN(count), nil
}

// FromIDs builds a spec over the given processors, in order.
func FromIDs(ids []int) model.ResourceSpec {
	out := make([]int, len(ids))
	copy(out, ids)
	return model.ResourceSpec{Count: len(out), ProcessorIDs: out}
}

func firstN(n int) model.ResourceSpec {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return model.ResourceSpec{Count: n, ProcessorIDs: ids}
}

func detectCount() int {
	if n := processorCount(); n > 0 {
		return n
	}
	return fallbackCount
}

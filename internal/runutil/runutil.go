// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"
)

// EffectiveThreads maps the --threads value to a worker count (0 = all CPUs).
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// SplitThreads divides the thread budget between pipeline workers (one input
// each) and perimeter walkers inside each locate call. With a single input
// every thread goes to the locator.
func SplitThreads(threads, inputs int) (pipelineWorkers, locateWorkers int) {
	if threads < 1 {
		threads = 1
	}
	if inputs < 1 {
		inputs = 1
	}
	pipelineWorkers = min(threads, inputs)
	locateWorkers = threads / pipelineWorkers
	return pipelineWorkers, locateWorkers
}

// ValidateSearch checks the search parameters and returns warnings for
// settings that run but are probably not what the caller meant.
// Rules:
//   - --limit must be ≥ 0
//   - --multiplier must be > 0
//   - a multiplier < limit makes signatures ambiguous (warning)
//   - the signature must fit in int64 (error)
func ValidateSearch(limit, multiplier int64) ([]string, error) {
	if limit < 0 {
		return nil, fmt.Errorf("--limit must be ≥ 0, got %d", limit)
	}
	if multiplier <= 0 {
		return nil, fmt.Errorf("--multiplier must be > 0, got %d", multiplier)
	}
	const maxInt64 = 1<<63 - 1
	if limit > 0 && multiplier > (maxInt64-limit)/limit {
		return nil, fmt.Errorf("--limit %d with --multiplier %d overflows the signature", limit, multiplier)
	}
	var warns []string
	if multiplier < limit {
		warns = append(warns, fmt.Sprintf("--multiplier (%d) < --limit (%d); signatures may collide", multiplier, limit))
	}
	return warns, nil
}

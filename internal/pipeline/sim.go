// internal/pipeline/sim.go
package pipeline

import (
	"context"

	"beaconzone-core/sensor"
	"beaconzone/internal/puzzle"
)

// Solver is the minimal capability the pipeline needs.
// puzzle.Solver (and fakes in tests) satisfy it.
type Solver interface {
	Solve(ctx context.Context, source string, readings []sensor.Reading) puzzle.Result
}

// Loader reads the readings for one input path.
type Loader func(ctx context.Context, path string) ([]sensor.Reading, error)

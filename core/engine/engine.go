// core/engine/engine.go
package engine

import (
	"errors"

	"beaconzone-core/grid"
	"beaconzone-core/sensor"
)

// DefaultMultiplier scales the x coordinate in the tuning signature.
const DefaultMultiplier = 4_000_000

var (
	// ErrNotFound means every perimeter inside the bounds was walked without
	// finding an uncovered point. The input or the bounds are wrong.
	ErrNotFound = errors.New("no uncovered point within bounds")
	// ErrBadBounds is returned for a negative search limit.
	ErrBadBounds = errors.New("invalid search bounds")
)

// Config holds search parameters.
type Config struct {
	Workers    int   // parallel perimeter walkers for Locate (<=1 = sequential)
	Multiplier int64 // signature multiplier (0 = DefaultMultiplier)
	VisitedCap int   // perimeter points remembered per Locate call (0 = none)
}

// Engine answers row and locate queries against one immutable sensor set.
// It holds no per-call state and is safe for concurrent use.
type Engine struct {
	set *sensor.Set
	cfg Config
}

// New creates an Engine over set.
func New(set *sensor.Set, c Config) *Engine {
	if c.Multiplier == 0 {
		c.Multiplier = DefaultMultiplier
	}
	return &Engine{set: set, cfg: c}
}

// Set returns the sensor set the engine was built on.
func (e *Engine) Set() *sensor.Set { return e.set }

// Signature folds a located point into a single number: x*multiplier + y.
func (e *Engine) Signature(p grid.Point) int64 {
	return Signature(p, e.cfg.Multiplier)
}

// Signature is the free-standing form of Engine.Signature.
func Signature(p grid.Point, multiplier int64) int64 {
	return p.X*multiplier + p.Y
}

package sensor

import (
	"fmt"

	"beaconzone-core/grid"
)

// Bounds is the inclusive square [Min, Max] x [Min, Max].
type Bounds struct {
	Min, Max int64
}

// Square returns the bounds [0, limit] on both axes.
func Square(limit int64) Bounds { return Bounds{Min: 0, Max: limit} }

func (b Bounds) Contains(p grid.Point) bool {
	return b.containsCoord(p.X) && b.containsCoord(p.Y)
}

func (b Bounds) Empty() bool { return b.Max < b.Min }

func (b Bounds) String() string { return fmt.Sprintf("[%d,%d]", b.Min, b.Max) }

func (b Bounds) containsCoord(v int64) bool { return v >= b.Min && v <= b.Max }

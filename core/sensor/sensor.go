// core/sensor/sensor.go
package sensor

import (
	"beaconzone-core/grid"
	"beaconzone-core/interval"
)

// Reading is one parsed report line: a sensor and the nearest beacon it saw.
type Reading struct {
	Sensor grid.Point
	Beacon grid.Point
}

// Sensor is a fixed position plus the radius of its exclusion diamond.
// Radius is the Manhattan distance to the reported beacon and never changes.
type Sensor struct {
	Position grid.Point
	Radius   int64
}

// New derives the sensor's radius from its nearest beacon.
func New(pos, beacon grid.Point) Sensor {
	return Sensor{Position: pos, Radius: pos.Manhattan(beacon)}
}

// InRange reports whether p lies inside the closed exclusion diamond.
func (s Sensor) InRange(p grid.Point) bool {
	return s.Position.Manhattan(p) <= s.Radius
}

// RowSpan returns the closed x-range the diamond covers on row y.
// ok is false when the diamond does not reach the row.
func (s Sensor) RowSpan(y int64) (span interval.Span, ok bool) {
	dy := grid.AbsDiff(s.Position.Y, y)
	if dy > s.Radius {
		return interval.Span{}, false
	}
	half := s.Radius - dy
	return interval.Span{Lo: s.Position.X - half, Hi: s.Position.X + half}, true
}

// FirstPerimeterPoint is the leftmost point just outside the diamond.
func (s Sensor) FirstPerimeterPoint() grid.Point {
	return grid.Point{X: s.Position.X - s.Radius - 1, Y: s.Position.Y}
}

// PerimeterLen is the number of points at distance Radius+1, unclipped.
func (s Sensor) PerimeterLen() int64 { return 4 * (s.Radius + 1) }

// WalkPerimeter visits the points at distance exactly Radius+1 that fall
// inside b, column by column from left to right. Lower points come before
// upper points within a column. Walking stops as soon as visit returns false;
// the return value reports whether the walk ran to completion.
func (s Sensor) WalkPerimeter(b Bounds, visit func(grid.Point) bool) bool {
	r1 := s.Radius + 1
	cx, cy := s.Position.X, s.Position.Y

	lo, hi := cx-r1, cx+r1
	if lo < b.Min {
		lo = b.Min
	}
	if hi > b.Max {
		hi = b.Max
	}
	for x := lo; x <= hi; x++ {
		dy := r1 - grid.AbsDiff(x, cx)
		if y := cy - dy; b.containsCoord(y) {
			if !visit(grid.Point{X: x, Y: y}) {
				return false
			}
		}
		if dy == 0 {
			continue
		}
		if y := cy + dy; b.containsCoord(y) {
			if !visit(grid.Point{X: x, Y: y}) {
				return false
			}
		}
	}
	return true
}

// core/sensor/set.go
package sensor

import "beaconzone-core/grid"

// Set owns the sensors of one puzzle input together with the beacon
// positions actually observed. It is read-only once built and safe for
// concurrent use.
type Set struct {
	sensors []Sensor
	beacons []grid.Point
	beaconY map[int64][]int64 // row -> beacon x positions
}

// Build dedupes sensors and beacons by value, keeping first-seen order.
func Build(readings []Reading) *Set {
	s := &Set{beaconY: make(map[int64][]int64)}
	seenS := make(map[Sensor]struct{}, len(readings))
	seenB := make(map[grid.Point]struct{}, len(readings))
	for _, r := range readings {
		sn := New(r.Sensor, r.Beacon)
		if _, dup := seenS[sn]; !dup {
			seenS[sn] = struct{}{}
			s.sensors = append(s.sensors, sn)
		}
		if _, dup := seenB[r.Beacon]; !dup {
			seenB[r.Beacon] = struct{}{}
			s.beacons = append(s.beacons, r.Beacon)
			s.beaconY[r.Beacon.Y] = append(s.beaconY[r.Beacon.Y], r.Beacon.X)
		}
	}
	return s
}

func (s *Set) Len() int { return len(s.sensors) }

// Sensors returns a copy of the sensors in first-seen order.
func (s *Set) Sensors() []Sensor { return append([]Sensor(nil), s.sensors...) }

// Beacons returns a copy of the distinct observed beacon positions.
func (s *Set) Beacons() []grid.Point { return append([]grid.Point(nil), s.beacons...) }

// BeaconsOnRow returns the x positions of distinct beacons on row y.
func (s *Set) BeaconsOnRow(y int64) []int64 {
	return append([]int64(nil), s.beaconY[y]...)
}

// Sensor returns the i-th sensor without copying the whole set.
func (s *Set) Sensor(i int) Sensor { return s.sensors[i] }

// Covered reports whether any sensor has p in range.
func (s *Set) Covered(p grid.Point) bool {
	for _, sn := range s.sensors {
		if sn.InRange(p) {
			return true
		}
	}
	return false
}

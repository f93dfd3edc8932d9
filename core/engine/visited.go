package engine

import (
	"sync"

	"beaconzone-core/grid"
)

// visitedSet remembers recently checked perimeter points with FIFO eviction.
// Perimeters of real inputs hold hundreds of millions of points, so the set
// is bounded; an evicted point only costs a repeated coverage check.
// A nil *visitedSet remembers nothing. One set is shared by every walker of
// a Locate call.
type visitedSet struct {
	mu   sync.Mutex
	cap  int
	ring []grid.Point
	next int
	m    map[grid.Point]struct{}
}

// newVisitedSet returns nil when capacity is not positive.
func newVisitedSet(capacity int) *visitedSet {
	if capacity <= 0 {
		return nil
	}
	return &visitedSet{cap: capacity, m: make(map[grid.Point]struct{}, min(capacity, 1<<12))}
}

// Add inserts p; it returns true if p was already present.
func (s *visitedSet) Add(p grid.Point) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[p]; ok {
		return true
	}
	if len(s.ring) < s.cap {
		s.ring = append(s.ring, p)
	} else {
		delete(s.m, s.ring[s.next])
		s.ring[s.next] = p
		s.next = (s.next + 1) % s.cap
	}
	s.m[p] = struct{}{}
	return false
}

func (s *visitedSet) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

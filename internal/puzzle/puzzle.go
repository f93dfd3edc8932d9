// internal/puzzle/puzzle.go
package puzzle

import (
	"context"
	"fmt"
	"strings"

	"beaconzone-core/engine"
	"beaconzone-core/grid"
	"beaconzone-core/sensor"
)

// Part selects which questions Solve answers.
type Part uint8

const (
	PartOne Part = 1 << iota // excluded cells on one row
	PartTwo                  // uncovered cell and its signature
	PartAll = PartOne | PartTwo
)

// ParsePart accepts "1", "2" or "all".
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "one":
		return PartOne, nil
	case "2", "two":
		return PartTwo, nil
	case "all", "both", "":
		return PartAll, nil
	}
	return 0, fmt.Errorf("invalid part %q (want 1 | 2 | all)", s)
}

func (p Part) Has(q Part) bool { return p&q != 0 }

// Options are the caller-supplied puzzle parameters.
type Options struct {
	Parts      Part
	Row        int64
	Limit      int64
	Multiplier int64
	Workers    int // perimeter walkers per locate call
	VisitedCap int
}

// Result is one solved report. Err holds a locate failure (typically
// wrapping engine.ErrNotFound); part one never fails.
type Result struct {
	Source  string
	Sensors int
	Beacons int
	Parts   Part

	Row      int64
	Excluded int64

	Limit     int64
	Beacon    grid.Point
	Signature int64
	Located   bool

	Err error
}

// Solver turns parsed readings into a Result. It is stateless and safe for
// concurrent use.
type Solver struct {
	Opt Options
}

func NewSolver(o Options) Solver {
	if o.Parts == 0 {
		o.Parts = PartAll
	}
	return Solver{Opt: o}
}

// Solve builds the sensor set and answers the selected parts.
func (s Solver) Solve(ctx context.Context, source string, readings []sensor.Reading) Result {
	set := sensor.Build(readings)
	eng := engine.New(set, engine.Config{
		Workers:    s.Opt.Workers,
		Multiplier: s.Opt.Multiplier,
		VisitedCap: s.Opt.VisitedCap,
	})
	r := Result{
		Source:  source,
		Sensors: set.Len(),
		Beacons: len(set.Beacons()),
		Parts:   s.Opt.Parts,
		Row:     s.Opt.Row,
		Limit:   s.Opt.Limit,
	}
	if s.Opt.Parts.Has(PartOne) {
		r.Excluded = eng.CountExcluded(s.Opt.Row)
	}
	if s.Opt.Parts.Has(PartTwo) {
		p, err := eng.Locate(ctx, s.Opt.Limit)
		if err != nil {
			r.Err = fmt.Errorf("%s: %w", source, err)
			return r
		}
		r.Beacon, r.Located = p, true
		r.Signature = eng.Signature(p)
	}
	return r
}

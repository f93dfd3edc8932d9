// core/engine/locate.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"beaconzone-core/grid"
	"beaconzone-core/sensor"
)

// ctxCheckEvery is how many perimeter points a walker visits between
// cancellation checks.
const ctxCheckEvery = 1 << 12

var errFound = errors.New("found")

// Locate returns the single point of [0,limit]² that no sensor covers.
//
// Only points just outside some diamond can be the answer when the answer is
// unique, so each sensor's outer perimeter is walked (clipped to the bounds)
// and every point on it is checked against all sensors. The walk stops at the
// first uncovered point. If every perimeter is exhausted the result wraps
// ErrNotFound. An uncovered point that lies on no clipped perimeter, such as
// the single cell of limit 0 with no sensor nearby, is out of reach.
func (e *Engine) Locate(ctx context.Context, limit int64) (grid.Point, error) {
	if limit < 0 {
		return grid.Point{}, fmt.Errorf("locate: limit %d: %w", limit, ErrBadBounds)
	}
	b := sensor.Square(limit)
	seen := newVisitedSet(e.cfg.VisitedCap)
	if e.cfg.Workers > 1 && e.set.Len() > 1 {
		return e.locateParallel(ctx, b, seen)
	}

	for i := 0; i < e.set.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return grid.Point{}, err
		}
		p, ok, err := e.walk(ctx, e.set.Sensor(i), b, seen)
		if err != nil {
			return grid.Point{}, err
		}
		if ok {
			return p, nil
		}
	}
	return grid.Point{}, fmt.Errorf("locate in %v x %v: %w", b, b, ErrNotFound)
}

// locateParallel spreads sensors over a bounded set of walkers; the first
// walker to find an uncovered point cancels the rest. Walkers share seen.
func (e *Engine) locateParallel(ctx context.Context, b sensor.Bounds, seen *visitedSet) (grid.Point, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)

	var (
		once  sync.Once
		found grid.Point
	)
	for i := 0; i < e.set.Len(); i++ {
		if gctx.Err() != nil {
			break
		}
		s := e.set.Sensor(i)
		g.Go(func() error {
			p, ok, err := e.walk(gctx, s, b, seen)
			if err != nil {
				return err
			}
			if ok {
				once.Do(func() { found = p })
				return errFound
			}
			return nil
		})
	}

	err := g.Wait()
	switch {
	case errors.Is(err, errFound):
		return found, nil
	case ctx.Err() != nil:
		return grid.Point{}, ctx.Err()
	case err != nil:
		return grid.Point{}, err
	}
	return grid.Point{}, fmt.Errorf("locate in %v x %v: %w", b, b, ErrNotFound)
}

// walk checks the perimeter points of s inside b. ok reports a hit.
func (e *Engine) walk(ctx context.Context, s sensor.Sensor, b sensor.Bounds, seen *visitedSet) (hit grid.Point, ok bool, err error) {
	n := 0
	s.WalkPerimeter(b, func(p grid.Point) bool {
		n++
		if n%ctxCheckEvery == 0 {
			if err = ctx.Err(); err != nil {
				return false
			}
		}
		if seen.Add(p) {
			return true
		}
		if !e.set.Covered(p) {
			hit, ok = p, true
			return false
		}
		return true
	})
	return hit, ok, err
}

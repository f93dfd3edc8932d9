// core/grid/point.go
package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is an integer grid coordinate. It is comparable and safe to use as a
// map key.
type Point struct {
	X, Y int64
}

// AbsDiff returns |a-b|.
func AbsDiff[T constraints.Signed](a, b T) T {
	v := a - b
	if v < 0 {
		v = -v
	}
	return v
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int64 {
	return AbsDiff(p.X, q.X) + AbsDiff(p.Y, q.Y)
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

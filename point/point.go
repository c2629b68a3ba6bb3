// Package point provides the Point primitive shared by every other package in
// this module: an ordered pair of finite double-precision coordinates with
// epsilon-aware equality, a total lexicographic order, and the orientation
// predicate (ccw) the sweep and polygon subsystems build on.
package point

import (
	"fmt"

	"github.com/jduch/sweepgeom/numeric"
)

// Point is a coordinate in a 2D Cartesian plane. Equality is approximate
// (within [numeric.Epsilon]); the zero value is the origin.
type Point struct {
	X, Y float64
}

// New returns the Point (x, y).
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// CrossProduct returns the z-component of p × q, treating both as vectors
// from the origin.
func (p Point) CrossProduct(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// DotProduct returns p · q.
func (p Point) DotProduct(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// DistanceSquaredToPoint returns the squared Euclidean distance between p and q,
// avoiding the sqrt when only comparisons are needed.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Eq reports whether p and q are equal within [numeric.Epsilon]. Less and
// Compare use this same tolerance; HashKey approximates it with a grid.
func (p Point) Eq(q Point) bool {
	return numeric.FloatEquals(p.X, q.X, numeric.Epsilon()) &&
		numeric.FloatEquals(p.Y, q.Y, numeric.Epsilon())
}

// Less reports whether p sorts strictly before q under the lexicographic
// order (x then y), with ε-collapse: two ε-equal points never compare
// Less in either direction, so Less is consistent with Eq.
func (p Point) Less(q Point) bool {
	if p.Eq(q) {
		return false
	}
	if !numeric.FloatEquals(p.X, q.X, numeric.Epsilon()) {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Compare returns -1, 0, or 1 as p is lexicographically less than, equal to,
// or greater than q, consistent with Less and Eq.
func (p Point) Compare(q Point) int {
	switch {
	case p.Eq(q):
		return 0
	case p.Less(q):
		return -1
	default:
		return 1
	}
}

// HashKey returns a coordinate pair truncated to a fixed grid of cell size
// [numeric.Epsilon]. Points in the same cell share a key; two ε-equal points
// on either side of a cell boundary get different keys. Used wherever Point values or the segments/intersections built from them
// need to be map keys.
func (p Point) HashKey() [2]int64 {
	eps := numeric.Epsilon()
	if eps <= 0 {
		eps = numeric.DefaultEpsilon
	}
	scale := 1 / eps
	return [2]int64{
		int64(p.X * scale),
		int64(p.Y * scale),
	}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

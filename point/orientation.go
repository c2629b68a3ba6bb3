package point

import (
	"fmt"
	"math"

	"github.com/jduch/sweepgeom/numeric"
)

// Orientation represents the relative orientation of three points in a 2D
// plane, as determined by the ccw predicate.
type Orientation uint8

const (
	// Collinear indicates p, q, r lie on a straight line.
	Collinear Orientation = iota
	// CounterClockwise indicates p, q, r make a counterclockwise turn.
	CounterClockwise
	// Clockwise indicates p, q, r make a clockwise turn.
	Clockwise
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case CounterClockwise:
		return "CounterClockwise"
	case Clockwise:
		return "Clockwise"
	default:
		panic(fmt.Errorf("unsupported point orientation: %d", o))
	}
}

// CCW computes the ccw(p, q, r) predicate:
//
//	px·qy − py·qx + qx·ry − qy·rx + py·rx − px·ry
//
// Its sign gives the orientation of the ordered triple: positive is
// counterclockwise, zero is collinear, negative is clockwise. This is
// algebraically equal to the cross product (q-p) × (r-p), computed here in
// expanded form so the determinant structure lines up term-for-term with
// segment.ClassifyIntersection.
func CCW(p, q, r Point) float64 {
	return p.X*q.Y - p.Y*q.X + q.X*r.Y - q.Y*r.X + p.Y*r.X - p.X*r.Y
}

// OrientationOf classifies the turn formed by p, q, r using an epsilon
// adaptive to the triangle's scale, the same technique as the donor
// library's point.Orientation: a fixed epsilon is too tight for large
// coordinates and too loose for tiny ones.
func OrientationOf(p, q, r Point) Orientation {
	val := CCW(p, q, r)
	eps := numeric.Epsilon() * (math.Sqrt(p.DistanceSquaredToPoint(q)) + math.Sqrt(p.DistanceSquaredToPoint(r)) + 1)
	switch {
	case math.Abs(val) < eps:
		return Collinear
	case val > 0:
		return CounterClockwise
	default:
		return Clockwise
	}
}

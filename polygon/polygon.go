// Package polygon implements a secondary polygon subsystem: area,
// orientation, ray-crossing containment, and nested shell/hole
// classification for composite "state" regions, built on the same
// [point.Point]/ccw primitives the sweep engine uses.
//
// The containment algorithm is grounded directly on
// original_source/lab02_duj/src/geom/polygon.rs's contains/is_ccw, which
// gives the exact straddle-product technique used here.
package polygon

import (
	"math"

	"github.com/jduch/sweepgeom/point"
	"github.com/jduch/sweepgeom/types"
)

// Polygon is an ordered sequence of vertices representing an implicitly
// closed ring (no duplicated last=first point).
type Polygon struct {
	Vertices []point.Point
}

// New returns a Polygon over vertices, in order.
func New(vertices []point.Point) Polygon {
	return Polygon{Vertices: append([]point.Point(nil), vertices...)}
}

// SignedArea2X returns twice the signed area of p, by the shoelace sum
// ∑(x_{i+1}-x_i)(y_{i+1}+y_i). Positive means the vertices run clockwise
// under this formula's convention (see Orientation); the caller divides by
// 2 and takes the absolute value for unsigned Area.
func (p Polygon) SignedArea2X() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		cur := p.Vertices[i]
		next := p.Vertices[(i+1)%n]
		sum += (next.X - cur.X) * (next.Y + cur.Y)
	}
	return sum
}

// Area returns the unsigned area of p, by the shoelace sum halved:
// reversing vertex order or scaling leaves this invariant intact.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea2X()) / 2
}

// Orientation describes a polygon's winding direction.
type Orientation uint8

const (
	OrientationCounterClockwise Orientation = iota
	OrientationClockwise
)

// WindingOrder returns the orientation of p by the sign of SignedArea2X.
func (p Polygon) WindingOrder() Orientation {
	if p.SignedArea2X() < 0 {
		return OrientationCounterClockwise
	}
	return OrientationClockwise
}

// boundingBox returns the axis-aligned extent of p's vertices.
func (p Polygon) boundingBox() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, v := range p.Vertices {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return
}

// outsidePoint returns a point strictly outside p's bounding box, used as
// the ray's exterior endpoint by Contains.
func (p Polygon) outsidePoint() point.Point {
	minX, minY, maxX, _ := p.boundingBox()
	width := maxX - minX
	if width <= 0 {
		width = 1
	}
	return point.New(minX-width-1, minY-1)
}

// Contains reports whether q lies inside p, using a ray-crossing test:
// shoot a ray from a point strictly outside the bounding box to q, and
// count polygon edges the ray crosses by walking vertices and watching for
// a ccw-sign change straddling the edge. Inside iff the count is odd.
func (p Polygon) Contains(q point.Point) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	outside := p.outsidePoint()
	crossings := 0

	for i := 0; i < n; i++ {
		v := p.Vertices[i]
		prev := p.Vertices[(i-1+n)%n]

		c1 := point.CCW(prev, v, outside)
		c2 := point.CCW(prev, v, q)
		if c1*c2 <= 0 && signChanges(prev, v, outside, q) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// signChanges reports whether the ray from outside to q actually straddles
// the edge prev->v, rather than merely being collinear with it; this is the
// straddle-product refinement original_source/lab02_duj's contains() uses
// on top of the raw ccw-sign comparison.
func signChanges(prev, v, outside, q point.Point) bool {
	edgeSide1 := point.CCW(outside, q, prev)
	edgeSide2 := point.CCW(outside, q, v)
	return edgeSide1*edgeSide2 <= 0
}

// ContainsPolygon reports whether every vertex of inner lies within p — a
// nested-classification test.
func (p Polygon) ContainsPolygon(inner Polygon) bool {
	for _, v := range inner.Vertices {
		if !p.Contains(v) {
			return false
		}
	}
	return true
}

// RelatePolygon classifies the nested relationship between p and other using
// the shared [types.Relationship] vocabulary: RelationshipEqual if the two
// rings list the same vertices in the same order from the same start, or
// each contains the other, RelationshipContains/RelationshipContainedBy for
// one-way nesting, RelationshipIntersection if neither fully nests the
// other but some vertex of either lies within the other, and
// RelationshipDisjoint otherwise.
func (p Polygon) RelatePolygon(other Polygon) types.Relationship {
	if p.sameRing(other) {
		return types.RelationshipEqual
	}

	pContainsOther := p.ContainsPolygon(other)
	otherContainsP := other.ContainsPolygon(p)
	switch {
	case pContainsOther && otherContainsP:
		return types.RelationshipEqual
	case pContainsOther:
		return types.RelationshipContains
	case otherContainsP:
		return types.RelationshipContainedBy
	}

	for _, v := range other.Vertices {
		if p.Contains(v) {
			return types.RelationshipIntersection
		}
	}
	for _, v := range p.Vertices {
		if other.Contains(v) {
			return types.RelationshipIntersection
		}
	}
	return types.RelationshipDisjoint
}

// sameRing reports whether p and other have identical vertex sets (order and
// starting point irrelevant is not attempted here — this is the simple,
// exact-order equality case RelatePolygon needs to short-circuit).
func (p Polygon) sameRing(other Polygon) bool {
	if len(p.Vertices) != len(other.Vertices) {
		return false
	}
	for i, v := range p.Vertices {
		if !v.Eq(other.Vertices[i]) {
			return false
		}
	}
	return true
}

// Region is a composite "state" region: an outer boundary minus zero or
// more exclusion zones (holes).
type Region struct {
	Outer Polygon
	Holes []Polygon
}

// Area returns the outer area minus the sum of hole areas — the signed
// sum for composite regions.
func (r Region) Area() float64 {
	area := r.Outer.Area()
	for _, h := range r.Holes {
		area -= h.Area()
	}
	return area
}

// Contains reports whether q is inside the outer boundary and outside every
// hole: containment requires inclusion in the outer ring and exclusion
// from all holes.
func (r Region) Contains(q point.Point) bool {
	if !r.Outer.Contains(q) {
		return false
	}
	for _, h := range r.Holes {
		if h.Contains(q) {
			return false
		}
	}
	return true
}

// RelatePoint classifies q against r using [types.Relationship]:
// RelationshipContainedBy if q lies in the outer boundary and outside every
// hole (the point is "contained by" the region), RelationshipDisjoint if it
// falls in a hole or outside the outer boundary entirely.
func (r Region) RelatePoint(q point.Point) types.Relationship {
	if !r.Outer.Contains(q) {
		return types.RelationshipDisjoint
	}
	for _, h := range r.Holes {
		if h.Contains(q) {
			return types.RelationshipDisjoint
		}
	}
	return types.RelationshipContainedBy
}

// Package segment provides the Segment primitive and the intersection
// classifier: containment, y-at-x evaluation, the straddle test, and
// classify_intersection's five-variant taxonomy.
package segment

import (
	"fmt"
	"math"

	"github.com/jduch/sweepgeom/numeric"
	"github.com/jduch/sweepgeom/point"
)

// Segment is an ordered pair of endpoints. Once ingested by the
// sweep/bruteforce engines a Segment is stored with Start.X <= End.X;
// New does not itself enforce that — callers that need the engine's
// normalization invariant go through sweep/bruteforce, which call Normalize.
type Segment struct {
	Start, End point.Point
}

// New returns the segment from (x1,y1) to (x2,y2), unmodified.
func New(x1, y1, x2, y2 float64) Segment {
	return Segment{Start: point.New(x1, y1), End: point.New(x2, y2)}
}

// Normalize returns s with Start.X <= End.X (ties broken by Y), the storage
// invariant required of ingested segments.
func (s Segment) Normalize() Segment {
	if s.Start.X > s.End.X || (s.Start.X == s.End.X && s.Start.Y > s.End.Y) {
		return Segment{Start: s.End, End: s.Start}
	}
	return s
}

// IsZeroLength reports whether Start ≈ End.
func (s Segment) IsZeroLength() bool {
	return s.Start.Eq(s.End)
}

// IsVertical reports whether Start.X == End.X (exact, evaluated on the
// stored, ε-insensitive coordinate, matching the policy check's use as an
// ingestion-time structural property rather than a geometric
// approximation).
func (s Segment) IsVertical() bool {
	return s.Start.X == s.End.X
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 {
	dx, dy := s.End.X-s.Start.X, s.End.Y-s.Start.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Eq reports componentwise approximate equality of endpoints. Hash and order
// derive from endpoint order — no swap-invariance here; that lives on the
// Intersection record, not on Segment itself.
func (s Segment) Eq(o Segment) bool {
	return s.Start.Eq(o.Start) && s.End.Eq(o.End)
}

// Less implements a deterministic tie-break order: lex by start.y, start.x,
// end.y, end.x.
func (s Segment) Less(o Segment) bool {
	switch {
	case !numeric.FloatEquals(s.Start.Y, o.Start.Y, numeric.Epsilon()):
		return s.Start.Y < o.Start.Y
	case !numeric.FloatEquals(s.Start.X, o.Start.X, numeric.Epsilon()):
		return s.Start.X < o.Start.X
	case !numeric.FloatEquals(s.End.Y, o.End.Y, numeric.Epsilon()):
		return s.End.Y < o.End.Y
	default:
		return s.End.X < o.End.X
	}
}

// Contains reports whether p lies on segment s: p is on the line through s
// (cross product of End-Start with p-Start is zero) and within both
// coordinate ranges. A zero-length segment matches only its own point.
func (s Segment) Contains(p point.Point) bool {
	dir := s.End.Sub(s.Start)
	eps := numeric.Epsilon()

	if math.Abs(dir.X) <= eps && math.Abs(dir.Y) <= eps {
		return p.Eq(s.Start)
	}

	onLine := math.Abs(dir.X) <= eps ||
		numeric.FloatEquals((p.X-s.Start.X)*dir.Y, (p.Y-s.Start.Y)*dir.X, eps*(math.Abs(dir.X)+math.Abs(dir.Y)+1))
	if !onLine {
		return false
	}

	withinX := math.Abs(dir.X) <= eps ||
		(s.Start.X <= p.X && p.X <= s.End.X) || (s.End.X <= p.X && p.X <= s.Start.X)
	withinY := math.Abs(dir.Y) <= eps ||
		(s.Start.Y <= p.Y && p.Y <= s.End.Y) || (s.End.Y <= p.Y && p.Y <= s.Start.Y)
	return withinX && withinY
}

// YAtX implements y_at(segment, x): linear interpolation of y given x.
// Returns (0, false) for vertical segments and for x outside the segment's
// x-range (with ε slack); it does not panic.
func (s Segment) YAtX(x float64) (float64, bool) {
	if s.IsVertical() {
		return 0, false
	}
	t := (x - s.Start.X) / (s.End.X - s.Start.X)
	if t < -numeric.Epsilon() || t > 1+numeric.Epsilon() {
		return 0, false
	}
	return s.Start.Y + t*(s.End.Y-s.Start.Y), true
}

// String implements fmt.Stringer.
func (s Segment) String() string {
	return fmt.Sprintf("%s -> %s", s.Start, s.End)
}

// SegmentsIntersect implements segments_intersect: the four-ccw straddle
// test, falling back to bounding-box overlap when both segments are
// collinear.
func SegmentsIntersect(s1, s2 Segment) bool {
	c1 := point.OrientationOf(s1.Start, s1.End, s2.Start)
	c2 := point.OrientationOf(s1.Start, s1.End, s2.End)
	c3 := point.OrientationOf(s2.Start, s2.End, s1.Start)
	c4 := point.OrientationOf(s2.Start, s2.End, s1.End)

	if c1 == point.Collinear && c2 == point.Collinear {
		return bboxOverlap(s1, s2)
	}

	return ccwSign(c1)*ccwSign(c2) <= 0 && ccwSign(c3)*ccwSign(c4) <= 0
}

func ccwSign(o point.Orientation) int {
	switch o {
	case point.CounterClockwise:
		return 1
	case point.Clockwise:
		return -1
	default:
		return 0
	}
}

func bboxOverlap(s1, s2 Segment) bool {
	minX1, maxX1 := math.Min(s1.Start.X, s1.End.X), math.Max(s1.Start.X, s1.End.X)
	minY1, maxY1 := math.Min(s1.Start.Y, s1.End.Y), math.Max(s1.Start.Y, s1.End.Y)
	minX2, maxX2 := math.Min(s2.Start.X, s2.End.X), math.Max(s2.Start.X, s2.End.X)
	minY2, maxY2 := math.Min(s2.Start.Y, s2.End.Y), math.Max(s2.Start.Y, s2.End.Y)
	return maxX1 >= minX2 && minX1 <= maxX2 && maxY1 >= minY2 && minY1 <= maxY2
}

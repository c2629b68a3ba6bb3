package segment

import (
	"math"

	"github.com/jduch/sweepgeom/numeric"
	"github.com/jduch/sweepgeom/point"
)

// Kind tags the outcome of classifying two segments.
type Kind uint8

const (
	// Crossing: the interiors properly cross at Point.
	Crossing Kind = iota
	// Touching: Point is on the interior of one and an endpoint of the
	// other, or at a shared endpoint.
	Touching
	// PartialOverlap: collinear, the overlap is a strict sub-segment
	// touching one endpoint of each.
	PartialOverlap
	// ContainedOverlap: collinear, one segment lies entirely inside the
	// other; Overlap equals the shorter.
	ContainedOverlap
	// IdenticalOverlap: collinear, endpoints coincide.
	IdenticalOverlap
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Crossing:
		return "Crossing"
	case Touching:
		return "Touching"
	case PartialOverlap:
		return "PartialOverlap"
	case ContainedOverlap:
		return "ContainedOverlap"
	case IdenticalOverlap:
		return "IdenticalOverlap"
	default:
		return "Unknown"
	}
}

// Intersection is the tagged record of an intersection test: the two source
// segments, the Kind, and either a single Point (Crossing/Touching) or an
// Overlap sub-segment (the three collinear-overlap kinds).
//
// Equality and hashing are invariant under swapping A and B: Eq/Key always
// canonicalize by the segments' own Less order first.
type Intersection struct {
	A, B    Segment
	Kind    Kind
	Point   point.Point
	Overlap Segment
}

// canonical returns a, b reordered so the pair is always presented the same
// way regardless of which segment was classified first, ordered by the
// segments' own Less order.
func canonical(a, b Segment) (Segment, Segment, bool) {
	if b.Less(a) {
		return b, a, true
	}
	return a, b, false
}

// Eq reports whether two Intersection records describe the same outcome,
// regardless of which segment was A and which was B.
func (i Intersection) Eq(o Intersection) bool {
	if i.Kind != o.Kind {
		return false
	}
	ai, bi, _ := canonical(i.A, i.B)
	ao, bo, _ := canonical(o.A, o.B)
	if !ai.Eq(ao) || !bi.Eq(bo) {
		return false
	}
	switch i.Kind {
	case Crossing, Touching:
		return i.Point.Eq(o.Point)
	default:
		return i.Overlap.Eq(o.Overlap) || (i.Overlap.Start.Eq(o.Overlap.End) && i.Overlap.End.Eq(o.Overlap.Start))
	}
}

// Key returns a hashable, swap-invariant key suitable for deduplicating
// Intersection values in a map/set. Points are snapped through
// [point.Point.HashKey], so records that are Eq share a key unless one of
// their points straddles a grid-cell boundary.
func (i Intersection) Key() IntersectionKey {
	a, b, _ := canonical(i.A, i.B)
	key := IntersectionKey{
		Kind: i.Kind,
		A:    segmentKey(a),
		B:    segmentKey(b),
	}
	switch i.Kind {
	case Crossing, Touching:
		key.Point = i.Point.HashKey()
	default:
		p1, p2 := i.Overlap.Start.HashKey(), i.Overlap.End.HashKey()
		if greaterHashKey(p1, p2) {
			p1, p2 = p2, p1
		}
		key.Point = p1
		key.Point2 = p2
	}
	return key
}

func greaterHashKey(a, b [2]int64) bool {
	if a[0] != b[0] {
		return a[0] > b[0]
	}
	return a[1] > b[1]
}

func segmentKey(s Segment) [4]int64 {
	p1, p2 := s.Start.HashKey(), s.End.HashKey()
	return [4]int64{p1[0], p1[1], p2[0], p2[1]}
}

// IntersectionKey is the comparable, swap-invariant key produced by
// [Intersection.Key], fit for use as a Go map key. Point2 is the zero value
// for Crossing/Touching records, which carry only a single Point.
type IntersectionKey struct {
	Kind   Kind
	A, B   [4]int64
	Point  [2]int64
	Point2 [2]int64
}

// ClassifyIntersection implements the classify_intersection algorithm,
// ported directly from the determinant-based method in
// original_source/lab03 geometry/line.rs::find_intersection:
//
//  1. D = (y4-y3)(x2-x1) - (x4-x3)(y2-y1).
//  2. |D| < ε: collinear case, resolved by containment checks into
//     IdenticalOverlap / ContainedOverlap / PartialOverlap / none.
//  3. Else: solve for parameters ua, ub; both in [-ε, 1+ε] gives a point,
//     classified Touching (either parameter within ε of 0 or 1) or Crossing.
func ClassifyIntersection(s1, s2 Segment) (Intersection, bool) {
	x1, y1 := s1.Start.X, s1.Start.Y
	x2, y2 := s1.End.X, s1.End.Y
	x3, y3 := s2.Start.X, s2.Start.Y
	x4, y4 := s2.End.X, s2.End.Y

	eps := numeric.Epsilon()
	denom := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)

	if math.Abs(denom) < eps {
		return classifyCollinear(s1, s2)
	}

	uaNum := (x4-x3)*(y1-y3) - (y4-y3)*(x1-x3)
	ubNum := (x2-x1)*(y1-y3) - (y2-y1)*(x1-x3)
	ua := uaNum / denom
	ub := ubNum / denom

	if ua < -eps || ua > 1+eps || ub < -eps || ub > 1+eps {
		return Intersection{}, false
	}

	p := point.New(x1+ua*(x2-x1), y1+ua*(y2-y1))
	touching := math.Abs(ua) < eps || math.Abs(ua-1) < eps || math.Abs(ub) < eps || math.Abs(ub-1) < eps

	kind := Crossing
	if touching {
		kind = Touching
	}
	return Intersection{A: s1, B: s2, Kind: kind, Point: p}, true
}

func classifyCollinear(s1, s2 Segment) (Intersection, bool) {
	if s1.Eq(s2) {
		return Intersection{A: s1, B: s2, Kind: IdenticalOverlap, Overlap: s1}, true
	}

	if s1.Contains(s2.Start) && s1.Contains(s2.End) {
		return Intersection{A: s1, B: s2, Kind: ContainedOverlap, Overlap: s2}, true
	}
	if s2.Contains(s1.Start) && s2.Contains(s1.End) {
		return Intersection{A: s1, B: s2, Kind: ContainedOverlap, Overlap: s1}, true
	}

	s1HasStart, s1HasEnd := s1.Contains(s2.Start), s1.Contains(s2.End)
	s2HasStart, s2HasEnd := s2.Contains(s1.Start), s2.Contains(s1.End)
	if s1HasStart || s1HasEnd || s2HasStart || s2HasEnd {
		var overlapStart, overlapEnd point.Point
		if s1HasStart {
			overlapStart = s2.Start
		} else {
			overlapStart = s1.Start
		}
		if s1HasEnd {
			overlapEnd = s2.End
		} else {
			overlapEnd = s1.End
		}
		return Intersection{A: s1, B: s2, Kind: PartialOverlap, Overlap: Segment{Start: overlapStart, End: overlapEnd}}, true
	}

	return Intersection{}, false
}

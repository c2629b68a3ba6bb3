// Package sweepstatus implements the status structure (Y-structure): the
// ordered set of segments currently crossed by the sweep line, keyed by
// each segment's y-value at the current sweep abscissa.
//
// The implementation uses a balanced tree
// (github.com/emirpasic/gods/trees/redblacktree) whose comparator closes
// over a pointer to a shared, mutable sweep abscissa — a handler-level
// field read by each comparison — giving O(log n) insert/remove/neighbor
// queries. This mirrors the linesegment/sweepline_statusstructure_rbt.go
// technique and the benott example's status.go getY/Compare shape,
// reoriented to an X-increasing sweep (which both of those already key on
// x).
package sweepstatus

import (
	"math"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/jduch/sweepgeom/numeric"
	"github.com/jduch/sweepgeom/segment"
)

// Status is the Y-structure.
type Status struct {
	tree   *rbt.Tree
	sweepX *float64
}

// New returns an empty status structure.
func New() *Status {
	x := 0.0
	comparator, sweepX := newComparator(&x)
	return &Status{
		tree:   rbt.NewWith(comparator),
		sweepX: sweepX,
	}
}

// SetX updates the sweep abscissa used by subsequent comparisons. Callers
// must only call SetX at an x-value where the relative order of all
// entries currently in the structure is unchanged from immediately before
// (true at Start/End events), or with the δ offset at Intersection events
// so the crossing pair's order swaps naturally (the "δ trick", value
// supplied by the caller — see github.com/jduch/sweepgeom/sweep's
// Options.Delta).
func (s *Status) SetX(x float64) {
	*s.sweepX = x
}

// Insert adds seg to the structure at the current sweep abscissa.
func (s *Status) Insert(seg segment.Segment) {
	s.tree.Put(seg, struct{}{})
}

// Remove deletes seg from the structure.
func (s *Status) Remove(seg segment.Segment) {
	s.tree.Remove(seg)
}

// Neighbors returns the segment immediately below and above seg in the
// current order, or the zero value with ok=false if seg has no such
// neighbor (or is not present).
func (s *Status) Neighbors(seg segment.Segment) (below, above segment.Segment, hasBelow, hasAbove bool) {
	node := s.tree.GetNode(seg)
	if node == nil {
		return segment.Segment{}, segment.Segment{}, false, false
	}
	if pred := predecessor(node); pred != nil {
		below, hasBelow = pred.Key.(segment.Segment), true
	}
	if succ := successor(node); succ != nil {
		above, hasAbove = succ.Key.(segment.Segment), true
	}
	return below, above, hasBelow, hasAbove
}

// Len returns the number of segments currently active.
func (s *Status) Len() int {
	return s.tree.Size()
}

func predecessor(node *rbt.Node) *rbt.Node {
	if node.Left != nil {
		cur := node.Left
		for cur.Right != nil {
			cur = cur.Right
		}
		return cur
	}
	p, cur := node.Parent, node
	for p != nil && cur == p.Left {
		cur, p = p, p.Parent
	}
	return p
}

func successor(node *rbt.Node) *rbt.Node {
	if node.Right != nil {
		cur := node.Right
		for cur.Left != nil {
			cur = cur.Left
		}
		return cur
	}
	p, cur := node.Parent, node
	for p != nil && cur == p.Right {
		cur, p = p, p.Parent
	}
	return p
}

// newComparator builds a github.com/emirpasic/gods-compatible comparator
// that orders two segments by their y-value at *sweepX, falling back to
// slope for segments that currently share a y — the tie-break needed to
// preserve the just-past-crossing order.
func newComparator(sweepX *float64) (func(a, b interface{}) int, *float64) {
	yAt := func(seg segment.Segment) float64 {
		if seg.IsVertical() {
			return seg.Start.Y
		}
		if *sweepX <= seg.Start.X {
			return seg.Start.Y
		}
		if *sweepX >= seg.End.X {
			return seg.End.Y
		}
		t := (*sweepX - seg.Start.X) / (seg.End.X - seg.Start.X)
		return seg.Start.Y + t*(seg.End.Y-seg.Start.Y)
	}

	slopeOf := func(seg segment.Segment) float64 {
		if seg.IsVertical() {
			return math.Inf(1)
		}
		return (seg.End.Y - seg.Start.Y) / (seg.End.X - seg.Start.X)
	}

	return func(a, b interface{}) int {
		segA, segB := a.(segment.Segment), b.(segment.Segment)
		yA, yB := yAt(segA), yAt(segB)
		eps := numeric.Epsilon()
		if !numeric.FloatEquals(yA, yB, eps) {
			if yA < yB {
				return -1
			}
			return 1
		}
		slopeA, slopeB := slopeOf(segA), slopeOf(segB)
		switch {
		case slopeA < slopeB:
			return -1
		case slopeA > slopeB:
			return 1
		case segA.Less(segB):
			return -1
		case segB.Less(segA):
			return 1
		default:
			return 0
		}
	}, sweepX
}

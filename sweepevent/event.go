// Package sweepevent implements the event queue (X-structure): a
// min-priority queue over Start/End/Intersection events ordered
// lexicographically by event point, then by kind (Start < Intersection <
// End), built on github.com/google/btree the same way
// linesegment/sweepline_eventqueue.go builds its (Y-descending) event queue —
// reoriented here to the X-increasing order this module requires.
package sweepevent

import (
	"github.com/jduch/sweepgeom/point"
	"github.com/jduch/sweepgeom/segment"
)

// Kind identifies the nature of an Event. The iota order is load-bearing:
// events at equal points must tiebreak Start < Intersection < End, and Less
// below compares Kind numerically after Point.
type Kind uint8

const (
	Start Kind = iota
	Intersection
	End
)

// Event is one entry in the X-structure: a point in the plane at which the
// active set changes.
type Event struct {
	Point point.Point
	Kind  Kind
	// Seg is the segment starting or ending at Point (Start/End events).
	Seg segment.Segment
	// Lower, Upper are the two crossing segments in their pre-crossing
	// order (Intersection events only).
	Lower, Upper segment.Segment
}

// Less orders events lexicographically by event point (x, y), then
// Start < Intersection < End.
func Less(a, b Event) bool {
	if !a.Point.Eq(b.Point) {
		return a.Point.Less(b.Point)
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return false
}

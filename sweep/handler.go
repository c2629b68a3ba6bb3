package sweep

import (
	"fmt"
	"log"

	"github.com/jduch/sweepgeom/numeric"
	"github.com/jduch/sweepgeom/point"
	"github.com/jduch/sweepgeom/segment"
	"github.com/jduch/sweepgeom/sweepevent"
	"github.com/jduch/sweepgeom/sweepstatus"
)

// FindIntersections runs the Bentley-Ottmann plane sweep over segments,
// returning the complete, deduplicated set of intersection records. It is
// a single-threaded, synchronous entry point: all state is owned by one
// call, nothing escapes across calls.
//
// Panics if the input-sanity policy (see [WithPolicy], [StrictPolicy]) is
// configured to panic on a violation it encounters — sanity violations in
// strict mode are fatal, not recoverable errors.
func FindIntersections(segments []segment.Segment, opts ...OptionFunc) []segment.Intersection {
	restore := numeric.Epsilon()
	defer numeric.SetEpsilon(restore)
	options := apply(opts...)
	clean := sanitize(segments, options.Policy)

	queue := sweepevent.NewQueue()
	for _, s := range clean {
		queue.Push(sweepevent.Event{Point: s.Start, Kind: sweepevent.Start, Seg: s})
		queue.Push(sweepevent.Event{Point: s.End, Kind: sweepevent.End, Seg: s})
	}

	h := &handlerState{
		status:  sweepstatus.New(),
		queue:   queue,
		opts:    options,
		results: make(map[segment.IntersectionKey]segment.Intersection),
	}

	for {
		event, ok := queue.PopMin()
		if !ok {
			break
		}

		logDebugf("event %v at %s", event.Kind, event.Point)

		switch event.Kind {
		case sweepevent.Start:
			h.handleStart(event)
		case sweepevent.End:
			h.handleEnd(event)
		case sweepevent.Intersection:
			h.handleIntersection(event)
		}
	}

	out := make([]segment.Intersection, 0, len(h.results))
	for _, inter := range h.results {
		out = append(out, inter)
	}
	return out
}

// handlerState bundles the per-run mutable state of the sweep: the status
// structure, the event queue, the accumulated result set, and the options
// governing δ and the input-sanity policy. One instance owns all of this
// for the duration of a single FindIntersections call.
type handlerState struct {
	status  *sweepstatus.Status
	queue   *sweepevent.Queue
	opts    Options
	results map[segment.IntersectionKey]segment.Intersection
}

func (h *handlerState) handleStart(event sweepevent.Event) {
	h.status.SetX(event.Point.X)
	s := event.Seg
	h.status.Insert(s)
	below, above, hasBelow, hasAbove := h.status.Neighbors(s)
	if hasAbove {
		h.checkNeighborPair(s, above, event.Point)
	}
	if hasBelow {
		h.checkNeighborPair(s, below, event.Point)
	}
}

func (h *handlerState) handleEnd(event sweepevent.Event) {
	h.status.SetX(event.Point.X)
	s := event.Seg
	below, above, hasBelow, hasAbove := h.status.Neighbors(s)
	h.status.Remove(s)
	if hasBelow && hasAbove {
		h.checkNeighborPair(below, above, event.Point)
	}
}

func (h *handlerState) handleIntersection(event sweepevent.Event) {
	lower, upper := event.Lower, event.Upper

	if inter, ok := segment.ClassifyIntersection(lower, upper); ok {
		h.record(inter)
	}

	h.status.Remove(lower)
	h.status.Remove(upper)
	h.status.SetX(event.Point.X + h.opts.Delta)
	h.status.Insert(lower)
	h.status.Insert(upper)

	// a is the neighbor above lower post-swap (the segment now immediately
	// above what was the lower segment); b is the neighbor below upper
	// post-swap (now immediately below what was the upper segment).
	_, a, _, hasA := h.status.Neighbors(lower)
	b, _, hasB, _ := h.status.Neighbors(upper)

	if hasA {
		h.checkNeighborPair(lower, a, event.Point)
	}
	if hasB {
		h.checkNeighborPair(upper, b, event.Point)
	}
}

// checkNeighborPair classifies s1 against s2, now that the status structure
// has made them neighbors. A single-point outcome (Crossing/Touching)
// strictly at-or-after currentPoint is enqueued as a future Intersection
// event. A collinear-overlap outcome has no future characteristic point to
// re-trigger on — it is recorded directly, the instant the status structure
// reveals the overlapping pair as neighbors.
func (h *handlerState) checkNeighborPair(s1, s2 segment.Segment, currentPoint point.Point) {
	inter, ok := segment.ClassifyIntersection(s1, s2)
	if !ok {
		return
	}

	switch inter.Kind {
	case segment.Crossing, segment.Touching:
		if !isAtOrAfter(inter.Point, currentPoint) {
			return
		}
		// The pair's current status order is its order before the crossing.
		lower, upper := s2, s1
		if _, above, _, hasAbove := h.status.Neighbors(s1); hasAbove && above.Eq(s2) {
			lower, upper = s1, s2
		}
		ev := sweepevent.Event{Point: inter.Point, Kind: sweepevent.Intersection, Lower: lower, Upper: upper}
		if !h.queue.Contains(ev) {
			h.queue.Push(ev)
		}
	default:
		h.record(inter)
	}
}

// record applies the Overlap/Touching precondition policy (panic in strict
// mode; report in lenient mode, the shipped default) and inserts into the
// deduplicated result set.
func (h *handlerState) record(inter segment.Intersection) {
	switch inter.Kind {
	case segment.Touching:
		if h.opts.Policy.panics(Touching) {
			panic(fmt.Errorf("%w: touching contact between %s and %s at %s", ErrPreconditionViolation, inter.A, inter.B, inter.Point))
		}
	case segment.PartialOverlap, segment.ContainedOverlap, segment.IdenticalOverlap:
		if h.opts.Policy.panics(Overlap) {
			panic(fmt.Errorf("%w: collinear overlap between %s and %s", ErrPreconditionViolation, inter.A, inter.B))
		}
	}
	h.results[inter.Key()] = inter
}

func isAtOrAfter(p, current point.Point) bool {
	if p.X > current.X {
		return true
	}
	if p.X < current.X {
		return false
	}
	return p.Y >= current.Y
}

func logDiscard(v Violation, format string, args ...any) {
	log.Printf("sweep: discarding segment (%s): %s", v, fmt.Sprintf(format, args...))
}

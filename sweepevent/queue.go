package sweepevent

import (
	"github.com/google/btree"
)

// Queue is the X-structure: a min-priority queue of [Event] values ordered
// by [Less]. Insertion, pop-min, and membership checks are all O(log n).
type Queue struct {
	tree *btree.BTreeG[Event]
}

// NewQueue returns an empty event queue.
func NewQueue() *Queue {
	return &Queue{tree: btree.NewG(32, Less)}
}

// Push inserts e. An already queued event that compares equal under [Less]
// (same point and kind) is replaced by e, so at most one event per point
// and kind is queued.
func (q *Queue) Push(e Event) {
	q.tree.ReplaceOrInsert(e)
}

// Contains reports whether an event equal to e (same point and kind) is
// already queued — used to avoid enqueuing the same intersection point
// twice from either side.
func (q *Queue) Contains(e Event) bool {
	_, ok := q.tree.Get(e)
	return ok
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return q.tree.Len()
}

// PopMin removes and returns the lowest-ordered event. The second return
// value is false if the queue is empty.
func (q *Queue) PopMin() (Event, bool) {
	return q.tree.DeleteMin()
}

// PeekMin returns the lowest-ordered event without removing it.
func (q *Queue) PeekMin() (Event, bool) {
	return q.tree.Min()
}

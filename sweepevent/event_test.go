package sweepevent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jduch/sweepgeom/point"
	"github.com/jduch/sweepgeom/segment"
)

func TestLessOrdersByPointFirst(t *testing.T) {
	a := Event{Point: point.New(1, 5), Kind: Start}
	b := Event{Point: point.New(2, 0), Kind: Start}
	assert.True(t, Less(a, b))
	assert.False(t, Less(b, a))
}

func TestLessTiebreaksByKind(t *testing.T) {
	p := point.New(1, 1)
	start := Event{Point: p, Kind: Start}
	inter := Event{Point: p, Kind: Intersection}
	end := Event{Point: p, Kind: End}

	assert.True(t, Less(start, inter))
	assert.True(t, Less(inter, end))
	assert.True(t, Less(start, end))
	assert.False(t, Less(end, start))
}

func TestLessEqualEvents(t *testing.T) {
	p := point.New(1, 1)
	a := Event{Point: p, Kind: Start, Seg: segment.New(0, 0, 1, 1)}
	b := Event{Point: p, Kind: Start, Seg: segment.New(0, 0, 1, 1)}
	assert.False(t, Less(a, b))
	assert.False(t, Less(b, a))
}

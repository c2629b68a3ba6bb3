package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jduch/sweepgeom/bruteforce"
	"github.com/jduch/sweepgeom/segment"
)

func TestFindIntersectionsSingleCrossing(t *testing.T) {
	segs := []segment.Segment{
		segment.New(0, 0, 4, 4),
		segment.New(1, 3, 3, 1),
	}
	results := FindIntersections(segs)
	if assert.Len(t, results, 1) {
		assert.Equal(t, segment.Crossing, results[0].Kind)
	}
}

func TestFindIntersectionsNoCrossing(t *testing.T) {
	segs := []segment.Segment{
		segment.New(0, 0, 1, 1),
		segment.New(5, 5, 6, 6),
	}
	assert.Empty(t, FindIntersections(segs))
}

func TestFindIntersectionsMatchesBruteForcePentagonStar(t *testing.T) {
	// Five-segment star whose ten endpoints all have distinct x-coordinates
	// (0 through 9), so it passes the duplicate-x check under either policy.
	segs := []segment.Segment{
		segment.New(2, 1, 7, 1),
		segment.New(6, 0, 8, 6),
		segment.New(9, 5, 4, 7),
		segment.New(5, 7, 0, 3),
		segment.New(1, 4, 3, 0),
	}

	sweepResults := FindIntersections(segs)
	bruteResults := bruteforce.FindIntersections(segs)

	require.Equal(t, len(bruteResults), len(sweepResults))

	bruteKeys := make(map[segment.IntersectionKey]bool, len(bruteResults))
	for _, r := range bruteResults {
		bruteKeys[r.Key()] = true
	}
	for _, r := range sweepResults {
		assert.True(t, bruteKeys[r.Key()], "sweep produced an intersection the brute-force oracle did not: %+v", r)
	}
}

func TestFindIntersectionsCollinearOverlapReportedByDefault(t *testing.T) {
	segs := []segment.Segment{
		segment.New(0, 0, 4, 0),
		segment.New(2, 0, 6, 0),
	}
	results := FindIntersections(segs)
	if assert.Len(t, results, 1) {
		assert.Equal(t, segment.PartialOverlap, results[0].Kind)
	}
}

func TestFindIntersectionsStrictPolicyPanicsOnOverlap(t *testing.T) {
	segs := []segment.Segment{
		segment.New(0, 0, 4, 0),
		segment.New(2, 0, 6, 0),
	}
	assert.Panics(t, func() {
		FindIntersections(segs, WithPolicy(StrictPolicy()))
	})
}

func TestFindIntersectionsManySegmentsNoPanic(t *testing.T) {
	// A small grid of non-overlapping, non-vertical segments with
	// distinct x-coordinates throughout: should sanitize cleanly and
	// sweep without panicking even under the strict policy.
	segs := []segment.Segment{
		segment.New(0, 0, 10, 1),
		segment.New(1, 2, 11, 3),
		segment.New(2, 4, 12, 5),
	}
	assert.NotPanics(t, func() {
		FindIntersections(segs, WithPolicy(StrictPolicy()))
	})
}

package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jduch/sweepgeom/point"
)

func TestClassifyIntersectionCrossing(t *testing.T) {
	s1 := New(0, 0, 4, 4)
	s2 := New(0, 4, 4, 0)
	inter, ok := ClassifyIntersection(s1, s2)
	require.True(t, ok)
	assert.Equal(t, Crossing, inter.Kind)
	assert.True(t, inter.Point.Eq(point.New(2, 2)))
}

func TestClassifyIntersectionTouchingAtEndpoint(t *testing.T) {
	s1 := New(0, 0, 4, 0)
	s2 := New(4, 0, 4, 4)
	inter, ok := ClassifyIntersection(s1, s2)
	require.True(t, ok)
	assert.Equal(t, Touching, inter.Kind)
	assert.True(t, inter.Point.Eq(point.New(4, 0)))
}

func TestClassifyIntersectionTouchingInteriorEndpoint(t *testing.T) {
	// s2's endpoint lands on s1's interior: a T-junction.
	s1 := New(0, 0, 4, 0)
	s2 := New(2, 0, 2, 4)
	inter, ok := ClassifyIntersection(s1, s2)
	require.True(t, ok)
	assert.Equal(t, Touching, inter.Kind)
	assert.True(t, inter.Point.Eq(point.New(2, 0)))
}

func TestClassifyIntersectionIdenticalOverlap(t *testing.T) {
	s1 := New(0, 0, 4, 0)
	s2 := New(0, 0, 4, 0)
	inter, ok := ClassifyIntersection(s1, s2)
	require.True(t, ok)
	assert.Equal(t, IdenticalOverlap, inter.Kind)
}

func TestClassifyIntersectionContainedOverlap(t *testing.T) {
	s1 := New(0, 0, 10, 0)
	s2 := New(2, 0, 5, 0)
	inter, ok := ClassifyIntersection(s1, s2)
	require.True(t, ok)
	assert.Equal(t, ContainedOverlap, inter.Kind)
	assert.True(t, inter.Overlap.Eq(s2) || inter.Overlap.Eq(s2.Normalize()))
}

func TestClassifyIntersectionPartialOverlap(t *testing.T) {
	s1 := New(0, 0, 4, 0)
	s2 := New(2, 0, 6, 0)
	inter, ok := ClassifyIntersection(s1, s2)
	require.True(t, ok)
	assert.Equal(t, PartialOverlap, inter.Kind)
}

func TestClassifyIntersectionCollinearDisjointNoIntersection(t *testing.T) {
	s1 := New(0, 0, 1, 0)
	s2 := New(2, 0, 3, 0)
	_, ok := ClassifyIntersection(s1, s2)
	assert.False(t, ok)
}

func TestClassifyIntersectionParallelNoIntersection(t *testing.T) {
	s1 := New(0, 0, 4, 0)
	s2 := New(0, 1, 4, 1)
	_, ok := ClassifyIntersection(s1, s2)
	assert.False(t, ok)
}

func TestIntersectionEqSwapInvariant(t *testing.T) {
	s1 := New(0, 0, 4, 4)
	s2 := New(0, 4, 4, 0)
	i1, ok1 := ClassifyIntersection(s1, s2)
	i2, ok2 := ClassifyIntersection(s2, s1)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.True(t, i1.Eq(i2))
	assert.Equal(t, i1.Key(), i2.Key())
}

// pentagonStar exercises a 5-segment, 5-crossing self-intersecting star
// polygon: a regular five-pointed star drawn as a single unicursal path, each edge crossing
// exactly two others once.
func pentagonStar() []Segment {
	pts := []point.Point{
		point.New(0, 4),
		point.New(2.35, -3.24),
		point.New(-3.8, 1.24),
		point.New(3.8, 1.24),
		point.New(-2.35, -3.24),
	}
	segs := make([]Segment, len(pts))
	for i := range pts {
		segs[i] = Segment{Start: pts[i], End: pts[(i+1)%len(pts)]}
	}
	return segs
}

func TestPentagonStarFiveProperCrossingsFiveTouches(t *testing.T) {
	segs := pentagonStar()
	crossings, touches := 0, 0
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			if !SegmentsIntersect(segs[i], segs[j]) {
				continue
			}
			inter, ok := ClassifyIntersection(segs[i], segs[j])
			if !ok {
				continue
			}
			switch inter.Kind {
			case Crossing:
				crossings++
			case Touching:
				touches++
			}
		}
	}
	// The 5 path-adjacent pairs meet only at their shared outer vertex
	// (Touching); the remaining 5 non-adjacent pairs each cross once at
	// one of the inner pentagon's vertices (Crossing).
	assert.Equal(t, 5, crossings)
	assert.Equal(t, 5, touches)
}

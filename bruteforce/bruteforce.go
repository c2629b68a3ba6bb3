// Package bruteforce provides an O(n²) reference oracle: an all-pairs
// intersector used to validate the sweep engine, and a dataset analyzer
// that reports pathology counts grounded in
// original_source/lab03/src/geometry/brute_force/handler.rs::analyze.
package bruteforce

import (
	"github.com/jduch/sweepgeom/numeric"
	"github.com/jduch/sweepgeom/options"
	"github.com/jduch/sweepgeom/segment"
)

// FindIntersections evaluates every pair i<j with
// [segment.SegmentsIntersect] and, on a hit, [segment.ClassifyIntersection],
// inserting non-empty classifications into a deduplicated result set. Each
// segment is normalized ([segment.Segment.Normalize]) before it is
// classified. Runs in Θ(n²) time; see [github.com/jduch/sweepgeom/sweep]
// for the output-sensitive plane-sweep alternative.
//
// opts follows the functional-options convention
// ([options.GeometryOptionsFunc]); a positive [options.WithEpsilon]
// overrides the module-wide tolerance for the duration of this call, while
// zero leaves the module-wide tolerance in place.
func FindIntersections(segments []segment.Segment, opts ...options.GeometryOptionsFunc) []segment.Intersection {
	cfg := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: numeric.Epsilon()}, opts...)
	if cfg.Epsilon > 0 {
		restore := numeric.Epsilon()
		numeric.SetEpsilon(cfg.Epsilon)
		defer numeric.SetEpsilon(restore)
	}

	seen := make(map[segment.IntersectionKey]struct{})
	var results []segment.Intersection

	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			s1, s2 := segments[i].Normalize(), segments[j].Normalize()
			if !segment.SegmentsIntersect(s1, s2) {
				continue
			}
			inter, ok := segment.ClassifyIntersection(s1, s2)
			if !ok {
				continue
			}
			key := inter.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			results = append(results, inter)
		}
	}
	return results
}

// Report is the pathology census reported by [Analyze]. Field names and
// the set of counts are grounded on the Rust original's
// brute_force/handler.rs::analyze().
type Report struct {
	TotalSegments     int
	TotalIntersections int
	ZeroLength        int
	Vertical          int
	DuplicateX        int
	Touching          int
	Overlapping       int
}

// Analyze runs the brute-force reference and reports dataset pathologies:
// zero-length segments, verticals, duplicated x-coordinates among endpoints,
// touchings, and overlaps (Partial+Contained+Identical combined) — used to
// diagnose whether an input violates plane-sweep preconditions before
// handing it to the sweep engine.
func Analyze(segments []segment.Segment, opts ...options.GeometryOptionsFunc) Report {
	r := Report{TotalSegments: len(segments)}

	xSeen := make(map[float64]int)
	for _, s := range segments {
		if s.IsZeroLength() {
			r.ZeroLength++
		} else if s.IsVertical() {
			r.Vertical++
		}
		xSeen[s.Start.X]++
		xSeen[s.End.X]++
	}
	for _, count := range xSeen {
		if count > 1 {
			r.DuplicateX++
		}
	}

	intersections := FindIntersections(segments, opts...)
	r.TotalIntersections = len(intersections)
	for _, inter := range intersections {
		switch inter.Kind {
		case segment.Touching:
			r.Touching++
		case segment.PartialOverlap, segment.ContainedOverlap, segment.IdenticalOverlap:
			r.Overlapping++
		}
	}
	return r
}

package sweep

import (
	"fmt"

	"github.com/jduch/sweepgeom/segment"
)

// sanitize applies the input-sanity policy to segments, checking in order
// zero_length, vertical, duplicate_x, and returns the surviving segments
// normalized to Start.X <= End.X. A segment failing a check for which the
// policy panics aborts the whole run (PreconditionViolation is fatal in
// strict mode); a segment failing a check the policy treats leniently is
// logged and dropped.
func sanitize(segments []segment.Segment, policy Policy) []segment.Segment {
	seenX := make(map[float64]bool, len(segments)*2)
	out := make([]segment.Segment, 0, len(segments))

	for _, raw := range segments {
		s := raw.Normalize()

		if s.IsZeroLength() {
			if policy.panics(ZeroLength) {
				panic(fmt.Errorf("%w: zero-length segment %s", ErrPreconditionViolation, s))
			}
			logDiscard(ZeroLength, "%s", s)
			continue
		}

		if s.IsVertical() {
			if policy.panics(Vertical) {
				panic(fmt.Errorf("%w: vertical segment %s", ErrPreconditionViolation, s))
			}
			logDiscard(Vertical, "%s", s)
			continue
		}

		if seenX[s.Start.X] || seenX[s.End.X] {
			if policy.panics(DuplicateX) {
				panic(fmt.Errorf("%w: duplicate x-coordinate in segment %s", ErrPreconditionViolation, s))
			}
			logDiscard(DuplicateX, "%s", s)
			continue
		}

		seenX[s.Start.X] = true
		seenX[s.End.X] = true
		out = append(out, s)
	}

	return out
}

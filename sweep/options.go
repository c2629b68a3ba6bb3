// Package sweep implements the sweep handler: the main Bentley-Ottmann loop
// over sweepevent.Queue/sweepstatus.Status, the input-sanity policy object,
// and the public FindIntersections entry point.
package sweep

import "github.com/jduch/sweepgeom/numeric"

// Violation identifies one of the five precondition categories the
// input-sanity policy object governs.
type Violation uint8

const (
	ZeroLength Violation = iota
	Vertical
	DuplicateX
	Overlap
	Touching
)

// String implements fmt.Stringer.
func (v Violation) String() string {
	switch v {
	case ZeroLength:
		return "zero_length"
	case Vertical:
		return "vertical"
	case DuplicateX:
		return "duplicate_x"
	case Overlap:
		return "overlap"
	case Touching:
		return "touching"
	default:
		return "unknown"
	}
}

// Policy holds, per [Violation] kind, whether the handler panics (strict) or
// discards-with-log (lenient). Grounded directly in the Rust original's
// SweepLineOptions{panic_on_*}.
type Policy map[Violation]bool

// panics reports whether the policy panics on the given violation.
func (p Policy) panics(v Violation) bool {
	strict, ok := p[v]
	return ok && strict
}

// StrictPolicy panics on every precondition violation, matching the Rust
// original's SweepLineOptions::panic_enabled() preset.
func StrictPolicy() Policy {
	return Policy{
		ZeroLength: true,
		Vertical:   true,
		DuplicateX: true,
		Overlap:    true,
		Touching:   true,
	}
}

// LenientPolicy discards zero-length/vertical/duplicate-x segments with a
// log line instead of panicking, matching the Rust original's
// SweepLineOptions::panic_disabled() preset. Overlap and Touching are not
// precondition failures under this policy: this module resolves in favor
// of *reporting* touching/overlap intersections in the result set (the
// shipped default), so LenientPolicy never discards on their account —
// Overlap/Touching here only gate whether encountering one is *fatal*, and
// the default answer is no.
func LenientPolicy() Policy {
	return Policy{
		ZeroLength: false,
		Vertical:   false,
		DuplicateX: false,
		Overlap:    false,
		Touching:   false,
	}
}

// Options configures a sweep run.
type Options struct {
	// Policy governs input-sanity handling.
	Policy Policy
	// Delta is the small positive offset added to the sweep abscissa at
	// Intersection events (the "δ trick"). The Rust original this module
	// derives from (original_source/lab03's handler.rs) fixes this at
	// 0.000001; the only hard requirement is that it be small enough not
	// to cross past the next event's x.
	Delta float64
	// Epsilon overrides the module-wide numeric.Epsilon for this run, if
	// non-zero, following the same pattern as options.WithEpsilon.
	Epsilon float64
}

// OptionFunc is a functional option for [Options], matching the donor
// library's options.GeometryOptionsFunc shape.
type OptionFunc func(*Options)

// DefaultDelta is the Rust original's x_shift constant.
const DefaultDelta = 0.000001

// defaultOptions returns lenient-policy defaults.
func defaultOptions() Options {
	return Options{
		Policy: LenientPolicy(),
		Delta:  DefaultDelta,
	}
}

// WithPolicy overrides the input-sanity policy.
func WithPolicy(p Policy) OptionFunc {
	return func(o *Options) { o.Policy = p }
}

// WithDelta overrides the δ offset.
func WithDelta(delta float64) OptionFunc {
	return func(o *Options) {
		if delta > 0 {
			o.Delta = delta
		}
	}
}

// WithEpsilon overrides the module-wide epsilon for the duration of the run.
func WithEpsilon(epsilon float64) OptionFunc {
	return func(o *Options) {
		if epsilon > 0 {
			o.Epsilon = epsilon
		}
	}
}

// apply folds opts over the defaults, matching the shape of
// options.ApplyGeometryOptions.
func apply(opts ...OptionFunc) Options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Epsilon > 0 {
		numeric.SetEpsilon(o.Epsilon)
	}
	return o
}

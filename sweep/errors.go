package sweep

import "errors"

// Error kinds of the sweep handler. Malformed input is reported with
// datfile.ErrInputFormat; I/O failures surface as the underlying os errors,
// wrapped by datfile and cmd/sweepcli.
var (
	// ErrPreconditionViolation is wrapped by a panic or, in lenient mode
	// (see logDiscard), never surfaced as an error at all — only logged.
	ErrPreconditionViolation = errors.New("precondition violation")
	// ErrGeometricInfeasibility names arithmetic that input sanitization
	// rules out, e.g. y_at(x) on a vertical segment. No code in this module
	// returns or panics with it: sanitize drops or rejects every vertical
	// segment, and the status comparator takes a vertical segment's y as
	// its Start.Y.
	ErrGeometricInfeasibility = errors.New("geometric infeasibility")
)

package graph

import "errors"

// Errors returned by parsing and viewport operations. All of them are
// recoverable: the worst outcome of any of these is that one equation
// is not drawn, or one viewport mutation is ignored.
var (
	// ErrUnrecognized means the text matched no known equation family.
	ErrUnrecognized = errors.New("graph: unrecognized equation")

	// ErrBadConstraint means a {var<value} clause was malformed.
	ErrBadConstraint = errors.New("graph: malformed constraint")

	// ErrBadExpression means the right-hand side of an explicit
	// equation failed to compile.
	ErrBadExpression = errors.New("graph: malformed expression")

	// ErrDegenerateViewport means a viewport mutation would produce a
	// rectangle with non-positive or non-finite extent.
	ErrDegenerateViewport = errors.New("graph: degenerate viewport bounds")

	// ErrDegenerateZoom means a zoom-to-box span was below the minimum
	// threshold; the viewport is left unchanged.
	ErrDegenerateZoom = errors.New("graph: zoom box too small")

	// ErrNotFound means no session entry matched the given id or text.
	ErrNotFound = errors.New("graph: equation not found")
)

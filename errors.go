package canon

import "errors"

var (
	// ErrUnsupportedGeometry is returned when the input contains geometry the
	// package doesn't convert, such as a solid with a non-planar face. No
	// partial result accompanies it.
	ErrUnsupportedGeometry = errors.New("unsupported geometry")

	// ErrAmbiguousProfile is returned when a profile is requested from a
	// structure that doesn't have exactly one face.
	ErrAmbiguousProfile = errors.New("ambiguous profile")

	// ErrDegenerateInput is returned for inputs that have no well-defined
	// result, such as zero-length sweeps or guides with fewer than three
	// vertices.
	ErrDegenerateInput = errors.New("degenerate input")
)

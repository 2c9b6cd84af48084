package canon

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Profile is a planar region: an outer loop with zero or more voids.
type Profile struct {
	ID    uuid.UUID
	Outer Polygon
	Inner []Polygon
}

// NewProfile returns a profile with a fresh identifier.
func NewProfile(outer Polygon, inner ...Polygon) Profile {
	return Profile{
		ID:    uuid.New(),
		Outer: outer,
		Inner: inner,
	}
}

// OrientVoids returns a copy of the profile whose inner loops wind opposite to
// the outer loop.
func (p Profile) OrientVoids() Profile {
	n := p.Outer.Normal()
	inner := make([]Polygon, len(p.Inner))
	for i, in := range p.Inner {
		if in.Normal().Dot(n) > 0 {
			in = in.Reversed()
		}
		inner[i] = in
	}
	p.Inner = inner
	return p
}

// Transform returns the profile with all loops mapped through t. The
// identifier is kept.
func (p Profile) Transform(t Transform) Profile {
	out := Profile{ID: p.ID, Outer: p.Outer.Transform(t)}
	if p.Inner != nil {
		out.Inner = make([]Polygon, len(p.Inner))
		for i, in := range p.Inner {
			out.Inner[i] = in.Transform(t)
		}
	}
	return out
}

// Reversed returns the profile with every loop reversed.
func (p Profile) Reversed() Profile {
	out := Profile{ID: p.ID, Outer: p.Outer.Reversed()}
	for _, in := range p.Inner {
		out.Inner = append(out.Inner, in.Reversed())
	}
	return out
}

// Loops returns the outer loop followed by the inner loops.
func (p Profile) Loops() []Polygon {
	return append([]Polygon{p.Outer}, p.Inner...)
}

// Equal reports whether two profiles have the same loops, ignoring their
// identifiers.
func (p Profile) Equal(o Profile) bool {
	return slices.Equal(p.Outer, o.Outer) &&
		slices.EqualFunc(p.Inner, o.Inner, func(a, b Polygon) bool { return slices.Equal(a, b) })
}

// ProfileFromCurve returns the profile bounded by a single closed curve.
func ProfileFromCurve(c Curve, opts Options) Profile {
	return NewProfile(PolygonFromCurve(c, opts))
}

// ProfileFromFace returns the profile of a single B-rep face. The face's outer
// loop is validated like in [NewSolid].
func ProfileFromFace(face BrepFace, opts Options) (Profile, error) {
	outer, inner, err := canonicalFace(face, opts)
	if err != nil {
		return Profile{}, err
	}
	return NewProfile(outer, inner...), nil
}

// ProfileFromFaces returns the profile of a B-rep that consists of exactly one
// face. Any other number of faces results in [ErrAmbiguousProfile].
func ProfileFromFaces(faces []BrepFace, opts Options) (Profile, error) {
	if len(faces) != 1 {
		return Profile{}, fmt.Errorf("profile needs exactly one face, got %d: %w", len(faces), ErrAmbiguousProfile)
	}
	return ProfileFromFace(faces[0], opts)
}

package canon

import (
	"fmt"
	"log/slog"
)

// LoopKind classifies the boundary loops of a B-rep face.
type LoopKind int

const (
	UnknownLoop LoopKind = iota
	// The loop bounding the face from the outside. Every face has exactly one.
	OuterLoop
	// A loop bounding a void inside the face.
	InnerLoop
)

func (k LoopKind) String() string {
	switch k {
	case OuterLoop:
		return "outer"
	case InnerLoop:
		return "inner"
	default:
		return "unknown"
	}
}

// BrepLoop is a boundary loop of a B-rep face, as supplied by the host
// kernel.
type BrepLoop interface {
	Kind() LoopKind
	// Curve returns the loop as a single closed 3D curve.
	Curve() Curve
}

// BrepFace is a face of a B-rep, as supplied by the host kernel.
type BrepFace interface {
	Loops() []BrepLoop
}

// Planarer is an optional interface implemented by faces whose kernel can
// test the underlying surface for flatness. Faces that don't implement it are
// tested on their canonical loops.
type Planarer interface {
	IsPlanar(tolerance float64) bool
}

// Loop is a simple [BrepLoop].
type Loop struct {
	LoopKind  LoopKind
	LoopCurve Curve
}

func (l Loop) Kind() LoopKind { return l.LoopKind }
func (l Loop) Curve() Curve   { return l.LoopCurve }

// FaceLoops is a simple [BrepFace] made of a list of loops.
type FaceLoops []BrepLoop

func (f FaceLoops) Loops() []BrepLoop { return f }

// Face is a planar face of a [Solid]: one outer loop and zero or more inner
// loops, all coplanar.
type Face struct {
	Outer Polygon
	Inner []Polygon
	// Cap marks the face for downstream consumers as one whose loops are
	// already oriented and must not be flipped.
	Cap bool
}

// Solid is a boundary representation made only of planar faces. Faces are
// independent; no shared-edge consistency is implied.
type Solid struct {
	Faces []Face
}

// BoundingBox returns the bounds of all face loops.
func (s Solid) BoundingBox() Box {
	b := EmptyBox
	for _, f := range s.Faces {
		b = b.Union(f.Outer.BoundingBox())
		for _, in := range f.Inner {
			b = b.Union(in.BoundingBox())
		}
	}
	return b
}

// Vertices returns the number of loop vertices over all faces.
func (s Solid) Vertices() int {
	var n int
	for _, f := range s.Faces {
		n += len(f.Outer)
		for _, in := range f.Inner {
			n += len(in)
		}
	}
	return n
}

// canonicalFace classifies and canonicalizes the loops of a face.
func canonicalFace(face BrepFace, opts Options) (outer Polygon, inner []Polygon, err error) {
	var outers int
	for _, loop := range face.Loops() {
		switch loop.Kind() {
		case OuterLoop:
			outer = PolygonFromCurve(loop.Curve(), opts)
			outers++
		case InnerLoop:
			inner = append(inner, PolygonFromCurve(loop.Curve(), opts))
		}
	}
	if outers != 1 {
		return nil, nil, fmt.Errorf("face has %d outer loops: %w", outers, ErrUnsupportedGeometry)
	}
	if len(outer) < 3 {
		return nil, nil, fmt.Errorf("outer loop has %d vertices: %w", len(outer), ErrDegenerateInput)
	}
	if outer.Normal().IsNaN() {
		return nil, nil, fmt.Errorf("outer loop has no area: %w", ErrDegenerateInput)
	}
	return outer, inner, nil
}

func facePlanar(face BrepFace, outer Polygon, inner []Polygon, opts Options) bool {
	if pf, ok := face.(Planarer); ok {
		return pf.IsPlanar(opts.PlanarTolerance)
	}
	n := outer.Normal()
	c := outer.Centroid()
	onPlane := func(p Polygon) bool {
		for _, pt := range p {
			if d := pt.Sub(c).Dot(n); d > opts.PlanarTolerance || d < -opts.PlanarTolerance {
				return false
			}
		}
		return true
	}
	if !onPlane(outer) {
		return false
	}
	for _, in := range inner {
		if !onPlane(in) {
			return false
		}
	}
	return true
}

// NewSolid reconstructs a solid from B-rep faces. Every face must be planar;
// if any face isn't, NewSolid returns [ErrUnsupportedGeometry] and no solid.
// Each face needs exactly one outer loop, with at least three vertices and a
// non-zero area; degenerate outer loops result in [ErrDegenerateInput]. Loops
// are canonicalized with [PolygonFromCurve] and every face is marked as a cap.
func NewSolid(faces []BrepFace, opts Options) (Solid, error) {
	out := Solid{Faces: make([]Face, 0, len(faces))}
	for i, face := range faces {
		outer, inner, err := canonicalFace(face, opts)
		if err != nil {
			return Solid{}, fmt.Errorf("face %d: %w", i, err)
		}
		if !facePlanar(face, outer, inner, opts) {
			Logger().Warn("rejecting solid with non-planar face", slog.Int("face", i), slog.Int("faces", len(faces)))
			return Solid{}, fmt.Errorf("face %d is not planar: %w", i, ErrUnsupportedGeometry)
		}
		out.Faces = append(out.Faces, Face{Outer: outer, Inner: inner, Cap: true})
	}
	return out, nil
}

// ConstructedSolid is a solid placed in a representation, either adding
// material or, for voids, removing it.
type ConstructedSolid struct {
	Solid     Solid
	Void      bool
	Transform Transform
}

// NewConstructedSolid reconstructs a solid with [NewSolid] and wraps it with
// the identity transform.
func NewConstructedSolid(faces []BrepFace, void bool, opts Options) (ConstructedSolid, error) {
	s, err := NewSolid(faces, opts)
	if err != nil {
		return ConstructedSolid{}, err
	}
	return ConstructedSolid{Solid: s, Void: void, Transform: Identity}, nil
}

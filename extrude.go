package canon

import (
	"fmt"
	"log/slog"
)

// Sweep is a profile swept along a straight path, as supplied by the host
// kernel. Profile 0 is the outer loop; the remaining profiles are nested
// inner loops.
type Sweep interface {
	PathStart() Point
	PathEnd() Point
	ProfileCount() int
	// Profile returns the i-th profile curve placed at the start of the path,
	// or at its end if atEnd is true.
	Profile(i int, atEnd bool) Curve
}

// LinearSweep is a simple [Sweep]. Its profiles are given at the start of the
// path; the profiles at the end are translated copies.
type LinearSweep struct {
	Start, End Point
	Profiles   []Curve
}

var _ Sweep = LinearSweep{}

func (s LinearSweep) PathStart() Point  { return s.Start }
func (s LinearSweep) PathEnd() Point    { return s.End }
func (s LinearSweep) ProfileCount() int { return len(s.Profiles) }

func (s LinearSweep) Profile(i int, atEnd bool) Curve {
	if atEnd {
		return TransformCurve(s.Profiles[i], Translate(s.End.Sub(s.Start)))
	}
	return s.Profiles[i]
}

// ExtrusionProfile is the canonical form of a sweep: a profile expressed in a
// local frame, and the direction and length to extrude it by.
type ExtrusionProfile struct {
	Profile
	// Frame maps the profile's local coordinates to world coordinates.
	Frame Transform
	// Direction is the unit sweep direction in world coordinates. It never
	// points down.
	Direction Vec3
	Length    float64
	// Flipped reports whether the input sweep pointed down and its profiles
	// were taken from the end of the path.
	Flipped bool
}

// NormalizeExtrusion derives the canonical profile, frame and direction of a
// sweep.
//
// A sweep pointing down is reversed and its profiles are read from the end of
// the path, so that extruding them along the reversed direction reproduces the
// same solid. The outer loop is wound to agree with the sweep direction. The
// frame is centered on the outer loop's centroid with its z axis along the
// sweep; if that axis is within opts.VerticalThreshold of the world z axis,
// the frame collapses to an elevation. All loops are re-expressed in the frame
// and the inner loops are wound opposite to the outer loop.
//
// Sweeps of zero length and sweeps without a usable outer loop result in
// [ErrDegenerateInput].
func NormalizeExtrusion(s Sweep, opts Options) (ExtrusionProfile, error) {
	v := s.PathEnd().Sub(s.PathStart())
	length := v.Hypot()
	if length <= opts.Tolerance {
		Logger().Warn("rejecting zero-length sweep", slog.String("start", s.PathStart().String()))
		return ExtrusionProfile{}, fmt.Errorf("sweep has length %g: %w", length, ErrDegenerateInput)
	}
	if s.ProfileCount() == 0 {
		return ExtrusionProfile{}, fmt.Errorf("sweep has no profiles: %w", ErrDegenerateInput)
	}

	flipped := false
	if v.Dot(ZAxis) < 0 {
		v = v.Negate()
		flipped = true
	}
	dir := v.Normalize()

	outer := PolygonFromCurve(s.Profile(0, flipped), opts)
	if len(outer) < 3 {
		return ExtrusionProfile{}, fmt.Errorf("outer loop has %d vertices: %w", len(outer), ErrDegenerateInput)
	}
	if outer.Normal().Dot(v) < 0 {
		outer = outer.Reversed()
	}

	frame := NewFrame(outer.Centroid(), dir)
	if frame.ZAxis().Dot(ZAxis) > opts.VerticalThreshold {
		frame = Translate(Vec3{0, 0, frame.Origin().Z})
	}
	toLocal := frame.Invert()

	var inner []Polygon
	for i := 1; i < s.ProfileCount(); i++ {
		inner = append(inner, PolygonFromCurve(s.Profile(i, flipped), opts).Transform(toLocal))
	}

	profile := NewProfile(outer.Transform(toLocal), inner...).OrientVoids()
	return ExtrusionProfile{
		Profile:   profile,
		Frame:     frame,
		Direction: dir,
		Length:    length,
		Flipped:   flipped,
	}, nil
}

// Extrude is a profile extruded along a direction.
type Extrude struct {
	Profile   Profile
	Height    float64
	Direction Vec3
	Void      bool
}

// ExtrudeSweep converts a sweep into an extrusion of its canonical profile.
// The extrusion is expressed in the returned frame: the profile is local, and
// so is the direction.
func ExtrudeSweep(s Sweep, opts Options) (Extrude, Transform, error) {
	ep, err := NormalizeExtrusion(s, opts)
	if err != nil {
		return Extrude{}, Transform{}, err
	}
	return Extrude{
		Profile:   ep.Profile,
		Height:    ep.Length,
		Direction: ep.Frame.Invert().ApplyVec(ep.Direction),
	}, ep.Frame, nil
}

// ExtrudeBox converts the eight corners of a box into an extrusion of its
// bottom face. Corners 0 to 3 are the bottom face in order, and corners 4 to 7
// lie above them.
func ExtrudeBox(corners [8]Point, void bool, opts Options) Extrude {
	h := corners[4].Sub(corners[0])
	return Extrude{
		Profile:   NewProfile(NewPolygon(corners[:4], opts.Tolerance)),
		Height:    h.Hypot(),
		Direction: h.Normalize(),
		Void:      void,
	}
}

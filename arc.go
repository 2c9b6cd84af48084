package canon

import "math"

// Arc is a circular arc lying in the XY plane of a frame. Its parameter is the
// angle in radians, measured from the frame's x axis towards its y axis.
type Arc struct {
	Frame      Transform
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

var _ Curve = Arc{}

// NewCircle returns a full circle of the given radius around center, lying in
// the plane perpendicular to normal.
func NewCircle(center Point, normal Vec3, radius float64) Arc {
	return Arc{
		Frame:      NewFrame(center, normal),
		Radius:     radius,
		StartAngle: 0,
		SweepAngle: 2 * math.Pi,
	}
}

func (a Arc) Eval(th float64) Point {
	sin, cos := math.Sincos(th)
	return Pt(a.Radius*cos, a.Radius*sin, 0).Transform(a.Frame)
}

func (a Arc) Domain() (float64, float64) {
	return a.StartAngle, a.StartAngle + a.SweepAngle
}

func (a Arc) Center() Point { return a.Frame.Origin() }

// Length returns the length of the arc.
func (a Arc) Length() float64 {
	return math.Abs(a.SweepAngle) * a.Radius
}

// IsClosed reports whether the arc is a full circle.
func (a Arc) IsClosed() bool {
	return math.Abs(a.SweepAngle) >= 2*math.Pi
}

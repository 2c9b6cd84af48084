package canon

// Line represents a finite line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Curve = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec3) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Box {
	return NewBoxFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Domain() (float64, float64) { return 0, 1 }

// Polyline implements [Polyliner].
func (l Line) Polyline() ([]Point, bool) {
	return []Point{l.P0, l.P1}, true
}

// Nearest returns the squared distance from pt to the closest point on the
// line and the parameter of that point. The parameter is clamped to [0, 1], so
// points beyond either end project onto the endpoint.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// Distance returns the distance from pt to the infinite line through l. It is
// NaN for a zero-length line.
func (l Line) Distance(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	return d.Cross(pt.Sub(l.P0)).Hypot() / d.Hypot()
}

func (l Line) Transform(t Transform) Line {
	return Line{
		P0: l.P0.Transform(t),
		P1: l.P1.Transform(t),
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Reverse() Line {
	return Line{l.P1, l.P0}
}

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

// Direction returns the unnormalized vector from start to end.
func (l Line) Direction() Vec3 {
	return l.P1.Sub(l.P0)
}

package canon

import "math"

// Curve describes a curve parametrized by a scalar over a finite domain.
//
// The curves consumed by this package come from a host CAD kernel. They only
// need to be able to evaluate themselves; everything else is derived by
// sampling.
type Curve interface {
	// Eval evaluates the curve at parameter t, with t in the curve's domain.
	Eval(t float64) Point
	// Domain returns the parameter interval [t0, t1] of the curve.
	Domain() (t0, t1 float64)
}

// Polyliner is an optional interface implemented by curves that are piecewise
// linear. When Polyline reports true, the returned points are the curve's
// control points, in order, and are consumed directly instead of sampling the
// curve. A closed polyline repeats its first point at the end.
type Polyliner interface {
	Polyline() ([]Point, bool)
}

// Points is a piecewise linear curve through a sequence of points. Its domain
// is [0, n-1], with integer parameters landing on the points.
type Points []Point

var _ Curve = Points(nil)
var _ Polyliner = Points(nil)

func (p Points) Eval(t float64) Point {
	switch len(p) {
	case 0:
		return Point{}
	case 1:
		return p[0]
	}
	if t <= 0 {
		return p[0]
	}
	if t >= float64(len(p)-1) {
		return p[len(p)-1]
	}
	i, frac := math.Modf(t)
	return p[int(i)].Lerp(p[int(i)+1], frac)
}

func (p Points) Domain() (float64, float64) {
	return 0, float64(max(len(p)-1, 0))
}

func (p Points) Polyline() ([]Point, bool) {
	return p, true
}

// IsClosed reports whether the first and last points coincide within
// tolerance. A closed sequence needs at least three points, so that the
// closing point doesn't collapse a two-point segment.
func (p Points) IsClosed(tolerance float64) bool {
	return len(p) > 2 && p[0].Distance(p[len(p)-1]) <= tolerance
}

// TransformCurve returns c mapped through t. If c is a [Polyliner], so is the
// result.
func TransformCurve(c Curve, t Transform) Curve {
	if _, ok := c.(Polyliner); ok {
		return transformedPolyCurve{transformedCurve{c, t}}
	}
	return transformedCurve{c, t}
}

type transformedCurve struct {
	c Curve
	t Transform
}

func (tc transformedCurve) Eval(t float64) Point        { return tc.c.Eval(t).Transform(tc.t) }
func (tc transformedCurve) Domain() (float64, float64) { return tc.c.Domain() }

type transformedPolyCurve struct {
	transformedCurve
}

func (tc transformedPolyCurve) Polyline() ([]Point, bool) {
	pts, ok := tc.c.(Polyliner).Polyline()
	if !ok {
		return nil, false
	}
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[i] = pt.Transform(tc.t)
	}
	return out, true
}

// Samples returns n points of c at uniformly spaced parameters
// t0 + i/n·(t1 − t0), i ∈ [0, n). The end of the domain is not sampled, which
// suits closed curves, whose end coincides with their start.
func Samples(c Curve, n int) []Point {
	t0, t1 := c.Domain()
	out := make([]Point, n)
	for i := range n {
		out[i] = c.Eval(float64(i)/float64(n)*(t1-t0) + t0)
	}
	return out
}

package canon

import (
	"iter"
	"slices"
)

// Dedup returns the points of seq in order, skipping every point that lies
// within tolerance of the previously kept point. The result never contains a
// zero-length step.
func Dedup(seq iter.Seq[Point], tolerance float64) []Point {
	var out []Point
	for pt := range seq {
		if len(out) == 0 || out[len(out)-1].Distance(pt) > tolerance {
			out = append(out, pt)
		}
	}
	return out
}

// NewPolyline canonicalizes an ordered sequence of points into a polyline.
func NewPolyline(pts []Point, tolerance float64) Polyline {
	return Polyline(Dedup(slices.Values(pts), tolerance))
}

// NewPolygon canonicalizes an ordered ring of points into a polygon. An
// explicit closing point that repeats the first point is dropped, as closure
// is implicit. Trailing points that coincide with the first point after
// deduplication are dropped as well, so the closing segment is never
// degenerate.
//
// NewPolygon never fails. The result has fewer than three vertices if the
// input is degenerate; callers validate the length before geometric use.
func NewPolygon(pts []Point, tolerance float64) Polygon {
	if Points(pts).IsClosed(tolerance) {
		pts = pts[:len(pts)-1]
	}
	out := Dedup(slices.Values(pts), tolerance)
	for len(out) > 1 && out[len(out)-1].Distance(out[0]) <= tolerance {
		out = out[:len(out)-1]
	}
	return Polygon(out)
}

// PolygonFromCurve converts a closed curve into a polygon. Piecewise linear
// curves (see [Polyliner]) contribute their control points. Any other curve is
// sampled uniformly at opts.PolygonSamples parameters.
func PolygonFromCurve(c Curve, opts Options) Polygon {
	if pl, ok := c.(Polyliner); ok {
		if pts, ok := pl.Polyline(); ok {
			return NewPolygon(pts, opts.Tolerance)
		}
	}
	return NewPolygon(Samples(c, opts.PolygonSamples), opts.Tolerance)
}

// PolylineFromCurve converts an open curve into a polyline. Piecewise linear
// curves (see [Polyliner]) contribute their control points. Any other curve is
// sampled uniformly at opts.PolylineSamples parameters.
//
// Like [Samples], the sampling excludes the end of the curve's domain.
func PolylineFromCurve(c Curve, opts Options) Polyline {
	if pl, ok := c.(Polyliner); ok {
		if pts, ok := pl.Polyline(); ok {
			return NewPolyline(pts, opts.Tolerance)
		}
	}
	return NewPolyline(Samples(c, opts.PolylineSamples), opts.Tolerance)
}

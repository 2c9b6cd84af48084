package canon

// EdgeVertices samples the boundary edges of a face into a flat list of
// points. Edges that deviate from their chord by no more than
// opts.LinearTolerance contribute their two endpoints; other edges contribute
// the vertices of [PolylineFromCurve].
//
// The result is unordered with respect to the face's boundary and typically
// contains duplicates where edges meet. It is the input of [Reorder].
func EdgeVertices(edges []Curve, opts Options) []Point {
	var out []Point
	for _, e := range edges {
		t0, t1 := e.Domain()
		if IsLinear(e, opts.LinearTolerance, opts.PolylineSamples) {
			out = append(out, e.Eval(t0), e.Eval(t1))
		} else {
			out = append(out, PolylineFromCurve(e, opts)...)
		}
	}
	return out
}

// IsLinear reports whether every point of c lies within tolerance of the
// segment between its endpoints. Piecewise linear curves are tested on their
// control points; other curves on n+1 uniform samples including both ends.
// Closed curves, whose chord has no length, are never linear.
func IsLinear(c Curve, tolerance float64, n int) bool {
	t0, t1 := c.Domain()
	chord := Line{c.Eval(t0), c.Eval(t1)}
	if chord.Length() <= 1e-9 {
		return false
	}

	var pts []Point
	if pl, ok := c.(Polyliner); ok {
		pts, _ = pl.Polyline()
	}
	if pts == nil {
		pts = append(Samples(c, n), chord.P1)
	}
	for _, pt := range pts {
		if d, _ := chord.Nearest(pt); d > tolerance*tolerance {
			return false
		}
	}
	return true
}

package canon

import (
	"iter"
	"math"
	"slices"
)

// Polygon is a closed sequence of vertices. The last vertex connects back to
// the first; the closing vertex is never repeated.
//
// Polygons built with [NewPolygon] or [PolygonFromCurve] have no two
// consecutive vertices closer than the coincidence tolerance. Polygons are
// treated as immutable: methods that change the geometry return new polygons.
type Polygon []Point

// Polyline is an open sequence of vertices, with the same deduplication
// guarantees as [Polygon].
type Polyline []Point

// Segment returns the i-th segment of the polygon, from vertex i to vertex
// i+1, wrapping around at the end.
func (p Polygon) Segment(i int) Line {
	return Line{p[i], p[(i+1)%len(p)]}
}

// Segments returns an iterator over the indexed segments of the polygon,
// including the closing segment.
func (p Polygon) Segments() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		if len(p) < 2 {
			return
		}
		for i := range p {
			if !yield(i, p.Segment(i)) {
				return
			}
		}
	}
}

// AreaVector returns the vector area of the polygon computed with Newell's
// method. Its direction is the polygon's normal according to the right-hand
// rule and its magnitude is the enclosed area for planar polygons.
func (p Polygon) AreaVector() Vec3 {
	var n Vec3
	for i, cur := range p {
		next := p[(i+1)%len(p)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n.Mul(0.5)
}

// Normal returns the unit normal of the polygon. It is NaN for polygons with
// no area.
func (p Polygon) Normal() Vec3 {
	return p.AreaVector().Normalize()
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return p.AreaVector().Hypot()
}

// SignedArea returns the area of the polygon projected onto the plane
// perpendicular to axis, positive if the polygon winds counterclockwise when
// seen from the tip of axis. axis is expected to be of unit length.
func (p Polygon) SignedArea(axis Vec3) float64 {
	return p.AreaVector().Dot(axis)
}

// Centroid returns the area centroid of the polygon. For polygons without
// area it returns the mean of the vertices.
func (p Polygon) Centroid() Point {
	if len(p) == 0 {
		return Point{}
	}
	n := p.Normal()
	if !n.IsNaN() {
		var sum Vec3
		var weight float64
		v0 := p[0]
		for i := 1; i+1 < len(p); i++ {
			w := p[i].Sub(v0).Cross(p[i+1].Sub(v0)).Dot(n)
			c := Vec3(v0).Add(Vec3(p[i])).Add(Vec3(p[i+1])).Div(3)
			sum = sum.Add(c.Mul(w))
			weight += w
		}
		if weight != 0 {
			return Point(sum.Div(weight))
		}
	}
	var sum Vec3
	for _, pt := range p {
		sum = sum.Add(Vec3(pt))
	}
	return Point(sum.Div(float64(len(p))))
}

// Perimeter returns the total length of the polygon's segments.
func (p Polygon) Perimeter() float64 {
	var l float64
	for _, seg := range p.Segments() {
		l += seg.Length()
	}
	return l
}

// Reversed returns the polygon with its vertex order reversed.
func (p Polygon) Reversed() Polygon {
	out := slices.Clone(p)
	slices.Reverse(out)
	return out
}

// ForceOrientation returns p if its signed area about axis is non-negative
// and the reversed polygon otherwise. Polygons whose plane contains axis have
// zero signed area and are returned unchanged.
func (p Polygon) ForceOrientation(axis Vec3) Polygon {
	if p.SignedArea(axis) < 0 {
		return p.Reversed()
	}
	return p
}

// ForceZOrientation is ForceOrientation about the world z axis: the result
// winds counterclockwise when seen from above.
func (p Polygon) ForceZOrientation() Polygon {
	return p.ForceOrientation(ZAxis)
}

// Closed returns the polygon as a closed polyline curve, with the first vertex
// repeated at the end. This is the form host kernels expect for closed
// polylines; [PolygonFromCurve] turns it back into p.
func (p Polygon) Closed() Points {
	if len(p) == 0 {
		return nil
	}
	out := make(Points, 0, len(p)+1)
	out = append(out, p...)
	return append(out, p[0])
}

// Transform returns the polygon with every vertex mapped through t.
func (p Polygon) Transform(t Transform) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pt.Transform(t)
	}
	return out
}

// IsPlanar reports whether every vertex lies within tolerance of the plane
// through the polygon's centroid perpendicular to its normal. Polygons without
// a well-defined normal (fewer than three vertices, or collinear vertices) are
// trivially planar.
func (p Polygon) IsPlanar(tolerance float64) bool {
	n := p.Normal()
	if n.IsNaN() {
		return true
	}
	c := p.Centroid()
	for _, pt := range p {
		if math.Abs(pt.Sub(c).Dot(n)) > tolerance {
			return false
		}
	}
	return true
}

func (p Polygon) BoundingBox() Box {
	b := EmptyBox
	for _, pt := range p {
		b = b.UnionPoint(pt)
	}
	return b
}

// Segments returns an iterator over the indexed segments of the polyline.
func (p Polyline) Segments() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for i := 0; i+1 < len(p); i++ {
			if !yield(i, Line{p[i], p[i+1]}) {
				return
			}
		}
	}
}

// Length returns the total length of the polyline.
func (p Polyline) Length() float64 {
	var l float64
	for _, seg := range p.Segments() {
		l += seg.Length()
	}
	return l
}

func (p Polyline) Reversed() Polyline {
	out := slices.Clone(p)
	slices.Reverse(out)
	return out
}

func (p Polyline) Transform(t Transform) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[i] = pt.Transform(t)
	}
	return out
}

func (p Polyline) BoundingBox() Box {
	b := EmptyBox
	for _, pt := range p {
		b = b.UnionPoint(pt)
	}
	return b
}

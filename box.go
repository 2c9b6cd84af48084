package canon

import "math"

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Point
}

// EmptyBox is the box that contains no points. It is the identity of
// [Box.Union] and [Box.UnionPoint].
var EmptyBox = Box{
	Min: Point{math.Inf(1), math.Inf(1), math.Inf(1)},
	Max: Point{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
}

// NewBoxFromPoints returns the box with the extents of p0 and p1, ensuring that
// all sizes are non-negative.
func NewBoxFromPoints(p0, p1 Point) Box {
	return Box{
		Min: Point{min(p0.X, p1.X), min(p0.Y, p1.Y), min(p0.Z, p1.Z)},
		Max: Point{max(p0.X, p1.X), max(p0.Y, p1.Y), max(p0.Z, p1.Z)},
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the extents of the box along the world axes.
func (b Box) Size() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}

func (b Box) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Union returns the smallest box enclosing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Point{min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)},
		Max: Point{max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)},
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points, starting from
// [EmptyBox], yields their enclosing box.
func (b Box) UnionPoint(pt Point) Box {
	return Box{
		Min: Point{min(b.Min.X, pt.X), min(b.Min.Y, pt.Y), min(b.Min.Z, pt.Z)},
		Max: Point{max(b.Max.X, pt.X), max(b.Max.Y, pt.Y), max(b.Max.Z, pt.Z)},
	}
}

// Contains reports whether pt lies inside the box or on its boundary.
func (b Box) Contains(pt Point) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// Inflate expands the box by d in every direction.
func (b Box) Inflate(d float64) Box {
	v := Vec3{d, d, d}
	return Box{
		Min: b.Min.Translate(v.Negate()),
		Max: b.Max.Translate(v),
	}
}

func (b Box) IsInf() bool {
	return b.Min.IsInf() || b.Max.IsInf()
}

func (b Box) IsNaN() bool {
	return b.Min.IsNaN() || b.Max.IsNaN()
}

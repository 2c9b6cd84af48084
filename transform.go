package canon

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Transform describes a 3D affine transform via coefficients.
//
// If the coefficients are (n0, ..., n11), then the resulting transformation
// represents this augmented matrix:
//
//	| n0 n3 n6 n9  |
//	| n1 n4 n7 n10 |
//	| n2 n5 n8 n11 |
//	| 0  0  0  1   |
//
// The columns of the linear part are the images of the x, y and z axes, and
// the last column is the translation. The idea is that (A * B) * v == A * (B * v).
type Transform struct {
	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

// Identity is the identity transform.
var Identity = Transform{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}

// Scale creates a transform representing non-uniform scaling along the world
// axes.
func Scale(x, y, z float64) Transform {
	return Transform{x, 0, 0, 0, y, 0, 0, 0, z, 0, 0, 0}
}

// Translate creates a transform representing translation.
func Translate(v Vec3) Transform {
	return Transform{1, 0, 0, 0, 1, 0, 0, 0, 1, v.X, v.Y, v.Z}
}

// RotateZ creates a transform representing a rotation of th radians about the
// world z axis. A positive angle rotates the positive x axis into the
// positive y axis.
func RotateZ(th float64) Transform {
	sin, cos := math.Sincos(th)
	return Transform{cos, sin, 0, -sin, cos, 0, 0, 0, 1, 0, 0, 0}
}

// NewTransformFromAxes creates a transform that maps the world axes onto x, y
// and z and the world origin onto origin.
func NewTransformFromAxes(origin Point, x, y, z Vec3) Transform {
	return Transform{
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		z.X, z.Y, z.Z,
		origin.X, origin.Y, origin.Z,
	}
}

// NewFrame creates a right-handed orthonormal frame whose z axis points along
// zAxis and whose origin is origin.
//
// When zAxis is not parallel to the world z axis, the frame's x axis is
// horizontal (Z × zAxis). Otherwise the x axis is the world x axis. The y
// axis completes the frame. A zero zAxis produces NaN coefficients.
func NewFrame(origin Point, zAxis Vec3) Transform {
	z := zAxis.Normalize()
	var x Vec3
	if !z.IsParallel(ZAxis, 1e-12) {
		x = ZAxis.Cross(z).Normalize()
	} else {
		x = XAxis
	}
	y := z.Cross(x).Normalize()
	return NewTransformFromAxes(origin, x, y, z)
}

// Coefficients returns the coefficients of the transform.
func (t Transform) Coefficients() [12]float64 {
	return [12]float64{t.N0, t.N1, t.N2, t.N3, t.N4, t.N5, t.N6, t.N7, t.N8, t.N9, t.N10, t.N11}
}

// NewTransform creates a new transform from an array of coefficients.
// Alternatively, you can initialize the fields of [Transform] manually.
func NewTransform(n [12]float64) Transform {
	return Transform{n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10], n[11]}
}

func (t Transform) Mul(o Transform) Transform {
	return Transform{
		t.N0*o.N0 + t.N3*o.N1 + t.N6*o.N2,
		t.N1*o.N0 + t.N4*o.N1 + t.N7*o.N2,
		t.N2*o.N0 + t.N5*o.N1 + t.N8*o.N2,

		t.N0*o.N3 + t.N3*o.N4 + t.N6*o.N5,
		t.N1*o.N3 + t.N4*o.N4 + t.N7*o.N5,
		t.N2*o.N3 + t.N5*o.N4 + t.N8*o.N5,

		t.N0*o.N6 + t.N3*o.N7 + t.N6*o.N8,
		t.N1*o.N6 + t.N4*o.N7 + t.N7*o.N8,
		t.N2*o.N6 + t.N5*o.N7 + t.N8*o.N8,

		t.N0*o.N9 + t.N3*o.N10 + t.N6*o.N11 + t.N9,
		t.N1*o.N9 + t.N4*o.N10 + t.N7*o.N11 + t.N10,
		t.N2*o.N9 + t.N5*o.N10 + t.N8*o.N11 + t.N11,
	}
}

// Then creates t followed by o.
//
// Equivalent to "o * t"
func (t Transform) Then(o Transform) Transform {
	return o.Mul(t)
}

// ThenTranslate creates t followed by a translation of v.
//
// Equivalent to "Translate(v) * t"
func (t Transform) ThenTranslate(v Vec3) Transform {
	t.N9 += v.X
	t.N10 += v.Y
	t.N11 += v.Z
	return t
}

// Determinant computes the determinant of the linear part.
func (t Transform) Determinant() float64 {
	return t.N0*(t.N4*t.N8-t.N7*t.N5) -
		t.N3*(t.N1*t.N8-t.N7*t.N2) +
		t.N6*(t.N1*t.N5-t.N4*t.N2)
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (t Transform) Invert() Transform {
	det := t.Determinant()
	if det == 0 {
		nan := math.NaN()
		return Transform{nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan}
	}
	invDet := 1 / det
	// Inverse of the linear part via the adjugate.
	inv := Transform{
		+invDet * (t.N4*t.N8 - t.N5*t.N7),
		-invDet * (t.N1*t.N8 - t.N2*t.N7),
		+invDet * (t.N1*t.N5 - t.N2*t.N4),

		-invDet * (t.N3*t.N8 - t.N5*t.N6),
		+invDet * (t.N0*t.N8 - t.N2*t.N6),
		-invDet * (t.N0*t.N5 - t.N2*t.N3),

		+invDet * (t.N3*t.N7 - t.N4*t.N6),
		-invDet * (t.N0*t.N7 - t.N1*t.N6),
		+invDet * (t.N0*t.N4 - t.N1*t.N3),

		0, 0, 0,
	}
	tr := Point{t.N9, t.N10, t.N11}.Transform(inv)
	inv.N9, inv.N10, inv.N11 = -tr.X, -tr.Y, -tr.Z
	return inv
}

func (t Transform) IsInf() bool {
	for _, n := range t.Coefficients() {
		if math.IsInf(n, 0) {
			return true
		}
	}
	return false
}

func (t Transform) IsNaN() bool {
	for _, n := range t.Coefficients() {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}

// Origin returns the image of the world origin, i.e. the translation.
func (t Transform) Origin() Point { return Point{t.N9, t.N10, t.N11} }

// Translation returns the translation component of this transformation.
func (t Transform) Translation() Vec3 { return Vec3{t.N9, t.N10, t.N11} }

func (t Transform) XAxis() Vec3 { return Vec3{t.N0, t.N1, t.N2} }
func (t Transform) YAxis() Vec3 { return Vec3{t.N3, t.N4, t.N5} }
func (t Transform) ZAxis() Vec3 { return Vec3{t.N6, t.N7, t.N8} }

// ApplyVec transforms a direction, ignoring the translation.
func (t Transform) ApplyVec(v Vec3) Vec3 {
	return Vec3{
		X: t.N0*v.X + t.N3*v.Y + t.N6*v.Z,
		Y: t.N1*v.X + t.N4*v.Y + t.N7*v.Z,
		Z: t.N2*v.X + t.N5*v.Y + t.N8*v.Z,
	}
}

// Matrix returns the transform as a row-major 4x4 matrix, the layout used by
// host kernels that exchange transforms as M00..M33.
func (t Transform) Matrix() f64.Mat4 {
	return f64.Mat4{
		t.N0, t.N3, t.N6, t.N9,
		t.N1, t.N4, t.N7, t.N10,
		t.N2, t.N5, t.N8, t.N11,
		0, 0, 0, 1,
	}
}

// NewTransformFromMatrix creates a transform from a row-major 4x4 matrix. The
// projective row is ignored.
func NewTransformFromMatrix(m f64.Mat4) Transform {
	return Transform{
		m[0], m[4], m[8],
		m[1], m[5], m[9],
		m[2], m[6], m[10],
		m[3], m[7], m[11],
	}
}

// Placement is a horizontal placement: an origin and a rotation, in degrees,
// of a plane's x axis about the world z axis.
type Placement struct {
	Origin   Point
	Rotation float64
}

// Placement returns the placement of the frame described by t. The rotation
// is the signed angle from the world x axis to the frame's x axis, measured in
// the world XY plane, in [0, 360).
func (t Transform) Placement() Placement {
	x := t.XAxis()
	deg := math.Atan2(x.Y, x.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return Placement{
		Origin:   t.Origin(),
		Rotation: deg,
	}
}

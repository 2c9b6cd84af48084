package canon

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPolygonArea(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-9)
	sq := square(10, 3)
	diff(t, 100.0, sq.Area(), opt)
	diff(t, 100.0, sq.SignedArea(ZAxis), opt)
	diff(t, -100.0, sq.Reversed().SignedArea(ZAxis), opt)
	diff(t, ZAxis, sq.Normal())
	diff(t, 40.0, sq.Perimeter(), opt)

	// A vertical polygon has area but no signed area about z.
	vert := Polygon{Pt(0, 0, 0), Pt(2, 0, 0), Pt(2, 0, 2), Pt(0, 0, 2)}
	diff(t, 4.0, vert.Area(), opt)
	diff(t, 0.0, vert.SignedArea(ZAxis), opt)
	diff(t, -4.0, vert.SignedArea(YAxis), opt)
}

func TestPolygonCentroid(t *testing.T) {
	assertNear(t, square(10, 3).Centroid(), Pt(5, 5, 3), 1e-12)

	// An L shape: the area centroid differs from the vertex mean.
	l := Polygon{Pt(0, 0, 0), Pt(2, 0, 0), Pt(2, 1, 0), Pt(1, 1, 0), Pt(1, 2, 0), Pt(0, 2, 0)}
	assertNear(t, l.Centroid(), Pt(5.0/6, 5.0/6, 0), 1e-12)

	// Degenerate polygons fall back to the vertex mean.
	line := Polygon{Pt(0, 0, 0), Pt(2, 0, 0), Pt(4, 0, 0)}
	assertNear(t, line.Centroid(), Pt(2, 0, 0), 1e-12)
}

func TestForceOrientation(t *testing.T) {
	sq := square(10, 0)
	inputs := []Polygon{
		sq,
		sq.Reversed(),
		// Tilted copies keep a vertical component.
		sq.Transform(NewFrame(Pt(1, 1, 1), Vec(0.2, 0.1, 1))),
		sq.Reversed().Transform(NewFrame(Pt(1, 1, 1), Vec(0.2, 0.1, 1))),
		sq.Transform(NewFrame(Point{}, Vec(0, 0.5, -1))),
	}
	for i, in := range inputs {
		if sa := in.ForceZOrientation().SignedArea(ZAxis); sa <= 0 {
			t.Errorf("input %d: got signed area %g after forcing orientation", i, sa)
		}
	}

	// Already oriented polygons are returned as they are.
	diff(t, sq, sq.ForceZOrientation())
	diff(t, sq.Reversed(), sq.ForceOrientation(ZAxis.Negate()))
}

func TestPolygonIsPlanar(t *testing.T) {
	if !square(1, 5).Transform(NewFrame(Pt(3, 2, 1), Vec(1, 2, 3))).IsPlanar(1e-9) {
		t.Error("tilted square should be planar")
	}
	warped := Polygon{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0.01), Pt(0, 1, 0)}
	if warped.IsPlanar(1e-6) {
		t.Error("warped quad shouldn't be planar")
	}
	if !warped.IsPlanar(0.01) {
		t.Error("warped quad should be planar within its warp")
	}
}

func TestPolygonRoundTripArea(t *testing.T) {
	pg := Polygon{Pt(0, 0, 1), Pt(7, 0, 1), Pt(7, 2, 1), Pt(3, 5, 1), Pt(0, 4, 1)}

	native := pg.Closed()
	diff(t, len(pg)+1, len(native))
	diff(t, native[0], native[len(native)-1])
	back := PolygonFromCurve(native, DefaultOptions)
	diff(t, pg, back)

	if len(back) != len(pg) {
		t.Fatalf("got %d vertices, want %d", len(back), len(pg))
	}
	diff(t, pg.SignedArea(ZAxis), back.SignedArea(ZAxis), cmpopts.EquateApprox(0, DefaultOptions.Tolerance))
	diff(t, pg.Area(), NewProfile(back).Area(), cmpopts.EquateApprox(0, DefaultOptions.Tolerance))
}

func TestPolygonClosed(t *testing.T) {
	if Polygon(nil).Closed() != nil {
		t.Error("closing an empty polygon should yield nil")
	}
	sq := square(1, 0)
	diff(t, Points{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0), Pt(0, 1, 0), Pt(0, 0, 0)}, sq.Closed())
	// The polygon itself is left alone.
	diff(t, 4, len(sq))
}

func TestPolygonSegments(t *testing.T) {
	sq := square(2, 0)
	var got []Line
	for i, seg := range sq.Segments() {
		if len(got) != i {
			t.Fatalf("got index %d, want %d", i, len(got))
		}
		got = append(got, seg)
	}
	diff(t, []Line{
		{Pt(0, 0, 0), Pt(2, 0, 0)},
		{Pt(2, 0, 0), Pt(2, 2, 0)},
		{Pt(2, 2, 0), Pt(0, 2, 0)},
		{Pt(0, 2, 0), Pt(0, 0, 0)},
	}, got)

	var n int
	for range (Polyline{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0)}).Segments() {
		n++
	}
	if n != 2 {
		t.Errorf("got %d polyline segments, want 2", n)
	}
	if l := (Polyline{Pt(0, 0, 0), Pt(3, 0, 0), Pt(3, 4, 0)}).Length(); math.Abs(l-7) > 1e-12 {
		t.Errorf("got length %g, want 7", l)
	}
}

func TestPolygonBoundingBox(t *testing.T) {
	b := Polygon{Pt(1, 5, -1), Pt(-2, 0, 4), Pt(3, 3, 3)}.BoundingBox()
	diff(t, Box{Min: Pt(-2, 0, -1), Max: Pt(3, 5, 4)}, b)
	if !Polygon(nil).BoundingBox().IsEmpty() {
		t.Error("bounding box of an empty polygon should be empty")
	}
}

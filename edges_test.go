package canon

import (
	"math"
	"testing"
)

func TestIsLinear(t *testing.T) {
	tests := []struct {
		name string
		c    Curve
		want bool
	}{
		{"line", Line{Pt(0, 0, 0), Pt(5, 5, 5)}, true},
		{"straight polyline", Points{Pt(0, 0, 0), Pt(1, 0, 0), Pt(3, 0, 0)}, true},
		{"slightly bent polyline", Points{Pt(0, 0, 0), Pt(1, 0.1, 0), Pt(3, 0, 0)}, true},
		{"bent polyline", Points{Pt(0, 0, 0), Pt(1, 1, 0), Pt(3, 0, 0)}, false},
		{"flat arc", Arc{Frame: Identity, Radius: 100, StartAngle: 0, SweepAngle: 0.05}, true},
		{"quarter arc", Arc{Frame: Identity, Radius: 1, StartAngle: 0, SweepAngle: math.Pi / 2}, false},
		{"circle", NewCircle(Point{}, ZAxis, 0.01), false},
		{"closed polyline", square(0.01, 0).Closed(), false},
	}
	for _, tt := range tests {
		if got := IsLinear(tt.c, 0.2, 50); got != tt.want {
			t.Errorf("%s: got %t, want %t", tt.name, got, tt.want)
		}
	}
}

func TestEdgeVertices(t *testing.T) {
	arc := Arc{Frame: Translate(Vec(0, 0, 1)), Radius: 2, StartAngle: 0, SweepAngle: math.Pi}
	edges := []Curve{
		Line{Pt(-2, 0, 1), Pt(2, 0, 1)},
		arc,
	}
	got := EdgeVertices(edges, DefaultOptions)

	if len(got) != 2+DefaultOptions.PolylineSamples {
		t.Fatalf("got %d vertices, want %d", len(got), 2+DefaultOptions.PolylineSamples)
	}
	diff(t, []Point{Pt(-2, 0, 1), Pt(2, 0, 1)}, got[:2])
	diff(t, []Point(PolylineFromCurve(arc, DefaultOptions)), got[2:])

	if got := EdgeVertices(nil, DefaultOptions); len(got) != 0 {
		t.Errorf("got %d vertices for no edges", len(got))
	}
}

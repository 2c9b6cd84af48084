package canon

import (
	"errors"
	"math"
	"math/rand/v2"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestGuideProject(t *testing.T) {
	g, err := NewGuide(square(10, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 40.0, g.Perimeter())

	tests := []struct {
		pt         Point
		want       Projection
		normalized float64
	}{
		{
			Pt(5, -1, 0),
			Projection{Point: Pt(5, 0, 0), Segment: 0, Fraction: 0.5, DistanceSquared: 1, Param: Parameter{0, 0.5}, Arclen: 5},
			0.125,
		},
		{
			Pt(11, 5, 0),
			Projection{Point: Pt(10, 5, 0), Segment: 1, Fraction: 0.5, DistanceSquared: 1, Param: Parameter{1, 0.5}, Arclen: 15},
			0.375,
		},
		{
			// Above the guide: the full 3D distance counts.
			Pt(5, -1, 3),
			Projection{Point: Pt(5, 0, 0), Segment: 0, Fraction: 0.5, DistanceSquared: 10, Param: Parameter{0, 0.5}, Arclen: 5},
			0.125,
		},
		{
			// Inside, closest to the left edge.
			Pt(2, 5, 0),
			Projection{Point: Pt(0, 5, 0), Segment: 3, Fraction: 0.5, DistanceSquared: 4, Param: Parameter{3, 0.5}, Arclen: 35},
			0.875,
		},
		{
			// Equidistant from segments 0 and 1; the smaller index wins and
			// the end of segment 0 is the start of segment 1.
			Pt(11, -1, 0),
			Projection{Point: Pt(10, 0, 0), Segment: 0, Fraction: 1, DistanceSquared: 2, Param: Parameter{1, 0}, Arclen: 10},
			0.25,
		},
		{
			// Equidistant from segments 0 and 3.
			Pt(-1, -1, 0),
			Projection{Point: Pt(0, 0, 0), Segment: 0, Fraction: 0, DistanceSquared: 2, Param: Parameter{0, 0}, Arclen: 0},
			0,
		},
		{
			// The end of the last segment wraps around to the first.
			Pt(-1, 0.5, 0),
			Projection{Point: Pt(0, 0.5, 0), Segment: 3, Fraction: 0.95, DistanceSquared: 1, Param: Parameter{3, 0.95}, Arclen: 39.5},
			0.9875,
		},
	}

	opt := cmpopts.EquateApprox(0, 1e-12)
	for _, tt := range tests {
		got := g.Project(tt.pt)
		diff(t, tt.want, got, opt)
		diff(t, tt.normalized, g.Normalized(got.Param), opt)
	}
}

func TestGuideParameterRange(t *testing.T) {
	g, err := NewGuide(Polygon(Samples(NewCircle(Point{}, ZAxis, 3), 12)))
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		pt := Pt(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*2-1)
		p := g.Project(pt)
		if p.Param.Fraction < 0 || p.Param.Fraction >= 1 {
			t.Fatalf("%s: fraction %g out of range", pt, p.Param.Fraction)
		}
		if n := g.Normalized(p.Param); n < 0 || n >= 1 {
			t.Fatalf("%s: normalized parameter %g out of range", pt, n)
		}
	}
}

func TestGuideOrientation(t *testing.T) {
	sq := square(10, 0)
	ccw, err := NewGuide(sq)
	if err != nil {
		t.Fatal(err)
	}
	cw, err := NewGuide(sq.Reversed())
	if err != nil {
		t.Fatal(err)
	}
	diff(t, sq, ccw.Polygon())
	diff(t, sq, cw.Polygon())

	// About the negative z axis, circulation is clockwise seen from above.
	down, err := NewGuideAbout(sq, ZAxis.Negate())
	if err != nil {
		t.Fatal(err)
	}
	if sa := down.Polygon().SignedArea(ZAxis); sa >= 0 {
		t.Errorf("got signed area %g, want negative", sa)
	}
}

func TestGuideDegenerate(t *testing.T) {
	inputs := []Polygon{
		nil,
		{Pt(0, 0, 0), Pt(1, 0, 0)},
		{Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0)},
		// Vertical: no orientation when seen from above.
		{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 0, 1), Pt(0, 0, 1)},
	}
	for i, in := range inputs {
		if _, err := NewGuide(in); !errors.Is(err, ErrDegenerateInput) {
			t.Errorf("input %d: got error %v, want %v", i, err, ErrDegenerateInput)
		}
	}

	if _, err := NewGuideAbout(inputs[3], YAxis); err != nil {
		t.Errorf("vertical guide about the y axis: %v", err)
	}
}

// grid returns the square of the given size with a vertex at every integer
// position along its boundary.
func grid(size int) Polygon {
	var p Polygon
	for i := range size {
		p = append(p, Pt(float64(i), 0, 0))
	}
	for i := range size {
		p = append(p, Pt(float64(size), float64(i), 0))
	}
	for i := range size {
		p = append(p, Pt(float64(size-i), float64(size), 0))
	}
	for i := range size {
		p = append(p, Pt(0, float64(size-i), 0))
	}
	return p
}

func TestGuideIndex(t *testing.T) {
	guides := []Polygon{
		Polygon(Samples(NewCircle(Pt(1, 2, 3), Vec(0.1, 0.2, 1), 5), 100)),
		grid(20),
	}
	rng := rand.New(rand.NewPCG(3, 4))
	for gi, p := range guides {
		g, err := NewGuide(p)
		if err != nil {
			t.Fatal(err)
		}
		if g.index == nil {
			t.Fatalf("guide %d with %d segments isn't indexed", gi, len(p))
		}

		var probes []Point
		for range 500 {
			probes = append(probes, Pt(rng.Float64()*30-10, rng.Float64()*30-10, rng.Float64()*10-5))
		}
		// Integer positions produce exact ties between adjacent segments.
		for x := -2; x <= 22; x++ {
			for y := -2; y <= 22; y += 3 {
				probes = append(probes, Pt(float64(x), float64(y), 0))
			}
		}

		for _, pt := range probes {
			seg0, d0, t0 := g.nearestLinear(pt)
			seg1, d1, t1 := g.nearest(pt)
			if seg0 != seg1 || d0 != d1 || t0 != t1 {
				t.Fatalf("guide %d, %s: index found (%d, %g, %g), linear search found (%d, %g, %g)",
					gi, pt, seg1, d1, t1, seg0, d0, t0)
			}
		}
	}
}

func TestGuideProjectAll(t *testing.T) {
	g, err := NewGuide(grid(20))
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(5, 6))
	// Enough points for more work items than goroutines.
	pts := make([]Point, max(parallelProjectThreshold, 4*runtime.GOMAXPROCS(0)*projectChunk)+123)
	for i := range pts {
		pts[i] = Pt(rng.Float64()*24-2, rng.Float64()*24-2, 0)
	}

	want := make([]Projection, len(pts))
	for i, pt := range pts {
		want[i] = g.Project(pt)
	}
	diff(t, want, g.ProjectAll(pts))
	diff(t, want[:10], g.ProjectAll(pts[:10]))
	if got := g.ProjectAll(nil); len(got) != 0 {
		t.Errorf("got %d projections for no points", len(got))
	}
}

func TestParameterCompare(t *testing.T) {
	tests := []struct {
		a, b Parameter
		want int
	}{
		{Parameter{0, 0.5}, Parameter{0, 0.5}, 0},
		{Parameter{0, 0.9}, Parameter{1, 0}, -1},
		{Parameter{2, 0.1}, Parameter{1, 0.9}, 1},
		{Parameter{3, 0.2}, Parameter{3, 0.3}, -1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	// Arc length orders parameters the same way.
	g, err := NewGuide(grid(5))
	if err != nil {
		t.Fatal(err)
	}
	params := []Parameter{{0, 0}, {0, 0.5}, {1, 0}, {4, 0.25}, {4, 0.75}, {19, 0.999}}
	for i := 1; i < len(params); i++ {
		if g.Arclen(params[i-1]) >= g.Arclen(params[i]) {
			t.Errorf("arc length of %s isn't less than that of %s", params[i-1], params[i])
		}
	}
	if math.Abs(g.Arclen(Parameter{19, 1})-g.Perimeter()) > 1e-12 {
		t.Error("arc length at the end of the last segment should be the perimeter")
	}
}

func TestGuideArclenWraps(t *testing.T) {
	g, err := NewGuide(grid(5))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		param Parameter
		want  float64
	}{
		{Parameter{20, 0}, 0},
		{Parameter{21, 0.5}, 1.5},
		{Parameter{-1, 0.5}, 19.5},
		{Parameter{40, 0.25}, 0.25},
	}
	for _, tt := range tests {
		diff(t, tt.want, g.Arclen(tt.param), cmpopts.EquateApprox(0, 1e-12))
	}
}

package canon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// square returns the counterclockwise square with corners (0,0) and
// (size,size) at elevation z.
func square(size, z float64) Polygon {
	return Polygon{
		Pt(0, 0, z),
		Pt(size, 0, z),
		Pt(size, size, z),
		Pt(0, size, z),
	}
}

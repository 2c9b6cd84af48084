package canon

import (
	"cmp"
	"fmt"
	"math"
	"runtime"

	"github.com/peterstace/simplefeatures/rtree"
	"golang.org/x/sync/errgroup"
)

const (
	// Guides with at least this many segments index their segments in an
	// R-tree.
	guideIndexThreshold = 64
	// ProjectAll splits work across goroutines from this many points on.
	parallelProjectThreshold = 4096
	// Points per ProjectAll work item.
	projectChunk = 512
)

// Parameter locates a point along the circulation of a guide polygon: the
// segment it lies on and the fraction of the way along that segment, in
// [0, 1). Parameters increase monotonically in circulation order.
type Parameter struct {
	Segment  int
	Fraction float64
}

// Compare orders parameters by circulation order.
func (p Parameter) Compare(o Parameter) int {
	if c := cmp.Compare(p.Segment, o.Segment); c != 0 {
		return c
	}
	return cmp.Compare(p.Fraction, o.Fraction)
}

func (p Parameter) String() string {
	return fmt.Sprintf("%d+%g", p.Segment, p.Fraction)
}

// Projection is the result of projecting a point onto a guide.
type Projection struct {
	// The closest point on the guide.
	Point Point
	// The index of the closest segment. Points equidistant from several
	// segments project onto the one with the smallest index.
	Segment int
	// The position of Point along Segment, in [0, 1].
	Fraction float64
	// The squared distance between the projected point and Point.
	DistanceSquared float64
	// The position of Point along the guide. A Fraction of 1 is expressed as
	// the start of the following segment.
	Param Parameter
	// The arc length from the guide's first vertex to Point.
	Arclen float64
}

// Guide is a closed reference polygon that assigns positions to arbitrary
// points by projecting them onto it. A Guide is immutable and safe for
// concurrent use.
type Guide struct {
	polygon Polygon
	// arclen[i] is the length of the guide up to the start of segment i.
	// arclen[len(polygon)] is the perimeter.
	arclen []float64
	index  *rtree.RTree
}

// NewGuide returns a guide for p, oriented counterclockwise when seen from
// above. See [NewGuideAbout].
func NewGuide(p Polygon) (*Guide, error) {
	return NewGuideAbout(p, ZAxis)
}

// NewGuideAbout returns a guide for p, with p's orientation forced to be
// positive about axis. Forcing the orientation makes parameters from
// different guides comparable in the same rotational sense, regardless of
// how the input polygons were wound.
//
// The polygon needs at least three vertices and a non-zero signed area about
// axis; otherwise NewGuideAbout returns [ErrDegenerateInput].
func NewGuideAbout(p Polygon, axis Vec3) (*Guide, error) {
	if len(p) < 3 {
		return nil, fmt.Errorf("guide has %d vertices: %w", len(p), ErrDegenerateInput)
	}
	area := p.Area()
	if sa := math.Abs(p.SignedArea(axis)); area == 0 || sa <= 1e-9*area {
		return nil, fmt.Errorf("guide has no orientation about %s: %w", axis, ErrDegenerateInput)
	}
	p = p.ForceOrientation(axis)

	g := &Guide{
		polygon: p,
		arclen:  make([]float64, len(p)+1),
	}
	for i, seg := range p.Segments() {
		g.arclen[i+1] = g.arclen[i] + seg.Length()
	}
	if len(p) >= guideIndexThreshold {
		g.index = new(rtree.RTree)
		for i, seg := range p.Segments() {
			g.index.Insert(planBox(seg.BoundingBox()), i)
		}
	}
	return g, nil
}

// Polygon returns the guide's oriented polygon.
func (g *Guide) Polygon() Polygon { return g.polygon }

// Perimeter returns the guide's total length.
func (g *Guide) Perimeter() float64 { return g.arclen[len(g.polygon)] }

// Arclen returns the length along the guide from its first vertex to param.
// Segment indices outside of the guide wrap around, so Parameter{n, 0} on a
// guide with n segments is its start.
func (g *Guide) Arclen(param Parameter) float64 {
	n := len(g.polygon)
	seg := (param.Segment%n + n) % n
	segLen := g.arclen[seg+1] - g.arclen[seg]
	return g.arclen[seg] + param.Fraction*segLen
}

// Normalized returns param as a fraction of the perimeter, in [0, 1).
func (g *Guide) Normalized(param Parameter) float64 {
	return g.Arclen(param) / g.Perimeter()
}

// Project projects pt onto the closest segment of the guide. No point is too
// far away to be projected.
func (g *Guide) Project(pt Point) Projection {
	seg, distSq, t := g.nearest(pt)
	param := Parameter{Segment: seg, Fraction: t}
	if t >= 1 {
		param = Parameter{Segment: (seg + 1) % len(g.polygon)}
	}
	return Projection{
		Point:           g.polygon.Segment(seg).Eval(t),
		Segment:         seg,
		Fraction:        t,
		DistanceSquared: distSq,
		Param:           param,
		Arclen:          g.Arclen(param),
	}
}

// ProjectAll projects every point in pts. The results are in the order of
// pts. Large inputs are projected concurrently.
func (g *Guide) ProjectAll(pts []Point) []Projection {
	out := make([]Projection, len(pts))
	if len(pts) < parallelProjectThreshold {
		for i, pt := range pts {
			out[i] = g.Project(pt)
		}
		return out
	}

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < len(pts); start += projectChunk {
		end := min(start+projectChunk, len(pts))
		eg.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = g.Project(pts[i])
			}
			return nil
		})
	}
	// Projection can't fail.
	_ = eg.Wait()
	return out
}

// nearest returns the index of the segment closest to pt, the squared
// distance to it and the parameter of the closest point on it. Ties go to the
// smaller index.
func (g *Guide) nearest(pt Point) (seg int, distSq, t float64) {
	if g.index == nil {
		return g.nearestLinear(pt)
	}

	seg, distSq = -1, math.Inf(1)
	query := rtree.Box{MinX: pt.X, MinY: pt.Y, MaxX: pt.X, MaxY: pt.Y}
	_ = g.index.PrioritySearch(query, func(id int) error {
		l := g.polygon.Segment(id)
		// Records arrive in order of plan distance, which bounds the true
		// distance from below.
		if planDistanceSquared(planBox(l.BoundingBox()), pt) > distSq {
			return rtree.Stop
		}
		d, lt := l.Nearest(pt)
		if d < distSq || (d == distSq && id < seg) {
			seg, distSq, t = id, d, lt
		}
		return nil
	})
	if seg < 0 {
		return 0, math.NaN(), 0
	}
	return seg, distSq, t
}

func (g *Guide) nearestLinear(pt Point) (seg int, distSq, t float64) {
	seg, distSq = -1, math.Inf(1)
	for i, l := range g.polygon.Segments() {
		d, lt := l.Nearest(pt)
		if d < distSq {
			seg, distSq, t = i, d, lt
		}
	}
	if seg < 0 {
		// Only reachable for NaN input.
		return 0, math.NaN(), 0
	}
	return seg, distSq, t
}

func planBox(b Box) rtree.Box {
	return rtree.Box{MinX: b.Min.X, MinY: b.Min.Y, MaxX: b.Max.X, MaxY: b.Max.Y}
}

func planDistanceSquared(b rtree.Box, pt Point) float64 {
	dx := max(b.MinX-pt.X, 0, pt.X-b.MaxX)
	dy := max(b.MinY-pt.Y, 0, pt.Y-b.MaxY)
	return dx*dx + dy*dy
}

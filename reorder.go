package canon

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// Reorder recovers the circulation order of an unordered set of points that
// lie along the guide. Every point is projected onto the guide and the points
// (not their projections) are sorted by their parameter. Points with equal
// parameters keep their input order.
//
// The result follows the guide's direction, starting from the point with the
// smallest parameter; it is correct up to rotation. Points that project onto
// the same segment are ordered by their position along it. Coincident points
// collapse into one, as the result is canonicalized with [NewPolygon].
func Reorder(g *Guide, pts []Point, opts Options) Polygon {
	projs := g.ProjectAll(pts)

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		for i, p := range projs {
			l.Debug("projected point onto guide",
				slog.Int("index", i),
				slog.Float64("dist", math.Sqrt(p.DistanceSquared)),
				slog.Float64("param", p.Arclen),
				slog.Int("seg", p.Segment))
		}
	}

	order := make([]int, len(pts))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return projs[a].Param.Compare(projs[b].Param)
	})

	sorted := make([]Point, len(pts))
	for i, idx := range order {
		sorted[i] = pts[idx]
	}
	return NewPolygon(sorted, opts.Tolerance)
}

// GuidedPolygon rebuilds the boundary of a face from its edges. The face's
// outer loop serves as the guide, and the sampled edge vertices (see
// [EdgeVertices]) are reordered along it.
func GuidedPolygon(face BrepFace, edges []Curve, opts Options) (Polygon, error) {
	outer, _, err := canonicalFace(face, opts)
	if err != nil {
		return nil, err
	}
	g, err := NewGuide(outer)
	if err != nil {
		return nil, fmt.Errorf("building guide: %w", err)
	}
	return Reorder(g, EdgeVertices(edges, opts), opts), nil
}

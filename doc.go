// Package canon canonicalizes 3D geometry coming from a boundary
// representation (B-rep) CAD kernel into the simple polygon, profile and
// solid values consumed by downstream design-modeling libraries.
//
// Field-by-field format translation is left to the caller. This package
// recovers ordered, oriented structure from inputs that lack it.
//
// # Vertex streams
//
// [Curve] describes the curves handed over by the host kernel: anything that
// can be evaluated over a parameter domain. Curves that are piecewise linear
// implement [Polyliner] and have their control points consumed directly;
// everything else is sampled uniformly at a fixed resolution (see
// [Options.PolygonSamples] and [Options.PolylineSamples]). [NewPolygon] and
// [NewPolyline] drop consecutive points closer than the coincidence tolerance,
// so that no segment is degenerate.
//
// # Solids
//
// [NewSolid] rebuilds a [Solid] from B-rep faces ([BrepFace]), each with one
// outer and any number of inner loops. Non-planar input is rejected with
// [ErrUnsupportedGeometry]; it is never approximated.
//
// # Extrusions
//
// [NormalizeExtrusion] turns a [Sweep] into an [ExtrusionProfile]: a sweep
// direction that never points down, a local frame centered on the profile, and
// profile loops wound consistently and expressed in that frame.
//
// # Guides
//
// A [Guide] is a closed reference polygon. [Guide.Project] finds the closest
// point of the guide to an arbitrary point and assigns it a [Parameter] that
// increases along the guide's circulation. [Reorder] uses these parameters to
// sort an unordered point set, such as the vertices returned by
// [EdgeVertices], into a polygon that follows the guide.
//
// Guides force their orientation (counterclockwise seen from above, by
// default), so that parameters computed on differently wound inputs circulate
// in the same sense.
//
// # Errors
//
// Failures are reported as errors wrapping one of [ErrUnsupportedGeometry],
// [ErrAmbiguousProfile] and [ErrDegenerateInput], accompanied by zero values.
// Apart from the fresh identifiers assigned to profiles, all functions are
// pure; retrying with the same input yields the same result.
//
// # Logging
//
// The package is silent unless a logger is installed with [SetLogger].
package canon

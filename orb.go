package canon

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// PointFromOrb converts a plan position into a point at zero elevation.
// Geographic positions map longitude to x and latitude to y.
func PointFromOrb(p orb.Point) Point {
	return Point{X: p.X(), Y: p.Y()}
}

// PointFromGeoJSON converts a GeoJSON point geometry into a point at zero
// elevation. It reports false for any other geometry type.
func PointFromGeoJSON(g *geojson.Geometry) (Point, bool) {
	if g == nil {
		return Point{}, false
	}
	pt, ok := g.Coordinates.(orb.Point)
	if !ok {
		return Point{}, false
	}
	return PointFromOrb(pt), true
}

// Footprint returns the plan projection of the polygon as a closed orb ring,
// dropping z.
func (p Polygon) Footprint() orb.Ring {
	if len(p) == 0 {
		return nil
	}
	r := make(orb.Ring, 0, len(p)+1)
	for _, pt := range p {
		r = append(r, orb.Point{pt.X, pt.Y})
	}
	return append(r, r[0])
}

// Footprint returns the plan projection of the profile.
func (p Profile) Footprint() orb.Polygon {
	out := orb.Polygon{p.Outer.Footprint()}
	for _, in := range p.Inner {
		out = append(out, in.Footprint())
	}
	return out
}

// Area returns the area of the profile's plan projection, voids subtracted.
// Profiles produced by [NormalizeExtrusion] lie in their local XY plane, for
// which this is the true area.
func (p Profile) Area() float64 {
	a := math.Abs(planar.Area(p.Outer.Footprint()))
	for _, in := range p.Inner {
		a -= math.Abs(planar.Area(in.Footprint()))
	}
	return a
}

// Feature returns the extrusion's local profile as a GeoJSON feature, with the
// extrusion parameters as properties.
func (ep ExtrusionProfile) Feature() *geojson.Feature {
	f := geojson.NewFeature(ep.Footprint())
	f.Properties["id"] = ep.ID.String()
	f.Properties["length"] = ep.Length
	f.Properties["direction"] = []float64{ep.Direction.X, ep.Direction.Y, ep.Direction.Z}
	f.Properties["flipped"] = ep.Flipped
	f.Properties["elevation"] = ep.Frame.Origin().Z
	return f
}

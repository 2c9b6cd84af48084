package canon

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Options controls the tolerances and sampling resolutions used when
// canonicalizing geometry.
type Options struct {
	// Tolerance is the coincidence tolerance: consecutive vertices closer than
	// this are merged.
	Tolerance float64 `yaml:"tolerance"`
	// PolygonSamples is the number of uniform samples taken from a smooth
	// curve when building a polygon.
	PolygonSamples int `yaml:"polygon_samples"`
	// PolylineSamples is the number of uniform samples taken from a smooth
	// curve when building a polyline.
	PolylineSamples int `yaml:"polyline_samples"`
	// PlanarTolerance is the maximum distance of a face vertex from the face
	// plane for the face to count as planar.
	PlanarTolerance float64 `yaml:"planar_tolerance"`
	// VerticalThreshold is the minimum dot product between an extrusion
	// direction and the world z axis above which the extrusion frame collapses
	// to a pure elevation.
	VerticalThreshold float64 `yaml:"vertical_threshold"`
	// LinearTolerance is the maximum deviation of an edge from its chord for
	// the edge to be sampled by its endpoints only.
	LinearTolerance float64 `yaml:"linear_tolerance"`
}

// DefaultOptions are the recommended options; pass them where no tuning is
// needed.
var DefaultOptions = Options{
	Tolerance:         1e-4,
	PolygonSamples:    100,
	PolylineSamples:   50,
	PlanarTolerance:   1e-6,
	VerticalThreshold: 0.99,
	LinearTolerance:   0.2,
}

// ParseOptions decodes YAML-encoded options. Fields missing from data keep
// their values from [DefaultOptions].
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate reports whether all options are within their valid ranges.
func (opts Options) Validate() error {
	switch {
	case opts.Tolerance < 0:
		return fmt.Errorf("invalid options: negative tolerance %g", opts.Tolerance)
	case opts.PolygonSamples < 3:
		return fmt.Errorf("invalid options: polygon_samples must be at least 3, got %d", opts.PolygonSamples)
	case opts.PolylineSamples < 2:
		return fmt.Errorf("invalid options: polyline_samples must be at least 2, got %d", opts.PolylineSamples)
	case opts.PlanarTolerance < 0:
		return fmt.Errorf("invalid options: negative planar_tolerance %g", opts.PlanarTolerance)
	case opts.VerticalThreshold <= 0 || opts.VerticalThreshold > 1:
		return fmt.Errorf("invalid options: vertical_threshold must be in (0, 1], got %g", opts.VerticalThreshold)
	case opts.LinearTolerance < 0:
		return fmt.Errorf("invalid options: negative linear_tolerance %g", opts.LinearTolerance)
	}
	return nil
}

package spatial_index

import (
	"github.com/Carmen-Shannon/oxy-pipeline/engine/drawable"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/zone"
)

// SpatialIndexBuilderOption is a functional option for configuring a SpatialIndex.
type SpatialIndexBuilderOption func(*spatialIndex)

// WithDefaultZone sets the zone returned when no registered zone contains a point.
//
// Parameters:
//   - z: the fallback zone
//
// Returns:
//   - SpatialIndexBuilderOption: option function to apply
func WithDefaultZone(z zone.Zone) SpatialIndexBuilderOption {
	return func(si *spatialIndex) {
		si.defaultZone = z
	}
}

// WithCapacity pre-sizes drawable storage.
//
// Parameters:
//   - n: expected drawable count
//
// Returns:
//   - SpatialIndexBuilderOption: option function to apply
func WithCapacity(n int) SpatialIndexBuilderOption {
	return func(si *spatialIndex) {
		si.drawables = make([]drawable.Drawable, 0, n)
	}
}

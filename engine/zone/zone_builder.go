package zone

import "github.com/Carmen-Shannon/oxy-pipeline/common"

// ZoneBuilderOption is a functional option for configuring a Zone.
type ZoneBuilderOption func(*zoneImpl)

// WithName sets the zone identifier.
//
// Parameters:
//   - name: the zone name
//
// Returns:
//   - ZoneBuilderOption: option function to apply
func WithName(name string) ZoneBuilderOption {
	return func(z *zoneImpl) {
		z.name = name
	}
}

// WithBoundingBox sets the world-space region the zone covers.
//
// Parameters:
//   - box: the zone bounds
//
// Returns:
//   - ZoneBuilderOption: option function to apply
func WithBoundingBox(box common.BoundingBox) ZoneBuilderOption {
	return func(z *zoneImpl) {
		z.boundingBox = box
	}
}

// WithPriority sets the overlap priority.
//
// Parameters:
//   - priority: higher values win where zones overlap
//
// Returns:
//   - ZoneBuilderOption: option function to apply
func WithPriority(priority int) ZoneBuilderOption {
	return func(z *zoneImpl) {
		z.priority = priority
	}
}

// WithZoneMask sets the mask matched against drawable zone masks.
//
// Parameters:
//   - mask: the zone mask
//
// Returns:
//   - ZoneBuilderOption: option function to apply
func WithZoneMask(mask uint32) ZoneBuilderOption {
	return func(z *zoneImpl) {
		z.zoneMask = mask
	}
}

// WithAmbientColor sets the gamma-space ambient color.
//
// Parameters:
//   - color: ambient color
//
// Returns:
//   - ZoneBuilderOption: option function to apply
func WithAmbientColor(color common.Color) ZoneBuilderOption {
	return func(z *zoneImpl) {
		z.ambientColor = color
	}
}

// WithFog sets the fog color and the distances where fog begins and saturates.
//
// Parameters:
//   - color: fog color
//   - start: distance where fog begins
//   - end: distance where fog is opaque
//
// Returns:
//   - ZoneBuilderOption: option function to apply
func WithFog(color common.Color, start, end float32) ZoneBuilderOption {
	return func(z *zoneImpl) {
		z.fogColor = color
		z.fogStart = start
		z.fogEnd = end
	}
}

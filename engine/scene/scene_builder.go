package scene

import (
	"github.com/Carmen-Shannon/oxy-pipeline/engine/drawable"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/global_illumination"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/spatial_index"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/zone"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options. Drawables and zones passed through options are
// collected and registered once every option has run.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithDrawables adds initial drawables to the scene.
// Drawables without IDs will be assigned new IDs.
//
// Parameters:
//   - drawables: the drawables to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDrawables(drawables ...drawable.Drawable) SceneBuilderOption {
	return func(s *scene) {
		s.pendingDrawables = append(s.pendingDrawables, drawables...)
	}
}

// WithSpatialIndex replaces the default spatial index.
//
// Parameters:
//   - index: the index to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSpatialIndex(index spatial_index.SpatialIndex) SceneBuilderOption {
	return func(s *scene) {
		s.index = index
	}
}

// WithZones registers zones with the scene's spatial index.
//
// Parameters:
//   - zones: the zones to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithZones(zones ...zone.Zone) SceneBuilderOption {
	return func(s *scene) {
		s.pendingZones = append(s.pendingZones, zones...)
	}
}

// WithGlobalIllumination attaches a light probe set.
//
// Parameters:
//   - gi: the probe set
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithGlobalIllumination(gi global_illumination.GlobalIllumination) SceneBuilderOption {
	return func(s *scene) {
		s.gi = gi
	}
}

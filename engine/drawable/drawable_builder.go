package drawable

import (
	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/material"
	"github.com/go-gl/mathgl/mgl32"
)

// DrawableBuilderOption is a functional option for configuring a Drawable.
type DrawableBuilderOption func(*drawableImpl)

// WithID sets the drawable's identifier.
//
// Parameters:
//   - id: the ID to assign
//
// Returns:
//   - DrawableBuilderOption: option function to apply
func WithID(id uint64) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.id = id
	}
}

// WithEnabled sets whether the drawable starts enabled. Defaults to true.
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - DrawableBuilderOption: option function to apply
func WithEnabled(enabled bool) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.enabled.Store(enabled)
	}
}

// WithFlags sets the classification flags. Defaults to DrawableGeometry.
//
// Parameters:
//   - flags: geometry and/or light
//
// Returns:
//   - DrawableBuilderOption: option function to apply
func WithFlags(flags DrawableFlags) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.flags = flags
	}
}

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - position: world-space position
//
// Returns:
//   - DrawableBuilderOption: option function to apply
func WithPosition(position mgl32.Vec3) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.position = position
	}
}

// WithRotation sets the initial Euler rotation in radians.
//
// Parameters:
//   - rotation: rotation around X, Y, Z
//
// Returns:
//   - DrawableBuilderOption: option function to apply
func WithRotation(rotation mgl32.Vec3) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.rotation = rotation
	}
}

// WithRotationSpeed sets the per-second rotation applied in UpdateBatches.
//
// Parameters:
//   - speed: radians per second around X, Y, Z
//
// Returns:
//   - DrawableBuilderOption: option function to apply
func WithRotationSpeed(speed mgl32.Vec3) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.rotationSpeed = speed
	}
}

// WithScale sets the initial scale.
//
// Parameters:
//   - scale: scale along X, Y, Z
//
// Returns:
//   - DrawableBuilderOption: option function to apply
func WithScale(scale mgl32.Vec3) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.scale = scale
	}
}

// WithBoundingBox sets the model-space bounds. Use common.InfiniteBoundingBox for unbounded geometry
// such as skyboxes.
//
// Parameters:
//   - box: local bounds
//
// Returns:
//   - DrawableBuilderOption: option function to apply
func WithBoundingBox(box common.BoundingBox) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.localBox = box
	}
}

// WithDrawDistance sets the maximum camera distance. Zero disables distance culling.
//
// Parameters:
//   - distance: maximum draw distance
//
// Returns:
//   - DrawableBuilderOption: option function to apply
func WithDrawDistance(distance float32) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.drawDistance = distance
	}
}

// WithLodBias scales LOD distance; values above 1 keep higher detail for longer.
//
// Parameters:
//   - bias: LOD bias
//
// Returns:
//   - DrawableBuilderOption: option function to apply
func WithLodBias(bias float32) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.lodBias = bias
	}
}

// WithMaterials replaces the source batches with one batch per material. A nil entry renders
// with the default material.
//
// Parameters:
//   - materials: per-batch materials
//
// Returns:
//   - DrawableBuilderOption: option function to apply
func WithMaterials(materials ...material.Material) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.batches = make([]SourceBatch, len(materials))
		for i, m := range materials {
			d.batches[i].Material = m
		}
	}
}

func WithZoneMask(mask uint32) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.zoneMask = mask
	}
}

func WithLightMask(mask uint32) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.lightMask = mask
	}
}

func WithViewMask(mask uint32) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.viewMask = mask
	}
}

// WithUpdateGeometryType sets which thread refreshes the drawable's geometry each frame.
//
// Parameters:
//   - t: the update type
//
// Returns:
//   - DrawableBuilderOption: option function to apply
func WithUpdateGeometryType(t UpdateGeometryType) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.updateGeometryType = t
	}
}

// WithGlobalIlluminationType sets the drawable's indirect lighting source.
//
// Parameters:
//   - t: the GI type
//
// Returns:
//   - DrawableBuilderOption: option function to apply
func WithGlobalIlluminationType(t GlobalIlluminationType) DrawableBuilderOption {
	return func(d *drawableImpl) {
		d.giType = t
	}
}

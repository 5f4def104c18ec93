package render_pipeline

import (
	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/camera"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/drawable"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/material"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/scene"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/zone"
	"github.com/go-gl/mathgl/mgl32"
)

// ZoneQuerier resolves the zone enclosing a point. Implemented by spatial_index.SpatialIndex.
type ZoneQuerier interface {
	QueryZone(position mgl32.Vec3, zoneMask uint32) zone.CachedZone
}

// AmbientSampler samples indirect lighting. Implemented by global_illumination.GlobalIllumination.
type AmbientSampler interface {
	SampleAmbientSH(position mgl32.Vec3, hint *int) common.SphericalHarmonicsDot9
}

// FrameContext is the read-only snapshot every stage of a frame works from.
// It is built once per frame before OnUpdateBegin and must not be modified until the next frame.
type FrameContext struct {
	FrameInfo drawable.FrameInfo

	Camera camera.Camera
	// Scene may be nil when a processor is driven without a scene.
	Scene        scene.Scene
	SpatialIndex ZoneQuerier
	// GI may be nil; probe-lit drawables then get zone ambient only.
	GI AmbientSampler

	// NumDrawables sizes the per-drawable arrays. Drawables whose index is outside
	// [0, NumDrawables) are excluded from the frame.
	NumDrawables int
	// NumThreads is the number of worker slots used for thread-local buffers. OnUpdateBegin raises
	// it to the work queue's slot count when lower.
	NumThreads      int
	MaterialQuality material.MaterialQuality
}

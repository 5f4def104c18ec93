package drawable

import (
	"github.com/Carmen-Shannon/oxy-pipeline/engine/camera"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/material"
	"github.com/go-gl/mathgl/mgl32"
)

// DrawableFlags classify what a drawable contributes to a frame.
type DrawableFlags uint32

const (
	DrawableGeometry DrawableFlags = 1 << 0
	DrawableLight    DrawableFlags = 1 << 1

	DrawableAny DrawableFlags = 0xffffffff
)

// UpdateGeometryType tells the frame which thread may refresh a drawable's GPU geometry.
type UpdateGeometryType int

const (
	UpdateNone UpdateGeometryType = iota
	UpdateMainThread
	UpdateWorkerThread
)

// GlobalIlluminationType selects where a drawable takes its indirect light from.
type GlobalIlluminationType int

const (
	UseZoneAmbient GlobalIlluminationType = iota
	UseLightMap
	BlendLightProbes
)

// FrameInfo is the per-frame data shared with every drawable during visibility processing.
type FrameInfo struct {
	FrameNumber uint64
	TimeStep    float32
	NumThreads  int
	Camera      camera.Camera
}

// SourceBatch is one renderable part of a drawable. A nil Material means the default material.
type SourceBatch struct {
	Material       material.Material
	Distance       float32
	WorldTransform mgl32.Mat4
}

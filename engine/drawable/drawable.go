package drawable

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/zone"
	"github.com/go-gl/mathgl/mgl32"
)

type drawableImpl struct {
	id    uint64
	index atomic.Int64

	flags              DrawableFlags
	enabled            atomic.Bool
	updateGeometryType UpdateGeometryType
	giType             GlobalIlluminationType

	// mu guards the transform and the values derived from it in UpdateBatches.
	mu            sync.RWMutex
	position      mgl32.Vec3
	rotation      mgl32.Vec3
	rotationSpeed mgl32.Vec3
	scale         mgl32.Vec3
	localBox      common.BoundingBox
	worldBox      common.BoundingBox
	distance      float32
	lodDistance   float32
	lodBias       float32
	drawDistance  float32
	batches       []SourceBatch

	zoneMask  uint32
	lightMask uint32
	viewMask  uint32

	viewFrameNumber atomic.Uint64
	inViewOnce      atomic.Bool

	// cachedZone and lightProbeHint are only touched by the worker that owns this drawable for the frame.
	cachedZone     zone.CachedZone
	lightProbeHint int

	pipelineStateDirty atomic.Bool
}

// Drawable defines the interface for a scene entity that takes part in visibility processing.
// Every registered drawable has a dense index assigned by the spatial index; per-frame arrays
// are addressed by that index.
//
// Per-frame mutation (UpdateBatches, MutableCachedZone, MutableLightProbeHint) happens on exactly one
// worker per frame. Transform setters may be called from any goroutine.
type Drawable interface {
	// ID returns the object's unique identifier assigned by the scene.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// DrawableIndex returns the dense index inside the spatial index, or -1 when unregistered.
	//
	// Returns:
	//   - int: the drawable index
	DrawableIndex() int

	// SetDrawableIndex is called by the spatial index when the drawable is (re)indexed.
	//
	// Parameters:
	//   - index: the new dense index, -1 to mark unregistered
	SetDrawableIndex(index int)

	// Flags returns whether this drawable is geometry, a light, or both.
	//
	// Returns:
	//   - DrawableFlags: the classification flags
	Flags() DrawableFlags

	// Enabled returns whether this drawable takes part in rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the drawable takes part in rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	Position() mgl32.Vec3
	Rotation() mgl32.Vec3
	RotationSpeed() mgl32.Vec3
	Scale() mgl32.Vec3
	SetPosition(position mgl32.Vec3)
	SetRotation(rotation mgl32.Vec3)
	SetRotationSpeed(speed mgl32.Vec3)
	SetScale(scale mgl32.Vec3)

	// LocalBoundingBox returns the model-space bounds.
	//
	// Returns:
	//   - common.BoundingBox: the local bounds
	LocalBoundingBox() common.BoundingBox

	// SetLocalBoundingBox replaces the model-space bounds and refreshes the world bounds.
	//
	// Parameters:
	//   - box: the new local bounds
	SetLocalBoundingBox(box common.BoundingBox)

	// WorldBoundingBox returns the world-space bounds as of the last UpdateBatches or transform change.
	// A box with half-extent of LargeValue or more is treated as unbounded.
	//
	// Returns:
	//   - common.BoundingBox: the world bounds
	WorldBoundingBox() common.BoundingBox

	// DrawDistance returns the maximum camera distance at which the drawable is rendered. Zero means unlimited.
	//
	// Returns:
	//   - float32: the draw distance
	DrawDistance() float32

	// Distance returns the camera distance computed by the last UpdateBatches.
	//
	// Returns:
	//   - float32: distance from the camera to the world bounds center
	Distance() float32

	// LodDistance returns the LOD-biased distance computed by the last UpdateBatches.
	//
	// Returns:
	//   - float32: the LOD distance
	LodDistance() float32

	ZoneMask() uint32
	LightMask() uint32
	ViewMask() uint32

	// Batches returns the drawable's source batches.
	//
	// Returns:
	//   - []SourceBatch: the batches
	Batches() []SourceBatch

	// UpdateBatches advances animation by the frame time step and refreshes world bounds,
	// camera distance and per-batch distance and transform.
	//
	// Parameters:
	//   - frame: the current frame info
	UpdateBatches(frame *FrameInfo)

	// MarkInView records that the drawable was seen in the given frame.
	//
	// Parameters:
	//   - frame: the current frame info
	MarkInView(frame *FrameInfo)

	// IsInView reports whether MarkInView was called for the given frame number.
	//
	// Parameters:
	//   - frameNumber: the frame to test
	//
	// Returns:
	//   - bool: true if marked in view for that frame
	IsInView(frameNumber uint64) bool

	// MutableCachedZone exposes the drawable's zone cache for in-place update by the worker that owns it this frame.
	//
	// Returns:
	//   - *zone.CachedZone: pointer to the zone cache
	MutableCachedZone() *zone.CachedZone

	// MutableLightProbeHint exposes the drawable's light probe search hint.
	//
	// Returns:
	//   - *int: pointer to the hint, -1 when unset
	MutableLightProbeHint() *int

	MarkPipelineStateHashDirty()
	PipelineStateHashDirty() bool
	ClearPipelineStateHashDirty()

	GlobalIlluminationType() GlobalIlluminationType
	UpdateGeometryType() UpdateGeometryType
	SetUpdateGeometryType(t UpdateGeometryType)
}

var _ Drawable = &drawableImpl{}

// NewDrawable creates a geometry drawable with a unit box, one default-material batch,
// unlimited draw distance and all masks set.
//
// Parameters:
//   - options: functional options to configure the drawable
//
// Returns:
//   - Drawable: the new drawable
func NewDrawable(options ...DrawableBuilderOption) Drawable {
	d := &drawableImpl{
		flags:          DrawableGeometry,
		scale:          mgl32.Vec3{1, 1, 1},
		localBox:       common.NewBoundingBox(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0.5, 0.5, 0.5}),
		lodBias:        1.0,
		batches:        []SourceBatch{{}},
		zoneMask:       0xffffffff,
		lightMask:      0xffffffff,
		viewMask:       0xffffffff,
		cachedZone:     zone.NewCachedZone(),
		lightProbeHint: -1,
	}
	d.index.Store(-1)
	d.enabled.Store(true)
	for _, option := range options {
		option(d)
	}
	d.refreshWorld()
	return d
}

// refreshWorld recomputes the world transform, world bounds and batch transforms. Caller must hold mu
// or have exclusive access.
func (d *drawableImpl) refreshWorld() mgl32.Mat4 {
	model := common.BuildModelMatrix(d.position, d.rotation, d.scale)
	if d.localBox.HalfSize().LenSqr() >= common.LargeValue*common.LargeValue {
		d.worldBox = d.localBox
	} else {
		d.worldBox = d.localBox.Transformed(model)
	}
	for i := range d.batches {
		d.batches[i].WorldTransform = model
	}
	return model
}

func (d *drawableImpl) ID() uint64 {
	return d.id
}

func (d *drawableImpl) SetID(id uint64) {
	d.id = id
}

func (d *drawableImpl) DrawableIndex() int {
	return int(d.index.Load())
}

func (d *drawableImpl) SetDrawableIndex(index int) {
	d.index.Store(int64(index))
}

func (d *drawableImpl) Flags() DrawableFlags {
	return d.flags
}

func (d *drawableImpl) Enabled() bool {
	return d.enabled.Load()
}

func (d *drawableImpl) SetEnabled(enabled bool) {
	d.enabled.Store(enabled)
}

func (d *drawableImpl) Position() mgl32.Vec3 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.position
}

func (d *drawableImpl) Rotation() mgl32.Vec3 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.rotation
}

func (d *drawableImpl) RotationSpeed() mgl32.Vec3 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.rotationSpeed
}

func (d *drawableImpl) Scale() mgl32.Vec3 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.scale
}

func (d *drawableImpl) SetPosition(position mgl32.Vec3) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.position = position
	d.refreshWorld()
}

func (d *drawableImpl) SetRotation(rotation mgl32.Vec3) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rotation = rotation
	d.refreshWorld()
}

func (d *drawableImpl) SetRotationSpeed(speed mgl32.Vec3) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rotationSpeed = speed
}

func (d *drawableImpl) SetScale(scale mgl32.Vec3) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scale = scale
	d.refreshWorld()
}

func (d *drawableImpl) LocalBoundingBox() common.BoundingBox {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.localBox
}

func (d *drawableImpl) SetLocalBoundingBox(box common.BoundingBox) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.localBox = box
	d.refreshWorld()
}

func (d *drawableImpl) WorldBoundingBox() common.BoundingBox {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.worldBox
}

func (d *drawableImpl) DrawDistance() float32 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.drawDistance
}

func (d *drawableImpl) Distance() float32 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.distance
}

func (d *drawableImpl) LodDistance() float32 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lodDistance
}

func (d *drawableImpl) ZoneMask() uint32 {
	return d.zoneMask
}

func (d *drawableImpl) LightMask() uint32 {
	return d.lightMask
}

func (d *drawableImpl) ViewMask() uint32 {
	return d.viewMask
}

func (d *drawableImpl) Batches() []SourceBatch {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.batches
}

func (d *drawableImpl) UpdateBatches(frame *FrameInfo) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if frame.TimeStep != 0 && d.rotationSpeed != (mgl32.Vec3{}) {
		d.rotation = d.rotation.Add(d.rotationSpeed.Mul(frame.TimeStep))
	}
	d.refreshWorld()

	if frame.Camera != nil {
		d.distance = frame.Camera.Distance(d.worldBox.Center())
	} else {
		d.distance = 0
	}
	d.lodDistance = d.distance / max(d.lodBias, 0.0001)
	for i := range d.batches {
		d.batches[i].Distance = d.distance
	}
}

func (d *drawableImpl) MarkInView(frame *FrameInfo) {
	d.viewFrameNumber.Store(frame.FrameNumber)
	d.inViewOnce.Store(true)
}

func (d *drawableImpl) IsInView(frameNumber uint64) bool {
	return d.inViewOnce.Load() && d.viewFrameNumber.Load() == frameNumber
}

func (d *drawableImpl) MutableCachedZone() *zone.CachedZone {
	return &d.cachedZone
}

func (d *drawableImpl) MutableLightProbeHint() *int {
	return &d.lightProbeHint
}

func (d *drawableImpl) MarkPipelineStateHashDirty() {
	d.pipelineStateDirty.Store(true)
}

func (d *drawableImpl) PipelineStateHashDirty() bool {
	return d.pipelineStateDirty.Load()
}

func (d *drawableImpl) ClearPipelineStateHashDirty() {
	d.pipelineStateDirty.Store(false)
}

func (d *drawableImpl) GlobalIlluminationType() GlobalIlluminationType {
	return d.giType
}

func (d *drawableImpl) UpdateGeometryType() UpdateGeometryType {
	return d.updateGeometryType
}

func (d *drawableImpl) SetUpdateGeometryType(t UpdateGeometryType) {
	d.updateGeometryType = t
}

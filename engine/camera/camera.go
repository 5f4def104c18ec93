package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ViewOverrideFlags modify how a view is processed regardless of per-drawable settings.
type ViewOverrideFlags uint32

const (
	ViewOverrideNone ViewOverrideFlags = 0
	// ViewOverrideLowMaterialQuality forces the lowest material quality for every drawable seen by this camera.
	ViewOverrideLowMaterialQuality ViewOverrideFlags = 1 << 0
	// ViewOverrideDisableShadows is carried for passes that render shadow maps.
	ViewOverrideDisableShadows ViewOverrideFlags = 1 << 1
)

// DefaultViewMask matches every drawable.
const DefaultViewMask uint32 = 0xffffffff

type cameraImpl struct {
	mu *sync.RWMutex

	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMask      uint32
	overrideFlags ViewOverrideFlags

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
	frustum              common.Frustum

	controller CameraController
}

// Camera defines the interface for the camera system.
// The camera holds perspective settings and a look-at pose and keeps the view, projection
// and frustum in sync with them. Reads are safe from any goroutine.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: up vector
	Up() mgl32.Vec3

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the world-to-view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Frustum returns the world-space view frustum extracted from the view-projection matrix.
	//
	// Returns:
	//   - common.Frustum: the six normalized frustum planes
	Frustum() common.Frustum

	// Distance returns the world-space distance from the camera position to a point.
	//
	// Parameters:
	//   - point: the world-space point
	//
	// Returns:
	//   - float32: the distance
	Distance(point mgl32.Vec3) float32

	// ViewMask returns the bitmask matched against drawable view masks.
	//
	// Returns:
	//   - uint32: the view mask
	ViewMask() uint32

	// ViewOverrideFlags returns the override flags applied to everything this camera sees.
	//
	// Returns:
	//   - ViewOverrideFlags: the override flags
	ViewOverrideFlags() ViewOverrideFlags

	// Controller returns the attached CameraController or nil.
	//
	// Returns:
	//   - CameraController: the attached controller or nil
	Controller() CameraController

	// Update pulls position and target from the attached controller and recomputes matrices.
	// Does nothing when no controller is attached.
	Update()

	SetPosition(position mgl32.Vec3)
	SetTarget(target mgl32.Vec3)
	SetUp(up mgl32.Vec3)
	SetFov(fov float32)
	SetAspect(aspect float32)
	SetNear(near float32)
	SetFar(far float32)
	SetViewMask(mask uint32)
	SetViewOverrideFlags(flags ViewOverrideFlags)
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at (0, 0, 10) looking at the origin with a 45 degree field of view.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.RWMutex{},
		position: mgl32.Vec3{0, 0, 10},
		target:   mgl32.Vec3{0, 0, 0},
		up:       mgl32.Vec3{0, 1, 0},
		fov:      mgl32.DegToRad(45),
		aspect:   1.0,
		near:     0.1,
		far:      100.0,
		viewMask: DefaultViewMask,
	}
	for _, option := range options {
		option(c)
	}
	if c.controller != nil {
		c.position = c.controller.Position()
		c.target = c.controller.Target()
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.position
}

func (c *cameraImpl) Target() mgl32.Vec3 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.target
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.up
}

func (c *cameraImpl) Fov() float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Frustum() common.Frustum {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frustum
}

func (c *cameraImpl) Distance(point mgl32.Vec3) float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return point.Sub(c.position).Len()
}

func (c *cameraImpl) ViewMask() uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.viewMask
}

func (c *cameraImpl) ViewOverrideFlags() ViewOverrideFlags {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.overrideFlags
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return
	}
	c.position = c.controller.Position()
	c.target = c.controller.Target()
	c.updateMatrices()
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
	c.updateMatrices()
}

func (c *cameraImpl) SetTarget(target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
	c.updateMatrices()
}

func (c *cameraImpl) SetUp(up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetViewMask(mask uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewMask = mask
}

func (c *cameraImpl) SetViewOverrideFlags(flags ViewOverrideFlags) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.overrideFlags = flags
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
}

// updateMatrices recalculates the view, projection, view-projection matrices and the frustum.
// Caller must hold the write lock.
func (c *cameraImpl) updateMatrices() {
	c.viewMatrix = mgl32.LookAtV(c.position, c.target, c.up)
	c.projectionMatrix = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
	c.frustum = common.ExtractFrustumFromMatrix(c.viewProjectionMatrix)
}

package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraController owns positional state (position, target) for a Camera.
// The Camera reads from the controller in Update and rebuilds its matrices.
// Orbit controls move the camera on a sphere around the target using
// radius, azimuth and elevation.
type CameraController interface {
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

	// SetTarget sets the pivot point and recomputes position from spherical coordinates.
	//
	// Parameters:
	//   - target: world-space coordinates
	SetTarget(target mgl32.Vec3)

	// Orbit rotates the camera around the target. Elevation is clamped to the configured bounds.
	//
	// Parameters:
	//   - deltaAzimuth: horizontal angle change in radians
	//   - deltaElevation: vertical angle change in radians
	Orbit(deltaAzimuth, deltaElevation float32)

	// Zoom adjusts the orbit radius. Positive delta moves closer to the target.
	//
	// Parameters:
	//   - delta: zoom amount scaled by the zoom speed
	Zoom(delta float32)

	// Radius returns the current orbit radius.
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// SetRadius sets the orbit radius, clamped to min/max bounds.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	Azimuth() float32
	Elevation() float32
}

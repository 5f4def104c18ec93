package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// AbsVec3 returns the component-wise absolute value of v.
//
// Parameters:
//   - v: the vector
//
// Returns:
//   - mgl32.Vec3: (|x|, |y|, |z|)
func AbsVec3(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{mgl32.Abs(v[0]), mgl32.Abs(v[1]), mgl32.Abs(v[2])}
}

// ViewZAxis extracts row 2 of a view matrix: the view-space Z axis expressed in world
// space and the Z translation term. For any world point p, view-space depth is
// axis·p + offset.
//
// Parameters:
//   - view: the world-to-view matrix (column-major)
//
// Returns:
//   - axis: the view-space Z axis in world space
//   - offset: the view-space Z translation
func ViewZAxis(view mgl32.Mat4) (axis mgl32.Vec3, offset float32) {
	row := view.Row(2)
	return row.Vec3(), row[3]
}

// BuildModelMatrix constructs a model matrix from position, Euler rotation, and scale.
// The rotation order is Y * X * Z (yaw-pitch-roll).
//
// Parameters:
//   - position: translation in world space
//   - rotation: rotation angles in radians around each axis
//   - scale: scale factors along each axis
//
// Returns:
//   - mgl32.Mat4: the model matrix
func BuildModelMatrix(position, rotation, scale mgl32.Vec3) mgl32.Mat4 {
	rot := mgl32.HomogRotate3DY(rotation[1]).
		Mul4(mgl32.HomogRotate3DX(rotation[0])).
		Mul4(mgl32.HomogRotate3DZ(rotation[2]))
	return mgl32.Translate3D(position[0], position[1], position[2]).
		Mul4(rot).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LargeValue is the magnitude past which a bounding volume is treated as unbounded.
// Skyboxes and directional lights use boxes of about this size.
const LargeValue float32 = 100000000.0

// UnboundedRange is stored as the per-drawable view-space Z range of objects whose
// bounding box is too large to produce a meaningful depth interval.
var UnboundedRange = FloatRange{Min: LargeValue, Max: LargeValue}

// BoundingBox is a world or local space axis-aligned box.
type BoundingBox struct {
	// Min is the corner with the smallest coordinates.
	Min mgl32.Vec3
	// Max is the corner with the largest coordinates.
	Max mgl32.Vec3
}

// NewBoundingBox creates a box from two corners, sorting the components so that Min <= Max.
//
// Parameters:
//   - a: first corner
//   - b: second corner
//
// Returns:
//   - BoundingBox: the box spanning both corners
func NewBoundingBox(a, b mgl32.Vec3) BoundingBox {
	return BoundingBox{
		Min: mgl32.Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])},
		Max: mgl32.Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])},
	}
}

// InfiniteBoundingBox returns a box spanning LargeValue in every direction.
//
// Returns:
//   - BoundingBox: the unbounded box
func InfiniteBoundingBox() BoundingBox {
	return BoundingBox{
		Min: mgl32.Vec3{-LargeValue, -LargeValue, -LargeValue},
		Max: mgl32.Vec3{LargeValue, LargeValue, LargeValue},
	}
}

// Defined reports whether the box has non-negative extent on every axis.
//
// Returns:
//   - bool: true if Min <= Max component-wise
func (b BoundingBox) Defined() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// Center returns the midpoint of the box.
//
// Returns:
//   - mgl32.Vec3: the center point
func (b BoundingBox) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the full extent of the box.
//
// Returns:
//   - mgl32.Vec3: Max - Min
func (b BoundingBox) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// HalfSize returns the half extent of the box.
//
// Returns:
//   - mgl32.Vec3: (Max - Min) / 2
func (b BoundingBox) HalfSize() mgl32.Vec3 {
	return b.Size().Mul(0.5)
}

// Merge returns the smallest box containing both b and other.
//
// Parameters:
//   - other: the box to merge with
//
// Returns:
//   - BoundingBox: the union of the two boxes
func (b BoundingBox) Merge(other BoundingBox) BoundingBox {
	return BoundingBox{
		Min: mgl32.Vec3{min(b.Min[0], other.Min[0]), min(b.Min[1], other.Min[1]), min(b.Min[2], other.Min[2])},
		Max: mgl32.Vec3{max(b.Max[0], other.Max[0]), max(b.Max[1], other.Max[1]), max(b.Max[2], other.Max[2])},
	}
}

// IsInside reports whether point lies within the box, boundaries included.
//
// Parameters:
//   - point: the point to test
//
// Returns:
//   - bool: true if the point is inside
func (b BoundingBox) IsInside(point mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if point[i] < b.Min[i] || point[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Intersects reports whether two boxes overlap.
//
// Parameters:
//   - other: the box to test against
//
// Returns:
//   - bool: true if the boxes share at least one point
func (b BoundingBox) Intersects(other BoundingBox) bool {
	for i := 0; i < 3; i++ {
		if other.Max[i] < b.Min[i] || other.Min[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// DistanceToPoint returns the distance from point to the closest point of the box.
// Points inside the box are at distance zero.
//
// Parameters:
//   - point: the point to measure from
//
// Returns:
//   - float32: the euclidean distance
func (b BoundingBox) DistanceToPoint(point mgl32.Vec3) float32 {
	var d mgl32.Vec3
	for i := 0; i < 3; i++ {
		switch {
		case point[i] < b.Min[i]:
			d[i] = b.Min[i] - point[i]
		case point[i] > b.Max[i]:
			d[i] = point[i] - b.Max[i]
		}
	}
	return d.Len()
}

// DistanceToBoundary returns the distance from point to the nearest face of the box,
// whether the point is inside or outside.
//
// Parameters:
//   - point: the point to measure from
//
// Returns:
//   - float32: the distance to the box surface
func (b BoundingBox) DistanceToBoundary(point mgl32.Vec3) float32 {
	if !b.IsInside(point) {
		return b.DistanceToPoint(point)
	}
	dist := float32(math.MaxFloat32)
	for i := 0; i < 3; i++ {
		dist = min(dist, point[i]-b.Min[i], b.Max[i]-point[i])
	}
	return dist
}

// Transformed returns the axis-aligned box enclosing b after transformation by m.
// Uses the center/extent form so the result is exact for the transformed box corners.
//
// Parameters:
//   - m: the affine transform (column-major)
//
// Returns:
//   - BoundingBox: the transformed box
func (b BoundingBox) Transformed(m mgl32.Mat4) BoundingBox {
	center := mgl32.TransformCoordinate(b.Center(), m)
	half := b.HalfSize()
	var extent mgl32.Vec3
	for row := 0; row < 3; row++ {
		extent[row] = mgl32.Abs(m.At(row, 0))*half[0] +
			mgl32.Abs(m.At(row, 1))*half[1] +
			mgl32.Abs(m.At(row, 2))*half[2]
	}
	return BoundingBox{Min: center.Sub(extent), Max: center.Add(extent)}
}

// FloatRange is a closed 1-D interval. A range with Min > Max is empty.
type FloatRange struct {
	Min float32
	Max float32
}

// EmptyFloatRange returns a range that contains nothing and acts as the identity for Union.
//
// Returns:
//   - FloatRange: the empty range
func EmptyFloatRange() FloatRange {
	return FloatRange{Min: math.MaxFloat32, Max: -math.MaxFloat32}
}

// IsValid reports whether the range contains at least one value.
//
// Returns:
//   - bool: true if Min <= Max
func (r FloatRange) IsValid() bool {
	return r.Min <= r.Max
}

// Union returns the smallest range containing both r and other. Empty operands are ignored.
//
// Parameters:
//   - other: the range to merge with
//
// Returns:
//   - FloatRange: the merged range
func (r FloatRange) Union(other FloatRange) FloatRange {
	if !other.IsValid() {
		return r
	}
	if !r.IsValid() {
		return other
	}
	return FloatRange{Min: min(r.Min, other.Min), Max: max(r.Max, other.Max)}
}

// Contains reports whether value lies within the range.
//
// Parameters:
//   - value: the value to test
//
// Returns:
//   - bool: true if Min <= value <= Max
func (r FloatRange) Contains(value float32) bool {
	return r.Min <= value && value <= r.Max
}

package render_pipeline

import (
	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ZRangeCalculator maps world-space boxes to view-space depth intervals for one view matrix.
type ZRangeCalculator struct {
	viewZ       mgl32.Vec3
	absViewZ    mgl32.Vec3
	viewZOffset float32
}

// NewZRangeCalculator captures row 2 of the view matrix.
//
// Parameters:
//   - view: the world-to-view matrix
//
// Returns:
//   - ZRangeCalculator: the calculator
func NewZRangeCalculator(view mgl32.Mat4) ZRangeCalculator {
	axis, offset := common.ViewZAxis(view)
	return ZRangeCalculator{
		viewZ:       axis,
		absViewZ:    common.AbsVec3(axis),
		viewZOffset: offset,
	}
}

// Calculate returns the interval containing the view-space Z of every point of box.
// Boxes whose half-extent reaches LargeValue are unbounded and yield an invalid range.
//
// Parameters:
//   - box: world-space bounds
//
// Returns:
//   - common.FloatRange: [center - half, center + half], or an empty range for unbounded boxes
func (c ZRangeCalculator) Calculate(box common.BoundingBox) common.FloatRange {
	half := box.HalfSize()
	if half.LenSqr() >= common.LargeValue*common.LargeValue {
		return common.EmptyFloatRange()
	}
	center := c.viewZ.Dot(box.Center()) + c.viewZOffset
	extent := c.absViewZ.Dot(half)
	return common.FloatRange{Min: center - extent, Max: center + extent}
}

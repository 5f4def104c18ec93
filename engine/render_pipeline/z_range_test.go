package render_pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestZRangeCalculator_OriginBoxIsTight(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	calc := NewZRangeCalculator(view)

	r := calc.Calculate(common.NewBoundingBox(mgl32.Vec3{-1, -2, -3}, mgl32.Vec3{1, 2, 3}))
	if !mgl32.FloatEqualThreshold(r.Min, -13, 1e-4) || !mgl32.FloatEqualThreshold(r.Max, -7, 1e-4) {
		t.Fatalf("expected [-13, -7], got [%f, %f]", r.Min, r.Max)
	}
}

func TestZRangeCalculator_ContainsEveryCorner(t *testing.T) {
	views := []mgl32.Mat4{
		mgl32.LookAtV(mgl32.Vec3{7, 4, 9}, mgl32.Vec3{1, -2, 0}, mgl32.Vec3{0, 1, 0}),
		mgl32.LookAtV(mgl32.Vec3{-20, 3, -5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}),
		mgl32.LookAtV(mgl32.Vec3{0.5, 30, 0.1}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}),
	}
	boxes := []common.BoundingBox{
		common.NewBoundingBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}),
		common.NewBoundingBox(mgl32.Vec3{3, -2, 5}, mgl32.Vec3{4, 8, 5.5}),
		common.NewBoundingBox(mgl32.Vec3{-50, 0, -50}, mgl32.Vec3{50, 0.1, 50}),
	}

	for vi, view := range views {
		calc := NewZRangeCalculator(view)
		for bi, box := range boxes {
			r := calc.Calculate(box)
			if !r.IsValid() {
				t.Fatalf("view %d box %d: expected a valid range", vi, bi)
			}
			for c := 0; c < 8; c++ {
				corner := mgl32.Vec3{box.Min[0], box.Min[1], box.Min[2]}
				if c&1 != 0 {
					corner[0] = box.Max[0]
				}
				if c&2 != 0 {
					corner[1] = box.Max[1]
				}
				if c&4 != 0 {
					corner[2] = box.Max[2]
				}
				z := view.Mul4x1(corner.Vec4(1)).Z()
				if z < r.Min-1e-3 || z > r.Max+1e-3 {
					t.Fatalf("view %d box %d: corner depth %f outside [%f, %f]", vi, bi, z, r.Min, r.Max)
				}
			}
		}
	}
}

func TestZRangeCalculator_UnboundedBoxIsInvalid(t *testing.T) {
	calc := NewZRangeCalculator(mgl32.Ident4())
	if r := calc.Calculate(common.InfiniteBoundingBox()); r.IsValid() {
		t.Fatalf("expected invalid range for an unbounded box, got [%f, %f]", r.Min, r.Max)
	}
}

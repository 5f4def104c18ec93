package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/go-gl/mathgl/mgl32"
)

func nearVec(got, want mgl32.Vec3) bool {
	for i := range got {
		if mgl32.Abs(got[i]-want[i]) > 1e-4 {
			return false
		}
	}
	return true
}

func TestNewCamera_ViewDepth(t *testing.T) {
	c := NewCamera(WithPosition(mgl32.Vec3{0, 0, 10}), WithLookAt(mgl32.Vec3{}))

	axis, offset := common.ViewZAxis(c.ViewMatrix())
	depth := axis.Dot(mgl32.Vec3{0, 0, 0}) + offset
	if !mgl32.FloatEqualThreshold(depth, -10, 1e-4) {
		t.Fatalf("expected origin at view depth -10, got %f", depth)
	}

	if d := c.Distance(mgl32.Vec3{0, 0, 4}); !mgl32.FloatEqualThreshold(d, 6, 1e-5) {
		t.Fatalf("expected distance 6, got %f", d)
	}

	f := c.Frustum()
	if !f.IntersectsBox(common.NewBoundingBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})) {
		t.Fatal("expected unit box at the look-at point to be inside the frustum")
	}
	if f.IntersectsBox(common.NewBoundingBox(mgl32.Vec3{-1, -1, 20}, mgl32.Vec3{1, 1, 22})) {
		t.Fatal("expected box behind the camera to be outside the frustum")
	}
}

func TestCamera_ViewMaskAndOverrides(t *testing.T) {
	c := NewCamera()
	if c.ViewMask() != DefaultViewMask {
		t.Fatalf("expected default view mask, got %#x", c.ViewMask())
	}
	c.SetViewMask(0x2)
	c.SetViewOverrideFlags(ViewOverrideLowMaterialQuality)
	if c.ViewMask() != 0x2 {
		t.Fatalf("expected view mask 0x2, got %#x", c.ViewMask())
	}
	if c.ViewOverrideFlags()&ViewOverrideLowMaterialQuality == 0 {
		t.Fatal("expected low material quality override")
	}
}

func TestOrbitController_UpdatesCamera(t *testing.T) {
	ctrl := NewOrbitController(WithRadius(10), WithElevation(0), WithAzimuth(0))
	c := NewCamera(WithController(ctrl))

	if !nearVec(c.Position(), mgl32.Vec3{0, 0, 10}) {
		t.Fatalf("expected camera on +Z at radius 10, got %v", c.Position())
	}

	ctrl.Orbit(float32(math.Pi/2), 0)
	c.Update()
	if !nearVec(c.Position(), mgl32.Vec3{10, 0, 0}) {
		t.Fatalf("expected camera on +X after quarter orbit, got %v", c.Position())
	}

	ctrl.Orbit(0, 10)
	if ctrl.Elevation() >= float32(math.Pi/2) {
		t.Fatalf("expected elevation clamped below pi/2, got %f", ctrl.Elevation())
	}

	ctrl.SetRadius(0)
	if ctrl.Radius() != 1 {
		t.Fatalf("expected radius clamped to 1, got %f", ctrl.Radius())
	}
}

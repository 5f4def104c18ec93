package light

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/drawable"
	"github.com/go-gl/mathgl/mgl32"
)

func unitBoxAt(p mgl32.Vec3) common.BoundingBox {
	half := mgl32.Vec3{0.5, 0.5, 0.5}
	return common.NewBoundingBox(p.Sub(half), p.Add(half))
}

func TestNewLight_IsLightDrawable(t *testing.T) {
	l := NewLight(LightTypePoint, WithPosition(mgl32.Vec3{1, 2, 3}), WithRange(5))
	if l.Flags() != drawable.DrawableLight {
		t.Fatalf("expected light flags, got %v", l.Flags())
	}
	if len(l.Batches()) != 0 {
		t.Fatalf("expected no batches, got %d", len(l.Batches()))
	}
	box := l.WorldBoundingBox()
	if !box.Center().ApproxEqual(mgl32.Vec3{1, 2, 3}) || !box.HalfSize().ApproxEqual(mgl32.Vec3{5, 5, 5}) {
		t.Fatalf("expected range-sized box at the light position, got %v", box)
	}

	l.SetRange(2)
	if !l.WorldBoundingBox().HalfSize().ApproxEqual(mgl32.Vec3{2, 2, 2}) {
		t.Fatalf("expected bounds to follow range, got %v", l.WorldBoundingBox())
	}
}

func TestDirectionalLight_Unbounded(t *testing.T) {
	l := NewLight(LightTypeDirectional)
	if l.WorldBoundingBox().HalfSize().LenSqr() < common.LargeValue*common.LargeValue {
		t.Fatal("expected directional light bounds to be unbounded")
	}
	if !l.IntersectsBox(unitBoxAt(mgl32.Vec3{1e5, 0, 0})) {
		t.Fatal("expected directional light to reach everything")
	}
}

func TestEffectiveColorAndMask(t *testing.T) {
	l := NewLight(LightTypePoint, WithColor(common.Color{R: 0.5, G: 0.25, B: 0, A: 0.3}), WithIntensity(2), WithLightMask(0x4))
	c := l.EffectiveColor()
	if !c.Equals(common.Color{R: 1, G: 0.5, B: 0, A: 1}) {
		t.Fatalf("expected color scaled by intensity, got %+v", c)
	}
	if l.LightMaskEffective() != 0x4 {
		t.Fatalf("expected effective mask 0x4, got %#x", l.LightMaskEffective())
	}

	l.SetMode(LightModeBaked)
	if l.LightMaskEffective() != 0 {
		t.Fatal("expected baked light to have no effective mask")
	}

	l.SetIntensity(0)
	if !l.EffectiveColor().Equals(common.Black) {
		t.Fatal("expected zero intensity to give black")
	}
}

func TestEffectiveColor_DisabledIsBlack(t *testing.T) {
	l := NewLight(LightTypePoint, WithColor(common.White), WithIntensity(3))
	l.SetEnabled(false)
	if c := l.EffectiveColor(); !c.Equals(common.Black) {
		t.Fatalf("expected disabled light to be black, got %+v", c)
	}
	l.SetEnabled(true)
	if c := l.EffectiveColor(); c.Equals(common.Black) {
		t.Fatalf("expected re-enabled light to have color, got %+v", c)
	}
}

func TestPointLight_IntersectsAndPenalty(t *testing.T) {
	l := NewLight(LightTypePoint, WithRange(10))

	near := unitBoxAt(mgl32.Vec3{2, 0, 0})
	far := unitBoxAt(mgl32.Vec3{8, 0, 0})
	out := unitBoxAt(mgl32.Vec3{20, 0, 0})

	if !l.IntersectsBox(near) || !l.IntersectsBox(far) {
		t.Fatal("expected boxes within range to intersect")
	}
	if l.IntersectsBox(out) {
		t.Fatal("expected box beyond range not to intersect")
	}
	if l.Penalty(near) >= l.Penalty(far) {
		t.Fatalf("expected nearer box to have lower penalty, got %f >= %f", l.Penalty(near), l.Penalty(far))
	}
}

func TestSpotLight_Cone(t *testing.T) {
	l := NewLight(LightTypeSpot, WithRange(20), WithDirection(mgl32.Vec3{0, 0, -1}), WithSpotCone(20, 30))

	if !l.IntersectsBox(unitBoxAt(mgl32.Vec3{0, 0, -10})) {
		t.Fatal("expected box on the cone axis to intersect")
	}
	if l.IntersectsBox(unitBoxAt(mgl32.Vec3{0, 0, 10})) {
		t.Fatal("expected box behind the spot light not to intersect")
	}
	if l.IntersectsBox(unitBoxAt(mgl32.Vec3{10, 0, -2})) {
		t.Fatal("expected box far outside the cone not to intersect")
	}
}

package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFloatRange_UnionIgnoresEmpty(t *testing.T) {
	r := EmptyFloatRange()
	if r.IsValid() {
		t.Fatal("expected empty range to be invalid")
	}

	r = r.Union(FloatRange{Min: 2, Max: 4})
	if r != (FloatRange{Min: 2, Max: 4}) {
		t.Fatalf("expected [2,4], got %+v", r)
	}

	r = r.Union(EmptyFloatRange())
	if r != (FloatRange{Min: 2, Max: 4}) {
		t.Fatalf("expected union with empty to be a no-op, got %+v", r)
	}

	r = r.Union(FloatRange{Min: -1, Max: 3})
	if r != (FloatRange{Min: -1, Max: 4}) {
		t.Fatalf("expected [-1,4], got %+v", r)
	}
	if !r.Contains(0) || r.Contains(5) {
		t.Fatalf("unexpected containment for %+v", r)
	}
}

func TestBoundingBox_CenterAndHalfSize(t *testing.T) {
	b := NewBoundingBox(mgl32.Vec3{3, -1, 2}, mgl32.Vec3{-1, 1, 0})
	if b.Min != (mgl32.Vec3{-1, -1, 0}) || b.Max != (mgl32.Vec3{3, 1, 2}) {
		t.Fatalf("expected sorted corners, got %+v", b)
	}
	if c := b.Center(); c != (mgl32.Vec3{1, 0, 1}) {
		t.Fatalf("expected center (1,0,1), got %v", c)
	}
	if h := b.HalfSize(); h != (mgl32.Vec3{2, 1, 1}) {
		t.Fatalf("expected half size (2,1,1), got %v", h)
	}
}

func TestBoundingBox_DistanceToBoundary(t *testing.T) {
	b := NewBoundingBox(mgl32.Vec3{-2, -2, -2}, mgl32.Vec3{2, 2, 2})

	if d := b.DistanceToBoundary(mgl32.Vec3{0, 0, 0}); d != 2 {
		t.Fatalf("expected 2 from center, got %v", d)
	}
	if d := b.DistanceToBoundary(mgl32.Vec3{1.5, 0, 0}); mgl32.Abs(d-0.5) > 1e-6 {
		t.Fatalf("expected 0.5 near face, got %v", d)
	}
	if d := b.DistanceToBoundary(mgl32.Vec3{5, 0, 0}); d != 3 {
		t.Fatalf("expected 3 outside, got %v", d)
	}
}

func TestBoundingBox_TransformedContainsCorners(t *testing.T) {
	local := NewBoundingBox(mgl32.Vec3{-1, -2, -0.5}, mgl32.Vec3{1, 2, 0.5})
	m := BuildModelMatrix(mgl32.Vec3{10, 0, -3}, mgl32.Vec3{0.3, 1.1, -0.4}, mgl32.Vec3{2, 1, 1})
	world := local.Transformed(m)

	for i := 0; i < 8; i++ {
		corner := mgl32.Vec3{local.Min[0], local.Min[1], local.Min[2]}
		if i&1 != 0 {
			corner[0] = local.Max[0]
		}
		if i&2 != 0 {
			corner[1] = local.Max[1]
		}
		if i&4 != 0 {
			corner[2] = local.Max[2]
		}
		p := mgl32.TransformCoordinate(corner, m)
		grown := BoundingBox{Min: world.Min.Sub(mgl32.Vec3{1e-4, 1e-4, 1e-4}), Max: world.Max.Add(mgl32.Vec3{1e-4, 1e-4, 1e-4})}
		if !grown.IsInside(p) {
			t.Fatalf("corner %v transformed to %v escapes box %+v", corner, p, world)
		}
	}
}

func TestColor_GammaToLinear(t *testing.T) {
	c := Color{0, 0.5, 1, 1}.GammaToLinear()
	if c.R != 0 {
		t.Fatalf("expected 0 to stay 0, got %v", c.R)
	}
	want := float32(math.Pow((0.5+0.055)/1.055, 2.4))
	if mgl32.Abs(c.G-want) > 1e-6 {
		t.Fatalf("expected %v, got %v", want, c.G)
	}
	if mgl32.Abs(c.B-1) > 1e-6 {
		t.Fatalf("expected 1 to stay 1, got %v", c.B)
	}
	if !Black.Equals(Color{0, 0, 0, 0.2}) {
		t.Fatal("expected alpha to be ignored by Equals")
	}
}

func TestSH_AddAmbient(t *testing.T) {
	sh := SHFromAmbient(mgl32.Vec3{0.1, 0.2, 0.3})
	if sh.IsZero() {
		t.Fatal("expected non-zero harmonics")
	}
	got := sh.Evaluate(mgl32.Vec3{0, 1, 0})
	if !got.ApproxEqual(mgl32.Vec3{0.1, 0.2, 0.3}) {
		t.Fatalf("expected flat ambient in every direction, got %v", got)
	}
	sh.AddAmbient(mgl32.Vec3{0.1, 0.1, 0.1})
	if !sh.Ambient().ApproxEqual(mgl32.Vec3{0.2, 0.3, 0.4}) {
		t.Fatalf("expected accumulated ambient, got %v", sh.Ambient())
	}
}

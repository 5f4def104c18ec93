package zone

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestCachedZone_Validity(t *testing.T) {
	empty := NewCachedZone()
	if empty.IsValidAt(mgl32.Vec3{}) {
		t.Fatal("expected a new cache to be invalid at its own position")
	}

	c := CachedZone{
		Zone:                             NewZone(),
		CachePosition:                    mgl32.Vec3{1, 0, 0},
		CacheInvalidationDistanceSquared: 4,
	}
	tests := []struct {
		pos   mgl32.Vec3
		valid bool
	}{
		{mgl32.Vec3{1, 0, 0}, true},
		{mgl32.Vec3{2.9, 0, 0}, true},
		{mgl32.Vec3{3, 0, 0}, false},
		{mgl32.Vec3{1, 5, 0}, false},
	}
	for _, tt := range tests {
		if got := c.IsValidAt(tt.pos); got != tt.valid {
			t.Fatalf("position %v: expected valid=%v, got %v", tt.pos, tt.valid, got)
		}
	}
}

func TestZone_LinearAmbient(t *testing.T) {
	z := NewZone(WithAmbientColor(common.Color{R: 1, G: 0.5, B: 0, A: 1}))
	amb := z.LinearAmbient()
	if amb[0] != 1 || amb[2] != 0 {
		t.Fatalf("expected endpoints preserved, got %v", amb)
	}
	if amb[1] >= 0.5 || amb[1] <= 0.1 {
		t.Fatalf("expected mid grey to darken in linear space, got %f", amb[1])
	}
}

func TestNewZone_Defaults(t *testing.T) {
	z := NewZone(WithName("room"), WithPriority(3))
	if z.Name() != "room" || z.Priority() != 3 {
		t.Fatalf("expected room/3, got %s/%d", z.Name(), z.Priority())
	}
	if z.ZoneMask() != DefaultZoneMask {
		t.Fatalf("expected default mask, got %#x", z.ZoneMask())
	}
	if !z.BoundingBox().IsInside(mgl32.Vec3{1e6, -1e6, 0}) {
		t.Fatal("expected default zone to cover all of space")
	}
}

package zone

import (
	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultZoneMask matches every drawable.
const DefaultZoneMask uint32 = 0xffffffff

type zoneImpl struct {
	name         string
	boundingBox  common.BoundingBox
	priority     int
	zoneMask     uint32
	ambientColor common.Color
	fogColor     common.Color
	fogStart     float32
	fogEnd       float32
}

// Zone is an axis-aligned region that supplies ambient lighting and fog to the drawables inside it.
// Zones overlap freely; the spatial index resolves overlaps by priority.
// A Zone is immutable once built and safe to share across goroutines.
type Zone interface {
	// Name returns the zone identifier.
	//
	// Returns:
	//   - string: the zone name
	Name() string

	// BoundingBox returns the world-space region covered by the zone.
	//
	// Returns:
	//   - common.BoundingBox: the zone bounds
	BoundingBox() common.BoundingBox

	// Priority returns the overlap priority. Higher wins.
	//
	// Returns:
	//   - int: the priority
	Priority() int

	// ZoneMask returns the bitmask matched against drawable zone masks.
	//
	// Returns:
	//   - uint32: the zone mask
	ZoneMask() uint32

	// AmbientColor returns the ambient color in gamma space.
	//
	// Returns:
	//   - common.Color: the ambient color
	AmbientColor() common.Color

	// LinearAmbient returns the ambient color converted to linear space as an RGB vector.
	//
	// Returns:
	//   - mgl32.Vec3: linear RGB ambient
	LinearAmbient() mgl32.Vec3

	FogColor() common.Color
	FogStart() float32
	FogEnd() float32
}

var _ Zone = &zoneImpl{}

// NewZone creates a Zone. The default zone covers all of space at the lowest priority
// with a dim grey ambient.
//
// Parameters:
//   - options: functional options to configure the zone
//
// Returns:
//   - Zone: the new zone
func NewZone(options ...ZoneBuilderOption) Zone {
	z := &zoneImpl{
		name:         "zone",
		boundingBox:  common.InfiniteBoundingBox(),
		priority:     0,
		zoneMask:     DefaultZoneMask,
		ambientColor: common.Color{R: 0.1, G: 0.1, B: 0.1, A: 1},
		fogColor:     common.Black,
		fogStart:     250.0,
		fogEnd:       1000.0,
	}
	for _, option := range options {
		option(z)
	}
	return z
}

func (z *zoneImpl) Name() string {
	return z.name
}

func (z *zoneImpl) BoundingBox() common.BoundingBox {
	return z.boundingBox
}

func (z *zoneImpl) Priority() int {
	return z.priority
}

func (z *zoneImpl) ZoneMask() uint32 {
	return z.zoneMask
}

func (z *zoneImpl) AmbientColor() common.Color {
	return z.ambientColor
}

func (z *zoneImpl) LinearAmbient() mgl32.Vec3 {
	return z.ambientColor.GammaToLinear().ToVec3()
}

func (z *zoneImpl) FogColor() common.Color {
	return z.fogColor
}

func (z *zoneImpl) FogStart() float32 {
	return z.fogStart
}

func (z *zoneImpl) FogEnd() float32 {
	return z.fogEnd
}

package light

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/drawable"
	"github.com/go-gl/mathgl/mgl32"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeDirectional represents a light with no position, only direction.
	// Used for large distant sources like the sun or moon. Affects every drawable
	// it is not masked from, so its bounds are unbounded.
	LightTypeDirectional LightType = iota

	// LightTypePoint represents a light that emits in all directions from a position
	// up to a configurable range.
	LightTypePoint

	// LightTypeSpot represents a light that emits in a cone from a position along a direction.
	// Attenuates with both distance and angle from the cone axis.
	LightTypeSpot
)

// LightMode controls whether a light is evaluated at runtime, baked into lightmaps, or both.
type LightMode int

const (
	LightModeRealtime LightMode = iota
	LightModeMixed
	// LightModeBaked lights only exist in baked data and never reach runtime light lists.
	LightModeBaked
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	drawable.Drawable

	mu           sync.RWMutex
	lightType    LightType
	mode         LightMode
	direction    mgl32.Vec3
	color        common.Color
	intensity    float32
	lightRange   float32
	innerCone    float32 // stored as cos(angle in radians)
	outerCone    float32 // stored as cos(angle in radians)
	castsShadows bool

	drawableOptions []drawable.DrawableBuilderOption
}

// Light defines the interface for a light source in the scene.
//
// A Light is a drawable flagged DrawableLight, so it is registered in the spatial index and
// visited by the same per-frame processing as geometry. Its drawable light mask selects which
// geometry it may affect. Type-specific properties (e.g. cone angles for spot lights) are
// ignored when not applicable.
type Light interface {
	drawable.Drawable

	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (directional, point, or spot)
	Type() LightType

	// Mode returns whether the light is realtime, mixed or baked.
	//
	// Returns:
	//   - LightMode: the light mode
	Mode() LightMode

	// Direction returns the normalized direction of the light.
	// For directional lights this is the light direction. For spot lights this
	// is the cone axis. Meaningless for point lights.
	//
	// Returns:
	//   - mgl32.Vec3: normalized direction
	Direction() mgl32.Vec3

	// Color returns the color of the light.
	//
	// Returns:
	//   - common.Color: the light color
	Color() common.Color

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Range returns the maximum attenuation distance for point and spot lights.
	//
	// Returns:
	//   - float32: the range value
	Range() float32

	// InnerCone returns the cosine of the inner cone half-angle for spot lights.
	//
	// Returns:
	//   - float32: cos(inner half-angle)
	InnerCone() float32

	// OuterCone returns the cosine of the outer cone half-angle for spot lights.
	//
	// Returns:
	//   - float32: cos(outer half-angle)
	OuterCone() float32

	// CastsShadows returns whether this light is eligible for shadow map generation.
	//
	// Returns:
	//   - bool: true if the light casts shadows
	CastsShadows() bool

	// EffectiveColor returns the color scaled by intensity, or black when the light is disabled.
	//
	// Returns:
	//   - common.Color: the color that reaches lit surfaces
	EffectiveColor() common.Color

	// LightMaskEffective returns the light mask used at runtime: zero for baked lights,
	// the drawable light mask otherwise.
	//
	// Returns:
	//   - uint32: the effective mask
	LightMaskEffective() uint32

	// IntersectsBox reports whether the light can reach any part of a world-space box.
	//
	// Parameters:
	//   - box: the world-space bounds of a lit drawable
	//
	// Returns:
	//   - bool: true if the box is within the light's volume
	IntersectsBox(box common.BoundingBox) bool

	// Penalty ranks how strongly the light affects a box. Lower means more important.
	//
	// Parameters:
	//   - box: the world-space bounds of a lit drawable
	//
	// Returns:
	//   - float32: the penalty
	Penalty(box common.BoundingBox) float32

	SetMode(mode LightMode)

	// SetDirection sets the direction of the light and normalizes it.
	//
	// Parameters:
	//   - direction: direction (will be normalized)
	SetDirection(direction mgl32.Vec3)

	SetColor(color common.Color)
	SetIntensity(intensity float32)

	// SetRange sets the maximum attenuation distance and resizes the light's bounds.
	//
	// Parameters:
	//   - lightRange: the range value
	SetRange(lightRange float32)

	// SetSpotCone sets the inner and outer cone half-angles for spot lights.
	// Angles are specified in degrees and stored internally as cosines.
	//
	// Parameters:
	//   - innerDeg: inner cone half-angle in degrees
	//   - outerDeg: outer cone half-angle in degrees
	SetSpotCone(innerDeg, outerDeg float32)

	SetCastsShadows(castsShadows bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create (directional, point, or spot)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType:  lightType,
		mode:       LightModeRealtime,
		direction:  mgl32.Vec3{0, -1, 0},
		color:      common.White,
		intensity:  1.0,
		lightRange: 10.0,
		innerCone:  0.9063, // cos(25°)
		outerCone:  0.8192, // cos(35°)
	}
	for _, opt := range opts {
		opt(l)
	}

	options := []drawable.DrawableBuilderOption{
		drawable.WithFlags(drawable.DrawableLight),
		drawable.WithMaterials(),
		drawable.WithBoundingBox(l.localBoundingBox()),
	}
	l.Drawable = drawable.NewDrawable(append(options, l.drawableOptions...)...)
	l.drawableOptions = nil
	return l
}

// localBoundingBox returns the model-space volume the light can reach. Caller must hold mu
// or have exclusive access.
func (l *lightImpl) localBoundingBox() common.BoundingBox {
	if l.lightType == LightTypeDirectional {
		return common.InfiniteBoundingBox()
	}
	r := l.lightRange
	return common.NewBoundingBox(mgl32.Vec3{-r, -r, -r}, mgl32.Vec3{r, r, r})
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Mode() LightMode {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.mode
}

func (l *lightImpl) Direction() mgl32.Vec3 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.direction
}

func (l *lightImpl) Color() common.Color {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.intensity
}

func (l *lightImpl) Range() float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lightRange
}

func (l *lightImpl) InnerCone() float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.innerCone
}

func (l *lightImpl) OuterCone() float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.outerCone
}

func (l *lightImpl) CastsShadows() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.castsShadows
}

func (l *lightImpl) EffectiveColor() common.Color {
	if !l.Enabled() {
		return common.Black
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	c := l.color.Scaled(l.intensity)
	c.A = 1
	return c
}

func (l *lightImpl) LightMaskEffective() uint32 {
	if l.Mode() == LightModeBaked {
		return 0
	}
	return l.LightMask()
}

func (l *lightImpl) IntersectsBox(box common.BoundingBox) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.lightType == LightTypeDirectional {
		return true
	}
	pos := l.Position()
	if box.DistanceToPoint(pos) > l.lightRange {
		return false
	}
	if l.lightType == LightTypePoint {
		return true
	}

	// Bounding sphere of the box against the cone.
	toCenter := box.Center().Sub(pos)
	dist := toCenter.Len()
	radius := box.HalfSize().Len()
	if dist <= radius {
		return true
	}
	cosAngle := float64(l.direction.Dot(toCenter) / dist)
	angle := math.Acos(math.Max(-1, math.Min(1, cosAngle)))
	spread := math.Asin(math.Min(1, float64(radius/dist)))
	return angle-spread <= math.Acos(float64(l.outerCone))
}

func (l *lightImpl) Penalty(box common.BoundingBox) float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.lightType == LightTypeDirectional {
		return 0
	}
	if l.lightRange <= 0 {
		return common.LargeValue
	}
	return box.DistanceToPoint(l.Position()) / l.lightRange
}

func (l *lightImpl) SetMode(mode LightMode) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mode = mode
}

func (l *lightImpl) SetDirection(direction mgl32.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.direction = normalize(direction)
}

func (l *lightImpl) SetColor(color common.Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = color
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intensity = intensity
}

func (l *lightImpl) SetRange(lightRange float32) {
	l.mu.Lock()
	l.lightRange = lightRange
	box := l.localBoundingBox()
	l.mu.Unlock()
	l.SetLocalBoundingBox(box)
}

func (l *lightImpl) SetSpotCone(innerDeg, outerDeg float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.innerCone = cosDeg(innerDeg)
	l.outerCone = cosDeg(outerDeg)
}

func (l *lightImpl) SetCastsShadows(castsShadows bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.castsShadows = castsShadows
}

package light

import (
	"math"

	"github.com/Carmen-Shannon/oxy-pipeline/common"
	"github.com/Carmen-Shannon/oxy-pipeline/engine/drawable"
	"github.com/go-gl/mathgl/mgl32"
)

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithPosition is an option builder that sets the world-space position of the light.
//
// Parameters:
//   - position: world-space position
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a lightImpl
func WithPosition(position mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.drawableOptions = append(l.drawableOptions, drawable.WithPosition(position))
	}
}

// WithDirection is an option builder that sets the direction of the light.
// The direction is normalized before storing.
//
// Parameters:
//   - direction: direction vector
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option to a lightImpl
func WithDirection(direction mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.direction = normalize(direction)
	}
}

// WithColor is an option builder that sets the color of the light.
//
// Parameters:
//   - color: the light color
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(color common.Color) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = color
	}
}

// WithIntensity is an option builder that sets the scalar intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity option to a lightImpl
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithRange is an option builder that sets the maximum attenuation distance.
// Only meaningful for point and spot lights.
//
// Parameters:
//   - lightRange: the range value
//
// Returns:
//   - LightBuilderOption: a function that applies the range option to a lightImpl
func WithRange(lightRange float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.lightRange = lightRange
	}
}

// WithSpotCone is an option builder that sets the inner and outer cone half-angles.
// Angles are specified in degrees and converted to cosines for storage.
//
// Parameters:
//   - innerDeg: inner cone half-angle in degrees
//   - outerDeg: outer cone half-angle in degrees
//
// Returns:
//   - LightBuilderOption: a function that applies the spot cone option to a lightImpl
func WithSpotCone(innerDeg, outerDeg float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.innerCone = cosDeg(innerDeg)
		l.outerCone = cosDeg(outerDeg)
	}
}

// WithMode sets whether the light is realtime, mixed or baked.
//
// Parameters:
//   - mode: the light mode
//
// Returns:
//   - LightBuilderOption: a function that applies the mode option to a lightImpl
func WithMode(mode LightMode) LightBuilderOption {
	return func(l *lightImpl) {
		l.mode = mode
	}
}

// WithLightMask sets the mask matched against lit drawables' light masks.
//
// Parameters:
//   - mask: the light mask
//
// Returns:
//   - LightBuilderOption: a function that applies the mask option to a lightImpl
func WithLightMask(mask uint32) LightBuilderOption {
	return func(l *lightImpl) {
		l.drawableOptions = append(l.drawableOptions, drawable.WithLightMask(mask))
	}
}

// WithEnabled sets whether the light starts enabled.
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled option to a lightImpl
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.drawableOptions = append(l.drawableOptions, drawable.WithEnabled(enabled))
	}
}

// WithCastsShadows is an option builder that sets whether the light is eligible
// for shadow map generation.
//
// Parameters:
//   - castsShadows: true to enable shadow casting
//
// Returns:
//   - LightBuilderOption: a function that applies the shadow option to a lightImpl
func WithCastsShadows(castsShadows bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.castsShadows = castsShadows
	}
}

// WithDrawableOptions forwards options to the underlying drawable, e.g. draw distance or view mask.
//
// Parameters:
//   - options: drawable options
//
// Returns:
//   - LightBuilderOption: a function that applies the options to a lightImpl
func WithDrawableOptions(options ...drawable.DrawableBuilderOption) LightBuilderOption {
	return func(l *lightImpl) {
		l.drawableOptions = append(l.drawableOptions, options...)
	}
}

// normalize returns v scaled to unit length, or the zero vector if v has zero length.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.LenSqr() == 0 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}

// cosDeg converts an angle in degrees to the cosine of that angle in radians.
func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(deg) * math.Pi / 180.0))
}

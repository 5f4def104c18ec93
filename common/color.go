package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// colorEpsilon is the per-channel tolerance used by Color.Equals.
const colorEpsilon float32 = 0.000001

// Color is an RGBA color with float components, usually in gamma space.
type Color struct {
	R, G, B, A float32
}

// Black is opaque black.
var Black = Color{0, 0, 0, 1}

// White is opaque white.
var White = Color{1, 1, 1, 1}

// Equals compares the RGB channels of two colors within a small tolerance. Alpha is ignored
// since lights and ambient terms never use it.
//
// Parameters:
//   - other: the color to compare against
//
// Returns:
//   - bool: true if every RGB channel is within tolerance
func (c Color) Equals(other Color) bool {
	return mgl32.Abs(c.R-other.R) <= colorEpsilon &&
		mgl32.Abs(c.G-other.G) <= colorEpsilon &&
		mgl32.Abs(c.B-other.B) <= colorEpsilon
}

// Scaled multiplies the RGB channels by s, leaving alpha untouched.
//
// Parameters:
//   - s: the scale factor
//
// Returns:
//   - Color: the scaled color
func (c Color) Scaled(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A}
}

// ToVec3 returns the RGB channels as a vector.
//
// Returns:
//   - mgl32.Vec3: (r, g, b)
func (c Color) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

// GammaToLinear converts the RGB channels from sRGB gamma space to linear space.
//
// Returns:
//   - Color: the linear-space color
func (c Color) GammaToLinear() Color {
	return Color{gammaToLinear(c.R), gammaToLinear(c.G), gammaToLinear(c.B), c.A}
}

func gammaToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	if v < 1.0 {
		return float32(math.Pow(float64(v+0.055)/1.055, 2.4))
	}
	return float32(math.Pow(float64(v), 2.2))
}

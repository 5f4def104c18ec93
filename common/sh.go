package common

import "github.com/go-gl/mathgl/mgl32"

// SphericalHarmonicsDot9 stores 9-coefficient RGB spherical harmonics rearranged for
// evaluation by dot products. The W components of Ar/Ag/Ab hold the constant band,
// which is where flat ambient light goes.
type SphericalHarmonicsDot9 struct {
	Ar, Ag, Ab mgl32.Vec4
	Br, Bg, Bb mgl32.Vec4
	C          mgl32.Vec4
}

// SHFromAmbient builds harmonics that evaluate to the given flat color in every direction.
//
// Parameters:
//   - ambient: linear RGB ambient color
//
// Returns:
//   - SphericalHarmonicsDot9: the constant-band harmonics
func SHFromAmbient(ambient mgl32.Vec3) SphericalHarmonicsDot9 {
	var sh SphericalHarmonicsDot9
	sh.AddAmbient(ambient)
	return sh
}

// AddAmbient adds a flat color to the constant band.
//
// Parameters:
//   - ambient: linear RGB ambient color
func (sh *SphericalHarmonicsDot9) AddAmbient(ambient mgl32.Vec3) {
	sh.Ar[3] += ambient[0]
	sh.Ag[3] += ambient[1]
	sh.Ab[3] += ambient[2]
}

// Add returns the component-wise sum of two harmonics.
//
// Parameters:
//   - other: the harmonics to add
//
// Returns:
//   - SphericalHarmonicsDot9: the sum
func (sh SphericalHarmonicsDot9) Add(other SphericalHarmonicsDot9) SphericalHarmonicsDot9 {
	return SphericalHarmonicsDot9{
		Ar: sh.Ar.Add(other.Ar), Ag: sh.Ag.Add(other.Ag), Ab: sh.Ab.Add(other.Ab),
		Br: sh.Br.Add(other.Br), Bg: sh.Bg.Add(other.Bg), Bb: sh.Bb.Add(other.Bb),
		C: sh.C.Add(other.C),
	}
}

// Scaled multiplies every coefficient by s.
//
// Parameters:
//   - s: the scale factor
//
// Returns:
//   - SphericalHarmonicsDot9: the scaled harmonics
func (sh SphericalHarmonicsDot9) Scaled(s float32) SphericalHarmonicsDot9 {
	return SphericalHarmonicsDot9{
		Ar: sh.Ar.Mul(s), Ag: sh.Ag.Mul(s), Ab: sh.Ab.Mul(s),
		Br: sh.Br.Mul(s), Bg: sh.Bg.Mul(s), Bb: sh.Bb.Mul(s),
		C: sh.C.Mul(s),
	}
}

// Ambient returns the constant band as an RGB color.
//
// Returns:
//   - mgl32.Vec3: the flat ambient term
func (sh SphericalHarmonicsDot9) Ambient() mgl32.Vec3 {
	return mgl32.Vec3{sh.Ar[3], sh.Ag[3], sh.Ab[3]}
}

// Evaluate returns the irradiance for a unit normal.
//
// Parameters:
//   - normal: unit-length direction
//
// Returns:
//   - mgl32.Vec3: RGB irradiance
func (sh SphericalHarmonicsDot9) Evaluate(normal mgl32.Vec3) mgl32.Vec3 {
	n := normal.Vec4(1)
	b := mgl32.Vec4{normal[0] * normal[1], normal[1] * normal[2], normal[2] * normal[2], normal[2] * normal[0]}
	c := normal[0]*normal[0] - normal[1]*normal[1]
	return mgl32.Vec3{
		sh.Ar.Dot(n) + sh.Br.Dot(b) + sh.C[0]*c,
		sh.Ag.Dot(n) + sh.Bg.Dot(b) + sh.C[1]*c,
		sh.Ab.Dot(n) + sh.Bb.Dot(b) + sh.C[2]*c,
	}
}

// IsZero reports whether every coefficient is exactly zero.
//
// Returns:
//   - bool: true for the zero value
func (sh SphericalHarmonicsDot9) IsZero() bool {
	return sh == SphericalHarmonicsDot9{}
}

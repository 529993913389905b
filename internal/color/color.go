// Package color provides the color space conversions used when interpolating
// gradient ramps.
package color

import "math"

// Space selects the color space in which two colors are blended.
type Space uint8

const (
	// SpaceSRGB blends the gamma-encoded components directly.
	SpaceSRGB Space = iota
	// SpaceLinear blends in linear light and re-encodes the result.
	SpaceLinear
)

// F64 is a non-premultiplied color with components in [0,1].
// Alpha is always linear.
type F64 struct {
	R, G, B, A float64
}

// SRGBToLinear converts an sRGB component to linear light.
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear-light component to sRGB.
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// ToLinear converts the RGB components of c to linear light.
func ToLinear(c F64) F64 {
	return F64{R: SRGBToLinear(c.R), G: SRGBToLinear(c.G), B: SRGBToLinear(c.B), A: c.A}
}

// ToSRGB converts the RGB components of c back to sRGB.
func ToSRGB(c F64) F64 {
	return F64{R: LinearToSRGB(c.R), G: LinearToSRGB(c.G), B: LinearToSRGB(c.B), A: c.A}
}

// Lerp blends c0 towards c1 by t in the given space.
// t is not clamped; callers pass values in [0,1].
func Lerp(c0, c1 F64, t float64, space Space) F64 {
	if space == SpaceLinear {
		return ToSRGB(lerp(ToLinear(c0), ToLinear(c1), t))
	}
	return lerp(c0, c1, t)
}

func lerp(a, b F64, t float64) F64 {
	return F64{
		R: a.R + t*(b.R-a.R),
		G: a.G + t*(b.G-a.G),
		B: a.B + t*(b.B-a.B),
		A: a.A + t*(b.A-a.A),
	}
}

// Package color provides the sRGB transfer curve and unorm quantization used
// by the color stages of the raster pipeline.
//
// sRGB is the standard color space for images and displays, but blending
// operations should be performed in linear space for physically correct results.
//
// References:
//   - sRGB standard: https://www.w3.org/Graphics/Color/sRGB
package color

import (
	"math"

	"github.com/gogpu/rasterpipe/internal/wide"
)

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Negative inputs mirror the curve around zero.
func SRGBToLinear(s float32) float32 {
	if s < 0 {
		return -SRGBToLinear(-s)
	}
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Negative inputs mirror the curve around zero.
func LinearToSRGB(l float32) float32 {
	if l < 0 {
		return -LinearToSRGB(-l)
	}
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// FromSRGB applies SRGBToLinear to every lane.
func FromSRGB(v wide.F32x8) wide.F32x8 {
	for i := range v {
		v[i] = SRGBToLinear(v[i])
	}
	return v
}

// ToSRGB applies LinearToSRGB to every lane.
func ToSRGB(v wide.F32x8) wide.F32x8 {
	for i := range v {
		v[i] = LinearToSRGB(v[i])
	}
	return v
}

package colorspace

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// LinearRGB is physically linear sRGB light with channels nominally in [0,1].
// It has no gamma applied and must not be displayed directly.
type LinearRGB struct {
	R, G, B float64
}

// RGB is a gamma-encoded sRGB color ready for display.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// FromColor converts any color.Color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// XYZ (0-100 convention) to linear sRGB, D65.
var xyzToLinear = [3][3]float64{
	{3.2406254773200533, -1.5372079722103187, -0.4986285986982479},
	{-0.9689307147293197, 1.8757560608852415, 0.041517523842953964},
	{0.055710120445510616, -0.2040210505984867, 1.0569959422543882},
}

// The IEC 61966-2-1 forward matrix; xyzToLinear is its exact inverse.
var linearToXYZ = [3][3]float64{
	{0.4124, 0.3576, 0.1805},
	{0.2126, 0.7152, 0.0722},
	{0.0193, 0.1192, 0.9505},
}

// XYZToLinearRGB converts XYZ to linear sRGB. Results may fall outside [0,1]
// for colors the sRGB gamut cannot represent.
func XYZToLinearRGB(c XYZ) LinearRGB {
	x, y, z := c.X/100, c.Y/100, c.Z/100
	m := &xyzToLinear
	return LinearRGB{
		R: m[0][0]*x + m[0][1]*y + m[0][2]*z,
		G: m[1][0]*x + m[1][1]*y + m[1][2]*z,
		B: m[2][0]*x + m[2][1]*y + m[2][2]*z,
	}
}

// LinearRGBToXYZ converts linear sRGB to XYZ.
func LinearRGBToXYZ(c LinearRGB) XYZ {
	m := &linearToXYZ
	return XYZ{
		X: 100 * (m[0][0]*c.R + m[0][1]*c.G + m[0][2]*c.B),
		Y: 100 * (m[1][0]*c.R + m[1][1]*c.G + m[1][2]*c.B),
		Z: 100 * (m[2][0]*c.R + m[2][1]*c.G + m[2][2]*c.B),
	}
}

// LinearRGBToSRGB gamma-encodes linear light into 8-bit sRGB. Channels are
// rounded to the nearest integer and clamped to [0,255].
func LinearRGBToSRGB(c LinearRGB) RGB {
	return RGB{
		R: clamp8(compand(c.R) * 255),
		G: clamp8(compand(c.G) * 255),
		B: clamp8(compand(c.B) * 255),
	}
}

// SRGBToLinearRGB removes the sRGB gamma encoding.
func SRGBToLinearRGB(c RGB) LinearRGB {
	return LinearRGB{
		R: uncompand(float64(c.R) / 255),
		G: uncompand(float64(c.G) / 255),
		B: uncompand(float64(c.B) / 255),
	}
}

// compand is linear below 0.0031308 to avoid the infinite slope of the
// power curve at zero.
func compand(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

func uncompand(c float64) float64 {
	if c <= 0.0031308*12.92 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func clamp8(v float64) uint8 {
	v = math.Round(v)
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

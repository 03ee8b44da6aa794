package colorspace

import (
	"fmt"
	"math"
)

const (
	// epsilon and kappa are the exact CIE constants (216/24389, 24389/27)
	// rather than the rounded 0.008856 and 903.3.
	epsilon = 216.0 / 24389.0
	kappa   = 24389.0 / 27.0
)

// D65 is the reference white, in the 0-100 XYZ convention.
var D65 = XYZ{X: 95.05, Y: 100, Z: 108.9}

// Lab is a CIE L*a*b* color. L is in [0,100]; A and B are roughly in
// [-100,100].
type Lab struct {
	L, A, B float64
}

// String formats the color as a CSS lab() value.
func (c Lab) String() string {
	return fmt.Sprintf("lab(%g%% %g %g)", c.L, c.A, c.B)
}

// XYZ is a CIE tristimulus color relative to D65, with Y=100 for the white point.
type XYZ struct {
	X, Y, Z float64
}

// LabToXYZ converts a Lab color to XYZ.
func LabToXYZ(c Lab) XYZ {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	var yr float64
	if c.L > kappa*epsilon {
		yr = fy * fy * fy
	} else {
		yr = c.L / kappa
	}

	return XYZ{
		X: unsigned(uncompress(fx) * D65.X),
		Y: unsigned(yr * D65.Y),
		Z: unsigned(uncompress(fz) * D65.Z),
	}
}

// XYZToLab converts an XYZ color to Lab.
func XYZToLab(c XYZ) Lab {
	fx := compress(c.X / D65.X)
	fy := compress(c.Y / D65.Y)
	fz := compress(c.Z / D65.Z)

	return Lab{
		L: unsigned(116*fy - 16),
		A: unsigned(500 * (fx - fy)),
		B: unsigned(200 * (fy - fz)),
	}
}

// compress is the forward Lab companding: a cube root above epsilon and a
// linear segment near zero.
func compress(t float64) float64 {
	if t > epsilon {
		return math.Cbrt(t)
	}
	return (kappa*t + 16) / 116
}

func uncompress(f float64) float64 {
	if f3 := f * f * f; f3 > epsilon {
		return f3
	}
	return (116*f - 16) / kappa
}

// unsigned turns -0 into +0.
func unsigned(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

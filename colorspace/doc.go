// Package colorspace converts colors between CIE L*a*b*, CIE XYZ, linear RGB,
// gamma-encoded sRGB and HSL.
//
// All conversions are pure functions over small value types. Lab and XYZ use
// the D65 reference white. Out-of-gamut values are clamped when they reach
// the 8-bit sRGB form and are never reported as errors.
package colorspace

package colorspace

// RGBToXYZ converts an sRGB color to XYZ.
func RGBToXYZ(c RGB) XYZ {
	return LinearRGBToXYZ(SRGBToLinearRGB(c))
}

// XYZToRGB converts an XYZ color to sRGB, clamping out-of-gamut channels.
func XYZToRGB(c XYZ) RGB {
	return LinearRGBToSRGB(XYZToLinearRGB(c))
}

// LabToRGB converts a Lab color to sRGB, clamping out-of-gamut channels.
func LabToRGB(c Lab) RGB {
	return XYZToRGB(LabToXYZ(c))
}

// RGBToLab converts an sRGB color to Lab.
func RGBToLab(c RGB) Lab {
	return XYZToLab(RGBToXYZ(c))
}

// LabToHSL converts a Lab color to HSL for presentation, going through XYZ,
// linear RGB and clamped 8-bit sRGB.
func LabToHSL(c Lab) HSL {
	return RGBToHSL(LabToRGB(c))
}

// HSLToLab converts an HSL color to Lab.
func HSLToLab(c HSL) Lab {
	return RGBToLab(HSLToRGB(c))
}

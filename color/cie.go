package color

// CIE 1931 XYZ conversions. The matrices operate on linear-light sRGB
// values; gamma-encoded colors must be expanded first (see ExpandRGB).
// Coefficients are the standard sRGB/D65 matrices.

func rgbToX(r, g, b float32) float32 {
	return 0.4124*r + 0.3576*g + 0.1805*b
}

func rgbToY(r, g, b float32) float32 {
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func rgbToZ(r, g, b float32) float32 {
	return 0.0193*r + 0.1192*g + 0.9505*b
}

func xyzToR(x, y, z float32) float32 {
	return 3.2406*x - 1.5372*y - 0.4986*z
}

func xyzToG(x, y, z float32) float32 {
	return -0.9689*x + 1.8758*y + 0.0415*z
}

func xyzToB(x, y, z float32) float32 {
	return 0.0557*x - 0.2040*y + 1.0570*z
}

// RGBToXYZ converts a linear-light sRGB color to CIE XYZ.
func RGBToXYZ(c RGB[float32]) XYZ[float32] {
	return XYZ[float32]{
		rgbToX(c[0], c[1], c[2]),
		rgbToY(c[0], c[1], c[2]),
		rgbToZ(c[0], c[1], c[2]),
	}
}

// XYZToRGB converts a CIE XYZ color to linear-light sRGB. Out-of-gamut
// results may fall outside [0, 1]; compressing to an integer depth
// clamps them.
func XYZToRGB(c XYZ[float32]) RGB[float32] {
	return RGB[float32]{
		xyzToR(c[0], c[1], c[2]),
		xyzToG(c[0], c[1], c[2]),
		xyzToB(c[0], c[1], c[2]),
	}
}

// XYZToXYZA appends a fully opaque alpha channel.
func XYZToXYZA(c XYZ[float32]) XYZA[float32] {
	return Opaque[float32](c)
}

// XYZAToXYZ drops the opacity channel.
func XYZAToXYZ(c XYZA[float32]) XYZ[float32] {
	return c.Color()
}

// RGBAToXYZA converts the linear-light base color, keeping the opacity.
func RGBAToXYZA(c RGBA[float32]) XYZA[float32] {
	return NewAlpha(RGBToXYZ(c.Color()), c.Opacity())
}

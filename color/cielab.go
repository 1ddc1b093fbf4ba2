package color

import colorful "github.com/lucasb-eyer/go-colorful"

// CIE L*a*b* conversions, D65 reference white. These ride on
// go-colorful's CIE machinery rather than reimplementing the cube-root
// transfer function; the float64 domain matches colorful's.

// XYZToLab converts a CIE XYZ color to L*a*b*.
func XYZToLab(c XYZ[float64]) Lab[float64] {
	l, a, b := colorful.Xyz(c[0], c[1], c[2]).Lab()
	return Lab[float64]{l, a, b}
}

// LabToXYZ converts a L*a*b* color to CIE XYZ.
func LabToXYZ(c Lab[float64]) XYZ[float64] {
	x, y, z := colorful.Lab(c[0], c[1], c[2]).Xyz()
	return XYZ[float64]{x, y, z}
}

// RGBToLab converts a gamma-encoded sRGB color (channels in [0, 1])
// to L*a*b*.
func RGBToLab(c RGB[float64]) Lab[float64] {
	l, a, b := colorful.Color{R: c[0], G: c[1], B: c[2]}.Lab()
	return Lab[float64]{l, a, b}
}

// LabToRGB converts a L*a*b* color to gamma-encoded sRGB. The result is
// clamped to the sRGB gamut.
func LabToRGB(c Lab[float64]) RGB[float64] {
	col := colorful.Lab(c[0], c[1], c[2]).Clamped()
	return RGB[float64]{col.R, col.G, col.B}
}

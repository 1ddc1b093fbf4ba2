package color

import "math"

// Rescale converts a channel value from storage type T to storage type
// V, preserving relative intensity: full intensity maps to full
// intensity. Float targets receive the exact ratio; integer targets are
// clamped to [0, full intensity] and rounded to nearest, so Rescale
// never overflows.
func Rescale[V, T Channel](a T) V {
	r := float64(a) / float64(Max[T]())
	if isFloat[V]() {
		return V(r)
	}
	if r <= 0 {
		return V(0)
	}
	// Full scale returns the maximum directly: float64 cannot represent
	// the 64-bit integer maxima, so scaling by them would overflow the
	// conversion. Below full scale the product stays in range.
	if r >= 1 {
		return Max[V]()
	}
	return V(math.Round(r * float64(Max[V]())))
}

// SRGBToLinear performs sRGB gamma expansion: c is rescaled to [0, 1]
// and converted from gamma-encoded to linear light.
func SRGBToLinear[T Channel](c T) float32 {
	s := Rescale[float32](c)
	if s < 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB performs sRGB gamma compression: the linear-light value
// l (scaled to [0, 1]) is gamma-encoded and rescaled into the target
// storage type, rounding to nearest and clamping.
func LinearToSRGB[T Channel](l float32) T {
	var s float32
	if l < 0.0031308 {
		s = l * 12.92
	} else {
		s = 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
	}
	return Rescale[T](s)
}

// ExpandRGB gamma-expands every channel of an sRGB color into linear
// light.
func ExpandRGB[T Channel](c RGB[T]) RGB[float32] {
	return RGB[float32]{
		SRGBToLinear(c[0]),
		SRGBToLinear(c[1]),
		SRGBToLinear(c[2]),
	}
}

// CompressRGB gamma-compresses a linear-light color into sRGB at the
// target storage depth.
func CompressRGB[T Channel](c RGB[float32]) RGB[T] {
	return RGB[T]{
		LinearToSRGB[T](c[0]),
		LinearToSRGB[T](c[1]),
		LinearToSRGB[T](c[2]),
	}
}

// RGBToGray converts an sRGB color to its CIE Y luminance: the channels
// are gamma-expanded, weighted, summed and gamma-compressed back into
// the source storage type.
func RGBToGray[T Channel](c RGB[T]) Gray[T] {
	lin := ExpandRGB(c)
	return Gray[T]{LinearToSRGB[T](rgbToY(lin[0], lin[1], lin[2]))}
}

// GrayToRGB replicates the luminance value into all three channels.
// This is a lossy, non-invertible expansion: converting back through
// RGBToGray recovers the luminance but the original color is gone.
func GrayToRGB[T Channel](g Gray[T]) RGB[T] {
	return RGB[T]{g[0], g[0], g[0]}
}

// Conversions that add an alpha channel append full intensity;
// conversions that remove one drop the last channel.

// RGBAToGray converts the base color's luminance, discarding opacity.
func RGBAToGray[T Channel](c RGBA[T]) Gray[T] {
	return RGBToGray(c.Color())
}

// RGBToGrayA converts to luminance and appends a fully opaque alpha.
func RGBToGrayA[T Channel](c RGB[T]) GrayA[T] {
	return Opaque[T](RGBToGray(c))
}

// RGBAToGrayA converts the base color's luminance, keeping the opacity.
func RGBAToGrayA[T Channel](c RGBA[T]) GrayA[T] {
	return NewAlpha(RGBToGray(c.Color()), c.Opacity())
}

// GrayToGrayA appends a fully opaque alpha channel.
func GrayToGrayA[T Channel](g Gray[T]) GrayA[T] {
	return Opaque[T](g)
}

// GrayAToGray drops the opacity channel.
func GrayAToGray[T Channel](g GrayA[T]) Gray[T] {
	return g.Color()
}

// RGBToRGBA appends a fully opaque alpha channel.
func RGBToRGBA[T Channel](c RGB[T]) RGBA[T] {
	return Opaque[T](c)
}

// RGBAToRGB drops the opacity channel.
func RGBAToRGB[T Channel](c RGBA[T]) RGB[T] {
	return c.Color()
}

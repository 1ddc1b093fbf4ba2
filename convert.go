package imagebuf

import (
	"github.com/gogpu/imagebuf/color"
)

// Convert applies a per-pixel conversion to the whole buffer, producing
// a new buffer of the destination color model with fresh storage. The
// source is read only; its storage is never aliased by the result.
//
// The destination channel type V cannot be inferred and is passed
// explicitly:
//
//	gray := imagebuf.Convert[uint8](img, color.RGBToGray[uint8])
func Convert[V color.Channel, D any, Q color.Ptr[D, V], C any, T color.Channel, P color.Ptr[C, T]](
	src *Buffer[C, T, P], f func(C) D,
) *Buffer[D, V, Q] {
	var c C
	var d D
	Logger().Debug("converting buffer",
		"width", src.width, "height", src.height,
		"from", P(&c).Model(), "to", Q(&d).Model())

	dst := New[D, V, Q](src.width, src.height)
	cc := channels[C, T, P]()
	dc := channels[D, V, Q]()
	n := src.width * src.height
	for i := 0; i < n; i++ {
		*dst.viewPixel(i * dc) = f(*src.viewPixel(i * cc))
	}
	return dst
}

// GrayscaleRGB converts an RGB buffer to its CIE Y luminance.
func GrayscaleRGB[T color.Channel](src *Buffer[color.RGB[T], T, *color.RGB[T]]) *Buffer[color.Gray[T], T, *color.Gray[T]] {
	return Convert[T](src, color.RGBToGray[T])
}

// GrayscaleRGBA converts an RGBA buffer to luminance, keeping opacity.
func GrayscaleRGBA[T color.Channel](src *Buffer[color.RGBA[T], T, *color.RGBA[T]]) *Buffer[color.GrayA[T], T, *color.GrayA[T]] {
	return Convert[T](src, color.RGBAToGrayA[T])
}

// OpaqueRGB appends a fully opaque alpha channel to every pixel.
func OpaqueRGB[T color.Channel](src *Buffer[color.RGB[T], T, *color.RGB[T]]) *Buffer[color.RGBA[T], T, *color.RGBA[T]] {
	return Convert[T](src, color.RGBToRGBA[T])
}

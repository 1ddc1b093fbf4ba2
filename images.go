package imagebuf

import (
	"github.com/gogpu/imagebuf/color"
)

// Named 8-bit buffer types. These cover the common case and spare
// callers the three-parameter instantiation of Buffer.

type (
	// RGBImage is an 8-bit RGB buffer.
	RGBImage = Buffer[color.RGB[uint8], uint8, *color.RGB[uint8]]

	// RGBAImage is an 8-bit RGB buffer with an alpha channel.
	RGBAImage = Buffer[color.RGBA[uint8], uint8, *color.RGBA[uint8]]

	// GrayImage is an 8-bit luminance buffer.
	GrayImage = Buffer[color.Gray[uint8], uint8, *color.Gray[uint8]]

	// GrayAImage is an 8-bit luminance buffer with an alpha channel.
	GrayAImage = Buffer[color.GrayA[uint8], uint8, *color.GrayA[uint8]]
)

// NewRGBImage creates a zero-filled 8-bit RGB buffer.
func NewRGBImage(width, height int) *RGBImage {
	return New[color.RGB[uint8], uint8](width, height)
}

// NewRGBAImage creates a zero-filled 8-bit RGBA buffer.
func NewRGBAImage(width, height int) *RGBAImage {
	return New[color.RGBA[uint8], uint8](width, height)
}

// NewGrayImage creates a zero-filled 8-bit luminance buffer.
func NewGrayImage(width, height int) *GrayImage {
	return New[color.Gray[uint8], uint8](width, height)
}

// NewGrayAImage creates a zero-filled 8-bit luminance buffer with alpha.
func NewGrayAImage(width, height int) *GrayAImage {
	return New[color.GrayA[uint8], uint8](width, height)
}

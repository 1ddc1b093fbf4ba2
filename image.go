package imagebuf

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/imagebuf/color"
)

// Interop with the standard library image model. The 8-bit buffer
// layouts match image.NRGBA and image.Gray byte for byte, so the
// conversions below wrap storage instead of copying where they can.

// ToNRGBA wraps an 8-bit RGBA buffer as an image.NRGBA. The returned
// image aliases the buffer's storage.
func ToNRGBA(src *RGBAImage) *image.NRGBA {
	w, h := src.Dimensions()
	return &image.NRGBA{
		Pix:    src.Data()[:4*w*h],
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// ToGray wraps an 8-bit luminance buffer as an image.Gray. The returned
// image aliases the buffer's storage.
func ToGray(src *GrayImage) *image.Gray {
	w, h := src.Dimensions()
	return &image.Gray{
		Pix:    src.Data()[:w*h],
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// FromImage converts any image.Image into an 8-bit RGBA buffer,
// resampling nothing and copying once through an NRGBA staging image.
func FromImage(img image.Image) *RGBAImage {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	Logger().Debug("importing image", "width", w, "height", h)

	staging := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(staging, staging.Bounds(), img, bounds.Min, xdraw.Src)

	// A fresh NRGBA has stride 4*w, so its Pix slice is exactly the
	// buffer's channel layout.
	buf, err := FromRaw[color.RGBA[uint8]](w, h, staging.Pix)
	if err != nil {
		panic("imagebuf: staging image smaller than its own bounds")
	}
	return buf
}

// Resize scales an 8-bit RGBA buffer to the given dimensions using
// Catmull-Rom resampling. Resize panics if width or height is negative.
func Resize(src *RGBAImage, width, height int) *RGBAImage {
	dst := NewRGBAImage(width, height)
	di, si := ToNRGBA(dst), ToNRGBA(src)
	xdraw.CatmullRom.Scale(di, di.Bounds(), si, si.Bounds(), xdraw.Src, nil)
	return dst
}

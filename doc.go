// Package imagebuf provides a generic, flat image buffer over the color
// types of github.com/gogpu/imagebuf/color.
//
// # Overview
//
// A Buffer interprets one contiguous slice of channel values as a
// row-major grid of width×height pixels of a single color model. Pixel
// access is zero-copy: PixelAt and the iterators hand out views that
// alias the buffer's storage, so writing through a view writes the
// buffer. Out-of-bounds access is a programming error and panics;
// the only recoverable failure is wrapping caller storage that is too
// small (FromRaw).
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/imagebuf"
//		"github.com/gogpu/imagebuf/color"
//	)
//
//	// Fill a 100×100 8-bit RGB image from a coordinate function.
//	img := imagebuf.FromFn[uint8](100, 100, func(x, y int) color.RGB[uint8] {
//		return color.RGB[uint8]{uint8(x), uint8(y), 0}
//	})
//
//	// Convert the whole buffer to grayscale.
//	gray := imagebuf.GrayscaleRGB(img)
//
// # Concurrency
//
// Buffers perform no internal synchronization. Concurrent reads are
// safe; a writer requires exclusive access, and a mutable pixel view
// must not be used concurrently with any other access to the same
// buffer.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Buffer, the named u8 image types, Convert, interop
//   - color: channel primitives, color models, conversion arithmetic
//   - cmd/pixconvert: demonstration CLI
package imagebuf

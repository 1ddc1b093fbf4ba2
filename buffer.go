package imagebuf

import (
	"errors"
	"fmt"
	"slices"
	"unsafe"

	"github.com/gogpu/imagebuf/color"
)

var (
	// ErrInvalidDimensions is returned when a width or height is negative.
	ErrInvalidDimensions = errors.New("imagebuf: invalid dimensions")

	// ErrStorageTooSmall is returned by FromRaw when the provided slice
	// cannot hold width×height pixels.
	ErrStorageTooSmall = errors.New("imagebuf: storage too small for dimensions")
)

// Buffer is a two-dimensional, row-major grid of pixels of a single
// color model C, stored as one contiguous slice of channel values.
// The pixel at (x, y) occupies the channel values starting at
// (y*width + x) * channels.
//
// Pixel views returned by PixelAt and the iterators alias the buffer's
// storage; writes through a view are visible in the buffer and in Data.
//
// The zero value is an empty 0×0 buffer. Use New, FromRaw, FromPixel or
// FromFn to construct a usable one.
type Buffer[C any, T color.Channel, P color.Ptr[C, T]] struct {
	width  int
	height int
	data   []T
}

// channels reports the channel count of the buffer's color model.
func channels[C any, T color.Channel, P color.Ptr[C, T]]() int {
	var c C
	return P(&c).ChannelCount()
}

// New creates a width×height buffer with all channels set to zero.
// New panics if width or height is negative.
func New[C any, T color.Channel, P color.Ptr[C, T]](width, height int) *Buffer[C, T, P] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("imagebuf: invalid dimensions %d×%d", width, height))
	}
	return &Buffer[C, T, P]{
		width:  width,
		height: height,
		data:   make([]T, width*height*channels[C, T, P]()),
	}
}

// FromRaw wraps existing channel storage in a buffer without copying.
// The slice must hold at least width×height pixels; extra trailing
// values are kept in the buffer's storage but never visited by pixel
// access or iteration. The buffer aliases data, so later writes through
// either are visible in both.
func FromRaw[C any, T color.Channel, P color.Ptr[C, T]](width, height int, data []T) (*Buffer[C, T, P], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidDimensions, width, height)
	}
	need := width * height * channels[C, T, P]()
	if len(data) < need {
		return nil, fmt.Errorf("%w: have %d channel values, need %d", ErrStorageTooSmall, len(data), need)
	}
	return &Buffer[C, T, P]{width: width, height: height, data: data}, nil
}

// FromPixel creates a width×height buffer with every pixel set to px.
// FromPixel panics if width or height is negative.
func FromPixel[T color.Channel, C any, P color.Ptr[C, T]](width, height int, px C) *Buffer[C, T, P] {
	b := New[C, T, P](width, height)
	b.Fill(px)
	return b
}

// FromFn creates a width×height buffer with each pixel computed from
// its coordinates. f is called once per pixel in row-major order.
// FromFn panics if width or height is negative.
func FromFn[T color.Channel, C any, P color.Ptr[C, T]](width, height int, f func(x, y int) C) *Buffer[C, T, P] {
	b := New[C, T, P](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			*b.PixelAt(x, y) = f(x, y)
		}
	}
	return b
}

// Width returns the buffer width in pixels.
func (b *Buffer[C, T, P]) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer[C, T, P]) Height() int { return b.height }

// Dimensions returns the width and height in pixels.
func (b *Buffer[C, T, P]) Dimensions() (width, height int) {
	return b.width, b.height
}

// Data returns the underlying channel storage. The slice aliases the
// buffer: writes to it change pixel values and vice versa.
func (b *Buffer[C, T, P]) Data() []T { return b.data }

// viewPixel returns a color view over the channel values of the pixel
// starting at index i of the storage.
func (b *Buffer[C, T, P]) viewPixel(i int) P {
	s := b.data[i : i+channels[C, T, P]()]
	return P((*C)(unsafe.Pointer(&s[0])))
}

// PixelAt returns a mutable view of the pixel at (x, y). Writing
// through the view writes the buffer. PixelAt panics if (x, y) is
// outside the buffer.
func (b *Buffer[C, T, P]) PixelAt(x, y int) P {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		panic(fmt.Sprintf("imagebuf: pixel (%d, %d) out of bounds for %d×%d buffer", x, y, b.width, b.height))
	}
	return b.viewPixel((y*b.width + x) * channels[C, T, P]())
}

// At returns a copy of the pixel at (x, y). At panics if (x, y) is
// outside the buffer.
func (b *Buffer[C, T, P]) At(x, y int) C {
	return *b.PixelAt(x, y)
}

// SetPixel overwrites the pixel at (x, y). SetPixel panics if (x, y) is
// outside the buffer.
func (b *Buffer[C, T, P]) SetPixel(x, y int, px C) {
	*b.PixelAt(x, y) = px
}

// Fill sets every pixel to px.
func (b *Buffer[C, T, P]) Fill(px C) {
	for p := range b.Pixels() {
		*p = px
	}
}

// Clone returns a deep copy of the buffer with its own storage.
func (b *Buffer[C, T, P]) Clone() *Buffer[C, T, P] {
	return &Buffer[C, T, P]{
		width:  b.width,
		height: b.height,
		data:   slices.Clone(b.data),
	}
}

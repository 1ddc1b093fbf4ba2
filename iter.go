package imagebuf

import (
	"image"
	"iter"
)

// Pixels returns an iterator over mutable views of the buffer's pixels
// in row-major order, covering exactly width×height pixels. The
// sequence can be ranged over more than once.
func (b *Buffer[C, T, P]) Pixels() iter.Seq[P] {
	return func(yield func(P) bool) {
		cc := channels[C, T, P]()
		n := b.width * b.height
		for i := 0; i < n; i++ {
			if !yield(b.viewPixel(i * cc)) {
				return
			}
		}
	}
}

// PixelsReversed returns an iterator over mutable views of the buffer's
// pixels from the last pixel back to the first.
func (b *Buffer[C, T, P]) PixelsReversed() iter.Seq[P] {
	return func(yield func(P) bool) {
		cc := channels[C, T, P]()
		for i := b.width*b.height - 1; i >= 0; i-- {
			if !yield(b.viewPixel(i * cc)) {
				return
			}
		}
	}
}

// EnumeratePixels returns an iterator over the buffer's pixels in
// row-major order, paired with their coordinates. The coordinates are
// carried as counters alongside the traversal, with x wrapping to the
// next row every width pixels, so the pair is always consistent with
// PixelAt.
func (b *Buffer[C, T, P]) EnumeratePixels() iter.Seq2[image.Point, P] {
	return func(yield func(image.Point, P) bool) {
		if b.width == 0 || b.height == 0 {
			return
		}
		cc := channels[C, T, P]()
		i, x, y := 0, 0, 0
		for y < b.height {
			if !yield(image.Pt(x, y), b.viewPixel(i)) {
				return
			}
			i += cc
			x++
			if x == b.width {
				x = 0
				y++
			}
		}
	}
}

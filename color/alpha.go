package color

import "unsafe"

// Alpha decorates a base color with one appended opacity channel. The
// opacity is always the last channel; the base color's channels keep
// their positions. An Alpha has exactly one channel more than its base.
//
// The base array and the opacity field are laid out contiguously for a
// homogeneous channel type, which is what makes the zero-copy channel
// view and slice reinterpretation below valid; alpha_test.go pins this
// layout invariant.
type Alpha[C any, T Channel, P Ptr[C, T]] struct {
	base  C
	alpha T
}

// NewAlpha wraps base with the given opacity.
func NewAlpha[C any, T Channel, P Ptr[C, T]](base C, alpha T) Alpha[C, T, P] {
	return Alpha[C, T, P]{base: base, alpha: alpha}
}

// Opaque wraps base with a full-intensity (fully opaque) alpha channel.
func Opaque[T Channel, C any, P Ptr[C, T]](base C) Alpha[C, T, P] {
	return Alpha[C, T, P]{base: base, alpha: Max[T]()}
}

// AlphaFromSlice reinterprets s as an alpha-wrapped color without
// copying; writes through the returned pointer modify s. It panics if
// len(s) does not equal the wrapped channel count.
func AlphaFromSlice[C any, T Channel, P Ptr[C, T]](s []T) *Alpha[C, T, P] {
	var c C
	mustLen(s, P(&c).ChannelCount()+1)
	return (*Alpha[C, T, P])(unsafe.Pointer(unsafe.SliceData(s)))
}

// ChannelCount returns the base color's channel count plus one.
func (a *Alpha[C, T, P]) ChannelCount() int {
	return P(&a.base).ChannelCount() + 1
}

// Channels returns a mutable view of all channels, base first, opacity
// last.
func (a *Alpha[C, T, P]) Channels() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(a)), a.ChannelCount())
}

// Model returns the base color's model tag; the alpha channel does not
// change how the base channels are interpreted.
func (a *Alpha[C, T, P]) Model() string {
	return P(&a.base).Model()
}

// Color returns the base color, discarding the opacity channel.
func (a Alpha[C, T, P]) Color() C { return a.base }

// Opacity returns the opacity channel.
func (a Alpha[C, T, P]) Opacity() T { return a.alpha }

// Elementwise arithmetic over all channels including the opacity.
// Integer channels wrap on overflow.

func (a Alpha[C, T, P]) Add(o Alpha[C, T, P]) Alpha[C, T, P] {
	addSlice((&a).Channels(), (&o).Channels())
	return a
}

func (a Alpha[C, T, P]) Sub(o Alpha[C, T, P]) Alpha[C, T, P] {
	subSlice((&a).Channels(), (&o).Channels())
	return a
}

func (a Alpha[C, T, P]) Mul(o Alpha[C, T, P]) Alpha[C, T, P] {
	mulSlice((&a).Channels(), (&o).Channels())
	return a
}

func (a Alpha[C, T, P]) Div(o Alpha[C, T, P]) Alpha[C, T, P] {
	divSlice((&a).Channels(), (&o).Channels())
	return a
}

func (a Alpha[C, T, P]) AddScalar(s T) Alpha[C, T, P] {
	addScalar((&a).Channels(), s)
	return a
}

func (a Alpha[C, T, P]) SubScalar(s T) Alpha[C, T, P] {
	subScalar((&a).Channels(), s)
	return a
}

func (a Alpha[C, T, P]) MulScalar(s T) Alpha[C, T, P] {
	mulScalar((&a).Channels(), s)
	return a
}

func (a Alpha[C, T, P]) DivScalar(s T) Alpha[C, T, P] {
	divScalar((&a).Channels(), s)
	return a
}

// Aliases for the common alpha-wrapped models.
type (
	// RGBA is an RGB color with an opacity channel.
	RGBA[T Channel] = Alpha[RGB[T], T, *RGB[T]]
	// XYZA is an XYZ color with an opacity channel.
	XYZA[T Channel] = Alpha[XYZ[T], T, *XYZ[T]]
	// LabA is a Lab color with an opacity channel.
	LabA[T Channel] = Alpha[Lab[T], T, *Lab[T]]
	// GrayA is a Gray color with an opacity channel.
	GrayA[T Channel] = Alpha[Gray[T], T, *Gray[T]]
)

// NewRGBA builds an RGBA color from its four channels.
func NewRGBA[T Channel](r, g, b, a T) RGBA[T] {
	return NewAlpha(RGB[T]{r, g, b}, a)
}

// NewGrayA builds a GrayA color from luminance and opacity.
func NewGrayA[T Channel](y, a T) GrayA[T] {
	return NewAlpha(Gray[T]{y}, a)
}

// Interface checks.
var (
	_ Color[uint8]   = (*RGBA[uint8])(nil)
	_ Color[float32] = (*GrayA[float32])(nil)
)

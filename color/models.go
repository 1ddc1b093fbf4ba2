package color

// The concrete color models. Each is a plain fixed-size array of
// channel values; equality, copy and comparison are structural.
// Construction from channels is the composite literal, for example
// RGB[uint8]{241, 251, 255}.
//
// The mapping and arithmetic rules shared by all models live in ops.go;
// the methods declared here are the per-type dispatch layer only.

// RGB is an sRGB color with three channels and no alpha.
type RGB[T Channel] [3]T

func (RGB[T]) ChannelCount() int { return 3 }
func (c *RGB[T]) Channels() []T  { return c[:] }
func (RGB[T]) Model() string     { return "RGB" }

// RGBFromSlice reinterprets s as an RGB color without copying; writes
// through the returned pointer modify s. It panics if len(s) != 3.
func RGBFromSlice[T Channel](s []T) *RGB[T] {
	mustLen(s, 3)
	return (*RGB[T])(s)
}

// Add returns the elementwise sum of c and o. Integer channels wrap on
// overflow.
func (c RGB[T]) Add(o RGB[T]) RGB[T] { addSlice(c[:], o[:]); return c }

// Sub returns the elementwise difference of c and o.
func (c RGB[T]) Sub(o RGB[T]) RGB[T] { subSlice(c[:], o[:]); return c }

// Mul returns the elementwise product of c and o.
func (c RGB[T]) Mul(o RGB[T]) RGB[T] { mulSlice(c[:], o[:]); return c }

// Div returns the elementwise quotient of c and o.
func (c RGB[T]) Div(o RGB[T]) RGB[T] { divSlice(c[:], o[:]); return c }

// AddScalar returns c with s added to every channel.
func (c RGB[T]) AddScalar(s T) RGB[T] { addScalar(c[:], s); return c }

// SubScalar returns c with s subtracted from every channel.
func (c RGB[T]) SubScalar(s T) RGB[T] { subScalar(c[:], s); return c }

// MulScalar returns c with every channel multiplied by s.
func (c RGB[T]) MulScalar(s T) RGB[T] { mulScalar(c[:], s); return c }

// DivScalar returns c with every channel divided by s.
func (c RGB[T]) DivScalar(s T) RGB[T] { divScalar(c[:], s); return c }

// XYZ is a CIE 1931 XYZ color with three channels.
type XYZ[T Channel] [3]T

func (XYZ[T]) ChannelCount() int { return 3 }
func (c *XYZ[T]) Channels() []T  { return c[:] }
func (XYZ[T]) Model() string     { return "XYZ" }

// XYZFromSlice reinterprets s as an XYZ color without copying.
// It panics if len(s) != 3.
func XYZFromSlice[T Channel](s []T) *XYZ[T] {
	mustLen(s, 3)
	return (*XYZ[T])(s)
}

func (c XYZ[T]) Add(o XYZ[T]) XYZ[T] { addSlice(c[:], o[:]); return c }
func (c XYZ[T]) Sub(o XYZ[T]) XYZ[T] { subSlice(c[:], o[:]); return c }
func (c XYZ[T]) Mul(o XYZ[T]) XYZ[T] { mulSlice(c[:], o[:]); return c }
func (c XYZ[T]) Div(o XYZ[T]) XYZ[T] { divSlice(c[:], o[:]); return c }
func (c XYZ[T]) AddScalar(s T) XYZ[T] { addScalar(c[:], s); return c }
func (c XYZ[T]) SubScalar(s T) XYZ[T] { subScalar(c[:], s); return c }
func (c XYZ[T]) MulScalar(s T) XYZ[T] { mulScalar(c[:], s); return c }
func (c XYZ[T]) DivScalar(s T) XYZ[T] { divScalar(c[:], s); return c }

// Lab is a CIE L*a*b* color with three channels.
type Lab[T Channel] [3]T

func (Lab[T]) ChannelCount() int { return 3 }
func (c *Lab[T]) Channels() []T  { return c[:] }
func (Lab[T]) Model() string     { return "CIE Lab" }

// LabFromSlice reinterprets s as a Lab color without copying.
// It panics if len(s) != 3.
func LabFromSlice[T Channel](s []T) *Lab[T] {
	mustLen(s, 3)
	return (*Lab[T])(s)
}

func (c Lab[T]) Add(o Lab[T]) Lab[T] { addSlice(c[:], o[:]); return c }
func (c Lab[T]) Sub(o Lab[T]) Lab[T] { subSlice(c[:], o[:]); return c }
func (c Lab[T]) Mul(o Lab[T]) Lab[T] { mulSlice(c[:], o[:]); return c }
func (c Lab[T]) Div(o Lab[T]) Lab[T] { divSlice(c[:], o[:]); return c }
func (c Lab[T]) AddScalar(s T) Lab[T] { addScalar(c[:], s); return c }
func (c Lab[T]) SubScalar(s T) Lab[T] { subScalar(c[:], s); return c }
func (c Lab[T]) MulScalar(s T) Lab[T] { mulScalar(c[:], s); return c }
func (c Lab[T]) DivScalar(s T) Lab[T] { divScalar(c[:], s); return c }

// Gray is a single-channel luminance color.
type Gray[T Channel] [1]T

func (Gray[T]) ChannelCount() int { return 1 }
func (c *Gray[T]) Channels() []T  { return c[:] }
func (Gray[T]) Model() string     { return "Y" }

// GrayFromSlice reinterprets s as a Gray color without copying.
// It panics if len(s) != 1.
func GrayFromSlice[T Channel](s []T) *Gray[T] {
	mustLen(s, 1)
	return (*Gray[T])(s)
}

func (c Gray[T]) Add(o Gray[T]) Gray[T] { addSlice(c[:], o[:]); return c }
func (c Gray[T]) Sub(o Gray[T]) Gray[T] { subSlice(c[:], o[:]); return c }
func (c Gray[T]) Mul(o Gray[T]) Gray[T] { mulSlice(c[:], o[:]); return c }
func (c Gray[T]) Div(o Gray[T]) Gray[T] { divSlice(c[:], o[:]); return c }
func (c Gray[T]) AddScalar(s T) Gray[T] { addScalar(c[:], s); return c }
func (c Gray[T]) SubScalar(s T) Gray[T] { subScalar(c[:], s); return c }
func (c Gray[T]) MulScalar(s T) Gray[T] { mulScalar(c[:], s); return c }
func (c Gray[T]) DivScalar(s T) Gray[T] { divScalar(c[:], s); return c }

// Indexed is a single palette index. No color model is assumed; the
// meaning of the index is up to the palette it refers to.
type Indexed[T Channel] [1]T

func (Indexed[T]) ChannelCount() int { return 1 }
func (c *Indexed[T]) Channels() []T  { return c[:] }
func (Indexed[T]) Model() string     { return "Idx" }

// IndexedFromSlice reinterprets s as an Indexed color without copying.
// It panics if len(s) != 1.
func IndexedFromSlice[T Channel](s []T) *Indexed[T] {
	mustLen(s, 1)
	return (*Indexed[T])(s)
}

func (c Indexed[T]) Add(o Indexed[T]) Indexed[T] { addSlice(c[:], o[:]); return c }
func (c Indexed[T]) Sub(o Indexed[T]) Indexed[T] { subSlice(c[:], o[:]); return c }
func (c Indexed[T]) Mul(o Indexed[T]) Indexed[T] { mulSlice(c[:], o[:]); return c }
func (c Indexed[T]) Div(o Indexed[T]) Indexed[T] { divSlice(c[:], o[:]); return c }
func (c Indexed[T]) AddScalar(s T) Indexed[T]    { addScalar(c[:], s); return c }
func (c Indexed[T]) SubScalar(s T) Indexed[T]    { subScalar(c[:], s); return c }
func (c Indexed[T]) MulScalar(s T) Indexed[T]    { mulScalar(c[:], s); return c }
func (c Indexed[T]) DivScalar(s T) Indexed[T]    { divScalar(c[:], s); return c }

// Interface checks.
var (
	_ Color[uint8]   = (*RGB[uint8])(nil)
	_ Color[float32] = (*XYZ[float32])(nil)
	_ Color[float64] = (*Lab[float64])(nil)
	_ Color[uint16]  = (*Gray[uint16])(nil)
	_ Color[uint8]   = (*Indexed[uint8])(nil)
)

package color

import "fmt"

// The capability operations below are defined once, generically, for
// every color model (including Alpha-wrapped ones). They take and
// return concrete color values; in-place variants operate through the
// pointer type.

// Map returns a copy of c with f applied to every channel.
func Map[T Channel, C any, P Ptr[C, T]](c C, f func(T) T) C {
	s := P(&c).Channels()
	for i, v := range s {
		s[i] = f(v)
	}
	return c
}

// Apply applies f to every channel of p in place.
func Apply[T Channel, C any, P Ptr[C, T]](p P, f func(T) T) {
	s := p.Channels()
	for i, v := range s {
		s[i] = f(v)
	}
}

// Map2 returns a copy of c with f applied pairwise to the channels of
// c and other.
func Map2[T Channel, C any, P Ptr[C, T]](c, other C, f func(a, b T) T) C {
	s, o := P(&c).Channels(), P(&other).Channels()
	for i, v := range s {
		s[i] = f(v, o[i])
	}
	return c
}

// Apply2 applies f pairwise to the channels of p and other, writing the
// results back into p.
func Apply2[T Channel, C any, P Ptr[C, T]](p P, other C, f func(a, b T) T) {
	s, o := p.Channels(), P(&other).Channels()
	for i, v := range s {
		s[i] = f(v, o[i])
	}
}

// MapWithAlpha returns a copy of c with f applied to every channel
// except the last and g applied to the last channel. For Alpha-wrapped
// colors the last channel is the opacity; for bare colors the
// distinction carries no meaning and g simply receives the final
// channel.
func MapWithAlpha[T Channel, C any, P Ptr[C, T]](c C, f, g func(T) T) C {
	applyWithAlpha(P(&c).Channels(), f, g)
	return c
}

// ApplyWithAlpha is the in-place form of MapWithAlpha.
func ApplyWithAlpha[T Channel, C any, P Ptr[C, T]](p P, f, g func(T) T) {
	applyWithAlpha(p.Channels(), f, g)
}

func applyWithAlpha[T Channel](s []T, f, g func(T) T) {
	last := len(s) - 1
	for i, v := range s[:last] {
		s[i] = f(v)
	}
	s[last] = g(s[last])
}

// Slice helpers backing the per-type arithmetic methods. Integer
// overflow wraps, following Go's native integer semantics.

func addSlice[T Channel](dst, o []T) {
	for i := range dst {
		dst[i] += o[i]
	}
}

func subSlice[T Channel](dst, o []T) {
	for i := range dst {
		dst[i] -= o[i]
	}
}

func mulSlice[T Channel](dst, o []T) {
	for i := range dst {
		dst[i] *= o[i]
	}
}

func divSlice[T Channel](dst, o []T) {
	for i := range dst {
		dst[i] /= o[i]
	}
}

func addScalar[T Channel](dst []T, s T) {
	for i := range dst {
		dst[i] += s
	}
}

func subScalar[T Channel](dst []T, s T) {
	for i := range dst {
		dst[i] -= s
	}
}

func mulScalar[T Channel](dst []T, s T) {
	for i := range dst {
		dst[i] *= s
	}
}

func divScalar[T Channel](dst []T, s T) {
	for i := range dst {
		dst[i] /= s
	}
}

// mustLen stops execution when a slice handed to a FromSlice view does
// not match the color's channel count. A mismatch means the caller
// mis-sized a buffer; truncating silently would corrupt pixel data.
func mustLen[T Channel](s []T, want int) {
	if len(s) != want {
		panic(fmt.Sprintf("color: slice length %d does not match channel count %d", len(s), want))
	}
}

package color

import "math"

// Channel is the constraint satisfied by the numeric types that can
// store a single color component.
type Channel interface {
	uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float32 | float64
}

// Color is the capability shared by every color model in this package.
// It is satisfied by the pointer type of each concrete color (for
// example *RGB[uint8]), so that Channels can expose the backing storage
// without copying.
type Color[T Channel] interface {
	// ChannelCount returns the number of channels of this color type.
	// It is a constant per type and never depends on instance data.
	ChannelCount() int

	// Channels returns a mutable view of the channel storage.
	// Writing to the returned slice modifies the color in place.
	Channels() []T

	// Model returns a short tag describing how the channels are to be
	// interpreted, such as "RGB" or "Y". The Alpha decorator reports
	// the model of its base color.
	Model() string
}

// Ptr constrains a pointer to a concrete color type. Generic code uses
// it to mint zero-copy pixel views and to reach the Color methods of a
// value it holds by value.
type Ptr[C any, T Channel] interface {
	*C
	Color[T]
}

// Max returns the full-intensity value for a channel type: the maximum
// representable value for integer types, 1 for floating-point types.
func Max[T Channel]() T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *float32:
		*p = 1
	case *float64:
		*p = 1
	}
	return v
}

// isFloat reports whether the channel type stores floating-point
// values, which changes how Rescale treats the target range.
func isFloat[T Channel]() bool {
	switch any(*new(T)).(type) {
	case float32, float64:
		return true
	}
	return false
}

package color

// Format enumerates the supported color models, with and without alpha,
// independent of channel bit depth.
type Format uint8

const (
	FormatRGB Format = iota
	FormatRGBA
	FormatXYZ
	FormatXYZA
	FormatLab
	FormatLabA
	FormatGray
	FormatGrayA
	FormatIndexed
)

// Channels returns the number of channels in a pixel of this format.
func (f Format) Channels() int {
	switch f {
	case FormatRGB, FormatXYZ, FormatLab:
		return 3
	case FormatRGBA, FormatXYZA, FormatLabA:
		return 4
	case FormatGray, FormatIndexed:
		return 1
	case FormatGrayA:
		return 2
	}
	return 0
}

// HasAlpha reports whether the last channel is an opacity channel.
func (f Format) HasAlpha() bool {
	switch f {
	case FormatRGBA, FormatXYZA, FormatLabA, FormatGrayA:
		return true
	}
	return false
}

// BitsPerPixel returns the number of bits in a pixel of this format at
// the given channel bit depth.
func (f Format) BitsPerPixel(depth int) int {
	return f.Channels() * depth
}

func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	case FormatXYZ:
		return "XYZ"
	case FormatXYZA:
		return "XYZA"
	case FormatLab:
		return "Lab"
	case FormatLabA:
		return "LabA"
	case FormatGray:
		return "Gray"
	case FormatGrayA:
		return "GrayA"
	case FormatIndexed:
		return "Indexed"
	}
	return "unknown"
}

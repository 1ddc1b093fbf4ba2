// Package color provides generic, fixed-channel-count color types and
// the conversion arithmetic between them.
//
// # Overview
//
// A color is a small array of channel values of one numeric type. The
// package defines the concrete models RGB, XYZ, Lab, Gray and Indexed,
// generic over their channel storage type (any of the fixed-width
// integers or floats), plus the Alpha decorator that appends a single
// opacity channel to any base color.
//
// All colors satisfy the Color interface through their pointer type,
// which exposes the channel count, a zero-copy mutable view of the
// channels, and a human-readable model tag. Capability operations that
// are identical across models (Map, Apply, MapWithAlpha, ...) are
// package-level generic functions, so the mapping and arithmetic rules
// are defined exactly once.
//
// # Conversions
//
// Conversion between storage encodings goes through Rescale, which
// preserves relative intensity: full scale maps to full scale, integer
// targets round to nearest and clamp. Conversions between color models
// use the sRGB transfer functions (SRGBToLinear, LinearToSRGB), the
// CIE 1931 XYZ matrices (RGBToXYZ, XYZToRGB), the CIE Y luminance
// weighting (RGBToGray), and go-colorful's CIE machinery for L*a*b*
// (RGBToLab, XYZToLab and inverses).
//
// # Quick start
//
//	px := color.RGB[uint8]{241, 251, 255}
//	gray := color.RGBToGray(px)        // CIE Y luminance, still uint8
//	rgba := color.Opaque[uint8](px)    // append a fully opaque alpha
//	lin := color.ExpandRGB(px)         // gamma-expanded RGB[float32]
package color

package color

import (
	"math"
	"testing"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestRescale(t *testing.T) {
	t.Run("u8 to f32", func(t *testing.T) {
		if got := Rescale[float32](uint8(255)); got != 1 {
			t.Errorf("Rescale[float32](255) = %v, want 1", got)
		}
		if got := Rescale[float32](uint8(0)); got != 0 {
			t.Errorf("Rescale[float32](0) = %v, want 0", got)
		}
	})

	t.Run("f32 to u8", func(t *testing.T) {
		if got := Rescale[uint8](float32(1)); got != 255 {
			t.Errorf("Rescale[uint8](1.0) = %d, want 255", got)
		}
		if got := Rescale[uint8](float64(0.5)); got != 128 {
			t.Errorf("Rescale[uint8](0.5) = %d, want 128", got)
		}
	})

	t.Run("f32 to u16", func(t *testing.T) {
		if got := Rescale[uint16](float32(1)); got != 65535 {
			t.Errorf("Rescale[uint16](1.0) = %d, want 65535", got)
		}
	})

	t.Run("u8 to u16 widens by 257", func(t *testing.T) {
		for _, v := range []uint8{0, 1, 100, 128, 254, 255} {
			if got, want := Rescale[uint16](v), uint16(v)*257; got != want {
				t.Errorf("Rescale[uint16](%d) = %d, want %d", v, got, want)
			}
		}
	})

	t.Run("u16 to u8 narrows", func(t *testing.T) {
		if got := Rescale[uint8](uint16(65535)); got != 255 {
			t.Errorf("Rescale[uint8](65535) = %d, want 255", got)
		}
		if got := Rescale[uint8](uint16(32896)); got != 128 {
			t.Errorf("Rescale[uint8](32896) = %d, want 128", got)
		}
	})

	t.Run("64-bit integer targets reach full intensity", func(t *testing.T) {
		if got := Rescale[uint64](uint8(255)); got != math.MaxUint64 {
			t.Errorf("Rescale[uint64](255) = %d, want MaxUint64", got)
		}
		if got := Rescale[uint64](float32(1)); got != math.MaxUint64 {
			t.Errorf("Rescale[uint64](1.0) = %d, want MaxUint64", got)
		}
		if got := Rescale[int64](uint8(255)); got != math.MaxInt64 {
			t.Errorf("Rescale[int64](255) = %d, want MaxInt64", got)
		}
		if got := Rescale[int64](uint8(128)); got <= 0 {
			t.Errorf("Rescale[int64](128) = %d, want positive", got)
		}
		if got := Rescale[uint64](uint8(0)); got != 0 {
			t.Errorf("Rescale[uint64](0) = %d, want 0", got)
		}
		// Half scale lands exactly on 2^63 for a uint64 target.
		if got := Rescale[uint64](float64(0.5)); got != 1<<63 {
			t.Errorf("Rescale[uint64](0.5) = %d, want 1<<63", got)
		}
	})

	t.Run("out of range floats clamp", func(t *testing.T) {
		if got := Rescale[uint8](float32(-0.5)); got != 0 {
			t.Errorf("Rescale[uint8](-0.5) = %d, want 0", got)
		}
		if got := Rescale[uint8](float32(2)); got != 255 {
			t.Errorf("Rescale[uint8](2.0) = %d, want 255", got)
		}
	})

	t.Run("u8 roundtrip through f32", func(t *testing.T) {
		for v := 0; v < 256; v++ {
			c := uint8(v)
			if got := Rescale[uint8](Rescale[float32](c)); got != c {
				t.Errorf("roundtrip of %d = %d", c, got)
			}
		}
	})
}

func TestSRGBToLinear(t *testing.T) {
	if got := SRGBToLinear(uint8(0)); got != 0 {
		t.Errorf("SRGBToLinear(0) = %v, want 0", got)
	}
	if got := SRGBToLinear(uint8(255)); !near(float64(got), 1, 1e-6) {
		t.Errorf("SRGBToLinear(255) = %v, want 1", got)
	}
	// Below the threshold the transfer function is a straight division.
	if got := SRGBToLinear(float32(0.04)); !near(float64(got), 0.04/12.92, 1e-7) {
		t.Errorf("SRGBToLinear(0.04) = %v, want %v", got, 0.04/12.92)
	}
	// Mid-gray, against the closed form.
	want := math.Pow((0.5+0.055)/1.055, 2.4)
	if got := SRGBToLinear(float64(0.5)); !near(float64(got), want, 1e-6) {
		t.Errorf("SRGBToLinear(0.5) = %v, want %v", got, want)
	}
}

func TestLinearToSRGB(t *testing.T) {
	if got := LinearToSRGB[uint8](0); got != 0 {
		t.Errorf("LinearToSRGB(0) = %d, want 0", got)
	}
	if got := LinearToSRGB[uint8](1); got != 255 {
		t.Errorf("LinearToSRGB(1) = %d, want 255", got)
	}
	if got := LinearToSRGB[float32](0.002); !near(float64(got), 0.002*12.92, 1e-7) {
		t.Errorf("LinearToSRGB(0.002) = %v, want %v", got, 0.002*12.92)
	}
}

func TestGammaRoundtripU8(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := uint8(v)
		if got := LinearToSRGB[uint8](SRGBToLinear(c)); got != c {
			t.Errorf("gamma roundtrip of %d = %d", c, got)
		}
	}
}

func TestRGBToGray(t *testing.T) {
	tests := []struct {
		name string
		c    RGB[uint8]
		want uint8
	}{
		{"black", RGB[uint8]{0, 0, 0}, 0},
		{"white", RGB[uint8]{255, 255, 255}, 255},
		{"red heavy", RGB[uint8]{255, 23, 42}, 129},
		{"dark yellow", RGB[uint8]{10, 10, 0}, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToGray(tt.c); got[0] != tt.want {
				t.Errorf("RGBToGray(%v) = %d, want %d", tt.c, got[0], tt.want)
			}
		})
	}
}

func TestRGBToGrayNeutral(t *testing.T) {
	// The luminance weights sum to 1, so a neutral gray maps to itself.
	for v := 0; v < 256; v++ {
		c := uint8(v)
		if got := RGBToGray(RGB[uint8]{c, c, c}); got[0] != c {
			t.Errorf("RGBToGray(neutral %d) = %d", c, got[0])
		}
	}
}

func TestGrayToRGB(t *testing.T) {
	got := GrayToRGB(Gray[uint8]{129})
	if got != (RGB[uint8]{129, 129, 129}) {
		t.Errorf("GrayToRGB(129) = %v", got)
	}
	// Luminance survives the lossy expansion.
	if back := RGBToGray(got); back[0] != 129 {
		t.Errorf("RGBToGray(GrayToRGB(129)) = %d, want 129", back[0])
	}
}

func TestAlphaAddDrop(t *testing.T) {
	c := RGB[uint8]{1, 2, 3}
	a := RGBToRGBA(c)
	if a.Opacity() != 255 {
		t.Errorf("RGBToRGBA opacity = %d, want 255", a.Opacity())
	}
	if a.Color() != c {
		t.Errorf("RGBToRGBA base = %v, want %v", a.Color(), c)
	}
	if RGBAToRGB(a) != c {
		t.Errorf("RGBAToRGB(%v) != %v", a, c)
	}

	g := Gray[uint8]{7}
	ga := GrayToGrayA(g)
	if ga.Opacity() != 255 || ga.Color() != g {
		t.Errorf("GrayToGrayA(%v) = %v", g, ga)
	}
	if GrayAToGray(ga) != g {
		t.Errorf("GrayAToGray(%v) != %v", ga, g)
	}
}

func TestRGBAToGrayAKeepsOpacity(t *testing.T) {
	a := NewRGBA[uint8](255, 23, 42, 77)
	got := RGBAToGrayA(a)
	if got.Color()[0] != 129 {
		t.Errorf("luminance = %d, want 129", got.Color()[0])
	}
	if got.Opacity() != 77 {
		t.Errorf("opacity = %d, want 77", got.Opacity())
	}
	if g := RGBAToGray(a); g[0] != 129 {
		t.Errorf("RGBAToGray = %d, want 129", g[0])
	}
}

func TestRGBXYZRoundtrip(t *testing.T) {
	// Linear-light white is the D65 white point.
	white := RGBToXYZ(RGB[float32]{1, 1, 1})
	if !near(float64(white[0]), 0.9505, 1e-3) ||
		!near(float64(white[1]), 1.0, 1e-3) ||
		!near(float64(white[2]), 1.089, 1e-3) {
		t.Errorf("RGBToXYZ(white) = %v", white)
	}

	tests := []RGB[float32]{
		{0, 0, 0},
		{1, 1, 1},
		{0.25, 0.5, 0.75},
		{0.9, 0.1, 0.3},
	}
	for _, c := range tests {
		back := XYZToRGB(RGBToXYZ(c))
		for i := range c {
			if !near(float64(back[i]), float64(c[i]), 1e-3) {
				t.Errorf("roundtrip of %v = %v", c, back)
			}
		}
	}
}

func TestXYZAlpha(t *testing.T) {
	c := XYZ[float32]{0.1, 0.2, 0.3}
	a := XYZToXYZA(c)
	if a.Opacity() != 1 || a.Color() != c {
		t.Errorf("XYZToXYZA(%v) = %v", c, a)
	}
	if XYZAToXYZ(a) != c {
		t.Errorf("XYZAToXYZ(%v) != %v", a, c)
	}

	ra := NewAlpha(RGB[float32]{1, 1, 1}, float32(0.5))
	xa := RGBAToXYZA(ra)
	if xa.Opacity() != 0.5 {
		t.Errorf("RGBAToXYZA opacity = %v, want 0.5", xa.Opacity())
	}
	if !near(float64(xa.Color()[1]), 1, 1e-3) {
		t.Errorf("RGBAToXYZA Y = %v, want 1", xa.Color()[1])
	}
}

package texture

import (
	"image"
	"image/color"
	"testing"
)

var landGreen = color.NRGBA{R: 60, G: 140, B: 70, A: 255}

func TestShadeBanded(t *testing.T) {
	tests := []struct {
		name string
		n    float64
		want color.NRGBA
	}{
		{"above light cut", 0.31, bandLight},
		{"below dark cut", -0.21, bandDark},
		{"between cuts", 0.0, bandMid},
		{"exactly light cut stays mid", 0.3, bandMid},
		{"exactly dark cut stays mid", -0.2, bandMid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shadeBanded(tt.n); got != tt.want {
				t.Errorf("shadeBanded(%f) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestShadeTerrestrial(t *testing.T) {
	t.Run("land above cut", func(t *testing.T) {
		if got := shadeTerrestrial(0.2, 0.0, landGreen); got != landGreen {
			t.Errorf("got %v, want land color", got)
		}
	})

	t.Run("water below cut", func(t *testing.T) {
		if got := shadeTerrestrial(0.1, 0.0, landGreen); got != seaWater {
			t.Errorf("got %v, want water color", got)
		}
	})

	t.Run("cloud overrides land", func(t *testing.T) {
		// Surface sample 0.2 selects land, but the independent cloud
		// sample 0.6 paints opaque white over it.
		if got := shadeTerrestrial(0.2, 0.6, landGreen); got != cloud {
			t.Errorf("got %v, want cloud white", got)
		}
	})

	t.Run("cloud overrides water", func(t *testing.T) {
		if got := shadeTerrestrial(-0.4, 0.8, landGreen); got != cloud {
			t.Errorf("got %v, want cloud white", got)
		}
	})
}

func TestShadeRocky(t *testing.T) {
	base := color.NRGBA{R: 150, G: 100, B: 50, A: 255}

	t.Run("positive offset brightens all channels", func(t *testing.T) {
		got := shadeRocky(0.5, base)
		if got.R <= base.R || got.G <= base.G || got.B <= base.B {
			t.Errorf("got %v, want all channels above %v", got, base)
		}
	})

	t.Run("offset clamps at channel bounds", func(t *testing.T) {
		bright := color.NRGBA{R: 250, G: 250, B: 250, A: 255}
		got := shadeRocky(1.0, bright)
		if got.R != 255 || got.G != 255 || got.B != 255 {
			t.Errorf("got %v, want clamped white", got)
		}

		dark := color.NRGBA{R: 5, G: 5, B: 5, A: 255}
		got = shadeRocky(-1.0, dark)
		if got.R != 0 || got.G != 0 || got.B != 0 {
			t.Errorf("got %v, want clamped black", got)
		}
	})

	t.Run("always opaque", func(t *testing.T) {
		if got := shadeRocky(-0.3, base); got.A != 255 {
			t.Errorf("alpha = %d, want 255", got.A)
		}
	})
}

func TestSynthesizer_Surface(t *testing.T) {
	s := NewSynthesizer(11, 64)

	t.Run("deterministic", func(t *testing.T) {
		a := NewSynthesizer(11, 64).Surface(Terrestrial, landGreen, 6)
		b := NewSynthesizer(11, 64).Surface(Terrestrial, landGreen, 6)
		for i := range a.Pix {
			if a.Pix[i] != b.Pix[i] {
				t.Fatal("same seed produced different textures")
			}
		}
	})

	t.Run("terrestrial uses the closed palette", func(t *testing.T) {
		img := s.Surface(Terrestrial, landGreen, 6)
		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				c := img.NRGBAAt(x, y)
				if c != landGreen && c != seaWater && c != cloud {
					t.Fatalf("unexpected color %v at (%d, %d)", c, x, y)
				}
			}
		}
	})

	t.Run("banded giant uses the three bands", func(t *testing.T) {
		img := s.Surface(BandedGiant, color.NRGBA{}, 5)
		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				c := img.NRGBAAt(x, y)
				if c != bandLight && c != bandDark && c != bandMid {
					t.Fatalf("unexpected color %v at (%d, %d)", c, x, y)
				}
			}
		}
	})

	t.Run("rocky is fully opaque", func(t *testing.T) {
		img := s.Surface(Rocky, color.NRGBA{R: 151, G: 124, B: 83, A: 255}, 8)
		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				if img.NRGBAAt(x, y).A != 255 {
					t.Fatalf("transparent texel at (%d, %d)", x, y)
				}
			}
		}
	})
}

func TestSynthesizer_Glow(t *testing.T) {
	s := NewSynthesizer(1, 128)
	img := s.Glow()

	if got := img.Bounds().Dx(); got != 128 {
		t.Fatalf("width = %d, want 128", got)
	}

	center := img.NRGBAAt(64, 64)
	if center.A < 200 {
		t.Errorf("center alpha = %d, want near opaque", center.A)
	}

	corner := img.NRGBAAt(0, 0)
	if corner.A != 0 {
		t.Errorf("corner alpha = %d, want 0", corner.A)
	}
}

func TestSynthesizer_RingRamp(t *testing.T) {
	s := NewSynthesizer(1, 256)
	img := s.RingRamp()

	if img.Bounds().Dy() != 1 {
		t.Fatalf("height = %d, want 1", img.Bounds().Dy())
	}

	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("left end alpha = %d, want 0", a)
	}
	if a := img.NRGBAAt(255, 0).A; a != 0 {
		t.Errorf("right end alpha = %d, want 0", a)
	}

	mid := img.NRGBAAt(128, 0).A
	if mid == 0 || mid == 255 {
		t.Errorf("middle alpha = %d, want semi-opaque", mid)
	}
}

func TestSynthesizer_Starfield(t *testing.T) {
	s := NewSynthesizer(5, 128)
	img := s.Starfield()

	lit := 0
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			c := img.NRGBAAt(x, y)
			if c.A != 255 {
				t.Fatalf("backdrop not opaque at (%d, %d)", x, y)
			}
			if c.R > 16 {
				lit++
			}
		}
	}

	// Sparse stars: some lit texels, but far from a majority.
	if lit == 0 {
		t.Error("starfield has no stars")
	}
	if lit > 128*128/4 {
		t.Errorf("starfield too bright: %d lit texels", lit)
	}
}

func TestSynthesizer_FallbackSize(t *testing.T) {
	s := NewSynthesizer(1, 0)

	img := s.Surface(Terrestrial, landGreen, 6)
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Fatalf("fallback bounds = %v, want 1x1", img.Bounds())
	}
	if img.NRGBAAt(0, 0) != landGreen {
		t.Errorf("fallback texel = %v, want base color", img.NRGBAAt(0, 0))
	}
}

func TestCache(t *testing.T) {
	c := NewCache()

	built := 0
	img := c.GetOrCreate("earth", func() *image.NRGBA {
		built++
		return Flat(landGreen)
	})
	again := c.GetOrCreate("earth", func() *image.NRGBA {
		built++
		return Flat(seaWater)
	})

	if built != 1 {
		t.Errorf("build ran %d times, want 1", built)
	}
	if img != again {
		t.Error("second lookup returned a different texture")
	}
	if c.Get("missing") != nil {
		t.Error("Get(missing) != nil")
	}

	names := c.Names()
	if len(names) != 1 || names[0] != "earth" {
		t.Errorf("Names() = %v", names)
	}
}

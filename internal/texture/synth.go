package texture

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/blur"
	bildnoise "github.com/anthonynsimon/bild/noise"
	xdraw "golang.org/x/image/draw"
)

// Archetype selects the shading rule for a body's surface texture.
type Archetype int

const (
	// Rocky perturbs the flat base color with noise. The default rule
	// for terrestrial and ice bodies.
	Rocky Archetype = iota
	// BandedGiant produces horizontal three-tone bands, Jupiter style.
	BandedGiant
	// Terrestrial produces land/water regions with a cloud layer.
	Terrestrial
)

func (a Archetype) String() string {
	switch a {
	case BandedGiant:
		return "banded"
	case Terrestrial:
		return "terrestrial"
	default:
		return "rocky"
	}
}

// DefaultSize is the edge length of square surface textures.
const DefaultSize = 256

// Shading cut points. Noise samples are in [-1, 1].
const (
	bandLightCut = 0.3
	bandDarkCut  = -0.2
	landCut      = 0.15
	cloudCut     = 0.5
	rockyAmp     = 48 // max per-channel offset for the rocky rule
)

// Fixed palette entries.
var (
	bandLight = color.NRGBA{R: 216, G: 181, B: 130, A: 255}
	bandDark  = color.NRGBA{R: 141, G: 81, B: 51, A: 255}
	bandMid   = color.NRGBA{R: 183, G: 141, B: 100, A: 255}
	seaWater  = color.NRGBA{R: 30, G: 82, B: 161, A: 255}
	cloud     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	glowWarm  = color.NRGBA{R: 255, G: 244, B: 214, A: 255}
	ringGray  = color.NRGBA{R: 205, G: 193, B: 178, A: 255}
)

// Synthesizer generates all scene textures from two independently
// seeded noise fields (surface detail and cloud cover). Every method
// is pure: same synthesizer, same arguments, same pixels.
type Synthesizer struct {
	surface *Field
	clouds  *Field
	size    int
}

// NewSynthesizer creates a synthesizer with the given seed and texture
// edge length. A non-positive size falls back to 1x1 flat textures
// rather than failing; a missing texture must never block scene
// construction.
func NewSynthesizer(seed int64, size int) *Synthesizer {
	if size <= 0 {
		size = 1
	}
	return &Synthesizer{
		surface: NewField(seed),
		clouds:  NewField(seed ^ 0x9e3779b9),
		size:    size,
	}
}

// Surface generates a body's surface texture. freq is the per-body
// noise frequency: higher values give finer surface detail.
func (s *Synthesizer) Surface(a Archetype, base color.NRGBA, freq float64) *image.NRGBA {
	if s.size == 1 {
		return Flat(base)
	}
	img := image.NewNRGBA(image.Rect(0, 0, s.size, s.size))

	for y := 0; y < s.size; y++ {
		v := float64(y) / float64(s.size)
		for x := 0; x < s.size; x++ {
			u := float64(x) / float64(s.size)

			var c color.NRGBA
			switch a {
			case BandedGiant:
				// A small turbulence offset on the vertical axis keeps
				// the bands horizontal but wavy.
				turb := 0.3 * s.surface.Sample(u*freq*2, v*freq*2, 0)
				c = shadeBanded(s.surface.Sample(u*freq, v*freq+turb, 0))
			case Terrestrial:
				n := s.surface.Sample(u*freq, v*freq, 0)
				cl := s.clouds.Sample(u*freq, v*freq, 0)
				c = shadeTerrestrial(n, cl, base)
			default:
				c = shadeRocky(s.surface.Sample(u*freq, v*freq, 0), base)
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// shadeBanded thresholds one noise sample into three fixed bands.
func shadeBanded(n float64) color.NRGBA {
	switch {
	case n > bandLightCut:
		return bandLight
	case n < bandDarkCut:
		return bandDark
	default:
		return bandMid
	}
}

// shadeTerrestrial picks land or water from the surface sample, then
// lets an independently phased cloud sample paint opaque white over
// either one.
func shadeTerrestrial(n, cl float64, land color.NRGBA) color.NRGBA {
	if cl > cloudCut {
		return cloud
	}
	if n > landCut {
		return land
	}
	return seaWater
}

// shadeRocky offsets every channel of the base color by the same
// noise-derived amount, clamped to the valid range.
func shadeRocky(n float64, base color.NRGBA) color.NRGBA {
	off := n * rockyAmp
	return color.NRGBA{
		R: clampChannel(float64(base.R) + off),
		G: clampChannel(float64(base.G) + off),
		B: clampChannel(float64(base.B) + off),
		A: 255,
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Glow generates the sun's billboard sprite: opaque warm white at the
// center fading to fully transparent at the edge. It is rendered at
// half resolution and resampled up, which reads as a soft bloom.
func (s *Synthesizer) Glow() *image.NRGBA {
	half := s.size / 2
	if half < 1 {
		half = 1
	}

	small := image.NewNRGBA(image.Rect(0, 0, half, half))
	center := float64(half-1) / 2
	radius := float64(half) / 2
	for y := 0; y < half; y++ {
		for x := 0; x < half; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			d := math.Sqrt(dx*dx+dy*dy) / radius
			a := 1 - d
			if a < 0 {
				a = 0
			}
			c := glowWarm
			c.A = uint8(a * 255)
			small.SetNRGBA(x, y, c)
		}
	}

	out := image.NewNRGBA(image.Rect(0, 0, s.size, s.size))
	xdraw.CatmullRom.Scale(out, out.Bounds(), small, small.Bounds(), xdraw.Src, nil)
	return out
}

// RingRamp generates the one-row color ramp stretched radially onto
// ring geometry: transparent at both ends, semi-opaque warm gray in
// the middle band.
func (s *Synthesizer) RingRamp() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.size, 1))
	span := float64(s.size - 1)
	if span < 1 {
		span = 1
	}
	for x := 0; x < s.size; x++ {
		t := float64(x) / span
		a := 1 - math.Abs(2*t-1) // 0 at the ends, 1 in the middle
		c := ringGray
		c.A = uint8(a * 0.6 * 255)
		img.SetNRGBA(x, 0, c)
	}
	return img
}

// Starfield generates the scene backdrop: sparse white points over
// black, softened slightly so bright stars bloom by a pixel.
func (s *Synthesizer) Starfield() *image.NRGBA {
	field := bildnoise.Generate(s.size, s.size, &bildnoise.Options{
		NoiseFn:    bildnoise.Uniform,
		Monochrome: true,
	})

	stars := image.NewRGBA(image.Rect(0, 0, s.size, s.size))
	for i := 0; i < len(field.Pix); i += 4 {
		// Keep roughly 1 in 120 texels as a star.
		if field.Pix[i] > 253 {
			stars.Pix[i] = 255
			stars.Pix[i+1] = 255
			stars.Pix[i+2] = 255
		}
		stars.Pix[i+3] = 255
	}

	soft := blur.Gaussian(stars, 0.8)

	out := image.NewNRGBA(soft.Bounds())
	draw.Draw(out, out.Bounds(), soft, soft.Bounds().Min, draw.Src)
	return out
}

// Flat returns a 1x1 texture of the given color, the safe fallback
// when synthesis cannot run.
func Flat(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, c)
	return img
}

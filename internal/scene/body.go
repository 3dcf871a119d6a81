// Package scene owns the celestial bodies and the per-frame transition
// engine that blends them between the orbit and merge configurations.
package scene

import (
	"image/color"

	"github.com/ayusman/orrery/internal/texture"
)

// Body is the static description of one celestial body. All mutable
// animation state (angle, position, scale, spin) lives inside the
// Engine for the lifetime of the scene; a Body itself never changes.
type Body struct {
	Name            string
	BaseRadius      float32
	OrbitalDistance float32
	// OrbitalSpeed is radians per frame before the global speed factor
	// is applied. The sign encodes the orbit direction.
	OrbitalSpeed float32
	BaseColor    color.NRGBA
	HasRing      bool
	Archetype    texture.Archetype
	// NoiseFreq is the surface noise frequency for texture synthesis.
	NoiseFreq float64
}

// Sun returns the central light-emitting body.
func Sun() Body {
	return Body{
		Name:       "sun",
		BaseRadius: 3.0,
		BaseColor:  color.NRGBA{R: 255, G: 200, B: 64, A: 255},
		Archetype:  texture.Rocky,
		NoiseFreq:  4,
	}
}

// Planets returns the orbiting bodies in distance order. Venus and
// Uranus run retrograde for visual variety.
func Planets() []Body {
	return []Body{
		{
			Name:            "mercury",
			BaseRadius:      0.38,
			OrbitalDistance: 4,
			OrbitalSpeed:    0.020,
			BaseColor:       color.NRGBA{R: 151, G: 124, B: 83, A: 255},
			Archetype:       texture.Rocky,
			NoiseFreq:       8,
		},
		{
			Name:            "venus",
			BaseRadius:      0.95,
			OrbitalDistance: 6,
			OrbitalSpeed:    -0.015,
			BaseColor:       color.NRGBA{R: 222, G: 184, B: 135, A: 255},
			Archetype:       texture.Rocky,
			NoiseFreq:       6,
		},
		{
			Name:            "earth",
			BaseRadius:      1.0,
			OrbitalDistance: 8,
			OrbitalSpeed:    0.012,
			BaseColor:       color.NRGBA{R: 60, G: 140, B: 70, A: 255},
			Archetype:       texture.Terrestrial,
			NoiseFreq:       6,
		},
		{
			Name:            "mars",
			BaseRadius:      0.53,
			OrbitalDistance: 10,
			OrbitalSpeed:    0.010,
			BaseColor:       color.NRGBA{R: 193, G: 88, B: 44, A: 255},
			Archetype:       texture.Rocky,
			NoiseFreq:       7,
		},
		{
			Name:            "jupiter",
			BaseRadius:      2.5,
			OrbitalDistance: 13,
			OrbitalSpeed:    0.008,
			BaseColor:       color.NRGBA{R: 183, G: 141, B: 100, A: 255},
			Archetype:       texture.BandedGiant,
			NoiseFreq:       5,
		},
		{
			Name:            "saturn",
			BaseRadius:      2.1,
			OrbitalDistance: 16,
			OrbitalSpeed:    0.006,
			BaseColor:       color.NRGBA{R: 216, G: 190, B: 140, A: 255},
			HasRing:         true,
			Archetype:       texture.Rocky,
			NoiseFreq:       5,
		},
		{
			Name:            "uranus",
			BaseRadius:      1.6,
			OrbitalDistance: 19,
			OrbitalSpeed:    -0.004,
			BaseColor:       color.NRGBA{R: 150, G: 200, B: 220, A: 255},
			Archetype:       texture.Rocky,
			NoiseFreq:       6,
		},
		{
			Name:            "neptune",
			BaseRadius:      1.55,
			OrbitalDistance: 22,
			OrbitalSpeed:    0.003,
			BaseColor:       color.NRGBA{R: 62, G: 84, B: 232, A: 255},
			Archetype:       texture.Rocky,
			NoiseFreq:       6,
		},
	}
}

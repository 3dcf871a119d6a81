// Package texture synthesizes every surface used by the scene from
// seeded noise fields. Synthesis runs once at scene construction; the
// results are cached by node name and never mutated.
package texture

import (
	"math"
	"math/rand"
)

// Field is a seeded 3D value-noise field. Samples are deterministic
// for a given seed and continuous in all three coordinates.
type Field struct {
	perm   [512]int
	values [256]float64
}

// NewField creates a noise field from the given seed.
func NewField(seed int64) *Field {
	rng := rand.New(rand.NewSource(seed))

	f := &Field{}
	for i, v := range rng.Perm(256) {
		f.perm[i] = v
		f.perm[i+256] = v
	}
	for i := range f.values {
		f.values[i] = rng.Float64()*2 - 1
	}
	return f
}

// Sample returns the noise value at (x, y, z), in [-1, 1].
func (f *Field) Sample(x, y, z float64) float64 {
	x0, y0, z0 := math.Floor(x), math.Floor(y), math.Floor(z)
	fx, fy, fz := x-x0, y-y0, z-z0
	ix, iy, iz := int(x0), int(y0), int(z0)

	sx, sy, sz := fade(fx), fade(fy), fade(fz)

	c000 := f.lattice(ix, iy, iz)
	c100 := f.lattice(ix+1, iy, iz)
	c010 := f.lattice(ix, iy+1, iz)
	c110 := f.lattice(ix+1, iy+1, iz)
	c001 := f.lattice(ix, iy, iz+1)
	c101 := f.lattice(ix+1, iy, iz+1)
	c011 := f.lattice(ix, iy+1, iz+1)
	c111 := f.lattice(ix+1, iy+1, iz+1)

	x00 := mix(c000, c100, sx)
	x10 := mix(c010, c110, sx)
	x01 := mix(c001, c101, sx)
	x11 := mix(c011, c111, sx)

	y0v := mix(x00, x10, sy)
	y1v := mix(x01, x11, sy)

	return mix(y0v, y1v, sz)
}

// lattice hashes integer coordinates into the seeded value table.
func (f *Field) lattice(ix, iy, iz int) float64 {
	h := f.perm[f.perm[f.perm[ix&255]+(iy&255)]+(iz&255)]
	return f.values[h&255]
}

// fade is the quintic smoothstep used by classic noise; it keeps the
// second derivative continuous across cell boundaries.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

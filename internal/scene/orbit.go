package scene

import "cogentcore.org/core/math32"

// Orbit integrates one body's angular position along its circular
// path. The engine advances it only while the scene is in the orbit
// configuration; under a fist the angle freezes where it is.
type Orbit struct {
	angle float32
	step  float32
	dist  float32
}

// NewOrbit creates the integrator for a body. The global speed factor
// scales every body's per-frame step uniformly.
func NewOrbit(b Body, speedFactor float32) *Orbit {
	return &Orbit{
		step: b.OrbitalSpeed * speedFactor,
		dist: b.OrbitalDistance,
	}
}

// Advance moves the orbit forward by one frame and returns the new
// angle in radians.
func (o *Orbit) Advance() float32 {
	o.angle += o.step
	return o.angle
}

// Angle returns the current angle in radians.
func (o *Orbit) Angle() float32 {
	return o.angle
}

// Position returns the current point on the orbit: planar circular
// motion around the origin, always at y = 0.
func (o *Orbit) Position() math32.Vector3 {
	return math32.Vec3(
		math32.Cos(o.angle)*o.dist,
		0,
		math32.Sin(o.angle)*o.dist,
	)
}

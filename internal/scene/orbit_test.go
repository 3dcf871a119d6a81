package scene

import (
	"testing"

	"cogentcore.org/core/math32"
)

func TestOrbit_Advance(t *testing.T) {
	body := Body{Name: "test", OrbitalDistance: 10, OrbitalSpeed: -0.01}
	orbit := NewOrbit(body, 0.3)

	got := orbit.Advance()

	want := float32(-0.01) * 0.3
	if math32.Abs(got-want) > 1e-7 {
		t.Errorf("angle after one frame = %f, want %f", got, want)
	}

	pos := orbit.Position()
	wantX := math32.Cos(want) * 10
	wantZ := math32.Sin(want) * 10
	if math32.Abs(pos.X-wantX) > 1e-5 {
		t.Errorf("pos.X = %f, want %f", pos.X, wantX)
	}
	if pos.Y != 0 {
		t.Errorf("pos.Y = %f, want 0 (orbits are planar)", pos.Y)
	}
	if math32.Abs(pos.Z-wantZ) > 1e-5 {
		t.Errorf("pos.Z = %f, want %f", pos.Z, wantZ)
	}
}

func TestOrbit_SignEncodesDirection(t *testing.T) {
	prograde := NewOrbit(Body{OrbitalDistance: 5, OrbitalSpeed: 0.02}, 1)
	retrograde := NewOrbit(Body{OrbitalDistance: 5, OrbitalSpeed: -0.02}, 1)

	prograde.Advance()
	retrograde.Advance()

	if prograde.Position().Z <= 0 {
		t.Errorf("prograde Z = %f, want > 0", prograde.Position().Z)
	}
	if retrograde.Position().Z >= 0 {
		t.Errorf("retrograde Z = %f, want < 0", retrograde.Position().Z)
	}
}

func TestOrbit_AccumulatesLinearly(t *testing.T) {
	orbit := NewOrbit(Body{OrbitalDistance: 8, OrbitalSpeed: 0.01}, 0.5)

	for i := 0; i < 100; i++ {
		orbit.Advance()
	}

	want := float32(0.01) * 0.5 * 100
	if math32.Abs(orbit.Angle()-want) > 1e-4 {
		t.Errorf("angle after 100 frames = %f, want %f", orbit.Angle(), want)
	}
}

func TestOrbit_StaysOnCircle(t *testing.T) {
	orbit := NewOrbit(Body{OrbitalDistance: 12, OrbitalSpeed: 0.05}, 1)

	for i := 0; i < 500; i++ {
		orbit.Advance()
		if d := orbit.Position().Length(); math32.Abs(d-12) > 1e-3 {
			t.Fatalf("frame %d: distance from origin = %f, want 12", i, d)
		}
	}
}

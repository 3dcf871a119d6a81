package texture

import (
	"math"
	"testing"
)

func TestField_Deterministic(t *testing.T) {
	a := NewField(42)
	b := NewField(42)

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.173
		y := float64(i) * 0.311
		z := float64(i) * 0.071
		if a.Sample(x, y, z) != b.Sample(x, y, z) {
			t.Fatalf("same seed produced different samples at (%f, %f, %f)", x, y, z)
		}
	}
}

func TestField_SeedsDiffer(t *testing.T) {
	a := NewField(1)
	b := NewField(2)

	same := 0
	const n = 64
	for i := 0; i < n; i++ {
		x := float64(i) * 0.37
		if a.Sample(x, x*0.5, 0) == b.Sample(x, x*0.5, 0) {
			same++
		}
	}
	if same == n {
		t.Error("different seeds produced identical fields")
	}
}

func TestField_SampleRange(t *testing.T) {
	f := NewField(7)

	for i := 0; i < 1000; i++ {
		x := float64(i%37) * 0.29
		y := float64(i%53) * 0.41
		z := float64(i%11) * 0.13
		v := f.Sample(x, y, z)
		if math.IsNaN(v) || v < -1 || v > 1 {
			t.Fatalf("Sample(%f, %f, %f) = %f, out of [-1, 1]", x, y, z, v)
		}
	}
}

func TestField_NegativeCoordinates(t *testing.T) {
	f := NewField(3)

	v := f.Sample(-4.7, -0.3, -12.1)
	if math.IsNaN(v) || v < -1 || v > 1 {
		t.Fatalf("negative-coordinate sample = %f, out of [-1, 1]", v)
	}
}

func TestField_ContinuousAcrossCells(t *testing.T) {
	f := NewField(9)

	// Values just either side of an integer lattice line must be close.
	const eps = 1e-4
	lo := f.Sample(2-eps, 0.5, 0.5)
	hi := f.Sample(2+eps, 0.5, 0.5)
	if math.Abs(hi-lo) > 0.01 {
		t.Errorf("discontinuity at cell boundary: %f vs %f", lo, hi)
	}
}

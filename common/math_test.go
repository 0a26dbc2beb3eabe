package common

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 {
		t.Error("clamps above")
	}
	if Clamp(-1, 0, 3) != 0 {
		t.Error("clamps below")
	}
	if Clamp(2, 0, 3) != 2 {
		t.Error("keeps in-range values")
	}
}

func TestVdist2DIgnoresHeight(t *testing.T) {
	a := Vec3{0, 100, 0}
	b := Vec3{3, -50, 4}
	if d := Vdist2D(a, b); Abs(d-5) > 1e-6 {
		t.Errorf("planar distance, got %v", d)
	}
}

func TestDegToRad(t *testing.T) {
	if r := DegToRad(float64(180)); math.Abs(r-math.Pi) > 1e-12 {
		t.Errorf("got %v", r)
	}
}

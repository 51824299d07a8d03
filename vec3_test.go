package main

import (
	"math"
	"math/rand"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVec3Arithmetic(t *testing.T) {
	u := Vec3{X: 1, Y: 2, Z: 3}
	v := Vec3{X: 4, Y: -1, Z: 2}

	if got := u.Add(v); !almostEqual(got.X, 5) || !almostEqual(got.Y, 1) || !almostEqual(got.Z, 5) {
		t.Errorf("Add = %+v", got)
	}
	if got := u.Sub(v); !almostEqual(got.X, -3) || !almostEqual(got.Y, 3) || !almostEqual(got.Z, 1) {
		t.Errorf("Sub = %+v", got)
	}
	if got := Dot(u, v); !almostEqual(got, 4-2+6) {
		t.Errorf("Dot = %v", got)
	}
}

func TestCrossOrthogonal(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	z := Cross(x, y)
	if !almostEqual(z.Z, 1) || !almostEqual(z.X, 0) || !almostEqual(z.Y, 0) {
		t.Fatalf("Cross(x,y) = %+v, want (0,0,1)", z)
	}
}

func TestUnitVectorHasUnitLength(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 0}
	u := UnitVector(v)
	if !almostEqual(u.Length(), 1) {
		t.Fatalf("Length() = %v, want 1", u.Length())
	}
}

func TestReflectPreservesLength(t *testing.T) {
	v := Vec3{X: 1, Y: -1, Z: 0}
	n := Vec3{Y: 1}
	r := Reflect(v, n)
	if !almostEqual(r.Length(), v.Length()) {
		t.Fatalf("Reflect changed length: %v vs %v", r.Length(), v.Length())
	}
}

func TestNearZero(t *testing.T) {
	if !(Vec3{X: 1e-9, Y: -1e-9, Z: 0}).NearZero() {
		t.Error("expected near-zero vector to report true")
	}
	if (Vec3{X: 0.1}).NearZero() {
		t.Error("expected non-trivial vector to report false")
	}
}

func TestRandomInUnitDiskStaysOnDisk(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(rng)
		if p.Z != 0 {
			t.Fatalf("disk sample has nonzero z: %v", p.Z)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("disk sample outside unit circle: %+v", p)
		}
	}
}

func TestRandomUnitVectorIsNormalized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		v := RandomUnitVector(rng)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("RandomUnitVector length = %v, want 1", v.Length())
		}
	}
}

package main

import (
	"math/rand"
	"testing"
)

func TestLambertianAttenuationIsAlbedo(t *testing.T) {
	albedo := Color{X: 0.5, Y: 0.3, Z: 0.1}
	m := NewLambertian(albedo)
	rec := HitRecord{P: Point3{}, Normal: Vec3{Y: 1}}
	rng := rand.New(rand.NewSource(1))

	atten, _, ok := m.Scatter(NewRay(Point3{}, Vec3{Y: -1}, 0), rec, rng)
	if !ok {
		t.Fatal("Lambertian should always scatter")
	}
	if atten != albedo {
		t.Errorf("attenuation = %+v, want %+v", atten, albedo)
	}
}

func TestLambertianScatterDirectionNeverNearZero(t *testing.T) {
	// A RandomUnitVector that exactly cancels the normal would zero the
	// scatter direction, and Scatter then falls back to the normal. That
	// cancellation is vanishingly rare under rejection sampling, so this
	// test does not reach the fallback; it checks the guarantee the
	// fallback provides: the scattered direction is never near zero.
	m := NewLambertian(Color{X: 1})
	rec := HitRecord{P: Point3{}, Normal: Vec3{Y: 1}}
	rng := rand.New(rand.NewSource(1))
	_, scattered, ok := m.Scatter(NewRay(Point3{}, Vec3{Y: -1}, 0), rec, rng)
	if !ok {
		t.Fatal("expected scatter to succeed")
	}
	if scattered.Direction.NearZero() {
		t.Error("scatter direction should never be near-zero")
	}
}

func TestMetalFuzzClampedAtConstruction(t *testing.T) {
	m := NewMetal(Color{X: 1}, 5.0)
	if m.Fuzz != 1.0 {
		t.Errorf("Fuzz = %v, want clamped to 1.0", m.Fuzz)
	}
}

func TestMetalAbsorbsGrazingReflection(t *testing.T) {
	// At grazing incidence the unfuzzed reflection sits just above the
	// surface (dot with the normal near zero). With fuzz=1 the random
	// perturbation is as large as the reflection itself, so some
	// fraction of draws must push the fuzzed direction back below the
	// surface, where Scatter has to report absorption rather than
	// silently returning a ray that passes through the object.
	m := NewMetal(Color{X: 1}, 1.0)
	rec := HitRecord{P: Point3{}, Normal: Vec3{Y: 1}}
	rIn := NewRay(Point3{}, Vec3{X: 1, Y: -1e-6}, 0)

	absorbed := false
	for seed := int64(0); seed < 2000; seed++ {
		_, _, ok := m.Scatter(rIn, rec, rand.New(rand.NewSource(seed)))
		if !ok {
			absorbed = true
			break
		}
	}
	if !absorbed {
		t.Fatal("expected at least one fuzzed grazing reflection to be absorbed")
	}
}

func TestDielectricAttenuationIsClear(t *testing.T) {
	m := NewDielectric(1.5)
	rec := HitRecord{P: Point3{}, Normal: Vec3{Y: 1}, FrontFace: true}
	rIn := NewRay(Point3{}, Vec3{Y: -1}, 0)
	atten, _, ok := m.Scatter(rIn, rec, rand.New(rand.NewSource(1)))
	if !ok {
		t.Fatal("Dielectric should always scatter")
	}
	if atten != (Color{X: 1, Y: 1, Z: 1}) {
		t.Errorf("attenuation = %+v, want white", atten)
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	// A steep grazing angle from inside a dense medium cannot refract
	// and must reflect instead.
	m := NewDielectric(1.5)
	rec := HitRecord{P: Point3{}, Normal: Vec3{Y: 1}, FrontFace: false}
	rIn := NewRay(Point3{}, Vec3{X: 1, Y: -0.01}, 0)
	_, scattered, ok := m.Scatter(rIn, rec, rand.New(rand.NewSource(1)))
	if !ok {
		t.Fatal("Dielectric should always scatter")
	}
	if Dot(scattered.Direction, rec.Normal) <= 0 {
		t.Error("total internal reflection should bounce back above the surface")
	}
}

func TestReflectanceAtNormalIncidenceMatchesSchlick(t *testing.T) {
	r0 := (1 - 1.5) / (1 + 1.5)
	want := r0 * r0
	if got := reflectance(1.0, 1.5); !almostEqual(got, want) {
		t.Errorf("reflectance(1.0, 1.5) = %v, want %v", got, want)
	}
}

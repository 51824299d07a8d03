// scene.go - The book-cover fixture: a ground plane and a field of
// small random spheres around three signature feature spheres.

package main

import "math/rand"

// BuildBookCoverScene constructs the canonical demo scene entirely
// through the public Hittable/material constructors, then wraps the
// flat object list in a BVH for traversal.
func BuildBookCoverScene(rng *rand.Rand) Hittable {
	world := NewHittableList()

	groundMaterial := NewLambertian(Color{X: 0.5, Y: 0.5, Z: 0.5})
	world.Add(NewSphere(Point3{X: 0, Y: -1000, Z: 0}, 1000, groundMaterial))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := Point3{
				X: float64(a) + 0.9*rng.Float64(),
				Y: 0.2,
				Z: float64(b) + 0.9*rng.Float64(),
			}

			if center.Sub(Point3{X: 4, Y: 0.2, Z: 0}).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := RandomVec3(rng).Mul(RandomVec3(rng))
				mat := NewLambertian(albedo)
				center2 := center.Add(Vec3{Y: rng.Float64() * 0.5})
				world.Add(NewMovingSphere(center, center2, 0.2, mat))
			case chooseMat < 0.95:
				albedo := RandomVec3Range(rng, 0.5, 1)
				fuzz := rng.Float64() * 0.5
				mat := NewMetal(albedo, fuzz)
				world.Add(NewSphere(center, 0.2, mat))
			default:
				mat := NewDielectric(1.5)
				world.Add(NewSphere(center, 0.2, mat))
			}
		}
	}

	material1 := NewDielectric(1.5)
	world.Add(NewSphere(Point3{X: 0, Y: 1, Z: 0}, 1.0, material1))

	material2 := NewLambertian(Color{X: 0.4, Y: 0.2, Z: 0.1})
	world.Add(NewSphere(Point3{X: -4, Y: 1, Z: 0}, 1.0, material2))

	material3 := NewMetal(Color{X: 0.7, Y: 0.6, Z: 0.5}, 0.0)
	world.Add(NewSphere(Point3{X: 4, Y: 1, Z: 0}, 1.0, material3))

	return NewHittableListOf(NewBVH(world))
}

// DefaultCamera returns the camera configuration matching the
// book-cover scene's framing, ready for Init to derive its viewport.
func DefaultCamera(cfg RenderConfig) *Camera {
	return &Camera{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      cfg.Width,
		SamplesPerPixel: cfg.Samples,
		MaxDepth:        cfg.MaxDepth,
		VFov:            cfg.VFov,
		LookFrom:        cfg.LookFrom,
		LookAt:          cfg.LookAt,
		VUp:             cfg.VUp,
		DefocusAngle:    cfg.DefocusAngle,
		FocusDist:       cfg.FocusDist,
	}
}

// ray.go - Origin + direction + time parametric line.

package main

// Ray is a parametric line: origin, direction, and a shutter time in
// [0,1] used exclusively to interpolate moving geometry.
type Ray struct {
	Origin    Point3
	Direction Vec3
	Time      float64
}

// NewRay builds a ray with an explicit shutter time.
func NewRay(origin Point3, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At evaluates the ray at parameter t.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

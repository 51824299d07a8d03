// sphere.go - Static and linearly-moving spheres.

package main

import "math"

// Sphere is a sphere of fixed radius whose center may move linearly
// from Center1 at time 0 to Center2 at time 1. A static sphere has
// Center1 == Center2, making IsMoving false and centerVec the zero
// vector.
type Sphere struct {
	Center1, Center2 Point3
	Radius           float64
	Mat              Material
	IsMoving         bool
	centerVec        Vec3
	bbox             AABB
}

// NewSphere builds a stationary sphere.
func NewSphere(center Point3, radius float64, mat Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := Vec3{X: radius, Y: radius, Z: radius}
	return &Sphere{
		Center1: center,
		Center2: center,
		Radius:  radius,
		Mat:     mat,
		bbox:    NewAABBFromPoints(center.Sub(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere builds a sphere whose center travels from center1
// (at ray time 0) to center2 (at ray time 1). Its bounding box is the
// union of the boxes at both endpoints, so it bounds the whole sweep.
func NewMovingSphere(center1, center2 Point3, radius float64, mat Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := Vec3{X: radius, Y: radius, Z: radius}
	box1 := NewAABBFromPoints(center1.Sub(rvec), center1.Add(rvec))
	box2 := NewAABBFromPoints(center2.Sub(rvec), center2.Add(rvec))
	return &Sphere{
		Center1:   center1,
		Center2:   center2,
		Radius:    radius,
		Mat:       mat,
		IsMoving:  true,
		centerVec: center2.Sub(center1),
		bbox:      NewAABBFromBoxes(box1, box2),
	}
}

// centerAt interpolates the sphere's center at ray time.
func (s *Sphere) centerAt(time float64) Point3 {
	if !s.IsMoving {
		return s.Center1
	}
	return s.Center1.Add(s.centerVec.Scale(time))
}

func (s *Sphere) BoundingBox() AABB {
	return s.bbox
}

func (s *Sphere) Hit(r Ray, rayT Interval, rec *HitRecord) bool {
	center := s.centerAt(r.Time)
	oc := center.Sub(r.Origin)
	a := r.Direction.LengthSquared()
	h := Dot(r.Direction, oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return false
	}
	sqrtd := math.Sqrt(discriminant)

	root := (h - sqrtd) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtd) / a
		if !rayT.Surrounds(root) {
			return false
		}
	}

	rec.T = root
	rec.P = r.At(rec.T)
	outwardNormal := rec.P.Sub(center).Div(s.Radius)
	rec.SetFaceNormal(r, outwardNormal)
	rec.Mat = s.Mat

	return true
}

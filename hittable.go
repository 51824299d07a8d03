// hittable.go - The common surface every intersectable object implements.

package main

// HitRecord captures the geometric and material state at a ray-object
// intersection.
type HitRecord struct {
	P         Point3
	Normal    Vec3
	Mat       Material
	T         float64
	FrontFace bool
}

// SetFaceNormal orients Normal to oppose the incoming ray, recording
// which side was struck. outwardNormal must have unit length.
func (rec *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	rec.FrontFace = Dot(r.Direction, outwardNormal) < 0
	if rec.FrontFace {
		rec.Normal = outwardNormal
	} else {
		rec.Normal = outwardNormal.Neg()
	}
}

// Hittable is anything a ray can intersect: spheres, lists, and BVH
// nodes all implement it uniformly.
type Hittable interface {
	Hit(r Ray, rayT Interval, rec *HitRecord) bool
	BoundingBox() AABB
}

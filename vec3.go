// vec3.go - 3-component vector math for the path tracer core.

package main

import (
	"math"
	"math/rand"
)

// Vec3 is a 3-tuple of double-precision components. It doubles as a
// point in R3 and as an RGB color depending on context.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 and Color are naming aliases, matching the book's convention
// that position and color share the same representation.
type Point3 = Vec3
type Color = Vec3

func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Neg() Vec3       { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Scale(t float64) Vec3 { return Vec3{v.X * t, v.Y * t, v.Z * t} }
func (v Vec3) Div(t float64) Vec3   { return v.Scale(1 / t) }

func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// NearZero reports whether every component has magnitude below 1e-8.
func (v Vec3) NearZero() bool {
	const s = 1e-8
	return math.Abs(v.X) < s && math.Abs(v.Y) < s && math.Abs(v.Z) < s
}

func Dot(u, v Vec3) float64 {
	return u.X*v.X + u.Y*v.Y + u.Z*v.Z
}

func Cross(u, v Vec3) Vec3 {
	return Vec3{
		u.Y*v.Z - u.Z*v.Y,
		u.Z*v.X - u.X*v.Z,
		u.X*v.Y - u.Y*v.X,
	}
}

func UnitVector(v Vec3) Vec3 {
	return v.Div(v.Length())
}

// Reflect mirrors v about normal n.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * Dot(v, n)))
}

// Refract bends unit vector uv across the interface with normal n,
// where etaiOverEtat is the ratio of refraction indices.
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(Dot(uv.Neg(), n), 1.0)
	rOutPerp := uv.Add(n.Scale(cosTheta)).Scale(etaiOverEtat)
	rOutParallel := n.Scale(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// RandomVec3 samples each component uniformly in [0,1).
func RandomVec3(rng *rand.Rand) Vec3 {
	return Vec3{rng.Float64(), rng.Float64(), rng.Float64()}
}

// RandomVec3Range samples each component uniformly in [min,max).
func RandomVec3Range(rng *rand.Rand, min, max float64) Vec3 {
	span := max - min
	return Vec3{min + rng.Float64()*span, min + rng.Float64()*span, min + rng.Float64()*span}
}

// RandomInUnitSphere rejection-samples a point inside the unit ball.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(rng, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector samples a uniformly-distributed direction.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	return UnitVector(RandomInUnitSphere(rng))
}

// RandomInUnitDisk rejection-samples a point on the unit disk (z=0).
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*rng.Float64() - 1, Y: 2*rng.Float64() - 1, Z: 0}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

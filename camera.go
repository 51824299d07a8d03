// camera.go - Viewport derivation, per-pixel ray generation, and shading.

package main

import (
	"math"
	"math/rand"
)

// Camera holds the derived viewport geometry for a configured eye
// position, field of view, and defocus (thin lens) parameters. Init
// must be called once after the public fields are set and before any
// ray is generated.
type Camera struct {
	AspectRatio     float64
	ImageWidth      int
	SamplesPerPixel int
	MaxDepth        int
	VFov            float64
	LookFrom        Point3
	LookAt          Point3
	VUp             Vec3
	DefocusAngle    float64
	FocusDist       float64

	imageHeight     int
	center          Point3
	pixel00Loc      Point3
	pixelDeltaU     Vec3
	pixelDeltaV     Vec3
	u, v, w         Vec3
	defocusDiskU    Vec3
	defocusDiskV    Vec3
}

// Init derives the viewport basis and defocus disk from the public
// configuration fields. It must run before GetRay or any render.
func (c *Camera) Init() {
	c.imageHeight = int(float64(c.ImageWidth) / c.AspectRatio)
	if c.imageHeight < 1 {
		c.imageHeight = 1
	}

	c.center = c.LookFrom

	theta := c.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * c.FocusDist
	viewportWidth := viewportHeight * (float64(c.ImageWidth) / float64(c.imageHeight))

	c.w = UnitVector(c.LookFrom.Sub(c.LookAt))
	c.u = UnitVector(Cross(c.VUp, c.w))
	c.v = Cross(c.w, c.u)

	viewportU := c.u.Scale(viewportWidth)
	viewportV := c.v.Neg().Scale(viewportHeight)

	c.pixelDeltaU = viewportU.Div(float64(c.ImageWidth))
	c.pixelDeltaV = viewportV.Div(float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Sub(c.w.Scale(c.FocusDist)).
		Sub(viewportU.Div(2)).
		Sub(viewportV.Div(2))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Scale(0.5))

	defocusRadius := c.FocusDist * math.Tan(c.DefocusAngle/2*math.Pi/180)
	c.defocusDiskU = c.u.Scale(defocusRadius)
	c.defocusDiskV = c.v.Scale(defocusRadius)
}

func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// defocusDiskSample picks a ray origin on the thin lens when the
// defocus angle is nonzero.
func (c *Camera) defocusDiskSample(rng *rand.Rand) Point3 {
	p := RandomInUnitDisk(rng)
	return c.center.Add(c.defocusDiskU.Scale(p.X)).Add(c.defocusDiskV.Scale(p.Y))
}

// sampleSquare jitters within the unit square centered at the pixel,
// producing the sub-pixel offset for antialiasing.
func sampleSquare(rng *rand.Rand) Vec3 {
	return Vec3{X: rng.Float64() - 0.5, Y: rng.Float64() - 0.5}
}

// GetRay constructs a randomly sampled ray for pixel (i, j), jittered
// within the pixel footprint, originating from the lens when depth of
// field is enabled, and stamped with a random shutter time for motion
// blur.
func (c *Camera) GetRay(i, j int, rng *rand.Rand) Ray {
	offset := sampleSquare(rng)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Scale(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Scale(float64(j) + offset.Y))

	var rayOrigin Point3
	if c.DefocusAngle <= 0 {
		rayOrigin = c.center
	} else {
		rayOrigin = c.defocusDiskSample(rng)
	}
	rayDirection := pixelSample.Sub(rayOrigin)
	rayTime := rng.Float64()

	return NewRay(rayOrigin, rayDirection, rayTime)
}

// RayColor traces r through world, recursing up to depth bounces and
// returning black once the budget is exhausted. The intersection
// interval starts at 0.001 rather than 0 to avoid shadow-acne self
// intersection from floating point rounding at the origin.
func RayColor(r Ray, depth int, world Hittable, rng *rand.Rand) Color {
	if depth <= 0 {
		return Color{}
	}

	var rec HitRecord
	if world.Hit(r, Interval{Min: 0.001, Max: math.Inf(1)}, &rec) {
		attenuation, scattered, ok := rec.Mat.Scatter(r, rec, rng)
		if !ok {
			return Color{}
		}
		return attenuation.Mul(RayColor(scattered, depth-1, world, rng))
	}

	unitDirection := UnitVector(r.Direction)
	a := 0.5 * (unitDirection.Y + 1.0)
	white := Color{X: 1.0, Y: 1.0, Z: 1.0}
	sky := Color{X: 0.5, Y: 0.7, Z: 1.0}
	return white.Scale(1 - a).Add(sky.Scale(a))
}

// linearToGamma applies a gamma-2 transform (square root) to a linear
// color component, mapping negative inputs to black.
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// intensityClamp is the [0, 0.999] window colors are clamped to before
// being scaled into an 8-bit channel, keeping 1.0 from rounding up to
// the next byte.
var intensityClamp = Interval{Min: 0.000, Max: 0.999}

// PixelBytes converts an accumulated (summed, not yet averaged) color
// over SamplesPerPixel samples into gamma-corrected 8-bit RGB.
func (c *Camera) PixelBytes(accum Color) [3]byte {
	scale := 1.0 / float64(c.SamplesPerPixel)
	r := linearToGamma(accum.X * scale)
	g := linearToGamma(accum.Y * scale)
	b := linearToGamma(accum.Z * scale)

	return [3]byte{
		byte(256 * intensityClamp.Clamp(r)),
		byte(256 * intensityClamp.Clamp(g)),
		byte(256 * intensityClamp.Clamp(b)),
	}
}

// aabb.go - Axis-aligned bounding box and the BVH's slab-test intersection.

package main

// AABB is three per-axis intervals forming a bounding box.
type AABB struct {
	X, Y, Z Interval
}

var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}
var UniverseAABB = AABB{X: UniverseInterval, Y: UniverseInterval, Z: UniverseInterval}

// NewAABB builds a box from three axis intervals.
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints builds the smallest box containing both corner points.
func NewAABBFromPoints(a, b Point3) AABB {
	mk := func(lo, hi float64) Interval {
		if lo <= hi {
			return Interval{Min: lo, Max: hi}
		}
		return Interval{Min: hi, Max: lo}
	}
	return AABB{
		X: mk(a.X, b.X),
		Y: mk(a.Y, b.Y),
		Z: mk(a.Z, b.Z),
	}
}

// NewAABBFromBoxes returns the union of two boxes.
func NewAABBFromBoxes(box0, box1 AABB) AABB {
	return AABB{
		X: UnionInterval(box0.X, box1.X),
		Y: UnionInterval(box0.Y, box1.Y),
		Z: UnionInterval(box0.Z, box1.Z),
	}
}

// AxisInterval returns the interval for axis n (0=x, 1=y, 2=z).
func (b AABB) AxisInterval(n int) Interval {
	switch n {
	case 1:
		return b.Y
	case 2:
		return b.Z
	default:
		return b.X
	}
}

// LongestAxis returns the index of the box's widest interval, breaking
// ties toward the lower index.
func (b AABB) LongestAxis() int {
	if b.X.Size() >= b.Y.Size() {
		if b.X.Size() >= b.Z.Size() {
			return 0
		}
		return 2
	}
	if b.Y.Size() >= b.Z.Size() {
		return 1
	}
	return 2
}

// Hit performs the slab-method intersection test. Division by a
// zero direction component is allowed to propagate IEEE +/-Inf, which
// correctly yields a miss rather than needing a special case.
func (b AABB) Hit(r Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := b.AxisInterval(axis)

		var origin, dir float64
		switch axis {
		case 0:
			origin, dir = r.Origin.X, r.Direction.X
		case 1:
			origin, dir = r.Origin.Y, r.Direction.Y
		default:
			origin, dir = r.Origin.Z, r.Direction.Z
		}

		adinv := 1.0 / dir
		t0 := (ax.Min - origin) * adinv
		t1 := (ax.Max - origin) * adinv

		if t0 < t1 {
			if t0 > rayT.Min {
				rayT.Min = t0
			}
			if t1 < rayT.Max {
				rayT.Max = t1
			}
		} else {
			if t1 > rayT.Min {
				rayT.Min = t1
			}
			if t0 < rayT.Max {
				rayT.Max = t0
			}
		}

		if rayT.Max < rayT.Min {
			return false
		}
	}
	return true
}

// hittable_list.go - A flat collection of Hittables hit by linear scan.

package main

// HittableList is an unordered collection of objects. Hit tightens the
// search interval as closer hits are found, so later candidates can
// only improve on the closest one seen so far.
type HittableList struct {
	Objects []Hittable
	bbox    AABB
}

func NewHittableList() *HittableList {
	return &HittableList{bbox: EmptyAABB}
}

// NewHittableListOf wraps a single object, e.g. a BVH root, in a list
// so it can be handed around as the top-level world.
func NewHittableListOf(object Hittable) *HittableList {
	l := NewHittableList()
	l.Add(object)
	return l
}

func (l *HittableList) Clear() {
	l.Objects = nil
	l.bbox = EmptyAABB
}

func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = NewAABBFromBoxes(l.bbox, object.BoundingBox())
}

func (l *HittableList) BoundingBox() AABB {
	return l.bbox
}

func (l *HittableList) Hit(r Ray, rayT Interval, rec *HitRecord) bool {
	var tempRec HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if object.Hit(r, Interval{Min: rayT.Min, Max: closestSoFar}, &tempRec) {
			hitAnything = true
			closestSoFar = tempRec.T
			*rec = tempRec
		}
	}

	return hitAnything
}

package main

import (
	"math"
	"testing"
)

func TestHittableListBoundingBoxGrowsWithAdd(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(Point3{X: -5}, 1, NewLambertian(Color{X: 1})))
	firstBox := list.BoundingBox()

	list.Add(NewSphere(Point3{X: 5}, 1, NewLambertian(Color{X: 1})))
	secondBox := list.BoundingBox()

	if secondBox.X.Max <= firstBox.X.Max {
		t.Fatalf("bounding box should grow after adding a farther object")
	}
}

func TestHittableListHitTightensToClosest(t *testing.T) {
	list := NewHittableList()
	mat := NewLambertian(Color{X: 1})
	list.Add(NewSphere(Point3{Z: -10}, 1, mat))
	list.Add(NewSphere(Point3{Z: -2}, 1, mat))

	var rec HitRecord
	ok := list.Hit(NewRay(Point3{}, Vec3{Z: -1}, 0), Interval{Min: 0.001, Max: math.Inf(1)}, &rec)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !almostEqual(rec.T, 1) {
		t.Errorf("T = %v, want closest sphere at t=1", rec.T)
	}
}

func TestHittableListOfWrapsSingleObject(t *testing.T) {
	s := NewSphere(Point3{}, 1, NewLambertian(Color{X: 1}))
	l := NewHittableListOf(s)
	if len(l.Objects) != 1 || l.Objects[0] != Hittable(s) {
		t.Fatal("NewHittableListOf should wrap exactly the given object")
	}
}

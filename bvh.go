// bvh.go - Bounding volume hierarchy built by recursive median split.

package main

import "sort"

// BVHNode is an interior or leaf node of a binary bounding volume
// hierarchy. Leaves store one or two objects directly in Left/Right
// rather than through a separate leaf type.
type BVHNode struct {
	Left, Right Hittable
	bbox        AABB
}

// NewBVH builds a tree over every object in the list.
func NewBVH(list *HittableList) *BVHNode {
	objects := make([]Hittable, len(list.Objects))
	copy(objects, list.Objects)
	return newBVHNode(objects, 0, len(objects))
}

// newBVHNode recursively partitions objects[start:end]. The split axis
// is the longest axis of the range's bounding box; the comparator
// sorts by that axis's minimum bound before taking the median.
func newBVHNode(objects []Hittable, start, end int) *BVHNode {
	node := &BVHNode{}

	bbox := EmptyAABB
	for i := start; i < end; i++ {
		bbox = NewAABBFromBoxes(bbox, objects[i].BoundingBox())
	}
	axis := bbox.LongestAxis()

	span := end - start
	switch span {
	case 1:
		node.Left = objects[start]
		node.Right = objects[start]
	case 2:
		node.Left = objects[start]
		node.Right = objects[start+1]
	default:
		sub := objects[start:end]
		sort.Slice(sub, func(i, j int) bool {
			return sub[i].BoundingBox().AxisInterval(axis).Min < sub[j].BoundingBox().AxisInterval(axis).Min
		})
		mid := start + span/2
		node.Left = newBVHNode(objects, start, mid)
		node.Right = newBVHNode(objects, mid, end)
	}

	node.bbox = NewAABBFromBoxes(node.Left.BoundingBox(), node.Right.BoundingBox())
	return node
}

func (n *BVHNode) BoundingBox() AABB {
	return n.bbox
}

// Hit descends into whichever children the ray's box test survives.
// The right subtree's search interval is tightened by a left hit so a
// closer hit on the left prunes farther candidates on the right.
func (n *BVHNode) Hit(r Ray, rayT Interval, rec *HitRecord) bool {
	if !n.bbox.Hit(r, rayT) {
		return false
	}

	hitLeft := n.Left.Hit(r, rayT, rec)
	rightMax := rayT.Max
	if hitLeft {
		rightMax = rec.T
	}
	hitRight := n.Right.Hit(r, Interval{Min: rayT.Min, Max: rightMax}, rec)

	return hitLeft || hitRight
}

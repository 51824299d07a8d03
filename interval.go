// interval.go - A closed/open 1-D range with containment, clamp, union, expand.

package main

import "math"

// Interval holds a min/max pair and answers containment/clamp/union
// queries over it.
type Interval struct {
	Min, Max float64
}

// NewInterval constructs an Interval directly from bounds.
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// EmptyInterval and UniverseInterval are the two degenerate intervals:
// empty contains nothing, universe contains everything.
var EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
var UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// UnionInterval returns the smallest interval containing both a and b.
//
// The original C++ source this was ported from computed max as
// `a.max >= -b.max ? a.max : b.max`, which is a typo for `a.max >= b.max`.
// That bug would silently shrink unioned bounding boxes on their negative
// side, so it is NOT reproduced here.
func UnionInterval(a, b Interval) Interval {
	min := a.Min
	if b.Min < min {
		min = b.Min
	}
	max := a.Max
	if b.Max > max {
		max = b.Max
	}
	return Interval{Min: min, Max: max}
}

func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether min <= x <= max.
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether min < x < max.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand grows the interval symmetrically by delta/2 on each side.
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

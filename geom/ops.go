package geom

import "math"

// DistancePointSegment returns the Euclidean distance from p to the closed
// segment [a, b]. Degenerate segments (a == b) reduce to point distance.
// Complexity: O(1).
func DistancePointSegment(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	den := dx*dx + dy*dy
	if den == 0 {
		return p.Dist(a)
	}
	// Project p onto the infinite line, then clamp the parameter to [0,1].
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := Point{X: a.X + t*dx, Y: a.Y + t*dy}

	return p.Dist(closest)
}

// Contains reports whether p lies strictly inside the multipolygon, using
// even-odd ray casting over every ring. Points on a boundary segment count
// as outside, which keeps containing-unit lookups unambiguous for
// observations sitting exactly on a contact.
// Complexity: O(v) over total vertex count.
func (mp MultiPolygon) Contains(p Point) bool {
	inside := false
	onBoundary := false
	cross := func(a, b Point) {
		if DistancePointSegment(p, a, b) == 0 {
			onBoundary = true
		}
		// Even-odd crossing test against the horizontal ray towards +X.
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xAt := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if xAt > p.X {
				inside = !inside
			}
		}
	}
	for _, poly := range mp {
		poly.Outer.segments(cross)
		for _, h := range poly.Holes {
			h.segments(cross)
		}
	}
	if onBoundary {
		return false
	}

	return inside
}

// DistanceToBoundary returns the minimum distance from p to any boundary
// segment of the multipolygon, or +Inf for an empty geometry.
// Complexity: O(v).
func (mp MultiPolygon) DistanceToBoundary(p Point) float64 {
	min := math.Inf(1)
	visit := func(a, b Point) {
		if d := DistancePointSegment(p, a, b); d < min {
			min = d
		}
	}
	for _, poly := range mp {
		poly.Outer.segments(visit)
		for _, h := range poly.Holes {
			h.segments(visit)
		}
	}

	return min
}

// distanceToMultiLine returns the minimum distance from p to any segment of
// ml, or +Inf when ml carries no segments. Complexity: O(v).
func distanceToMultiLine(p Point, ml MultiLine) float64 {
	min := math.Inf(1)
	for _, l := range ml {
		for i := 1; i < len(l); i++ {
			if d := DistancePointSegment(p, l[i-1], l[i]); d < min {
				min = d
			}
		}
	}

	return min
}

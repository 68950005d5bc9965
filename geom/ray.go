package geom

import (
	"math"
	"sort"
)

// Raycast returns the segment of the given length projected from origin
// along a compass azimuth in degrees (0° = north/+Y, increasing clockwise,
// so 90° points east/+X). Complexity: O(1).
func Raycast(origin Point, azimuthDeg, length float64) Line {
	rad := azimuthDeg * math.Pi / 180
	end := Point{
		X: origin.X + length*math.Sin(rad),
		Y: origin.Y + length*math.Cos(rad),
	}

	return Line{origin, end}
}

// SegmentIntersection returns the intersection point of segments [a1,a2]
// and [b1,b2] and true when they intersect at a single point (proper
// crossings and endpoint touches both count). Collinear overlaps report
// false: contact-parallel rays contribute no usable crossing.
// Complexity: O(1).
func SegmentIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	rX, rY := a2.X-a1.X, a2.Y-a1.Y
	sX, sY := b2.X-b1.X, b2.Y-b1.Y
	den := rX*sY - rY*sX
	if den == 0 {
		return Point{}, false
	}
	qpX, qpY := b1.X-a1.X, b1.Y-a1.Y
	t := (qpX*sY - qpY*sX) / den
	u := (qpX*rY - qpY*rX) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	return Point{X: a1.X + t*rX, Y: a1.Y + t*rY}, true
}

// BoundaryCrossings returns every point where ray crosses the boundary of
// the multipolygon, ordered nearest-first from the ray origin. Crossings
// closer than 1e-9 to an already recorded one are dropped as duplicates
// (shared ring vertices produce two segment hits at the same point).
// Complexity: O(v) over boundary vertex count plus O(k log k) sorting.
func (mp MultiPolygon) BoundaryCrossings(ray Line) []Point {
	if len(ray) < 2 {
		return nil
	}
	origin, end := ray[0], ray[len(ray)-1]
	var hits []Point
	visit := func(a, b Point) {
		if pt, ok := SegmentIntersection(origin, end, a, b); ok {
			hits = append(hits, pt)
		}
	}
	for _, poly := range mp {
		poly.Outer.segments(visit)
		for _, h := range poly.Holes {
			h.segments(visit)
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		return origin.Dist(hits[i]) < origin.Dist(hits[j])
	})
	// Deduplicate near-coincident hits in sorted order.
	out := hits[:0]
	for _, h := range hits {
		if len(out) == 0 || out[len(out)-1].Dist(h) > 1e-9 {
			out = append(out, h)
		}
	}

	return out
}

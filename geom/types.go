// Package geom types: Point, Line, MultiLine, Ring, Polygon, MultiPolygon,
// plus the sentinel errors shared by all geometric operations.
package geom

import (
	"errors"
	"math"
)

// Sentinel errors for geometric operations.
var (
	// ErrEmptyGeometry indicates an operation received a geometry with no
	// coordinates where at least one was required.
	ErrEmptyGeometry = errors.New("geom: empty geometry")

	// ErrBadTolerance indicates a non-positive tolerance or radius.
	ErrBadTolerance = errors.New("geom: tolerance must be positive")
)

// Point is a position on the projected map plane.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance to q. Complexity: O(1).
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Line is an open polyline of at least two vertices.
type Line []Point

// MultiLine is a collection of polylines, typically the multi-part result of
// a boundary or trimming operation.
type MultiLine []Line

// Ring is a closed ring of vertices; the closing segment from the last
// vertex back to the first is implicit.
type Ring []Point

// Polygon is an outer ring with zero or more interior holes.
type Polygon struct {
	Outer Ring
	Holes []Ring
}

// MultiPolygon is the dissolved geometry of one map unit: the union of all
// polygon parts sharing that unit's name.
type MultiPolygon []Polygon

// Length returns the Euclidean length of the polyline.
// Complexity: O(v) over vertex count.
func (l Line) Length() float64 {
	var total float64
	for i := 1; i < len(l); i++ {
		total += l[i-1].Dist(l[i])
	}

	return total
}

// Length returns the summed length of all member polylines.
// Complexity: O(v) over total vertex count.
func (ml MultiLine) Length() float64 {
	var total float64
	for _, l := range ml {
		total += l.Length()
	}

	return total
}

// IsEmpty reports whether ml carries no segments at all.
func (ml MultiLine) IsEmpty() bool {
	for _, l := range ml {
		if len(l) >= 2 {
			return false
		}
	}

	return true
}

// segments invokes fn for every edge of the ring, including the implicit
// closing edge. Complexity: O(v).
func (r Ring) segments(fn func(a, b Point)) {
	n := len(r)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		fn(r[i], r[(i+1)%n])
	}
}

// Boundary returns every ring of the multipolygon (outer rings and holes)
// as closed polylines. Complexity: O(v).
func (mp MultiPolygon) Boundary() MultiLine {
	var out MultiLine
	for _, poly := range mp {
		out = appendClosed(out, poly.Outer)
		for _, h := range poly.Holes {
			out = appendClosed(out, h)
		}
	}

	return out
}

// appendClosed converts a ring to an explicitly closed Line and appends it.
func appendClosed(ml MultiLine, r Ring) MultiLine {
	if len(r) < 3 {
		return ml
	}
	closed := make(Line, 0, len(r)+1)
	closed = append(closed, r...)
	if r[0] != r[len(r)-1] {
		closed = append(closed, r[0])
	}

	return append(ml, closed)
}

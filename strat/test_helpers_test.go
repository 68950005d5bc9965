package strat_test

import "stratigraph/geom"

// line builds a single-segment MultiLine from (x1,y1) to (x2,y2).
func line(x1, y1, x2, y2 float64) geom.MultiLine {
	return geom.MultiLine{{{X: x1, Y: y1}, {X: x2, Y: y2}}}
}

// square returns the axis-aligned square with lower-left corner (x0,y0).
func square(x0, y0, size float64) geom.MultiPolygon {
	return geom.MultiPolygon{{Outer: geom.Ring{
		{X: x0, Y: y0}, {X: x0 + size, Y: y0}, {X: x0 + size, Y: y0 + size}, {X: x0, Y: y0 + size},
	}}}
}

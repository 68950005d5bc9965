// Package geom is a minimal 2D geometry kernel for map-scale geological
// computation: polyline length, point containment, proximity tests,
// shared-boundary extraction between unit polygons, segment merging and
// ray casting along compass azimuths.
//
// Coordinates are map units on a projected plane (east = +X, north = +Y).
// All operations are pure and allocation-conscious; none mutate their
// receivers. The kernel deliberately implements only the narrow set of
// operations the stratigraphic core needs rather than a general overlay
// engine.
//
// Complexity notes accompany each operation; the worst offender is
// SharedBoundary at O(s_a · s_b) over boundary segment counts, which is the
// documented cost center of contact extraction.
package geom

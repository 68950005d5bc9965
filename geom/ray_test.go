package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratigraph/geom"
)

func TestRaycast_Azimuths(t *testing.T) {
	origin := geom.Point{X: 0, Y: 0}

	north := geom.Raycast(origin, 0, 10)
	assert.InDelta(t, 0, north[1].X, 1e-9)
	assert.InDelta(t, 10, north[1].Y, 1e-9)

	east := geom.Raycast(origin, 90, 10)
	assert.InDelta(t, 10, east[1].X, 1e-9)
	assert.InDelta(t, 0, east[1].Y, 1e-9)

	south := geom.Raycast(origin, 180, 10)
	assert.InDelta(t, -10, south[1].Y, 1e-9)
}

func TestSegmentIntersection(t *testing.T) {
	pt, ok := geom.SegmentIntersection(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 2},
		geom.Point{X: 0, Y: 2}, geom.Point{X: 2, Y: 0},
	)
	require.True(t, ok)
	assert.InDelta(t, 1, pt.X, 1e-12)
	assert.InDelta(t, 1, pt.Y, 1e-12)

	// Parallel segments never intersect.
	_, ok = geom.SegmentIntersection(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0},
		geom.Point{X: 0, Y: 1}, geom.Point{X: 1, Y: 1},
	)
	assert.False(t, ok)

	// Disjoint segments on crossing lines.
	_, ok = geom.SegmentIntersection(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1},
		geom.Point{X: 5, Y: 6}, geom.Point{X: 6, Y: 5},
	)
	assert.False(t, ok)
}

func TestBoundaryCrossings_OrderedNearestFirst(t *testing.T) {
	sq := unitSquare(1, -0.5) // spans x in [1,2], y in [-0.5,0.5]
	ray := geom.Raycast(geom.Point{X: 0, Y: 0}, 90, 10)

	hits := sq.BoundaryCrossings(ray)
	require.Len(t, hits, 2)
	assert.InDelta(t, 1, hits[0].X, 1e-9)
	assert.InDelta(t, 2, hits[1].X, 1e-9)
}

func TestBoundaryCrossings_Miss(t *testing.T) {
	sq := unitSquare(1, 5)
	ray := geom.Raycast(geom.Point{X: 0, Y: 0}, 90, 10)
	assert.Empty(t, sq.BoundaryCrossings(ray))
}

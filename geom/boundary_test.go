package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratigraph/geom"
)

func TestSharedBoundary_AdjacentSquares(t *testing.T) {
	a := unitSquare(0, 0).Boundary()
	b := unitSquare(1, 0).Boundary()

	shared, err := geom.SharedBoundary(a, b, 1e-6)
	require.NoError(t, err)
	require.False(t, shared.IsEmpty())
	assert.InDelta(t, 1.0, shared.Length(), 1e-9)
}

func TestSharedBoundary_Disjoint(t *testing.T) {
	a := unitSquare(0, 0).Boundary()
	b := unitSquare(5, 5).Boundary()

	shared, err := geom.SharedBoundary(a, b, 1e-6)
	require.NoError(t, err)
	assert.True(t, shared.IsEmpty())
}

func TestSharedBoundary_BadTolerance(t *testing.T) {
	_, err := geom.SharedBoundary(nil, nil, 0)
	assert.ErrorIs(t, err, geom.ErrBadTolerance)
}

func TestTrimNear_RemovesFaultedSegments(t *testing.T) {
	// Horizontal boundary of three segments; the middle one sits under a
	// vertical fault trace and must be cut out, splitting the line in two.
	bnd := geom.MultiLine{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 0}}}
	fault := geom.MultiLine{{{X: 15, Y: -100}, {X: 15, Y: 100}}}

	trimmed, err := geom.TrimNear(bnd, fault, 6)
	require.NoError(t, err)
	require.Len(t, trimmed, 2)
	assert.InDelta(t, 10.0, trimmed[0].Length(), 1e-12)
	assert.InDelta(t, 10.0, trimmed[1].Length(), 1e-12)
}

func TestTrimNear_NoTrimLines(t *testing.T) {
	bnd := geom.MultiLine{{{X: 0, Y: 0}, {X: 1, Y: 0}}}
	trimmed, err := geom.TrimNear(bnd, nil, 50)
	require.NoError(t, err)
	assert.Equal(t, bnd, trimmed)
}

func TestTrimNear_BadRadius(t *testing.T) {
	_, err := geom.TrimNear(nil, nil, -1)
	assert.ErrorIs(t, err, geom.ErrBadTolerance)
}

func TestMergeLines_ChainsSegments(t *testing.T) {
	parts := geom.MultiLine{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 2, Y: 0}, {X: 1, Y: 0}}, // reversed orientation
		{{X: 2, Y: 0}, {X: 2, Y: 1}},
	}
	merged := geom.MergeLines(parts, 1e-6)
	require.Len(t, merged, 1)
	assert.InDelta(t, 3.0, merged[0].Length(), 1e-12)
}

func TestMergeLines_SnapTolerance(t *testing.T) {
	// Endpoints 0.5 apart merge at snap tolerance 1 but not at 0.1.
	parts := geom.MultiLine{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 1.5, Y: 0}, {X: 3, Y: 0}},
	}
	assert.Len(t, geom.MergeLines(parts, 1), 1)
	assert.Len(t, geom.MergeLines(parts, 0.1), 2)
}

func TestMergeLines_KeepsDisjointParts(t *testing.T) {
	parts := geom.MultiLine{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 10, Y: 10}, {X: 11, Y: 10}},
	}
	assert.Len(t, geom.MergeLines(parts, 1e-6), 2)
}

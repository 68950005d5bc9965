package raster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratigraph/raster"
)

// grid2x2 is a 2x2 grid at origin (0,0) with cell size 10:
//
//	row 1 (north): 3 4
//	row 0 (south): 1 2
func grid2x2(t *testing.T) *raster.Grid {
	t.Helper()
	g, err := raster.NewGrid(0, 0, 10, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	return g
}

func TestNewGrid_Validation(t *testing.T) {
	_, err := raster.NewGrid(0, 0, 10, 0, 2, nil)
	assert.ErrorIs(t, err, raster.ErrBadDims)

	_, err = raster.NewGrid(0, 0, 0, 2, 2, make([]float64, 4))
	assert.ErrorIs(t, err, raster.ErrBadCellSize)

	_, err = raster.NewGrid(0, 0, 10, 2, 2, make([]float64, 3))
	assert.ErrorIs(t, err, raster.ErrDataSize)
}

func TestGrid_Height_NearestCell(t *testing.T) {
	g := grid2x2(t)
	assert.Equal(t, 1.0, g.Height(3, 3))
	assert.Equal(t, 2.0, g.Height(17, 3))
	assert.Equal(t, 3.0, g.Height(3, 17))
	assert.Equal(t, 4.0, g.Height(17, 17))
}

func TestGrid_Height_ClampedAtEdges(t *testing.T) {
	g := grid2x2(t)
	assert.Equal(t, 1.0, g.Height(-100, -100))
	assert.Equal(t, 4.0, g.Height(100, 100))
	assert.Equal(t, 2.0, g.Height(100, -100))
}

func TestGrid_Bounds(t *testing.T) {
	g := grid2x2(t)
	minX, minY, maxX, maxY := g.Bounds()
	assert.Equal(t, 0.0, minX)
	assert.Equal(t, 0.0, minY)
	assert.Equal(t, 20.0, maxX)
	assert.Equal(t, 20.0, maxY)
}

package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratigraph/project"
)

func TestLoadGrid(t *testing.T) {
	// Two rows, north first: the top row is the higher ground.
	path := writeFile(t, "terrain.asc", `ncols 2
nrows 2
xllcorner 100
yllcorner 200
cellsize 10
NODATA_value -9999
30 40
10 20
`)

	g, err := project.LoadGrid(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, 2, g.Rows())

	// Southern row (y near yllcorner) holds 10/20, northern row 30/40.
	assert.InDelta(t, 10.0, g.Height(105, 205), 0)
	assert.InDelta(t, 20.0, g.Height(115, 205), 0)
	assert.InDelta(t, 30.0, g.Height(105, 215), 0)
	assert.InDelta(t, 40.0, g.Height(115, 215), 0)
}

func TestLoadGrid_MissingHeader(t *testing.T) {
	path := writeFile(t, "bad.asc", `ncols 2
cellsize 10
1 2
`)

	_, err := project.LoadGrid(path)
	require.ErrorIs(t, err, project.ErrBadGrid)
	assert.Contains(t, err.Error(), "nrows")
}

func TestLoadGrid_WrongCellCount(t *testing.T) {
	path := writeFile(t, "bad.asc", `ncols 2
nrows 2
xllcorner 0
yllcorner 0
cellsize 10
1 2 3
`)

	_, err := project.LoadGrid(path)
	assert.ErrorIs(t, err, project.ErrBadGrid)
}

func TestLoadGrid_NonNumericValue(t *testing.T) {
	path := writeFile(t, "bad.asc", `ncols 1
nrows 1
xllcorner 0
yllcorner 0
cellsize 10
lava
`)

	_, err := project.LoadGrid(path)
	require.ErrorIs(t, err, project.ErrBadGrid)
	assert.Contains(t, err.Error(), "lava")
}

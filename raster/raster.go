package raster

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction.
var (
	// ErrBadDims indicates non-positive column or row counts.
	ErrBadDims = errors.New("raster: grid dimensions must be positive")

	// ErrBadCellSize indicates a non-positive cell size.
	ErrBadCellSize = errors.New("raster: cell size must be positive")

	// ErrDataSize indicates the data slice does not hold cols*rows values.
	ErrDataSize = errors.New("raster: data length does not match dimensions")
)

// Grid is a dense row-major elevation raster. Row 0 is the southernmost
// row; cell (0,0) is centred at (originX + cell/2, originY + cell/2).
// A Grid is immutable after construction and safe for concurrent reads.
type Grid struct {
	originX, originY float64 // lower-left corner of the grid extent
	cell             float64 // square cell edge length in map units
	cols, rows       int
	data             []float64 // row-major, len == cols*rows
}

// NewGrid builds a Grid over the given extent. data is row-major with the
// southernmost row first and is not copied; callers must not mutate it.
// Complexity: O(1).
func NewGrid(originX, originY, cell float64, cols, rows int, data []float64) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, ErrBadDims
	}
	if cell <= 0 || math.IsNaN(cell) {
		return nil, ErrBadCellSize
	}
	if len(data) != cols*rows {
		return nil, ErrDataSize
	}

	return &Grid{originX: originX, originY: originY, cell: cell, cols: cols, rows: rows, data: data}, nil
}

// Height returns the elevation of the cell nearest to (x, y). Queries
// outside the grid extent are clamped to the edge cells, so Height is
// total over the plane. Complexity: O(1).
func (g *Grid) Height(x, y float64) float64 {
	col := clamp(int(math.Floor((x-g.originX)/g.cell)), 0, g.cols-1)
	row := clamp(int(math.Floor((y-g.originY)/g.cell)), 0, g.rows-1)

	return g.data[row*g.cols+col]
}

// Bounds returns the grid extent as (minX, minY, maxX, maxY).
func (g *Grid) Bounds() (minX, minY, maxX, maxY float64) {
	return g.originX, g.originY,
		g.originX + float64(g.cols)*g.cell,
		g.originY + float64(g.rows)*g.cell
}

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

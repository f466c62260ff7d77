// Package raster loads elevation tiles (ESRI ASCII Grid) and serves
// nearest-cell height lookups through a bounded tile cache.
package raster

import (
	"math"
)

// Grid is one loaded elevation tile: a row-major array of cell values, first
// row northernmost, anchored at the tile's southwest corner. Read-only after
// parsing; safe to share across workers.
type Grid struct {
	Cols, Rows int
	XLL, YLL   float64 // southwest corner
	CellSize   float64
	NoData     float64
	data       []float64
}

// Sample returns the elevation of the cell containing (x, y), nearest-cell,
// no interpolation. ok is false when the coordinate falls outside the tile
// extent or the cell is flagged no-data. The south and west tile edges are
// inside, the north and east edges belong to the neighboring tiles, matching
// the tile locator's floor convention.
func (g *Grid) Sample(x, y float64) (float64, bool) {
	col := int(math.Floor((x - g.XLL) / g.CellSize))
	fromSouth := int(math.Floor((y - g.YLL) / g.CellSize))
	row := g.Rows - 1 - fromSouth
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return 0, false
	}
	v := g.data[row*g.Cols+col]
	if math.IsNaN(v) || v == g.NoData {
		return 0, false
	}
	return v, true
}

// At returns the raw cell value at (col, row), row 0 northernmost. Test hook.
func (g *Grid) At(col, row int) float64 {
	return g.data[row*g.Cols+col]
}

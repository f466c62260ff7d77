// Package voxel lays the sample grid over building footprints.
package voxel

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/davras5/swissALTI3D-Volumen/internal/geometry"
)

// DefaultCellSize is the sampling resolution in meters.
const DefaultCellSize = 1.0

// Generator produces the sample points (cell centers) of a footprint on a
// square grid anchored at the CRS origin. The world anchor means neighboring
// buildings share cell boundaries exactly and never double-sample or gap a
// boundary cell.
type Generator struct {
	cell float64
	pred geometry.Predicate
}

func NewGenerator(cell float64, pred geometry.Predicate) *Generator {
	if cell <= 0 {
		cell = DefaultCellSize
	}
	if pred == nil {
		pred = geometry.Planar{}
	}
	return &Generator{cell: cell, pred: pred}
}

func (g *Generator) CellSize() float64 { return g.cell }
func (g *Generator) CellArea() float64 { return g.cell * g.cell }

// Points returns the grid cell centers inside the footprint, boundary
// points included, in row-major order: increasing y, then increasing x
// within a row. Deterministic for a given footprint and cell size. An empty
// result (footprint smaller than one cell, no aligned center inside) is a
// legitimate outcome, not an error.
func (g *Generator) Points(poly orb.Polygon) []orb.Point {
	b := poly.Bound()
	i0 := int(math.Floor(b.Min[0] / g.cell))
	i1 := int(math.Ceil(b.Max[0] / g.cell))
	j0 := int(math.Floor(b.Min[1] / g.cell))
	j1 := int(math.Ceil(b.Max[1] / g.cell))

	var pts []orb.Point
	for j := j0; j < j1; j++ {
		y := (float64(j) + 0.5) * g.cell
		for i := i0; i < i1; i++ {
			x := (float64(i) + 0.5) * g.cell
			if g.pred.Contains(poly, orb.Point{x, y}) {
				pts = append(pts, orb.Point{x, y})
			}
		}
	}
	return pts
}

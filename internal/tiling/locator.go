// Package tiling maps planar LV95 coordinates onto the fixed square tiling
// the elevation rasters are published in. Pure arithmetic, no I/O: a
// coordinate always resolves to exactly one tile id, whether or not a file
// for that tile exists.
package tiling

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// DefaultEdge is the published swisstopo tile edge length in meters.
const DefaultEdge = 1000.0

// TileID identifies a tile by the integer indices of its southwest corner.
// At the default 1 km edge these are the kilometer coordinates the file
// names encode.
type TileID struct {
	E int // easting index (x / edge)
	N int // northing index (y / edge)
}

func (t TileID) String() string {
	return fmt.Sprintf("%04d_%04d", t.E, t.N)
}

// Locator resolves coordinates and bounding boxes to tile ids for one
// configured tile edge length.
type Locator struct {
	edge float64
}

func NewLocator(edge float64) *Locator {
	if edge <= 0 {
		edge = DefaultEdge
	}
	return &Locator{edge: edge}
}

func (l *Locator) Edge() float64 { return l.edge }

// ForCoord returns the id of the tile whose extent contains (x, y). A
// coordinate on a shared tile edge belongs to the tile north/east of it,
// matching the floor convention of the raster extents.
func (l *Locator) ForCoord(x, y float64) TileID {
	return TileID{
		E: int(math.Floor(x / l.edge)),
		N: int(math.Floor(y / l.edge)),
	}
}

// ForBounds enumerates the ids of all tiles overlapping the bounding box,
// in deterministic order: increasing northing, then increasing easting.
func (l *Locator) ForBounds(b orb.Bound) []TileID {
	min := l.ForCoord(b.Min[0], b.Min[1])
	max := l.ForCoord(b.Max[0], b.Max[1])
	ids := make([]TileID, 0, (max.N-min.N+1)*(max.E-min.E+1))
	for n := min.N; n <= max.N; n++ {
		for e := min.E; e <= max.E; e++ {
			ids = append(ids, TileID{E: e, N: n})
		}
	}
	return ids
}

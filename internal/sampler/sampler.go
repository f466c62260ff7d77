// Package sampler resolves terrain and surface elevations for sample points.
package sampler

import (
	"github.com/paulmach/orb"

	"github.com/davras5/swissALTI3D-Volumen/internal/model"
	"github.com/davras5/swissALTI3D-Volumen/internal/raster"
	"github.com/davras5/swissALTI3D-Volumen/internal/tiling"
)

// HeightPair carries the two elevations sampled at one voxel center. A false
// flag marks that component missing: no covering tile, or a no-data cell.
type HeightPair struct {
	Terrain   float64
	Surface   float64
	TerrainOK bool
	SurfaceOK bool
}

// Sampler looks up both datasets per point, resolving the covering tile
// independently for each. A building spanning a tile boundary therefore
// draws each height from whichever tile covers that point; no polygon
// splitting is ever needed.
type Sampler struct {
	loc   *tiling.Locator
	tiles *raster.Cache
}

func New(loc *tiling.Locator, tiles *raster.Cache) *Sampler {
	return &Sampler{loc: loc, tiles: tiles}
}

func (s *Sampler) SampleAt(pt orb.Point) HeightPair {
	var hp HeightPair
	hp.Terrain, hp.TerrainOK = s.sample(model.DatasetTerrain, pt)
	hp.Surface, hp.SurfaceOK = s.sample(model.DatasetSurface, pt)
	return hp
}

func (s *Sampler) sample(ds model.Dataset, pt orb.Point) (float64, bool) {
	g, ok := s.tiles.Load(ds, s.loc.ForCoord(pt[0], pt[1]))
	if !ok {
		return 0, false
	}
	return g.Sample(pt[0], pt[1])
}

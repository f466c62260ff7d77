// Package volume turns sampled height pairs into the per-building result.
package volume

import (
	"github.com/davras5/swissALTI3D-Volumen/internal/model"
	"github.com/davras5/swissALTI3D-Volumen/internal/sampler"
)

// Aggregate folds one building's height pairs into its result record.
//
// The base elevation is the minimum valid terrain height across the whole
// footprint, a single global base per building rather than the per-point
// terrain. Per-point building height is surface minus that base, clamped at
// zero: a surface sample below the base (sensor noise, terrain rising above
// a low roof edge) contributes nothing and is never an error, so the volume
// is never negative.
//
// Status is terminal and assigned exactly once:
//
//	no voxels            -> no_voxels, all numerics zero
//	no valid terrain     -> no_height_data
//	no usable height     -> no_height_data (base known, all surface missing)
//	otherwise            -> success
//
// Aggregation is a pure fold in input order; the same input yields a
// bit-identical result.
func Aggregate(egid string, pairs []sampler.HeightPair, cellArea float64) model.VolumeResult {
	if cellArea <= 0 {
		cellArea = 1
	}
	res := model.VolumeResult{EGID: egid}

	if len(pairs) == 0 {
		res.Status = model.StatusNoVoxels
		return res
	}

	base, haveBase := 0.0, false
	for _, hp := range pairs {
		if hp.TerrainOK && (!haveBase || hp.Terrain < base) {
			base, haveBase = hp.Terrain, true
		}
	}
	if !haveBase {
		res.Status = model.StatusNoHeightData
		return res
	}

	var (
		sum, maxH float64
		used      int
	)
	for _, hp := range pairs {
		if !hp.SurfaceOK {
			continue
		}
		h := hp.Surface - base
		if h < 0 {
			h = 0
		}
		sum += h
		if h > maxH {
			maxH = h
		}
		used++
	}
	if used == 0 {
		res.Status = model.StatusNoHeightData
		return res
	}

	res.Status = model.StatusSuccess
	res.BaseHeightM = base
	res.VolumeM3 = sum * cellArea
	res.MeanHeightM = sum / float64(used)
	res.MaxHeightM = maxH
	res.FootprintAreaM2 = float64(used) * cellArea
	return res
}

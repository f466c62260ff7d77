// Package model holds the shared domain types for building volume runs.
package model

import "github.com/paulmach/orb"

// Dataset names one of the two elevation models heights are sampled from.
type Dataset string

const (
	// DatasetTerrain is the bare-earth model (swissALTI3D).
	DatasetTerrain Dataset = "alti3d"
	// DatasetSurface is the terrain-plus-structures model (swissSURFACE3D).
	DatasetSurface Dataset = "surface3d"
)

func (d Dataset) String() string { return string(d) }

// Building is one footprint record from the cadastral survey, in LV95
// (EPSG:2056) planar coordinates. Immutable once loaded.
type Building struct {
	EGID      string
	Footprint orb.Polygon
	Props     map[string]any
}

// Status classifies the outcome of one building's volume computation.
// Terminal: assigned exactly once per building, never changed afterwards.
type Status string

const (
	StatusSuccess      Status = "success"
	StatusNoVoxels     Status = "no_voxels"
	StatusNoHeightData Status = "no_height_data"
)

// VolumeResult is the per-building output tuple. Numeric fields are zero for
// the degraded statuses. Footprint area is the voxel-count approximation,
// not the analytic polygon area.
type VolumeResult struct {
	EGID            string
	VolumeM3        float64
	FootprintAreaM2 float64
	MeanHeightM     float64
	MaxHeightM      float64
	BaseHeightM     float64
	Status          Status
}

// Package processor orchestrates voxelize -> sample -> aggregate for
// buildings. Each building is processed independently; no building observes
// another's intermediate state.
package processor

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/davras5/swissALTI3D-Volumen/internal/geometry"
	"github.com/davras5/swissALTI3D-Volumen/internal/model"
	"github.com/davras5/swissALTI3D-Volumen/internal/observability"
	"github.com/davras5/swissALTI3D-Volumen/internal/sampler"
	"github.com/davras5/swissALTI3D-Volumen/internal/volume"
	"github.com/davras5/swissALTI3D-Volumen/internal/voxel"
)

type Processor struct {
	grid    *voxel.Generator
	heights *sampler.Sampler
	logger  *slog.Logger
}

func New(grid *voxel.Generator, heights *sampler.Sampler, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Processor{grid: grid, heights: heights, logger: logger}
}

// Process computes one building's volume result. It returns an error only
// for a malformed footprint; missing height data is not an error and is
// reported through the result status instead.
func (p *Processor) Process(b model.Building) (model.VolumeResult, error) {
	start := time.Now()

	if err := geometry.ValidateFootprint(b.Footprint); err != nil {
		return model.VolumeResult{EGID: b.EGID}, fmt.Errorf("building %s: %w", b.EGID, err)
	}

	pts := p.grid.Points(b.Footprint)
	pairs := make([]sampler.HeightPair, 0, len(pts))
	for _, pt := range pts {
		pairs = append(pairs, p.heights.SampleAt(pt))
	}
	res := volume.Aggregate(b.EGID, pairs, p.grid.CellArea())

	observability.ObserveBuilding(string(res.Status), time.Since(start).Seconds())
	p.logger.Debug("building processed",
		"egid", b.EGID,
		"status", string(res.Status),
		"voxels", len(pts),
		"volume_m3", res.VolumeM3)
	return res, nil
}

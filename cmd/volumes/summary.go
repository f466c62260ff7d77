package main

import (
	"log/slog"

	"github.com/davras5/swissALTI3D-Volumen/internal/model"
)

// summarize logs run-level statistics over the successful results.
func summarize(log *slog.Logger, results []model.VolumeResult, failed int) {
	var (
		succeeded    int
		totalVolume  float64
		totalMean    float64
		noVoxels     int
		noHeightData int
	)
	for _, r := range results {
		switch r.Status {
		case model.StatusSuccess:
			succeeded++
			totalVolume += r.VolumeM3
			totalMean += r.MeanHeightM
		case model.StatusNoVoxels:
			noVoxels++
		case model.StatusNoHeightData:
			noHeightData++
		}
	}
	avgVolume, avgHeight := 0.0, 0.0
	if succeeded > 0 {
		avgVolume = totalVolume / float64(succeeded)
		avgHeight = totalMean / float64(succeeded)
	}
	log.Info("run summary",
		"buildings", len(results)+failed,
		"succeeded", succeeded,
		"no_voxels", noVoxels,
		"no_height_data", noHeightData,
		"failed", failed,
		"total_volume_m3", totalVolume,
		"avg_volume_m3", avgVolume,
		"avg_mean_height_m", avgHeight)
}

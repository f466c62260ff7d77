// Package observability exposes Prometheus metrics for volume runs.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	buildingsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "buildings_processed_total",
			Help: "Buildings processed, by result status.",
		},
		[]string{"status"},
	)

	buildingDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "building_processing_duration_seconds",
			Help:    "Wall time to voxelize, sample and aggregate one building.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
		},
	)

	tileLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tile_loads_total",
			Help: "Raster tile load attempts, by dataset and outcome.",
		},
		[]string{"dataset", "outcome"},
	)

	tileCacheResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tile_cache_results_total",
			Help: "Tile cache lookups, by outcome.",
		},
		[]string{"outcome"},
	)

	buildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_build_info",
			Help: "Build information for the binary.",
		},
		[]string{"version"},
	)
)

func ObserveBuilding(status string, durationSeconds float64) {
	buildingsProcessedTotal.WithLabelValues(status).Inc()
	buildingDurationSeconds.Observe(durationSeconds)
}

// outcome is one of "loaded", "absent", "corrupt"
func IncTileLoad(dataset, outcome string) {
	tileLoadsTotal.WithLabelValues(dataset, outcome).Inc()
}

// outcome is one of "hit", "miss", "evict"
func IncTileCache(outcome string) {
	tileCacheResultsTotal.WithLabelValues(outcome).Inc()
}

func ExposeBuildInfo(version string) {
	if version == "" {
		version = "dev"
	}
	buildInfo.WithLabelValues(version).Set(1)
}

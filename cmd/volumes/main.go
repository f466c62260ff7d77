// Command volumes computes building volumes from Swiss cadastral footprints
// and the swissALTI3D / swissSURFACE3D elevation tiles.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/davras5/swissALTI3D-Volumen/internal/logger"
	"github.com/davras5/swissALTI3D-Volumen/internal/model"
	"github.com/davras5/swissALTI3D-Volumen/internal/observability"
	"github.com/davras5/swissALTI3D-Volumen/internal/processor"
	"github.com/davras5/swissALTI3D-Volumen/internal/raster"
	"github.com/davras5/swissALTI3D-Volumen/internal/sampler"
	"github.com/davras5/swissALTI3D-Volumen/internal/server"
	"github.com/davras5/swissALTI3D-Volumen/internal/source"
	"github.com/davras5/swissALTI3D-Volumen/internal/tiling"
	"github.com/davras5/swissALTI3D-Volumen/internal/voxel"
	"github.com/davras5/swissALTI3D-Volumen/internal/writer"
)

var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := LoadConfig()

	zl := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   strings.ToLower(os.Getenv("LOG_CONSOLE")) == "true",
		Component: "volumes",
	}, os.Stderr)
	log := logger.NewSlog(&zl)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		return 1
	}

	observability.ExposeBuildInfo(Version)
	log.Info("starting volume run",
		"version", Version,
		"footprints", cfg.AVPath,
		"terrain_dir", cfg.TerrainDir,
		"surface_dir", cfg.SurfaceDir,
		"workers", cfg.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := server.Run(ctx, cfg.MetricsAddr, log); err != nil {
				log.Error("status server exited", "err", err)
			}
		}()
	}

	buildings, err := source.Load(cfg.AVPath, source.Options{
		KindProperty: cfg.KindProperty,
		KindValue:    cfg.KindValue,
	})
	if err != nil {
		log.Error("loading footprints failed", "err", err)
		return 1
	}
	log.Info("footprints loaded", "buildings", len(buildings))

	if cfg.BBox != "" {
		box, err := parseBBox(cfg.BBox)
		if err != nil {
			log.Error("bad bbox", "err", err)
			return 1
		}
		buildings = source.FilterBBox(buildings, box)
		log.Info("bbox filter applied", "buildings", len(buildings))
	}
	buildings = source.Limit(buildings, cfg.Limit)

	tiles, err := raster.NewCache(map[model.Dataset]string{
		model.DatasetTerrain: cfg.TerrainDir,
		model.DatasetSurface: cfg.SurfaceDir,
	}, cfg.CacheTiles, log)
	if err != nil {
		log.Error("tile cache setup failed", "err", err)
		return 1
	}

	proc := processor.New(
		voxel.NewGenerator(cfg.CellSize, nil),
		sampler.New(tiling.NewLocator(cfg.TileEdge), tiles),
		log,
	)

	outcomes := proc.RunPool(ctx, buildings, cfg.Workers)

	results := make([]model.VolumeResult, 0, len(outcomes))
	byEGID := make(map[string]model.VolumeResult, len(outcomes))
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			log.Warn("building skipped", "egid", o.Result.EGID, "err", o.Err)
			continue
		}
		results = append(results, o.Result)
		byEGID[o.Result.EGID] = o.Result
	}

	if err := writer.WriteCSVFile(cfg.OutputCSV, results); err != nil {
		log.Error("writing results failed", "err", err)
		return 1
	}
	log.Info("results written", "file", cfg.OutputCSV, "rows", len(results))

	if cfg.OutputGeoJSON != "" {
		if err := writer.WriteGeoJSON(cfg.OutputGeoJSON, buildings, byEGID); err != nil {
			log.Error("writing geojson failed", "err", err)
			return 1
		}
		log.Info("geojson written", "file", cfg.OutputGeoJSON)
	}

	summarize(log, results, failed)
	if ctx.Err() != nil {
		return 1
	}
	return 0
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

type Config struct {
	AVPath        string
	TerrainDir    string
	SurfaceDir    string
	OutputCSV     string
	OutputGeoJSON string
	BBox          string
	Limit         int
	Workers       int
	CacheTiles    int
	TileEdge      float64
	CellSize      float64
	KindProperty  string
	KindValue     string
	LogLevel      string
	MetricsAddr   string
}

// Configuration for the volumes driver: env defaults, flag overrides.
func LoadConfig() Config {
	var cfg Config
	cfg.AVPath = getenv("AV_PATH", "")
	cfg.TerrainDir = getenv("ALTI3D_DIR", "")
	cfg.SurfaceDir = getenv("SURFACE3D_DIR", "")
	cfg.OutputCSV = getenv("OUTPUT_CSV", "building_volumes.csv")
	cfg.OutputGeoJSON = getenv("OUTPUT_GEOJSON", "")
	cfg.BBox = getenv("BBOX", "")
	cfg.Limit = getint("LIMIT", 0)
	cfg.Workers = getint("WORKERS", 8)
	cfg.CacheTiles = getint("CACHE_TILES", 64)
	cfg.TileEdge = getfloat("TILE_EDGE_M", 1000)
	cfg.CellSize = getfloat("VOXEL_SIZE_M", 1)
	cfg.KindProperty = getenv("KIND_PROPERTY", "Art")
	cfg.KindValue = getenv("KIND_VALUE", "Gebaeude")
	cfg.LogLevel = getenv("LOG_LEVEL", "info")
	cfg.MetricsAddr = getenv("METRICS_ADDR", "")

	flag.StringVar(&cfg.AVPath, "av", cfg.AVPath, "footprints GeoJSON (cadastral survey export, EPSG:2056)")
	flag.StringVar(&cfg.TerrainDir, "terrain", cfg.TerrainDir, "directory of swissALTI3D tiles")
	flag.StringVar(&cfg.SurfaceDir, "surface", cfg.SurfaceDir, "directory of swissSURFACE3D tiles")
	flag.StringVar(&cfg.OutputCSV, "o", cfg.OutputCSV, "output CSV file")
	flag.StringVar(&cfg.OutputGeoJSON, "geojson", cfg.OutputGeoJSON, "optional output GeoJSON with result attributes")
	flag.StringVar(&cfg.BBox, "bbox", cfg.BBox, "only buildings within minx,miny,maxx,maxy")
	flag.IntVar(&cfg.Limit, "limit", cfg.Limit, "process only the first N buildings (0 = all)")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent building workers")
	flag.IntVar(&cfg.CacheTiles, "cache-tiles", cfg.CacheTiles, "max raster tiles held in memory")
	flag.Float64Var(&cfg.TileEdge, "tile-edge", cfg.TileEdge, "tile edge length in meters")
	flag.Float64Var(&cfg.CellSize, "cell", cfg.CellSize, "voxel cell size in meters")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug|info|warn|error")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve /metrics and /healthz on this address (empty = off)")
	flag.Parse()
	return cfg
}

func (c Config) Validate() error {
	if c.AVPath == "" {
		return fmt.Errorf("missing -av footprints file")
	}
	if c.TerrainDir == "" || c.SurfaceDir == "" {
		return fmt.Errorf("missing -terrain or -surface tile directory")
	}
	if _, err := os.Stat(c.AVPath); err != nil {
		return fmt.Errorf("footprints file: %w", err)
	}
	for _, dir := range []string{c.TerrainDir, c.SurfaceDir} {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("tile directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("tile directory %s is not a directory", dir)
		}
	}
	if c.BBox != "" {
		if _, err := parseBBox(c.BBox); err != nil {
			return err
		}
	}
	return nil
}

// parses "minx,miny,maxx,maxy"
func parseBBox(s string) (orb.Bound, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return orb.Bound{}, fmt.Errorf("bbox wants minx,miny,maxx,maxy, got %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("bbox component %d: %w", i, err)
		}
		vals[i] = v
	}
	if vals[0] > vals[2] || vals[1] > vals[3] {
		return orb.Bound{}, fmt.Errorf("bbox min exceeds max: %q", s)
	}
	return orb.Bound{Min: orb.Point{vals[0], vals[1]}, Max: orb.Point{vals[2], vals[3]}}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

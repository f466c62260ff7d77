package raster

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/davras5/swissALTI3D-Volumen/internal/model"
	"github.com/davras5/swissALTI3D-Volumen/internal/observability"
	"github.com/davras5/swissALTI3D-Volumen/internal/tiling"
)

// DefaultCapacity bounds the number of resident tiles. A 1 km tile at 0.5 m
// resolution is 4M cells, so the default keeps memory in the low gigabytes.
const DefaultCapacity = 64

type cacheKey struct {
	ds model.Dataset
	id tiling.TileID
}

// Cache is the tile source: it loads raster tiles lazily, shares them
// read-only across workers and bounds residency with an LRU. Loads are
// deduplicated so concurrent requests for one tile read the file once.
// Missing and corrupt tiles are cached as negative entries; both degrade to
// missing heights, never to a batch failure.
type Cache struct {
	dirs   map[model.Dataset]string
	tiles  *lru.Cache[cacheKey, *Grid] // nil value marks a known-missing tile
	group  singleflight.Group
	logger *slog.Logger
}

func NewCache(dirs map[model.Dataset]string, capacity int, logger *slog.Logger) (*Cache, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c, err := lru.NewWithEvict(capacity, func(cacheKey, *Grid) {
		observability.IncTileCache("evict")
	})
	if err != nil {
		return nil, fmt.Errorf("tile lru: %w", err)
	}
	return &Cache{dirs: dirs, tiles: c, logger: logger}, nil
}

// Load returns the tile covering (dataset, id), or ok=false when no readable
// tile exists. It never returns an error: absence and corruption are data.
func (c *Cache) Load(ds model.Dataset, id tiling.TileID) (*Grid, bool) {
	k := cacheKey{ds: ds, id: id}
	if g, ok := c.tiles.Get(k); ok {
		observability.IncTileCache("hit")
		return g, g != nil
	}
	observability.IncTileCache("miss")

	v, _, _ := c.group.Do(ds.String()+"/"+id.String(), func() (any, error) {
		// a concurrent loader may have won the race
		if g, ok := c.tiles.Get(k); ok {
			return g, nil
		}
		g := c.open(ds, id)
		c.tiles.Add(k, g)
		return g, nil
	})
	g, _ := v.(*Grid)
	return g, g != nil
}

// open probes the candidate file names and parses the first that exists.
// Returns nil for the missing-tile sentinel.
func (c *Cache) open(ds model.Dataset, id tiling.TileID) *Grid {
	dir := c.dirs[ds]
	for _, name := range tiling.Filenames(id, ds) {
		path := filepath.Join(dir, name)
		g, err := Load(path)
		if err == nil {
			observability.IncTileLoad(ds.String(), "loaded")
			c.logger.Debug("tile loaded", "dataset", ds.String(), "tile", id.String(), "file", name)
			return g
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		// file exists but is unreadable; treat as missing for this dataset
		observability.IncTileLoad(ds.String(), "corrupt")
		c.logger.Warn("corrupt tile treated as missing",
			"dataset", ds.String(), "tile", id.String(), "file", name, "err", err)
		return nil
	}
	observability.IncTileLoad(ds.String(), "absent")
	c.logger.Debug("no tile file", "dataset", ds.String(), "tile", id.String())
	return nil
}

// Len reports the number of resident tiles. Test hook.
func (c *Cache) Len() int { return c.tiles.Len() }

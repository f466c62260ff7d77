package raster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davras5/swissALTI3D-Volumen/internal/model"
	"github.com/davras5/swissALTI3D-Volumen/internal/tiling"
)

// writeTile writes a constant-elevation 1 km tile (coarse 100 m cells are
// enough for cache tests) under the short naming convention.
func writeTile(t *testing.T, dir string, ds model.Dataset, id tiling.TileID, elev float64) {
	t.Helper()
	var sb strings.Builder
	fmt.Fprintf(&sb, "ncols 10\nnrows 10\nxllcorner %d\nyllcorner %d\ncellsize 100\nNODATA_value -9999\n",
		id.E*1000, id.N*1000)
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			fmt.Fprintf(&sb, "%g ", elev)
		}
		sb.WriteString("\n")
	}
	name := tiling.Filenames(id, ds)[1]
	if err := os.WriteFile(filepath.Join(dir, name), []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write tile: %v", err)
	}
}

func newTestCache(t *testing.T, capacity int) (*Cache, map[model.Dataset]string) {
	t.Helper()
	dirs := map[model.Dataset]string{
		model.DatasetTerrain: t.TempDir(),
		model.DatasetSurface: t.TempDir(),
	}
	c, err := NewCache(dirs, capacity, nil)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	return c, dirs
}

func TestCache_LoadAndSample(t *testing.T) {
	c, dirs := newTestCache(t, 8)
	id := tiling.TileID{E: 2684, N: 1248}
	writeTile(t, dirs[model.DatasetTerrain], model.DatasetTerrain, id, 510)

	g, ok := c.Load(model.DatasetTerrain, id)
	if !ok {
		t.Fatalf("expected tile")
	}
	if v, ok := g.Sample(2684500, 1248500); !ok || v != 510 {
		t.Fatalf("sample = %v, %v", v, ok)
	}
}

func TestCache_MissingTileIsNotAnError(t *testing.T) {
	c, _ := newTestCache(t, 8)
	if _, ok := c.Load(model.DatasetSurface, tiling.TileID{E: 1, N: 1}); ok {
		t.Fatalf("missing tile must report ok=false")
	}
	// the negative entry is cached
	if c.Len() != 1 {
		t.Fatalf("missing tile not cached: len=%d", c.Len())
	}
	if _, ok := c.Load(model.DatasetSurface, tiling.TileID{E: 1, N: 1}); ok {
		t.Fatalf("cached negative entry must stay missing")
	}
}

func TestCache_CorruptTileDegradesToMissing(t *testing.T) {
	c, dirs := newTestCache(t, 8)
	id := tiling.TileID{E: 5, N: 5}
	name := tiling.Filenames(id, model.DatasetTerrain)[0]
	if err := os.WriteFile(filepath.Join(dirs[model.DatasetTerrain], name), []byte("not a raster"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := c.Load(model.DatasetTerrain, id); ok {
		t.Fatalf("corrupt tile must degrade to missing")
	}
}

func TestCache_ProbesLongNameFirst(t *testing.T) {
	c, dirs := newTestCache(t, 8)
	id := tiling.TileID{E: 2684, N: 1248}
	long := tiling.Filenames(id, model.DatasetTerrain)[0]
	var sb strings.Builder
	sb.WriteString("ncols 1\nnrows 1\nxllcorner 2684000\nyllcorner 1248000\ncellsize 1000\n777\n")
	if err := os.WriteFile(filepath.Join(dirs[model.DatasetTerrain], long), []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	g, ok := c.Load(model.DatasetTerrain, id)
	if !ok {
		t.Fatalf("expected tile under long name")
	}
	if v, _ := g.Sample(2684500, 1248500); v != 777 {
		t.Fatalf("sample = %v", v)
	}
}

func TestCache_EvictionBound(t *testing.T) {
	c, dirs := newTestCache(t, 2)
	for e := 0; e < 4; e++ {
		id := tiling.TileID{E: e, N: 0}
		writeTile(t, dirs[model.DatasetTerrain], model.DatasetTerrain, id, float64(100+e))
		if _, ok := c.Load(model.DatasetTerrain, id); !ok {
			t.Fatalf("tile %v must load", id)
		}
	}
	if c.Len() > 2 {
		t.Fatalf("cache exceeded capacity: %d", c.Len())
	}
	// evicted tiles reload transparently
	g, ok := c.Load(model.DatasetTerrain, tiling.TileID{E: 0, N: 0})
	if !ok {
		t.Fatalf("evicted tile must reload")
	}
	if v, _ := g.Sample(500, 500); v != 100 {
		t.Fatalf("reloaded sample = %v", v)
	}
}

// Package source loads building footprints from a cadastral survey export.
package source

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/davras5/swissALTI3D-Volumen/internal/model"
)

// Options control which features of the export count as buildings. The
// cadastral lcsf layer classifies objects through an attribute; only the
// building class is kept.
type Options struct {
	KindProperty string // classifying property; empty keeps every feature
	KindValue    string // value marking a building, e.g. "Gebaeude"
}

// DefaultOptions matches the Swiss AV export convention.
func DefaultOptions() Options {
	return Options{KindProperty: "Art", KindValue: "Gebaeude"}
}

// Load reads a GeoJSON FeatureCollection of footprints in LV95 planar
// coordinates and returns the building records in file order. Features of
// other classes or with non-areal geometry are skipped. A MultiPolygon
// footprint contributes its largest-area member.
func Load(path string, opt Options) ([]model.Building, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read footprints: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("parse footprints %s: %w", path, err)
	}

	buildings := make([]model.Building, 0, len(fc.Features))
	for _, ft := range fc.Features {
		if ft == nil {
			continue
		}
		if opt.KindProperty != "" {
			kind, _ := ft.Properties[opt.KindProperty].(string)
			if kind != opt.KindValue {
				continue
			}
		}
		poly, ok := footprintOf(ft.Geometry)
		if !ok {
			continue
		}
		buildings = append(buildings, model.Building{
			EGID:      egidOf(ft.Properties, poly),
			Footprint: poly,
			Props:     ft.Properties,
		})
	}
	return buildings, nil
}

func footprintOf(g orb.Geometry) (orb.Polygon, bool) {
	switch geom := g.(type) {
	case orb.Polygon:
		return geom, len(geom) > 0
	case orb.MultiPolygon:
		var best orb.Polygon
		bestArea := -1.0
		for _, p := range geom {
			if a := math.Abs(planar.Area(p)); a > bestArea {
				best, bestArea = p, a
			}
		}
		return best, len(best) > 0
	default:
		return nil, false
	}
}

// egidOf extracts the EGID attribute; a record without one gets a stable
// fallback id hashed from its geometry so reruns and reordered inputs
// produce identical ids.
func egidOf(props geojson.Properties, poly orb.Polygon) string {
	switch v := props["EGID"].(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	}
	return FallbackID(poly)
}

// FallbackID derives a deterministic building id from the footprint
// coordinates.
func FallbackID(poly orb.Polygon) string {
	d := xxhash.New()
	var buf [8]byte
	for _, ring := range poly {
		for _, pt := range ring {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(pt[0]))
			_, _ = d.Write(buf[:])
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(pt[1]))
			_, _ = d.Write(buf[:])
		}
	}
	return fmt.Sprintf("building_%016x", d.Sum64())
}

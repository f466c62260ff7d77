package source

import (
	"github.com/paulmach/orb"

	"github.com/davras5/swissALTI3D-Volumen/internal/model"
)

// FilterBBox keeps buildings whose footprint bounding box intersects the
// given box, preserving order.
func FilterBBox(buildings []model.Building, b orb.Bound) []model.Building {
	out := make([]model.Building, 0, len(buildings))
	for _, bld := range buildings {
		if bld.Footprint.Bound().Intersects(b) {
			out = append(out, bld)
		}
	}
	return out
}

// Limit truncates to the first n buildings; n <= 0 means no limit.
func Limit(buildings []model.Building, n int) []model.Building {
	if n <= 0 || n >= len(buildings) {
		return buildings
	}
	return buildings[:n]
}

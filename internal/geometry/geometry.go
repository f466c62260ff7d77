// Package geometry provides the point-in-polygon capability and footprint
// validation for planar (LV95) coordinates.
package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Predicate decides whether a sample point belongs to a footprint. The
// concrete geometry backend stays swappable behind it. Implementations must
// treat points exactly on the polygon boundary as inside.
type Predicate interface {
	Contains(poly orb.Polygon, pt orb.Point) bool
}

// Planar is the default Predicate: a ray-cast interior test with an explicit
// boundary check so on-edge sample points count as inside.
type Planar struct{}

var _ Predicate = Planar{}

func (Planar) Contains(poly orb.Polygon, pt orb.Point) bool {
	if onBoundary(poly, pt) {
		return true
	}
	return planar.PolygonContains(poly, pt)
}

// edge tolerance in meters; footprint coordinates are centimeter-grade
const boundaryEps = 1e-9

func onBoundary(poly orb.Polygon, pt orb.Point) bool {
	for _, ring := range poly {
		for i := 0; i+1 < len(ring); i++ {
			if onSegment(ring[i], ring[i+1], pt) {
				return true
			}
		}
	}
	return false
}

func onSegment(a, b, p orb.Point) bool {
	cross := (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
	if math.Abs(cross) > boundaryEps {
		return false
	}
	dot := (p[0]-a[0])*(b[0]-a[0]) + (p[1]-a[1])*(b[1]-a[1])
	if dot < 0 {
		return false
	}
	lenSq := (b[0]-a[0])*(b[0]-a[0]) + (b[1]-a[1])*(b[1]-a[1])
	return dot <= lenSq
}

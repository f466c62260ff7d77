package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrInvalidFootprint marks a footprint the engine refuses to process. The
// offending building fails fast; the batch continues.
var ErrInvalidFootprint = errors.New("invalid footprint")

// ValidateFootprint rejects polygons the sampling grid cannot handle:
// missing or open rings, rings with fewer than four vertices, non-finite
// coordinates, zero-area outer rings and self-intersecting rings.
func ValidateFootprint(poly orb.Polygon) error {
	if len(poly) == 0 {
		return fmt.Errorf("%w: no rings", ErrInvalidFootprint)
	}
	for ri, ring := range poly {
		if len(ring) < 4 {
			return fmt.Errorf("%w: ring %d has %d vertices, need at least 4", ErrInvalidFootprint, ri, len(ring))
		}
		for _, pt := range ring {
			if !finite(pt[0]) || !finite(pt[1]) {
				return fmt.Errorf("%w: ring %d has a non-finite coordinate", ErrInvalidFootprint, ri)
			}
		}
		if !ring.Closed() {
			return fmt.Errorf("%w: ring %d is not closed", ErrInvalidFootprint, ri)
		}
		if selfIntersects(ring) {
			return fmt.Errorf("%w: ring %d self-intersects", ErrInvalidFootprint, ri)
		}
	}
	if planar.Area(poly) == 0 {
		return fmt.Errorf("%w: zero area", ErrInvalidFootprint)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checks non-adjacent segment pairs for proper crossings; footprint rings
// are small so the quadratic scan is fine
func selfIntersects(ring orb.Ring) bool {
	n := len(ring) - 1 // closed ring, last vertex repeats the first
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // first and last segments share a vertex
			}
			if segmentsCross(ring[i], ring[i+1], ring[j], ring[j+1]) {
				return true
			}
		}
	}
	return false
}

func segmentsCross(a, b, c, d orb.Point) bool {
	d1 := orient(c, d, a)
	d2 := orient(c, d, b)
	d3 := orient(a, b, c)
	d4 := orient(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func orient(a, b, p orb.Point) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func square(x0, y0, x1, y1 float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0},
	}}
}

func TestContains_Interior(t *testing.T) {
	p := square(0, 0, 10, 10)
	var pred Planar
	if !pred.Contains(p, orb.Point{5, 5}) {
		t.Fatalf("interior point must be inside")
	}
	if pred.Contains(p, orb.Point{15, 5}) {
		t.Fatalf("exterior point must be outside")
	}
}

func TestContains_BoundaryIsInside(t *testing.T) {
	p := square(0, 0, 10, 10)
	var pred Planar
	boundary := []orb.Point{
		{0, 5},   // left edge
		{10, 5},  // right edge
		{5, 0},   // bottom edge
		{5, 10},  // top edge
		{0, 0},   // corner
		{10, 10}, // corner
	}
	for _, pt := range boundary {
		if !pred.Contains(p, pt) {
			t.Errorf("boundary point %v must count as inside", pt)
		}
	}
}

func TestContains_Hole(t *testing.T) {
	p := square(0, 0, 10, 10)
	p = append(p, orb.Ring{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}})
	var pred Planar
	if pred.Contains(p, orb.Point{5, 5}) {
		t.Fatalf("point in hole must be outside")
	}
	if !pred.Contains(p, orb.Point{2, 2}) {
		t.Fatalf("point between hole and outer ring must be inside")
	}
}

func TestValidateFootprint(t *testing.T) {
	cases := []struct {
		name string
		poly orb.Polygon
		ok   bool
	}{
		{"valid square", square(0, 0, 10, 10), true},
		{"empty", orb.Polygon{}, false},
		{"too few vertices", orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {0, 0}}}, false},
		{"open ring", orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}, false},
		{"nan coordinate", orb.Polygon{orb.Ring{{0, 0}, {math.NaN(), 0}, {1, 1}, {0, 1}, {0, 0}}}, false},
		{"inf coordinate", orb.Polygon{orb.Ring{{0, 0}, {math.Inf(1), 0}, {1, 1}, {0, 1}, {0, 0}}}, false},
		{"zero area", orb.Polygon{orb.Ring{{0, 0}, {5, 0}, {10, 0}, {5, 0}, {0, 0}}}, false},
		{"bowtie", orb.Polygon{orb.Ring{{0, 0}, {10, 10}, {10, 0}, {0, 10}, {0, 0}}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateFootprint(tc.poly)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatalf("expected error")
				}
				if !errors.Is(err, ErrInvalidFootprint) {
					t.Fatalf("error %v must wrap ErrInvalidFootprint", err)
				}
			}
		})
	}
}

package main

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestParseBBox(t *testing.T) {
	b, err := parseBBox("2684000,1248000,2685000,1249000")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := orb.Bound{Min: orb.Point{2684000, 1248000}, Max: orb.Point{2685000, 1249000}}
	if b != want {
		t.Fatalf("bbox = %v, want %v", b, want)
	}
}

func TestParseBBox_WithSpaces(t *testing.T) {
	if _, err := parseBBox(" 0 , 0 , 10 , 10 "); err != nil {
		t.Fatalf("spaced components must parse: %v", err)
	}
}

func TestParseBBox_Invalid(t *testing.T) {
	for _, s := range []string{"", "1,2,3", "1,2,3,x", "10,0,0,10"} {
		if _, err := parseBBox(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
}

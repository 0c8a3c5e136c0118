package core

import (
	"math"
	"slices"
	"testing"
)

func TestRandomCellsDeterministic(t *testing.T) {
	a := RandomCells(NewRNG(7), 16, 0.4)
	b := RandomCells(NewRNG(7), 16, 0.4)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different soups")
	}
	if len(a) == 0 || len(a) == 256 {
		t.Fatalf("implausible soup size %d", len(a))
	}
}

func TestRandomCellsDensityBounds(t *testing.T) {
	if n := len(RandomCells(NewRNG(1), 8, 0)); n != 0 {
		t.Fatalf("density 0 produced %d cells", n)
	}
	if n := len(RandomCells(NewRNG(1), 8, 1)); n != 64 {
		t.Fatalf("density 1 produced %d cells", n)
	}
	if RandomCells(NewRNG(1), 0, 0.5) != nil {
		t.Fatal("empty grid should have no cells")
	}
}

func TestRandomCellsOutOfRangeDensity(t *testing.T) {
	for _, d := range []float64{-0.5, math.NaN(), math.Inf(-1)} {
		if n := len(RandomCells(NewRNG(1), 8, d)); n != 0 {
			t.Fatalf("density %v produced %d cells", d, n)
		}
	}
	if n := len(RandomCells(NewRNG(1), 8, 3)); n != 64 {
		t.Fatalf("density 3 produced %d cells", n)
	}
}

func TestValidDensity(t *testing.T) {
	for _, d := range []float64{0, 0.35, 1} {
		if !ValidDensity(d) {
			t.Fatalf("density %v rejected", d)
		}
	}
	for _, d := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		if ValidDensity(d) {
			t.Fatalf("density %v accepted", d)
		}
	}
}

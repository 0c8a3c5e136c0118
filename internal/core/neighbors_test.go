package core

import (
	"slices"
	"testing"
)

func fullGrid(t *testing.T, side int) *CellGrid {
	t.Helper()
	live := make([]Coord, 0, side*side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			live = append(live, Coord{Row: r, Col: c})
		}
	}
	g, err := NewCellGrid(side, live)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNeighborIndicesCorner(t *testing.T) {
	got := NeighborIndices(nil, 3, 0)
	slices.Sort(got)
	if !slices.Equal(got, []int{1, 3, 4}) {
		t.Fatalf("corner neighbors = %v", got)
	}
}

func TestNeighborIndicesCounts(t *testing.T) {
	const side = 4
	cases := map[int]int{
		0:  3, // top-left
		3:  3, // top-right
		12: 3, // bottom-left
		15: 3, // bottom-right
		1:  5, // top edge
		4:  5, // left edge
		7:  5, // right edge
		13: 5, // bottom edge
		5:  8,
		10: 8,
	}
	for idx, want := range cases {
		got := NeighborIndices(nil, side, idx)
		if len(got) != want {
			t.Errorf("idx %d: %d neighbors %v, expected %d", idx, len(got), got, want)
		}
		for _, n := range got {
			if n < 0 || n >= side*side {
				t.Fatalf("idx %d: neighbor %d out of bounds", idx, n)
			}
		}
	}
}

func TestCountNeighborsNoWrap(t *testing.T) {
	g := fullGrid(t, 5)
	if n := CountNeighbors(g, 0); n != 3 {
		t.Fatalf("corner count = %d, expected 3", n)
	}
	if n := CountNeighbors(g, 24); n != 3 {
		t.Fatalf("far corner count = %d, expected 3", n)
	}
	if n := CountNeighbors(g, 2); n != 5 {
		t.Fatalf("edge count = %d, expected 5", n)
	}
	if n := CountNeighbors(g, 12); n != 8 {
		t.Fatalf("center count = %d, expected 8", n)
	}
}

func TestCountNeighborsSingleCell(t *testing.T) {
	g := fullGrid(t, 1)
	if n := CountNeighbors(g, 0); n != 0 {
		t.Fatalf("1x1 grid count = %d", n)
	}
}

func TestCountNeighborsIgnoresPending(t *testing.T) {
	g, err := NewCellGrid(3, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < g.Len(); i++ {
		g.StageNext(i, Live)
	}
	if n := CountNeighbors(g, 4); n != 0 {
		t.Fatalf("count read pending buffer: %d", n)
	}
}

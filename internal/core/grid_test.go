package core

import (
	"errors"
	"slices"
	"testing"
)

func TestNewCellGridErrors(t *testing.T) {
	if _, err := NewCellGrid(0, nil); !errors.Is(err, ErrConstruction) {
		t.Fatalf("zero side err = %v", err)
	}
	bad := [][]Coord{
		{{Row: 3, Col: 0}},
		{{Row: 0, Col: 3}},
		{{Row: -1, Col: 1}},
	}
	for _, live := range bad {
		if _, err := NewCellGrid(3, live); !errors.Is(err, ErrConstruction) {
			t.Fatalf("NewCellGrid(3, %v) err = %v", live, err)
		}
	}
}

func TestNewCellGridSeedsBothBuffers(t *testing.T) {
	g, err := NewCellGrid(3, []Coord{{Row: 1, Col: 2}, {Row: 1, Col: 2}})
	if err != nil {
		t.Fatal(err)
	}
	if g.Read(5) != Live || g.LiveCount() != 1 {
		t.Fatalf("expected (1,2) live, live count %d", g.LiveCount())
	}
	// Committing without staging must keep the seed since pending was seeded too.
	g.Commit()
	if g.Read(5) != Live || g.LiveCount() != 1 {
		t.Fatal("seed missing from pending buffer")
	}
}

func TestStageNextDoesNotTouchCurrent(t *testing.T) {
	g, err := NewCellGrid(2, nil)
	if err != nil {
		t.Fatal(err)
	}
	g.StageNext(3, Live)
	if g.Read(3) != Dead {
		t.Fatal("StageNext leaked into the current generation")
	}
	g.Commit()
	if g.Read(3) != Live {
		t.Fatal("Commit did not publish the staged value")
	}
	if !slices.Equal(g.LiveCells(), []Coord{{Row: 1, Col: 1}}) {
		t.Fatalf("LiveCells = %v", g.LiveCells())
	}
}

func TestReadPanicsOutOfRange(t *testing.T) {
	g, err := NewCellGrid(2, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, idx := range []int{-1, 4} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Read(%d) did not panic", idx)
				}
			}()
			g.Read(idx)
		}()
	}
}

func TestSeedRejectsWithoutMutating(t *testing.T) {
	g, err := NewCellGrid(3, []Coord{{Row: 0, Col: 0}})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Seed([]Coord{{Row: 1, Col: 1}, {Row: 5, Col: 5}}); !errors.Is(err, ErrConstruction) {
		t.Fatalf("Seed err = %v", err)
	}
	if g.Read(0) != Live || g.Read(4) != Dead {
		t.Fatal("failed Seed mutated the grid")
	}
}

package core

import "fmt"

// CellGrid stores a square grid of cells in row-major order. It keeps the
// current generation, which is only read while a pass is in progress, and a
// pending buffer that receives the next generation.
type CellGrid struct {
	side int
	cur  []CellState
	nxt  []CellState
}

// NewCellGrid allocates a side*side grid with every cell dead, then marks the
// listed coordinates live in both buffers. A non-positive side or a coordinate
// outside 0..side wraps ErrConstruction.
func NewCellGrid(side int, live []Coord) (*CellGrid, error) {
	if side <= 0 {
		return nil, fmt.Errorf("%w: grid side must be positive, got %d", ErrConstruction, side)
	}
	g := &CellGrid{
		side: side,
		cur:  make([]CellState, side*side),
		nxt:  make([]CellState, side*side),
	}
	if err := g.Seed(live); err != nil {
		return nil, err
	}
	return g, nil
}

// Side returns the grid edge length.
func (g *CellGrid) Side() int { return g.side }

// Len returns the number of cells.
func (g *CellGrid) Len() int { return len(g.cur) }

// Index returns the linear index for (row, col).
func (g *CellGrid) Index(row, col int) int { return row*g.side + col }

// Read returns the current-generation state at idx.
func (g *CellGrid) Read(idx int) CellState {
	g.checkIndex(idx)
	return g.cur[idx]
}

// StageNext records the next-generation state for idx. The current
// generation is unaffected until Commit.
func (g *CellGrid) StageNext(idx int, state CellState) {
	g.checkIndex(idx)
	g.nxt[idx] = state
}

// Commit makes the pending buffer current by swapping the two buffers. The
// new pending buffer is stale and must be fully restaged before the next
// Commit.
func (g *CellGrid) Commit() {
	g.cur, g.nxt = g.nxt, g.cur
}

// Seed clears both buffers and marks the listed coordinates live. On error
// the grid is left untouched.
func (g *CellGrid) Seed(live []Coord) error {
	for _, c := range live {
		if c.Row < 0 || c.Row >= g.side || c.Col < 0 || c.Col >= g.side {
			return fmt.Errorf("%w: cell (%d,%d) outside %dx%d grid", ErrConstruction, c.Row, c.Col, g.side, g.side)
		}
	}
	clear(g.cur)
	clear(g.nxt)
	for _, c := range live {
		idx := g.Index(c.Row, c.Col)
		g.cur[idx] = Live
		g.nxt[idx] = Live
	}
	return nil
}

// LiveCount returns the number of live cells in the current generation.
func (g *CellGrid) LiveCount() int {
	n := 0
	for _, s := range g.cur {
		if s == Live {
			n++
		}
	}
	return n
}

// LiveCells lists the live cells of the current generation in index order.
func (g *CellGrid) LiveCells() []Coord {
	out := make([]Coord, 0)
	for i, s := range g.cur {
		if s == Live {
			out = append(out, Coord{Row: i / g.side, Col: i % g.side})
		}
	}
	return out
}

func (g *CellGrid) checkIndex(idx int) {
	if idx < 0 || idx >= len(g.cur) {
		panic(fmt.Sprintf("core: cell index %d outside grid of %d cells", idx, len(g.cur)))
	}
}

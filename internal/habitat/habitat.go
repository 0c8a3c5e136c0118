// Package habitat ties a CellGrid and a RuleTable to a placement on the
// display canvas and exposes the pull-based stepping protocol.
//
// A display driver reads cells with Pull, which also stages the next
// generation for the cell it returns. After exactly Len() pulls (one cycle)
// the driver calls AdvanceGeneration. Any driver honoring that cadence works;
// it does not have to visit pixels at all.
package habitat

import (
	"fmt"
	"strconv"

	"habitat/internal/core"
)

// Config is the loader output a Habitat is built from.
type Config struct {
	Side   int
	Origin core.Point
	Rule   core.RuleTable
	Live   []core.Coord
}

// Habitat is a placed automaton instance. It is not safe for concurrent use;
// the goroutine driving the display owns it.
type Habitat struct {
	grid   *core.CellGrid
	rule   core.RuleTable
	origin core.Point
	seed   []core.Coord

	idx    int
	pulled int
	gen    int
}

// New builds a Habitat. Invalid sizes or seed cells wrap core.ErrConstruction.
func New(cfg Config) (*Habitat, error) {
	grid, err := core.NewCellGrid(cfg.Side, cfg.Live)
	if err != nil {
		return nil, err
	}
	return &Habitat{
		grid:   grid,
		rule:   cfg.Rule,
		origin: cfg.Origin,
		seed:   append([]core.Coord(nil), cfg.Live...),
	}, nil
}

// Side returns the grid edge length, which is also the rectangle side in pixels.
func (h *Habitat) Side() int { return h.grid.Side() }

// Len returns the number of cells, i.e. the number of pulls in a cycle.
func (h *Habitat) Len() int { return h.grid.Len() }

// Origin returns the top-left corner of the habitat on the canvas.
func (h *Habitat) Origin() core.Point { return h.origin }

// SetOrigin moves the habitat on the canvas. The grid is untouched.
func (h *Habitat) SetOrigin(p core.Point) { h.origin = p }

// Rule returns the rule table.
func (h *Habitat) Rule() core.RuleTable { return h.rule }

// Cursor returns the index the next Pull will read.
func (h *Habitat) Cursor() int { return h.idx }

// Generation returns the number of committed generations since the last reset.
func (h *Habitat) Generation() int { return h.gen }

// LiveCount returns the live cells in the current generation.
func (h *Habitat) LiveCount() int { return h.grid.LiveCount() }

// LiveCells lists the live cells in the current generation.
func (h *Habitat) LiveCells() []core.Coord { return h.grid.LiveCells() }

// Peek returns the current-generation cell at idx without staging anything.
func (h *Habitat) Peek(idx int) core.Cell {
	return core.Cell{State: h.grid.Read(idx)}
}

// Pull returns the current value at the cursor, stages that cell's next
// generation and advances the cursor modulo Len.
func (h *Habitat) Pull() core.Cell {
	idx := h.idx
	cur := h.grid.Read(idx)
	h.grid.StageNext(idx, h.rule.NextState(cur, core.CountNeighbors(h.grid, idx)))
	h.idx = (idx + 1) % h.grid.Len()
	h.pulled++
	return core.Cell{State: cur}
}

// PullAt pulls every cell from the cursor up to and including idx and returns
// the cell at idx. Drivers that skip part of the rectangle, such as a canvas
// clipped by a small window, use it to stay aligned with the cursor. idx must
// not lie behind the cursor within the cycle.
func (h *Habitat) PullAt(idx int) core.Cell {
	if idx < h.idx || idx >= h.grid.Len() {
		panic(fmt.Sprintf("habitat: PullAt(%d) behind cursor %d or outside %d cells", idx, h.idx, h.grid.Len()))
	}
	for h.idx < idx {
		h.Pull()
	}
	return h.Pull()
}

// Drain pulls the cells not yet pulled in the current cycle. If nothing has
// been pulled since the last commit a whole cycle is pulled.
func (h *Habitat) Drain() {
	n := h.grid.Len()
	rest := n - h.pulled%n
	if h.pulled > 0 && rest == n {
		return
	}
	for i := 0; i < rest; i++ {
		h.Pull()
	}
}

// AdvanceGeneration commits the staged generation. It must follow a complete
// cycle; committing mid-cycle panics. A call with no pulls since the previous
// commit leaves the current generation as it is, so the same generation is
// simply displayed again.
func (h *Habitat) AdvanceGeneration() {
	if h.pulled == 0 {
		return
	}
	if h.pulled%h.grid.Len() != 0 {
		panic(fmt.Sprintf("habitat: AdvanceGeneration after %d pulls, cycle is %d", h.pulled, h.grid.Len()))
	}
	h.grid.Commit()
	h.pulled = 0
	h.gen++
}

// Step runs one full cycle and commits it.
func (h *Habitat) Step() {
	h.Drain()
	h.AdvanceGeneration()
}

// Reset restores the seed cells and rewinds the cursor and generation count.
func (h *Habitat) Reset() {
	// The seed was validated at construction.
	_ = h.grid.Seed(h.seed)
	h.rewind()
}

// Randomize replaces the grid with a random soup and makes it the new seed.
// Densities outside [0,1] clamp; NaN leaves the grid empty.
func (h *Habitat) Randomize(seed int64, density float64) {
	h.seed = core.RandomCells(core.NewRNG(seed), h.grid.Side(), density)
	h.Reset()
}

func (h *Habitat) rewind() {
	h.idx = 0
	h.pulled = 0
	h.gen = 0
}

// Parameters describes the habitat for status displays.
func (h *Habitat) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Habitat",
			Params: []core.Parameter{
				{Key: "side", Label: "Side", Value: strconv.Itoa(h.Side())},
				{Key: "origin", Label: "Origin", Value: fmt.Sprintf("%d,%d", h.origin.X, h.origin.Y)},
				{Key: "rule", Label: "Rule", Value: h.rule.String()},
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(h.gen)},
				{Key: "live", Label: "Live", Value: strconv.Itoa(h.LiveCount())},
			},
		},
	}}
}

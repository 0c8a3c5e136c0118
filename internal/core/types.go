package core

// CellState is the state of a single cell. The zero value is Dead.
type CellState uint8

const (
	// Dead marks an empty cell.
	Dead CellState = iota
	// Live marks an occupied cell.
	Live
)

// String returns "live" or "dead".
func (s CellState) String() string {
	if s == Live {
		return "live"
	}
	return "dead"
}

// Cell wraps exactly one CellState as handed to display drivers.
type Cell struct {
	State CellState
}

// Alive reports whether the cell is live.
func (c Cell) Alive() bool { return c.State == Live }

// Coord addresses a grid cell by row and column.
type Coord struct {
	Row int
	Col int
}

// Point is a position in canvas (pixel) coordinates.
type Point struct {
	X int
	Y int
}

package core

// NeighborIndices appends to dst the in-bounds Moore neighbors of idx in a
// grid of the given side. There is no wraparound: edge and corner cells have
// fewer than eight neighbors.
func NeighborIndices(dst []int, side, idx int) []int {
	onStart := idx%side == 0
	onEnd := idx%side == side-1
	atTop := idx < side
	atBottom := idx >= side*(side-1)

	if !onEnd {
		dst = append(dst, idx+1)
	}
	if !onStart {
		dst = append(dst, idx-1)
	}
	if !atTop {
		dst = append(dst, idx-side)
	}
	if !atBottom {
		dst = append(dst, idx+side)
	}
	if !onEnd && !atTop {
		dst = append(dst, idx-side+1)
	}
	if !onStart && !atTop {
		dst = append(dst, idx-side-1)
	}
	if !onEnd && !atBottom {
		dst = append(dst, idx+side+1)
	}
	if !onStart && !atBottom {
		dst = append(dst, idx+side-1)
	}
	return dst
}

// CountNeighbors returns the number of live Moore neighbors of idx in the
// current generation. Pending values are never consulted.
func CountNeighbors(g *CellGrid, idx int) int {
	g.checkIndex(idx)
	var buf [MaxNeighbors]int
	n := 0
	for _, i := range NeighborIndices(buf[:0], g.side, idx) {
		if g.cur[i] == Live {
			n++
		}
	}
	return n
}

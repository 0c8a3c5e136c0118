package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// ValidDensity reports whether d is a usable soup density in [0,1].
func ValidDensity(d float64) bool {
	return d >= 0 && d <= 1
}

// RandomCells returns a soup of live cells for a side*side grid where each
// cell is live with the given density. Densities outside [0,1] clamp to the
// nearest bound; NaN yields no cells.
func RandomCells(r *RNG, side int, density float64) []Coord {
	if side <= 0 {
		return nil
	}
	hint := 0
	if density > 0 {
		hint = int(float64(side*side) * min(density, 1))
	}
	out := make([]Coord, 0, hint+1)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			if r.Chance(density) {
				out = append(out, Coord{Row: row, Col: col})
			}
		}
	}
	return out
}

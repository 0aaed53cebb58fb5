package grid

import "tilelife/internal/core"

// Randomize makes each cell alive with probability density and dead
// otherwise. It returns the number of live cells and resets the generation
// counter. Highlights are not recomputed.
func (g *Grid) Randomize(r *core.RNG, density float64) int {
	live := 0
	for i := range g.cells {
		if r.Chance(density) {
			g.cells[i].State = Alive
			live++
			continue
		}
		g.cells[i].State = Dead
	}
	g.generation = 0
	return live
}

// Population counts the cells that are exactly Alive.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.State == Alive {
			n++
		}
	}
	return n
}

// Package pick applies clicks resolved through the picking pass to a grid.
package pick

import (
	"tilelife/internal/codec"
	"tilelife/internal/grid"
	"tilelife/internal/topology"
)

// Mutation describes the effect of one click.
type Mutation struct {
	Row, Col int
	Index    int
	Before   float32
	After    float32
	// Touched lists every index whose state was written, clicked cell first.
	Touched []int
}

// Click decodes a color read back from the picking pass and toggles the
// cell under it. It reports false for background colors and colors that do
// not decode to a cell of g.
func Click(g *grid.Grid, c codec.Color) (Mutation, bool) {
	if codec.IsBackground(c) {
		return Mutation{}, false
	}
	row, col := codec.Decode(c)
	if !g.InBounds(row, col) {
		return Mutation{}, false
	}
	return Toggle(g, row, col), true
}

// Toggle flips the cell at (row, col) between alive and not alive and keeps
// the highlight of its neighbors consistent.
//
// A cell that is not alive becomes alive and its non-alive neighbors become
// highlighted. An alive cell becomes dead, or highlighted if it still has a
// live neighbor, and each non-alive neighbor is re-evaluated the same way.
func Toggle(g *grid.Grid, row, col int) Mutation {
	if !g.InBounds(row, col) {
		return Mutation{Row: row, Col: col, Index: -1}
	}
	idx := g.Index(row, col)
	neighbors := g.Neighbors(make([]int, 0, topology.MaxNeighbors), row, col)
	cells := g.Cells()

	m := Mutation{
		Row:     row,
		Col:     col,
		Index:   idx,
		Before:  cells[idx].State,
		Touched: append(make([]int, 0, len(neighbors)+1), idx),
	}

	if cells[idx].State < grid.Alive {
		cells[idx].State = grid.Alive
		for _, n := range neighbors {
			if cells[n].State < grid.Alive {
				cells[n].State = grid.Highlight
				m.Touched = append(m.Touched, n)
			}
		}
		m.After = grid.Alive
		return m
	}

	cells[idx].State = highlightFor(g, row, col)
	for _, n := range neighbors {
		if cells[n].State == grid.Alive {
			continue
		}
		nr, nc := g.Coords(n)
		cells[n].State = highlightFor(g, nr, nc)
		m.Touched = append(m.Touched, n)
	}
	m.After = cells[idx].State
	return m
}

// Rehighlight recomputes the state of every cell that is not alive, so that
// exactly the cells next to a live cell are highlighted.
func Rehighlight(g *grid.Grid) {
	cells := g.Cells()
	for i := range cells {
		if cells[i].State == grid.Alive {
			continue
		}
		row, col := g.Coords(i)
		cells[i].State = highlightFor(g, row, col)
	}
}

func highlightFor(g *grid.Grid, row, col int) float32 {
	if g.LiveNeighbors(row, col) == 0 {
		return grid.Dead
	}
	return grid.Highlight
}

// Package life advances a tiled grid by one generation of a threshold rule.
package life

import (
	"tilelife/internal/grid"
	"tilelife/internal/topology"
)

// Engine computes generations. It reuses its buffers between steps, so one
// Engine should serve one goroutine.
type Engine struct {
	Rules Rules

	next      []float32
	neighbors []int
	changed   bool
}

// NewEngine returns an Engine using rules.
func NewEngine(rules Rules) *Engine {
	return &Engine{Rules: rules, neighbors: make([]int, 0, topology.MaxNeighbors)}
}

// Step advances g by one generation using the rule configured for its
// tiling. Every cell sees the states of the current generation.
func (e *Engine) Step(g *grid.Grid) {
	e.StepWith(g, e.Rules.For(g.Mode()))
}

// StepWith advances g by one generation using rule.
func (e *Engine) StepWith(g *grid.Grid, rule Rule) {
	cells := g.Cells()
	if cap(e.next) < len(cells) {
		e.next = make([]float32, len(cells))
	}
	e.next = e.next[:len(cells)]
	e.changed = false

	rows, cols := g.Rows(), g.Cols()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			e.neighbors = g.Neighbors(e.neighbors[:0], row, col)
			n := 0
			for _, idx := range e.neighbors {
				if cells[idx].State == grid.Alive {
					n++
				}
			}
			idx := row*cols + col
			cur := cells[idx].State
			nxt := rule.Next(cur, n)
			if (cur == grid.Alive) != (nxt == grid.Alive) {
				e.changed = true
			}
			e.next[idx] = nxt
		}
	}
	g.Advance(e.next)
}

// Stable reports whether the last step left every cell's alive/dead status
// unchanged.
func (e *Engine) Stable() bool { return !e.changed }

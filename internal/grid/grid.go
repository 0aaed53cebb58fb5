// Package grid holds the cells of one tiled automaton.
package grid

import (
	"errors"
	"fmt"

	"tilelife/internal/codec"
	"tilelife/internal/topology"
)

// Cell states.
const (
	Dead      float32 = 0
	Highlight float32 = 0.5
	Alive     float32 = 1
)

var (
	// ErrEmpty is returned when a viewport or size yields no cells.
	ErrEmpty = errors.New("grid: no cells fit")
	// ErrCodecRange is returned when a cell's picking color would not
	// decode back to its coordinates.
	ErrCodecRange = errors.New("grid: dimensions exceed picking codec range")
)

// Cell is one instance of the tiled grid.
type Cell struct {
	Color codec.Color
	X, Y  float32
	Flip  float32
	State float32
}

// Grid stores cells in row-major order. Its tiling never changes; a new
// tiling needs a new Grid.
type Grid struct {
	cells      []Cell
	rows, cols int
	tiling     topology.Tiling
	size       SizeClass
	cellSize   float32
	generation int

	scratch []int
}

// New lays out a grid of the given tiling and size class inside a
// viewport of width x height pixels.
func New(mode topology.Mode, size SizeClass, width, height int) (*Grid, error) {
	tiling := topology.For(mode)
	bounds := topology.ViewportBounds(width, height)
	edge := size.Edge()
	rows, cols := tiling.Dims(bounds, edge)
	return build(tiling, size, rows, cols, bounds, edge)
}

// NewWithDims builds a rows x cols grid laid out with the smallest cells.
func NewWithDims(mode topology.Mode, rows, cols int) (*Grid, error) {
	size := XS
	edge := size.Edge()
	bounds := topology.Bounds{
		MinX: topology.Inset,
		MinY: topology.Inset,
		MaxX: topology.Inset + float32(cols)*edge,
		MaxY: topology.Inset + float32(rows)*edge,
	}
	return build(topology.For(mode), size, rows, cols, bounds, edge)
}

func build(tiling topology.Tiling, size SizeClass, rows, cols int, b topology.Bounds, edge float32) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s %dx%d: %w", tiling.Mode(), rows, cols, ErrEmpty)
	}
	if !codec.Default.Fits(rows, cols) {
		return nil, fmt.Errorf("%s %dx%d: %w", tiling.Mode(), rows, cols, ErrCodecRange)
	}
	g := &Grid{
		cells:    make([]Cell, rows*cols),
		rows:     rows,
		cols:     cols,
		tiling:   tiling,
		size:     size,
		cellSize: edge,
		scratch:  make([]int, 0, topology.MaxNeighbors),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := tiling.Place(row, col, b, edge)
			g.cells[row*cols+col] = Cell{
				Color: codec.Encode(row, col),
				X:     p.X,
				Y:     p.Y,
				Flip:  p.Flip,
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Mode returns the tiling mode.
func (g *Grid) Mode() topology.Mode { return g.tiling.Mode() }

// Tiling returns the tiling implementation the grid was built with.
func (g *Grid) Tiling() topology.Tiling { return g.tiling }

// Size returns the size class the grid was built with.
func (g *Grid) Size() SizeClass { return g.size }

// CellSize returns the cell edge in pixels.
func (g *Grid) CellSize() float32 { return g.cellSize }

// Generation returns how many steps have been applied.
func (g *Grid) Generation() int { return g.generation }

// Cells exposes the backing slice. Callers outside the owning loop must
// treat it as read-only.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear index of (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// Coords returns the (row, col) of linear index i.
func (g *Grid) Coords(i int) (int, int) { return i / g.cols, i % g.cols }

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < g.rows && col < g.cols
}

// State returns the state at (row, col), or Dead when out of range.
func (g *Grid) State(row, col int) float32 {
	if !g.InBounds(row, col) {
		return Dead
	}
	return g.cells[g.Index(row, col)].State
}

// SetState writes the state at (row, col). Out-of-range writes are ignored.
func (g *Grid) SetState(row, col int, s float32) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[g.Index(row, col)].State = s
}

// Flip returns the orientation sign at (row, col).
func (g *Grid) Flip(row, col int) float32 {
	if !g.InBounds(row, col) {
		return 1
	}
	return g.cells[g.Index(row, col)].Flip
}

// Neighbors appends the indices adjacent to (row, col) to dst.
func (g *Grid) Neighbors(dst []int, row, col int) []int {
	return g.tiling.Neighbors(dst, row, col, g)
}

// LiveNeighbors counts adjacent cells that are exactly Alive.
func (g *Grid) LiveNeighbors(row, col int) int {
	g.scratch = g.tiling.Neighbors(g.scratch[:0], row, col, g)
	n := 0
	for _, idx := range g.scratch {
		if g.cells[idx].State == Alive {
			n++
		}
	}
	return n
}

// Advance replaces every state with next and counts one generation. next
// must hold one state per cell.
func (g *Grid) Advance(next []float32) {
	if len(next) != len(g.cells) {
		panic(fmt.Sprintf("grid: Advance with %d states for %d cells", len(next), len(g.cells)))
	}
	for i := range g.cells {
		g.cells[i].State = next[i]
	}
	g.generation++
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].State = Dead
	}
	g.generation = 0
}

// States copies the current states into dst, growing it as needed.
func (g *Grid) States(dst []float32) []float32 {
	dst = dst[:0]
	for _, c := range g.cells {
		dst = append(dst, c.State)
	}
	return dst
}

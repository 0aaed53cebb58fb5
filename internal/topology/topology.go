// Package topology describes how cells of each tiling are laid out on screen
// and which cells are adjacent.
package topology

import (
	"fmt"
	"strings"
)

// MaxNeighbors is the largest neighborhood any tiling produces.
const MaxNeighbors = 12

// Mode enumerates the supported tilings.
type Mode uint8

const (
	Square Mode = iota
	Triangle
	Hexagon
)

// Modes lists every tiling in cycling order.
var Modes = []Mode{Square, Triangle, Hexagon}

func (m Mode) String() string {
	switch m {
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Hexagon:
		return "hexagon"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Next returns the tiling that follows m when cycling.
func (m Mode) Next() Mode {
	return Modes[(int(m)+1)%len(Modes)]
}

// ParseMode resolves a tiling by name. Aliases from the shape names
// (tetragon, trigon) are accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square", "tetragon", "sq":
		return Square, nil
	case "triangle", "trigon", "tri":
		return Triangle, nil
	case "hexagon", "hex":
		return Hexagon, nil
	}
	return Square, fmt.Errorf("topology: unknown mode %q", s)
}

// Bounds is the rectangle cells are laid out in, bottom-left origin.
type Bounds struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// Inset is the margin left around the grid inside its viewport.
const Inset = 5

// ViewportBounds returns the layout rectangle for a viewport of w x h pixels.
func ViewportBounds(w, h int) Bounds {
	return Bounds{MinX: Inset, MinY: Inset, MaxX: float32(w) - Inset, MaxY: float32(h) - Inset}
}

// Dx returns the width of the rectangle.
func (b Bounds) Dx() float32 { return b.MaxX - b.MinX }

// Dy returns the height of the rectangle.
func (b Bounds) Dy() float32 { return b.MaxY - b.MinY }

// Placement is the screen position and orientation of one cell.
type Placement struct {
	X, Y float32
	Flip float32
}

// Lattice is the read-only view of a grid the resolvers need.
type Lattice interface {
	Rows() int
	Cols() int
	Flip(row, col int) float32
}

// Tiling captures everything that differs between cell shapes.
type Tiling interface {
	Mode() Mode
	// Dims returns how many rows and columns of cells with edge size fit
	// in b.
	Dims(b Bounds, size float32) (rows, cols int)
	// Place returns the center and flip of the cell at (row, col).
	Place(row, col int, b Bounds, size float32) Placement
	// Neighbors appends the linear indices adjacent to (row, col) to dst.
	// Cells outside the lattice are skipped, never wrapped.
	Neighbors(dst []int, row, col int, l Lattice) []int
}

var tilings = map[Mode]Tiling{
	Square:   squareTiling{},
	Triangle: triangleTiling{},
	Hexagon:  hexagonTiling{},
}

// For returns the tiling implementation for m. Unknown modes fall back to
// squares.
func For(m Mode) Tiling {
	if t, ok := tilings[m]; ok {
		return t
	}
	return squareTiling{}
}

// inLattice reports whether (row, col) addresses a cell of l.
func inLattice(l Lattice, row, col int) bool {
	return row >= 0 && col >= 0 && row < l.Rows() && col < l.Cols()
}

// appendIf appends the index of (row, col) when it lies inside l.
func appendIf(dst []int, l Lattice, row, col int) []int {
	if !inLattice(l, row, col) {
		return dst
	}
	return append(dst, row*l.Cols()+col)
}

package topology

import "github.com/chewxy/math32"

// Hexagons use an offset layout: odd rows are shifted half a cell right.
type hexagonTiling struct{}

func (hexagonTiling) Mode() Mode { return Hexagon }

func (hexagonTiling) Dims(b Bounds, size float32) (int, int) {
	if size <= 0 {
		return 0, 0
	}
	return int(math32.Floor(b.Dy() / (size * 0.8))), int(math32.Floor(b.Dx() / size))
}

func (hexagonTiling) Place(row, col int, b Bounds, size float32) Placement {
	half := size * 0.5
	x := b.MinX + half + float32(col)*size
	if row%2 != 0 {
		x += half
	}
	return Placement{
		X:    x,
		Y:    b.MinY + half + float32(row)*size*0.75,
		Flip: 1,
	}
}

func (hexagonTiling) Neighbors(dst []int, row, col int, l Lattice) []int {
	if !inLattice(l, row, col) {
		return dst
	}
	dst = appendIf(dst, l, row, col+1)
	dst = appendIf(dst, l, row, col-1)
	dst = appendIf(dst, l, row-1, col)
	dst = appendIf(dst, l, row+1, col)
	if row%2 != 0 {
		dst = appendIf(dst, l, row-1, col+1)
		dst = appendIf(dst, l, row+1, col+1)
		return dst
	}
	dst = appendIf(dst, l, row+1, col-1)
	dst = appendIf(dst, l, row-1, col-1)
	return dst
}

package topology

import "github.com/chewxy/math32"

// Triangles alternate between pointing up and down. A cell's flip sign
// decides which row its two outer diagonal neighbors sit in.
type triangleTiling struct{}

func (triangleTiling) Mode() Mode { return Triangle }

func (triangleTiling) Dims(b Bounds, size float32) (int, int) {
	if size <= 0 {
		return 0, 0
	}
	rows := int(math32.Floor(b.Dy() / (size * 0.8)))
	cols := int(math32.Floor(b.Dx()/(size*0.5) - 1))
	if cols < 0 {
		cols = 0
	}
	return rows, cols
}

func (triangleTiling) Place(row, col int, b Bounds, size float32) Placement {
	half := size * 0.5
	flip := float32(1)
	if (row+col)%2 != 0 {
		flip = -1
	}
	return Placement{
		X:    b.MinX + half + float32(col)*half,
		Y:    b.MinY + half + float32(row)*size*0.8,
		Flip: flip,
	}
}

func (triangleTiling) Neighbors(dst []int, row, col int, l Lattice) []int {
	if !inLattice(l, row, col) {
		return dst
	}
	dst = squareTiling{}.Neighbors(dst, row, col, l)
	dst = appendIf(dst, l, row, col+2)
	dst = appendIf(dst, l, row, col-2)

	outer := row + 1
	if l.Flip(row, col) > 0 {
		outer = row - 1
	}
	dst = appendIf(dst, l, outer, col-2)
	dst = appendIf(dst, l, outer, col+2)
	return dst
}

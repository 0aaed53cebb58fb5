package topology

import "github.com/chewxy/math32"

type squareTiling struct{}

func (squareTiling) Mode() Mode { return Square }

func (squareTiling) Dims(b Bounds, size float32) (int, int) {
	if size <= 0 {
		return 0, 0
	}
	return int(math32.Floor(b.Dy() / size)), int(math32.Floor(b.Dx() / size))
}

func (squareTiling) Place(row, col int, b Bounds, size float32) Placement {
	half := size * 0.5
	return Placement{
		X:    b.MinX + half + float32(col)*size,
		Y:    b.MinY + half + float32(row)*size,
		Flip: 1,
	}
}

// Neighbors returns the Moore neighborhood.
func (squareTiling) Neighbors(dst []int, row, col int, l Lattice) []int {
	if !inLattice(l, row, col) {
		return dst
	}
	dst = appendIf(dst, l, row, col+1)
	dst = appendIf(dst, l, row, col-1)
	dst = appendIf(dst, l, row-1, col)
	dst = appendIf(dst, l, row+1, col)
	dst = appendIf(dst, l, row+1, col+1)
	dst = appendIf(dst, l, row+1, col-1)
	dst = appendIf(dst, l, row-1, col+1)
	dst = appendIf(dst, l, row-1, col-1)
	return dst
}

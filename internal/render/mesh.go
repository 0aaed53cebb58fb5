package render

import (
	"image/color"
	"math"

	"github.com/chewxy/math32"

	"tilelife/internal/codec"
)

// Pass selects what a mesh is built for.
type Pass uint8

const (
	// PassCells fills each cell with its state color, slightly inset.
	PassCells Pass = iota
	// PassOutline draws the cell edges as thin quads.
	PassOutline
	// PassPick fills each cell with its picking color, edge to edge.
	PassPick
)

// MaxBatchVertices is the most vertices one batch can address with
// 16-bit indices.
const MaxBatchVertices = math.MaxUint16

const (
	cellInset    = 0.92
	outlineWidth = 1
)

// Vertex is a screen-space vertex with a normalized color. Screen space has
// its origin at the top-left corner.
type Vertex struct {
	X, Y       float32
	R, G, B, A float32
}

// Mesh is a reusable batch of triangles.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Reset empties the mesh, keeping its storage.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// Build resets m and fills it with the instances of b starting at from, for
// a viewport height pixels tall. It stops before MaxBatchVertices would be
// exceeded and returns the index of the first instance not added; callers
// loop until it returns b.Len().
func (m *Mesh) Build(b *InstanceBuffer, from int, pass Pass, height float32, palette []color.RGBA) int {
	m.Reset()
	shape := ShapeFor(b.Mode())
	per := len(shape.Vertices)
	if pass == PassOutline {
		per = len(shape.Wire) / 2 * 4
	}
	size := b.CellSize()

	i := from
	for ; i < b.Len(); i++ {
		if len(m.Vertices)+per > MaxBatchVertices {
			break
		}
		inst := b.Instance(i)
		switch pass {
		case PassOutline:
			m.appendOutline(shape, inst, size, height)
		case PassPick:
			m.appendFilled(shape, inst, size, height, 1, pickColor(inst.Color))
		default:
			m.appendFilled(shape, inst, size, height, cellInset, StateColor(palette, inst.State))
		}
	}
	return i
}

// project maps a shape-space point of inst to screen space.
func project(inst Instance, p [2]float32, size, scale, height float32) (float32, float32) {
	x := inst.X + p[0]*size*scale
	y := inst.Y + p[1]*size*scale*inst.Flip
	return x, height - y
}

func (m *Mesh) appendFilled(shape Shape, inst Instance, size, height, scale float32, c color.RGBA) {
	base := uint16(len(m.Vertices))
	r, g, b, a := normalize(c)
	for _, p := range shape.Vertices {
		x, y := project(inst, p, size, scale, height)
		m.Vertices = append(m.Vertices, Vertex{X: x, Y: y, R: r, G: g, B: b, A: a})
	}
	for _, idx := range shape.Solid {
		m.Indices = append(m.Indices, base+idx)
	}
}

func (m *Mesh) appendOutline(shape Shape, inst Instance, size, height float32) {
	r, g, b, a := normalize(OutlineColor)
	for e := 0; e+1 < len(shape.Wire); e += 2 {
		ax, ay := project(inst, shape.Vertices[shape.Wire[e]], size, 1, height)
		bx, by := project(inst, shape.Vertices[shape.Wire[e+1]], size, 1, height)
		dx, dy := bx-ax, by-ay
		length := math32.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx := -dy / length * outlineWidth / 2
		ny := dx / length * outlineWidth / 2

		base := uint16(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			Vertex{X: ax + nx, Y: ay + ny, R: r, G: g, B: b, A: a},
			Vertex{X: ax - nx, Y: ay - ny, R: r, G: g, B: b, A: a},
			Vertex{X: bx - nx, Y: by - ny, R: r, G: g, B: b, A: a},
			Vertex{X: bx + nx, Y: by + ny, R: r, G: g, B: b, A: a},
		)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
}

func pickColor(c codec.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func normalize(c color.RGBA) (float32, float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

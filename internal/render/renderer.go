//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"tilelife/internal/codec"
	"tilelife/internal/grid"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var backgroundColor = color.RGBA{R: 8, G: 8, B: 10, A: 255}

// GridRenderer draws a grid from its instance buffer and answers picking
// queries against it.
type GridRenderer struct {
	w, h int

	buf     InstanceBuffer
	palette []color.RGBA

	view *ebiten.Image
	pick *ebiten.Image

	mesh      Mesh
	vertices  []ebiten.Vertex
	pickDirty bool
}

// NewGridRenderer allocates a renderer for a viewport of w x h pixels.
func NewGridRenderer(w, h int) *GridRenderer {
	return &GridRenderer{
		w:         w,
		h:         h,
		palette:   DefaultPalette,
		view:      ebiten.NewImage(w, h),
		pick:      ebiten.NewImage(w, h),
		pickDirty: true,
	}
}

// Recreate reallocates the instance buffer for a new grid.
func (r *GridRenderer) Recreate(g *grid.Grid) {
	r.buf.Recreate(g)
	r.pickDirty = true
}

// WriteStates rewrites the state column for an unchanged grid.
func (r *GridRenderer) WriteStates(g *grid.Grid) error {
	return r.buf.WriteStates(g)
}

// Size returns the viewport dimensions.
func (r *GridRenderer) Size() (int, int) { return r.w, r.h }

// Draw renders the cells into the viewport image and draws it onto dst at
// offsetX.
func (r *GridRenderer) Draw(dst *ebiten.Image, offsetX int) {
	r.view.Fill(backgroundColor)
	r.drawPass(r.view, PassCells, &ebiten.DrawTrianglesOptions{})
	r.drawPass(r.view, PassOutline, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	dst.DrawImage(r.view, op)
}

// PickImage returns the picking pass, rendering it first if the grid
// changed shape.
func (r *GridRenderer) PickImage() *ebiten.Image {
	if r.pickDirty {
		r.renderPick()
	}
	return r.pick
}

// PickAt returns the picking color under device pixel (x, y), with y
// measured from the bottom of the viewport. It reports false outside the
// viewport.
func (r *GridRenderer) PickAt(x, y int) (codec.Color, bool) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return codec.Background, false
	}
	img := r.PickImage()
	cr, cg, cb, _ := img.At(x, r.h-1-y).RGBA()
	return codec.Color{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8)}, true
}

// renderPick draws every cell in its codec color with no blending or
// anti-aliasing, so a read-back pixel carries the exact color.
func (r *GridRenderer) renderPick() {
	r.pick.Fill(color.RGBA{R: codec.Background.R, G: codec.Background.G, B: codec.Background.B, A: 255})
	r.drawPass(r.pick, PassPick, &ebiten.DrawTrianglesOptions{
		Blend:          ebiten.BlendCopy,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		Filter:         ebiten.FilterNearest,
	})
	r.pickDirty = false
}

func (r *GridRenderer) drawPass(dst *ebiten.Image, pass Pass, op *ebiten.DrawTrianglesOptions) {
	height := float32(r.h)
	for from := 0; from < r.buf.Len(); {
		next := r.mesh.Build(&r.buf, from, pass, height, r.palette)
		if next == from {
			return
		}
		r.vertices = r.vertices[:0]
		for _, v := range r.mesh.Vertices {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   v.X,
				DstY:   v.Y,
				SrcX:   1,
				SrcY:   1,
				ColorR: v.R,
				ColorG: v.G,
				ColorB: v.B,
				ColorA: v.A,
			})
		}
		dst.DrawTriangles(r.vertices, r.mesh.Indices, whiteSubImage, op)
		from = next
	}
}

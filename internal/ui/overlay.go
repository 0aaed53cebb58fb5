//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// PickImager exposes the picking pass for the debug view.
type PickImager interface {
	PickImage() *ebiten.Image
}

// Overlay draws the status line and, on request, the picking pass on top of
// the grid view.
type Overlay struct {
	src      Source
	picker   PickImager
	showPick bool
	pixel    *ebiten.Image
}

// NewOverlay constructs an overlay reading from src and picker.
func NewOverlay(src Source, picker PickImager) *Overlay {
	o := &Overlay{src: src, picker: picker}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the picking view.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showPick = !o.showPick
	}
}

// ShowingPick reports whether the picking pass replaces the cell view.
func (o *Overlay) ShowingPick() bool { return o.showPick }

// Draw renders the overlay onto the viewport region starting at offsetX.
func (o *Overlay) Draw(screen *ebiten.Image, offsetX int) {
	if o.showPick && o.picker != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(offsetX), 0)
		screen.DrawImage(o.picker.PickImage(), op)
	}
	if o.src == nil {
		return
	}
	snap := o.src.Parameters()
	line := StatusLine(snap) + "  " + RuleLine(snap)
	if o.showPick {
		line += "  [pick]"
	}

	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*statusPadding), float64(statusHeight))
	op.GeoM.Translate(float64(offsetX), 0)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0, G: 0, B: 0, A: 160})
	screen.DrawImage(o.pixel, op)
	text.Draw(screen, line, face, offsetX+statusPadding, statusBaseline, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

const (
	statusPadding  = 6
	statusHeight   = 20
	statusBaseline = 14
)

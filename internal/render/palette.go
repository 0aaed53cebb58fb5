package render

import (
	"image/color"

	"tilelife/internal/grid"
)

const (
	paletteDead = iota
	paletteHighlight
	paletteAlive
)

// DefaultPalette colors dead, highlighted and alive cells.
var DefaultPalette = []color.RGBA{
	paletteDead:      {R: 24, G: 24, B: 30, A: 255},
	paletteHighlight: {R: 62, G: 84, B: 112, A: 255},
	paletteAlive:     {R: 236, G: 236, B: 242, A: 255},
}

// OutlineColor is drawn along cell edges in the display pass.
var OutlineColor = color.RGBA{R: 90, G: 90, B: 100, A: 255}

// stateIndex maps a cell state to a palette slot.
func stateIndex(state float32) int {
	switch {
	case state >= grid.Alive:
		return paletteAlive
	case state >= grid.Highlight:
		return paletteHighlight
	default:
		return paletteDead
	}
}

// StateColor looks up the color of state in palette. When the palette is
// short the last entry is used; an empty palette yields transparent black.
func StateColor(palette []color.RGBA, state float32) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{}
	}
	idx := stateIndex(state)
	if last := len(palette) - 1; idx > last {
		idx = last
	}
	return palette[idx]
}

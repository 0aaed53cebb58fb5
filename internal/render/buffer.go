package render

import (
	"encoding/binary"
	"errors"
	"math"

	"tilelife/internal/codec"
	"tilelife/internal/grid"
	"tilelife/internal/topology"
)

// Layout of one instance record: normalized color bytes followed by four
// little-endian float32 values.
const (
	offsetColor = 0
	offsetX     = 3
	offsetY     = 7
	offsetFlip  = 11
	offsetState = 15

	// RecordSize is the stride between instance records.
	RecordSize = 19
)

// ErrShapeChanged is returned by WriteStates when the grid no longer has
// the instance count the buffer was created with.
var ErrShapeChanged = errors.New("render: instance count changed, buffer must be recreated")

// Instance is the decoded form of one record.
type Instance struct {
	Color codec.Color
	X, Y  float32
	Flip  float32
	State float32
}

// InstanceBuffer mirrors a grid as tightly packed per-instance records.
// Recreate reallocates it for a new grid; WriteStates rewrites only the
// state column of an unchanged grid.
type InstanceBuffer struct {
	data     []byte
	count    int
	mode     topology.Mode
	cellSize float32
}

// Recreate discards the current contents and packs every cell of g.
func (b *InstanceBuffer) Recreate(g *grid.Grid) {
	cells := g.Cells()
	b.data = make([]byte, len(cells)*RecordSize)
	b.count = len(cells)
	b.mode = g.Mode()
	b.cellSize = g.CellSize()
	for i, c := range cells {
		rec := b.data[i*RecordSize : (i+1)*RecordSize]
		rec[offsetColor+0] = c.Color.R
		rec[offsetColor+1] = c.Color.G
		rec[offsetColor+2] = c.Color.B
		putFloat(rec[offsetX:], c.X)
		putFloat(rec[offsetY:], c.Y)
		putFloat(rec[offsetFlip:], c.Flip)
		putFloat(rec[offsetState:], c.State)
	}
}

// WriteStates copies the state of every cell of g in place.
func (b *InstanceBuffer) WriteStates(g *grid.Grid) error {
	cells := g.Cells()
	if len(cells) != b.count {
		return ErrShapeChanged
	}
	for i, c := range cells {
		putFloat(b.data[i*RecordSize+offsetState:], c.State)
	}
	return nil
}

// Len returns the number of instances.
func (b *InstanceBuffer) Len() int { return b.count }

// Mode returns the tiling of the grid last recreated from.
func (b *InstanceBuffer) Mode() topology.Mode { return b.mode }

// CellSize returns the cell edge of the grid last recreated from.
func (b *InstanceBuffer) CellSize() float32 { return b.cellSize }

// Bytes exposes the packed records.
func (b *InstanceBuffer) Bytes() []byte { return b.data }

// Instance decodes record i.
func (b *InstanceBuffer) Instance(i int) Instance {
	rec := b.data[i*RecordSize : (i+1)*RecordSize]
	return Instance{
		Color: codec.Color{R: rec[offsetColor], G: rec[offsetColor+1], B: rec[offsetColor+2]},
		X:     getFloat(rec[offsetX:]),
		Y:     getFloat(rec[offsetY:]),
		Flip:  getFloat(rec[offsetFlip:]),
		State: getFloat(rec[offsetState:]),
	}
}

func putFloat(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func getFloat(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

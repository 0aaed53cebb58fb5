// Package codec maps grid coordinates to the 24-bit colors used by the
// picking pass and back.
//
// A row and a column are each widened by a step multiplier and packed into
// three bytes, most significant bits first:
//
//	row (12 bits)            col (12 bits)
//	rrrrrrrr | rrrr      cccc | cccccccc
//	   R           G              B
//
// Renderers read these bytes back from the framebuffer, so the layout is
// fixed.
package codec

// DefaultStep keeps neighbouring cell colors far enough apart that a
// read-back pixel never lands on the wrong cell.
const DefaultStep = 20

// MaxWidened is the largest widened row or column value that survives a
// round trip.
const MaxWidened = 1<<12 - 1

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Background is the clear color of the picking pass.
var Background = Color{R: 255, G: 255, B: 255}

// Codec converts between (row, col) and colors using a fixed step.
type Codec struct {
	Step int
}

// Default is the codec used for every grid.
var Default = Codec{Step: DefaultStep}

func (c Codec) step() int {
	if c.Step <= 0 {
		return DefaultStep
	}
	return c.Step
}

// Encode packs row and col into a color. Widened values above 12 bits are
// truncated.
func (c Codec) Encode(row, col int) Color {
	s := c.step()
	wr := uint32(row*s) & MaxWidened
	wc := uint32(col*s) & MaxWidened
	return Color{
		R: uint8(wr >> 4),
		G: uint8((wr&0x0f)<<4 | wc>>8),
		B: uint8(wc),
	}
}

// Decode unpacks a color produced by Encode. Colors between two encoded
// values resolve to the lower one.
func (c Codec) Decode(col Color) (row, column int) {
	s := c.step()
	wr := int(col.R)<<4 | int(col.G)>>4
	wc := int(col.G&0x0f)<<8 | int(col.B)
	return wr / s, wc / s
}

// Fits reports whether every cell of a rows x cols grid round-trips.
func (c Codec) Fits(rows, cols int) bool {
	s := c.step()
	return rows >= 0 && cols >= 0 && rows*s <= MaxWidened && cols*s <= MaxWidened
}

// Encode packs row and col with the default step.
func Encode(row, col int) Color { return Default.Encode(row, col) }

// Decode unpacks a color with the default step.
func Decode(c Color) (row, col int) { return Default.Decode(c) }

// IsBackground reports whether c cannot be a cell color. A saturated
// channel never occurs for in-range cells at the default step.
func IsBackground(c Color) bool {
	return c.R == 255 || c.G == 255 || c.B == 255
}

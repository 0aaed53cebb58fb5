package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripDefaultStep(t *testing.T) {
	limit := MaxWidened / DefaultStep
	for row := 0; row <= limit; row++ {
		for col := 0; col <= limit; col++ {
			gotRow, gotCol := Decode(Encode(row, col))
			if gotRow != row || gotCol != col {
				t.Fatalf("decode(encode(%d,%d)) = (%d,%d)", row, col, gotRow, gotCol)
			}
		}
	}
}

func TestRoundTripUnitStepCoversTwelveBits(t *testing.T) {
	c := Codec{Step: 1}
	for row := 0; row <= MaxWidened; row += 7 {
		for col := 0; col <= MaxWidened; col += 13 {
			gotRow, gotCol := c.Decode(c.Encode(row, col))
			require.Equal(t, row, gotRow)
			require.Equal(t, col, gotCol)
		}
	}
	gotRow, gotCol := c.Decode(c.Encode(MaxWidened, MaxWidened))
	assert.Equal(t, MaxWidened, gotRow)
	assert.Equal(t, MaxWidened, gotCol)
}

func TestBitLayout(t *testing.T) {
	c := Codec{Step: 1}

	// row 0xABC, col 0xDEF -> AB | C D | EF
	assert.Equal(t, Color{R: 0xab, G: 0xcd, B: 0xef}, c.Encode(0xabc, 0xdef))
	assert.Equal(t, Color{R: 0xff, G: 0xf0, B: 0x00}, c.Encode(0xfff, 0))
	assert.Equal(t, Color{R: 0x00, G: 0x0f, B: 0xff}, c.Encode(0, 0xfff))

	// row 3, col 5 at step 20 -> widened 60 (0x03c), 100 (0x064)
	assert.Equal(t, Color{R: 0x03, G: 0xc0, B: 0x64}, Encode(3, 5))
}

func TestDecodeFloorsBetweenSteps(t *testing.T) {
	base := Encode(4, 9)
	nudged := base
	nudged.B += 3
	row, col := Decode(nudged)
	assert.Equal(t, 4, row)
	assert.Equal(t, 9, col)
}

func TestEncodeTruncatesOutOfRange(t *testing.T) {
	c := Codec{Step: 1}
	assert.Equal(t, c.Encode(0, 0), c.Encode(1<<12, 1<<12))
}

func TestFits(t *testing.T) {
	assert.True(t, Default.Fits(204, 204))
	assert.False(t, Default.Fits(205, 10))
	assert.False(t, Default.Fits(10, 205))
	assert.False(t, Default.Fits(-1, 10))
}

func TestNonPositiveStepFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Encode(7, 11), Codec{}.Encode(7, 11))
}

func TestIsBackground(t *testing.T) {
	assert.True(t, IsBackground(Background))
	assert.True(t, IsBackground(Color{R: 10, G: 255, B: 3}))
	limit := MaxWidened/DefaultStep - 1
	for row := 0; row <= limit; row++ {
		for col := 0; col <= limit; col++ {
			if IsBackground(Encode(row, col)) {
				t.Fatalf("cell (%d,%d) encodes to a background color", row, col)
			}
		}
	}
}

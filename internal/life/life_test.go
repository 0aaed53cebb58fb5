package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilelife/internal/grid"
	"tilelife/internal/topology"
)

func newSquare(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.NewWithDims(topology.Square, rows, cols)
	require.NoError(t, err)
	return g
}

func TestLoneCellDies(t *testing.T) {
	g := newSquare(t, 3, 3)
	g.SetState(1, 1, grid.Alive)

	NewEngine(DefaultRules()).Step(g)

	for i, c := range g.Cells() {
		assert.Equal(t, grid.Dead, c.State, "cell %d", i)
	}
	assert.Equal(t, 1, g.Generation())
}

func TestBlinker3x3(t *testing.T) {
	g := newSquare(t, 3, 3)
	g.SetState(1, 0, grid.Alive)
	g.SetState(1, 1, grid.Alive)
	g.SetState(1, 2, grid.Alive)

	e := NewEngine(DefaultRules())
	e.Step(g)

	want := []float32{
		0, 1, 0,
		0, 1, 0,
		0, 1, 0,
	}
	assert.Equal(t, want, g.States(nil))
	assert.False(t, e.Stable())

	e.Step(g)
	want = []float32{
		0, 0, 0,
		1, 1, 1,
		0, 0, 0,
	}
	assert.Equal(t, want, g.States(nil))
	assert.Equal(t, 2, g.Generation())
}

func TestBlinkerOscillation(t *testing.T) {
	g := newSquare(t, 5, 5)
	g.SetState(1, 2, grid.Alive)
	g.SetState(2, 2, grid.Alive)
	g.SetState(3, 2, grid.Alive)

	e := NewEngine(DefaultRules())
	e.Step(g)

	expects := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			_, shouldBeAlive := expects[[2]int{row, col}]
			alive := g.State(row, col) == grid.Alive
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}

	e.Step(g)
	expects = map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			_, shouldBeAlive := expects[[2]int{row, col}]
			alive := g.State(row, col) == grid.Alive
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlockIsStable(t *testing.T) {
	g := newSquare(t, 4, 4)
	for _, rc := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		g.SetState(rc[0], rc[1], grid.Alive)
	}
	e := NewEngine(DefaultRules())
	before := g.States(nil)
	e.Step(g)
	assert.Equal(t, before, g.States(nil))
	assert.True(t, e.Stable())
}

func TestHighlightSurvivesInBandButDoesNotCount(t *testing.T) {
	g := newSquare(t, 3, 3)
	// Two live neighbors keep the highlighted center as is.
	g.SetState(0, 0, grid.Alive)
	g.SetState(0, 1, grid.Alive)
	g.SetState(1, 1, grid.Highlight)
	// A highlighted cell is never counted as alive.
	g.SetState(2, 2, grid.Highlight)

	NewEngine(DefaultRules()).Step(g)

	assert.Equal(t, grid.Highlight, g.State(1, 1))
	assert.Equal(t, grid.Dead, g.State(2, 2))
}

func TestReproductionOverridesSurvivalBand(t *testing.T) {
	g := newSquare(t, 3, 3)
	g.SetState(0, 0, grid.Alive)
	g.SetState(0, 1, grid.Alive)
	g.SetState(0, 2, grid.Alive)
	g.SetState(1, 1, grid.Highlight)

	NewEngine(DefaultRules()).Step(g)
	assert.Equal(t, grid.Alive, g.State(1, 1))
}

func TestRuleNext(t *testing.T) {
	r := Conway
	assert.Equal(t, grid.Dead, r.Next(grid.Alive, 1))
	assert.Equal(t, grid.Alive, r.Next(grid.Alive, 2))
	assert.Equal(t, grid.Dead, r.Next(grid.Dead, 2))
	assert.Equal(t, grid.Highlight, r.Next(grid.Highlight, 2))
	assert.Equal(t, grid.Alive, r.Next(grid.Dead, 3))
	assert.Equal(t, grid.Dead, r.Next(grid.Alive, 4))

	// Reproduction outside the band still wins.
	odd := Rule{Underpopulation: 2, Overpopulation: 3, Reproduction: 5}
	assert.Equal(t, grid.Alive, odd.Next(grid.Dead, 5))
}

func TestStepUsesRuleForTiling(t *testing.T) {
	g, err := grid.NewWithDims(topology.Hexagon, 3, 3)
	require.NoError(t, err)
	g.SetState(1, 1, grid.Alive)

	rules := DefaultRules()
	require.NoError(t, rules.Set(topology.Hexagon, Rule{Underpopulation: 0, Overpopulation: 6, Reproduction: 1}))
	NewEngine(rules).Step(g)

	assert.Equal(t, grid.Alive, g.State(1, 1))
	for _, idx := range g.Neighbors(nil, 1, 1) {
		row, col := g.Coords(idx)
		assert.Equal(t, grid.Alive, g.State(row, col), "neighbor (%d,%d)", row, col)
	}
}

func TestTriangleStepCountsExtendedNeighbors(t *testing.T) {
	g, err := grid.NewWithDims(topology.Triangle, 3, 6)
	require.NoError(t, err)
	// (1,1) and (1,5) are two columns from (1,3); (0,1) is an outer
	// diagonal because (1,3) points up.
	require.Equal(t, float32(1), g.Flip(1, 3))
	g.SetState(1, 1, grid.Alive)
	g.SetState(1, 5, grid.Alive)
	g.SetState(0, 1, grid.Alive)

	NewEngine(DefaultRules()).Step(g)
	assert.Equal(t, grid.Alive, g.State(1, 3))
}

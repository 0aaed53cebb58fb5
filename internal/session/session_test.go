package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilelife/internal/codec"
	"tilelife/internal/core"
	"tilelife/internal/grid"
	"tilelife/internal/life"
	"tilelife/internal/render"
	"tilelife/internal/topology"
)

type recordingSink struct {
	render.InstanceBuffer
	recreates int
	writes    int
}

func (r *recordingSink) Recreate(g *grid.Grid) {
	r.recreates++
	r.InstanceBuffer.Recreate(g)
}

func (r *recordingSink) WriteStates(g *grid.Grid) error {
	r.writes++
	return r.InstanceBuffer.WriteStates(g)
}

// bufferPicker answers picks with the color of whichever instance's center
// is nearest to the pixel, or the background when none is within one cell.
type bufferPicker struct {
	buf *render.InstanceBuffer
}

func (p bufferPicker) PickAt(x, y int) (codec.Color, bool) {
	best, bestDist := -1, float32(0)
	size := p.buf.CellSize()
	for i := 0; i < p.buf.Len(); i++ {
		inst := p.buf.Instance(i)
		dx, dy := inst.X-float32(x), inst.Y-float32(y)
		d := dx*dx + dy*dy
		if d > size*size/4 {
			continue
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return codec.Background, true
	}
	return p.buf.Instance(best).Color, true
}

type offscreenPicker struct{}

func (offscreenPicker) PickAt(int, int) (codec.Color, bool) { return codec.Color{}, false }

func newSession(t *testing.T, mode topology.Mode) (*Session, *recordingSink) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Mode = mode
	cfg.Size = grid.L
	sink := &recordingSink{}
	s, err := New(cfg, sink)
	require.NoError(t, err)
	return s, sink
}

func TestNewRecreatesSink(t *testing.T) {
	s, sink := newSession(t, topology.Square)
	assert.Equal(t, 1, sink.recreates)
	assert.Equal(t, s.Grid().Len(), sink.Len())
	assert.Equal(t, "square L", s.Name())
}

func TestNewRejectsInvalidRules(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules.Hexagon.Reproduction = 99
	_, err := New(cfg, &recordingSink{})
	assert.Error(t, err)
}

func TestClickTogglesCellUnderPixel(t *testing.T) {
	s, sink := newSession(t, topology.Square)
	target := s.Grid().Cells()[s.Grid().Index(1, 2)]

	m, ok := s.Click(int(target.X), int(target.Y), bufferPicker{buf: &sink.InstanceBuffer})
	require.True(t, ok)
	assert.Equal(t, 1, m.Row)
	assert.Equal(t, 2, m.Col)
	assert.Equal(t, grid.Alive, s.Grid().State(1, 2))
	assert.Equal(t, 1, sink.writes)
	assert.Equal(t, grid.Alive, sink.Instance(s.Grid().Index(1, 2)).State)
	assert.Equal(t, grid.Highlight, sink.Instance(s.Grid().Index(1, 1)).State)

	last, ok := s.LastClick()
	assert.True(t, ok)
	assert.Equal(t, m.Index, last.Index)
}

func TestClickOnBackgroundIsNoop(t *testing.T) {
	s, sink := newSession(t, topology.Hexagon)

	_, ok := s.Click(0, 0, bufferPicker{buf: &sink.InstanceBuffer})
	assert.False(t, ok)
	_, ok = s.Click(10, 10, offscreenPicker{})
	assert.False(t, ok)
	assert.Zero(t, sink.writes)
	assert.Zero(t, s.Grid().Population())

	_, ok = s.LastClick()
	assert.False(t, ok)
}

func TestUpdateStepsOnlyWhileRunning(t *testing.T) {
	s, sink := newSession(t, topology.Square)
	s.Grid().SetState(1, 0, grid.Alive)
	s.Grid().SetState(1, 1, grid.Alive)
	s.Grid().SetState(1, 2, grid.Alive)

	start := time.Now()
	assert.False(t, s.Update(start))
	assert.False(t, s.Update(start.Add(2*time.Second)))

	s.ToggleRunning()
	require.True(t, s.Running())
	assert.True(t, s.Update(start.Add(3*time.Second)))
	assert.False(t, s.Update(start.Add(3500*time.Millisecond)))
	assert.Equal(t, 1, s.Grid().Generation())
	assert.Equal(t, 1, sink.writes)

	assert.Equal(t, grid.Alive, s.Grid().State(0, 1))
	assert.Equal(t, grid.Alive, s.Grid().State(2, 1))
	assert.Equal(t, grid.Dead, s.Grid().State(1, 0))

	s.SetRunning(false)
	assert.False(t, s.Update(start.Add(10*time.Second)))
}

func TestRebuildKeepsGridOnError(t *testing.T) {
	s, sink := newSession(t, topology.Square)
	before := s.Grid()

	err := s.Rebuild(topology.Triangle, grid.L, 40, 40)
	assert.ErrorIs(t, err, grid.ErrEmpty)
	assert.Same(t, before, s.Grid())
	assert.Equal(t, 1, sink.recreates)
}

func TestCycleModeAndSizeRebuild(t *testing.T) {
	s, sink := newSession(t, topology.Square)
	s.Step()
	require.Equal(t, 1, s.Grid().Generation())

	require.NoError(t, s.CycleMode())
	assert.Equal(t, topology.Triangle, s.Grid().Mode())
	assert.Zero(t, s.Grid().Generation())
	assert.Equal(t, 2, sink.recreates)

	require.NoError(t, s.CycleSize())
	assert.Equal(t, grid.M, s.Grid().Size())
	assert.Equal(t, topology.Triangle, s.Grid().Mode())
	assert.Equal(t, 3, sink.recreates)
	assert.Equal(t, s.Grid().Len(), sink.Len())
}

func TestRandomizeAndClear(t *testing.T) {
	s, sink := newSession(t, topology.Hexagon)
	live := s.Randomize(11)
	assert.Equal(t, live, s.Grid().Population())
	assert.Greater(t, live, 0)
	assert.Equal(t, 1, sink.writes)

	for i, c := range s.Grid().Cells() {
		if c.State == grid.Alive {
			continue
		}
		row, col := s.Grid().Coords(i)
		want := grid.Dead
		if s.Grid().LiveNeighbors(row, col) > 0 {
			want = grid.Highlight
		}
		require.Equal(t, want, c.State, "(%d,%d)", row, col)
	}

	s.Clear()
	assert.Zero(t, s.Grid().Population())
	assert.Equal(t, 2, sink.writes)
}

func TestStaleSinkIsRecreated(t *testing.T) {
	s, sink := newSession(t, topology.Square)
	sink.InstanceBuffer.Recreate(mustGrid(t))

	s.Step()
	assert.Equal(t, 2, sink.recreates)
	assert.Equal(t, s.Grid().Len(), sink.Len())
}

func mustGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.NewWithDims(topology.Square, 2, 2)
	require.NoError(t, err)
	return g
}

func TestParametersAndRuleControls(t *testing.T) {
	s, _ := newSession(t, topology.Hexagon)

	snap := s.Parameters()
	p, ok := snap.Lookup("mode")
	require.True(t, ok)
	assert.Equal(t, "hexagon", p.Value)
	p, ok = snap.Lookup("r")
	require.True(t, ok)
	assert.Equal(t, "3", p.Value)

	assert.Len(t, s.ParameterControls(), 3)

	assert.True(t, s.SetIntParameter("r", 2))
	assert.Equal(t, life.Rule{Underpopulation: 2, Overpopulation: 3, Reproduction: 2}, s.Rule())
	assert.Equal(t, life.Conway, s.Engine().Rules.Square)

	assert.False(t, s.SetIntParameter("r", topology.MaxNeighbors+1))
	assert.False(t, s.SetIntParameter("density", 1))
	assert.Equal(t, 2, s.Rule().Reproduction)
}

func TestSessionUsesSharedLoggerByDefault(t *testing.T) {
	s, _ := newSession(t, topology.Square)
	assert.Same(t, core.Logger(), s.log)

	custom := core.NopLogger()
	cfg := DefaultConfig()
	s2, err := New(cfg, nil, WithLogger(custom))
	require.NoError(t, err)
	assert.Same(t, custom, s2.log)
	s2.Step()
}

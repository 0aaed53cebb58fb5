// Package session owns one grid together with the engine that advances it
// and keeps a renderer's copy of it in sync.
package session

import (
	"fmt"
	"log/slog"
	"time"

	"tilelife/internal/codec"
	"tilelife/internal/core"
	"tilelife/internal/grid"
	"tilelife/internal/life"
	"tilelife/internal/pick"
	"tilelife/internal/topology"
)

// BufferSink receives the grid whenever it changes. Recreate is called
// when the number of instances changes; WriteStates when only states did.
type BufferSink interface {
	Recreate(g *grid.Grid)
	WriteStates(g *grid.Grid) error
}

// Picker reads one pixel of the picking pass at a device coordinate with a
// bottom-left origin.
type Picker interface {
	PickAt(x, y int) (codec.Color, bool)
}

// Config selects the initial grid and rules.
type Config struct {
	Mode     topology.Mode
	Size     grid.SizeClass
	Viewport core.Size

	Rules        life.Rules
	TickInterval time.Duration
	Density      float64
}

// DefaultConfig returns a hexagonal S grid with Conway rules.
func DefaultConfig() Config {
	return Config{
		Mode:         topology.Hexagon,
		Size:         grid.S,
		Viewport:     core.Size{W: 960, H: 600},
		Rules:        life.DefaultRules(),
		TickInterval: core.DefaultTickInterval,
		Density:      0.25,
	}
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger sets the logger used by the session.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session is the single owner of a grid. All methods must be called from
// the same goroutine.
type Session struct {
	cfg    Config
	grid   *grid.Grid
	engine *life.Engine
	ticker *core.Ticker
	sink   BufferSink
	log    *slog.Logger

	lastClick pick.Mutation
}

// New builds the initial grid and hands it to sink.
func New(cfg Config, sink BufferSink, opts ...Option) (*Session, error) {
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:    cfg,
		engine: life.NewEngine(cfg.Rules),
		ticker: core.NewTicker(cfg.TickInterval),
		sink:   sink,
		log:    core.Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Rebuild(cfg.Mode, cfg.Size, cfg.Viewport.W, cfg.Viewport.H); err != nil {
		return nil, err
	}
	return s, nil
}

// Grid returns the current grid. Callers must not keep it across a
// Rebuild.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Engine returns the generation engine.
func (s *Session) Engine() *life.Engine { return s.engine }

// Name identifies the session in window titles and panels.
func (s *Session) Name() string {
	return fmt.Sprintf("%s %s", s.grid.Mode(), s.grid.Size())
}

// Rebuild replaces the grid with a new one. On error the current grid is
// kept.
func (s *Session) Rebuild(mode topology.Mode, size grid.SizeClass, w, h int) error {
	g, err := grid.New(mode, size, w, h)
	if err != nil {
		return fmt.Errorf("session: rebuild: %w", err)
	}
	s.grid = g
	s.cfg.Mode = mode
	s.cfg.Size = size
	s.cfg.Viewport = core.Size{W: w, H: h}
	s.lastClick = pick.Mutation{Index: -1}
	if s.sink != nil {
		s.sink.Recreate(g)
	}
	s.log.Info("grid rebuilt", "mode", mode, "size", size, "rows", g.Rows(), "cols", g.Cols())
	return nil
}

// CycleMode rebuilds the grid with the next tiling.
func (s *Session) CycleMode() error {
	return s.Rebuild(s.cfg.Mode.Next(), s.cfg.Size, s.cfg.Viewport.W, s.cfg.Viewport.H)
}

// CycleSize rebuilds the grid with the next size class.
func (s *Session) CycleSize() error {
	return s.Rebuild(s.cfg.Mode, s.cfg.Size.Next(), s.cfg.Viewport.W, s.cfg.Viewport.H)
}

// Click resolves the cell under device pixel (x, y) through p and toggles
// it. It reports false when no cell is under the pixel.
func (s *Session) Click(x, y int, p Picker) (pick.Mutation, bool) {
	c, ok := p.PickAt(x, y)
	if !ok {
		return pick.Mutation{}, false
	}
	m, ok := pick.Click(s.grid, c)
	if !ok {
		return pick.Mutation{}, false
	}
	s.lastClick = m
	s.syncStates()
	s.log.Debug("cell toggled", "row", m.Row, "col", m.Col, "state", m.After)
	return m, true
}

// LastClick returns the most recent mutation since the last rebuild.
func (s *Session) LastClick() (pick.Mutation, bool) {
	return s.lastClick, s.lastClick.Index >= 0 && len(s.lastClick.Touched) > 0
}

// Update advances one generation when the ticker is due at now. It reports
// whether a step ran.
func (s *Session) Update(now time.Time) bool {
	if !s.ticker.Due(now) {
		return false
	}
	s.Step()
	return true
}

// Step advances one generation regardless of the ticker.
func (s *Session) Step() {
	s.engine.Step(s.grid)
	s.syncStates()
	s.log.Debug("generation", "n", s.grid.Generation(), "population", s.grid.Population())
}

// Running reports whether generations advance on the ticker.
func (s *Session) Running() bool { return s.ticker.Running() }

// SetRunning starts or pauses the ticker.
func (s *Session) SetRunning(running bool) { s.ticker.SetRunning(running) }

// ToggleRunning flips the running flag.
func (s *Session) ToggleRunning() { s.ticker.SetRunning(!s.ticker.Running()) }

// Clear kills every cell and resets the generation counter.
func (s *Session) Clear() {
	s.grid.Clear()
	s.syncStates()
}

// Randomize seeds the grid with live cells at the configured density and
// highlights their neighbors.
func (s *Session) Randomize(seed int64) int {
	live := s.grid.Randomize(core.NewRNG(seed), s.cfg.Density)
	pick.Rehighlight(s.grid)
	s.syncStates()
	s.log.Info("grid seeded", "seed", seed, "live", live)
	return live
}

// Rule returns the rule applied to the current tiling.
func (s *Session) Rule() life.Rule { return s.engine.Rules.For(s.grid.Mode()) }

// SetRule replaces the rule of the current tiling.
func (s *Session) SetRule(r life.Rule) error {
	return s.engine.Rules.Set(s.grid.Mode(), r)
}

func (s *Session) syncStates() {
	if s.sink == nil {
		return
	}
	if err := s.sink.WriteStates(s.grid); err != nil {
		s.log.Warn("state upload rejected, recreating buffer", "err", err)
		s.sink.Recreate(s.grid)
	}
}

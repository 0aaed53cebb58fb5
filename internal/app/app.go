//go:build ebiten

package app

import (
	"image/color"
	"time"

	"tilelife/internal/core"
	"tilelife/internal/render"
	"tilelife/internal/session"
	"tilelife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	cfg      *Config
	session  *session.Session
	renderer *render.GridRenderer
	hud      *ui.HUD
	overlay  *ui.Overlay

	viewport core.Size
}

// New builds the first grid from cfg and wires it to a renderer.
func New(cfg *Config) (*Game, error) {
	sc, err := cfg.SessionConfig()
	if err != nil {
		return nil, err
	}
	renderer := render.NewGridRenderer(sc.Viewport.W, sc.Viewport.H)
	s, err := session.New(sc, renderer)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:      cfg,
		session:  s,
		renderer: renderer,
		hud:      ui.NewHUD(s, cfg.PanelWidth(), cfg.Height),
		overlay:  ui.NewOverlay(s, renderer),
		viewport: sc.Viewport,
	}, nil
}

// Session returns the session driven by the game.
func (g *Game) Session() *session.Session { return g.session }

// Update handles input and advances the grid when its clock is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.ToggleRunning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Randomize(g.cfg.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Randomize(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.rebuild(g.session.CycleMode)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.rebuild(g.session.CycleSize)
	}

	g.overlay.Update()
	g.hud.Update(g.viewport.W)
	g.handleClick()

	g.session.Update(time.Now())
	return nil
}

// handleClick toggles the cell under the cursor. Screen coordinates have a
// top-left origin; the picking pass is addressed from the bottom-left.
func (g *Game) handleClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	if g.hud.Contains(x) || x < 0 || x >= g.viewport.W || y < 0 || y >= g.viewport.H {
		return
	}
	g.session.Click(x, g.viewport.H-1-y, g.renderer)
}

func (g *Game) rebuild(cycle func() error) {
	if err := cycle(); err != nil {
		core.Logger().Warn("rebuild failed, keeping grid", "err", err)
		return
	}
	ebiten.SetWindowTitle("tilelife - " + g.session.Name())
}

// Draw renders the grid, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.renderer.Draw(screen, 0)
	g.overlay.Draw(screen, 0)
	g.hud.Draw(screen, g.viewport.W)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

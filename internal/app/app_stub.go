//go:build !ebiten

package app

import (
	"errors"

	"tilelife/internal/session"
)

var errNoGUI = errors.New("app: GUI support requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New always fails in the headless build.
func New(*Config) (*Game, error) { return nil, errNoGUI }

// Session returns nil in the headless build.
func (g *Game) Session() *session.Session { return nil }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return errNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

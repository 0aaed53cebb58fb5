package app

import (
	"flag"
	"fmt"
	"os"
	"time"

	"tilelife/internal/core"
	"tilelife/internal/grid"
	"tilelife/internal/life"
	"tilelife/internal/session"
	"tilelife/internal/topology"
)

// ViewportFraction is the share of the window width given to the grid; the
// HUD takes the rest.
const ViewportFraction = 0.8

// Config represents the command-line parameters for the application.
type Config struct {
	Mode    string
	Size    string
	Width   int
	Height  int
	TPS     int
	TickMs  int
	Rules   string
	Seed    int64
	Density float64
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Mode:    "hexagon",
		Size:    "S",
		Width:   1200,
		Height:  600,
		TPS:     60,
		TickMs:  1000,
		Seed:    42,
		Density: 0.25,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "tiling: square, triangle or hexagon")
	fs.StringVar(&c.Size, "size", c.Size, "cell size class: L, M, S or XS")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.TickMs, "tick", c.TickMs, "milliseconds between generations while running")
	fs.StringVar(&c.Rules, "rules", c.Rules, "TOML file with per-tiling rule thresholds")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.Float64Var(&c.Density, "density", c.Density, "share of cells alive after a random fill")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log grid events to stderr")
}

// Viewport returns the size of the grid view inside the window.
func (c *Config) Viewport() core.Size {
	return core.Size{W: int(float64(c.Width) * ViewportFraction), H: c.Height}
}

// PanelWidth returns the width left for the HUD.
func (c *Config) PanelWidth() int {
	return c.Width - c.Viewport().W
}

// SessionConfig resolves the flags into a session configuration, reading
// the rules file when one is set.
func (c *Config) SessionConfig() (session.Config, error) {
	cfg := session.DefaultConfig()

	mode, err := topology.ParseMode(c.Mode)
	if err != nil {
		return cfg, err
	}
	size, err := grid.ParseSize(c.Size)
	if err != nil {
		return cfg, err
	}
	if c.Density < 0 || c.Density > 1 {
		return cfg, fmt.Errorf("app: density %v outside [0,1]", c.Density)
	}
	viewport := c.Viewport()
	if viewport.Empty() {
		return cfg, fmt.Errorf("app: window %dx%d leaves no room for the grid", c.Width, c.Height)
	}

	cfg.Mode = mode
	cfg.Size = size
	cfg.Viewport = viewport
	cfg.Density = c.Density
	cfg.TickInterval = time.Duration(c.TickMs) * time.Millisecond

	if c.Rules != "" {
		rules, err := loadRulesFile(c.Rules)
		if err != nil {
			return cfg, err
		}
		cfg.Rules = rules
	}
	return cfg, nil
}

func loadRulesFile(path string) (life.Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return life.DefaultRules(), fmt.Errorf("app: rules: %w", err)
	}
	defer f.Close()
	rules, err := life.LoadRules(f)
	if err != nil {
		return rules, fmt.Errorf("app: rules %s: %w", path, err)
	}
	return rules, nil
}

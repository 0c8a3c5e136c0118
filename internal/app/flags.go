package app

import (
	"fmt"

	"github.com/integrii/flaggy"

	"habitat/internal/core"
	"habitat/internal/habitat"
	"habitat/internal/loader"
)

// Config represents the command-line parameters shared by the window and
// terminal front ends.
type Config struct {
	ConfigPath string
	Pattern    string
	Rule       string
	Side       int
	OriginX    int
	OriginY    int
	Density    float64
	Seed       int64

	GPS    int
	TPS    int
	Width  int
	Height int
	NoHUD  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rule:    "life",
		Side:    256,
		OriginX: 16,
		OriginY: 16,
		Density: 0.35,
		Seed:    42,
		TPS:     60,
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.String(&c.ConfigPath, "c", "config", "habitat JSON file (overrides the habitat flags below)")
	p.String(&c.Pattern, "p", "pattern", "plaintext .cells pattern to seed instead of a random soup")
	p.String(&c.Rule, "r", "rule", "rule preset name or rulestring such as B36/S23")
	p.Int(&c.Side, "", "side", "grid side in cells")
	p.Int(&c.OriginX, "", "x", "habitat left edge on the canvas")
	p.Int(&c.OriginY, "", "y", "habitat top edge on the canvas")
	p.Float64(&c.Density, "d", "density", "live fraction of the random soup")
	p.Int64(&c.Seed, "s", "seed", "seed for the random soup")
	p.Int(&c.GPS, "g", "gps", "generations per second, 0 advances every frame")
	p.Int(&c.TPS, "", "tps", "ticks per second")
	p.Int(&c.Width, "", "width", "window width, 0 fits the habitat")
	p.Int(&c.Height, "", "height", "window height, 0 fits the habitat")
	p.Bool(&c.NoHUD, "", "no-hud", "start with the status panel hidden")
}

// Habitat resolves the habitat description: the JSON file when one is given,
// otherwise the habitat flags. The soup density is checked in every case
// since the S key reseeds with it.
func (c *Config) Habitat() (habitat.Config, error) {
	if !core.ValidDensity(c.Density) {
		return habitat.Config{}, fmt.Errorf("%w: density %v outside [0,1]", loader.ErrInvalidConfig, c.Density)
	}
	if c.ConfigPath != "" {
		return loader.LoadFile(c.ConfigPath)
	}
	f := loader.DefaultFile()
	f.Side = c.Side
	f.Origin = loader.Point{X: c.OriginX, Y: c.OriginY}
	f.Rule = c.Rule
	if c.Pattern != "" {
		f.Pattern = c.Pattern
	} else {
		f.Random = &loader.Random{Density: c.Density, Seed: c.Seed}
	}
	return f.Resolve("")
}

// WindowSize returns the window dimensions: the configured size, or the
// habitat rectangle with an equal margin on every side.
func (c *Config) WindowSize(h *habitat.Habitat) (int, int) {
	o := h.Origin()
	w, ht := c.Width, c.Height
	if w <= 0 {
		w = h.Side() + 2*max(o.X, 0)
	}
	if ht <= 0 {
		ht = h.Side() + 2*max(o.Y, 0)
	}
	return w, ht
}

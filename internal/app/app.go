//go:build ebiten

package app

import (
	"time"

	"habitat/internal/core"
	"habitat/internal/habitat"
	"habitat/internal/render"
	"habitat/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a habitat to the ebiten.Game interface. Draw is the display
// loop: it pulls every in-habitat pixel and commits once per frame.
type Game struct {
	hab     *habitat.Habitat
	hud     *ui.HUD
	palette render.Palette
	pacer   *core.Pacer
	buf     []byte

	density  float64
	showHUD  bool
	paused   bool
	tickOnce bool
	due      bool
}

// New constructs a Game for the provided habitat.
func New(hab *habitat.Habitat, cfg *Config) *Game {
	return &Game{
		hab:     hab,
		hud:     ui.NewHUD(hab),
		palette: render.DefaultPalette(),
		pacer:   core.NewPacer(cfg.GPS),
		density: cfg.Density,
		showHUD: !cfg.NoHUD,
	}
}

// Update handles input and decides whether the next frame advances.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	// Draw always finishes its cycle, so no pull is outstanding here.
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.hab.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.hab.Randomize(time.Now().UnixNano(), g.density)
	}
	g.hab.SetOrigin(nudge(g.hab.Origin()))

	if g.tickOnce || (!g.paused && g.pacer.Due(time.Now())) {
		g.due = true
		g.tickOnce = false
	}
	return nil
}

// nudge moves the habitat one pixel per arrow key press, eight with shift.
func nudge(o core.Point) core.Point {
	d := 1
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		d = 8
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		o.X -= d
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		o.X += d
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		o.Y -= d
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		o.Y += d
	}
	return o
}

// Draw paints the canvas and, when a generation is due, advances it.
func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	if len(g.buf) != 4*w*h {
		g.buf = make([]byte, 4*w*h)
	}
	render.FillRGBA(g.buf, w, h, g.hab, g.palette, g.due)
	g.due = false
	screen.WritePixels(g.buf)
	if g.showHUD {
		g.hud.Draw(screen, g.paused)
	}
}

// Layout makes the canvas follow the window. Resizing only changes the
// canvas; the habitat keeps its grid and origin.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

//go:build ebiten

package ui

import (
	"image/color"

	"habitat/internal/habitat"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a status panel in the bottom-left corner of the canvas.
type HUD struct {
	hab   *habitat.Habitat
	panel *ebiten.Image
}

// NewHUD constructs a HUD reporting on the provided habitat.
func NewHUD(hab *habitat.Habitat) *HUD {
	return &HUD{hab: hab}
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h == nil || h.hab == nil {
		return
	}
	lines := StatusLines(h.hab.Parameters(), paused)
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	pw := width + 2*panelPadding
	ph := len(lines)*lineHeight + 2*panelPadding
	if h.panel == nil || h.panel.Bounds().Dx() != pw || h.panel.Bounds().Dy() != ph {
		h.panel = ebiten.NewImage(pw, ph)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 210})
	for i, line := range lines {
		y := panelPadding + (i+1)*lineHeight - textDescent
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(panelMargin), float64(screen.Bounds().Dy()-ph-panelMargin))
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding = 6
	panelMargin  = 4
	lineHeight   = 15
	textDescent  = 3
)

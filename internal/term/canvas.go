// Package term displays a habitat in a terminal, one cell per character.
package term

import (
	"bytes"

	"habitat/internal/habitat"
	"habitat/internal/render"
)

// Glyphs are the strings printed for each pixel kind. They may carry ANSI
// color sequences but must occupy a single terminal column.
type Glyphs struct {
	Live       string
	Dead       string
	Background string
}

// renderText draws a width*height character canvas into dst through the
// same per-pixel protocol the window uses.
func renderText(dst *bytes.Buffer, width, height int, h *habitat.Habitat, advance bool, g Glyphs) {
	render.Frame(width, height, h, advance, func(pixel int, k render.Kind) {
		if pixel > 0 && pixel%width == 0 {
			dst.WriteByte('\n')
		}
		switch k {
		case render.LiveCell:
			dst.WriteString(g.Live)
		case render.DeadCell:
			dst.WriteString(g.Dead)
		default:
			dst.WriteString(g.Background)
		}
	})
}

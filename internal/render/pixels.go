// Package render turns a habitat into canvas pixels using the pull protocol.
package render

import (
	"image/color"

	"habitat/internal/habitat"
)

// Kind classifies a canvas pixel.
type Kind uint8

const (
	// Background is a pixel outside the habitat rectangle.
	Background Kind = iota
	// DeadCell is a pixel showing a dead cell.
	DeadCell
	// LiveCell is a pixel showing a live cell.
	LiveCell
)

// Frame visits every pixel of a width*height canvas in row-major order and
// reports its kind to paint. Pixels inside the habitat are pulled from it
// when advance is true, and the frame ends with a full cycle committed; when
// advance is false the current generation is painted and nothing is staged.
//
// Rows or columns of the rectangle that fall outside the canvas are still
// pulled, so every advancing frame stages exactly one generation. A habitat
// handed over mid-cycle has that cycle finished and committed first.
func Frame(width, height int, h *habitat.Habitat, advance bool, paint func(pixel int, k Kind)) {
	if advance && h.Cursor() != 0 {
		h.Step()
	}
	if width <= 0 || height <= 0 {
		if advance {
			h.Step()
		}
		return
	}
	side := h.Side()
	origin := h.Origin()
	total := width * height
	for i := 0; i < total; i++ {
		if !h.Contains(i, width) {
			paint(i, Background)
			continue
		}
		idx := habitat.GridIndex(i, width, origin, side)
		var alive bool
		if advance {
			alive = h.PullAt(idx).Alive()
		} else {
			alive = h.Peek(idx).Alive()
		}
		if alive {
			paint(i, LiveCell)
		} else {
			paint(i, DeadCell)
		}
	}
	if advance {
		h.Step()
	}
}

// Palette holds the three colors a frame uses.
type Palette struct {
	Live       color.RGBA
	Dead       color.RGBA
	Background color.RGBA
}

// DefaultPalette returns green live cells on a dark grid over a rose canvas.
func DefaultPalette() Palette {
	return Palette{
		Live:       color.RGBA{R: 0x58, G: 0xe8, B: 0x2b, A: 0xff},
		Dead:       color.RGBA{R: 0x23, G: 0x23, B: 0x23, A: 0xff},
		Background: color.RGBA{R: 0xe8, G: 0x2b, B: 0x58, A: 0xff},
	}
}

func (p Palette) color(k Kind) color.RGBA {
	switch k {
	case LiveCell:
		return p.Live
	case DeadCell:
		return p.Dead
	default:
		return p.Background
	}
}

// FillRGBA runs Frame over buf, which holds width*height RGBA pixels. A
// buffer of the wrong length is left untouched and the habitat is not pulled.
func FillRGBA(buf []byte, width, height int, h *habitat.Habitat, p Palette, advance bool) bool {
	if width < 0 || height < 0 || len(buf) != 4*width*height {
		return false
	}
	Frame(width, height, h, advance, func(pixel int, k Kind) {
		col := p.color(k)
		base := pixel * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	})
	return true
}

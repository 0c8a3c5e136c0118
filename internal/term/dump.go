package term

import (
	"bytes"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"habitat/internal/habitat"
)

// Dump advances the habitat by the given number of generations and writes the
// grid followed by a status line. When every is positive the grid is also
// written after each every-th generation.
func Dump(w io.Writer, h *habitat.Habitat, generations, every int, color bool) error {
	au := aurora.NewAurora(color)
	glyphs := Glyphs{Live: au.Green("O").String(), Dead: ".", Background: " "}
	var buf bytes.Buffer
	write := func() error {
		buf.Reset()
		writeGrid(&buf, h, glyphs)
		buf.WriteString(statusLine(au, h))
		buf.WriteString("\n\n")
		_, err := w.Write(buf.Bytes())
		return err
	}
	for i := 1; i <= generations; i++ {
		h.Step()
		if every > 0 && i%every == 0 && i != generations {
			if err := write(); err != nil {
				return err
			}
		}
	}
	return write()
}

// writeGrid prints the current generation without pulling.
func writeGrid(dst *bytes.Buffer, h *habitat.Habitat, g Glyphs) {
	side := h.Side()
	for idx := 0; idx < h.Len(); idx++ {
		if h.Peek(idx).Alive() {
			dst.WriteString(g.Live)
		} else {
			dst.WriteString(g.Dead)
		}
		if idx%side == side-1 {
			dst.WriteByte('\n')
		}
	}
}

// Summary formats a one-line description of the habitat for logs.
func Summary(h *habitat.Habitat) string {
	o := h.Origin()
	return fmt.Sprintf("habitat %dx%d at (%d,%d), rule %s, %d live cells",
		h.Side(), h.Side(), o.X, o.Y, h.Rule(), h.LiveCount())
}

package habitat

import "habitat/internal/core"

// Contains reports whether pixel, a row-major index into a canvas of the
// given width, lies in the side*side rectangle anchored at origin.
func Contains(pixel, canvasWidth int, origin core.Point, side int) bool {
	if canvasWidth <= 0 || pixel < 0 {
		return false
	}
	px := pixel % canvasWidth
	py := pixel / canvasWidth
	return px >= origin.X && px < origin.X+side &&
		py >= origin.Y && py < origin.Y+side
}

// GridIndex maps a pixel inside the rectangle to the linear grid index it
// displays. The result is meaningless for pixels outside the rectangle.
func GridIndex(pixel, canvasWidth int, origin core.Point, side int) int {
	px := pixel % canvasWidth
	py := pixel / canvasWidth
	return (py-origin.Y)*side + (px - origin.X)
}

// Contains reports whether pixel falls inside this habitat's rectangle.
func (h *Habitat) Contains(pixel, canvasWidth int) bool {
	return Contains(pixel, canvasWidth, h.origin, h.Side())
}

package render

import (
	"image/color"
	"slices"
	"testing"

	"habitat/internal/core"
	"habitat/internal/habitat"
)

func blinker(t *testing.T, origin core.Point) *habitat.Habitat {
	t.Helper()
	h, err := habitat.New(habitat.Config{
		Side:   3,
		Origin: origin,
		Rule:   core.Conway(),
		Live:   []core.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func kinds(width, height int, h *habitat.Habitat, advance bool) []Kind {
	out := make([]Kind, width*height)
	Frame(width, height, h, advance, func(pixel int, k Kind) { out[pixel] = k })
	return out
}

func TestFramePaintsAndAdvances(t *testing.T) {
	h := blinker(t, core.Point{X: 1, Y: 1})
	got := kinds(5, 5, h, true)
	const (
		B = Background
		D = DeadCell
		L = LiveCell
	)
	want := []Kind{
		B, B, B, B, B,
		B, D, L, D, B,
		B, D, L, D, B,
		B, D, L, D, B,
		B, B, B, B, B,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("frame = %v, expected %v", got, want)
	}
	if h.Generation() != 1 || h.Cursor() != 0 {
		t.Fatalf("generation %d cursor %d after frame", h.Generation(), h.Cursor())
	}
	got = kinds(5, 5, h, false)
	want = []Kind{
		B, B, B, B, B,
		B, D, D, D, B,
		B, L, L, L, B,
		B, D, D, D, B,
		B, B, B, B, B,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("second frame = %v, expected %v", got, want)
	}
	if h.Generation() != 1 {
		t.Fatal("paused frame advanced the habitat")
	}
}

func TestFrameClippedCanvasStillAdvances(t *testing.T) {
	h := blinker(t, core.Point{X: 1, Y: 0})
	// Only the first column and two rows of the habitat are visible.
	got := kinds(2, 2, h, true)
	want := []Kind{Background, DeadCell, Background, DeadCell}
	if !slices.Equal(got, want) {
		t.Fatalf("clipped frame = %v, expected %v", got, want)
	}
	if h.Generation() != 1 {
		t.Fatalf("generation = %d, expected 1", h.Generation())
	}
	if !slices.Equal(h.LiveCells(), []core.Coord{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}) {
		t.Fatalf("live cells = %v", h.LiveCells())
	}
}

func TestFrameOffCanvasAdvances(t *testing.T) {
	h := blinker(t, core.Point{X: 50, Y: 50})
	got := kinds(4, 4, h, true)
	for i, k := range got {
		if k != Background {
			t.Fatalf("pixel %d = %v, expected background", i, k)
		}
	}
	if h.Generation() != 1 {
		t.Fatal("off-canvas habitat did not advance")
	}
}

func TestFrameFinishesHandedOverCycle(t *testing.T) {
	h := blinker(t, core.Point{})
	h.Pull()
	h.Pull()
	got := kinds(3, 3, h, true)
	// The partial cycle commits generation 1 (horizontal), the frame shows it
	// and advances to generation 2.
	want := []Kind{
		DeadCell, DeadCell, DeadCell,
		LiveCell, LiveCell, LiveCell,
		DeadCell, DeadCell, DeadCell,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("frame = %v, expected %v", got, want)
	}
	if h.Generation() != 2 || h.Cursor() != 0 {
		t.Fatalf("generation %d cursor %d after frame", h.Generation(), h.Cursor())
	}
}

func TestFillRGBA(t *testing.T) {
	h := blinker(t, core.Point{})
	p := Palette{
		Live:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Dead:       color.RGBA{A: 255},
		Background: color.RGBA{R: 1, G: 2, B: 3, A: 4},
	}
	buf := make([]byte, 4*4*3)
	if !FillRGBA(buf, 4, 3, h, p, true) {
		t.Fatal("FillRGBA rejected a correctly sized buffer")
	}
	pixel := func(x, y int) []byte {
		base := (y*4 + x) * 4
		return buf[base : base+4]
	}
	if !slices.Equal(pixel(1, 0), []byte{255, 255, 255, 255}) {
		t.Fatalf("live pixel = %v", pixel(1, 0))
	}
	if !slices.Equal(pixel(0, 0), []byte{0, 0, 0, 255}) {
		t.Fatalf("dead pixel = %v", pixel(0, 0))
	}
	if !slices.Equal(pixel(3, 2), []byte{1, 2, 3, 4}) {
		t.Fatalf("background pixel = %v", pixel(3, 2))
	}
	if FillRGBA(make([]byte, 3), 4, 3, h, p, true) {
		t.Fatal("FillRGBA accepted a short buffer")
	}
	if h.Generation() != 1 {
		t.Fatalf("generation = %d, a rejected buffer must not advance", h.Generation())
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if p.color(LiveCell) != p.Live || p.color(DeadCell) != p.Dead || p.color(Background) != p.Background {
		t.Fatal("palette lookup mismatch")
	}
}

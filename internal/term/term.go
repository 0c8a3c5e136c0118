package term

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"golang.org/x/sync/errgroup"

	"habitat/internal/habitat"
)

const (
	habitatView = "habitat"
	statusView  = "status"

	defaultInterval = 100 * time.Millisecond
)

// Options controls the terminal driver.
type Options struct {
	// Interval between frames; each unpaused frame advances one generation.
	Interval time.Duration
	// Color enables ANSI colors.
	Color bool
}

type viewer struct {
	hab    *habitat.Habitat
	au     aurora.Aurora
	glyphs Glyphs
	buf    bytes.Buffer

	paused   bool
	stepOnce bool
}

func newViewer(hab *habitat.Habitat, color bool) *viewer {
	au := aurora.NewAurora(color)
	return &viewer{
		hab: hab,
		au:  au,
		glyphs: Glyphs{
			Live:       au.Green("█").String(),
			Dead:       "░",
			Background: " ",
		},
	}
}

// Run shows the habitat until the user quits or ctx is cancelled. Frames are
// posted to the gocui main loop, so the habitat is only touched from that
// goroutine.
func Run(ctx context.Context, hab *habitat.Habitat, opts Options) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer g.Close()

	v := newViewer(hab, opts.Color)
	g.SetManagerFunc(v.layout)
	if err := v.bindKeys(g); err != nil {
		return err
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	loopDone := make(chan struct{})

	eg.Go(func() error {
		// loopDone closes before ctx is cancelled.
		defer cancel()
		defer close(loopDone)
		if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		pump(ctx, loopDone, ticker.C, g.Update, v.frame)
		return nil
	})
	return eg.Wait()
}

// pump posts frame on every tick until the main loop exits. When ctx ends
// first it asks the loop to quit and waits for it. Nothing is posted once
// loopDone is closed: gocui's Update would block forever on a dead loop.
func pump(ctx context.Context, loopDone <-chan struct{}, tick <-chan time.Time, post func(func(*gocui.Gui) error), frame func(*gocui.Gui) error) {
	for {
		select {
		case <-loopDone:
			return
		default:
		}
		select {
		case <-loopDone:
			return
		case <-ctx.Done():
			select {
			case <-loopDone:
				return
			default:
			}
			post(quit)
			<-loopDone
			return
		case <-tick:
			post(frame)
		}
	}
}

func (v *viewer) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxX < 3 || maxY < 6 {
		return nil
	}
	if view, err := g.SetView(habitatView, 0, 0, maxX-1, maxY-4); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		view.Title = " habitat " + v.hab.Rule().String() + " "
	}
	if view, err := g.SetView(statusView, 0, maxY-3, maxX-1, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		view.Title = " q quit, space pause, n step, r reset "
	}
	return nil
}

func (v *viewer) bindKeys(g *gocui.Gui) error {
	bindings := []struct {
		key     interface{}
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeyCtrlC, quitKey},
		{'q', quitKey},
		{gocui.KeySpace, func(*gocui.Gui, *gocui.View) error {
			v.paused = !v.paused
			return nil
		}},
		{'n', func(*gocui.Gui, *gocui.View) error {
			v.stepOnce = true
			return nil
		}},
		{'r', func(*gocui.Gui, *gocui.View) error {
			v.hab.Reset()
			return nil
		}},
	}
	for _, b := range bindings {
		if err := g.SetKeybinding("", b.key, gocui.ModNone, b.handler); err != nil {
			return fmt.Errorf("bind key %v: %w", b.key, err)
		}
	}
	return nil
}

func quitKey(*gocui.Gui, *gocui.View) error { return gocui.ErrQuit }

func quit(*gocui.Gui) error { return gocui.ErrQuit }

// frame runs on the gocui main loop.
func (v *viewer) frame(g *gocui.Gui) error {
	view, err := g.View(habitatView)
	if err != nil {
		// Terminal too small to lay out the views.
		return nil
	}
	advance := v.stepOnce || !v.paused
	v.stepOnce = false

	w, h := view.Size()
	v.buf.Reset()
	renderText(&v.buf, w, h, v.hab, advance, v.glyphs)
	view.Clear()
	if _, err := view.Write(v.buf.Bytes()); err != nil {
		return err
	}

	status, err := g.View(statusView)
	if err != nil {
		return nil
	}
	status.Clear()
	state := v.au.Green("running")
	if v.paused {
		state = v.au.Red("paused")
	}
	_, err = fmt.Fprint(status, statusLine(v.au, v.hab), "  ", state)
	return err
}

func statusLine(au aurora.Aurora, h *habitat.Habitat) string {
	return fmt.Sprintf("%s %d  %s %d  %s %s",
		au.Cyan("generation"), h.Generation(),
		au.Cyan("live"), h.LiveCount(),
		au.Cyan("rule"), h.Rule())
}

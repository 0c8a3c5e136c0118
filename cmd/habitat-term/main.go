package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"

	"habitat/internal/app"
	"habitat/internal/core"
	"habitat/internal/habitat"
	"habitat/internal/term"
)

func main() {
	cfg := app.NewConfig()
	// Terminal cells are much larger than pixels.
	cfg.Side = 48
	cfg.OriginX = 0
	cfg.OriginY = 0

	var (
		interval    = 100 * time.Millisecond
		generations = 100
		every       = 0
		noColor     bool
	)

	flaggy.SetName("habitat-term")
	flaggy.SetDescription("Life-like automaton in the terminal. Rule presets: " + strings.Join(core.RuleNames(), ", "))
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	cfg.Bind(flaggy.DefaultParser)
	flaggy.Bool(&noColor, "", "no-color", "disable ANSI colors")

	tui := flaggy.NewSubcommand("tui")
	tui.Description = "interactive terminal view"
	tui.Duration(&interval, "i", "interval", "time between generations, e.g. 150ms")

	run := flaggy.NewSubcommand("run")
	run.Description = "advance without a UI and print the grid"
	run.Int(&generations, "n", "generations", "generations to advance")
	run.Int(&every, "e", "every", "also print the grid every N generations")

	flaggy.AttachSubcommand(tui, 1)
	flaggy.AttachSubcommand(run, 1)
	flaggy.Parse()

	hc, err := cfg.Habitat()
	if err != nil {
		log.Fatalf("load habitat: %v", err)
	}
	hab, err := habitat.New(hc)
	if err != nil {
		log.Fatalf("build habitat: %v", err)
	}

	switch {
	case run.Used:
		if err := term.Dump(os.Stdout, hab, generations, every, !noColor); err != nil {
			log.Fatalf("dump: %v", err)
		}
	case tui.Used:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := term.Run(ctx, hab, term.Options{Interval: interval, Color: !noColor}); err != nil {
			log.Fatalf("terminal: %v", err)
		}
		log.Printf("stopped at generation %d", hab.Generation())
	default:
		flaggy.ShowHelpAndExit("a subcommand is required")
	}
}

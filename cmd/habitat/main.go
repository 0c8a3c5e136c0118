//go:build ebiten

package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"

	"habitat/internal/app"
	"habitat/internal/habitat"
	"habitat/internal/term"
)

func main() {
	cfg := app.NewConfig()
	flaggy.SetName("habitat")
	flaggy.SetDescription("Life-like automaton drawn one cell per pixel")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	cfg.Bind(flaggy.DefaultParser)
	flaggy.Parse()

	hc, err := cfg.Habitat()
	if err != nil {
		log.Fatalf("load habitat: %v", err)
	}
	hab, err := habitat.New(hc)
	if err != nil {
		log.Fatalf("build habitat: %v", err)
	}
	log.Print(term.Summary(hab))

	game := app.New(hab, cfg)
	w, h := cfg.WindowSize(hab)

	ebiten.SetWindowTitle("habitat — " + hab.Rule().String())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("stopped at generation %d", hab.Generation())
}

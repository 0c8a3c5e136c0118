package ui

import (
	"slices"
	"testing"

	"habitat/internal/core"
)

func TestStatusLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Habitat", Params: []core.Parameter{{Key: "side", Label: "Side", Value: "3"}, {Key: "rule", Label: "Rule", Value: "B3/S23"}}},
		{Name: "Run", Params: []core.Parameter{{Key: "generation", Label: "Generation", Value: "7"}}},
	}}
	got := StatusLines(snap, false)
	want := []string{"Side 3  Rule B3/S23", "Generation 7"}
	if !slices.Equal(got, want) {
		t.Fatalf("lines = %q, expected %q", got, want)
	}
	if paused := StatusLines(snap, true); len(paused) != 3 {
		t.Fatalf("paused lines = %q", paused)
	}
}

package ui

import (
	"strings"

	"habitat/internal/core"
)

// StatusLines formats a parameter snapshot as one line per group, followed by
// a marker line while paused.
func StatusLines(snap core.ParameterSnapshot, paused bool) []string {
	lines := make([]string, 0, len(snap.Groups)+1)
	for _, group := range snap.Groups {
		parts := make([]string, 0, len(group.Params))
		for _, p := range group.Params {
			parts = append(parts, p.Label+" "+p.Value)
		}
		lines = append(lines, strings.Join(parts, "  "))
	}
	if paused {
		lines = append(lines, "[paused] space resume, n step")
	}
	return lines
}

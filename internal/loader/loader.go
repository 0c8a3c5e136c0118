// Package loader reads habitat descriptions from JSON files and plaintext
// .cells patterns.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"habitat/internal/core"
	"habitat/internal/habitat"
)

// ErrInvalidConfig is wrapped by errors about malformed habitat files.
var ErrInvalidConfig = errors.New("invalid habitat config")

// Point is a canvas position in a habitat file.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Offset shifts a pattern inside the grid.
type Offset struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Random describes a random soup.
type Random struct {
	Density float64 `json:"density"`
	Seed    int64   `json:"seed"`
}

// File is the on-disk habitat description. Explicit birth/survival lists take
// precedence over Rule. Cells from Cells, Pattern and Random are combined.
type File struct {
	Side          int      `json:"side"`
	Origin        Point    `json:"origin"`
	Rule          string   `json:"rule,omitempty"`
	Birth         []int    `json:"birth,omitempty"`
	Survival      []int    `json:"survival,omitempty"`
	Cells         [][2]int `json:"cells,omitempty"`
	Pattern       string   `json:"pattern,omitempty"`
	PatternOffset Offset   `json:"pattern_offset"`
	Random        *Random  `json:"random,omitempty"`
}

// DefaultFile returns an empty 256-cell habitat at (16,16) running B3/S23.
func DefaultFile() File {
	return File{
		Side:   256,
		Origin: Point{X: 16, Y: 16},
		Rule:   "B3/S23",
	}
}

// Load parses a habitat file. Missing fields keep their DefaultFile values.
func Load(data []byte) (File, error) {
	f := DefaultFile()
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return f, nil
}

// LoadFile reads and resolves the habitat file at path. A relative pattern
// path is taken relative to the file's directory.
func LoadFile(path string) (habitat.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return habitat.Config{}, fmt.Errorf("read habitat config: %w", err)
	}
	f, err := Load(data)
	if err != nil {
		return habitat.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return f.Resolve(filepath.Dir(path))
}

// Resolve turns the description into a habitat.Config. Coordinates are not
// range-checked here; habitat.New rejects cells outside the grid.
func (f File) Resolve(baseDir string) (habitat.Config, error) {
	rule, err := f.rule()
	if err != nil {
		return habitat.Config{}, err
	}
	cfg := habitat.Config{
		Side:   f.Side,
		Origin: core.Point{X: f.Origin.X, Y: f.Origin.Y},
		Rule:   rule,
	}
	for _, c := range f.Cells {
		cfg.Live = append(cfg.Live, core.Coord{Row: c[0], Col: c[1]})
	}
	if f.Pattern != "" {
		path := f.Pattern
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		cells, err := ReadPlaintextFile(path)
		if err != nil {
			return habitat.Config{}, err
		}
		for _, c := range cells {
			cfg.Live = append(cfg.Live, core.Coord{Row: c.Row + f.PatternOffset.Row, Col: c.Col + f.PatternOffset.Col})
		}
	}
	if f.Random != nil {
		if !core.ValidDensity(f.Random.Density) {
			return habitat.Config{}, fmt.Errorf("%w: random density %v outside [0,1]", ErrInvalidConfig, f.Random.Density)
		}
		cfg.Live = append(cfg.Live, core.RandomCells(core.NewRNG(f.Random.Seed), f.Side, f.Random.Density)...)
	}
	return cfg, nil
}

func (f File) rule() (core.RuleTable, error) {
	if f.Birth != nil || f.Survival != nil {
		return core.NewRuleTable(f.Birth, f.Survival), nil
	}
	if f.Rule == "" {
		return core.Conway(), nil
	}
	r, err := core.ResolveRule(f.Rule)
	if err != nil {
		return core.RuleTable{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return r, nil
}

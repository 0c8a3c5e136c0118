package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"habitat/internal/core"
)

// ParsePlaintext reads a pattern in the plaintext .cells format. Lines
// starting with '!' are comments; 'O', '*' and '█' mark live cells and any
// other rune is dead.
func ParsePlaintext(r io.Reader) ([]core.Coord, error) {
	var out []core.Coord
	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		col := 0
		for _, ch := range line {
			switch ch {
			case 'O', '*', '█':
				out = append(out, core.Coord{Row: row, Col: col})
			}
			col++
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse pattern: %w", err)
	}
	return out, nil
}

// ReadPlaintextFile parses the .cells file at path.
func ReadPlaintextFile(path string) ([]core.Coord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern: %w", err)
	}
	defer f.Close()
	cells, err := ParsePlaintext(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cells, nil
}

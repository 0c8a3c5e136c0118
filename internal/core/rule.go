package core

import (
	"fmt"
	"strings"
)

// MaxNeighbors is the size of the Moore neighborhood.
const MaxNeighbors = 8

// RuleTable is a generalized Life-like birth/survival rule. The zero value is
// a rule under which every cell dies.
type RuleTable struct {
	birth    [MaxNeighbors + 1]bool
	survival [MaxNeighbors + 1]bool
}

// NewRuleTable builds a rule from unordered neighbor-count sets. Duplicates and
// values outside 0..8 are ignored.
func NewRuleTable(birth, survival []int) RuleTable {
	var r RuleTable
	for _, k := range birth {
		if k >= 0 && k <= MaxNeighbors {
			r.birth[k] = true
		}
	}
	for _, k := range survival {
		if k >= 0 && k <= MaxNeighbors {
			r.survival[k] = true
		}
	}
	return r
}

// Conway returns the classical B3/S23 rule.
func Conway() RuleTable {
	return NewRuleTable([]int{3}, []int{2, 3})
}

// NextState applies the rule to a cell with the given live-neighbor count.
// A count outside 0..8 is a caller bug and panics.
func (r RuleTable) NextState(current CellState, liveNeighbors int) CellState {
	if liveNeighbors < 0 || liveNeighbors > MaxNeighbors {
		panic(fmt.Sprintf("core: live neighbor count %d outside 0..%d", liveNeighbors, MaxNeighbors))
	}
	if current == Live {
		if r.survival[liveNeighbors] {
			return Live
		}
		return Dead
	}
	if r.birth[liveNeighbors] {
		return Live
	}
	return Dead
}

// Birth returns the sorted birth counts.
func (r RuleTable) Birth() []int { return counts(r.birth) }

// Survival returns the sorted survival counts.
func (r RuleTable) Survival() []int { return counts(r.survival) }

// String formats the rule in B/S notation, e.g. "B3/S23".
func (r RuleTable) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for _, k := range r.Birth() {
		b.WriteByte(byte('0' + k))
	}
	b.WriteString("/S")
	for _, k := range r.Survival() {
		b.WriteByte(byte('0' + k))
	}
	return b.String()
}

func counts(set [MaxNeighbors + 1]bool) []int {
	out := make([]int, 0, len(set))
	for k, ok := range set {
		if ok {
			out = append(out, k)
		}
	}
	return out
}

// ParseRule parses a rulestring. Accepted forms are "B3/S23", "S23/B3" (any
// letter case) and the legacy survival/birth form "23/3".
func ParseRule(s string) (RuleTable, error) {
	str := strings.ToUpper(strings.TrimSpace(s))
	parts := strings.Split(str, "/")
	if len(parts) != 2 {
		return RuleTable{}, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}
	var birthPart, survivalPart string
	switch {
	case strings.HasPrefix(parts[0], "B") && strings.HasPrefix(parts[1], "S"):
		birthPart, survivalPart = parts[0][1:], parts[1][1:]
	case strings.HasPrefix(parts[0], "S") && strings.HasPrefix(parts[1], "B"):
		survivalPart, birthPart = parts[0][1:], parts[1][1:]
	default:
		survivalPart, birthPart = parts[0], parts[1]
	}
	birth, err := parseCounts(birthPart)
	if err != nil {
		return RuleTable{}, fmt.Errorf("%w: %q: %v", ErrInvalidRule, s, err)
	}
	survival, err := parseCounts(survivalPart)
	if err != nil {
		return RuleTable{}, fmt.Errorf("%w: %q: %v", ErrInvalidRule, s, err)
	}
	return NewRuleTable(birth, survival), nil
}

func parseCounts(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, ch := range s {
		if ch < '0' || ch > '0'+MaxNeighbors {
			return nil, fmt.Errorf("unexpected %q", ch)
		}
		out = append(out, int(ch-'0'))
	}
	return out, nil
}

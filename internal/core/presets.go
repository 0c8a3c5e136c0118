package core

import (
	"sort"
	"strings"
)

var rules = map[string]RuleTable{}

// RegisterRule adds a named rule preset. Names are case-insensitive.
func RegisterRule(name string, r RuleTable) {
	if name == "" {
		return
	}
	rules[strings.ToLower(name)] = r
}

// LookupRule returns the preset registered under name.
func LookupRule(name string) (RuleTable, bool) {
	r, ok := rules[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// RuleNames lists the registered presets in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveRule accepts either a preset name or a rulestring.
func ResolveRule(s string) (RuleTable, error) {
	if r, ok := LookupRule(s); ok {
		return r, nil
	}
	return ParseRule(s)
}

func init() {
	RegisterRule("life", Conway())
	RegisterRule("highlife", NewRuleTable([]int{3, 6}, []int{2, 3}))
	RegisterRule("seeds", NewRuleTable([]int{2}, nil))
	RegisterRule("daynight", NewRuleTable([]int{3, 6, 7, 8}, []int{3, 4, 6, 7, 8}))
	RegisterRule("replicator", NewRuleTable([]int{1, 3, 5, 7}, []int{1, 3, 5, 7}))
	RegisterRule("maze", NewRuleTable([]int{3}, []int{1, 2, 3, 4, 5}))
	RegisterRule("diamoeba", NewRuleTable([]int{3, 5, 6, 7, 8}, []int{5, 6, 7, 8}))
	RegisterRule("2x2", NewRuleTable([]int{3, 6}, []int{1, 2, 5}))
	RegisterRule("morley", NewRuleTable([]int{3, 6, 8}, []int{2, 4, 5}))
	RegisterRule("lifewithoutdeath", NewRuleTable([]int{3}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}))
}

package domain

import (
	"cmp"
	"slices"
	"strings"
)

// WildcardSuffix marks an alias that only matches requests longer than its prefix.
const WildcardSuffix = "/*"

// Alias maps a path-mapping prefix to its candidate base directories.
type Alias struct {
	Pattern string
	Targets []string
}

// Prefix returns the pattern without its wildcard suffix.
func (a Alias) Prefix() string {
	return strings.TrimSuffix(a.Pattern, WildcardSuffix)
}

// Wildcard reports whether the pattern ends in "/*".
func (a Alias) Wildcard() bool {
	return strings.HasSuffix(a.Pattern, WildcardSuffix)
}

// Match reports whether request is covered by the alias and returns the remainder
// with any leading slash trimmed.
func (a Alias) Match(request string) (string, bool) {
	prefix := a.Prefix()
	if !strings.HasPrefix(request, prefix) {
		return "", false
	}
	if a.Wildcard() && len(request) <= len(prefix) {
		return "", false
	}
	return strings.TrimLeft(request[len(prefix):], "/"), true
}

// AliasTable is the ordered set of path aliases for a workspace. It is built once
// and never mutated afterwards, so it is safe to share between goroutines.
type AliasTable struct {
	aliases []Alias
}

// NewAliasTable builds a table from a pattern to targets mapping. Longer patterns come
// first so that "@app/ui" wins over "@app"; equal lengths are ordered lexically.
func NewAliasTable(paths map[string][]string) AliasTable {
	aliases := make([]Alias, 0, len(paths))
	for pattern, targets := range paths {
		if len(targets) == 0 {
			continue
		}
		aliases = append(aliases, Alias{Pattern: pattern, Targets: slices.Clone(targets)})
	}
	slices.SortFunc(aliases, func(a, b Alias) int {
		if c := cmp.Compare(len(b.Pattern), len(a.Pattern)); c != 0 {
			return c
		}
		return strings.Compare(a.Pattern, b.Pattern)
	})
	return AliasTable{aliases: aliases}
}

// All returns the aliases in match order.
func (t AliasTable) All() []Alias {
	return t.aliases
}

// Len returns the number of aliases.
func (t AliasTable) Len() int {
	return len(t.aliases)
}

package lexer

import (
	"fmt"
	"slices"
	"strings"
)

// Stats summarizes a token sequence. It is computed after the scan, so scans
// stay free of shared counters.
type Stats struct {
	Total  int
	ByKind map[Kind]int
	ByType map[string]int
}

// Summarize counts tokens per kind and per serialized type
func Summarize(tokens []Token) Stats {
	stats := Stats{
		Total:  len(tokens),
		ByKind: make(map[Kind]int),
		ByType: make(map[string]int),
	}
	for _, tok := range tokens {
		stats.ByKind[tok.Kind]++
		stats.ByType[tok.Type]++
	}
	return stats
}

// String renders the per-kind counts in kind order, e.g.
// "total=4 keyword=1 identifier=1 number=1 unknown-symbol=1".
func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "total=%d", s.Total)

	kinds := make([]Kind, 0, len(s.ByKind))
	for k := range s.ByKind {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	for _, k := range kinds {
		fmt.Fprintf(&b, " %s=%d", k, s.ByKind[k])
	}
	return b.String()
}

package lexer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSymbolTableDerivedSets(t *testing.T) {
	table, err := NewSymbolTable(fixtureKeywords, fixtureSymbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"keywords", table.Keywords(), []string{"if", "let"}},
		{"symbols", table.Symbols(), []string{"(", ")", "+", "+="}},
		{"firsts", string(table.SymbolFirsts()), "()+"},
		{"rests", string(table.SymbolRests()), "="},
		{"simple", table.SimpleSymbols(), []string{"(", ")"}},
		{"multiple", table.MultipleSymbols(), []string{"+", "+="}},
		{"ambiguous", string(table.Ambiguous()), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestSymbolTablePartition(t *testing.T) {
	configs := map[string][]string{
		"fixture":       fixtureSymbols,
		"only simple":   {"(", ")", ";", ","},
		"only multiple": {"==", "!=", "->"},
		"rest is head":  {"<", "<=", "=", "=="},
		"long symbols":  {"...", ".", "<<=", "<<", "<"},
		"duplicates":    {"+", "+", "+=", "+="},
		"empty":         {},
	}

	for name, symbols := range configs {
		t.Run(name, func(t *testing.T) {
			table, err := NewSymbolTable(nil, symbols)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			seen := make(map[string]int)
			for _, s := range table.SimpleSymbols() {
				seen[s]++
			}
			for _, s := range table.MultipleSymbols() {
				seen[s]++
			}
			for s, n := range seen {
				if n != 1 {
					t.Errorf("symbol %q appears in %d partitions", s, n)
				}
			}
			if diff := cmp.Diff(table.Symbols(), sortedKeys(toSet(seen))); diff != "" {
				t.Errorf("partition does not cover symbols (-symbols +union):\n%s", diff)
			}
		})
	}
}

func toSet(m map[string]int) map[string]struct{} {
	set := make(map[string]struct{}, len(m))
	for k := range m {
		set[k] = struct{}{}
	}
	return set
}

func TestSymbolTableSimpleRules(t *testing.T) {
	table := MustSymbolTable(nil, []string{"<", "<=", "=", ";", "!", "!="})

	// "<" heads "<=", "=" continues "<=", "!" heads "!=": only ";" is simple
	if diff := cmp.Diff([]string{";"}, table.SimpleSymbols()); diff != "" {
		t.Errorf("simple symbols mismatch (-want +got):\n%s", diff)
	}
	if got := string(table.Ambiguous()); got != "=" {
		t.Errorf("Ambiguous() = %q, want %q", got, "=")
	}
	if !table.IsSimple(';') || table.IsSimple('<') || table.IsSimple(0xff) {
		t.Error("IsSimple disagrees with SimpleSymbols")
	}
}

func TestSymbolTableIdempotent(t *testing.T) {
	a := MustSymbolTable(fixtureKeywords, fixtureSymbols)
	b := MustSymbolTable([]string{"let", "if", "let"}, []string{")", "+=", "(", "+"})

	if !a.Equal(b) {
		t.Error("tables built from the same sets should be equal")
	}

	c := MustSymbolTable(fixtureKeywords, []string{"+", "("})
	if a.Equal(c) {
		t.Error("tables built from different symbols should differ")
	}
	if a.Equal(nil) {
		t.Error("table should not equal nil")
	}
}

func TestSymbolTableAccessorsReturnCopies(t *testing.T) {
	table := MustSymbolTable(fixtureKeywords, fixtureSymbols)

	kws := table.Keywords()
	kws[0] = "mutated"

	if table.Keywords()[0] != "if" {
		t.Error("mutating the returned slice changed the table")
	}
}

func TestSymbolTableErrors(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		symbols  []string
		want     error
	}{
		{"empty keyword", []string{"if", ""}, nil, ErrInvalidKeyword},
		{"empty symbol", nil, []string{"+", ""}, ErrInvalidSymbol},
		{"letter in symbol", nil, []string{"a+"}, ErrInvalidSymbol},
		{"digit in symbol", nil, []string{"1"}, ErrInvalidSymbol},
		{"space in symbol", nil, []string{"+ ="}, ErrInvalidSymbol},
		{"tab symbol", nil, []string{"\t"}, ErrInvalidSymbol},
		{"non-ascii symbol", nil, []string{"→"}, ErrInvalidSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewSymbolTable(tt.keywords, tt.symbols)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if table != nil {
				t.Error("expected nil table on error")
			}
		})
	}
}

func TestCheckPartitionDetectsInconsistency(t *testing.T) {
	set := func(items ...string) map[string]struct{} {
		m := make(map[string]struct{})
		for _, it := range items {
			m[it] = struct{}{}
		}
		return m
	}

	tests := []struct {
		name     string
		symbols  map[string]struct{}
		simple   map[string]struct{}
		multiple map[string]struct{}
	}{
		{"overlap", set("+", "("), set("+", "("), set("+")},
		{"missing", set("+", "(", ")"), set("("), set("+")},
		{"foreign simple", set("+"), set(";"), set("+")},
		{"foreign multiple", set("+"), set(), set("+", "-")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkPartition(tt.symbols, tt.simple, tt.multiple)
			if !errors.Is(err, ErrInconsistentTable) {
				t.Errorf("expected ErrInconsistentTable, got %v", err)
			}
		})
	}

	if err := checkPartition(set("+", "("), set("("), set("+")); err != nil {
		t.Errorf("valid partition rejected: %v", err)
	}
}

func TestMustSymbolTablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid static table")
		}
	}()
	MustSymbolTable(nil, []string{"ab"})
}

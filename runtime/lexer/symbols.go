package lexer

import (
	"errors"
	"fmt"
	"slices"

	"github.com/opal-lang/tokscan/core/invariant"
)

var (
	// ErrInvalidKeyword reports an empty keyword.
	ErrInvalidKeyword = errors.New("invalid keyword")
	// ErrInvalidSymbol reports an empty symbol or a symbol containing a
	// letter, digit, whitespace, control or non-ASCII byte.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrInconsistentTable reports that the simple and multiple symbol sets
	// do not partition the symbol set. No scan can be correct with such a table.
	ErrInconsistentTable = errors.New("inconsistent symbol table")
)

// SymbolTable holds the keyword and symbol sets together with the sets derived
// from them. It is built once and never modified, so one table can be shared by
// any number of concurrent scans.
type SymbolTable struct {
	keywords map[string]struct{}
	symbols  map[string]struct{}

	firsts [128]bool // first character of any symbol
	rests  [128]bool // any non-first character of any symbol
	simple [128]bool // one-character symbols that can be emitted immediately

	keywordList  []string
	symbolList   []string
	simpleList   []string
	multipleList []string
}

// NewSymbolTable derives the lookup sets from the keyword and symbol lists.
// Duplicates are allowed and collapse.
func NewSymbolTable(keywords, symbols []string) (*SymbolTable, error) {
	t := &SymbolTable{
		keywords: make(map[string]struct{}, len(keywords)),
		symbols:  make(map[string]struct{}, len(symbols)),
	}

	for i, kw := range keywords {
		if kw == "" {
			return nil, fmt.Errorf("keyword %d is empty: %w", i, ErrInvalidKeyword)
		}
		t.keywords[kw] = struct{}{}
	}

	var heads [128]bool // first character of a symbol longer than one character
	for i, sym := range symbols {
		if err := checkSymbol(sym); err != nil {
			return nil, fmt.Errorf("symbol %d: %w", i, err)
		}
		t.symbols[sym] = struct{}{}
		t.firsts[sym[0]] = true
		if len(sym) > 1 {
			heads[sym[0]] = true
		}
		for j := 1; j < len(sym); j++ {
			t.rests[sym[j]] = true
		}
	}

	simple := make(map[string]struct{})
	multiple := make(map[string]struct{})
	for sym := range t.symbols {
		ch := sym[0]
		if len(sym) == 1 && !heads[ch] && !t.rests[ch] {
			t.simple[ch] = true
			simple[sym] = struct{}{}
		} else {
			multiple[sym] = struct{}{}
		}
	}

	if err := checkPartition(t.symbols, simple, multiple); err != nil {
		return nil, err
	}

	t.keywordList = sortedKeys(t.keywords)
	t.symbolList = sortedKeys(t.symbols)
	t.simpleList = sortedKeys(simple)
	t.multipleList = sortedKeys(multiple)
	return t, nil
}

// MustSymbolTable is NewSymbolTable for static lists that are known to be valid.
func MustSymbolTable(keywords, symbols []string) *SymbolTable {
	t, err := NewSymbolTable(keywords, symbols)
	invariant.ExpectNoError(err, "building symbol table")
	return t
}

func checkSymbol(sym string) error {
	if sym == "" {
		return fmt.Errorf("empty string: %w", ErrInvalidSymbol)
	}
	for i := 0; i < len(sym); i++ {
		ch := sym[i]
		if ch >= 128 || !isSymbolChar[ch] {
			return fmt.Errorf("%q: character %q is not printable punctuation: %w", sym, ch, ErrInvalidSymbol)
		}
	}
	return nil
}

// checkPartition verifies that simple and multiple are disjoint and that their
// union is exactly symbols.
func checkPartition(symbols, simple, multiple map[string]struct{}) error {
	for sym := range simple {
		if _, ok := multiple[sym]; ok {
			return fmt.Errorf("%w: %q is both simple and multiple", ErrInconsistentTable, sym)
		}
		if _, ok := symbols[sym]; !ok {
			return fmt.Errorf("%w: simple symbol %q is not a symbol", ErrInconsistentTable, sym)
		}
	}
	for sym := range multiple {
		if _, ok := symbols[sym]; !ok {
			return fmt.Errorf("%w: multiple symbol %q is not a symbol", ErrInconsistentTable, sym)
		}
	}
	if len(simple)+len(multiple) != len(symbols) {
		return fmt.Errorf("%w: %d simple + %d multiple symbols, want %d",
			ErrInconsistentTable, len(simple), len(multiple), len(symbols))
	}
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func collect(table *[128]bool) []byte {
	var out []byte
	for i, ok := range table {
		if ok {
			out = append(out, byte(i))
		}
	}
	return out
}

// Keywords returns the keyword set in sorted order.
func (t *SymbolTable) Keywords() []string { return slices.Clone(t.keywordList) }

// Symbols returns the symbol set in sorted order.
func (t *SymbolTable) Symbols() []string { return slices.Clone(t.symbolList) }

// SimpleSymbols returns the one-character symbols emitted without buffering.
func (t *SymbolTable) SimpleSymbols() []string { return slices.Clone(t.simpleList) }

// MultipleSymbols returns the symbols that need buffered recognition.
func (t *SymbolTable) MultipleSymbols() []string { return slices.Clone(t.multipleList) }

// SymbolFirsts returns the first characters of all symbols in byte order.
func (t *SymbolTable) SymbolFirsts() []byte { return collect(&t.firsts) }

// SymbolRests returns every character found after the first position of a symbol.
func (t *SymbolTable) SymbolRests() []byte { return collect(&t.rests) }

// Ambiguous returns characters that are both a symbol first and a symbol rest.
// Such a character classifies as symbol-first, so it never extends a symbol
// that is already being buffered.
func (t *SymbolTable) Ambiguous() []byte {
	var both [128]bool
	for i := range both {
		both[i] = t.firsts[i] && t.rests[i]
	}
	return collect(&both)
}

// IsSimple reports whether ch is a simple symbol.
func (t *SymbolTable) IsSimple(ch byte) bool {
	return ch < 128 && t.simple[ch]
}

// Equal reports whether two tables hold the same sets.
func (t *SymbolTable) Equal(other *SymbolTable) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.firsts == other.firsts &&
		t.rests == other.rests &&
		t.simple == other.simple &&
		slices.Equal(t.keywordList, other.keywordList) &&
		slices.Equal(t.symbolList, other.symbolList) &&
		slices.Equal(t.simpleList, other.simpleList) &&
		slices.Equal(t.multipleList, other.multipleList)
}

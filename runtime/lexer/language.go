package lexer

import (
	"fmt"

	"github.com/opal-lang/tokscan/core/lang"
)

// NewLanguageScanner validates l and builds a scanner for it. Any error is a
// configuration error: no scan may run with the returned scanner being nil.
func NewLanguageScanner(l *lang.Language, opts ...ScanOpt) (*Scanner, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("language %q: %w", l.Name, err)
	}
	table, err := NewSymbolTable(l.Keywords, l.Symbols)
	if err != nil {
		return nil, fmt.Errorf("language %q: %w", l.Name, err)
	}
	opts = append([]ScanOpt{WithIdentifierTag(l.IdentifierTag)}, opts...)
	return NewScanner(table, opts...), nil
}

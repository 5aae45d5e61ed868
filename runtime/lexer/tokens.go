package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies how a token was produced. The serialized form only carries
// Type; Kind lets in-process consumers tell keywords from symbols without
// consulting the symbol table again.
type Kind int

const (
	KindKeyword       Kind = iota // type and value are the keyword text
	KindSymbol                    // type and value are a known symbol
	KindIdentifier                // type is the identifier tag, value the raw text
	KindNumber                    // type is "number", value the digits
	KindUnknownSymbol             // symbol characters that matched no symbol; type is the raw text
)

// String returns the kind name used in diagnostics and summaries
func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindSymbol:
		return "symbol"
	case KindIdentifier:
		return "identifier"
	case KindNumber:
		return "number"
	case KindUnknownSymbol:
		return "unknown-symbol"
	default:
		return "unknown"
	}
}

// Generic type tags
const (
	TypeIdentifier = "identifier"
	TypeNumber     = "number"

	// LegacyIdentifierTag is the identifier tag written by the first
	// generation of the toolchain.
	LegacyIdentifierTag = "string"
)

// ErrNumberRange reports a numeric literal that does not fit in an int64.
var ErrNumberRange = errors.New("numeric literal out of int64 range")

// Position is the location of a token's first character
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one classified lexical unit. Tokens are values and are never
// modified after the scanner emits them.
type Token struct {
	Kind     Kind
	Type     string
	Text     string // value for every kind; for numbers, the digits as written
	Position Position
}

// Value returns the value in its serialized shape: the canonical digit
// string for numbers, the text otherwise.
func (t Token) Value() string {
	if t.Kind == KindNumber {
		return t.Digits()
	}
	return t.Text
}

// Digits returns a number token's digits without leading zeros.
func (t Token) Digits() string {
	d := strings.TrimLeft(t.Text, "0")
	if d == "" {
		return "0"
	}
	return d
}

// Int64 parses a number token. Literals beyond the int64 range return an
// error wrapping ErrNumberRange; the token itself stays valid.
func (t Token) Int64() (int64, error) {
	if t.Kind != KindNumber {
		return 0, fmt.Errorf("token %q is a %s, not a number", t.Text, t.Kind)
	}
	n, err := strconv.ParseInt(t.Digits(), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%s: %w", t.Text, ErrNumberRange)
		}
		return 0, fmt.Errorf("parse number %q: %w", t.Text, err)
	}
	return n, nil
}

func (t Token) String() string {
	if t.Type == t.Text {
		return t.Type
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Value())
}

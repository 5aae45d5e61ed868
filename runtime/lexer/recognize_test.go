package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecognizeKeyword(t *testing.T) {
	table := MustSymbolTable(fixtureKeywords, fixtureSymbols)

	tok, ok := table.RecognizeKeyword("let")
	if !ok {
		t.Fatal("expected let to be a keyword")
	}
	if diff := cmp.Diff(Token{Kind: KindKeyword, Type: "let", Text: "let"}, tok); diff != "" {
		t.Errorf("keyword token mismatch (-want +got):\n%s", diff)
	}

	for _, text := range []string{"", "le", "lets", "Let", "+"} {
		if _, ok := table.RecognizeKeyword(text); ok {
			t.Errorf("RecognizeKeyword(%q) matched", text)
		}
	}
}

func TestRecognizeSymbol(t *testing.T) {
	table := MustSymbolTable(fixtureKeywords, fixtureSymbols)

	for _, text := range fixtureSymbols {
		tok, ok := table.RecognizeSymbol(text)
		if !ok {
			t.Errorf("RecognizeSymbol(%q) did not match", text)
			continue
		}
		if tok.Kind != KindSymbol || tok.Type != text || tok.Text != text {
			t.Errorf("RecognizeSymbol(%q) = %+v", text, tok)
		}
	}

	for _, text := range []string{"", "++", "+= ", "let", "=="} {
		if _, ok := table.RecognizeSymbol(text); ok {
			t.Errorf("RecognizeSymbol(%q) matched", text)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: KindKeyword, Type: "let", Text: "let"}, "let"},
		{Token{Kind: KindIdentifier, Type: "identifier", Text: "x"}, "identifier(x)"},
		{Token{Kind: KindNumber, Type: "number", Text: "007"}, "number(7)"},
		{Token{Kind: KindUnknownSymbol, Type: "==", Text: "=="}, "=="},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

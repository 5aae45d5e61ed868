package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fixtureKeywords and fixtureSymbols are the reference fixture language
var (
	fixtureKeywords = []string{"if", "let"}
	fixtureSymbols  = []string{"+", "+=", "(", ")"}
)

func newFixtureScanner(t testing.TB, opts ...ScanOpt) *Scanner {
	t.Helper()
	table, err := NewSymbolTable(fixtureKeywords, fixtureSymbols)
	if err != nil {
		t.Fatalf("fixture table: %v", err)
	}
	return NewScanner(table, opts...)
}

// tokenExpectation represents an expected token for testing
type tokenExpectation struct {
	Kind   Kind
	Type   string
	Text   string
	Line   int
	Column int
}

func toExpectations(tokens []Token) []tokenExpectation {
	actual := []tokenExpectation{}
	for _, tok := range tokens {
		actual = append(actual, tokenExpectation{
			Kind:   tok.Kind,
			Type:   tok.Type,
			Text:   tok.Text,
			Line:   tok.Position.Line,
			Column: tok.Position.Column,
		})
	}
	return actual
}

// assertTokens compares scanned tokens with expected ones
func assertTokens(t *testing.T, scanner *Scanner, input string, expected []tokenExpectation) {
	t.Helper()

	if expected == nil {
		expected = []tokenExpectation{}
	}
	actual := toExpectations(scanner.ScanString(input))

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("%q: token mismatch (-expected +actual):\n%s", input, diff)
	}
}

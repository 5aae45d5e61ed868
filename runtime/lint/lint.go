// Package lint reports suspicious tokens in a scanned sequence. It only
// reports: the token sequence is never changed and no rule fails a scan.
package lint

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/opal-lang/tokscan/runtime/lexer"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic codes
const (
	CodeUnknownSymbol    = "unknown-symbol"
	CodeKeywordTypo      = "keyword-typo"
	CodeMergedIdentifier = "merged-identifier"
	CodeNumberRange      = "number-range"
)

// Diagnostic is one finding
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Help     string // suggested fix, may be empty
	Position lexer.Position
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s [%s]", d.Position, d.Severity, d.Message, d.Code)
}

// minTypoLength keeps short names such as "i" or "fo" out of keyword-typo
const minTypoLength = 3

// Check runs every rule over tokens and returns the findings ordered by position
func Check(tokens []lexer.Token, table *lexer.SymbolTable) []Diagnostic {
	keywords := table.Keywords()
	symbols := table.Symbols()

	var diags []Diagnostic
	for _, tok := range tokens {
		switch tok.Kind {
		case lexer.KindUnknownSymbol:
			diags = append(diags, unknownSymbol(tok, symbols))
		case lexer.KindIdentifier:
			if d, ok := keywordTypo(tok, keywords); ok {
				diags = append(diags, d)
			}
			if d, ok := mergedIdentifier(tok, table); ok {
				diags = append(diags, d)
			}
		case lexer.KindNumber:
			if d, ok := numberRange(tok); ok {
				diags = append(diags, d)
			}
		}
	}

	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Position.Offset < diags[j].Position.Offset
	})
	return diags
}

// HasErrors reports whether any diagnostic has Error severity
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

func unknownSymbol(tok lexer.Token, symbols []string) Diagnostic {
	d := Diagnostic{
		Severity: Warning,
		Code:     CodeUnknownSymbol,
		Message:  fmt.Sprintf("%q is not a symbol of the language", tok.Text),
		Position: tok.Position,
	}
	if match := findClosestMatch(tok.Text, symbols); match != "" {
		d.Help = fmt.Sprintf("did you mean %q?", match)
	}
	return d
}

// findClosestMatch returns the candidate that contains target's characters in
// order with the fewest edits. Ties keep candidate order.
func findClosestMatch(target string, candidates []string) string {
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	return ranks[0].Target
}

func keywordTypo(tok lexer.Token, keywords []string) (Diagnostic, bool) {
	if len(tok.Text) < minTypoLength {
		return Diagnostic{}, false
	}
	for _, kw := range keywords {
		if fuzzy.LevenshteinDistance(tok.Text, kw) == 1 {
			return Diagnostic{
				Severity: Warning,
				Code:     CodeKeywordTypo,
				Message:  fmt.Sprintf("identifier %q is one edit away from keyword %q", tok.Text, kw),
				Help:     fmt.Sprintf("did you mean %q?", kw),
				Position: tok.Position,
			}, true
		}
	}
	return Diagnostic{}, false
}

func mergedIdentifier(tok lexer.Token, table *lexer.SymbolTable) (Diagnostic, bool) {
	for i := 0; i < len(tok.Text); i++ {
		switch table.Classify(tok.Text[i]) {
		case lexer.ClassSymbolFirst, lexer.ClassSymbolRest:
			return Diagnostic{
				Severity: Warning,
				Code:     CodeMergedIdentifier,
				Message:  fmt.Sprintf("identifier %q contains symbol character %q", tok.Text, tok.Text[i]),
				Help:     "separate operators from names with whitespace",
				Position: tok.Position,
			}, true
		}
	}
	return Diagnostic{}, false
}

func numberRange(tok lexer.Token) (Diagnostic, bool) {
	_, err := tok.Int64()
	if !errors.Is(err, lexer.ErrNumberRange) {
		return Diagnostic{}, false
	}
	return Diagnostic{
		Severity: Error,
		Code:     CodeNumberRange,
		Message:  fmt.Sprintf("numeric literal %s does not fit in a 64-bit integer", tok.Text),
		Position: tok.Position,
	}, true
}

// Package lang holds the static language definition consumed by the scanner:
// the keyword set, the symbol set and the tag written for identifiers.
//
// A definition is loaded once at startup, from the built-in default or from a
// YAML file (JSON files are accepted as YAML), and is never changed per scan.
package lang

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// DefaultIdentifierTag is the type tag of identifiers that are not keywords
const DefaultIdentifierTag = "identifier"

// Language is a language definition
type Language struct {
	Name          string   `yaml:"name" json:"name"`
	Version       string   `yaml:"version,omitempty" json:"version,omitempty"`
	IdentifierTag string   `yaml:"identifier_tag,omitempty" json:"identifier_tag,omitempty"`
	Keywords      []string `yaml:"keywords" json:"keywords"`
	Symbols       []string `yaml:"symbols" json:"symbols"`
}

// Default returns the built-in toy language.
//
// Plain "=" is left out of Symbols. '=' already continues "+=", "<=" and the
// other compound operators; as a symbol of its own it would also be a symbol
// first character, which always closes the open symbol, so "a <= b" would scan
// as "<=" followed by a second "=". Without it, assignment scans as an
// unknown-symbol token typed "=".
func Default() *Language {
	return &Language{
		Name:          "toy",
		Version:       "v1.0.0",
		IdentifierTag: DefaultIdentifierTag,
		Keywords: []string{
			"let", "const", "if", "else", "while", "for",
			"return", "function", "true", "false",
		},
		Symbols: []string{
			"+", "+=", "-", "-=", "*", "*=", "/", "/=", "%",
			"(", ")", "{", "}", "[", "]", ";", ",", ".",
			"<", "<=", ">", ">=", "!", "!=",
		},
	}
}

// Parse decodes and validates a YAML (or JSON) language definition
func Parse(data []byte) (*Language, error) {
	var l Language
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode language definition: %w", err)
	}
	if l.IdentifierTag == "" {
		l.IdentifierTag = DefaultIdentifierTag
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads a language definition from path
func Load(path string) (*Language, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read language definition: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// ValidationError describes one invalid field of a definition
type ValidationError struct {
	Field  string
	Index  int // position in a list field, -1 for scalar fields
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s[%d] %q: %s", e.Field, e.Index, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

// Validate checks the definition and reports every problem found, joined.
// Use errors.As to reach the individual *ValidationError values.
func (l *Language) Validate() error {
	var errs []error
	add := func(field string, index int, value, reason string) {
		errs = append(errs, &ValidationError{Field: field, Index: index, Value: value, Reason: reason})
	}

	if strings.TrimSpace(l.Name) == "" {
		add("name", -1, l.Name, "must not be empty")
	}
	if l.Version != "" && !semver.IsValid(canonicalVersion(l.Version)) {
		add("version", -1, l.Version, "must be a semantic version")
	}
	if l.IdentifierTag == "" {
		add("identifier_tag", -1, l.IdentifierTag, "must not be empty")
	}

	for i, kw := range l.Keywords {
		if reason := keywordProblem(kw); reason != "" {
			add("keywords", i, kw, reason)
		}
	}

	if len(l.Symbols) == 0 {
		add("symbols", -1, "", "at least one symbol is required")
	}
	for i, sym := range l.Symbols {
		if reason := symbolProblem(sym); reason != "" {
			add("symbols", i, sym, reason)
		}
	}

	return errors.Join(errs...)
}

// canonicalVersion adds the "v" prefix semver requires
func canonicalVersion(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

func isASCIILetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isASCIIDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// keywordProblem returns why kw can never be scanned as a keyword, or ""
func keywordProblem(kw string) string {
	if kw == "" {
		return "must not be empty"
	}
	if !isASCIILetter(kw[0]) {
		return "must start with an ASCII letter"
	}
	for i := 1; i < len(kw); i++ {
		if !isASCIILetter(kw[i]) && !isASCIIDigit(kw[i]) {
			return "must contain only ASCII letters and digits"
		}
	}
	return ""
}

// symbolProblem returns why sym is not a valid symbol, or ""
func symbolProblem(sym string) string {
	if sym == "" {
		return "must not be empty"
	}
	for i := 0; i < len(sym); i++ {
		ch := sym[i]
		if ch <= ' ' || ch >= 0x7f || isASCIILetter(ch) || isASCIIDigit(ch) {
			return "must contain only printable ASCII punctuation"
		}
	}
	return ""
}

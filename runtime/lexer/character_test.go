package lexer

import "testing"

func TestClassify(t *testing.T) {
	table := MustSymbolTable(nil, []string{"<", "<=", "=", "+=", "("})

	tests := []struct {
		name string
		char byte
		want CharClass
	}{
		{"lowercase letter", 'a', ClassLetter},
		{"uppercase letter", 'Z', ClassLetter},
		{"digit", '7', ClassDigit},
		{"symbol head", '<', ClassSymbolFirst},
		{"head and continuation prefers first", '=', ClassSymbolFirst},
		{"simple symbol", '(', ClassSymbolFirst},
		{"underscore is not a letter", '_', ClassOther},
		{"space", ' ', ClassOther},
		{"newline", '\n', ClassOther},
		{"unlisted punctuation", ';', ClassOther},
		{"non-ascii byte", 0xc3, ClassOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Classify(tt.char); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.char, got, tt.want)
			}
		})
	}
}

func TestClassifyContinuationOnly(t *testing.T) {
	table := MustSymbolTable(nil, []string{"+="})

	if got := table.Classify('='); got != ClassSymbolRest {
		t.Errorf("Classify('=') = %s, want %s", got, ClassSymbolRest)
	}
	if got := table.Classify('+'); got != ClassSymbolFirst {
		t.Errorf("Classify('+') = %s, want %s", got, ClassSymbolFirst)
	}
}

// TestFlushCharIsOther guards the end-of-input flush for every valid table
func TestFlushCharIsOther(t *testing.T) {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		if !isSymbolChar[ch] {
			continue
		}
		table := MustSymbolTable(nil, []string{string(ch)})
		if got := table.Classify(flushChar); got != ClassOther {
			t.Fatalf("flush char classifies as %s with symbol %q", got, ch)
		}
	}
}

func TestCharClassString(t *testing.T) {
	names := map[CharClass]string{
		ClassLetter:      "letter",
		ClassDigit:       "digit",
		ClassSymbolFirst: "symbol-first",
		ClassSymbolRest:  "symbol-rest",
		ClassOther:       "other",
		CharClass(42):    "unknown",
	}
	for class, want := range names {
		if got := class.String(); got != want {
			t.Errorf("CharClass(%d).String() = %q, want %q", int(class), got, want)
		}
	}
}

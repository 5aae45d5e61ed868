package lexer

// RecognizeKeyword returns a keyword token when text is exactly a keyword.
// The returned token has no position; the scanner fills it in.
func (t *SymbolTable) RecognizeKeyword(text string) (Token, bool) {
	if _, ok := t.keywords[text]; !ok {
		return Token{}, false
	}
	return Token{Kind: KindKeyword, Type: text, Text: text}, true
}

// RecognizeSymbol returns a symbol token when text is exactly a symbol.
func (t *SymbolTable) RecognizeSymbol(text string) (Token, bool) {
	if _, ok := t.symbols[text]; !ok {
		return Token{}, false
	}
	return Token{Kind: KindSymbol, Type: text, Text: text}, true
}

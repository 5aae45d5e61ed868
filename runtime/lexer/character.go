package lexer

// CharClass is the semantic class of one input byte
type CharClass int

const (
	ClassLetter      CharClass = iota // a-z, A-Z
	ClassDigit                        // 0-9
	ClassSymbolFirst                  // first character of some symbol
	ClassSymbolRest                   // non-first character of some multi-character symbol
	ClassOther                        // whitespace, unknown punctuation, non-ASCII
)

func (c CharClass) String() string {
	switch c {
	case ClassLetter:
		return "letter"
	case ClassDigit:
		return "digit"
	case ClassSymbolFirst:
		return "symbol-first"
	case ClassSymbolRest:
		return "symbol-rest"
	case ClassOther:
		return "other"
	default:
		return "unknown"
	}
}

// ASCII lookup tables for the fixed part of the alphabet.
//
//	if ch < 128 && isLetter[ch] { ... }
var (
	isLetter     [128]bool // a-z, A-Z
	isDigit      [128]bool // 0-9
	isSymbolChar [128]bool // printable ASCII that may appear in a symbol
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isLetter[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
		isDigit[i] = '0' <= ch && ch <= '9'
		isSymbolChar[i] = ch > ' ' && ch < 0x7f && !isLetter[i] && !isDigit[i]
	}
}

// Classify maps one byte to its class. Letters and digits win over symbol
// membership, and symbol-first wins over symbol-rest. Classify only reads the
// frozen table and is safe for concurrent use.
func (t *SymbolTable) Classify(ch byte) CharClass {
	if ch >= 128 {
		return ClassOther
	}
	switch {
	case isLetter[ch]:
		return ClassLetter
	case isDigit[ch]:
		return ClassDigit
	case t.firsts[ch]:
		return ClassSymbolFirst
	case t.rests[ch]:
		return ClassSymbolRest
	default:
		return ClassOther
	}
}

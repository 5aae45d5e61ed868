package lexer

import (
	"context"
	"log/slog"

	"github.com/opal-lang/tokscan/core/invariant"
)

// flushChar is fed to the automaton after the last input byte. It always
// classifies as ClassOther, so any token still buffered is closed.
const flushChar = ' '

// ScanOpt represents a scanner configuration option
type ScanOpt func(*ScanConfig)

// ScanConfig holds scanner configuration
type ScanConfig struct {
	identifierTag string
	logger        *slog.Logger
}

// WithIdentifierTag sets the type tag of identifier tokens that are not
// keywords. The default is TypeIdentifier.
func WithIdentifierTag(tag string) ScanOpt {
	return func(c *ScanConfig) {
		c.identifierTag = tag
	}
}

// WithLogger enables debug tracing of state transitions and emitted tokens
func WithLogger(logger *slog.Logger) ScanOpt {
	return func(c *ScanConfig) {
		c.logger = logger
	}
}

// Scanner segments source text into tokens using a symbol table.
// A Scanner holds no per-scan state and may be used from several goroutines.
type Scanner struct {
	table         *SymbolTable
	identifierTag string
	logger        *slog.Logger
	debug         bool
}

// NewScanner creates a scanner over table
func NewScanner(table *SymbolTable, opts ...ScanOpt) *Scanner {
	invariant.NotNil(table, "table")

	config := &ScanConfig{identifierTag: TypeIdentifier}
	for _, opt := range opts {
		opt(config)
	}
	invariant.Precondition(config.identifierTag != "", "identifier tag must not be empty")

	s := &Scanner{
		table:         table,
		identifierTag: config.identifierTag,
		logger:        config.logger,
	}
	if s.logger != nil {
		s.debug = s.logger.Enabled(context.Background(), slog.LevelDebug)
	}
	return s
}

// Table returns the symbol table the scanner classifies with
func (s *Scanner) Table() *SymbolTable {
	return s.table
}

// scanStatus is the automaton state
type scanStatus int

const (
	statusStart      scanStatus = iota // nothing buffered
	statusIdentifier                   // buffering an identifier or keyword
	statusNumber                       // buffering digits
	statusSymbol                       // buffering a multi-character symbol
)

func (st scanStatus) String() string {
	switch st {
	case statusStart:
		return "start"
	case statusIdentifier:
		return "in-identifier"
	case statusNumber:
		return "in-number"
	case statusSymbol:
		return "in-symbol"
	default:
		return "unknown"
	}
}

// scanState is owned by exactly one Scan call
type scanState struct {
	status scanStatus
	buf    []byte
	start  Position // position of buf[0]
	pos    Position // position of the byte being processed
	tokens []Token
}

// Scan runs the automaton over input and returns the tokens in emission
// order. Scan never fails: every byte has a class and every class has a
// transition from every state.
func (s *Scanner) Scan(input []byte) []Token {
	st := &scanState{
		status: statusStart,
		buf:    make([]byte, 0, 64),
		pos:    Position{Line: 1, Column: 1},
		tokens: make([]Token, 0, len(input)/4+1),
	}

	for _, ch := range input {
		s.step(st, ch)
		st.advance(ch)
	}
	s.step(st, flushChar)

	invariant.Postcondition(st.status == statusStart && len(st.buf) == 0,
		"scan finished in %s with %d buffered bytes", st.status, len(st.buf))
	return st.tokens
}

// ScanString is Scan for string input
func (s *Scanner) ScanString(input string) []Token {
	return s.Scan([]byte(input))
}

// step processes one byte: first the closing check against the current state,
// then the entry check for the byte's own class.
func (s *Scanner) step(st *scanState, ch byte) {
	class := s.table.Classify(ch)
	s.close(st, ch, class)
	s.enter(st, ch, class)
}

func (s *Scanner) close(st *scanState, ch byte, class CharClass) {
	switch st.status {
	case statusStart:
		return

	case statusIdentifier:
		if class != ClassOther {
			return
		}
		text := string(st.buf)
		tok, ok := s.table.RecognizeKeyword(text)
		if !ok {
			tok = Token{Kind: KindIdentifier, Type: s.identifierTag, Text: text}
		}
		s.emit(st, tok)

	case statusNumber:
		if class == ClassDigit {
			return
		}
		s.emit(st, Token{Kind: KindNumber, Type: TypeNumber, Text: string(st.buf)})

	case statusSymbol:
		if class == ClassSymbolRest {
			return
		}
		// The closing byte takes part in the match attempt, so a buffered "<"
		// closed by "=" yields "<=" when "<=" is a symbol.
		text := string(st.buf)
		tok, ok := s.table.RecognizeSymbol(text + string(ch))
		if !ok {
			tok, ok = s.table.RecognizeSymbol(text)
		}
		if !ok {
			tok = Token{Kind: KindUnknownSymbol, Type: text, Text: text}
		}
		s.emit(st, tok)

	default:
		invariant.Invariant(false, "unhandled scan status %d", int(st.status))
	}
}

func (s *Scanner) enter(st *scanState, ch byte, class CharClass) {
	switch class {
	case ClassLetter:
		s.transition(st, statusIdentifier, ch)
		st.push(ch)

	case ClassDigit:
		if st.status == statusStart {
			s.transition(st, statusNumber, ch)
		}
		st.push(ch)

	case ClassSymbolFirst, ClassSymbolRest:
		switch st.status {
		case statusStart:
			if s.table.IsSimple(ch) {
				text := string(ch)
				st.start = st.pos
				s.emit(st, Token{Kind: KindSymbol, Type: text, Text: text})
				return
			}
			s.transition(st, statusSymbol, ch)
		case statusSymbol:
		case statusIdentifier, statusNumber:
			s.transition(st, statusIdentifier, ch)
		default:
			invariant.Invariant(false, "unhandled scan status %d", int(st.status))
		}
		st.push(ch)

	case ClassOther:

	default:
		invariant.Invariant(false, "unhandled character class %d", int(class))
	}
}

func (s *Scanner) transition(st *scanState, to scanStatus, ch byte) {
	if st.status == to {
		return
	}
	if s.debug {
		s.logger.Debug("transition", "from", st.status.String(), "to", to.String(),
			"char", string(ch), "pos", st.pos.String())
	}
	st.status = to
}

// emit appends tok at the start position of the buffer and resets the state
func (s *Scanner) emit(st *scanState, tok Token) {
	tok.Position = st.start
	st.tokens = append(st.tokens, tok)
	st.buf = st.buf[:0]
	st.status = statusStart

	if s.debug {
		s.logger.Debug("emit", "kind", tok.Kind.String(), "type", tok.Type,
			"value", tok.Value(), "pos", tok.Position.String())
	}
}

func (st *scanState) push(ch byte) {
	if len(st.buf) == 0 {
		st.start = st.pos
	}
	st.buf = append(st.buf, ch)
}

// advance moves the position past ch. A UTF-8 sequence counts as one column.
func (st *scanState) advance(ch byte) {
	st.pos.Offset++
	switch {
	case ch == '\n':
		st.pos.Line++
		st.pos.Column = 1
	case ch&0xC0 == 0x80:
		// continuation byte
	default:
		st.pos.Column++
	}
}

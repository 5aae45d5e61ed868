// Package tokenfmt persists token sequences.
//
// The JSON form is the compatibility format read by the rest of the
// toolchain: a bare array of {"type": ..., "value": ...} objects in emission
// order, with numbers unquoted. The CBOR form carries the same records in
// canonical encoding and is the input of the stream digest.
package tokenfmt

import (
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/opal-lang/tokscan/runtime/lexer"
)

// Format selects an encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatCBOR:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unsupported format %q (want %q or %q)", name, FormatJSON, FormatCBOR)
	}
}

// Extension returns the file extension used for the format
func (f Format) Extension() string {
	return "." + string(f)
}

// Record is the persisted shape of one token
type Record struct {
	Type  string `json:"type" cbor:"type"`
	Value any    `json:"value" cbor:"value"`
}

// Write encodes tokens in the given format
func Write(w io.Writer, format Format, tokens []lexer.Token) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, tokens)
	case FormatCBOR:
		return WriteCBOR(w, tokens)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// cborNumber returns the exact integer value of a number token
func cborNumber(tok lexer.Token) any {
	digits := tok.Digits()
	if n, err := strconv.ParseUint(digits, 10, 64); err == nil {
		return n
	}
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		// Digits only ever holds decimal digits.
		panic(fmt.Sprintf("number token %q is not decimal", tok.Text))
	}
	return n
}

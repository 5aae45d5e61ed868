package tokenfmt

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/opal-lang/tokscan/runtime/lexer"
)

var encMode = func() cbor.EncMode {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("canonical CBOR options: %v", err))
	}
	return mode
}()

// CBORRecords converts tokens to records whose numeric values are unsigned
// integers, or bignums beyond 64 bits.
func CBORRecords(tokens []lexer.Token) []Record {
	records := make([]Record, 0, len(tokens))
	for _, tok := range tokens {
		rec := Record{Type: tok.Type, Value: tok.Text}
		if tok.Kind == lexer.KindNumber {
			rec.Value = cborNumber(tok)
		}
		records = append(records, rec)
	}
	return records
}

// MarshalCBOR returns the canonical CBOR encoding of tokens. Equal token
// sequences always encode to equal bytes.
func MarshalCBOR(tokens []lexer.Token) ([]byte, error) {
	data, err := encMode.Marshal(CBORRecords(tokens))
	if err != nil {
		return nil, fmt.Errorf("CBOR encoding failed: %w", err)
	}
	return data, nil
}

// WriteCBOR writes the canonical CBOR encoding of tokens
func WriteCBOR(w io.Writer, tokens []lexer.Token) error {
	data, err := MarshalCBOR(tokens)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	return nil
}

// ReadCBOR decodes records written by WriteCBOR
func ReadCBOR(r io.Reader) ([]Record, error) {
	var records []Record
	if err := cbor.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("CBOR decoding failed: %w", err)
	}
	return records, nil
}

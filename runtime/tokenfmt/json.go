package tokenfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/opal-lang/tokscan/runtime/lexer"
)

// JSONRecords converts tokens to records whose numeric values are JSON
// number literals.
func JSONRecords(tokens []lexer.Token) []Record {
	records := make([]Record, 0, len(tokens))
	for _, tok := range tokens {
		rec := Record{Type: tok.Type, Value: tok.Text}
		if tok.Kind == lexer.KindNumber {
			rec.Value = json.Number(tok.Digits())
		}
		records = append(records, rec)
	}
	return records
}

// WriteJSON writes the compact compatibility array. Output matches
// JSON.stringify: no HTML escaping and no trailing newline.
func WriteJSON(w io.Writer, tokens []lexer.Token) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(JSONRecords(tokens)); err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}

	if _, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	return nil
}

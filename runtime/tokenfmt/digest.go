package tokenfmt

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/opal-lang/tokscan/runtime/lexer"
)

// Digest returns the hex BLAKE2b-256 hash of the canonical CBOR encoding.
// Positions are not part of the encoding, so reformatting whitespace that does
// not change the tokens keeps the digest.
func Digest(tokens []lexer.Token) (string, error) {
	data, err := MarshalCBOR(tokens)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

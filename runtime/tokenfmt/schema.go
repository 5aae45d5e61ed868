package tokenfmt

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tokens.schema.json
var tokensSchema string

const schemaURL = "schema://tokens.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, strings.NewReader(tokensSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
})

// ValidateJSON checks a persisted JSON token file against the token schema
func ValidateJSON(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile token schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode token file: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("token file does not match schema: %w", err)
	}
	return nil
}

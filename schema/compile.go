package schema

import (
	"bytes"
	"encoding/json"

	santhosh "github.com/santhosh-tekuri/jsonschema/v5"
)

// Compile builds an executable schema from the document through the
// santhosh-tekuri engine (draft 7), for flattened interoperability with
// standard JSON Schema tooling. A document that does not compile is a
// conversion error.
func Compile(doc *Document) (*santhosh.Schema, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, &ConversionError{Format: JSON, Err: err}
	}
	compiler := santhosh.NewCompiler()
	compiler.Draft = santhosh.Draft7
	if err := compiler.AddResource("schema.json", bytes.NewReader(raw)); err != nil {
		return nil, &ConversionError{Format: JSON, Err: err}
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, &ConversionError{Format: JSON, Err: err}
	}
	return compiled, nil
}

// Validate runs the compiled document against a value in the neutral
// shape, typically one produced by Decode. The returned error is the
// third-party engine's validation error, or a *ConversionError when the
// document itself does not compile.
func (d *Document) Validate(value any) error {
	compiled, err := Compile(d)
	if err != nil {
		return err
	}
	return compiled.Validate(value)
}

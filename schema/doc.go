// Package schema bridges the validation rule model to external
// representations. It can describe a rule set as a JSON Schema (draft 7)
// document with stable key ordering, compile that document through the
// santhosh-tekuri/jsonschema engine for interoperability with standard
// schema tooling, and decode JSON, TOML or YAML bytes into the neutral
// value shape (map[string]any, []any, float64, string, bool, nil) that
// schema-driven validation consumes.
//
// The package performs no constraint logic of its own; failures here are
// conversion errors (malformed documents, undecodable input), which are a
// distinct error type from validation violations because they mean the
// input could not even be evaluated.
//
// # Usage
//
//	doc := &schema.Document{Property: schema.Property{
//	    Type:     "object",
//	    Required: []string{"age"},
//	    Properties: []schema.Field{
//	        {Name: "age", Property: &schema.Property{
//	            Type:    "integer",
//	            Minimum: schema.Float(0),
//	            Maximum: schema.Float(100),
//	        }},
//	    },
//	}}
//
//	value, err := schema.Decode(data, schema.JSON)
//	if err != nil {
//	    var conv *schema.ConversionError
//	    // errors.As(err, &conv)
//	}
//	err = doc.Validate(value)
package schema

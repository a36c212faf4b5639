package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Float returns a pointer to v, for filling optional numeric keywords.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for filling optional integer keywords.
func Int(v int) *int { return &v }

// Field is one named property of an object schema. Properties are kept in
// a slice so the declared order survives into the generated document.
type Field struct {
	Name     string
	Property *Property
}

// Property is the declarative rule descriptor for one schema node. It is a
// closed struct covering the constraint keywords the validation engine
// evaluates; every field is optional and omitted from the generated
// document when unset.
type Property struct {
	Type             string
	Format           string
	Enum             []any
	Minimum          *float64
	ExclusiveMinimum *float64
	Maximum          *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64
	MinLength        *int
	MaxLength        *int
	Pattern          string
	MinItems         *int
	MaxItems         *int
	UniqueItems      bool
	Items            *Property
	MinProperties    *int
	MaxProperties    *int
	Required         []string
	Properties       []Field
	AllOf            []*Property
	AnyOf            []*Property
	OneOf            []*Property
	Not              *Property
}

// Document is a complete JSON Schema document: a root property plus the
// draft declaration.
type Document struct {
	Property
}

// draft is fixed: the engine's semantics follow draft 7, and that is the
// draft the bridge compiles with.
const draftURI = "http://json-schema.org/draft-07/schema#"

// MarshalJSON emits the document as a draft 7 JSON Schema with stable key
// order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"$schema":`)
	uri, _ := json.Marshal(draftURI)
	buf.Write(uri)
	body, err := d.Property.encode()
	if err != nil {
		return nil, err
	}
	// Splice the property keywords after $schema, preserving their order.
	if len(body) > 2 {
		buf.WriteByte(',')
		buf.Write(body[1 : len(body)-1])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encode writes the property as an ordered JSON object.
func (p *Property) encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(key string, value any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(v)
		return nil
	}
	writeRaw := func(key string, raw []byte) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(raw)
	}

	if p.Type != "" {
		if err := write("type", p.Type); err != nil {
			return nil, err
		}
	}
	if p.Format != "" {
		if err := write("format", p.Format); err != nil {
			return nil, err
		}
	}
	if len(p.Enum) > 0 {
		if err := write("enum", p.Enum); err != nil {
			return nil, err
		}
	}
	numeric := []struct {
		key   string
		value *float64
	}{
		{"minimum", p.Minimum},
		{"exclusiveMinimum", p.ExclusiveMinimum},
		{"maximum", p.Maximum},
		{"exclusiveMaximum", p.ExclusiveMaximum},
		{"multipleOf", p.MultipleOf},
	}
	for _, kw := range numeric {
		if kw.value != nil {
			if err := write(kw.key, *kw.value); err != nil {
				return nil, err
			}
		}
	}
	counts := []struct {
		key   string
		value *int
	}{
		{"minLength", p.MinLength},
		{"maxLength", p.MaxLength},
	}
	for _, kw := range counts {
		if kw.value != nil {
			if err := write(kw.key, *kw.value); err != nil {
				return nil, err
			}
		}
	}
	if p.Pattern != "" {
		if err := write("pattern", p.Pattern); err != nil {
			return nil, err
		}
	}
	itemCounts := []struct {
		key   string
		value *int
	}{
		{"minItems", p.MinItems},
		{"maxItems", p.MaxItems},
	}
	for _, kw := range itemCounts {
		if kw.value != nil {
			if err := write(kw.key, *kw.value); err != nil {
				return nil, err
			}
		}
	}
	if p.UniqueItems {
		if err := write("uniqueItems", true); err != nil {
			return nil, err
		}
	}
	if p.Items != nil {
		items, err := p.Items.encode()
		if err != nil {
			return nil, err
		}
		writeRaw("items", items)
	}
	propCounts := []struct {
		key   string
		value *int
	}{
		{"minProperties", p.MinProperties},
		{"maxProperties", p.MaxProperties},
	}
	for _, kw := range propCounts {
		if kw.value != nil {
			if err := write(kw.key, *kw.value); err != nil {
				return nil, err
			}
		}
	}
	if len(p.Required) > 0 {
		if err := write("required", p.Required); err != nil {
			return nil, err
		}
	}
	if len(p.Properties) > 0 {
		var props bytes.Buffer
		props.WriteByte('{')
		for i, field := range p.Properties {
			if i > 0 {
				props.WriteByte(',')
			}
			name, err := json.Marshal(field.Name)
			if err != nil {
				return nil, err
			}
			props.Write(name)
			props.WriteByte(':')
			child, err := field.Property.encode()
			if err != nil {
				return nil, err
			}
			props.Write(child)
		}
		props.WriteByte('}')
		writeRaw("properties", props.Bytes())
	}
	combinators := []struct {
		key      string
		branches []*Property
	}{
		{"allOf", p.AllOf},
		{"anyOf", p.AnyOf},
		{"oneOf", p.OneOf},
	}
	for _, kw := range combinators {
		if len(kw.branches) == 0 {
			continue
		}
		var list bytes.Buffer
		list.WriteByte('[')
		for i, branch := range kw.branches {
			if i > 0 {
				list.WriteByte(',')
			}
			encoded, err := branch.encode()
			if err != nil {
				return nil, err
			}
			list.Write(encoded)
		}
		list.WriteByte(']')
		writeRaw(kw.key, list.Bytes())
	}
	if p.Not != nil {
		encoded, err := p.Not.encode()
		if err != nil {
			return nil, err
		}
		writeRaw("not", encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseDocument re-reads a generated document. Property order inside
// "properties" is not recoverable from a JSON object, so re-read
// properties come back in sorted name order; pass/fail behavior is
// unaffected.
func ParseDocument(data []byte) (*Document, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ConversionError{Format: JSON, Err: err}
	}
	prop, err := parseProperty(raw)
	if err != nil {
		return nil, &ConversionError{Format: JSON, Err: err}
	}
	return &Document{Property: *prop}, nil
}

func parseProperty(raw map[string]any) (*Property, error) {
	p := &Property{}
	if v, ok := raw["type"].(string); ok {
		p.Type = v
	}
	if v, ok := raw["format"].(string); ok {
		p.Format = v
	}
	if v, ok := raw["enum"].([]any); ok {
		p.Enum = v
	}
	var err error
	if p.Minimum, err = parseFloat(raw, "minimum"); err != nil {
		return nil, err
	}
	if p.ExclusiveMinimum, err = parseFloat(raw, "exclusiveMinimum"); err != nil {
		return nil, err
	}
	if p.Maximum, err = parseFloat(raw, "maximum"); err != nil {
		return nil, err
	}
	if p.ExclusiveMaximum, err = parseFloat(raw, "exclusiveMaximum"); err != nil {
		return nil, err
	}
	if p.MultipleOf, err = parseFloat(raw, "multipleOf"); err != nil {
		return nil, err
	}
	if p.MinLength, err = parseInt(raw, "minLength"); err != nil {
		return nil, err
	}
	if p.MaxLength, err = parseInt(raw, "maxLength"); err != nil {
		return nil, err
	}
	if v, ok := raw["pattern"].(string); ok {
		p.Pattern = v
	}
	if p.MinItems, err = parseInt(raw, "minItems"); err != nil {
		return nil, err
	}
	if p.MaxItems, err = parseInt(raw, "maxItems"); err != nil {
		return nil, err
	}
	if v, ok := raw["uniqueItems"].(bool); ok {
		p.UniqueItems = v
	}
	if v, ok := raw["items"].(map[string]any); ok {
		if p.Items, err = parseProperty(v); err != nil {
			return nil, err
		}
	}
	if p.MinProperties, err = parseInt(raw, "minProperties"); err != nil {
		return nil, err
	}
	if p.MaxProperties, err = parseInt(raw, "maxProperties"); err != nil {
		return nil, err
	}
	if v, ok := raw["required"].([]any); ok {
		for _, item := range v {
			name, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("required entries must be strings, got %T", item)
			}
			p.Required = append(p.Required, name)
		}
	}
	if v, ok := raw["properties"].(map[string]any); ok {
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			childRaw, ok := v[name].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("property %q is not an object", name)
			}
			child, err := parseProperty(childRaw)
			if err != nil {
				return nil, err
			}
			p.Properties = append(p.Properties, Field{Name: name, Property: child})
		}
	}
	for _, kw := range []string{"allOf", "anyOf", "oneOf"} {
		list, ok := raw[kw].([]any)
		if !ok {
			continue
		}
		branches := make([]*Property, 0, len(list))
		for _, item := range list {
			branchRaw, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s branch is not an object", kw)
			}
			branch, err := parseProperty(branchRaw)
			if err != nil {
				return nil, err
			}
			branches = append(branches, branch)
		}
		switch kw {
		case "allOf":
			p.AllOf = branches
		case "anyOf":
			p.AnyOf = branches
		case "oneOf":
			p.OneOf = branches
		}
	}
	if v, ok := raw["not"].(map[string]any); ok {
		if p.Not, err = parseProperty(v); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func parseFloat(raw map[string]any, key string) (*float64, error) {
	value, ok := raw[key]
	if !ok {
		return nil, nil
	}
	number, ok := value.(float64)
	if !ok {
		return nil, fmt.Errorf("%s must be a number, got %T", key, value)
	}
	return &number, nil
}

func parseInt(raw map[string]any, key string) (*int, error) {
	value, ok := raw[key]
	if !ok {
		return nil, nil
	}
	number, ok := value.(float64)
	if !ok || number != float64(int(number)) {
		return nil, fmt.Errorf("%s must be an integer, got %v", key, value)
	}
	n := int(number)
	return &n, nil
}

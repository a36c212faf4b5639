package validate

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Errors is an ordered, path-addressed tree of violations. A node holds the
// violations reported against the value at its path plus child trees keyed
// by field name (insertion order preserved) or by sequence index (ascending
// order). A node may carry both leaf violations and children: "object must
// have at most 5 properties" lives next to the per-field errors.
//
// The zero value is not usable; construct with NewErrors. A nil *Errors is
// a valid empty tree for the read-only operations (IsEmpty, Violations,
// Flatten, Render).
type Errors struct {
	violations []Violation

	fieldOrder []string
	fields     map[string]*Errors

	itemOrder []int
	items     map[int]*Errors
}

// NewErrors returns an empty error tree.
func NewErrors() *Errors {
	return &Errors{}
}

// Leaf builds a tree holding only the given violations, skipping nils.
// Returns nil when every violation is nil, so the result can be handed
// straight back from an item or map-entry callback.
func Leaf(violations ...*Violation) *Errors {
	e := NewErrors()
	for _, v := range violations {
		e.Add(v)
	}
	if e.IsEmpty() {
		return nil
	}
	return e
}

// Add appends a violation to this node. Nil violations are ignored so
// evaluator results can be passed through unconditionally.
func (e *Errors) Add(v *Violation) {
	if v == nil {
		return
	}
	e.violations = append(e.violations, *v)
}

// Field returns the child tree for the named field, creating it on first
// use. Field names keep their insertion order.
func (e *Errors) Field(name string) *Errors {
	if e.fields == nil {
		e.fields = make(map[string]*Errors)
	}
	child, ok := e.fields[name]
	if !ok {
		child = NewErrors()
		e.fields[name] = child
		e.fieldOrder = append(e.fieldOrder, name)
	}
	return child
}

// Item returns the child tree for the given sequence index, creating it on
// first use. Indexes are kept in ascending order regardless of the order
// they are added in.
func (e *Errors) Item(index int) *Errors {
	if e.items == nil {
		e.items = make(map[int]*Errors)
	}
	child, ok := e.items[index]
	if !ok {
		child = NewErrors()
		e.items[index] = child
		pos := sort.SearchInts(e.itemOrder, index)
		e.itemOrder = append(e.itemOrder, 0)
		copy(e.itemOrder[pos+1:], e.itemOrder[pos:])
		e.itemOrder[pos] = index
	}
	return child
}

// Violations returns the violations reported against this node itself, in
// the order they were added. The returned slice must not be modified.
func (e *Errors) Violations() []Violation {
	if e == nil {
		return nil
	}
	return e.violations
}

// FieldNames returns the field keys with children, in insertion order.
func (e *Errors) FieldNames() []string {
	if e == nil {
		return nil
	}
	return e.fieldOrder
}

// ItemIndexes returns the sequence indexes with children, ascending.
func (e *Errors) ItemIndexes() []int {
	if e == nil {
		return nil
	}
	return e.itemOrder
}

// GetField returns the child tree for the named field without creating it.
func (e *Errors) GetField(name string) (*Errors, bool) {
	if e == nil || e.fields == nil {
		return nil, false
	}
	child, ok := e.fields[name]
	return child, ok
}

// GetItem returns the child tree for the given index without creating it.
func (e *Errors) GetItem(index int) (*Errors, bool) {
	if e == nil || e.items == nil {
		return nil, false
	}
	child, ok := e.items[index]
	return child, ok
}

// IsEmpty reports whether the tree holds no violations anywhere. An empty
// tree is never surfaced as a failure: absence of errors means success.
func (e *Errors) IsEmpty() bool {
	if e == nil {
		return true
	}
	if len(e.violations) > 0 {
		return false
	}
	for _, name := range e.fieldOrder {
		if !e.fields[name].IsEmpty() {
			return false
		}
	}
	for _, index := range e.itemOrder {
		if !e.items[index].IsEmpty() {
			return false
		}
	}
	return true
}

// Merge unions other into e path-wise: violations at shared paths are
// appended in order, children at new paths are adopted. Merging trees with
// disjoint paths is associative and commutative with respect to the
// resulting path set. A nil other is a no-op.
func (e *Errors) Merge(other *Errors) {
	if other == nil {
		return
	}
	e.violations = append(e.violations, other.violations...)
	for _, name := range other.fieldOrder {
		e.Field(name).Merge(other.fields[name])
	}
	for _, index := range other.itemOrder {
		e.Item(index).Merge(other.items[index])
	}
}

// Error implements the error interface by joining every violation with its
// JSON Pointer path.
func (e *Errors) Error() string {
	if e.IsEmpty() {
		return "validation passed"
	}
	var parts []string
	e.walk("", func(path string, v Violation) {
		if path == "" {
			parts = append(parts, v.Message())
			return
		}
		parts = append(parts, path+": "+v.Message())
	})
	return "validation failed: " + strings.Join(parts, "; ")
}

// walk visits every violation in tree order, depth-first, leaf violations
// before children, carrying the JSON Pointer path of the current node.
func (e *Errors) walk(path string, fn func(path string, v Violation)) {
	if e == nil {
		return
	}
	for _, v := range e.violations {
		fn(path, v)
	}
	for _, name := range e.fieldOrder {
		e.fields[name].walk(path+"/"+escapePointerToken(name), fn)
	}
	for _, index := range e.itemOrder {
		e.items[index].walk(path+"/"+strconv.Itoa(index), fn)
	}
}

// Flatten returns every violation keyed by the JSON Pointer of the node it
// was reported against. The root node uses the empty pointer "".
func (e *Errors) Flatten() map[string][]Violation {
	if e.IsEmpty() {
		return nil
	}
	out := make(map[string][]Violation)
	e.walk("", func(path string, v Violation) {
		out[path] = append(out[path], v)
	})
	return out
}

// escapePointerToken escapes a reference token per RFC 6901.
func escapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// MarshalJSON encodes the tree as an ordered document in the shape
//
//	{"errors": [...], "properties": {"name": {...}}, "items": {"0": {...}}}
//
// where "errors" lists this node's own violations, "properties" nests field
// children in insertion order and "items" nests sequence children in index
// order. Sections without content are omitted, except that a node with no
// content at all still emits an empty "errors" list.
func (e *Errors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Errors) encodeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	buf.WriteString(`"errors":[`)
	for i := range e.violations {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := e.violations[i].encodeJSON(buf); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	if len(e.fieldOrder) > 0 {
		buf.WriteString(`,"properties":{`)
		for i, name := range e.fieldOrder {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(name)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := e.fields[name].encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	if len(e.itemOrder) > 0 {
		buf.WriteString(`,"items":{`)
		for i, index := range e.itemOrder {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(strconv.Itoa(index))
			buf.WriteString(`":`)
			if err := e.items[index].encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return nil
}

// encodeJSON writes the violation as an ordered object with its kind, the
// default-rendered message, and the parameters in declaration order.
func (v *Violation) encodeJSON(buf *bytes.Buffer) error {
	buf.WriteString(`{"kind":`)
	kind, err := json.Marshal(v.Kind.String())
	if err != nil {
		return err
	}
	buf.Write(kind)
	buf.WriteString(`,"message":`)
	msg, err := json.Marshal(v.Message())
	if err != nil {
		return err
	}
	buf.Write(msg)
	if len(v.Params) > 0 {
		buf.WriteString(`,"params":{`)
		for i, p := range v.Params {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(p.Name)
			if err != nil {
				return err
			}
			buf.Write(name)
			buf.WriteByte(':')
			value, err := json.Marshal(p.Value)
			if err != nil {
				return err
			}
			buf.Write(value)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return nil
}

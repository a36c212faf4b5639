package validate

import "sort"

// Validatable is implemented by types that can validate themselves. It is
// the "declare once, validate many" entry point: a type describes its rules
// once inside Validate and every instance is checked through it, including
// nested ones via the Nested part.
type Validatable interface {
	Validate() *Errors
}

// Part contributes one unit of structural validation to the error tree of
// the node being validated. Parts are independent: evaluation order never
// affects the outcome, only the order of reported messages.
type Part func(e *Errors)

// Object validates one record node. Every part is evaluated and merged;
// the traversal always completes regardless of how many violations occur,
// so the caller receives either a complete tree or nil for success.
func Object(parts ...Part) *Errors {
	e := NewErrors()
	for _, part := range parts {
		if part != nil {
			part(e)
		}
	}
	if e.IsEmpty() {
		return nil
	}
	return e
}

// Field reports the given violations under the named field. Nil violations
// are skipped, so evaluator results can be passed straight through.
func Field(name string, violations ...*Violation) Part {
	return func(e *Errors) {
		for _, v := range violations {
			if v != nil {
				e.Field(name).Add(v)
			}
		}
	}
}

// Self reports the given violations against the node itself, for
// constraints on the node as a whole such as property count limits. Node
// level violations are independent of child failures and are never
// short-circuited by them.
func Self(violations ...*Violation) Part {
	return func(e *Errors) {
		for _, v := range violations {
			e.Add(v)
		}
	}
}

// FieldErrors merges a pre-built sub-tree under the named field. Merging
// an empty or nil tree is a no-op, so a field key never appears in the
// output unless something under it failed.
func FieldErrors(name string, errs *Errors) Part {
	return func(e *Errors) {
		if !errs.IsEmpty() {
			e.Field(name).Merge(errs)
		}
	}
}

// Nested validates a child record under the named field.
func Nested(name string, v Validatable) Part {
	return func(e *Errors) {
		if v == nil {
			return
		}
		FieldErrors(name, v.Validate())(e)
	}
}

// Merged merges a pre-built tree into the node itself. Useful for
// attaching a composition result produced by AllOf, AnyOf or OneOf.
func Merged(errs *Errors) Part {
	return func(e *Errors) {
		if !errs.IsEmpty() {
			e.Merge(errs)
		}
	}
}

// Items validates each element of a sequence-valued field. The callback
// result for element i, when non-empty, is merged under field name at
// index i. Indexes are visited in order, though ordering only affects
// message order, never the outcome.
func Items[T any](name string, items []T, fn func(index int, item T) *Errors) Part {
	return func(e *Errors) {
		for i, item := range items {
			if child := fn(i, item); !child.IsEmpty() {
				e.Field(name).Item(i).Merge(child)
			}
		}
	}
}

// Each validates each element of a sequence when the node itself is the
// sequence, merging per-index children directly on the current node.
func Each[T any](items []T, fn func(index int, item T) *Errors) Part {
	return func(e *Errors) {
		for i, item := range items {
			if child := fn(i, item); !child.IsEmpty() {
				e.Item(i).Merge(child)
			}
		}
	}
}

// MapEntries validates each entry of a map-valued field, merging non-empty
// results under field name keyed by entry key. Keys are visited in sorted
// order so the reported tree is deterministic.
func MapEntries[V any](name string, entries map[string]V, fn func(key string, value V) *Errors) Part {
	return func(e *Errors) {
		keys := make([]string, 0, len(entries))
		for key := range entries {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if child := fn(key, entries[key]); !child.IsEmpty() {
				e.Field(name).Field(key).Merge(child)
			}
		}
	}
}

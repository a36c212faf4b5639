package validate

import (
	"fmt"
	"strings"
)

// Kind identifies the constraint a Violation was produced by. The set is
// closed so consumers can switch exhaustively instead of inspecting types
// at runtime.
type Kind int

const (
	KindMinimum Kind = iota
	KindMaximum
	KindExclusiveMinimum
	KindExclusiveMaximum
	KindMultipleOf
	KindNotFinite
	KindMinLength
	KindMaxLength
	KindPattern
	KindEnum
	KindMinItems
	KindMaxItems
	KindUniqueItems
	KindContains
	KindMinProperties
	KindMaxProperties
	KindRequired
	KindFormat
	KindAnyOf
	KindOneOfNoneMatched
	KindOneOfMultipleMatched
	KindNot
	KindCustom
)

// kindNames doubles as the stable message identifier suffix for each kind.
var kindNames = map[Kind]string{
	KindMinimum:              "minimum",
	KindMaximum:              "maximum",
	KindExclusiveMinimum:     "exclusive_minimum",
	KindExclusiveMaximum:     "exclusive_maximum",
	KindMultipleOf:           "multiple_of",
	KindNotFinite:            "not_finite",
	KindMinLength:            "min_length",
	KindMaxLength:            "max_length",
	KindPattern:              "pattern",
	KindEnum:                 "enum",
	KindMinItems:             "min_items",
	KindMaxItems:             "max_items",
	KindUniqueItems:          "unique_items",
	KindContains:             "contains",
	KindMinProperties:        "min_properties",
	KindMaxProperties:        "max_properties",
	KindRequired:             "required",
	KindFormat:               "format",
	KindAnyOf:                "any_of",
	KindOneOfNoneMatched:     "one_of_none_matched",
	KindOneOfMultipleMatched: "one_of_multiple_matched",
	KindNot:                  "not",
	KindCustom:               "custom",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MessageID returns the stable catalog key used to look up a localized
// message template for this kind, e.g. "validation.minimum".
func (k Kind) MessageID() string {
	return "validation." + k.String()
}

// defaultTemplates holds the compiled-in message templates used when no
// catalog is supplied or the catalog has no entry for the message id.
// Placeholders use the %{name} form and are substituted by parameter name.
var defaultTemplates = map[Kind]string{
	KindMinimum:              "must be greater than or equal to %{minimum}",
	KindMaximum:              "must be less than or equal to %{maximum}",
	KindExclusiveMinimum:     "must be greater than %{exclusive_minimum}",
	KindExclusiveMaximum:     "must be less than %{exclusive_maximum}",
	KindMultipleOf:           "must be a multiple of %{multiple_of}",
	KindNotFinite:            "must be a finite number",
	KindMinLength:            "must be at least %{min_length} characters long",
	KindMaxLength:            "must be at most %{max_length} characters long",
	KindPattern:              "must match the pattern %{pattern}",
	KindEnum:                 "must be one of: %{allowed_values}",
	KindMinItems:             "must have at least %{min_items} items",
	KindMaxItems:             "must have at most %{max_items} items",
	KindUniqueItems:          "must not contain duplicate items (items %{first_index} and %{second_index} are equal)",
	KindContains:             "must contain %{expected}",
	KindMinProperties:        "must have at least %{min_properties} properties",
	KindMaxProperties:        "must have at most %{max_properties} properties",
	KindRequired:             "missing required properties: %{missing}",
	KindFormat:               "must be a valid %{format}",
	KindAnyOf:                "must match at least one of the alternatives",
	KindOneOfNoneMatched:     "must match exactly one alternative, but none matched",
	KindOneOfMultipleMatched: "must match exactly one alternative, but %{matched} matched",
	KindNot:                  "must not match the forbidden condition",
	KindCustom:               "%{message}",
}

// pluralParams names, per kind, the parameter that carries the count a
// catalog should select the plural form by. Kinds without an entry are
// rendered with the singular lookup.
var pluralParams = map[Kind]string{
	KindMinLength:            "min_length",
	KindMaxLength:            "max_length",
	KindMinItems:             "min_items",
	KindMaxItems:             "max_items",
	KindMinProperties:        "min_properties",
	KindMaxProperties:        "max_properties",
	KindOneOfMultipleMatched: "matched",
}

// Param is one named message parameter. Order is significant: parameters
// are carried in the order the constraint declared them so renderers can
// list them deterministically.
type Param struct {
	Name  string
	Value any
}

// Violation records one failed constraint together with everything a
// renderer needs to produce a message without re-inspecting the original
// rule. Treat a Violation as immutable once produced.
type Violation struct {
	// Kind is the constraint that failed.
	Kind Kind

	// Params carries the rule parameters and the observed value (or its
	// measured size) in declaration order.
	Params []Param

	// Branches holds the failure tree of every alternative for KindAnyOf,
	// so callers can present what each alternative would have required.
	// Empty for all other kinds.
	Branches []*Errors
}

func newViolation(kind Kind, params ...Param) *Violation {
	return &Violation{Kind: kind, Params: params}
}

// Param returns the value of the named parameter.
func (v *Violation) Param(name string) (any, bool) {
	for _, p := range v.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// MessageID returns the stable catalog key for this violation.
func (v *Violation) MessageID() string {
	return v.Kind.MessageID()
}

// Message renders the compiled-in default template for this violation.
func (v *Violation) Message() string {
	tmpl, ok := defaultTemplates[v.Kind]
	if !ok {
		return v.Kind.String()
	}
	return substituteParams(tmpl, v.Params)
}

// Error implements the error interface so a single Violation can be
// returned or wrapped directly.
func (v *Violation) Error() string {
	return v.Message()
}

// pluralCount returns the count the catalog should pluralize by, or -1
// when the kind has no count-bearing parameter.
func (v *Violation) pluralCount() int {
	name, ok := pluralParams[v.Kind]
	if !ok {
		return -1
	}
	val, ok := v.Param(name)
	if !ok {
		return -1
	}
	if n, ok := val.(int); ok {
		return n
	}
	return -1
}

// formatParamValue renders a parameter value for message interpolation.
// Slices are joined with commas so enumerations read naturally.
func formatParamValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = fmt.Sprintf("%d", n)
		}
		return strings.Join(parts, ", ")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprintf("%v", item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", value)
	}
}

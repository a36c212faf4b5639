package validate

import "regexp"

// Catalog supplies localized message templates. Lookup resolves the
// message for the given stable identifier and locale, substituting the
// named parameters. For count-bearing violations n carries the count the
// plural form should be selected by; it is -1 for singular messages. A
// false return means the catalog has no usable entry and the caller falls
// back to the compiled-in default template.
type Catalog interface {
	Lookup(id, locale string, n int, params []Param) (string, bool)
}

// Render formats every violation in the tree, keyed by the JSON Pointer of
// the node it was reported against (root is ""). Messages keep tree order.
// The catalog may be nil; a missing translation never fails rendering, the
// default template is used instead.
func (e *Errors) Render(locale string, catalog Catalog) map[string][]string {
	if e.IsEmpty() {
		return nil
	}
	out := make(map[string][]string)
	e.walk("", func(path string, v Violation) {
		out[path] = append(out[path], renderViolation(&v, locale, catalog))
	})
	return out
}

func renderViolation(v *Violation, locale string, catalog Catalog) string {
	if catalog != nil {
		if msg, ok := catalog.Lookup(v.MessageID(), locale, v.pluralCount(), v.Params); ok {
			return msg
		}
	}
	return v.Message()
}

// paramPlaceholder matches named placeholders in the %{name} form.
var paramPlaceholder = regexp.MustCompile(`%\{([^}]+)\}`)

// substituteParams replaces %{name} placeholders with the formatted value
// of the matching parameter. Unknown placeholders are left intact so a
// template mismatch stays visible instead of silently vanishing.
func substituteParams(tmpl string, params []Param) string {
	return paramPlaceholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		for _, p := range params {
			if p.Name == name {
				return formatParamValue(p.Value)
			}
		}
		return match
	})
}

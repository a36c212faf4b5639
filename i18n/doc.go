// Package i18n provides a localization catalog for validation messages. It
// loads message templates from the local file system, an embedded file
// system, or an in-memory map, resolves them by stable message identifier
// and locale, substitutes named placeholders (`%{key}`), and selects plural
// forms using CLDR cardinal rules.
//
// The package implements the validate.Catalog interface, so a loaded
// Catalog can be passed straight to Errors.Render. Missing translations
// never fail rendering: lookup simply reports a miss and the caller falls
// back to its default template.
//
// # Architecture
//
// The Catalog type delegates storage concerns to a Source implementation
// that returns the nested locale → key → template map. Ready-made sources
// for in-memory maps, single files and fs.FS trees (including embed.FS)
// are included; custom storage only needs to fulfill the Source interface.
// YAML and JSON catalog files are supported out of the box.
//
// Locale resolution uses golang.org/x/text language matching, so a request
// for "en-GB" finds an "en" catalog, and plural form selection uses the
// CLDR cardinal categories (zero, one, two, few, many, other) for the
// matched language.
//
// # Usage
//
//	catalog, err := i18n.New(ctx, i18n.Map(map[string]map[string]any{
//	    "en": {
//	        "validation": map[string]any{
//	            "minimum": "must be at least %{minimum}",
//	            "min_items": map[string]any{
//	                "one":   "must have at least one item",
//	                "other": "must have at least %{count} items",
//	            },
//	        },
//	    },
//	}))
//	if err != nil {
//	    return err
//	}
//
//	messages := errs.Render("en", catalog)
package i18n

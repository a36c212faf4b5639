package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// cardinalForm returns the CLDR cardinal category name for n in the given
// language, matching the template suffix a catalog uses for that plural
// variant ("zero", "one", "two", "few", "many", "other").
func cardinalForm(tag language.Tag, n int) string {
	switch plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0) {
	case plural.Zero:
		return "zero"
	case plural.One:
		return "one"
	case plural.Two:
		return "two"
	case plural.Few:
		return "few"
	case plural.Many:
		return "many"
	default:
		return "other"
	}
}

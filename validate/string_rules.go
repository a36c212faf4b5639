package validate

import (
	"github.com/rivo/uniseg"
)

// MinLength validates that value is at least min characters long, counting
// extended grapheme clusters rather than bytes or code points, so a base
// letter with a combining mark counts once.
func MinLength(value string, min int) *Violation {
	length := uniseg.GraphemeClusterCount(value)
	if length >= min {
		return nil
	}
	return newViolation(KindMinLength,
		Param{Name: "min_length", Value: min},
		Param{Name: "actual", Value: length},
		Param{Name: "value", Value: value},
	)
}

// MaxLength validates that value is at most max characters long, counting
// extended grapheme clusters.
func MaxLength(value string, max int) *Violation {
	length := uniseg.GraphemeClusterCount(value)
	if length <= max {
		return nil
	}
	return newViolation(KindMaxLength,
		Param{Name: "max_length", Value: max},
		Param{Name: "actual", Value: length},
		Param{Name: "value", Value: value},
	)
}

// Pattern validates that value contains a match of the regular expression.
// The match is a search anywhere in the string; anchor the expression
// explicitly to require a full match. Compiled expressions are cached
// process-wide, keyed by the pattern string. An expression that does not
// compile is a configuration error, not a violation.
func Pattern(value, expr string) (*Violation, error) {
	re, err := compilePattern(expr)
	if err != nil {
		return nil, err
	}
	if re.MatchString(value) {
		return nil, nil
	}
	return newViolation(KindPattern,
		Param{Name: "pattern", Value: expr},
		Param{Name: "value", Value: value},
	), nil
}

// MustPattern is Pattern for statically known expressions; it panics when
// the expression does not compile.
func MustPattern(value, expr string) *Violation {
	v, err := Pattern(value, expr)
	if err != nil {
		panic(err)
	}
	return v
}

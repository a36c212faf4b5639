package validate

import (
	"regexp"
	"sync"
)

// patternCache holds compiled regular expressions keyed by their source
// string. Entries are published once and never mutated or evicted; a
// compiled pattern is cheap to retain for the process lifetime. Concurrent
// first use of the same pattern may compile it redundantly, but only one
// result is ever published.
var patternCache sync.Map // string -> *regexp.Regexp

func compilePattern(expr string) (*regexp.Regexp, error) {
	if cached, ok := patternCache.Load(expr); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, newConfigError("pattern", "expression does not compile", err)
	}
	published, _ := patternCache.LoadOrStore(expr, re)
	return published.(*regexp.Regexp), nil
}

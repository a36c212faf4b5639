package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/validkit/validate"
)

// Catalog resolves localized message templates by stable identifier and
// locale. It implements validate.Catalog, so it can be handed directly to
// Errors.Render. A Catalog is immutable after New and safe for concurrent
// use.
type Catalog struct {
	translations map[string]map[string]any
	locales      []string
	matcher      language.Matcher
	fallback     string
	logger       *slog.Logger
	missingLog   bool

	mu sync.RWMutex
}

// Option configures a Catalog instance.
type Option func(*Catalog)

// WithFallbackLocale sets the locale used when the requested one has no
// catalog at all. Without it, unknown locales simply miss.
func WithFallbackLocale(locale string) Option {
	return func(c *Catalog) {
		if locale != "" {
			c.fallback = locale
		}
	}
}

// WithLogger provides a logger for load and lookup diagnostics. The
// default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingLogging controls whether missed lookups are logged. Default
// is false to avoid excessive logging on hot paths.
func WithMissingLogging(log bool) Option {
	return func(c *Catalog) {
		c.missingLog = log
	}
}

// New loads the catalog content from the source and prepares the locale
// matcher. Locale codes must parse as BCP 47 tags.
func New(ctx context.Context, source Source, options ...Option) (*Catalog, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	c := &Catalog{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(c)
	}

	translations, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.init(translations); err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "catalog loaded", slog.Any("locales", c.locales))
	return c, nil
}

func (c *Catalog) init(translations map[string]map[string]any) error {
	locales := make([]string, 0, len(translations))
	for locale, tree := range translations {
		if locale == "" {
			return ErrEmptyLocale
		}
		if tree == nil {
			return fmt.Errorf("%w: %s", ErrNilTranslations, locale)
		}
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLocale, locale)
		}
		tags = append(tags, tag)
	}

	c.translations = translations
	c.locales = locales
	if len(tags) > 0 {
		c.matcher = language.NewMatcher(tags)
	}
	return nil
}

// Locales returns the locale codes with catalog content, sorted.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locales
}

// Has reports whether the catalog holds a template for the id in the
// given locale, after locale matching.
func (c *Catalog) Has(locale, id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tree, _, ok := c.resolveLocale(locale)
	if !ok {
		return false
	}
	_, ok = lookupKey(tree, id)
	return ok
}

// Lookup implements validate.Catalog. It resolves the message template for
// the id, selecting the plural form by n when n >= 0, substitutes the
// named parameters and reports whether a usable template was found. When
// n >= 0 and the caller did not pass a "count" parameter, one is added.
func (c *Catalog) Lookup(id, locale string, n int, params []validate.Param) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tree, tag, ok := c.resolveLocale(locale)
	if !ok {
		c.logMiss("locale not available", locale, id)
		return "", false
	}

	var value any
	var found bool
	if n >= 0 {
		value, found = c.lookupPlural(tree, tag, id, n)
	} else {
		value, found = lookupKey(tree, id)
	}
	if !found {
		c.logMiss("message id not found", locale, id)
		return "", false
	}

	tmpl, ok := value.(string)
	if !ok {
		c.logMiss("template is not a string", locale, id)
		return "", false
	}
	return substitute(tmpl, n, params), true
}

// lookupPlural resolves the plural variant of a template: the CLDR
// cardinal category for n first, then "other", then the id itself as a
// plain string for catalogs without plural forms for this message.
func (c *Catalog) lookupPlural(tree map[string]any, tag language.Tag, id string, n int) (any, bool) {
	form := cardinalForm(tag, n)
	if value, ok := lookupKey(tree, id+"."+form); ok {
		return value, true
	}
	if form != "other" {
		if value, ok := lookupKey(tree, id+".other"); ok {
			return value, true
		}
	}
	return lookupKey(tree, id)
}

// resolveLocale picks the catalog tree for a requested locale: exact key
// first, then BCP 47 matching, then the configured fallback.
func (c *Catalog) resolveLocale(locale string) (map[string]any, language.Tag, bool) {
	if tree, ok := c.translations[locale]; ok {
		tag, err := language.Parse(locale)
		if err != nil {
			tag = language.Und
		}
		return tree, tag, true
	}
	if c.matcher != nil {
		if requested, err := language.Parse(locale); err == nil {
			_, index, confidence := c.matcher.Match(requested)
			if confidence > language.No {
				matched := c.locales[index]
				tag, _ := language.Parse(matched)
				return c.translations[matched], tag, true
			}
		}
	}
	if c.fallback != "" && c.fallback != locale {
		if tree, ok := c.translations[c.fallback]; ok {
			tag, err := language.Parse(c.fallback)
			if err != nil {
				tag = language.Und
			}
			return tree, tag, true
		}
	}
	return nil, language.Und, false
}

func (c *Catalog) logMiss(reason, locale, id string) {
	if c.missingLog {
		c.logger.Warn("catalog lookup missed",
			slog.String("reason", reason),
			slog.String("locale", locale),
			slog.String("id", id),
		)
	}
}

// lookupKey traverses a nested map using dot-separated keys, so the key
// "validation.min_items.other" walks tree["validation"]["min_items"]["other"].
func lookupKey(tree map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := tree
	for i, part := range parts {
		if i == len(parts)-1 {
			value, ok := current[part]
			return value, ok
		}
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		currentMap, ok := next.(map[string]any)
		if !ok {
			// YAML decoders may produce map[any]any for nested maps.
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}
			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}
		current = currentMap
	}
	return nil, false
}

// placeholderRegex matches named placeholders in the %{name} form.
var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders with the matching parameter
// value. Placeholders without a parameter keep their original form so a
// template mismatch stays visible.
func substitute(tmpl string, n int, params []validate.Param) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		for _, p := range params {
			if p.Name == name {
				return formatValue(p.Value)
			}
		}
		if name == "count" && n >= 0 {
			return strconv.Itoa(n)
		}
		return match
	})
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
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

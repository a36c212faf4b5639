package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/i18n"
	"github.com/dmitrymomot/validkit/validate"
)

func newTestCatalog(t *testing.T, options ...i18n.Option) *i18n.Catalog {
	t.Helper()
	catalog, err := i18n.New(context.Background(), i18n.Map(map[string]map[string]any{
		"en": {
			"validation": map[string]any{
				"minimum": "must be %{minimum} or more, got %{actual}",
				"max_items": map[string]any{
					"one":   "keep at most one item",
					"other": "keep at most %{count} items",
				},
			},
			"greeting": "hello %{name}",
		},
		"uk": {
			"greeting": "привіт %{name}",
		},
	}), options...)
	require.NoError(t, err)
	return catalog
}

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil source is rejected", func(t *testing.T) {
		_, err := i18n.New(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilSource)
	})

	t.Run("empty locale code is rejected", func(t *testing.T) {
		_, err := i18n.New(context.Background(), i18n.Map(map[string]map[string]any{
			"": {"greeting": "hi"},
		}))
		assert.ErrorIs(t, err, i18n.ErrEmptyLocale)
	})

	t.Run("locale codes must parse as language tags", func(t *testing.T) {
		_, err := i18n.New(context.Background(), i18n.Map(map[string]map[string]any{
			"not a locale": {"greeting": "hi"},
		}))
		assert.ErrorIs(t, err, i18n.ErrInvalidLocale)
	})

	t.Run("nil translation tree is rejected", func(t *testing.T) {
		_, err := i18n.New(context.Background(), i18n.Map(map[string]map[string]any{
			"en": nil,
		}))
		assert.ErrorIs(t, err, i18n.ErrNilTranslations)
	})

	t.Run("locales are reported sorted", func(t *testing.T) {
		catalog := newTestCatalog(t)
		assert.Equal(t, []string{"en", "uk"}, catalog.Locales())
	})
}

func TestLookup(t *testing.T) {
	t.Parallel()
	params := []validate.Param{
		{Name: "minimum", Value: 18},
		{Name: "actual", Value: 3},
	}

	t.Run("exact locale with parameter substitution", func(t *testing.T) {
		catalog := newTestCatalog(t)
		msg, ok := catalog.Lookup("validation.minimum", "en", -1, params)
		require.True(t, ok)
		assert.Equal(t, "must be 18 or more, got 3", msg)
	})

	t.Run("regional variant matches its parent", func(t *testing.T) {
		catalog := newTestCatalog(t)
		msg, ok := catalog.Lookup("validation.minimum", "en-GB", -1, params)
		require.True(t, ok)
		assert.Equal(t, "must be 18 or more, got 3", msg)
	})

	t.Run("plural form selection", func(t *testing.T) {
		catalog := newTestCatalog(t)

		msg, ok := catalog.Lookup("validation.max_items", "en", 1, nil)
		require.True(t, ok)
		assert.Equal(t, "keep at most one item", msg)

		msg, ok = catalog.Lookup("validation.max_items", "en", 4, nil)
		require.True(t, ok)
		assert.Equal(t, "keep at most 4 items", msg)
	})

	t.Run("plural lookup on a plain string falls back to the bare id", func(t *testing.T) {
		catalog := newTestCatalog(t)
		msg, ok := catalog.Lookup("validation.minimum", "en", 2, params)
		require.True(t, ok)
		assert.Equal(t, "must be 18 or more, got 3", msg)
	})

	t.Run("missing id misses without error", func(t *testing.T) {
		catalog := newTestCatalog(t)
		_, ok := catalog.Lookup("validation.unknown", "en", -1, nil)
		assert.False(t, ok)
	})

	t.Run("unmatched locale uses the fallback", func(t *testing.T) {
		catalog := newTestCatalog(t, i18n.WithFallbackLocale("en"))
		msg, ok := catalog.Lookup("greeting", "ja", -1, []validate.Param{{Name: "name", Value: "Ada"}})
		require.True(t, ok)
		assert.Equal(t, "hello Ada", msg)
	})

	t.Run("unmatched locale without fallback misses", func(t *testing.T) {
		catalog := newTestCatalog(t)
		_, ok := catalog.Lookup("greeting", "ja", -1, nil)
		assert.False(t, ok)
	})

	t.Run("non-string template misses", func(t *testing.T) {
		catalog := newTestCatalog(t)
		_, ok := catalog.Lookup("validation", "en", -1, nil)
		assert.False(t, ok)
	})

	t.Run("unknown placeholder survives substitution", func(t *testing.T) {
		catalog := newTestCatalog(t)
		msg, ok := catalog.Lookup("greeting", "en", -1, nil)
		require.True(t, ok)
		assert.Equal(t, "hello %{name}", msg)
	})
}

func TestHas(t *testing.T) {
	t.Parallel()
	catalog := newTestCatalog(t)

	assert.True(t, catalog.Has("en", "validation.minimum"))
	assert.True(t, catalog.Has("uk", "greeting"))
	assert.False(t, catalog.Has("uk", "validation.minimum"))
	assert.False(t, catalog.Has("ja", "greeting"))
}

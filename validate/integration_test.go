package validate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/i18n"
	"github.com/dmitrymomot/validkit/validate"
)

type signupForm struct {
	Email    string
	Username string
	Plan     string
	Invites  []string
}

func (f signupForm) Validate() *validate.Errors {
	return validate.Object(
		validate.Field("email", validate.MustHasFormat(f.Email, validate.FormatEmail)),
		validate.Field("username",
			validate.MinLength(f.Username, 3),
			validate.MustPattern(f.Username, `^[a-z0-9_]+$`),
		),
		validate.Field("plan", validate.Enum(f.Plan, []string{"free", "pro", "team"})),
		validate.Field("invites", validate.MaxItems(f.Invites, 2)),
		validate.Items("invites", f.Invites, func(_ int, email string) *validate.Errors {
			return validate.Leaf(validate.MustHasFormat(email, validate.FormatEmail))
		}),
		validate.Merged(validate.AnyOf(
			func() *validate.Errors {
				return validate.Leaf(validate.Enum(f.Plan, []string{"free"}))
			},
			func() *validate.Errors {
				return validate.Leaf(validate.MinItems(f.Invites, 1))
			},
		)),
	)
}

func testCatalog(t *testing.T) *i18n.Catalog {
	t.Helper()
	catalog, err := i18n.New(context.Background(), i18n.Map(map[string]map[string]any{
		"en": {
			"validation": map[string]any{
				"min_length": map[string]any{
					"one":   "use at least one character",
					"other": "use at least %{count} characters",
				},
				"enum": "choose one of: %{allowed_values}",
			},
		},
		"pl": {
			"validation": map[string]any{
				"min_length": map[string]any{
					"one":  "co najmniej jeden znak",
					"few":  "co najmniej %{count} znaki",
					"many": "co najmniej %{count} znakow",
				},
			},
		},
	}), i18n.WithFallbackLocale("en"))
	require.NoError(t, err)
	return catalog
}

func TestValidateAndRender(t *testing.T) {
	t.Parallel()
	t.Run("valid form passes end to end", func(t *testing.T) {
		form := signupForm{
			Email:    "ada@example.com",
			Username: "ada_l",
			Plan:     "free",
		}
		assert.Nil(t, form.Validate())
	})

	t.Run("localized rendering through a loaded catalog", func(t *testing.T) {
		form := signupForm{
			Email:    "ada@example.com",
			Username: "al",
			Plan:     "free",
		}
		errs := form.Validate()
		require.NotNil(t, errs)

		rendered := errs.Render("en", testCatalog(t))
		require.Len(t, rendered["/username"], 1)
		assert.Equal(t, "use at least 3 characters", rendered["/username"][0])
	})

	t.Run("locale matching picks the regional parent", func(t *testing.T) {
		form := signupForm{Email: "ada@example.com", Username: "ada_l", Plan: "gold"}
		errs := form.Validate()
		require.NotNil(t, errs)

		rendered := errs.Render("en-GB", testCatalog(t))
		require.Len(t, rendered["/plan"], 1)
		assert.Equal(t, "choose one of: free, pro, team", rendered["/plan"][0])
	})

	t.Run("plural category follows the locale rules", func(t *testing.T) {
		errs := validate.NewErrors()
		errs.Field("name").Add(validate.MinLength("a", 2))
		rendered := errs.Render("pl", testCatalog(t))
		assert.Equal(t, []string{"co najmniej 2 znaki"}, rendered["/name"])

		errs = validate.NewErrors()
		errs.Field("name").Add(validate.MinLength("a", 5))
		rendered = errs.Render("pl", testCatalog(t))
		assert.Equal(t, []string{"co najmniej 5 znakow"}, rendered["/name"])
	})

	t.Run("unknown locale falls back before using defaults", func(t *testing.T) {
		form := signupForm{Email: "ada@example.com", Username: "al", Plan: "free"}
		errs := form.Validate()
		require.NotNil(t, errs)

		rendered := errs.Render("ja", testCatalog(t))
		assert.Equal(t, []string{"use at least 3 characters"}, rendered["/username"])
	})

	t.Run("composition failures render alongside field failures", func(t *testing.T) {
		form := signupForm{
			Email:    "ada@example.com",
			Username: "ada_l",
			Plan:     "pro",
		}
		errs := form.Validate()
		require.NotNil(t, errs)
		require.Len(t, errs.Violations(), 1)

		v := errs.Violations()[0]
		assert.Equal(t, validate.KindAnyOf, v.Kind)
		require.Len(t, v.Branches, 2)

		rendered := errs.Render("en", nil)
		assert.Equal(t, []string{"must match at least one of the alternatives"}, rendered[""])
	})
}

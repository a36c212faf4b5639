package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/validate"
)

func TestEnum(t *testing.T) {
	t.Parallel()
	t.Run("passes membership by value equality", func(t *testing.T) {
		assert.Nil(t, validate.Enum("pending", []string{"pending", "active", "closed"}))
	})

	t.Run("order of alternatives never affects the outcome", func(t *testing.T) {
		assert.Nil(t, validate.Enum("active", []string{"closed", "active", "pending"}))
	})

	t.Run("violation preserves the declared order of alternatives", func(t *testing.T) {
		v := validate.Enum("unknown", []string{"pending", "active", "closed"})
		require.NotNil(t, v)
		assert.Equal(t, validate.KindEnum, v.Kind)
		allowed, ok := v.Param("allowed_values")
		require.True(t, ok)
		assert.Equal(t, []any{"pending", "active", "closed"}, allowed)
		assert.Equal(t, "must be one of: pending, active, closed", v.Message())
	})

	t.Run("numeric enumerations use value equality", func(t *testing.T) {
		assert.Nil(t, validate.Enum(2, []int{1, 2, 3}))
		assert.NotNil(t, validate.Enum(4, []int{1, 2, 3}))
	})
}

func TestCustom(t *testing.T) {
	t.Parallel()
	t.Run("passing predicate yields no violation", func(t *testing.T) {
		assert.Nil(t, validate.Custom(true, "never shown"))
	})

	t.Run("failing predicate carries the caller message", func(t *testing.T) {
		v := validate.Custom(false, "start date must precede end date")
		require.NotNil(t, v)
		assert.Equal(t, validate.KindCustom, v.Kind)
		assert.Equal(t, "start date must precede end date", v.Message())
	})

	t.Run("extra params pass through for rendering", func(t *testing.T) {
		v := validate.Custom(false, "bad", validate.Param{Name: "limit", Value: 3})
		require.NotNil(t, v)
		limit, ok := v.Param("limit")
		require.True(t, ok)
		assert.Equal(t, 3, limit)
	})
}

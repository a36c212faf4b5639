package validate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/validate"
)

func TestMinimum(t *testing.T) {
	t.Parallel()
	t.Run("passes when value equals minimum", func(t *testing.T) {
		assert.Nil(t, validate.Minimum(18, 18))
	})

	t.Run("passes when value exceeds minimum", func(t *testing.T) {
		assert.Nil(t, validate.Minimum(19, 18))
	})

	t.Run("fails below minimum with rule and observed value", func(t *testing.T) {
		v := validate.Minimum(17, 18)
		require.NotNil(t, v)
		assert.Equal(t, validate.KindMinimum, v.Kind)
		min, ok := v.Param("minimum")
		require.True(t, ok)
		assert.Equal(t, 18, min)
		actual, ok := v.Param("actual")
		require.True(t, ok)
		assert.Equal(t, 17, actual)
		assert.Equal(t, "validation.minimum", v.MessageID())
		assert.Equal(t, "must be greater than or equal to 18", v.Message())
	})

	t.Run("works with floats", func(t *testing.T) {
		assert.Nil(t, validate.Minimum(0.5, 0.5))
		assert.NotNil(t, validate.Minimum(0.49, 0.5))
	})
}

func TestMaximum(t *testing.T) {
	t.Parallel()
	t.Run("passes when value equals maximum", func(t *testing.T) {
		assert.Nil(t, validate.Maximum(100, 100))
	})

	t.Run("reports maximum and actual for out-of-range input", func(t *testing.T) {
		v := validate.Maximum(150, 100)
		require.NotNil(t, v)
		assert.Equal(t, validate.KindMaximum, v.Kind)
		max, ok := v.Param("maximum")
		require.True(t, ok)
		assert.Equal(t, 100, max)
		actual, ok := v.Param("actual")
		require.True(t, ok)
		assert.Equal(t, 150, actual)
	})
}

func TestExclusiveBounds(t *testing.T) {
	t.Parallel()
	t.Run("exclusive minimum rejects the boundary", func(t *testing.T) {
		assert.Nil(t, validate.ExclusiveMinimum(11, 10))
		v := validate.ExclusiveMinimum(10, 10)
		require.NotNil(t, v)
		assert.Equal(t, validate.KindExclusiveMinimum, v.Kind)
	})

	t.Run("exclusive maximum rejects the boundary", func(t *testing.T) {
		assert.Nil(t, validate.ExclusiveMaximum(9, 10))
		v := validate.ExclusiveMaximum(10, 10)
		require.NotNil(t, v)
		assert.Equal(t, validate.KindExclusiveMaximum, v.Kind)
	})
}

func TestFinite(t *testing.T) {
	t.Parallel()
	t.Run("passes for ordinary numbers", func(t *testing.T) {
		assert.Nil(t, validate.Finite(0))
		assert.Nil(t, validate.Finite(-1e300))
	})

	t.Run("NaN is a distinct violation kind", func(t *testing.T) {
		v := validate.Finite(math.NaN())
		require.NotNil(t, v)
		assert.Equal(t, validate.KindNotFinite, v.Kind)
	})

	t.Run("infinities are a distinct violation kind", func(t *testing.T) {
		require.NotNil(t, validate.Finite(math.Inf(1)))
		require.NotNil(t, validate.Finite(math.Inf(-1)))
	})
}

func TestMultipleOf(t *testing.T) {
	t.Parallel()
	t.Run("passes exact multiples", func(t *testing.T) {
		v, err := validate.MultipleOf(10, 5)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("tolerates floating point remainders", func(t *testing.T) {
		// 0.3/0.1 leaves a remainder very close to 0.1 in binary floats.
		v, err := validate.MultipleOf(0.3, 0.1)
		require.NoError(t, err)
		assert.Nil(t, v)

		v, err = validate.MultipleOf(1.2, 0.4)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("fails genuine non-multiples", func(t *testing.T) {
		v, err := validate.MultipleOf(7, 3)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, validate.KindMultipleOf, v.Kind)
	})

	t.Run("NaN input fails as not finite, not as a pass", func(t *testing.T) {
		v, err := validate.MultipleOf(math.NaN(), 2)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, validate.KindNotFinite, v.Kind)
	})

	t.Run("non-positive factor is a configuration error", func(t *testing.T) {
		_, err := validate.MultipleOf(10, 0)
		require.Error(t, err)
		var cfg *validate.ConfigError
		require.True(t, errors.As(err, &cfg))
		assert.Equal(t, "multiple_of", cfg.Rule)
	})
}

func TestRange(t *testing.T) {
	t.Parallel()
	t.Run("passes inside mixed bounds", func(t *testing.T) {
		v, err := validate.Range(5, validate.Bounds[int]{
			Minimum:          intPtr(0),
			ExclusiveMaximum: intPtr(10),
		})
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("fails on the exclusive side independently of the inclusive one", func(t *testing.T) {
		v, err := validate.Range(10, validate.Bounds[int]{
			Minimum:          intPtr(0),
			ExclusiveMaximum: intPtr(10),
		})
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, validate.KindExclusiveMaximum, v.Kind)
	})

	t.Run("minimum above maximum is a configuration error", func(t *testing.T) {
		_, err := validate.Range(5, validate.Bounds[int]{
			Minimum: intPtr(10),
			Maximum: intPtr(0),
		})
		var cfg *validate.ConfigError
		require.True(t, errors.As(err, &cfg))
		assert.Equal(t, "range", cfg.Rule)
	})

	t.Run("equal exclusive bounds describe an empty interval", func(t *testing.T) {
		_, err := validate.Range(5, validate.Bounds[int]{
			ExclusiveMinimum: intPtr(5),
			Maximum:          intPtr(5),
		})
		require.Error(t, err)
	})
}


package validate

import (
	"fmt"
	"math"
)

// Numeric constrains the numeric evaluators to the built-in number kinds.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// multipleOfTolerance bounds the relative error accepted by MultipleOf so
// floating point remainders close to zero or close to the factor still
// count as exact multiples.
const multipleOfTolerance = 1e-9

// Minimum validates that value >= min (inclusive lower bound).
func Minimum[T Numeric](value, min T) *Violation {
	if value >= min {
		return nil
	}
	return newViolation(KindMinimum,
		Param{Name: "minimum", Value: min},
		Param{Name: "actual", Value: value},
	)
}

// Maximum validates that value <= max (inclusive upper bound).
func Maximum[T Numeric](value, max T) *Violation {
	if value <= max {
		return nil
	}
	return newViolation(KindMaximum,
		Param{Name: "maximum", Value: max},
		Param{Name: "actual", Value: value},
	)
}

// ExclusiveMinimum validates that value > min.
func ExclusiveMinimum[T Numeric](value, min T) *Violation {
	if value > min {
		return nil
	}
	return newViolation(KindExclusiveMinimum,
		Param{Name: "exclusive_minimum", Value: min},
		Param{Name: "actual", Value: value},
	)
}

// ExclusiveMaximum validates that value < max.
func ExclusiveMaximum[T Numeric](value, max T) *Violation {
	if value < max {
		return nil
	}
	return newViolation(KindExclusiveMaximum,
		Param{Name: "exclusive_maximum", Value: max},
		Param{Name: "actual", Value: value},
	)
}

// Finite validates that value is neither NaN nor an infinity. Non-finite
// input is a distinct violation kind, never a silent pass.
func Finite(value float64) *Violation {
	if !math.IsNaN(value) && !math.IsInf(value, 0) {
		return nil
	}
	return newViolation(KindNotFinite,
		Param{Name: "actual", Value: fmt.Sprintf("%v", value)},
	)
}

// MultipleOf validates that value is an integer multiple of factor within
// a relative tolerance, so 0.3 passes against a factor of 0.1 despite the
// inexact binary representation. A non-positive or non-finite factor is a
// configuration error. NaN or infinite values fail with KindNotFinite.
func MultipleOf(value, factor float64) (*Violation, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, newConfigError("multiple_of",
			fmt.Sprintf("factor must be a positive finite number, got %v", factor), nil)
	}
	if v := Finite(value); v != nil {
		return v, nil
	}
	rem := math.Abs(math.Mod(value, factor))
	tol := multipleOfTolerance * math.Max(math.Abs(value), factor)
	if rem <= tol || factor-rem <= tol {
		return nil, nil
	}
	return newViolation(KindMultipleOf,
		Param{Name: "multiple_of", Value: factor},
		Param{Name: "actual", Value: value},
	), nil
}

// MustMultipleOf is MultipleOf for statically known factors; it panics on
// a configuration error, mirroring a compile-time guarantee.
func MustMultipleOf(value, factor float64) *Violation {
	v, err := MultipleOf(value, factor)
	if err != nil {
		panic(err)
	}
	return v
}

// Bounds describes a numeric interval. Each side is optional and may be
// inclusive or exclusive independently; set at most one of the two fields
// per side.
type Bounds[T Numeric] struct {
	Minimum          *T
	ExclusiveMinimum *T
	Maximum          *T
	ExclusiveMaximum *T
}

// Range validates value against the interval described by bounds. An empty
// interval (lower bound above the upper bound, or equal when either side
// is exclusive) is a configuration error. When both an inclusive and an
// exclusive bound are set on the same side, both are checked.
func Range[T Numeric](value T, bounds Bounds[T]) (*Violation, error) {
	if err := bounds.check(); err != nil {
		return nil, err
	}
	if bounds.Minimum != nil {
		if v := Minimum(value, *bounds.Minimum); v != nil {
			return v, nil
		}
	}
	if bounds.ExclusiveMinimum != nil {
		if v := ExclusiveMinimum(value, *bounds.ExclusiveMinimum); v != nil {
			return v, nil
		}
	}
	if bounds.Maximum != nil {
		if v := Maximum(value, *bounds.Maximum); v != nil {
			return v, nil
		}
	}
	if bounds.ExclusiveMaximum != nil {
		if v := ExclusiveMaximum(value, *bounds.ExclusiveMaximum); v != nil {
			return v, nil
		}
	}
	return nil, nil
}

// MustRange is Range for statically known bounds; it panics on a
// configuration error.
func MustRange[T Numeric](value T, bounds Bounds[T]) *Violation {
	v, err := Range(value, bounds)
	if err != nil {
		panic(err)
	}
	return v
}

func (b Bounds[T]) check() error {
	lower, lowerExclusive, hasLower := b.lower()
	upper, upperExclusive, hasUpper := b.upper()
	if !hasLower || !hasUpper {
		return nil
	}
	if lower > upper {
		return newConfigError("range",
			fmt.Sprintf("lower bound %v is greater than upper bound %v", lower, upper), nil)
	}
	if lower == upper && (lowerExclusive || upperExclusive) {
		return newConfigError("range",
			fmt.Sprintf("bounds %v and %v describe an empty interval", lower, upper), nil)
	}
	return nil
}

func (b Bounds[T]) lower() (bound T, exclusive, ok bool) {
	switch {
	case b.ExclusiveMinimum != nil:
		return *b.ExclusiveMinimum, true, true
	case b.Minimum != nil:
		return *b.Minimum, false, true
	default:
		return bound, false, false
	}
}

func (b Bounds[T]) upper() (bound T, exclusive, ok bool) {
	switch {
	case b.ExclusiveMaximum != nil:
		return *b.ExclusiveMaximum, true, true
	case b.Maximum != nil:
		return *b.Maximum, false, true
	default:
		return bound, false, false
	}
}

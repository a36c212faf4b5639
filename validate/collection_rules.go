package validate

// MinItems validates that the slice has at least min elements.
func MinItems[T any](items []T, min int) *Violation {
	if len(items) >= min {
		return nil
	}
	return newViolation(KindMinItems,
		Param{Name: "min_items", Value: min},
		Param{Name: "actual", Value: len(items)},
	)
}

// MaxItems validates that the slice has at most max elements.
func MaxItems[T any](items []T, max int) *Violation {
	if len(items) <= max {
		return nil
	}
	return newViolation(KindMaxItems,
		Param{Name: "max_items", Value: max},
		Param{Name: "actual", Value: len(items)},
	)
}

// UniqueItems validates that no two elements are equal. The scan runs in
// order and reports only the first duplicate pair found: the smallest
// second index, then the smallest first index for it.
func UniqueItems[T comparable](items []T) *Violation {
	return UniqueItemsFunc(items, func(a, b T) bool { return a == b })
}

// UniqueItemsFunc is UniqueItems with a caller-supplied equality test, for
// element types that are not comparable or need structural equality.
func UniqueItemsFunc[T any](items []T, equal func(a, b T) bool) *Violation {
	for second := 1; second < len(items); second++ {
		for first := 0; first < second; first++ {
			if equal(items[first], items[second]) {
				return newViolation(KindUniqueItems,
					Param{Name: "first_index", Value: first},
					Param{Name: "second_index", Value: second},
				)
			}
		}
	}
	return nil
}

// Contains validates that at least one element equals expected.
func Contains[T comparable](items []T, expected T) *Violation {
	for _, item := range items {
		if item == expected {
			return nil
		}
	}
	return newViolation(KindContains,
		Param{Name: "expected", Value: expected},
	)
}

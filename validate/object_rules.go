package validate

// MinProperties validates that the map has at least min entries.
func MinProperties[K comparable, V any](properties map[K]V, min int) *Violation {
	if len(properties) >= min {
		return nil
	}
	return newViolation(KindMinProperties,
		Param{Name: "min_properties", Value: min},
		Param{Name: "actual", Value: len(properties)},
	)
}

// MaxProperties validates that the map has at most max entries.
func MaxProperties[K comparable, V any](properties map[K]V, max int) *Violation {
	if len(properties) <= max {
		return nil
	}
	return newViolation(KindMaxProperties,
		Param{Name: "max_properties", Value: max},
		Param{Name: "actual", Value: len(properties)},
	)
}

// RequiredKeys validates that every named key is present in the map. The
// violation lists the missing keys in their declared order.
func RequiredKeys[V any](properties map[string]V, keys ...string) *Violation {
	var missing []string
	for _, key := range keys {
		if _, ok := properties[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return newViolation(KindRequired,
		Param{Name: "missing", Value: missing},
	)
}

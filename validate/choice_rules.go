package validate

// Enum validates that value equals one of the allowed values. Membership
// uses value equality and the order of allowed is insignificant for the
// outcome, but it is preserved in the violation so messages can list the
// alternatives in their declared order.
func Enum[T comparable](value T, allowed []T) *Violation {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	values := make([]any, len(allowed))
	for i, candidate := range allowed {
		values[i] = candidate
	}
	return newViolation(KindEnum,
		Param{Name: "allowed_values", Value: values},
		Param{Name: "actual", Value: value},
	)
}

// Custom standardizes the error shape of an externally evaluated
// predicate: pass the outcome of the check and the message to report when
// it failed. Extra params are carried through for rendering.
func Custom(ok bool, message string, params ...Param) *Violation {
	if ok {
		return nil
	}
	all := make([]Param, 0, len(params)+1)
	all = append(all, Param{Name: "message", Value: message})
	all = append(all, params...)
	return newViolation(KindCustom, all...)
}

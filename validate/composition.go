package validate

// Branch is one lazily evaluated sub-validation for the composition
// combinators. A nil or empty result means the branch passed.
type Branch func() *Errors

// AllOf succeeds when every branch succeeds. On failure the result is the
// union of every failing branch's tree merged path-wise, so no branch's
// diagnostics are lost. Returns nil on success.
func AllOf(branches ...Branch) *Errors {
	merged := NewErrors()
	for _, branch := range branches {
		merged.Merge(branch())
	}
	if merged.IsEmpty() {
		return nil
	}
	return merged
}

// AnyOf succeeds when at least one branch succeeds and short-circuits on
// the first success: remaining branches are not evaluated. When every
// branch fails the result holds a single violation whose Branches field
// carries each alternative's failure tree, in branch order.
func AnyOf(branches ...Branch) *Errors {
	failures := make([]*Errors, 0, len(branches))
	for _, branch := range branches {
		errs := branch()
		if errs.IsEmpty() {
			return nil
		}
		failures = append(failures, errs)
	}
	result := NewErrors()
	result.Add(&Violation{Kind: KindAnyOf, Branches: failures})
	return result
}

// OneOf succeeds when exactly one branch succeeds. Every branch is always
// evaluated, since the success count cannot be known early. Failure
// distinguishes zero matches from multiple matches; the latter carries the
// count and the indexes of the matching branches.
func OneOf(branches ...Branch) *Errors {
	var matched []int
	for i, branch := range branches {
		if branch().IsEmpty() {
			matched = append(matched, i)
		}
	}
	if len(matched) == 1 {
		return nil
	}
	result := NewErrors()
	if len(matched) == 0 {
		result.Add(newViolation(KindOneOfNoneMatched,
			Param{Name: "branches", Value: len(branches)},
		))
		return result
	}
	result.Add(newViolation(KindOneOfMultipleMatched,
		Param{Name: "matched", Value: len(matched)},
		Param{Name: "matched_indices", Value: matched},
	))
	return result
}

// Not succeeds when the inner validation fails. If the inner validation
// unexpectedly succeeds there is no sub-tree to report, so the result is a
// single violation. Returns nil on success.
func Not(branch Branch) *Violation {
	if branch().IsEmpty() {
		return newViolation(KindNot)
	}
	return nil
}

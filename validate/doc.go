// Package validate implements a constraint evaluation engine that checks
// structured data (records, sequences, mappings, primitives) against
// declarative rules and aggregates every failure into an ordered,
// path-addressed error tree instead of stopping at the first problem.
//
// The package follows JSON Schema semantics for the individual constraint
// kinds (numeric ranges, string lengths, patterns, enumerations, collection
// and object size limits) and for the composition combinators (AllOf, AnyOf,
// OneOf, Not). String lengths are measured in extended grapheme clusters, so
// a base letter with a combining mark counts as a single character.
//
// # Architecture
//
// Each source file groups the evaluators for one family of constraints
// (`numeric_rules.go`, `string_rules.go`, `collection_rules.go`, …). Every
// evaluator is a pure function taking the value under test plus the rule
// parameters and returning a *Violation, where nil means the value passed.
// The structural helpers in walker.go (Object, Field, Items, Nested, Self)
// assemble violations from nested values into a single Errors tree, and
// composition.go implements the JSON Schema combinators over lazily
// evaluated sub-validations.
//
// Core building blocks:
//   - Violation – one detected constraint failure with ordered parameters
//   - Errors    – ordered tree of violations keyed by field name or index
//   - Part      – a unit of structural validation merged into an Errors tree
//   - Catalog   – optional message localization source used by Render
//
// # Usage
//
//	func (u User) Validate() *validate.Errors {
//	    return validate.Object(
//	        validate.Field("age",
//	            validate.Minimum(u.Age, 0),
//	            validate.Maximum(u.Age, 100),
//	        ),
//	        validate.Field("name",
//	            validate.MinLength(u.Name, 1),
//	            validate.MaxLength(u.Name, 64),
//	        ),
//	        validate.Items("tags", u.Tags, func(_ int, tag string) *validate.Errors {
//	            return validate.Leaf(validate.MaxLength(tag, 16))
//	        }),
//	    )
//	}
//
//	if errs := user.Validate(); !errs.IsEmpty() {
//	    for path, messages := range errs.Render("en", nil) {
//	        // path is a JSON Pointer, messages are ordered
//	    }
//	}
//
// # Error Handling
//
// A Violation is the intended output of validation, never an exceptional
// condition. Malformed rule parameters (an invalid regular expression,
// minimum greater than maximum, a non-positive multiple_of factor) indicate
// an authoring bug and surface as a *ConfigError instead of being folded
// into the error tree. Validation of a value always runs to completion; the
// returned tree is either empty (success) or complete.
//
// # Concurrency
//
// The engine holds no mutable state between calls. The only shared resource
// is the process-wide compiled pattern cache, which uses publish-once
// insertion and is safe for concurrent use.
package validate

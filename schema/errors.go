package schema

import "fmt"

// ConversionError reports that an external representation could not be
// converted: malformed JSON/TOML/YAML input or a schema document that does
// not compile. It is deliberately distinct from a validation violation,
// which describes data that was evaluated and failed.
type ConversionError struct {
	// Format names the representation that failed to convert.
	Format Format

	// Err is the underlying decoder or compiler error.
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s source: %v", string(e.Format), e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

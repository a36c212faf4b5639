package schema

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a serialization format the bridge can decode.
type Format string

const (
	JSON Format = "json"
	TOML Format = "toml"
	YAML Format = "yaml"
)

// Decode converts serialized bytes into the neutral value shape used for
// schema-driven validation: map[string]any for mappings, []any for
// sequences, float64 for every number, string, bool and nil. Malformed
// input or an unknown format yields a *ConversionError, never a
// validation violation.
func Decode(data []byte, format Format) (any, error) {
	switch format {
	case JSON:
		var value any
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, &ConversionError{Format: format, Err: err}
		}
		return normalize(value), nil
	case TOML:
		// TOML documents are always tables at the top level.
		var value map[string]any
		if err := toml.Unmarshal(data, &value); err != nil {
			return nil, &ConversionError{Format: format, Err: err}
		}
		return normalize(value), nil
	case YAML:
		var value any
		if err := yaml.Unmarshal(data, &value); err != nil {
			return nil, &ConversionError{Format: format, Err: err}
		}
		return normalize(value), nil
	default:
		return nil, &ConversionError{Format: format, Err: fmt.Errorf("unknown format %q", string(format))}
	}
}

// normalize rewrites decoder-specific shapes into the neutral one: integer
// kinds widen to float64 and map[any]any keys become strings.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalize(item)
		}
		return out
	case map[any]any:
		result := make(map[string]any, len(v))
		for key, item := range v {
			ks, ok := key.(string)
			if !ok {
				ks = fmt.Sprintf("%v", key)
			}
			result[ks] = normalize(item)
		}
		return result
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	default:
		return value
	}
}

package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseCatalog decodes a single-locale catalog file into its key tree,
// choosing the decoder by file extension.
func parseCatalog(filename string, content []byte) (map[string]any, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return parseJSON(content)
	case ".yaml", ".yml":
		return parseYAML(content)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filename)
	}
}

func parseJSON(content []byte) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return data, nil
}

func parseYAML(content []byte) (map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return data, nil
}

// supportedCatalogFile reports whether the file name has a decodable
// extension.
func supportedCatalogFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

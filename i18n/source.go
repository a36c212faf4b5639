package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Source loads the catalog content: a map from locale code to that
// locale's nested key → template tree.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// Map returns a Source backed by an in-memory map, useful for tests and
// for applications that build their catalogs programmatically.
func Map(translations map[string]map[string]any) Source {
	return mapSource{data: translations}
}

type mapSource struct {
	data map[string]map[string]any
}

func (s mapSource) Load(_ context.Context) (map[string]map[string]any, error) {
	if s.data == nil {
		return make(map[string]map[string]any), nil
	}
	return s.data, nil
}

// File returns a Source reading one multi-locale catalog file, where the
// top level keys are locale codes. YAML and JSON files are supported.
func File(path string) Source {
	return fileSource{path: path}
}

type fileSource struct {
	path string
}

func (s fileSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}
	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCatalogFile, s.path)
	}
	parsed, err := parseCatalog(s.path, content)
	if err != nil {
		return nil, err
	}
	result := make(map[string]map[string]any, len(parsed))
	for locale, val := range parsed {
		tree, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: locale %q holds %T", ErrInvalidCatalogShape, locale, val)
		}
		result[locale] = tree
	}
	return result, nil
}

// FS returns a Source reading per-locale catalog files from a file system
// tree, typically an embed.FS. Every supported file directly under root
// contributes one locale named after the file, e.g. "en.yaml" → "en".
func FS(fsys fs.FS, root string) Source {
	return fsSource{fsys: fsys, root: root}
}

// Dir returns a Source reading per-locale catalog files from a directory
// on the local file system.
func Dir(path string) Source {
	return fsSource{fsys: os.DirFS(path), root: "."}
}

type fsSource struct {
	fsys fs.FS
	root string
}

func (s fsSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(s.fsys, s.root)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	result := make(map[string]map[string]any)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadCancelled, err)
		}
		if entry.IsDir() || !supportedCatalogFile(entry.Name()) {
			continue
		}
		content, err := fs.ReadFile(s.fsys, path.Join(s.root, entry.Name()))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		tree, err := parseCatalog(entry.Name(), content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		locale := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		result[locale] = tree
	}
	return result, nil
}

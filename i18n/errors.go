package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding
// implementation details. Parse and load failures are joined with their
// cause so errors.Is works on both the sentinel and the underlying error.
var (
	ErrNilSource           = errors.New("catalog source is nil")
	ErrEmptyLocale         = errors.New("empty locale code in catalog")
	ErrInvalidLocale       = errors.New("invalid locale code in catalog")
	ErrNilTranslations     = errors.New("nil translations map for locale")
	ErrFailedToParseJSON   = errors.New("failed to parse JSON catalog")
	ErrFailedToParseYAML   = errors.New("failed to parse YAML catalog")
	ErrUnsupportedFile     = errors.New("unsupported catalog file extension")
	ErrFailedToReadFile    = errors.New("failed to read catalog file")
	ErrLoadCancelled       = errors.New("catalog loading cancelled")
	ErrFailedToReadDir     = errors.New("failed to read catalog directory")
	ErrEmptyCatalogFile    = errors.New("catalog file is empty")
	ErrInvalidCatalogShape = errors.New("catalog content is not a map of locales")
)

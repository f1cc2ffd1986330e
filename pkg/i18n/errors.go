package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding implementation details.
var (
	// Parsing
	ErrParsingCancelled  = errors.New("catalog parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToParseTOML = errors.New("failed to parse TOML content")
	ErrInvalidStructure  = errors.New("invalid catalog structure")

	// Loading
	ErrLoadingCancelled    = errors.New("loading catalog cancelled")
	ErrFailedToReadFile    = errors.New("failed to read catalog file")
	ErrFailedToReadDir     = errors.New("failed to read catalog directory")
	ErrNoCatalogFiles      = errors.New("no catalog files found")
	ErrUnsupportedFileType = errors.New("unsupported catalog file type")

	// Lookup
	ErrLocaleNotSupported = errors.New("locale not supported")
)

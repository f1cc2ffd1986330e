package i18n

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Parser decodes catalog content. The outer map is keyed by locale, the inner
// map holds possibly nested message templates.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension accepts the extension with or without a leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile picks a parser by file extension. Unknown extensions return
// ErrUnsupportedFileType.
func ParserForFile(name string) (Parser, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")); ext {
	case "json":
		return NewJSONParser(), nil
	case "yaml", "yml":
		return NewYAMLParser(), nil
	case "toml":
		return NewTOMLParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, name)
	}
}

// splitLocales converts a decoded document into the per-locale form every parser returns.
func splitLocales(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for locale, val := range data {
		messages, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: locale %q: expected map, got %T", ErrInvalidStructure, locale, val)
		}
		result[locale] = messages
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no locales found", ErrInvalidStructure)
	}
	return result, nil
}

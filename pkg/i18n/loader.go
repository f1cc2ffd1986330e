package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"sync"
)

//go:embed locales/*.yml
var defaultLocales embed.FS

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := LoadFS(context.Background(), defaultLocales)
	if err != nil {
		panic(fmt.Sprintf("i18n: embedded catalog is broken: %v", err))
	}
	return c
})

// Default returns the catalog built from the embedded locale files.
func Default() *Catalog {
	return defaultCatalog()
}

// LoadDir loads every catalog file found under dir.
func LoadDir(ctx context.Context, dir string, opts ...Option) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrFailedToReadDir, dir)
	}
	return LoadFS(ctx, os.DirFS(dir), opts...)
}

// LoadFS walks fsys and merges every JSON, YAML or TOML catalog file into one catalog.
// Files for the same locale are merged; later files override earlier keys at
// the top level of that locale.
func LoadFS(ctx context.Context, fsys fs.FS, opts ...Option) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	all := make(map[string]map[string]any)
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Join(ErrFailedToReadDir, err)
		}
		if err := ctx.Err(); err != nil {
			return errors.Join(ErrLoadingCancelled, err)
		}
		if d.IsDir() {
			return nil
		}

		parser, err := ParserForFile(name)
		if errors.Is(err, ErrUnsupportedFileType) {
			return nil
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return errors.Join(ErrFailedToReadFile, err)
		}
		if len(content) == 0 {
			return nil
		}

		data, err := parser.Parse(ctx, content)
		if err != nil {
			return fmt.Errorf("%s: %w", path.Base(name), err)
		}
		for locale, tree := range data {
			if all[locale] == nil {
				all[locale] = make(map[string]any, len(tree))
			}
			maps.Copy(all[locale], tree)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, ErrNoCatalogFiles
	}

	return New(all, opts...)
}

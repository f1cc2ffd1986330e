package message

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/schemakit/pkg/i18n"
)

// Config holds environment-driven compiler settings. Load it with config.Load.
type Config struct {
	DefaultLocale string `env:"SCHEMAKIT_DEFAULT_LOCALE" envDefault:"en"`
	FullMessages  bool   `env:"SCHEMAKIT_FULL_MESSAGES" envDefault:"false"`
	CatalogDir    string `env:"SCHEMAKIT_CATALOG_DIR"`
	LogMissing    bool   `env:"SCHEMAKIT_LOG_MISSING" envDefault:"false"`
}

// NewCompilerFromConfig builds a CatalogCompiler from cfg. When CatalogDir is
// empty the embedded catalog is used.
func NewCompilerFromConfig(ctx context.Context, cfg Config, logger *slog.Logger) (*CatalogCompiler, error) {
	opts := []CompilerOption{
		WithDefaults(WithLocale(cfg.DefaultLocale), WithFullMessages(cfg.FullMessages)),
		WithMissingTemplatesLogging(cfg.LogMissing),
		WithLogger(logger),
	}

	if cfg.CatalogDir != "" {
		catalog, err := i18n.LoadDir(ctx, cfg.CatalogDir,
			i18n.WithDefaultLocale(cfg.DefaultLocale),
			i18n.WithLogger(logger),
		)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCatalog(catalog))
	}

	return NewCompiler(opts...), nil
}

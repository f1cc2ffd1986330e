// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is read once (when present), then struct fields are
// filled from their `env` tags. Every configuration type is parsed once and
// cached for the lifetime of the process; Reload and ResetCache exist for tests.
//
//	var cfg message.Config
//	config.MustLoad(&cfg)
//
//	compiler, err := message.NewCompilerFromConfig(ctx, cfg, logger)
//
// Parsing failures wrap ErrParsingConfig.
package config

package message_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/i18n"
	"github.com/dmitrymomot/schemakit/pkg/message"
	"github.com/dmitrymomot/schemakit/pkg/rule"
)

func sampleRecords() []rule.Record {
	return rule.Apply(
		rule.Evaluate(rule.NewPath("age"), rule.Filled(18), rule.Gt(18, 18)),
		[]rule.Record{rule.Hint(rule.NewPath("song", "title"), rule.PredicateKey, "is missing", nil)},
	)
}

func TestCatalogCompiler_Compile(t *testing.T) {
	c := message.NewCompiler()

	t.Run("unset failures flag resolves from rendered failures", func(t *testing.T) {
		set := c.Compile(sampleRecords(), message.Options{})
		assert.True(t, set.FailuresPresent())
		assert.Equal(t, map[string]any{"age": []string{"must be greater than 18"}}, set.Dump())
	})

	t.Run("hints only", func(t *testing.T) {
		records := []rule.Record{rule.Hint(rule.NewPath("song", "title"), rule.PredicateKey, "is missing", nil)}
		set := c.Compile(records, message.Options{})
		assert.False(t, set.FailuresPresent())
		assert.Equal(t, map[string]any{"song": map[string]any{"title": []string{"is missing"}}}, set.Dump())
	})

	t.Run("hints disabled drops hint records", func(t *testing.T) {
		set := c.Compile(sampleRecords(), message.NewOptions(message.WithHints(false)))
		assert.Empty(t, set.Hints())
		assert.Len(t, set.Failures(), 1)
	})

	t.Run("failures disabled exposes hints", func(t *testing.T) {
		set := c.Compile(sampleRecords(), message.NewOptions(message.WithFailures(false)))
		assert.Equal(t, map[string]any{"song": map[string]any{"title": []string{"is missing"}}}, set.Dump())
	})

	t.Run("explicit failures with hints only is empty", func(t *testing.T) {
		records := []rule.Record{rule.Hint(rule.NewPath("title"), rule.PredicateFilled, "must be filled", nil)}
		set := c.Compile(records, message.NewOptions(message.WithFailures(true)))
		assert.Equal(t, map[string]any{}, set.Dump())
	})

	t.Run("no records", func(t *testing.T) {
		set := c.Compile(nil, message.Options{})
		assert.True(t, set.IsEmpty())
		assert.Equal(t, map[string]any{}, set.Dump())
	})

	t.Run("message carries record metadata", func(t *testing.T) {
		set := c.Compile(sampleRecords(), message.Options{})
		failures := set.Failures()
		require.Len(t, failures, 1)
		assert.Equal(t, rule.PredicateGt, failures[0].Predicate)
		assert.Equal(t, rule.Path{"age"}, failures[0].Path)
		assert.Equal(t, 18, failures[0].Args["num"])
		assert.Equal(t, "age", failures[0].Args["field"])
	})
}

func TestCatalogCompiler_Locale(t *testing.T) {
	c := message.NewCompiler()

	set := c.Compile(sampleRecords(), message.NewOptions(message.WithLocale("de")))
	assert.Equal(t, map[string]any{"age": []string{"muss größer als 18 sein"}}, set.Dump())

	set = c.Compile(sampleRecords(), message.NewOptions(message.WithLocale("de-AT")))
	assert.Equal(t, map[string]any{"age": []string{"muss größer als 18 sein"}}, set.Dump())

	set = c.Compile(sampleRecords(), message.NewOptions(message.WithLocale("ja")))
	assert.Equal(t, map[string]any{"age": []string{"must be greater than 18"}}, set.Dump())
}

func TestCatalogCompiler_Templates(t *testing.T) {
	catalog, err := i18n.New(map[string]map[string]any{
		"en": {
			"errors": map[string]any{
				"gt?": "must be greater than %{num}",
				"rules": map[string]any{
					"age": map[string]any{"gt?": "you must be older than %{num}"},
				},
			},
			"rules": map[string]any{"age": "Age"},
		},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	c := message.NewCompiler(
		message.WithCatalog(catalog),
		message.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		message.WithMissingTemplatesLogging(true),
	)

	t.Run("field specific template wins", func(t *testing.T) {
		set := c.Compile(sampleRecords(), message.Options{})
		assert.Equal(t, map[string]any{"age": []string{"you must be older than 18"}}, set.Dump())
	})

	t.Run("full messages use the localized field name", func(t *testing.T) {
		set := c.Compile(sampleRecords(), message.NewOptions(message.WithFullMessages(true)))
		assert.Equal(t, map[string]any{"age": []string{"Age you must be older than 18"}}, set.Dump())
	})

	t.Run("full messages fall back to the raw key", func(t *testing.T) {
		records := rule.Evaluate(rule.NewPath("height"), rule.Gt(150, 160))
		set := c.Compile(records, message.NewOptions(message.WithFullMessages(true)))
		assert.Equal(t, map[string]any{"height": []string{"height must be greater than 160"}}, set.Dump())
	})

	t.Run("missing template falls back to the record message", func(t *testing.T) {
		records := rule.Evaluate(rule.NewPath("name"), rule.MinSize("ab", 3))
		set := c.Compile(records, message.Options{})
		assert.Equal(t, map[string]any{"name": []string{"size cannot be less than 3"}}, set.Dump())
		assert.Contains(t, buf.String(), "message template not found")
	})
}

func TestCatalogCompiler_Defaults(t *testing.T) {
	c := message.NewCompiler(message.WithDefaults(message.WithLocale("de"), message.WithFullMessages(true)))

	set := c.Compile(sampleRecords(), message.Options{})
	assert.Equal(t, map[string]any{"age": []string{"age muss größer als 18 sein"}}, set.Dump())

	set = c.Compile(sampleRecords(), message.NewOptions(message.WithLocale("en")))
	assert.Equal(t, map[string]any{"age": []string{"age must be greater than 18"}}, set.Dump())

	t.Run("full messages can be turned off per call", func(t *testing.T) {
		set := c.Compile(sampleRecords(), message.NewOptions(message.WithFullMessages(false)))
		assert.Equal(t, map[string]any{"age": []string{"muss größer als 18 sein"}}, set.Dump())
		assert.Equal(t, message.No, set.Options().Full)
	})
}

func TestCompilerFunc(t *testing.T) {
	var got message.Options
	c := message.CompilerFunc(func(records []rule.Record, opts message.Options) *message.Set {
		got = opts
		return message.NewSet(nil, opts)
	})

	c.Compile(nil, message.NewOptions(message.WithHints(false), message.WithLocale("en")))
	assert.Equal(t, message.No, got.Hints)
	assert.Equal(t, "en", got.Locale)
}

func TestNewCompilerFromConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("embedded catalog", func(t *testing.T) {
		c, err := message.NewCompilerFromConfig(ctx, message.Config{DefaultLocale: "de"}, nil)
		require.NoError(t, err)

		set := c.Compile(sampleRecords(), message.Options{})
		assert.Equal(t, map[string]any{"age": []string{"muss größer als 18 sein"}}, set.Dump())
	})

	t.Run("catalog directory", func(t *testing.T) {
		dir := t.TempDir()
		content := "en:\n  errors:\n    \"gt?\": \"needs more than %{num}\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yml"), []byte(content), 0o600))

		c, err := message.NewCompilerFromConfig(ctx, message.Config{DefaultLocale: "en", CatalogDir: dir, FullMessages: true}, nil)
		require.NoError(t, err)

		set := c.Compile(sampleRecords(), message.Options{})
		assert.Equal(t, map[string]any{"age": []string{"age needs more than 18"}}, set.Dump())
	})

	t.Run("broken catalog directory", func(t *testing.T) {
		_, err := message.NewCompilerFromConfig(ctx, message.Config{CatalogDir: filepath.Join(t.TempDir(), "missing")}, nil)
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})
}

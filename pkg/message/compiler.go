package message

import (
	"io"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/schemakit/pkg/i18n"
	"github.com/dmitrymomot/schemakit/pkg/rule"
)

// Compiler renders rule evaluation records into a classified message set.
type Compiler interface {
	Compile(records []rule.Record, opts Options) *Set
}

// CompilerFunc adapts a function to the Compiler interface.
type CompilerFunc func(records []rule.Record, opts Options) *Set

func (f CompilerFunc) Compile(records []rule.Record, opts Options) *Set {
	return f(records, opts)
}

// CatalogCompiler renders records through an i18n catalog.
//
// For each record it tries, in order, "errors.rules.<path>.<predicate>",
// "errors.<predicate>" and finally the record's own default template.
// With Full enabled the text is prefixed with the field name, which is
// looked up under "rules.<field>" first.
type CatalogCompiler struct {
	catalog    *i18n.Catalog
	defaults   Options
	logMissing bool
	logger     *slog.Logger
}

// CompilerOption configures a CatalogCompiler.
type CompilerOption func(*CatalogCompiler)

// WithCatalog replaces the embedded default catalog.
func WithCatalog(c *i18n.Catalog) CompilerOption {
	return func(cc *CatalogCompiler) {
		if c != nil {
			cc.catalog = c
		}
	}
}

// WithDefaults sets options applied before the per-call options.
func WithDefaults(opts ...Option) CompilerOption {
	return func(cc *CatalogCompiler) {
		cc.defaults = cc.defaults.Apply(opts...)
	}
}

// WithLogger provides a logger. If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) CompilerOption {
	return func(cc *CatalogCompiler) {
		if logger != nil {
			cc.logger = logger
		}
	}
}

// WithMissingTemplatesLogging logs records that fell back to their default
// template. Default is false to avoid excessive logging.
func WithMissingTemplatesLogging(v bool) CompilerOption {
	return func(cc *CatalogCompiler) {
		cc.logMissing = v
	}
}

// NewCompiler returns a compiler backed by the embedded catalog unless
// WithCatalog is given.
func NewCompiler(opts ...CompilerOption) *CatalogCompiler {
	cc := &CatalogCompiler{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cc)
	}
	if cc.catalog == nil {
		cc.catalog = i18n.Default()
	}
	return cc
}

// Compile renders records. Hint records are dropped when Hints is explicitly
// No. When Failures is unset it is resolved to Yes if at least one failure was
// rendered, so the resulting set exposes failures whenever there are any and
// hints otherwise.
func (c *CatalogCompiler) Compile(records []rule.Record, opts Options) *Set {
	opts = c.merge(opts)

	messages := make([]Message, 0, len(records))
	failures := false
	for _, r := range records {
		if r.IsHint() && opts.Hints.IsFalse() {
			continue
		}
		if !r.IsHint() {
			failures = true
		}
		messages = append(messages, c.render(r, opts))
	}

	if opts.Failures == Unset {
		opts.Failures = FlagOf(failures)
	}
	return NewSet(messages, opts)
}

func (c *CatalogCompiler) merge(opts Options) Options {
	out := c.defaults
	if opts.Hints != Unset {
		out.Hints = opts.Hints
	}
	if opts.Failures != Unset {
		out.Failures = opts.Failures
	}
	if opts.Locale != "" {
		out.Locale = opts.Locale
	}
	if opts.Full != Unset {
		out.Full = opts.Full
	}
	return out
}

func (c *CatalogCompiler) render(r rule.Record, opts Options) Message {
	args := maps.Clone(r.Args)
	if args == nil {
		args = make(map[string]any, 2)
	}
	if _, ok := args["input"]; !ok && r.Input != nil {
		args["input"] = r.Input
	}
	if _, ok := args["field"]; !ok {
		args["field"] = r.Path.Last()
	}

	text, ok := c.template(r, opts.Locale)
	if !ok {
		if c.logMissing {
			c.logger.Warn("message template not found", "locale", opts.Locale, "predicate", r.Predicate, "path", r.Path.String())
		}
		text = r.Message
	}
	text = i18n.Sprintf(text, args)

	if opts.Full.IsTrue() && !r.Path.IsRoot() {
		text = c.fieldName(r.Path.Last(), opts.Locale) + " " + text
	}

	return Message{
		Path:      r.Path.Prefix(),
		Kind:      r.Kind,
		Text:      text,
		Predicate: r.Predicate,
		Args:      args,
	}
}

func (c *CatalogCompiler) template(r rule.Record, locale string) (string, bool) {
	if r.Predicate == "" {
		return "", false
	}
	if !r.Path.IsRoot() {
		if tmpl, ok := c.catalog.Lookup(locale, "errors.rules."+r.Path.String()+"."+r.Predicate); ok {
			return tmpl, true
		}
	}
	return c.catalog.Lookup(locale, "errors."+r.Predicate)
}

func (c *CatalogCompiler) fieldName(field, locale string) string {
	if name, ok := c.catalog.Lookup(locale, "rules."+field); ok {
		return name
	}
	return field
}

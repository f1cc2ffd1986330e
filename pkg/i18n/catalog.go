package i18n

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is requested or the requested one is unknown.
const DefaultLocale = "en"

// Catalog holds message templates per locale, addressed by dot-separated keys
// such as "errors.filled?". A Catalog is immutable after construction and safe
// for concurrent use.
type Catalog struct {
	messages      map[string]map[string]string
	tags          []language.Tag
	locales       []string
	matcher       language.Matcher
	defaultLocale string
	logger        *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLocale sets the locale used as the last fallback.
func WithDefaultLocale(locale string) Option {
	return func(c *Catalog) {
		if locale != "" {
			c.defaultLocale = locale
		}
	}
}

// WithLogger sets the logger. If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New builds a catalog from per-locale nested maps, as returned by a Parser.
func New(data map[string]map[string]any, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		messages:      make(map[string]map[string]string, len(data)),
		defaultLocale: DefaultLocale,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	for locale, tree := range data {
		if locale == "" {
			return nil, fmt.Errorf("%w: empty locale code", ErrInvalidStructure)
		}
		flat := make(map[string]string)
		if err := flatten(flat, "", tree); err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
		c.messages[locale] = flat
	}

	c.locales = slices.Sorted(maps.Keys(c.messages))
	c.tags = make([]language.Tag, 0, len(c.locales))
	for _, locale := range c.locales {
		tag, err := language.Parse(locale)
		if err != nil {
			c.logger.Warn("unparseable locale tag, exact matches only", "locale", locale, "error", err)
			tag = language.Und
		}
		c.tags = append(c.tags, tag)
	}
	if len(c.tags) > 0 {
		c.matcher = language.NewMatcher(c.tags)
	}

	return c, nil
}

func flatten(dst map[string]string, prefix string, tree map[string]any) error {
	for key, val := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := val.(type) {
		case string:
			dst[full] = v
		case map[string]any:
			if err := flatten(dst, full, v); err != nil {
				return err
			}
		case nil:
			return fmt.Errorf("%w: key %q has no value", ErrInvalidStructure, full)
		case []any:
			return fmt.Errorf("%w: key %q holds a list", ErrInvalidStructure, full)
		default:
			dst[full] = fmt.Sprint(v)
		}
	}
	return nil
}

// Locales returns the sorted list of locales in the catalog.
func (c *Catalog) Locales() []string {
	return slices.Clone(c.locales)
}

// DefaultLocale returns the fallback locale.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Resolve maps a requested locale to one the catalog holds. Exact matches win,
// then the closest language match ("en-GB" resolves to "en"), then the default locale.
func (c *Catalog) Resolve(locale string) (string, error) {
	if locale == "" {
		locale = c.defaultLocale
	}
	if _, ok := c.messages[locale]; ok {
		return locale, nil
	}
	if c.matcher != nil {
		if tag, err := language.Parse(locale); err == nil {
			_, idx, conf := c.matcher.Match(tag)
			if conf != language.No {
				return c.locales[idx], nil
			}
		}
	}
	if _, ok := c.messages[c.defaultLocale]; ok {
		return c.defaultLocale, nil
	}
	return "", fmt.Errorf("%w: %s", ErrLocaleNotSupported, locale)
}

// Lookup returns the raw template for key. A key missing from the resolved
// locale is looked up again in the default locale.
func (c *Catalog) Lookup(locale, key string) (string, bool) {
	resolved, err := c.Resolve(locale)
	if err != nil {
		c.logger.Debug("catalog locale not supported", "locale", locale, "key", key)
		return "", false
	}
	if tmpl, ok := c.messages[resolved][key]; ok {
		return tmpl, true
	}
	if resolved != c.defaultLocale {
		if tmpl, ok := c.messages[c.defaultLocale][key]; ok {
			return tmpl, true
		}
	}
	c.logger.Debug("catalog key not found", "locale", resolved, "key", key)
	return "", false
}

// Has reports whether key resolves for locale.
func (c *Catalog) Has(locale, key string) bool {
	_, ok := c.Lookup(locale, key)
	return ok
}

// Render looks up key and substitutes its %{name} placeholders.
func (c *Catalog) Render(locale, key string, params map[string]any) (string, bool) {
	tmpl, ok := c.Lookup(locale, key)
	if !ok {
		return "", false
	}
	return Sprintf(tmpl, params), true
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Sprintf replaces "%{name}" placeholders with values from params.
// Placeholders without a value are kept as is.
func Sprintf(tmpl string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

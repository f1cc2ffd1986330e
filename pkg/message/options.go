package message

// Flag is a tri-state switch: a caller either sets it explicitly or leaves the
// decision to the compiler.
type Flag uint8

const (
	Unset Flag = iota
	Yes
	No
)

// FlagOf converts a bool into an explicit flag.
func FlagOf(v bool) Flag {
	if v {
		return Yes
	}
	return No
}

// IsTrue reports whether the flag was explicitly set to true.
func (f Flag) IsTrue() bool { return f == Yes }

// IsFalse reports whether the flag was explicitly set to false.
func (f Flag) IsFalse() bool { return f == No }

// Or returns f, or def when f is unset.
func (f Flag) Or(def bool) bool {
	if f == Unset {
		return def
	}
	return f == Yes
}

func (f Flag) String() string {
	switch f {
	case Yes:
		return "true"
	case No:
		return "false"
	default:
		return "unset"
	}
}

// Options controls how records are compiled into a Set.
type Options struct {
	// Hints set to No drops hint records during compilation.
	Hints Flag
	// Failures selects which subset Set.Dump exposes. Only an explicit Yes
	// exposes failures.
	Failures Flag
	// Locale selects the catalog locale. Empty means the compiler default.
	Locale string
	// Full set to Yes prefixes every message with its field name.
	Full Flag
}

// Option mutates an Options value.
type Option func(*Options)

// WithHints keeps (true) or drops (false) hint records.
func WithHints(v bool) Option {
	return func(o *Options) { o.Hints = FlagOf(v) }
}

// WithFailures sets whether Set.Dump exposes failures or hints.
func WithFailures(v bool) Option {
	return func(o *Options) { o.Failures = FlagOf(v) }
}

// WithLocale selects the catalog locale.
func WithLocale(locale string) Option {
	return func(o *Options) { o.Locale = locale }
}

// WithFullMessages toggles field name prefixes.
func WithFullMessages(v bool) Option {
	return func(o *Options) { o.Full = FlagOf(v) }
}

// Apply returns a copy of o with opts applied in order; later options win.
// Nil options are skipped.
func (o Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// NewOptions builds Options from scratch.
func NewOptions(opts ...Option) Options {
	return Options{}.Apply(opts...)
}

package schemakit

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/go-cmp/cmp"

	"github.com/dmitrymomot/schemakit/pkg/message"
	"github.com/dmitrymomot/schemakit/pkg/rule"
)

// Result combines coerced output with the rule evaluation records produced for
// it. A Result is sealed at construction: it has no mutating methods and is
// safe for concurrent reads.
type Result struct {
	output   map[string]any
	records  []rule.Record
	compiler message.Compiler
	defaults []message.Option
}

// New builds a sealed Result. build, when not nil, receives the builder before
// the result is frozen and is the only place where Set, Concat and Nest may be
// called. A nil compiler selects message.NewCompiler().
func New(output map[string]any, compiler message.Compiler, build func(*Builder)) *Result {
	b := NewBuilder(output, compiler)
	if build != nil {
		build(b)
	}
	return b.Freeze()
}

// Output returns a shallow copy of the coerced output.
func (r *Result) Output() map[string]any {
	out := maps.Clone(r.output)
	if out == nil {
		out = make(map[string]any)
	}
	return out
}

// ToMap is an alias for Output.
func (r *Result) ToMap() map[string]any {
	return r.Output()
}

// Get returns the value for name, or nil when it is absent.
func (r *Result) Get(name string) any {
	return r.output[name]
}

// HasKey reports whether name is present in the output, even with a nil value.
func (r *Result) HasKey(name string) bool {
	_, ok := r.output[name]
	return ok
}

// Fetch returns the value for name or an error wrapping ErrMissingKey.
func (r *Result) Fetch(name string) (any, error) {
	v, ok := r.output[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, name)
	}
	return v, nil
}

// FetchOr returns the value for name or fallback when it is absent.
func (r *Result) FetchOr(name string, fallback any) any {
	if v, ok := r.output[name]; ok {
		return v
	}
	return fallback
}

// FetchFunc returns the value for name, calling fn only when it is absent.
func (r *Result) FetchFunc(name string, fn func() any) any {
	if v, ok := r.output[name]; ok {
		return v
	}
	return fn()
}

// Records returns a copy of the frozen record snapshot.
func (r *Result) Records() []rule.Record {
	return slices.Clone(r.records)
}

// Success reports whether no failure records were accumulated. A result
// holding only hint records is still successful.
func (r *Result) Success() bool {
	return !rule.HasFailures(r.records)
}

// Failure is the negation of Success.
func (r *Result) Failure() bool {
	return !r.Success()
}

// HasError reports whether Errors has name as a top-level key.
// It renders messages, so check Success first on hot paths.
func (r *Result) HasError(name string) bool {
	if r.Success() {
		return false
	}
	_, ok := r.Errors()[name]
	return ok
}

// Errors renders failure messages only.
func (r *Result) Errors(opts ...message.Option) map[string]any {
	return r.MessageSet(with(opts, message.WithHints(false))...).Dump()
}

// Messages renders failures, or hints when the render produced no failures.
func (r *Result) Messages(opts ...message.Option) map[string]any {
	return r.MessageSet(with(opts, message.WithHints(true))...).Dump()
}

// Hints renders hint messages only.
func (r *Result) Hints(opts ...message.Option) map[string]any {
	return r.MessageSet(with(opts, message.WithFailures(false))...).Dump()
}

// MessageSet compiles the frozen records with the result defaults overridden by opts.
func (r *Result) MessageSet(opts ...message.Option) *message.Set {
	return r.compiler.Compile(r.records, message.NewOptions(slices.Concat(r.defaults, opts)...))
}

// with appends forced options without touching the caller's slice.
func with(opts []message.Option, forced ...message.Option) []message.Option {
	return slices.Concat(opts, forced)
}

// Equal compares output and rendered errors.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	return cmp.Equal(r.Output(), other.Output()) && cmp.Equal(r.Errors(), other.Errors())
}

package schemakit

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/schemakit/pkg/message"
	"github.com/dmitrymomot/schemakit/pkg/rule"
)

// Builder is the mutable phase of a Result. It is owned by a single
// validation call; Freeze seals it and every later mutation panics with ErrFrozen.
type Builder struct {
	output   map[string]any
	records  []rule.Record
	compiler message.Compiler
	defaults []message.Option
	result   *Result
}

// NewBuilder returns an open builder. A nil compiler means message.NewCompiler().
func NewBuilder(output map[string]any, compiler message.Compiler) *Builder {
	if compiler == nil {
		compiler = message.NewCompiler()
	}
	return &Builder{output: output, compiler: compiler}
}

// Set replaces the whole output.
func (b *Builder) Set(output map[string]any) *Builder {
	b.mustBeOpen()
	b.output = output
	return b
}

// Concat appends records.
func (b *Builder) Concat(records ...rule.Record) *Builder {
	b.mustBeOpen()
	b.records = append(b.records, records...)
	return b
}

// Nest absorbs the records of a nested result under key. The nested output is
// not merged; placing it in the parent output is the caller's job.
func (b *Builder) Nest(key string, sub *Result) *Builder {
	b.mustBeOpen()
	if sub == nil {
		return b
	}
	b.records = append(b.records, rule.Prefix(rule.NewPath(key), sub.records)...)
	return b
}

// WithOptions sets render options applied to every rendering call of the
// result before the per-call options.
func (b *Builder) WithOptions(opts ...message.Option) *Builder {
	b.mustBeOpen()
	b.defaults = append(b.defaults, opts...)
	return b
}

// Success reports whether no failure records were accumulated so far.
func (b *Builder) Success() bool {
	return !rule.HasFailures(b.records)
}

// Freeze snapshots the records and seals the builder. Calling it again returns
// the same Result without taking a new snapshot.
func (b *Builder) Freeze() *Result {
	if b.result != nil {
		return b.result
	}
	b.result = &Result{
		output:   maps.Clone(b.output),
		records:  slices.Clip(slices.Clone(b.records)),
		compiler: b.compiler,
		defaults: slices.Clip(slices.Clone(b.defaults)),
	}
	return b.result
}

// Frozen reports whether Freeze was called.
func (b *Builder) Frozen() bool {
	return b.result != nil
}

func (b *Builder) mustBeOpen() {
	if b.result != nil {
		panic(ErrFrozen)
	}
}

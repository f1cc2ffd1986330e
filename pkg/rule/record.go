package rule

import (
	"fmt"
	"maps"
)

// Kind classifies a record as a blocking failure or an advisory hint.
type Kind uint8

const (
	KindFailure Kind = iota
	KindHint
)

func (k Kind) String() string {
	switch k {
	case KindFailure:
		return "failure"
	case KindHint:
		return "hint"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Record is the outcome of one predicate checked against one field.
// Records are values: every method that changes a field returns a copy.
type Record struct {
	Path Path
	Kind Kind

	// Predicate names the check, e.g. "gt?" or "filled?". Message compilers use
	// it to look up a template.
	Predicate string

	// Message is the default English template, used when no catalog entry exists.
	Message string

	// Args holds placeholder values for the template.
	Args map[string]any

	// Input is the value the predicate was applied to.
	Input any
}

// IsHint reports whether the record is advisory.
func (r Record) IsHint() bool {
	return r.Kind == KindHint
}

// WithPrefix returns a copy of r whose path is nested under prefix.
func (r Record) WithPrefix(prefix ...string) Record {
	r.Path = r.Path.Prefix(prefix...)
	r.Args = maps.Clone(r.Args)
	return r
}

// AsHint returns a copy of r reclassified as a hint.
func (r Record) AsHint() Record {
	r.Path = r.Path.Prefix()
	r.Args = maps.Clone(r.Args)
	r.Kind = KindHint
	return r
}

// Failure builds a failure record directly, bypassing rule evaluation.
func Failure(path Path, predicate, message string, args map[string]any) Record {
	return Record{
		Path:      path.Prefix(),
		Kind:      KindFailure,
		Predicate: predicate,
		Message:   message,
		Args:      maps.Clone(args),
	}
}

// Hint builds a hint record directly.
func Hint(path Path, predicate, message string, args map[string]any) Record {
	r := Failure(path, predicate, message, args)
	r.Kind = KindHint
	return r
}

// Prefix nests every record under prefix.
func Prefix(prefix Path, records []Record) []Record {
	if len(records) == 0 {
		return nil
	}
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.WithPrefix(prefix...)
	}
	return out
}

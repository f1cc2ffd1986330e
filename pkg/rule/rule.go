package rule

import (
	"maps"
	"slices"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule is a single predicate bound to its input value.
type Rule struct {
	Predicate string
	Message   string
	Args      map[string]any
	Input     any
	Check     func() bool
}

func (r Rule) record(path Path, kind Kind) Record {
	return Record{
		Path:      path.Prefix(),
		Kind:      kind,
		Predicate: r.Predicate,
		Message:   r.Message,
		Args:      maps.Clone(r.Args),
		Input:     r.Input,
	}
}

// Evaluate runs rules against the field at path as a conjunction.
// Evaluation stops at the first failing rule, which produces a failure record;
// every rule after it produces a hint record describing what the value must
// still satisfy. A chain where every rule passes produces no records.
func Evaluate(path Path, rules ...Rule) []Record {
	for i, r := range rules {
		if r.Check == nil || r.Check() {
			continue
		}

		out := make([]Record, 0, len(rules)-i)
		out = append(out, r.record(path, KindFailure))
		for _, rest := range rules[i+1:] {
			out = append(out, rest.record(path, KindHint))
		}
		return out
	}
	return nil
}

// Optional evaluates rules only when present is true. An absent optional field
// produces no records.
func Optional(path Path, present bool, rules ...Rule) []Record {
	if !present {
		return nil
	}
	return Evaluate(path, rules...)
}

// Any runs each rule independently and reports every failure. No hints are produced.
func Any(path Path, rules ...Rule) []Record {
	var out []Record
	for _, r := range rules {
		if r.Check != nil && !r.Check() {
			out = append(out, r.record(path, KindFailure))
		}
	}
	return out
}

// Apply flattens several evaluation results into one ordered sequence.
func Apply(groups ...[]Record) []Record {
	return slices.Concat(groups...)
}

// HasFailures reports whether any record blocks validation.
func HasFailures(records []Record) bool {
	return slices.ContainsFunc(records, func(r Record) bool { return !r.IsHint() })
}

package message

import (
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/schemakit/pkg/rule"
)

// SelfKey holds the messages that belong to a node which also has nested
// children, and messages with an empty path at the root.
const SelfKey = "_self"

// Message is a compiled, human-readable rule outcome.
type Message struct {
	Path      rule.Path
	Kind      rule.Kind
	Text      string
	Predicate string
	Args      map[string]any
}

func (m Message) IsHint() bool {
	return m.Kind == rule.KindHint
}

// Set is a classified view over compiled messages. Failures are ordered before
// hints; the order within each class is kept. A Set is immutable and safe for
// concurrent use.
type Set struct {
	messages []Message
	failures []Message
	hints    []Message
	options  Options

	hintGroupsOnce sync.Once
	hintGroups     map[string][]Message
}

// NewSet partitions messages into failures and hints.
func NewSet(messages []Message, opts Options) *Set {
	failures, hints := partition(messages)
	return &Set{
		messages: slices.Concat(failures, hints),
		failures: failures,
		hints:    hints,
		options:  opts,
	}
}

func partition(messages []Message) (failures, hints []Message) {
	for _, m := range messages {
		if !m.IsHint() {
			failures = append(failures, m)
		}
	}
	for _, m := range messages {
		if m.IsHint() {
			hints = append(hints, m)
		}
	}
	return failures, hints
}

// Messages returns every message, failures first.
func (s *Set) Messages() []Message { return slices.Clone(s.messages) }

// Failures returns the failure subset.
func (s *Set) Failures() []Message { return slices.Clone(s.failures) }

// Hints returns the hint subset.
func (s *Set) Hints() []Message { return slices.Clone(s.hints) }

// Options returns the options the set was built with.
func (s *Set) Options() Options { return s.options }

// Len returns the number of messages.
func (s *Set) Len() int { return len(s.messages) }

// IsEmpty reports whether the set holds no messages.
func (s *Set) IsEmpty() bool { return len(s.messages) == 0 }

// FailuresPresent reports the caller's declared intent, not whether failure
// messages exist: it is true only when Options.Failures is explicitly Yes.
func (s *Set) FailuresPresent() bool {
	return s.options.Failures.IsTrue()
}

// Dump groups either the failure subset or, when FailuresPresent is false, the
// hint subset into a nested map. Every path segment becomes a map key and each
// leaf is the ordered list of message texts for that exact path.
// A new map is returned on every call.
func (s *Set) Dump() map[string]any {
	if s.FailuresPresent() {
		return group(s.failures)
	}
	return group(s.hints)
}

// HintGroups indexes hints by dotted path. The index is built once.
func (s *Set) HintGroups() map[string][]Message {
	s.hintGroupsOnce.Do(func() {
		groups := make(map[string][]Message)
		for _, h := range s.hints {
			key := h.Path.String()
			groups[key] = append(groups[key], h)
		}
		s.hintGroups = groups
	})

	out := maps.Clone(s.hintGroups)
	for k, v := range out {
		out[k] = slices.Clone(v)
	}
	return out
}

func group(messages []Message) map[string]any {
	root := make(map[string]any)
	for _, m := range messages {
		if m.Path.IsRoot() {
			appendLeaf(root, SelfKey, m.Text)
			continue
		}
		node := root
		for _, seg := range m.Path[:len(m.Path)-1] {
			node = child(node, seg)
		}
		appendLeaf(node, m.Path.Last(), m.Text)
	}
	return root
}

func child(node map[string]any, key string) map[string]any {
	switch v := node[key].(type) {
	case map[string]any:
		return v
	case []string:
		next := map[string]any{SelfKey: v}
		node[key] = next
		return next
	default:
		next := make(map[string]any)
		node[key] = next
		return next
	}
}

func appendLeaf(node map[string]any, key, text string) {
	switch v := node[key].(type) {
	case []string:
		node[key] = append(v, text)
	case map[string]any:
		self, _ := v[SelfKey].([]string)
		v[SelfKey] = append(self, text)
	default:
		node[key] = []string{text}
	}
}

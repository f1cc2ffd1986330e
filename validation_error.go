package schemakit

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/dmitrymomot/schemakit/pkg/message"
)

// ValidationError is a flat view of rendered failures keyed by dotted path.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationError url.Values

// Error implements the error interface.
// Returns a human-readable error message summarizing validation failures.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var parts []string
	for _, field := range fields {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}

	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

// Add adds an error message for a field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field has any errors.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

// ValidationError renders the failures of r as a flat ValidationError,
// or nil for a successful result.
func (r *Result) ValidationError(opts ...message.Option) ValidationError {
	if r.Success() {
		return nil
	}
	set := r.MessageSet(with(opts, message.WithHints(false))...)
	if !set.FailuresPresent() {
		return nil
	}
	out := make(ValidationError)
	for _, m := range set.Failures() {
		out.Add(m.Path.String(), m.Text)
	}
	if out.IsEmpty() {
		return nil
	}
	return out
}

// Err returns the failures of r as an error, or nil when there are none.
func (r *Result) Err(opts ...message.Option) error {
	if verr := r.ValidationError(opts...); verr != nil {
		return verr
	}
	return nil
}

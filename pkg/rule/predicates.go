package rule

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Predicate names double as catalog keys under "errors.".
const (
	PredicateKey      = "key?"
	PredicateFilled   = "filled?"
	PredicateType     = "type?"
	PredicateMinSize  = "min_size?"
	PredicateMaxSize  = "max_size?"
	PredicateGt       = "gt?"
	PredicateGteq     = "gteq?"
	PredicateLt       = "lt?"
	PredicateLteq     = "lteq?"
	PredicateIncluded = "included_in?"
	PredicateFormat   = "format?"
)

// Key checks that a field is present in the input.
func Key(present bool) Rule {
	return Rule{
		Predicate: PredicateKey,
		Message:   "is missing",
		Check:     func() bool { return present },
	}
}

// Filled checks that a value is neither nil nor an empty string, slice or map.
// Strings made only of whitespace count as empty.
func Filled(value any) Rule {
	return Rule{
		Predicate: PredicateFilled,
		Message:   "must be filled",
		Input:     value,
		Check:     func() bool { return !isEmpty(value) },
	}
}

// IsType checks the dynamic type of value.
func IsType[T any](value any) Rule {
	name := reflect.TypeFor[T]().String()
	return Rule{
		Predicate: PredicateType,
		Message:   "must be %{type}",
		Args:      map[string]any{"type": name},
		Input:     value,
		Check: func() bool {
			_, ok := value.(T)
			return ok
		},
	}
}

// MinSize checks the rune length of a string or the length of a slice or map.
func MinSize(value any, min int) Rule {
	return Rule{
		Predicate: PredicateMinSize,
		Message:   "size cannot be less than %{num}",
		Args:      map[string]any{"num": min},
		Input:     value,
		Check: func() bool {
			n, ok := size(value)
			return ok && n >= min
		},
	}
}

// MaxSize checks the rune length of a string or the length of a slice or map.
func MaxSize(value any, max int) Rule {
	return Rule{
		Predicate: PredicateMaxSize,
		Message:   "size cannot be greater than %{num}",
		Args:      map[string]any{"num": max},
		Input:     value,
		Check: func() bool {
			n, ok := size(value)
			return ok && n <= max
		},
	}
}

// Gt checks value > num.
func Gt[T Numeric](value, num T) Rule {
	return comparison(PredicateGt, "must be greater than %{num}", value, num, func() bool { return value > num })
}

// Gteq checks value >= num.
func Gteq[T Numeric](value, num T) Rule {
	return comparison(PredicateGteq, "must be greater than or equal to %{num}", value, num, func() bool { return value >= num })
}

// Lt checks value < num.
func Lt[T Numeric](value, num T) Rule {
	return comparison(PredicateLt, "must be less than %{num}", value, num, func() bool { return value < num })
}

// Lteq checks value <= num.
func Lteq[T Numeric](value, num T) Rule {
	return comparison(PredicateLteq, "must be less than or equal to %{num}", value, num, func() bool { return value <= num })
}

func comparison[T Numeric](predicate, message string, value, num T, check func() bool) Rule {
	return Rule{
		Predicate: predicate,
		Message:   message,
		Args:      map[string]any{"num": num},
		Input:     value,
		Check:     check,
	}
}

// Included checks that value is one of the allowed options.
func Included[T comparable](value T, list ...T) Rule {
	return Rule{
		Predicate: PredicateIncluded,
		Message:   "must be one of: %{list}",
		Args:      map[string]any{"list": joinAny(list)},
		Input:     value,
		Check:     func() bool { return slices.Contains(list, value) },
	}
}

// Format checks a string against a regular expression. A nil pattern never
// matches.
func Format(value string, pattern *regexp.Regexp) Rule {
	var source string
	if pattern != nil {
		source = pattern.String()
	}
	return Rule{
		Predicate: PredicateFormat,
		Message:   "is in invalid format",
		Args:      map[string]any{"format": source},
		Input:     value,
		Check:     func() bool { return pattern != nil && pattern.MatchString(value) },
	}
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer:
		return rv.IsNil()
	}
	return false
}

func size(value any) (int, bool) {
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}

func joinAny[T any](list []T) string {
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

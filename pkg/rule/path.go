package rule

import (
	"slices"
	"strconv"
	"strings"
)

// Path locates a field inside nested input. Index segments are stored in their
// decimal form so a path can be used directly as a chain of map keys.
type Path []string

// NewPath builds a path from keys.
func NewPath(keys ...string) Path {
	if len(keys) == 0 {
		return nil
	}
	return Path(slices.Clone(keys))
}

// Key returns a copy of p extended with a key segment.
func (p Path) Key(name string) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, name)
}

// Index returns a copy of p extended with a list index segment.
func (p Path) Index(i int) Path {
	return p.Key(strconv.Itoa(i))
}

// Prefix returns a new path with prefix placed in front of p.
func (p Path) Prefix(prefix ...string) Path {
	if len(prefix) == 0 {
		return slices.Clone(p)
	}
	out := make(Path, 0, len(prefix)+len(p))
	out = append(out, prefix...)
	return append(out, p...)
}

// Last returns the final segment, or an empty string for the root path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

func (p Path) IsRoot() bool {
	return len(p) == 0
}

func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// String returns the dotted form, e.g. "address.street" or "tags.0".
func (p Path) String() string {
	return strings.Join(p, ".")
}

// ParsePath splits a dotted path. An empty string yields the root path.
func ParsePath(s string) Path {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return Path(strings.Split(s, "."))
}

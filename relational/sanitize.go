// Package relational derives SQL table definitions and DDL text from an
// extracted schema model. All identifier quoting and sanitization lives
// here so generated DDL can never carry a malformed identifier.
package relational

import (
	"strconv"
	"strings"
)

// SanitizeIdentifier converts an arbitrary name into a valid SQL
// identifier: upper-cased, non-alphanumeric runes replaced with
// underscores, and a leading underscore added when the name starts with a
// digit. It is a pure function: feeding its own output back yields the
// same identifier.
func SanitizeIdentifier(name string) string {
	if name == "" {
		return "_"
	}
	var sb strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	s := sb.String()
	if s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s
}

// Namer hands out sanitized identifiers that are unique within one scope
// (one schema's tables, or one table's columns). Distinct names that
// sanitize to the same identifier are disambiguated deterministically with
// a numeric suffix in encounter order: NAME, NAME_2, NAME_3.
type Namer struct {
	used map[string]int
}

// NewNamer returns a Namer with an empty scope.
func NewNamer() *Namer {
	return &Namer{used: make(map[string]int)}
}

// Unique sanitizes name and returns a collision-free identifier for this
// scope. Every issued identifier is reserved, including suffixed ones, so
// a suffix candidate can never collide with a name that sanitized to that
// identifier directly.
func (n *Namer) Unique(name string) string {
	id := SanitizeIdentifier(name)
	count, taken := n.used[id]
	if !taken {
		n.used[id] = 1
		return id
	}

	candidate := id
	for n.used[candidate] > 0 {
		count++
		candidate = id + "_" + strconv.Itoa(count)
	}
	n.used[id] = count
	n.used[candidate] = 1
	return candidate
}

// escapeComment escapes single quotes for embedding in COMMENT = '...'.
func escapeComment(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Package normalize canonicalizes externally supplied identifiers. The
// upstream API is inconsistent about identifier casing between endpoints, so
// every identifier is folded to a single case at the point it enters or
// leaves persistence or comparison. Upper case is used because the GraphQL
// endpoint itself requires uppercase IDs in query variables.
package normalize

import "strings"

// ID returns the canonical form of an identifier. Null-ish input (empty or
// whitespace only) maps to the empty string rather than an error, since
// upstream payloads omit IDs on bye placeholders.
func ID(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.ToUpper(trimmed)
}

// IDs normalizes a slice in place-order, dropping empty entries.
func IDs(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if id := ID(r); id != "" {
			out = append(out, id)
		}
	}
	return out
}

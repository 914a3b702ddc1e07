// Package reconcile implements the name-based reconciliation of the upstream
// item dataset against the curated local catalog. Matching runs on normalized
// names with a Levenshtein fallback, and the transformer maps the upstream
// schema into the local one while preserving curator-owned fields.
//
// The whole package is pure computation over in-memory inputs; all I/O lives
// in pkg/sources and pkg/items. Iteration orders are fixed so that two runs
// over the same inputs always produce the same catalog.
package reconcile

import "strings"

// NormalizeName canonicalizes a display name into a matching key by
// lower-casing and stripping every character outside [a-z0-9]. The key is
// used only for matching, never displayed. An empty or missing name yields
// an empty key, which is never a match candidate.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

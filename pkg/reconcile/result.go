package reconcile

import "fmt"

// Stats summarizes a merge run. It is plain data; rendering belongs to the
// caller.
type Stats struct {
	// Updated counts records matched to an existing catalog entry.
	Updated int

	// Added counts brand-new records.
	Added int

	// Skipped counts records excluded for lacking a usable English name.
	Skipped int

	// Total is the number of entries in the merged catalog.
	Total int
}

// Summary returns a one-line human-readable summary.
func (s Stats) Summary() string {
	return fmt.Sprintf("updated %d, added %d, skipped %d, total %d", s.Updated, s.Added, s.Skipped, s.Total)
}

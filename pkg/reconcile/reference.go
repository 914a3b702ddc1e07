package reconcile

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arcscanner/itemsync/pkg/sources"
)

// ReferenceTable maps external ids to English display names. It is built once
// per run from the full raw record set and read-only afterwards, so that
// cross-item references (recycle outputs) can be rendered as display names.
type ReferenceTable map[string]string

// BuildReferenceTable maps every raw record with a non-empty English name to
// that name. Records without a usable name are skipped; they never appear as
// reference targets.
func BuildReferenceTable(records map[string]sources.Item) ReferenceTable {
	table := make(ReferenceTable, len(records))
	for id, record := range records {
		if name := record.EnglishName(); name != "" {
			table[id] = name
		}
	}
	return table
}

// Resolve returns the display name for an external id. Ids missing from the
// table fall back to a readable rendering of the id itself (underscores to
// spaces, each word title-cased), so every reference resolves to some
// printable string even when the referenced record is missing or unnamed.
func (t ReferenceTable) Resolve(id string) string {
	if name, ok := t[id]; ok {
		return name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}

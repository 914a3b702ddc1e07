package reconcile

import (
	"github.com/arcscanner/itemsync/pkg/items"
)

// Index holds existing catalog items keyed by normalized name, preserving
// insertion order so that fuzzy-match tie-breaking is reproducible. When two
// items normalize to the same key the later one wins, keeping the key's
// original position (the same semantics the catalog file's array order gives
// a map built from it).
type Index struct {
	keys  []string
	byKey map[string]*items.Item
}

// NewIndex builds an index over the existing catalog, in catalog order.
// Items whose names normalize to an empty key are excluded; matching an
// empty key would collapse every unnamed item onto one entry.
func NewIndex(existing []items.Item) *Index {
	idx := &Index{
		keys:  make([]string, 0, len(existing)),
		byKey: make(map[string]*items.Item, len(existing)),
	}
	for i := range existing {
		key := NormalizeName(existing[i].Name)
		if key == "" {
			continue
		}
		if _, seen := idx.byKey[key]; !seen {
			idx.keys = append(idx.keys, key)
		}
		idx.byKey[key] = &existing[i]
	}
	return idx
}

// Len returns the number of distinct normalized keys in the index.
func (idx *Index) Len() int {
	return len(idx.keys)
}

// Find returns the best existing match for name, or nil.
//
// An exact normalized-key hit always wins, regardless of any fuzzy candidate.
// Otherwise every indexed key is scored by edit distance and the closest one
// is returned, provided it is within max(3, 0.2·len(key)) edits. Ties keep
// the earliest candidate: a later key with equal distance is not selected.
func (idx *Index) Find(name string) *items.Item {
	key := NormalizeName(name)
	if key == "" {
		return nil
	}

	if item, ok := idx.byKey[key]; ok {
		return item
	}

	maxDistance := float64(len(key)) * 0.2
	if maxDistance < 3 {
		maxDistance = 3
	}

	var best *items.Item
	bestDistance := -1
	for _, existingKey := range idx.keys {
		distance := Levenshtein(key, existingKey)
		if float64(distance) > maxDistance {
			continue
		}
		if best == nil || distance < bestDistance {
			best = idx.byKey[existingKey]
			bestDistance = distance
		}
	}
	return best
}

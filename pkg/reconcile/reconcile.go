package reconcile

import (
	"context"
	"slices"
	"strings"

	"github.com/arcscanner/itemsync/pkg/items"
	"github.com/arcscanner/itemsync/pkg/logging"
	"github.com/arcscanner/itemsync/pkg/sources"
)

// Reconciler drives a full merge: it builds the reference table from the raw
// records, matches each record against the existing catalog, transforms it
// into the local schema, and returns the sorted merged catalog with stats.
type Reconciler struct {
	transformer *Transformer
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithConfig sets the transformation rules. Defaults to DefaultConfig.
func WithConfig(cfg *Config) Option {
	return func(r *Reconciler) {
		r.transformer = NewTransformer(cfg)
	}
}

// New creates a Reconciler.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{}
	for _, opt := range opts {
		opt(r)
	}
	if r.transformer == nil {
		r.transformer = NewTransformer(nil)
	}
	return r
}

// Run merges the raw record set into the existing catalog.
//
// Raw records are processed in ascending external-id order; together with the
// index's insertion-order tie-breaking this makes the run fully deterministic.
// Records without a usable English name are counted as skipped and excluded
// from the output. The returned catalog is sorted by case-insensitive name
// ascending, which is part of the persistence contract.
func (r *Reconciler) Run(ctx context.Context, raw map[string]sources.Item, existing []items.Item) ([]items.Item, Stats) {
	log := logging.FromContext(ctx)

	refs := BuildReferenceTable(raw)
	idx := NewIndex(existing)
	log.Debug().
		Int("raw", len(raw)).
		Int("referenced", len(refs)).
		Int("indexed", idx.Len()).
		Msg("Built merge lookups")

	var stats Stats
	merged := make([]items.Item, 0, len(raw))

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		record := raw[id]

		name := record.EnglishName()
		if name == "" {
			stats.Skipped++
			log.Debug().Str("id", id).Msg("Skipping record without a name")
			continue
		}

		match := idx.Find(name)
		merged = append(merged, r.transformer.Transform(record, refs, match))
		if match != nil {
			stats.Updated++
		} else {
			stats.Added++
		}
	}

	slices.SortStableFunc(merged, func(a, b items.Item) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	stats.Total = len(merged)
	return merged, stats
}

package itemsync

import (
	"context"
	"fmt"

	"github.com/arcscanner/itemsync/pkg/constants"
	"github.com/arcscanner/itemsync/pkg/items"
	"github.com/arcscanner/itemsync/pkg/logging"
	"github.com/arcscanner/itemsync/pkg/reconcile"
	"github.com/arcscanner/itemsync/pkg/sources"
)

// client is the internal implementation of the Itemsync interface.
type client struct {
	source     sources.Source
	catalog    string
	reconciler *reconcile.Reconciler
}

// New creates a new Itemsync instance with the given options.
func New(opts ...Option) (Itemsync, error) {
	cfg := &config{
		catalogPath: constants.DefaultCatalogFile,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	if cfg.source == nil {
		cfg.source = sources.NewGitHub()
	}

	return &client{
		source:     cfg.source,
		catalog:    cfg.catalogPath,
		reconciler: reconcile.New(reconcile.WithConfig(cfg.rules)),
	}, nil
}

// Fetch implements Itemsync.
func (c *client) Fetch(ctx context.Context, opts ...sources.Option) (map[string]sources.Item, error) {
	return c.source.Fetch(ctx, opts...)
}

// Merge implements Itemsync.
func (c *client) Merge(ctx context.Context, raw map[string]sources.Item, existing []items.Item) ([]items.Item, reconcile.Stats) {
	return c.reconciler.Run(ctx, raw, existing)
}

// Sync implements Itemsync.
func (c *client) Sync(ctx context.Context, opts ...SyncOption) (*Result, error) {
	var o syncOptions
	for _, opt := range opts {
		opt(&o)
	}

	log := logging.FromContext(ctx)

	var fetchOpts []sources.Option
	if o.noCache {
		fetchOpts = append(fetchOpts, sources.WithNoCache())
	}
	raw, err := c.source.Fetch(ctx, fetchOpts...)
	if err != nil {
		return nil, err
	}

	existing, err := items.Load(c.catalog)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("raw", len(raw)).
		Int("existing", len(existing)).
		Str("catalog", c.catalog).
		Msg("Merging catalogs")

	merged, stats := c.reconciler.Run(ctx, raw, existing)

	result := &Result{
		Catalog:       merged,
		Stats:         stats,
		NewItems:      newItems(merged, existing),
		ExistingCount: len(existing),
		DryRun:        o.dryRun,
	}

	if o.dryRun {
		log.Info().Str("stats", stats.Summary()).Msg("Dry run, catalog not written")
		return result, nil
	}

	if err := items.Save(c.catalog, merged); err != nil {
		return nil, err
	}
	log.Info().Int("items", stats.Total).Str("catalog", c.catalog).Msg("Wrote catalog")

	return result, nil
}

// newItems returns the merged entries that had no match in the prior catalog,
// in catalog order.
func newItems(merged, existing []items.Item) []items.Item {
	idx := reconcile.NewIndex(existing)
	var added []items.Item
	for _, item := range merged {
		if idx.Find(item.Name) == nil {
			added = append(added, item)
		}
	}
	return added
}

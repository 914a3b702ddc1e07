// Package itemsync reconciles the community-maintained ARC Raiders item
// dataset with a locally curated catalog. The upstream dataset is fetched
// one JSON file per item; the local catalog carries hand-authored curator
// fields (recommendations, quest and project uses) that the merge preserves
// for items that already exist and defaults for items that are new.
//
// Example usage:
//
//	client, err := itemsync.New(
//	    itemsync.WithCatalogPath("items.json"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Sync(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.Summary())
package itemsync

import (
	"context"

	"github.com/arcscanner/itemsync/pkg/items"
	"github.com/arcscanner/itemsync/pkg/reconcile"
	"github.com/arcscanner/itemsync/pkg/sources"
)

// Itemsync is the main entry point for fetching and merging the item catalog.
type Itemsync interface {
	// Fetch retrieves the raw upstream records without merging.
	Fetch(ctx context.Context, opts ...sources.Option) (map[string]sources.Item, error)

	// Merge reconciles already-fetched raw records against an existing
	// catalog. Pure computation; nothing is read or written.
	Merge(ctx context.Context, raw map[string]sources.Item, existing []items.Item) ([]items.Item, reconcile.Stats)

	// Sync runs the full pipeline: fetch, load the local catalog, merge,
	// and save the result (unless the dry-run option is set).
	Sync(ctx context.Context, opts ...SyncOption) (*Result, error)
}

// Result describes the outcome of a Sync.
type Result struct {
	// Catalog is the merged catalog in persisted order.
	Catalog []items.Item

	// Stats summarizes the merge.
	Stats reconcile.Stats

	// NewItems are the catalog entries that had no existing match,
	// in catalog order. Useful for dry-run previews.
	NewItems []items.Item

	// ExistingCount is the size of the local catalog before the merge.
	ExistingCount int

	// DryRun reports whether the catalog was written.
	DryRun bool
}

package itemsync

import (
	"github.com/arcscanner/itemsync/pkg/reconcile"
	"github.com/arcscanner/itemsync/pkg/sources"
)

// Option is a function that configures an Itemsync instance.
type Option func(*config) error

// config holds client configuration.
type config struct {
	source      sources.Source
	catalogPath string
	rules       *reconcile.Config
}

// WithSource sets the upstream data source. Defaults to the GitHub source.
func WithSource(src sources.Source) Option {
	return func(c *config) error {
		c.source = src
		return nil
	}
}

// WithCatalogPath sets the local catalog file location.
func WithCatalogPath(path string) Option {
	return func(c *config) error {
		c.catalogPath = path
		return nil
	}
}

// WithRules sets the transformation rules used by the merge.
// Defaults to reconcile.DefaultConfig.
func WithRules(rules *reconcile.Config) Option {
	return func(c *config) error {
		c.rules = rules
		return nil
	}
}

// SyncOption configures a single Sync run.
type SyncOption func(*syncOptions)

// syncOptions holds per-sync settings.
type syncOptions struct {
	dryRun  bool
	noCache bool
}

// WithDryRun computes the merge without writing the catalog.
func WithDryRun() SyncOption {
	return func(o *syncOptions) {
		o.dryRun = true
	}
}

// WithNoCache forces a fresh download, ignoring cached item files.
func WithNoCache() SyncOption {
	return func(o *syncOptions) {
		o.noCache = true
	}
}

// Package app provides the application context and dependency management
// for the itemsync CLI. It centralizes configuration, logging, and client
// construction so commands stay thin.
package app

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/arcscanner/itemsync"
	"github.com/arcscanner/itemsync/cmd/itemsync/cmd"
	"github.com/arcscanner/itemsync/internal/transport"
	"github.com/arcscanner/itemsync/pkg/errors"
	"github.com/arcscanner/itemsync/pkg/reconcile"
	"github.com/arcscanner/itemsync/pkg/sources"
)

// App represents the itemsync application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// Ensure App implements the command dependency surface at compile time.
var _ cmd.Application = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Client builds an itemsync client from the application configuration.
// Options passed by commands override the configured defaults.
func (a *App) Client(opts ...itemsync.Option) (itemsync.Itemsync, error) {
	defaults := []itemsync.Option{
		itemsync.WithCatalogPath(a.config.CatalogPath),
		itemsync.WithSource(sources.NewGitHub(
			sources.WithCacheDir(a.config.CacheDir),
			sources.WithClient(transport.New(transport.FromEnv())),
		)),
	}

	if a.config.RulesFile != "" {
		if _, err := os.Stat(a.config.RulesFile); err == nil {
			rules, err := reconcile.LoadConfig(a.config.RulesFile)
			if err != nil {
				return nil, err
			}
			defaults = append(defaults, itemsync.WithRules(rules))
		}
	}

	return itemsync.New(append(defaults, opts...)...)
}

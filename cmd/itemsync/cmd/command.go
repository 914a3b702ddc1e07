// Package cmd defines the itemsync CLI subcommands. Commands receive their
// dependencies through the Application interface so they can be exercised
// with mocks in tests.
package cmd

import (
	"github.com/rs/zerolog"

	"github.com/arcscanner/itemsync"
)

// Application is the dependency surface commands need from the app shell.
type Application interface {
	// Logger returns the application logger.
	Logger() *zerolog.Logger

	// Client returns an itemsync client built from the application
	// configuration; opts override configured defaults.
	Client(opts ...itemsync.Option) (itemsync.Itemsync, error)

	// Version returns the build version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string
}

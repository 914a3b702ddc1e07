// Package sources defines the data source interface for the upstream item
// dataset and its implementations. A source is responsible for fetching the
// full set of raw item records keyed by external id; network, caching, and
// retry details stay behind the interface so the merge core only ever sees
// well-formed in-memory records.
//
// Example usage:
//
//	src := sources.NewGitHub()
//	raw, err := src.Fetch(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
package sources

import (
	"context"
	"slices"
)

// ID represents the identifier of a data source.
type ID string

// String returns the string representation of a source ID.
func (id ID) String() string {
	return string(id)
}

// Common source IDs.
const (
	// GitHubID is the community dataset on GitHub.
	GitHubID ID = "github"
	// DirectoryID reads raw item files from a local directory.
	DirectoryID ID = "directory"
)

// IDs returns all available source IDs.
func IDs() []ID {
	return []ID{
		GitHubID,
		DirectoryID,
	}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// Source represents a provider of raw item records.
type Source interface {
	// ID returns the identifier of this source
	ID() ID

	// Fetch retrieves every raw item record, keyed by external id.
	// Records that cannot be retrieved or parsed are omitted, not failed.
	Fetch(ctx context.Context, opts ...Option) (map[string]Item, error)
}

// Package constants provides shared constants used throughout the itemsync codebase.
// This includes timeouts, retry limits, file permissions, and default paths that
// should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application.
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the upstream dataset
	DefaultHTTPTimeout = 30 * time.Second

	// FetchTimeout is the timeout for downloading the full item dataset
	FetchTimeout = 10 * time.Minute

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 15 * time.Minute

	// RetryBackoff is the base backoff duration for retries
	RetryBackoff = 2 * time.Second

	// MaxRetryBackoff is the maximum backoff duration for retries
	MaxRetryBackoff = 30 * time.Second

	// RequestDelay is the pause between consecutive uncached downloads,
	// keeping the tool well under the GitHub API rate limit
	RequestDelay = 100 * time.Millisecond
)

// File permission constants define standard Unix file permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities.
const (
	// MaxRetries is the maximum number of retry attempts for failed requests
	MaxRetries = 3

	// ProgressInterval is how many downloads between progress log events
	ProgressInterval = 50

	// DryRunSampleSize is the number of new items shown in a dry-run preview
	DryRunSampleSize = 5
)

// Default path constants.
const (
	// DefaultCatalogFile is the default local catalog location
	DefaultCatalogFile = "items.json"

	// DefaultCacheDir is the default on-disk cache for downloaded item files
	DefaultCacheDir = ".itemsync/cache/items"
)

// Upstream dataset constants.
const (
	// UpstreamRepo identifies the community dataset repository
	UpstreamRepo = "RaidTheory/arcraiders-data"

	// GitHubAPIBase is the contents API endpoint listing the item files
	GitHubAPIBase = "https://api.github.com/repos/RaidTheory/arcraiders-data/contents/items"

	// GitHubRawBase is the raw file endpoint the item files are fetched from
	GitHubRawBase = "https://raw.githubusercontent.com/RaidTheory/arcraiders-data/main/items"

	// UserAgent is sent with every upstream request
	UserAgent = "itemsync/1.0"
)

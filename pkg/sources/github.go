package sources

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arcscanner/itemsync/internal/transport"
	"github.com/arcscanner/itemsync/pkg/constants"
	"github.com/arcscanner/itemsync/pkg/errors"
	"github.com/arcscanner/itemsync/pkg/logging"
)

// GitHub fetches the item dataset from the community GitHub repository.
// Downloaded item files are cached on disk so repeat runs don't hammer the
// API; WithNoCache bypasses the cache for a forced refresh.
type GitHub struct {
	client   *transport.Client
	apiBase  string
	rawBase  string
	cacheDir string
}

// GitHubOption configures a GitHub source.
type GitHubOption func(*GitHub)

// WithClient sets the transport client. Defaults to a client authenticated
// from the GITHUB_TOKEN environment variable when set.
func WithClient(c *transport.Client) GitHubOption {
	return func(g *GitHub) {
		g.client = c
	}
}

// WithCacheDir sets the on-disk cache directory for downloaded item files.
func WithCacheDir(dir string) GitHubOption {
	return func(g *GitHub) {
		g.cacheDir = dir
	}
}

// WithEndpoints overrides the API and raw endpoints. Used in tests.
func WithEndpoints(apiBase, rawBase string) GitHubOption {
	return func(g *GitHub) {
		g.apiBase = apiBase
		g.rawBase = rawBase
	}
}

// NewGitHub creates a GitHub source with default endpoints and cache location.
func NewGitHub(opts ...GitHubOption) *GitHub {
	g := &GitHub{
		apiBase:  constants.GitHubAPIBase,
		rawBase:  constants.GitHubRawBase,
		cacheDir: constants.DefaultCacheDir,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.client == nil {
		g.client = transport.New(transport.FromEnv())
	}
	return g
}

// ID implements Source.
func (g *GitHub) ID() ID {
	return GitHubID
}

// Fetch implements Source. It lists the item files through the contents API,
// then downloads (or reads from cache) each file. Files that fail to download
// or parse are logged and omitted.
func (g *GitHub) Fetch(ctx context.Context, opts ...Option) (map[string]Item, error) {
	o := apply(opts)
	log := logging.FromContext(ctx)

	files, err := g.listFiles(ctx)
	if err != nil {
		return nil, err
	}
	log.Info().Int("count", len(files)).Str("repo", constants.UpstreamRepo).Msg("Found item files")

	useCache := !o.noCache
	if useCache {
		if err := os.MkdirAll(g.cacheDir, constants.DirPermissions); err != nil {
			return nil, errors.WrapIO("create", g.cacheDir, err)
		}
	}

	out := make(map[string]Item, len(files))
	for i, filename := range files {
		item, cached, err := g.fetchItem(ctx, filename, useCache)
		if err != nil {
			if errors.IsCanceled(err) {
				return nil, err
			}
			log.Warn().Err(err).Str("file", filename).Msg("Skipping item file")
			continue
		}

		id := item.ID
		if id == "" {
			id = strings.TrimSuffix(filename, ".json")
		}
		out[id] = item

		if (i+1)%constants.ProgressInterval == 0 || i == len(files)-1 {
			log.Info().Int("done", i+1).Int("total", len(files)).Msg("Downloaded items")
		}

		// Pace uncached downloads to stay under the API rate limit.
		if !cached && i < len(files)-1 {
			if err := pause(ctx, constants.RequestDelay); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// listFiles returns the names of all item JSON files in the repository.
func (g *GitHub) listFiles(ctx context.Context) ([]string, error) {
	var entries []struct {
		Name string `json:"name"`
	}
	if err := g.client.GetJSON(ctx, g.apiBase, &entries); err != nil {
		return nil, errors.WrapResource("fetch", "item list", constants.UpstreamRepo, err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(e.Name, ".json") {
			files = append(files, e.Name)
		}
	}
	return files, nil
}

// fetchItem returns one item file, from cache when available. The second
// return value reports whether the cache satisfied the request.
func (g *GitHub) fetchItem(ctx context.Context, filename string, useCache bool) (Item, bool, error) {
	cachePath := filepath.Join(g.cacheDir, filename)

	if useCache {
		if data, err := os.ReadFile(cachePath); err == nil {
			var item Item
			if err := json.Unmarshal(data, &item); err == nil {
				return item, true, nil
			}
			// Corrupt cache entry; fall through and re-download.
		}
	}

	data, err := g.client.Get(ctx, g.rawBase+"/"+filename)
	if err != nil {
		return Item{}, false, err
	}

	var item Item
	if err := json.Unmarshal(data, &item); err != nil {
		return Item{}, false, errors.WrapParse("json", filename, err)
	}

	if useCache {
		if err := os.WriteFile(cachePath, data, constants.FilePermissions); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("file", filename).Msg("Failed to cache item file")
		}
	}

	return item, false, nil
}

// pause waits for d or until the context is cancelled.
func pause(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return errors.ErrCanceled
	case <-timer.C:
		return nil
	}
}

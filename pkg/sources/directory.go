package sources

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcscanner/itemsync/pkg/errors"
	"github.com/arcscanner/itemsync/pkg/logging"
)

// Directory reads raw item files from a local directory, one JSON file per
// item. It serves offline runs against a checkout of the dataset repository
// and keeps tests off the network.
type Directory struct {
	path string
}

// NewDirectory creates a Directory source rooted at path.
func NewDirectory(path string) *Directory {
	return &Directory{path: path}
}

// ID implements Source.
func (d *Directory) ID() ID {
	return DirectoryID
}

// Fetch implements Source. Unreadable or unparsable files are logged and
// omitted, mirroring the GitHub source's tolerance.
func (d *Directory) Fetch(ctx context.Context, _ ...Option) (map[string]Item, error) {
	log := logging.FromContext(ctx)

	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, errors.WrapIO("read", d.path, err)
	}

	out := make(map[string]Item, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(d.path, entry.Name()))
		if err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("Skipping item file")
			continue
		}

		var item Item
		if err := json.Unmarshal(data, &item); err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("Skipping unparsable item file")
			continue
		}

		id := item.ID
		if id == "" {
			id = strings.TrimSuffix(entry.Name(), ".json")
		}
		out[id] = item
	}

	log.Info().Int("count", len(out)).Str("path", d.path).Msg("Loaded item files")
	return out, nil
}

package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDirectoryFetch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "iron_plate.json", `{"id": "iron_plate", "name": {"en": "Iron Plate"}, "type": "Basic Material"}`)
	writeFile(t, dir, "zed_core.json", `{"name": {"en": "Zed Core"}, "type": "Valuable"}`)
	writeFile(t, dir, "notes.txt", "not an item")
	writeFile(t, dir, "broken.json", "{nope")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

	src := NewDirectory(dir)
	assert.Equal(t, DirectoryID, src.ID())

	raw, err := src.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, raw, 2, "non-JSON, unparsable, and directory entries are skipped")
	assert.Equal(t, "Iron Plate", raw["iron_plate"].EnglishName())

	// A record without an id falls back to its filename stem.
	assert.Equal(t, "Zed Core", raw["zed_core"].EnglishName())
}

func TestDirectoryFetchMissingDir(t *testing.T) {
	src := NewDirectory(filepath.Join(t.TempDir(), "nope"))
	_, err := src.Fetch(context.Background())
	assert.Error(t, err)
}

func TestSourceIDs(t *testing.T) {
	assert.True(t, GitHubID.IsValid())
	assert.True(t, DirectoryID.IsValid())
	assert.False(t, ID("ftp").IsValid())
	assert.Contains(t, IDs(), GitHubID)
}

package items

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arcscanner/itemsync/pkg/constants"
	"github.com/arcscanner/itemsync/pkg/errors"
)

// Load reads a catalog file and returns its items in file order.
// A missing file is not an error; it returns an empty catalog, matching the
// first run before any catalog has been written.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var catalog []Item
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return catalog, nil
}

// Save writes the catalog to path as a JSON array, two-space indented, with
// HTML escaping disabled so names like "Snitch & Run" survive round trips
// byte-for-byte. The parent directory is created if needed.
func Save(path string, catalog []Item) error {
	data, err := Marshal(catalog)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Marshal encodes the catalog in the persistence format used by Save.
func Marshal(catalog []Item) ([]byte, error) {
	if catalog == nil {
		catalog = []Item{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(catalog); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	return buf.Bytes(), nil
}

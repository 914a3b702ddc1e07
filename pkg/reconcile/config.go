package reconcile

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/arcscanner/itemsync/pkg/errors"
	"github.com/arcscanner/itemsync/pkg/items"
)

// Config holds the transformation rules: how upstream types map onto local
// categories and which defaults fill absent upstream fields. It is injected
// into the Transformer rather than read from process-wide state, so tests
// and callers can supply their own rules.
type Config struct {
	// CategoryMap maps upstream "type" strings to local categories.
	// The upstream vocabulary is open; anything not listed falls back
	// to DefaultCategory.
	CategoryMap map[string]items.Category `yaml:"categories"`

	// DefaultCategory is used for unrecognized upstream types.
	DefaultCategory items.Category `yaml:"default_category"`

	// Defaults for absent upstream fields.
	DefaultRarity    string  `yaml:"default_rarity"`
	DefaultValue     int     `yaml:"default_value"`
	DefaultWeight    float64 `yaml:"default_weight"`
	DefaultStackSize int     `yaml:"default_stack_size"`
}

// DefaultConfig returns the standard transformation rules. The category
// table enumerates the known upstream vocabulary and is part of the merge
// contract, not a tuning knob.
func DefaultConfig() *Config {
	return &Config{
		CategoryMap: map[string]items.Category{
			"Basic Material":   items.CategoryMaterial,
			"Refined Material": items.CategoryComponent,
			"Consumable":       items.CategoryConsumable,
			"Quick Use":        items.CategoryConsumable,
			"Tool":             items.CategoryMaterial,
			"Weapon":           items.CategoryWeapon,
			"Attachment":       items.CategoryAttachment,
			"Key":              items.CategoryQuest,
			"Quest Item":       items.CategoryQuest,
			"Armor":            items.CategoryArmor,
			"Armor Plate":      items.CategoryArmor,
			"Helmet Plate":     items.CategoryArmor,
			"Blueprint":        items.CategoryBlueprint,
			"Color":            items.CategoryCosmetic,
			"Valuable":         items.CategoryValuable,
			"Ammo":             items.CategoryAmmo,
			"Grenade":          items.CategoryConsumable,
			"Trap":             items.CategoryConsumable,
			"Food":             items.CategoryConsumable,
			"Drink":            items.CategoryConsumable,
		},
		DefaultCategory:  items.CategoryMaterial,
		DefaultRarity:    "Common",
		DefaultValue:     0,
		DefaultWeight:    0.1,
		DefaultStackSize: 1,
	}
}

// LoadConfig reads a YAML rules file and overlays it on the defaults:
// category entries are merged into the default table, and scalar fields
// replace the default only when set in the file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	cfg := DefaultConfig()
	for upstreamType, category := range overlay.CategoryMap {
		cfg.CategoryMap[upstreamType] = category
	}
	if overlay.DefaultCategory != "" {
		cfg.DefaultCategory = overlay.DefaultCategory
	}
	if overlay.DefaultRarity != "" {
		cfg.DefaultRarity = overlay.DefaultRarity
	}
	if overlay.DefaultValue != 0 {
		cfg.DefaultValue = overlay.DefaultValue
	}
	if overlay.DefaultWeight != 0 {
		cfg.DefaultWeight = overlay.DefaultWeight
	}
	if overlay.DefaultStackSize != 0 {
		cfg.DefaultStackSize = overlay.DefaultStackSize
	}
	return cfg, nil
}

// Category maps an upstream type string to a local category.
func (c *Config) Category(upstreamType string) items.Category {
	if category, ok := c.CategoryMap[upstreamType]; ok {
		return category
	}
	return c.DefaultCategory
}

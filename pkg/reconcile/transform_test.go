package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcscanner/itemsync/pkg/items"
	"github.com/arcscanner/itemsync/pkg/sources"
)

// helper constructors for optional fields
func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func TestTransformDefaults(t *testing.T) {
	tr := NewTransformer(nil)

	raw := sources.Item{
		ID:   "mystery_module",
		Name: sources.LocalizedText{"en": "Mystery Module"},
		Type: "Never Seen Before",
	}

	item := tr.Transform(raw, ReferenceTable{}, nil)

	assert.Equal(t, "Mystery Module", item.Name)
	assert.Equal(t, items.CategoryMaterial, item.Category, "unknown types default to Material")
	assert.Equal(t, "Common", item.Rarity)
	assert.Equal(t, 0, item.Value)
	assert.Equal(t, 0.1, item.Weight)
	assert.Equal(t, 1, item.StackSize)
	assert.Nil(t, item.RecycleValuePercent)
	assert.Nil(t, item.RecycleOutputs)
	assert.Nil(t, item.FoundIn)
	assert.Nil(t, item.ImageURL)
	assert.NotNil(t, item.ProjectUses)
	assert.Empty(t, item.ProjectUses)
	assert.False(t, item.KeepForQuests)
}

func TestTransformCopiesUpstreamFields(t *testing.T) {
	tr := NewTransformer(nil)

	raw := sources.Item{
		ID:            "arc_blaster",
		Name:          sources.LocalizedText{"en": "Arc Blaster"},
		Description:   sources.LocalizedText{"en": "Shoots arcs."},
		Type:          "Weapon",
		Rarity:        "Epic",
		Value:         intPtr(1200),
		WeightKg:      floatPtr(4.5),
		StackSize:     intPtr(1),
		ImageFilename: strPtr("arc_blaster.png"),
	}

	item := tr.Transform(raw, ReferenceTable{}, nil)

	assert.Equal(t, items.CategoryWeapon, item.Category)
	assert.Equal(t, "Epic", item.Rarity)
	assert.Equal(t, 1200, item.Value)
	assert.Equal(t, 4.5, item.Weight)
	assert.Equal(t, "Shoots arcs.", item.Description)
	require.NotNil(t, item.ImageURL)
	assert.Equal(t, "arc_blaster.png", *item.ImageURL)
}

func TestTransformRecycleOutputs(t *testing.T) {
	tr := NewTransformer(nil)
	refs := ReferenceTable{"metal_parts": "Metal Parts"}

	tests := []struct {
		name     string
		raw      sources.Item
		expected map[string]int
	}{
		{
			name: "references resolve to display names",
			raw: sources.Item{
				Name:         sources.LocalizedText{"en": "Rusty Gear"},
				RecyclesInto: map[string]int{"metal_parts": 2, "arc_alloy": 1},
			},
			expected: map[string]int{"Metal Parts": 2, "Arc Alloy": 1},
		},
		{
			name: "empty map yields absent",
			raw: sources.Item{
				Name:         sources.LocalizedText{"en": "Rusty Gear"},
				RecyclesInto: map[string]int{},
			},
			expected: nil,
		},
		{
			name: "all-zero counts yield absent, not empty",
			raw: sources.Item{
				Name:         sources.LocalizedText{"en": "Rusty Gear"},
				RecyclesInto: map[string]int{"metal_parts": 0},
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tr.Transform(tt.raw, refs, nil)
			assert.Equal(t, tt.expected, item.RecycleOutputs)
		})
	}
}

func TestParseFoundIn(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty fragment dropped",
			input:    "Dam, , Blue Gate",
			expected: []string{"Dam", "Blue Gate"},
		},
		{
			name:     "single location",
			input:    "Spaceport",
			expected: []string{"Spaceport"},
		},
		{
			name:     "empty input yields absent",
			input:    "",
			expected: nil,
		},
		{
			name:     "only commas yields absent",
			input:    ", ,",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseFoundIn(tt.input))
		})
	}
}

func TestTransformPreservesCuratorFields(t *testing.T) {
	tr := NewTransformer(nil)

	existing := &items.Item{
		Name:                "Iron Plate",
		RecycleValuePercent: floatPtr(37),
		ProjectUses:         []string{"Workshop A"},
		WorkshopUses:        []string{"Bench Upgrade"},
		KeepForQuests:       true,
		QuestUses:           []string{"The Long Haul"},
		Recommendation:      items.RecommendationKeep,
	}

	// Raw record whose type/rarity would auto-recommend Sell if new.
	raw := sources.Item{
		Name:   sources.LocalizedText{"en": "Iron Plate"},
		Type:   "Valuable",
		Rarity: "Legendary",
	}

	item := tr.Transform(raw, ReferenceTable{}, existing)

	assert.Equal(t, items.RecommendationKeep, item.Recommendation, "curated recommendation must never be overridden")
	assert.Equal(t, []string{"Workshop A"}, item.ProjectUses)
	assert.Equal(t, []string{"Bench Upgrade"}, item.WorkshopUses)
	assert.True(t, item.KeepForQuests)
	assert.Equal(t, []string{"The Long Haul"}, item.QuestUses)
	require.NotNil(t, item.RecycleValuePercent)
	assert.Equal(t, 37.0, *item.RecycleValuePercent, "recycleValuePercent only ever comes from the prior record")
}

func TestRecommend(t *testing.T) {
	tr := NewTransformer(nil)

	tests := []struct {
		name     string
		raw      sources.Item
		expected items.Recommendation
	}{
		{
			name:     "quest item kept",
			raw:      sources.Item{Type: "Quest Item"},
			expected: items.RecommendationKeep,
		},
		{
			name:     "key kept",
			raw:      sources.Item{Type: "Key"},
			expected: items.RecommendationKeep,
		},
		{
			name:     "valuable sold even when legendary",
			raw:      sources.Item{Type: "Valuable", Rarity: "Legendary"},
			expected: items.RecommendationSell,
		},
		{
			name:     "rare material kept",
			raw:      sources.Item{Type: "Basic Material", Rarity: "Rare"},
			expected: items.RecommendationKeep,
		},
		{
			name:     "consumable kept",
			raw:      sources.Item{Type: "Quick Use"},
			expected: items.RecommendationKeep,
		},
		{
			name:     "recyclable common material recycled",
			raw:      sources.Item{Type: "Basic Material", RecyclesInto: map[string]int{"metal_parts": 1}},
			expected: items.RecommendationRecycle,
		},
		{
			name:     "zero-count outputs don't trigger recycle",
			raw:      sources.Item{Type: "Basic Material", RecyclesInto: map[string]int{"metal_parts": 0}},
			expected: items.RecommendationEither,
		},
		{
			name:     "weapon kept",
			raw:      sources.Item{Type: "Weapon"},
			expected: items.RecommendationKeep,
		},
		{
			name:     "plain common material falls through to either",
			raw:      sources.Item{Type: "Basic Material", Rarity: "Common", RecyclesInto: map[string]int{}},
			expected: items.RecommendationEither,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tr.Recommend(tt.raw))
		})
	}
}

package reconcile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcscanner/itemsync/pkg/items"
	"github.com/arcscanner/itemsync/pkg/reconcile"
	"github.com/arcscanner/itemsync/pkg/sources"
)

// named returns a minimal raw record with an English name.
func named(id, name string) sources.Item {
	return sources.Item{
		ID:   id,
		Name: sources.LocalizedText{"en": name},
		Type: "Basic Material",
	}
}

func TestRunMergesAndCounts(t *testing.T) {
	ctx := context.Background()
	r := reconcile.New()

	raw := map[string]sources.Item{
		"zed_core":   named("zed_core", "Zed Core"),
		"apple_seed": named("apple_seed", "Apple Seed"),
		"mango":      named("mango", "mango"),
		"unnamed":    {ID: "unnamed", Type: "Basic Material"},
	}
	existing := []items.Item{
		{Name: "Apple Seed", Recommendation: items.RecommendationKeep, ProjectUses: []string{"Workshop A"}},
	}

	merged, stats := r.Run(ctx, raw, existing)

	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 2, stats.Added)
	assert.Equal(t, 1, stats.Skipped, "record without a name is skipped, never added")
	assert.Equal(t, 3, stats.Total)
	require.Len(t, merged, 3)

	// Sorted by case-insensitive name ascending.
	assert.Equal(t, "Apple Seed", merged[0].Name)
	assert.Equal(t, "mango", merged[1].Name)
	assert.Equal(t, "Zed Core", merged[2].Name)

	// The matched record keeps its curated fields.
	assert.Equal(t, items.RecommendationKeep, merged[0].Recommendation)
	assert.Equal(t, []string{"Workshop A"}, merged[0].ProjectUses)
}

func TestRunFuzzyMatchPreservesCuratedData(t *testing.T) {
	ctx := context.Background()
	r := reconcile.New()

	// The upstream name gained a suffix; fuzzy matching should still find
	// the curated entry.
	raw := map[string]sources.Item{
		"iron_plate": named("iron_plate", "Iron Plates"),
	}
	existing := []items.Item{
		{Name: "Iron Plate", Recommendation: items.RecommendationRecycle},
	}

	merged, stats := r.Run(ctx, raw, existing)

	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 0, stats.Added)
	require.Len(t, merged, 1)
	assert.Equal(t, "Iron Plates", merged[0].Name, "output adopts the upstream name")
	assert.Equal(t, items.RecommendationRecycle, merged[0].Recommendation)
}

func TestRunResolvesRecycleReferences(t *testing.T) {
	ctx := context.Background()
	r := reconcile.New()

	scrap := named("scrap_gear", "Scrap Gear")
	scrap.RecyclesInto = map[string]int{"metal_parts": 2, "missing_ref": 1}

	raw := map[string]sources.Item{
		"scrap_gear":  scrap,
		"metal_parts": named("metal_parts", "Metal Parts"),
	}

	merged, _ := r.Run(ctx, raw, nil)

	require.Len(t, merged, 2)
	gear := merged[1] // sorted: Metal Parts, Scrap Gear
	require.Equal(t, "Scrap Gear", gear.Name)
	assert.Equal(t, map[string]int{"Metal Parts": 2, "Missing Ref": 1}, gear.RecycleOutputs)
}

func TestRunDeterministic(t *testing.T) {
	ctx := context.Background()
	r := reconcile.New()

	raw := map[string]sources.Item{
		"wire_a": named("wire_a", "wirea"),
		"wire_b": named("wire_b", "wireb"),
		"wire_c": named("wire_c", "wirec"),
	}
	existing := []items.Item{
		{Name: "wirex", Recommendation: items.RecommendationKeep},
	}

	first, firstStats := r.Run(ctx, raw, existing)
	for i := 0; i < 20; i++ {
		merged, stats := r.Run(ctx, raw, existing)
		assert.Equal(t, firstStats, stats)
		assert.Equal(t, first, merged)
	}
}

func TestRunEmptyInputs(t *testing.T) {
	ctx := context.Background()
	r := reconcile.New()

	merged, stats := r.Run(ctx, nil, nil)

	assert.Empty(t, merged)
	assert.Equal(t, reconcile.Stats{}, stats)
}

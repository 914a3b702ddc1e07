package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcscanner/itemsync/pkg/items"
)

func TestIndexExactMatchWins(t *testing.T) {
	// An exact normalized hit must win over a fuzzy-eligible neighbor,
	// regardless of how close the neighbor is.
	existing := []items.Item{
		{Name: "Iron Platex", Recommendation: items.RecommendationSell},
		{Name: "Iron Plate", Recommendation: items.RecommendationKeep},
	}
	idx := NewIndex(existing)

	match := idx.Find("Iron Plate")
	require.NotNil(t, match)
	assert.Equal(t, "Iron Plate", match.Name)
}

func TestIndexFuzzyThreshold(t *testing.T) {
	// Normalized query length 10 gives a threshold of max(3, 2.0) = 3.
	existing := []items.Item{
		{Name: "steelplate"},
	}
	idx := NewIndex(existing)

	tests := []struct {
		name      string
		query     string
		wantMatch bool
	}{
		{
			name:      "distance 2 within threshold",
			query:     "steelplaxx", // vs steelplate: 2 substitutions
			wantMatch: true,
		},
		{
			name:      "distance 4 beyond threshold",
			query:     "steelpxxxx", // vs steelplate: 4 substitutions
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := idx.Find(tt.query)
			if tt.wantMatch {
				assert.NotNil(t, match)
			} else {
				assert.Nil(t, match)
			}
		})
	}
}

func TestIndexThresholdFloor(t *testing.T) {
	// Short names keep the floor of 3 edits: "abc" vs "xyz" is distance 3,
	// which is within max(3, 0.6).
	idx := NewIndex([]items.Item{{Name: "abc"}})

	assert.NotNil(t, idx.Find("xyz"))
}

func TestIndexEmptyKeyNeverMatches(t *testing.T) {
	idx := NewIndex([]items.Item{
		{Name: "---"}, // normalizes to ""
		{Name: "Wires"},
	})

	assert.Equal(t, 1, idx.Len(), "empty-key items must be excluded from the index")
	assert.Nil(t, idx.Find(""), "empty query must never match")
	assert.Nil(t, idx.Find("!!!"), "query normalizing to empty must never match")
}

func TestIndexTieKeepsEarlierCandidate(t *testing.T) {
	// Both candidates are distance 1 from the query; the first indexed
	// entry must win and stay winning across runs.
	existing := []items.Item{
		{Name: "wirea", Recommendation: items.RecommendationKeep},
		{Name: "wireb", Recommendation: items.RecommendationSell},
	}

	for i := 0; i < 50; i++ {
		idx := NewIndex(existing)
		match := idx.Find("wirec")
		require.NotNil(t, match)
		assert.Equal(t, "wirea", match.Name)
	}
}

func TestIndexDuplicateKeyLastWriteWins(t *testing.T) {
	existing := []items.Item{
		{Name: "Iron Plate", Recommendation: items.RecommendationKeep},
		{Name: "iron-plate", Recommendation: items.RecommendationSell},
	}
	idx := NewIndex(existing)

	assert.Equal(t, 1, idx.Len())
	match := idx.Find("Iron Plate")
	require.NotNil(t, match)
	assert.Equal(t, items.RecommendationSell, match.Recommendation)
}

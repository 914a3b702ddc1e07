package sources

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedTextUnmarshalObject(t *testing.T) {
	var lt LocalizedText
	require.NoError(t, json.Unmarshal([]byte(`{"en": "Iron Plate", "de": "Eisenplatte"}`), &lt))
	assert.Equal(t, "Iron Plate", lt.English())
	assert.Equal(t, "Eisenplatte", lt["de"])
}

func TestLocalizedTextUnmarshalBareString(t *testing.T) {
	var lt LocalizedText
	require.NoError(t, json.Unmarshal([]byte(`"Iron Plate"`), &lt))
	assert.Equal(t, LocalizedText{"en": "Iron Plate"}, lt)
}

func TestLocalizedTextUnmarshalEmptyString(t *testing.T) {
	var lt LocalizedText
	require.NoError(t, json.Unmarshal([]byte(`""`), &lt))
	assert.Nil(t, lt)
	assert.Empty(t, lt.English(), "missing text reads as empty, not a panic")
}

func TestLocalizedTextUnmarshalRejectsNumbers(t *testing.T) {
	var lt LocalizedText
	assert.Error(t, json.Unmarshal([]byte(`42`), &lt))
}

func TestItemUnmarshalOptionalFields(t *testing.T) {
	raw := `{
		"id": "iron_plate",
		"name": {"en": "Iron Plate"},
		"type": "Basic Material",
		"rarity": "Common",
		"value": 0,
		"recyclesInto": {"metal_parts": 2},
		"foundIn": "Dam, Blue Gate"
	}`

	var item Item
	require.NoError(t, json.Unmarshal([]byte(raw), &item))

	assert.Equal(t, "iron_plate", item.ID)
	assert.Equal(t, "Iron Plate", item.EnglishName())
	assert.Empty(t, item.EnglishDescription())

	// An explicit zero survives as a pointer; absent fields stay nil.
	require.NotNil(t, item.Value)
	assert.Equal(t, 0, *item.Value)
	assert.Nil(t, item.WeightKg)
	assert.Nil(t, item.StackSize)
	assert.Nil(t, item.ImageFilename)

	assert.Equal(t, map[string]int{"metal_parts": 2}, item.RecyclesInto)
}

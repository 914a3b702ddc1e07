package sources

import (
	"encoding/json"
)

// Item is one raw record of the upstream dataset, exactly as published.
// Optional numeric fields are pointers so that an absent field can be told
// apart from an explicit zero; documented defaults are applied during the
// merge, not here.
type Item struct {
	ID            string         `json:"id"`
	Name          LocalizedText  `json:"name"`
	Description   LocalizedText  `json:"description"`
	Type          string         `json:"type"`
	Rarity        string         `json:"rarity"`
	Value         *int           `json:"value"`
	WeightKg      *float64       `json:"weightKg"`
	StackSize     *int           `json:"stackSize"`
	RecyclesInto  map[string]int `json:"recyclesInto"`
	FoundIn       string         `json:"foundIn"`
	ImageFilename *string        `json:"imageFilename"`
}

// EnglishName returns the item's English display name, or "" if missing.
func (i Item) EnglishName() string {
	return i.Name.English()
}

// EnglishDescription returns the item's English description, or "" if missing.
func (i Item) EnglishDescription() string {
	return i.Description.English()
}

// LocalizedText is a language-code to text mapping. The dataset normally
// publishes `{"en": "..."}` objects, but a handful of older files carry a
// bare string; both shapes decode, a bare string becoming the "en" entry.
type LocalizedText map[string]string

// English returns the "en" entry, or "" if absent.
func (t LocalizedText) English() string {
	return t["en"]
}

// UnmarshalJSON implements json.Unmarshaler, accepting either an object or
// a plain string.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err == nil {
		*t = m
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = nil
		return nil
	}
	*t = LocalizedText{"en": s}
	return nil
}

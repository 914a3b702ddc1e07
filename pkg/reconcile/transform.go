package reconcile

import (
	"slices"
	"strings"

	"github.com/arcscanner/itemsync/pkg/items"
	"github.com/arcscanner/itemsync/pkg/sources"
)

// Transformer maps raw upstream records into the local schema.
type Transformer struct {
	config *Config
}

// NewTransformer creates a Transformer with the given rules.
// A nil config uses DefaultConfig.
func NewTransformer(cfg *Config) *Transformer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Transformer{config: cfg}
}

// Transform produces a local catalog entry for one raw record. When existing
// is non-nil, its curator-owned fields (and recycleValuePercent, which the
// upstream dataset never supplies) are carried forward; otherwise curator
// fields get defaults and the recommendation comes from the auto policy.
func (t *Transformer) Transform(raw sources.Item, refs ReferenceTable, existing *items.Item) items.Item {
	item := items.Item{
		Name:        raw.EnglishName(),
		Category:    t.config.Category(raw.Type),
		Rarity:      t.config.DefaultRarity,
		Value:       t.config.DefaultValue,
		Description: raw.EnglishDescription(),
		Weight:      t.config.DefaultWeight,
		StackSize:   t.config.DefaultStackSize,

		RecycleOutputs: t.recycleOutputs(raw, refs),
		FoundIn:        parseFoundIn(raw.FoundIn),
	}

	if raw.Rarity != "" {
		item.Rarity = raw.Rarity
	}
	if raw.Value != nil {
		item.Value = *raw.Value
	}
	if raw.WeightKg != nil {
		item.Weight = *raw.WeightKg
	}
	if raw.StackSize != nil {
		item.StackSize = *raw.StackSize
	}
	if raw.ImageFilename != nil {
		url := *raw.ImageFilename
		item.ImageURL = &url
	}

	if existing != nil {
		item.ProjectUses = cloneOrEmpty(existing.ProjectUses)
		item.WorkshopUses = cloneOrEmpty(existing.WorkshopUses)
		item.KeepForQuests = existing.KeepForQuests
		item.QuestUses = cloneOrEmpty(existing.QuestUses)
		item.Recommendation = existing.Recommendation
		if item.Recommendation == "" {
			item.Recommendation = items.RecommendationEither
		}
		if existing.RecycleValuePercent != nil {
			percent := *existing.RecycleValuePercent
			item.RecycleValuePercent = &percent
		}
	} else {
		item.ProjectUses = []string{}
		item.WorkshopUses = []string{}
		item.QuestUses = []string{}
		item.Recommendation = t.Recommend(raw)
	}

	return item
}

// recycleOutputs resolves the raw references map into display-name counts.
// Only strictly positive counts are kept; a map that ends up empty is
// returned as nil, keeping "no recycle data" distinct from "recycles into
// nothing".
func (t *Transformer) recycleOutputs(raw sources.Item, refs ReferenceTable) map[string]int {
	if len(raw.RecyclesInto) == 0 {
		return nil
	}

	outputs := make(map[string]int, len(raw.RecyclesInto))
	for id, count := range raw.RecyclesInto {
		if count > 0 {
			outputs[refs.Resolve(id)] = count
		}
	}
	if len(outputs) == 0 {
		return nil
	}
	return outputs
}

// Recommend applies the auto-recommendation policy for brand-new items.
// It is an ordered decision list; the first matching rule wins. It never
// overrides an existing curated recommendation.
func (t *Transformer) Recommend(raw sources.Item) items.Recommendation {
	rarity := raw.Rarity
	if rarity == "" {
		rarity = t.config.DefaultRarity
	}

	switch {
	// Quest items - always keep
	case raw.Type == "Key" || raw.Type == "Quest Item":
		return items.RecommendationKeep

	// Valuables - always sell
	case raw.Type == "Valuable":
		return items.RecommendationSell

	// Rare+ items - generally keep
	case rarity == "Rare" || rarity == "Epic" || rarity == "Legendary":
		return items.RecommendationKeep

	// Consumables that get used - keep
	case raw.Type == "Quick Use" || raw.Type == "Consumable":
		return items.RecommendationKeep

	// Items with recycle outputs - recycle
	case hasPositiveOutput(raw.RecyclesInto):
		return items.RecommendationRecycle

	// Weapons and armor - keep
	case raw.Type == "Weapon" || raw.Type == "Armor" || raw.Type == "Armor Plate" ||
		raw.Type == "Helmet Plate" || raw.Type == "Attachment":
		return items.RecommendationKeep

	default:
		return items.RecommendationEither
	}
}

// hasPositiveOutput reports whether any recycle reference has a positive count.
func hasPositiveOutput(recyclesInto map[string]int) bool {
	for _, count := range recyclesInto {
		if count > 0 {
			return true
		}
	}
	return false
}

// parseFoundIn splits the comma-joined locations string, trimming whitespace
// and dropping empty fragments. An empty result is nil, not an empty slice.
func parseFoundIn(foundIn string) []string {
	if foundIn == "" {
		return nil
	}

	var locations []string
	for _, fragment := range strings.Split(foundIn, ",") {
		if location := strings.TrimSpace(fragment); location != "" {
			locations = append(locations, location)
		}
	}
	return locations
}

// cloneOrEmpty copies a curator list, mapping nil to an empty slice so the
// persisted catalog always carries [] for curator lists.
func cloneOrEmpty(s []string) []string {
	if len(s) == 0 {
		return []string{}
	}
	return slices.Clone(s)
}

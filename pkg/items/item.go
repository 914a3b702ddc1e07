// Package items defines the locally curated item schema and its JSON
// persistence. The catalog file is an ordered JSON array of items; nullable
// fields marshal as null (not omitted) because downstream consumers
// distinguish "no data" from an empty collection.
package items

// Item represents one entry of the curated catalog.
//
// RecycleValuePercent, RecycleOutputs, FoundIn, and ImageURL are nullable:
// nil means the data does not exist, which is different from an empty
// collection. The curator-owned fields (ProjectUses through Recommendation)
// are never derived from the upstream dataset; they are carried forward from
// a previous catalog entry or defaulted for brand-new items.
type Item struct {
	Name                string         `json:"name"`
	Category            Category       `json:"category"`
	Rarity              string         `json:"rarity"`
	Value               int            `json:"value"`
	Description         string         `json:"description"`
	Weight              float64        `json:"weight"`
	StackSize           int            `json:"stackSize"`
	RecycleValuePercent *float64       `json:"recycleValuePercent"`
	RecycleOutputs      map[string]int `json:"recycleOutputs"`
	FoundIn             []string       `json:"foundIn"`
	ImageURL            *string        `json:"imageUrl"`

	// Curator-owned fields
	ProjectUses    []string       `json:"projectUses"`
	WorkshopUses   []string       `json:"workshopUses"`
	KeepForQuests  bool           `json:"keepForQuests"`
	QuestUses      []string       `json:"questUses"`
	Recommendation Recommendation `json:"recommendation"`
}

// Category classifies an item in the local vocabulary.
// The upstream dataset uses an open "type" vocabulary; types are mapped onto
// this closed set with Material as the default for anything unrecognized.
type Category string

// Local item categories.
const (
	CategoryMaterial   Category = "Material"
	CategoryComponent  Category = "Component"
	CategoryConsumable Category = "Consumable"
	CategoryWeapon     Category = "Weapon"
	CategoryAttachment Category = "Attachment"
	CategoryQuest      Category = "Quest"
	CategoryArmor      Category = "Armor"
	CategoryBlueprint  Category = "Blueprint"
	CategoryCosmetic   Category = "Cosmetic"
	CategoryValuable   Category = "Valuable"
	CategoryAmmo       Category = "Ammo"
)

// String returns the string representation of a Category.
func (c Category) String() string {
	return string(c)
}

// Recommendation expresses what a player should do with an item.
type Recommendation string

// Recommendations.
const (
	RecommendationKeep    Recommendation = "Keep"
	RecommendationSell    Recommendation = "Sell"
	RecommendationRecycle Recommendation = "Recycle"
	RecommendationEither  Recommendation = "Either"
)

// String returns the string representation of a Recommendation.
func (r Recommendation) String() string {
	return string(r)
}

// IsValid returns true if the recommendation is one of the defined constants.
func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendationKeep, RecommendationSell, RecommendationRecycle, RecommendationEither:
		return true
	}
	return false
}

package model

// OutfitSlot names a position in an outfit, such as the top or the shoes.
type OutfitSlot string

// Outfit slot constants.
const (
	SlotTop               OutfitSlot = "top"
	SlotBottom            OutfitSlot = "bottom"
	SlotDress             OutfitSlot = "dress"
	SlotDressAlternative  OutfitSlot = "dress_alternative"
	SlotTopAlternative    OutfitSlot = "top_alternative"
	SlotBottomAlternative OutfitSlot = "bottom_alternative"
	SlotShoes             OutfitSlot = "shoes"
	SlotAccessories       OutfitSlot = "accessories"
)

func (s OutfitSlot) String() string { return string(s) }

// StylingTips accompany an outfit. Lists are returned in full; display layers truncate.
type StylingTips struct {
	Colors    ColorGuide `json:"colors"`
	Necklines []string   `json:"necklines"`
	Avoid     []string   `json:"avoid"`
}

// OutfitRecommendation is a concrete outfit for one body shape and occasion.
type OutfitRecommendation struct {
	OutfitItems     map[OutfitSlot]string `json:"outfit"`
	BodyShape       BodyType              `json:"body_shape"`
	Occasion        Occasion              `json:"occasion"`
	StylePreference StylePreference       `json:"style_preference"`
	BudgetRange     BudgetRange           `json:"budget_range"`
	Description     string                `json:"description"`
	StylingGoals    []string              `json:"styling_goals"`
	FavoriteColors  []string              `json:"favorite_colors"`
	StylingTips     StylingTips           `json:"styling_tips"`
}

// Package outfit turns a body shape, an occasion and user preferences into a concrete outfit.
//
// Item selection is deliberately simple: each slot takes the first entry of the relevant
// knowledge-base list, or a fixed fallback when the list is empty. Colors, budget and brand
// preferences do not influence which garment is chosen; they are carried through to the
// result for the product-search stage.
package outfit

import (
	"fmt"
	"slices"

	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/model"
	"github.com/Veraticus/silhouette/internal/styling"
)

// Fixed shoe and accessory suggestions per occasion policy.
const (
	professionalShoes       = "professional heels or flats"
	professionalAccessories = "minimal jewelry, structured bag"
	partyShoes              = "heels or dressy sandals"
	partyAccessories        = "statement jewelry"
	dateShoes               = "heels or ankle boots"
	dateAccessories         = "delicate jewelry"
	casualShoes             = "sneakers or comfortable flats"
	casualAccessories       = "casual bag, minimal jewelry"
)

// Generate builds an outfit recommendation for the profile's body type and the requested occasion.
// It fails with common.ErrUnknownBodyShape when the knowledge base has no entry for the body type
// and with common.ErrInvalidEnum when the occasion is not a known value.
func Generate(profile model.UserProfile, prefs model.UserPreferences) (model.OutfitRecommendation, error) {
	rule, ok := styling.Lookup(profile.BodyType)
	if !ok {
		return model.OutfitRecommendation{}, fmt.Errorf("%w: no styling rules found for body shape %q", common.ErrUnknownBodyShape, profile.BodyType)
	}

	items, err := selectItems(rule, prefs.Occasion)
	if err != nil {
		return model.OutfitRecommendation{}, err
	}

	return model.OutfitRecommendation{
		BodyShape:       profile.BodyType,
		Occasion:        prefs.Occasion,
		StylePreference: prefs.StylePreference,
		BudgetRange:     prefs.BudgetRange,
		FavoriteColors:  slices.Clone(prefs.FavoriteColors),
		Description:     rule.Description,
		StylingGoals:    rule.Goals,
		OutfitItems:     items,
		StylingTips: model.StylingTips{
			Colors:    rule.Colors,
			Necklines: rule.Tops.Necklines,
			Avoid:     rule.Tops.Avoid,
		},
	}, nil
}

// selectItems applies the occasion's slot policy. Every model.Occasion must have a case here;
// anything else fails closed.
func selectItems(rule model.StylingRule, occasion model.Occasion) (map[model.OutfitSlot]string, error) {
	switch occasion {
	case model.OccasionWork, model.OccasionFormalEvent:
		return map[model.OutfitSlot]string{
			model.SlotTop:              firstOrDefault(rule.Tops.Best, "blazer or button-down"),
			model.SlotBottom:           firstOrDefault(rule.Bottoms.Pants, "tailored pants"),
			model.SlotDressAlternative: firstOrDefault(rule.Dresses, "sheath dress"),
			model.SlotShoes:            professionalShoes,
			model.SlotAccessories:      professionalAccessories,
		}, nil
	case model.OccasionParty:
		return map[model.OutfitSlot]string{
			model.SlotDress:             firstOrDefault(rule.Dresses, "cocktail dress"),
			model.SlotTopAlternative:    firstOrDefault(rule.Tops.Best, "dressy top"),
			model.SlotBottomAlternative: firstOrDefault(rule.Bottoms.Skirts, "dressy skirt"),
			model.SlotShoes:             partyShoes,
			model.SlotAccessories:       partyAccessories,
		}, nil
	case model.OccasionDate:
		return map[model.OutfitSlot]string{
			model.SlotDress:             firstOrDefault(rule.Dresses, "wrap dress"),
			model.SlotTopAlternative:    firstOrDefault(rule.Tops.Best, "fitted top"),
			model.SlotBottomAlternative: firstOrDefault(rule.Bottoms.Jeans, "nice jeans"),
			model.SlotShoes:             dateShoes,
			model.SlotAccessories:       dateAccessories,
		}, nil
	case model.OccasionEveryday, model.OccasionWorkout:
		return map[model.OutfitSlot]string{
			model.SlotTop:         firstOrDefault(rule.Tops.Best, "casual top"),
			model.SlotBottom:      firstOrDefault(rule.Bottoms.Jeans, "jeans"),
			model.SlotShoes:       casualShoes,
			model.SlotAccessories: casualAccessories,
		}, nil
	default:
		return nil, common.InvalidEnumError("occasion", string(occasion))
	}
}

// SlotsFor returns the outfit slots an occasion always produces, in display order.
func SlotsFor(occasion model.Occasion) ([]model.OutfitSlot, error) {
	switch occasion {
	case model.OccasionWork, model.OccasionFormalEvent:
		return []model.OutfitSlot{model.SlotTop, model.SlotBottom, model.SlotDressAlternative, model.SlotShoes, model.SlotAccessories}, nil
	case model.OccasionParty, model.OccasionDate:
		return []model.OutfitSlot{model.SlotDress, model.SlotTopAlternative, model.SlotBottomAlternative, model.SlotShoes, model.SlotAccessories}, nil
	case model.OccasionEveryday, model.OccasionWorkout:
		return []model.OutfitSlot{model.SlotTop, model.SlotBottom, model.SlotShoes, model.SlotAccessories}, nil
	default:
		return nil, common.InvalidEnumError("occasion", string(occasion))
	}
}

// firstOrDefault returns the first item of a garment list, or fallback when the list is empty.
func firstOrDefault(items []string, fallback string) string {
	if len(items) > 0 {
		return items[0]
	}
	return fallback
}

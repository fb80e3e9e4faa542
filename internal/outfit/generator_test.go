package outfit

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prefsFor(occasion model.Occasion) model.UserPreferences {
	return model.UserPreferences{
		FavoriteColors:  []string{"navy", "black", "white"},
		StylePreference: model.StyleClassic,
		BudgetRange:     model.BudgetMid,
		Occasion:        occasion,
	}
}

func slotKeys(items map[model.OutfitSlot]string) []string {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}

func TestGenerate_RectangleWork(t *testing.T) {
	rec, err := Generate(model.UserProfile{BodyType: model.BodyTypeRectangle}, prefsFor(model.OccasionWork))
	require.NoError(t, err)

	assert.Equal(t, model.BodyTypeRectangle, rec.BodyShape)
	assert.Equal(t, model.OccasionWork, rec.Occasion)
	assert.Equal(t, model.StyleClassic, rec.StylePreference)
	assert.Equal(t, model.BudgetMid, rec.BudgetRange)
	assert.Equal(t, []string{"navy", "black", "white"}, rec.FavoriteColors)
	assert.Equal(t, "Straight silhouette with similar bust and hip measurements", rec.Description)
	assert.Equal(t, []string{"Create curves", "Define waist", "Add volume to upper and lower body"}, rec.StylingGoals)

	assert.Equal(t, map[model.OutfitSlot]string{
		model.SlotTop:              "tank tops",
		model.SlotBottom:           "cargo pants",
		model.SlotDressAlternative: "wrap",
		model.SlotShoes:            "professional heels or flats",
		model.SlotAccessories:      "minimal jewelry, structured bag",
	}, rec.OutfitItems)

	assert.Len(t, rec.StylingTips.Necklines, 9, "tips must not be truncated")
	assert.Equal(t, []string{"shapeless oversized pieces", "cropped tops at waist"}, rec.StylingTips.Avoid)
	assert.Equal(t, "Bold colors around waist area", rec.StylingTips.Colors.Avoid)
}

func TestGenerate_OccasionPolicies(t *testing.T) {
	tests := []struct {
		want     map[model.OutfitSlot]string
		name     string
		bodyType model.BodyType
		occasion model.Occasion
	}{
		{
			name:     "hourglass date",
			bodyType: model.BodyTypeHourglass,
			occasion: model.OccasionDate,
			want: map[model.OutfitSlot]string{
				model.SlotDress:             "bias",
				model.SlotTopAlternative:    "fitted shirts",
				model.SlotBottomAlternative: "straight",
				model.SlotShoes:             "heels or ankle boots",
				model.SlotAccessories:       "delicate jewelry",
			},
		},
		{
			name:     "triangle party",
			bodyType: model.BodyTypeTriangle,
			occasion: model.OccasionParty,
			want: map[model.OutfitSlot]string{
				model.SlotDress:             "tulip",
				model.SlotTopAlternative:    "wrap bust",
				model.SlotBottomAlternative: "a-line",
				model.SlotShoes:             "heels or dressy sandals",
				model.SlotAccessories:       "statement jewelry",
			},
		},
		{
			name:     "inverted triangle everyday",
			bodyType: model.BodyTypeInvertedTriangle,
			occasion: model.OccasionEveryday,
			want: map[model.OutfitSlot]string{
				model.SlotTop:         "soft flowing fabrics",
				model.SlotBottom:      "flare",
				model.SlotShoes:       "sneakers or comfortable flats",
				model.SlotAccessories: "casual bag, minimal jewelry",
			},
		},
		{
			name:     "workout shares everyday policy",
			bodyType: model.BodyTypeInvertedTriangle,
			occasion: model.OccasionWorkout,
			want: map[model.OutfitSlot]string{
				model.SlotTop:         "soft flowing fabrics",
				model.SlotBottom:      "flare",
				model.SlotShoes:       "sneakers or comfortable flats",
				model.SlotAccessories: "casual bag, minimal jewelry",
			},
		},
		{
			name:     "hourglass formal event",
			bodyType: model.BodyTypeHourglass,
			occasion: model.OccasionFormalEvent,
			want: map[model.OutfitSlot]string{
				model.SlotTop:              "fitted shirts",
				model.SlotBottom:           "high/mid-rise styles that define waist",
				model.SlotDressAlternative: "bias",
				model.SlotShoes:            "professional heels or flats",
				model.SlotAccessories:      "minimal jewelry, structured bag",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Generate(model.UserProfile{BodyType: tt.bodyType}, prefsFor(tt.occasion))
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.OutfitItems)
		})
	}
}

func TestGenerate_SlotKeysAreOccasionDetermined(t *testing.T) {
	for _, occasion := range model.AllOccasions() {
		want, err := SlotsFor(occasion)
		require.NoError(t, err)

		wantKeys := make([]string, len(want))
		for i, s := range want {
			wantKeys[i] = string(s)
		}
		sort.Strings(wantKeys)

		for _, bt := range model.AllBodyTypes() {
			rec, err := Generate(model.UserProfile{BodyType: bt}, prefsFor(occasion))
			require.NoError(t, err)
			assert.Equal(t, wantKeys, slotKeys(rec.OutfitItems), "%s/%s", bt, occasion)
		}
	}

	work, err := SlotsFor(model.OccasionWork)
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.OutfitSlot{
		model.SlotTop, model.SlotBottom, model.SlotDressAlternative, model.SlotShoes, model.SlotAccessories,
	}, work)
}

func TestGenerate_Idempotent(t *testing.T) {
	profile := model.UserProfile{BodyType: model.BodyTypeTriangle}
	prefs := prefsFor(model.OccasionDate)

	first, err := Generate(profile, prefs)
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Generate(profile, prefs)
		require.NoError(t, err)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, firstJSON, againJSON)
	}
}

func TestGenerate_PreferencesDoNotAffectSelection(t *testing.T) {
	profile := model.UserProfile{BodyType: model.BodyTypeRectangle}

	base, err := Generate(profile, prefsFor(model.OccasionParty))
	require.NoError(t, err)

	other := prefsFor(model.OccasionParty)
	other.FavoriteColors = []string{"red"}
	other.DislikedColors = []string{"navy"}
	other.BudgetRange = model.BudgetLow
	other.AvoidedBrands = []string{"acme"}
	other.StylePreference = model.StyleBohemian

	changed, err := Generate(profile, other)
	require.NoError(t, err)

	assert.Equal(t, base.OutfitItems, changed.OutfitItems)
	assert.Equal(t, []string{"red"}, changed.FavoriteColors)
	assert.Equal(t, model.BudgetLow, changed.BudgetRange)
	assert.Equal(t, model.StyleBohemian, changed.StylePreference)
}

func TestGenerate_FavoriteColorsAreCopied(t *testing.T) {
	prefs := prefsFor(model.OccasionWork)
	rec, err := Generate(model.UserProfile{BodyType: model.BodyTypeHourglass}, prefs)
	require.NoError(t, err)

	prefs.FavoriteColors[0] = "mutated"
	assert.Equal(t, "navy", rec.FavoriteColors[0])
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate(model.UserProfile{BodyType: model.BodyType("apple")}, prefsFor(model.OccasionWork))
	require.ErrorIs(t, err, common.ErrUnknownBodyShape)
	assert.Contains(t, err.Error(), "apple")

	_, err = Generate(model.UserProfile{BodyType: model.BodyTypeRectangle}, prefsFor(model.Occasion("brunch")))
	require.ErrorIs(t, err, common.ErrInvalidEnum)

	_, err = SlotsFor(model.Occasion(""))
	assert.ErrorIs(t, err, common.ErrInvalidEnum)
}

func TestSelectItems_Fallbacks(t *testing.T) {
	empty := model.StylingRule{}

	tests := []struct {
		want     map[model.OutfitSlot]string
		occasion model.Occasion
	}{
		{
			occasion: model.OccasionWork,
			want: map[model.OutfitSlot]string{
				model.SlotTop:              "blazer or button-down",
				model.SlotBottom:           "tailored pants",
				model.SlotDressAlternative: "sheath dress",
				model.SlotShoes:            professionalShoes,
				model.SlotAccessories:      professionalAccessories,
			},
		},
		{
			occasion: model.OccasionParty,
			want: map[model.OutfitSlot]string{
				model.SlotDress:             "cocktail dress",
				model.SlotTopAlternative:    "dressy top",
				model.SlotBottomAlternative: "dressy skirt",
				model.SlotShoes:             partyShoes,
				model.SlotAccessories:       partyAccessories,
			},
		},
		{
			occasion: model.OccasionDate,
			want: map[model.OutfitSlot]string{
				model.SlotDress:             "wrap dress",
				model.SlotTopAlternative:    "fitted top",
				model.SlotBottomAlternative: "nice jeans",
				model.SlotShoes:             dateShoes,
				model.SlotAccessories:       dateAccessories,
			},
		},
		{
			occasion: model.OccasionEveryday,
			want: map[model.OutfitSlot]string{
				model.SlotTop:         "casual top",
				model.SlotBottom:      "jeans",
				model.SlotShoes:       casualShoes,
				model.SlotAccessories: casualAccessories,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.occasion.String(), func(t *testing.T) {
			got, err := selectItems(empty, tt.occasion)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstOrDefault(t *testing.T) {
	assert.Equal(t, "a", firstOrDefault([]string{"a", "b"}, "z"))
	assert.Equal(t, "z", firstOrDefault(nil, "z"))
	assert.Equal(t, "z", firstOrDefault([]string{}, "z"))
}

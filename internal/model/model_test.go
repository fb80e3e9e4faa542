package model

import (
	"encoding/json"
	"testing"

	"github.com/Veraticus/silhouette/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOccasion(t *testing.T) {
	tests := []struct {
		input   string
		want    Occasion
		wantErr bool
	}{
		{input: "work", want: OccasionWork},
		{input: "  PARTY ", want: OccasionParty},
		{input: "formal_event", want: OccasionFormalEvent},
		{input: "formal event", want: OccasionFormalEvent},
		{input: "formal-event", want: OccasionFormalEvent},
		{input: "workout", want: OccasionWorkout},
		{input: "brunch", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOccasion(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidEnum)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBodyType(t *testing.T) {
	for _, bt := range AllBodyTypes() {
		got, err := ParseBodyType(bt.String())
		require.NoError(t, err)
		assert.Equal(t, bt, got)
	}

	got, err := ParseBodyType("Inverted Triangle")
	require.NoError(t, err)
	assert.Equal(t, BodyTypeInvertedTriangle, got)

	_, err = ParseBodyType("apple")
	assert.ErrorIs(t, err, common.ErrInvalidEnum)
}

func TestParseOtherEnums(t *testing.T) {
	style, err := ParseStylePreference("Bohemian")
	require.NoError(t, err)
	assert.Equal(t, StyleBohemian, style)

	budget, err := ParseBudgetRange("HIGH")
	require.NoError(t, err)
	assert.Equal(t, BudgetHigh, budget)

	tone, err := ParseSkinTone("cool")
	require.NoError(t, err)
	assert.Equal(t, SkinToneCool, tone)

	angle, err := ParsePhotoAngle("Side")
	require.NoError(t, err)
	assert.Equal(t, AngleSide, angle)

	_, err = ParseBudgetRange("luxury")
	assert.ErrorIs(t, err, common.ErrInvalidEnum)
	_, err = ParseStylePreference("goth")
	assert.ErrorIs(t, err, common.ErrInvalidEnum)
	_, err = ParsePhotoAngle("top")
	assert.ErrorIs(t, err, common.ErrInvalidEnum)
}

func TestUserPreferencesValidate(t *testing.T) {
	prefs := DefaultPreferences()
	require.NoError(t, prefs.Validate())
	assert.Equal(t, []string{"blue", "black", "white"}, prefs.FavoriteColors)

	bad := prefs
	bad.Occasion = Occasion("brunch")
	assert.ErrorIs(t, bad.Validate(), common.ErrInvalidEnum)

	bad = prefs
	bad.BudgetRange = ""
	assert.ErrorIs(t, bad.Validate(), common.ErrInvalidEnum)

	bad = prefs
	bad.StylePreference = "punk"
	assert.ErrorIs(t, bad.Validate(), common.ErrInvalidEnum)
}

func TestLandmarkSetComplete(t *testing.T) {
	assert.False(t, make(LandmarkSet, 20).Complete())
	assert.False(t, make(LandmarkSet, MinLandmarks-1).Complete())
	assert.True(t, make(LandmarkSet, MinLandmarks).Complete())
	assert.True(t, make(LandmarkSet, PoseLandmarkCount).Complete())
}

func TestEnumsMarshalAsStrings(t *testing.T) {
	rec := OutfitRecommendation{
		BodyShape:   BodyTypeInvertedTriangle,
		Occasion:    OccasionFormalEvent,
		OutfitItems: map[OutfitSlot]string{SlotShoes: "heels or ankle boots"},
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"body_shape":"inverted_triangle"`)
	assert.Contains(t, string(data), `"occasion":"formal_event"`)
	assert.Contains(t, string(data), `"outfit":{"shoes":"heels or ankle boots"}`)
}

func TestValid(t *testing.T) {
	for _, bt := range AllBodyTypes() {
		assert.True(t, bt.Valid(), bt)
	}
	assert.False(t, BodyType("apple").Valid())
	assert.False(t, BodyType("").Valid())

	assert.True(t, AngleSide.Valid())
	assert.False(t, PhotoAngle("Front").Valid())
	assert.True(t, SkinToneNeutral.Valid())
	assert.True(t, StyleMinimalist.Valid())
	assert.False(t, StylePreference("punk").Valid())
	assert.True(t, BudgetMid.Valid())
	assert.True(t, OccasionEveryday.Valid())
	assert.False(t, Occasion("brunch").Valid())
}

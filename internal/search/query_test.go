package search

import (
	"testing"

	"github.com/Veraticus/silhouette/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		item   string
		want   string
		colors []string
	}{
		{name: "mapped term with color", item: "wrap", colors: []string{"navy", "black"}, want: "navy women's wrap dress"},
		{name: "mapping is case-insensitive", item: "Tank Tops", colors: []string{"red"}, want: "red women's tank top"},
		{name: "unmapped term passes through", item: "peplum", colors: []string{"green"}, want: "green women's peplum"},
		{name: "no colors", item: "pencil", want: "women's pencil skirt"},
		{name: "blank first color skipped", item: "slim", colors: []string{" ", "teal"}, want: "teal women's slim"},
		{name: "shoes skip color", item: "sneakers or comfortable flats", colors: []string{"blue"}, want: "women's sneakers or comfortable flats"},
		{name: "mapped sandals skip color", item: "heels or dressy sandals", colors: []string{"blue"}, want: "women's dress sandals"},
		{name: "jewelry skips color", item: "statement jewelry", colors: []string{"gold"}, want: "women's statement necklace"},
		{name: "boots skip color", item: "heels or ankle boots", colors: []string{"brown"}, want: "women's heels or ankle boots"},
		{name: "mapped heels skip color", item: "professional heels", colors: []string{"navy"}, want: "women's dress heels"},
		{name: "bootcut keeps color", item: "bootcut", colors: []string{"indigo"}, want: "indigo women's bootcut jeans"},
		{name: "bag skips color", item: "casual bag, minimal jewelry", colors: []string{"tan"}, want: "women's casual bag, minimal jewelry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQuery(tt.item, tt.colors))
		})
	}
}

func TestMaxPrice(t *testing.T) {
	assert.Equal(t, 50, MaxPrice(model.BudgetLow))
	assert.Equal(t, 150, MaxPrice(model.BudgetMid))
	assert.Equal(t, 500, MaxPrice(model.BudgetHigh))
	assert.Equal(t, 0, MaxPrice(model.BudgetRange("")))
}

func TestPlan(t *testing.T) {
	rec := model.OutfitRecommendation{
		BudgetRange:    model.BudgetLow,
		FavoriteColors: []string{"black"},
		OutfitItems: map[model.OutfitSlot]string{
			model.SlotTop:         "tank tops",
			model.SlotBottom:      "slim",
			model.SlotShoes:       "sneakers or comfortable flats",
			model.SlotAccessories: "N/A",
		},
	}

	got := Plan(rec)
	require.Len(t, got, 3)

	assert.Equal(t, []Query{
		{Slot: model.SlotBottom, Text: "black women's slim", MaxPrice: 50, Limit: DefaultLimit},
		{Slot: model.SlotShoes, Text: "women's sneakers or comfortable flats", MaxPrice: 50, Limit: DefaultLimit},
		{Slot: model.SlotTop, Text: "black women's tank top", MaxPrice: 50, Limit: DefaultLimit},
	}, got)
}

func TestPlan_Empty(t *testing.T) {
	assert.Empty(t, Plan(model.OutfitRecommendation{}))
}

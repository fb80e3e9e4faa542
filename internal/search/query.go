// Package search plans the product-search queries handed to the external shopping API.
// It performs no network access.
package search

import (
	"sort"
	"strings"

	"github.com/Veraticus/silhouette/internal/model"
)

// DefaultLimit is the number of products requested per outfit slot.
const DefaultLimit = 3

// termMapping rewrites knowledge-base vocabulary into phrases that search well.
var termMapping = map[string]string{
	"tank tops":               "tank top",
	"wrap tops":               "wrap blouse",
	"button-downs":            "button down shirt",
	"bootcut":                 "bootcut jeans",
	"wide leg":                "wide leg pants",
	"a-line":                  "a-line dress",
	"wrap":                    "wrap dress",
	"fit and flare":           "fit and flare dress",
	"pencil":                  "pencil skirt",
	"circle":                  "circle skirt",
	"cargo pants":             "cargo pants",
	"professional heels":      "dress heels",
	"heels or dressy sandals": "dress sandals",
	"statement jewelry":       "statement necklace",
	"delicate jewelry":        "delicate necklace",
}

// colorlessWords mark items where a color filter hurts more than it helps.
var colorlessWords = []string{"shoes", "heels", "sandals", "sneakers", "flats", "boots", "jewelry", "bag"}

var maxPrices = map[model.BudgetRange]int{
	model.BudgetLow:  50,
	model.BudgetMid:  150,
	model.BudgetHigh: 500,
}

// Query is one product search for an outfit slot.
type Query struct {
	Slot     model.OutfitSlot `json:"slot"`
	Text     string           `json:"query"`
	MaxPrice int              `json:"max_price,omitempty"`
	Limit    int              `json:"limit"`
}

// BuildQuery turns an item description and the user's colors into a search phrase.
func BuildQuery(item string, favoriteColors []string) string {
	term := item
	if mapped, ok := termMapping[strings.ToLower(item)]; ok {
		term = mapped
	}

	query := "women's " + term

	// The original item is checked too: mapping may drop the word that marks it colorless.
	if color := firstColor(favoriteColors); color != "" && !isColorless(item) && !isColorless(term) {
		query = color + " " + query
	}

	return query
}

// MaxPrice returns the per-item price ceiling for a budget, or 0 when the budget is unknown.
func MaxPrice(budget model.BudgetRange) int {
	return maxPrices[budget]
}

// Plan builds one query per non-empty outfit slot, ordered by slot name.
func Plan(rec model.OutfitRecommendation) []Query {
	slots := make([]string, 0, len(rec.OutfitItems))
	for slot, item := range rec.OutfitItems {
		if item == "" || item == "N/A" {
			continue
		}
		slots = append(slots, string(slot))
	}
	sort.Strings(slots)

	queries := make([]Query, 0, len(slots))
	for _, s := range slots {
		slot := model.OutfitSlot(s)
		queries = append(queries, Query{
			Slot:     slot,
			Text:     BuildQuery(rec.OutfitItems[slot], rec.FavoriteColors),
			MaxPrice: MaxPrice(rec.BudgetRange),
			Limit:    DefaultLimit,
		})
	}

	return queries
}

func firstColor(colors []string) string {
	for _, c := range colors {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return ""
}

func isColorless(term string) bool {
	lower := strings.ToLower(term)
	for _, word := range colorlessWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

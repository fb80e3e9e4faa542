package classification

import "github.com/Veraticus/silhouette/internal/model"

// Shape thresholds, in percent.
const (
	// BalancedTolerancePct is the largest shoulder/hip (or shoulder/bust) difference still considered balanced.
	BalancedTolerancePct = 5.0
	// WaistDefinitionPct is the waist reduction that marks a defined waist.
	WaistDefinitionPct = 25.0
	// DominanceThresholdPct is how much wider hips or shoulders must be to dominate the silhouette.
	DominanceThresholdPct = 5.0
)

// FallbackRuleName identifies the implicit rule used when nothing else matches.
const FallbackRuleName = "default"

// Rule is a single shape test. Rules are evaluated in order and the first match wins.
type Rule struct {
	Matches     func(Metrics) bool
	Name        string
	Description string
	BodyType    model.BodyType
}

// rules is evaluated top to bottom. The conditions overlap, so order is significant.
var rules = []Rule{
	{
		Name:        "rectangle",
		BodyType:    model.BodyTypeRectangle,
		Description: "Waist less than 25% smaller than shoulders with shoulders, hips and bust within 5%",
		Matches: func(m Metrics) bool {
			return m.WaistReductionFromShouldersPct < WaistDefinitionPct &&
				m.ShoulderHipDiffPct <= BalancedTolerancePct &&
				m.ShoulderBustDiffPct <= BalancedTolerancePct
		},
	},
	{
		Name:        "hourglass",
		BodyType:    model.BodyTypeHourglass,
		Description: "Waist at least 25% smaller than shoulders and hips with shoulders and hips within 5%",
		Matches: func(m Metrics) bool {
			return m.WaistReductionFromShouldersPct >= WaistDefinitionPct &&
				m.WaistReductionFromHipsPct >= WaistDefinitionPct &&
				m.ShoulderHipDiffPct <= BalancedTolerancePct
		},
	},
	{
		Name:        "triangle",
		BodyType:    model.BodyTypeTriangle,
		Description: "Hips at least 5% wider than shoulders",
		Matches: func(m Metrics) bool {
			return m.HipsLargerThanShouldersPct >= DominanceThresholdPct
		},
	},
	{
		Name:        "inverted_triangle",
		BodyType:    model.BodyTypeInvertedTriangle,
		Description: "Shoulders at least 5% wider than hips",
		Matches: func(m Metrics) bool {
			return m.ShouldersWider && m.ShouldersLargerThanHipsPct >= DominanceThresholdPct
		},
	},
}

// Rules returns a copy of the ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

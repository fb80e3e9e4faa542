// Package classification maps body measurements onto a body-shape category.
package classification

import (
	"math"

	"github.com/Veraticus/silhouette/internal/model"
)

// Metrics are the percentage comparisons the shape rules are written against.
type Metrics struct {
	ShoulderHipDiffPct             float64 `json:"shoulder_hip_diff_pct"`
	ShoulderBustDiffPct            float64 `json:"shoulder_bust_diff_pct"`
	WaistReductionFromShouldersPct float64 `json:"waist_reduction_from_shoulders_pct"`
	WaistReductionFromHipsPct      float64 `json:"waist_reduction_from_hips_pct"`
	HipsLargerThanShouldersPct     float64 `json:"hips_larger_than_shoulders_pct"`
	ShouldersLargerThanHipsPct     float64 `json:"shoulders_larger_than_hips_pct"`
	ShouldersWider                 bool    `json:"shoulders_wider"`
}

// ComputeMetrics derives the rule inputs from raw measurements.
// Ratios against a zero shoulder or hip measurement fall back to 1.0, as do zero denominators.
func ComputeMetrics(m model.BodyMeasurements) Metrics {
	waistToShoulders := ratioOrOne(m.Waist, m.Shoulders)
	waistToHips := ratioOrOne(m.Waist, m.Hips)
	hipsToShoulders := ratioOrOne(m.Hips, m.Shoulders)

	return Metrics{
		ShoulderHipDiffPct:             math.Abs(m.Shoulders-m.Hips) / nonZero(math.Max(m.Shoulders, m.Hips)) * 100,
		ShoulderBustDiffPct:            math.Abs(m.Shoulders-m.Bust) / nonZero(math.Max(m.Shoulders, m.Bust)) * 100,
		WaistReductionFromShouldersPct: (1 - waistToShoulders) * 100,
		WaistReductionFromHipsPct:      (1 - waistToHips) * 100,
		HipsLargerThanShouldersPct:     (hipsToShoulders - 1) * 100,
		ShouldersLargerThanHipsPct:     (m.Shoulders - m.Hips) / nonZero(m.Hips) * 100,
		ShouldersWider:                 m.Shoulders > m.Hips,
	}
}

// Explanation records which rule produced a classification.
type Explanation struct {
	BodyType model.BodyType `json:"body_type"`
	Rule     string         `json:"rule"`
	Reason   string         `json:"reason"`
	Metrics  Metrics        `json:"metrics"`
}

// Classify returns the body type for the given measurements. It is total: when no rule
// matches, the body type is rectangle.
func Classify(m model.BodyMeasurements) model.BodyType {
	return Explain(m).BodyType
}

// Explain classifies m and reports the rule that decided it.
func Explain(m model.BodyMeasurements) Explanation {
	metrics := ComputeMetrics(m)

	for _, rule := range rules {
		if rule.Matches(metrics) {
			return Explanation{
				BodyType: rule.BodyType,
				Rule:     rule.Name,
				Reason:   rule.Description,
				Metrics:  metrics,
			}
		}
	}

	return Explanation{
		BodyType: model.BodyTypeRectangle,
		Rule:     FallbackRuleName,
		Reason:   "No rule matched; defaulting to rectangle",
		Metrics:  metrics,
	}
}

func ratioOrOne(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	return 1
}

func nonZero(den float64) float64 {
	if den == 0 {
		return 1
	}
	return den
}

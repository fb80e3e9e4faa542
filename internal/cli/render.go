package cli

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Veraticus/silhouette/internal/classification"
	"github.com/Veraticus/silhouette/internal/engine"
	"github.com/Veraticus/silhouette/internal/model"
	"github.com/Veraticus/silhouette/internal/outfit"
	"github.com/Veraticus/silhouette/internal/search"
)

// MaxDisplayedTips caps how many entries of a tip list are printed.
const MaxDisplayedTips = 5

// Title renders a body type or slot name for display, e.g. "inverted_triangle" as "Inverted Triangle".
func Title(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// truncate joins at most limit items and notes how many were left out.
func truncate(items []string, limit int) string {
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:limit], ", "), len(items)-limit)
}

// RenderMeasurements renders measurements in inches.
func RenderMeasurements(m model.BodyMeasurements) string {
	lines := []string{
		FormatField("Shoulders", fmt.Sprintf("%.1f in", m.Shoulders)),
		FormatField("Bust", fmt.Sprintf("%.1f in", m.Bust)),
		FormatField("Waist", fmt.Sprintf("%.1f in", m.Waist)),
		FormatField("Hips", fmt.Sprintf("%.1f in", m.Hips)),
	}
	return strings.Join(lines, "\n")
}

// RenderAnalysis renders the outcome of a landmark analysis.
func RenderAnalysis(result model.AnalysisResult) string {
	var b strings.Builder

	title := "Body Analysis"
	if result.Source != "" {
		title += ": " + result.Source
	}
	b.WriteString(FormatTitle(RulerIcon, title))
	b.WriteString("\n")

	if len(result.Views) > 0 {
		views := make([]string, len(result.Views))
		for i, v := range result.Views {
			views[i] = string(v)
		}
		b.WriteString(FormatField("Views", strings.Join(views, ", ")) + "\n")
	}

	if result.Success {
		b.WriteString(FormatField("Body shape", Title(string(result.BodyShape))) + "\n")
		b.WriteString(FormatField("Confidence", fmt.Sprintf("%.0f%%", result.Confidence*100)) + "\n")
		if result.Ratios != nil {
			b.WriteString(FormatField("Shoulder/hip", fmt.Sprintf("%.3f", result.Ratios.ShoulderToHip)) + "\n")
			b.WriteString(FormatField("Waist/hip", fmt.Sprintf("%.3f", result.Ratios.WaistToHip)) + "\n")
		}
		if result.WaistLineY != nil {
			b.WriteString(FormatField("Waist line", fmt.Sprintf("y=%.0f px", *result.WaistLineY)) + "\n")
		}
		if result.Measurements != nil {
			b.WriteString(RenderMeasurements(*result.Measurements) + "\n")
		}
	}

	for _, e := range result.Errors {
		b.WriteString(FormatError(e) + "\n")
	}

	return b.String()
}

// RenderExplanation renders a classification with the rule that fired.
func RenderExplanation(exp classification.Explanation) string {
	m := exp.Metrics
	lines := []string{
		FormatField("Body shape", Title(string(exp.BodyType))),
		FormatField("Rule", exp.Rule),
		SubtleStyle.Render(exp.Reason),
		"",
		FormatField("Shoulder/hip diff", fmt.Sprintf("%.1f%%", m.ShoulderHipDiffPct)),
		FormatField("Shoulder/bust diff", fmt.Sprintf("%.1f%%", m.ShoulderBustDiffPct)),
		FormatField("Waist vs shoulders", fmt.Sprintf("-%.1f%%", m.WaistReductionFromShouldersPct)),
		FormatField("Waist vs hips", fmt.Sprintf("-%.1f%%", m.WaistReductionFromHipsPct)),
	}
	return strings.Join(lines, "\n") + "\n"
}

// RenderRecommendation renders an outfit with its styling tips. Slots follow the occasion's order
// and tip lists are truncated for display.
func RenderRecommendation(rec model.OutfitRecommendation) string {
	var b strings.Builder

	b.WriteString(FormatTitle(DressIcon, fmt.Sprintf("%s outfit for %s", Title(string(rec.Occasion)), Title(string(rec.BodyShape)))))
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(rec.Description) + "\n")
	if len(rec.StylingGoals) > 0 {
		b.WriteString(FormatField("Goals", strings.Join(rec.StylingGoals, ", ")) + "\n")
	}

	b.WriteString("\n" + HeadingStyle.Render("Recommended Outfit") + "\n")
	for _, slot := range displaySlots(rec) {
		b.WriteString(FormatField("  "+Title(string(slot)), rec.OutfitItems[slot]) + "\n")
	}

	b.WriteString("\n" + HeadingStyle.Render("Styling Tips") + "\n")
	if rec.StylingTips.Colors.Do != "" {
		b.WriteString(FormatField("  Colors", rec.StylingTips.Colors.Do) + "\n")
	}
	if rec.StylingTips.Colors.Avoid != "" {
		b.WriteString(FormatField("  Avoid colors", rec.StylingTips.Colors.Avoid) + "\n")
	}
	if len(rec.StylingTips.Necklines) > 0 {
		b.WriteString(FormatField("  Best necklines", truncate(rec.StylingTips.Necklines, MaxDisplayedTips)) + "\n")
	}
	if len(rec.StylingTips.Avoid) > 0 {
		b.WriteString(FormatField("  Avoid", truncate(rec.StylingTips.Avoid, MaxDisplayedTips)) + "\n")
	}

	return b.String()
}

// displaySlots orders the outfit's slots by occasion, falling back to sorted keys.
func displaySlots(rec model.OutfitRecommendation) []model.OutfitSlot {
	if slots, err := outfit.SlotsFor(rec.Occasion); err == nil {
		return slots
	}
	slots := make([]model.OutfitSlot, 0, len(rec.OutfitItems))
	for slot := range rec.OutfitItems {
		slots = append(slots, slot)
	}
	slices.Sort(slots)
	return slots
}

// RenderQueries renders the product search plan.
func RenderQueries(queries []search.Query) string {
	var b strings.Builder
	b.WriteString("\n" + HeadingStyle.Render(SearchIcon+" Product Searches") + "\n")
	for _, q := range queries {
		line := q.Text
		if q.MaxPrice > 0 {
			line += SubtleStyle.Render(fmt.Sprintf("  (under $%d, top %d)", q.MaxPrice, q.Limit))
		}
		b.WriteString(FormatField("  "+Title(string(q.Slot)), line) + "\n")
	}
	return b.String()
}

type ruleSection struct {
	label string
	items []string
}

// RenderStylingRule renders the full knowledge-base entry for a body type.
func RenderStylingRule(bt model.BodyType, rule model.StylingRule) string {
	sections := []ruleSection{
		{"Tops", rule.Tops.Best},
		{"Necklines", rule.Tops.Necklines},
		{"Sleeves", rule.Tops.Sleeves},
		{"Details", rule.Tops.Details},
		{"Avoid", rule.Tops.Avoid},
		{"Pants", rule.Bottoms.Pants},
		{"Jeans", rule.Bottoms.Jeans},
		{"Skirts", rule.Bottoms.Skirts},
		{"Shorts", rule.Bottoms.Shorts},
		{"Dresses", rule.Dresses},
		{"Blazers", rule.Blazers},
		{"Jumpsuits", rule.Jumpsuits},
		{"Coats", rule.Coats},
	}
	if rule.Outerwear != nil {
		sections = append(sections,
			ruleSection{"Jackets", rule.Outerwear.Jackets},
			ruleSection{"Outer coats", rule.Outerwear.Coats},
		)
	}

	lines := []string{
		SubtleStyle.Render(rule.Description),
		FormatField("Goals", strings.Join(rule.Goals, ", ")),
	}
	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		lines = append(lines, FormatField(s.label, strings.Join(s.items, ", ")))
	}
	lines = append(lines,
		FormatField("Colors", rule.Colors.Do),
		FormatField("Avoid colors", rule.Colors.Avoid),
	)

	return RenderBox(Title(string(bt)), strings.Join(lines, "\n")) + "\n"
}

// RenderBatchSummary renders per-file outcomes and totals for a batch run.
func RenderBatchSummary(summary *engine.BatchSummary) string {
	var b strings.Builder

	b.WriteString(FormatTitle(ChartIcon, "Batch Analysis"))
	b.WriteString("\n")

	for _, r := range summary.Results {
		if r.Error != nil {
			b.WriteString(FormatError(fmt.Sprintf("%s: %v", r.Source, r.Error)) + "\n")
			continue
		}
		b.WriteString(FormatSuccess(fmt.Sprintf("%s: %s", r.Source, Title(string(r.Result.BodyShape)))) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(FormatField("Total", fmt.Sprintf("%d", summary.Total)) + "\n")
	b.WriteString(FormatField("Succeeded", fmt.Sprintf("%d", summary.Succeeded)) + "\n")
	b.WriteString(FormatField("Failed", fmt.Sprintf("%d", summary.Failed)) + "\n")
	for _, bt := range model.AllBodyTypes() {
		if n := summary.ByShape[bt]; n > 0 {
			b.WriteString(FormatField("  "+Title(string(bt)), fmt.Sprintf("%d", n)) + "\n")
		}
	}
	b.WriteString(FormatField("Duration", summary.ProcessingTime.Round(time.Millisecond).String()) + "\n")

	return b.String()
}

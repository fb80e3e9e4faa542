// Package engine runs the landmark → measurement → shape → outfit pipeline end to end.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/silhouette/internal/body"
	"github.com/Veraticus/silhouette/internal/classification"
	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/model"
	"github.com/Veraticus/silhouette/internal/outfit"
)

// ErrAnalysisFailed indicates that an analysis result carries no body shape.
var ErrAnalysisFailed = errors.New("body shape analysis unavailable")

// AnalysisEngine analyzes landmark sets and produces outfit recommendations.
// It holds only immutable configuration and is safe for concurrent use.
type AnalysisEngine struct {
	referenceInches float64
}

// Config holds configuration options for the analysis engine.
type Config struct {
	// ReferenceInches is the assumed real shoulder width used to scale pixel ratios.
	ReferenceInches float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ReferenceInches: body.DefaultReferenceInches,
	}
}

// New creates an analysis engine with the default configuration.
func New() *AnalysisEngine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an analysis engine with custom configuration.
// A non-positive reference falls back to the default.
func NewWithConfig(config Config) *AnalysisEngine {
	if config.ReferenceInches <= 0 {
		config.ReferenceInches = body.DefaultReferenceInches
	}
	return &AnalysisEngine{
		referenceInches: config.ReferenceInches,
	}
}

// ReferenceInches returns the reference shoulder width the engine scales with.
func (e *AnalysisEngine) ReferenceInches() float64 {
	return e.referenceInches
}

// Analyze runs body-shape analysis over the supplied photo views. Only the front view feeds the
// ratio stage; other views are recorded. Problems are collected in the result's Errors, and the
// first fatal one is also returned so callers can branch on it with errors.Is.
func (e *AnalysisEngine) Analyze(views []model.BodyLandmarks) (model.AnalysisResult, error) {
	result := model.AnalysisResult{
		Views:  []model.PhotoAngle{},
		Errors: []string{},
	}

	var front *model.BodyLandmarks
	for i := range views {
		view := views[i]
		if !view.Angle.Valid() {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to analyze view with unknown angle %q", view.Angle))
			continue
		}
		if len(view.Landmarks) == 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("No pose detected in %s view", view.Angle))
			continue
		}

		result.Views = append(result.Views, view.Angle)
		if view.Angle == model.AngleFront && front == nil {
			front = &views[i]
		}
	}

	if front == nil {
		result.Errors = append(result.Errors, "Front view is required for body shape analysis")
		return result, common.ErrMissingFrontView
	}

	ratios, err := body.CalculateBodyRatios(*front)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to calculate body ratios: %v", err))
		return result, fmt.Errorf("failed to calculate body ratios: %w", err)
	}
	result.Ratios = &ratios
	result.Confidence = front.Confidence

	if waistY, waistErr := body.EstimateWaistLine(*front); waistErr == nil {
		result.WaistLineY = &waistY
	}

	measurements := body.ToMeasurements(ratios, e.referenceInches)
	result.Measurements = &measurements

	result.BodyShape = classification.Classify(measurements)
	result.Success = true

	common.LogDebug("Analyzed body shape", common.Fields{
		"body_shape":      result.BodyShape,
		"views":           len(result.Views),
		"shoulder_to_hip": ratios.ShoulderToHip,
		"confidence":      result.Confidence,
	})

	return result, nil
}

// AnalyzeSource loads views from src and analyzes them.
func (e *AnalysisEngine) AnalyzeSource(ctx context.Context, src LandmarkSource) (model.AnalysisResult, error) {
	views, err := src.Load(ctx)
	if err != nil {
		return model.AnalysisResult{Source: src.Name()}, fmt.Errorf("failed to load landmarks from %s: %w", src.Name(), err)
	}

	result, err := e.Analyze(views)
	result.Source = src.Name()
	return result, err
}

// Recommend builds an outfit for a successful analysis. The analyzed measurements are attached
// to the profile.
func (e *AnalysisEngine) Recommend(result model.AnalysisResult, prefs model.UserPreferences) (model.OutfitRecommendation, error) {
	if !result.Success {
		return model.OutfitRecommendation{}, ErrAnalysisFailed
	}

	profile := model.UserProfile{
		BodyType:     result.BodyShape,
		Measurements: result.Measurements,
	}

	return e.RecommendForProfile(profile, prefs)
}

// RecommendForProfile builds an outfit for an explicit profile.
func (e *AnalysisEngine) RecommendForProfile(profile model.UserProfile, prefs model.UserPreferences) (model.OutfitRecommendation, error) {
	rec, err := outfit.Generate(profile, prefs)
	if err != nil {
		return model.OutfitRecommendation{}, fmt.Errorf("failed to generate outfit: %w", err)
	}
	return rec, nil
}

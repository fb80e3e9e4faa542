package server

import (
	"github.com/Veraticus/silhouette/internal/classification"
	"github.com/Veraticus/silhouette/internal/landmarks"
	"github.com/Veraticus/silhouette/internal/model"
	"github.com/Veraticus/silhouette/internal/search"
)

// MeasurementsRequest holds four non-negative measurements in inches.
type MeasurementsRequest struct {
	Shoulders *float64 `json:"shoulders" binding:"required,gte=0"`
	Bust      *float64 `json:"bust" binding:"required,gte=0"`
	Waist     *float64 `json:"waist" binding:"required,gte=0"`
	Hips      *float64 `json:"hips" binding:"required,gte=0"`
}

func (r MeasurementsRequest) measurements() model.BodyMeasurements {
	return model.BodyMeasurements{
		Shoulders: *r.Shoulders,
		Bust:      *r.Bust,
		Waist:     *r.Waist,
		Hips:      *r.Hips,
	}
}

// ClassifyRequest carries measurements in inches.
type ClassifyRequest struct {
	MeasurementsRequest
	Explain bool `json:"explain"`
}

// ClassifyResponse is the classification outcome.
type ClassifyResponse struct {
	Explanation *classification.Explanation `json:"explanation,omitempty"`
	BodyShape   model.BodyType              `json:"body_shape"`
}

// AnalyzeRequest carries one landmark document per photo view.
type AnalyzeRequest struct {
	Views []landmarks.Document `json:"views" binding:"required,min=1"`
}

// PreferencesRequest is the wire form of user preferences. Empty fields take the server defaults.
type PreferencesRequest struct {
	Occasion        string   `json:"occasion"`
	StylePreference string   `json:"style_preference"`
	BudgetRange     string   `json:"budget_range"`
	FavoriteColors  []string `json:"favorite_colors"`
	DislikedColors  []string `json:"disliked_colors"`
	PreferredBrands []string `json:"preferred_brands"`
	AvoidedBrands   []string `json:"avoided_brands"`
}

// RecommendRequest asks for an outfit. Exactly one of BodyType, Measurements or Views is required.
type RecommendRequest struct {
	Measurements *MeasurementsRequest `json:"measurements"`
	Preferences  PreferencesRequest   `json:"preferences"`
	BodyType     string               `json:"body_type"`
	Views        []landmarks.Document `json:"views"`
	Queries      bool                 `json:"queries"`
}

// RecommendResponse is an outfit, with the analysis and search plan when they apply.
type RecommendResponse struct {
	Analysis       *model.AnalysisResult      `json:"analysis,omitempty"`
	Recommendation model.OutfitRecommendation `json:"recommendation"`
	Queries        []search.Query             `json:"queries,omitempty"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Analysis *model.AnalysisResult `json:"analysis,omitempty"`
	Error    string                `json:"error"`
}

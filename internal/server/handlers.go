package server

import (
	"errors"
	"net/http"

	"github.com/Veraticus/silhouette/internal/classification"
	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/landmarks"
	"github.com/Veraticus/silhouette/internal/model"
	"github.com/Veraticus/silhouette/internal/search"
	"github.com/Veraticus/silhouette/internal/styling"
	"github.com/gin-gonic/gin"
)

var errAmbiguousSubject = errors.New("exactly one of body_type, measurements or views is required")

// statusFor maps a pipeline error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrIncompleteLandmarks), errors.Is(err, common.ErrMissingFrontView):
		return http.StatusUnprocessableEntity
	case common.IsInputError(err), errors.Is(err, common.ErrUnknownBodyShape), errors.Is(err, errAmbiguousSubject):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error, analysis *model.AnalysisResult) {
	status := statusFor(err)
	_ = c.Error(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		common.LogError(err, "Request failed", common.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		})
		msg = "internal error"
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg, Analysis: analysis})
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listShapes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"shapes": styling.BodyTypes()})
}

func (s *Server) getShape(c *gin.Context) {
	bt, err := model.ParseBodyType(c.Param("type"))
	if err != nil {
		badRequest(c, err)
		return
	}

	rule, ok := styling.Lookup(bt)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: "no styling rules for " + string(bt)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"body_type": bt, "rule": rule})
}

func (s *Server) classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	exp := classification.Explain(req.measurements())
	resp := ClassifyResponse{BodyShape: exp.BodyType}
	if req.Explain {
		resp.Explanation = &exp
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	views, err := landmarks.Convert(req.Views)
	if err != nil {
		badRequest(c, err)
		return
	}

	result, err := s.engine.Analyze(views)
	if err != nil {
		abortWithError(c, err, &result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	prefs, err := s.preferences(req.Preferences)
	if err != nil {
		badRequest(c, err)
		return
	}

	profile, analysis, err := s.profile(req)
	if err != nil {
		abortWithError(c, err, analysis)
		return
	}

	rec, err := s.engine.RecommendForProfile(profile, prefs)
	if err != nil {
		abortWithError(c, err, analysis)
		return
	}

	resp := RecommendResponse{Recommendation: rec, Analysis: analysis}
	if req.Queries {
		resp.Queries = search.Plan(rec)
	}
	c.JSON(http.StatusOK, resp)
}

// profile resolves the request's subject into a user profile.
func (s *Server) profile(req RecommendRequest) (model.UserProfile, *model.AnalysisResult, error) {
	subjects := 0
	if req.BodyType != "" {
		subjects++
	}
	if req.Measurements != nil {
		subjects++
	}
	if len(req.Views) > 0 {
		subjects++
	}
	if subjects != 1 {
		return model.UserProfile{}, nil, errAmbiguousSubject
	}

	switch {
	case req.BodyType != "":
		bt, err := model.ParseBodyType(req.BodyType)
		if err != nil {
			return model.UserProfile{}, nil, err
		}
		return model.UserProfile{BodyType: bt}, nil, nil

	case req.Measurements != nil:
		m := req.Measurements.measurements()
		return model.UserProfile{BodyType: classification.Classify(m), Measurements: &m}, nil, nil

	default:
		views, err := landmarks.Convert(req.Views)
		if err != nil {
			return model.UserProfile{}, nil, err
		}
		result, err := s.engine.Analyze(views)
		if err != nil {
			return model.UserProfile{}, &result, err
		}
		return model.UserProfile{BodyType: result.BodyShape, Measurements: result.Measurements}, &result, nil
	}
}

// preferences parses wire preferences over the server defaults.
func (s *Server) preferences(req PreferencesRequest) (model.UserPreferences, error) {
	prefs := s.defaults
	prefs.FavoriteColors = append([]string(nil), s.defaults.FavoriteColors...)

	if req.Occasion != "" {
		occasion, err := model.ParseOccasion(req.Occasion)
		if err != nil {
			return model.UserPreferences{}, err
		}
		prefs.Occasion = occasion
	}
	if req.StylePreference != "" {
		style, err := model.ParseStylePreference(req.StylePreference)
		if err != nil {
			return model.UserPreferences{}, err
		}
		prefs.StylePreference = style
	}
	if req.BudgetRange != "" {
		budget, err := model.ParseBudgetRange(req.BudgetRange)
		if err != nil {
			return model.UserPreferences{}, err
		}
		prefs.BudgetRange = budget
	}
	if req.FavoriteColors != nil {
		prefs.FavoriteColors = req.FavoriteColors
	}
	if req.DislikedColors != nil {
		prefs.DislikedColors = req.DislikedColors
	}
	if req.PreferredBrands != nil {
		prefs.PreferredBrands = req.PreferredBrands
	}
	if req.AvoidedBrands != nil {
		prefs.AvoidedBrands = req.AvoidedBrands
	}

	if err := prefs.Validate(); err != nil {
		return model.UserPreferences{}, err
	}
	return prefs, nil
}

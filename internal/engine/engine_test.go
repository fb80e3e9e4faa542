package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	err   error
	name  string
	views []model.BodyLandmarks
}

func (s staticSource) Name() string { return s.name }

func (s staticSource) Load(_ context.Context) ([]model.BodyLandmarks, error) {
	return s.views, s.err
}

func view(angle model.PhotoAngle, shoulderSpan, hipSpan float64) model.BodyLandmarks {
	lm := make(model.LandmarkSet, model.PoseLandmarkCount)
	lm[model.LeftShoulder] = model.Point2D{X: 400 - shoulderSpan/2, Y: 200}
	lm[model.RightShoulder] = model.Point2D{X: 400 + shoulderSpan/2, Y: 200}
	lm[model.LeftHip] = model.Point2D{X: 400 - hipSpan/2, Y: 500}
	lm[model.RightHip] = model.Point2D{X: 400 + hipSpan/2, Y: 500}
	return model.BodyLandmarks{
		Angle:       angle,
		Landmarks:   lm,
		ImageWidth:  800,
		ImageHeight: 1200,
		Confidence:  0.82,
	}
}

func TestNewWithConfig(t *testing.T) {
	assert.InDelta(t, 36.0, New().ReferenceInches(), 1e-9)
	assert.InDelta(t, 40.0, NewWithConfig(Config{ReferenceInches: 40}).ReferenceInches(), 1e-9)
	assert.InDelta(t, 36.0, NewWithConfig(Config{ReferenceInches: -1}).ReferenceInches(), 1e-9)
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name       string
		views      []model.BodyLandmarks
		wantErr    error
		wantShape  model.BodyType
		wantViews  []model.PhotoAngle
		wantErrors int
	}{
		{
			name:      "balanced front view",
			views:     []model.BodyLandmarks{view(model.AngleFront, 200, 200)},
			wantShape: model.BodyTypeHourglass,
			wantViews: []model.PhotoAngle{model.AngleFront},
		},
		{
			name:      "wide hips",
			views:     []model.BodyLandmarks{view(model.AngleFront, 180, 220)},
			wantShape: model.BodyTypeTriangle,
			wantViews: []model.PhotoAngle{model.AngleFront},
		},
		{
			name:      "broad shoulders with side view",
			views:     []model.BodyLandmarks{view(model.AngleSide, 90, 90), view(model.AngleFront, 240, 200)},
			wantShape: model.BodyTypeInvertedTriangle,
			wantViews: []model.PhotoAngle{model.AngleSide, model.AngleFront},
		},
		{
			name:       "missing front view",
			views:      []model.BodyLandmarks{view(model.AngleSide, 200, 200)},
			wantErr:    common.ErrMissingFrontView,
			wantViews:  []model.PhotoAngle{model.AngleSide},
			wantErrors: 1,
		},
		{
			name:       "no views",
			wantErr:    common.ErrMissingFrontView,
			wantViews:  []model.PhotoAngle{},
			wantErrors: 1,
		},
		{
			name: "incomplete front view",
			views: []model.BodyLandmarks{{
				Angle:     model.AngleFront,
				Landmarks: make(model.LandmarkSet, 20),
			}},
			wantErr:    common.ErrIncompleteLandmarks,
			wantViews:  []model.PhotoAngle{model.AngleFront},
			wantErrors: 1,
		},
		{
			name: "empty and unknown views are reported",
			views: []model.BodyLandmarks{
				{Angle: model.AngleBack},
				{Angle: model.PhotoAngle("overhead"), Landmarks: make(model.LandmarkSet, 33)},
				view(model.AngleFront, 200, 200),
			},
			wantShape:  model.BodyTypeHourglass,
			wantViews:  []model.PhotoAngle{model.AngleFront},
			wantErrors: 2,
		},
	}

	eng := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := eng.Analyze(tt.views)

			assert.Equal(t, tt.wantViews, result.Views)
			assert.Len(t, result.Errors, tt.wantErrors)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, result.Success)
				assert.Empty(t, result.BodyShape)
				assert.Nil(t, result.Measurements)
				return
			}

			require.NoError(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, tt.wantShape, result.BodyShape)
			require.NotNil(t, result.Ratios)
			require.NotNil(t, result.Measurements)
			require.NotNil(t, result.WaistLineY)
			assert.InDelta(t, 36.0, result.Measurements.Shoulders, 1e-9)
			assert.InDelta(t, 0.82, result.Confidence, 1e-9)
		})
	}
}

func TestAnalyze_UsesReference(t *testing.T) {
	eng := NewWithConfig(Config{ReferenceInches: 40})
	result, err := eng.Analyze([]model.BodyLandmarks{view(model.AngleFront, 200, 250)})
	require.NoError(t, err)

	assert.InDelta(t, 40.0, result.Measurements.Shoulders, 1e-9)
	assert.InDelta(t, 50.0, result.Measurements.Hips, 1e-9)
	assert.InDelta(t, 30.0, result.Measurements.Waist, 1e-9)
	// shoulders at y=200, hips at y=500
	assert.InDelta(t, 380.0, *result.WaistLineY, 1e-9)
}

func TestAnalyzeSource(t *testing.T) {
	eng := New()

	result, err := eng.AnalyzeSource(context.Background(), staticSource{
		name:  "alex.json",
		views: []model.BodyLandmarks{view(model.AngleFront, 200, 200)},
	})
	require.NoError(t, err)
	assert.Equal(t, "alex.json", result.Source)
	assert.True(t, result.Success)

	loadErr := errors.New("permission denied")
	result, err = eng.AnalyzeSource(context.Background(), staticSource{name: "locked.json", err: loadErr})
	require.ErrorIs(t, err, loadErr)
	assert.Equal(t, "locked.json", result.Source)
	assert.False(t, result.Success)
}

func TestRecommend(t *testing.T) {
	eng := New()
	result, err := eng.Analyze([]model.BodyLandmarks{view(model.AngleFront, 200, 200)})
	require.NoError(t, err)

	prefs := model.DefaultPreferences()
	prefs.Occasion = model.OccasionWork

	rec, err := eng.Recommend(result, prefs)
	require.NoError(t, err)
	assert.Equal(t, model.BodyTypeHourglass, rec.BodyShape)
	assert.Equal(t, "fitted shirts", rec.OutfitItems[model.SlotTop])

	_, err = eng.Recommend(model.AnalysisResult{}, prefs)
	assert.ErrorIs(t, err, ErrAnalysisFailed)

	prefs.Occasion = "brunch"
	_, err = eng.Recommend(result, prefs)
	assert.ErrorIs(t, err, common.ErrInvalidEnum)
}

func TestRecommendForProfile_UnknownShape(t *testing.T) {
	_, err := New().RecommendForProfile(model.UserProfile{BodyType: "apple"}, model.DefaultPreferences())
	assert.ErrorIs(t, err, common.ErrUnknownBodyShape)
}

func TestAnalyzeBatch(t *testing.T) {
	sources := []LandmarkSource{
		staticSource{name: "a.json", views: []model.BodyLandmarks{view(model.AngleFront, 200, 200)}},
		staticSource{name: "b.json", views: []model.BodyLandmarks{view(model.AngleFront, 180, 220)}},
		staticSource{name: "c.json", views: []model.BodyLandmarks{view(model.AngleSide, 200, 200)}},
		staticSource{name: "d.json", err: errors.New("corrupt")},
		staticSource{name: "e.json", views: []model.BodyLandmarks{view(model.AngleFront, 240, 200)}},
	}

	var progress atomic.Int32
	summary, err := New().AnalyzeBatch(context.Background(), sources, BatchOptions{
		ParallelWorkers: 2,
		OnProgress: func(BatchResult) {
			progress.Add(1)
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 3, summary.Succeeded)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, int32(5), progress.Load())
	assert.Equal(t, map[model.BodyType]int{
		model.BodyTypeHourglass:        1,
		model.BodyTypeTriangle:         1,
		model.BodyTypeInvertedTriangle: 1,
	}, summary.ByShape)

	require.Len(t, summary.Results, 5)
	for i, src := range sources {
		assert.Equal(t, src.Name(), summary.Results[i].Source)
	}
	assert.ErrorIs(t, summary.Results[2].Error, common.ErrMissingFrontView)
}

func TestAnalyzeBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sources := []LandmarkSource{
		staticSource{name: "a.json", views: []model.BodyLandmarks{view(model.AngleFront, 200, 200)}},
	}

	_, err := New().AnalyzeBatch(ctx, sources, DefaultBatchOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

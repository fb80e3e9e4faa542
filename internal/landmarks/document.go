// Package landmarks reads pose-landmark documents produced by an external pose estimator.
//
// A document describes one photo view:
//
//	{"angle": "front", "image_width": 800, "image_height": 1200, "confidence": 0.9,
//	 "landmarks": [[x0, y0], [x1, y1], ...]}
//
// A file may hold a single document or a list of documents, one per view, in JSON or YAML.
package landmarks

import (
	"fmt"
	"math"

	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/model"
)

// Document is the on-disk and on-the-wire form of one photo view.
type Document struct {
	Angle       string      `json:"angle,omitempty" yaml:"angle,omitempty"`
	Landmarks   [][]float64 `json:"landmarks" yaml:"landmarks"`
	ImageWidth  int         `json:"image_width,omitempty" yaml:"image_width,omitempty"`
	ImageHeight int         `json:"image_height,omitempty" yaml:"image_height,omitempty"`
	Confidence  float64     `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

// ToBodyLandmarks validates the document and converts it to the model form.
// A missing angle means front.
func (d Document) ToBodyLandmarks() (model.BodyLandmarks, error) {
	angle := model.AngleFront
	if d.Angle != "" {
		parsed, err := model.ParsePhotoAngle(d.Angle)
		if err != nil {
			return model.BodyLandmarks{}, err
		}
		angle = parsed
	}

	if math.IsNaN(d.Confidence) || d.Confidence < 0 || d.Confidence > 1 {
		return model.BodyLandmarks{}, fmt.Errorf("%w: confidence %v outside [0, 1]", common.ErrMalformedInput, d.Confidence)
	}

	points := make(model.LandmarkSet, 0, len(d.Landmarks))
	for i, p := range d.Landmarks {
		if len(p) < 2 {
			return model.BodyLandmarks{}, fmt.Errorf("%w: landmark %d has %d coordinates, need 2", common.ErrMalformedInput, i, len(p))
		}
		if !isFinite(p[0]) || !isFinite(p[1]) {
			return model.BodyLandmarks{}, fmt.Errorf("%w: landmark %d has non-finite coordinates", common.ErrMalformedInput, i)
		}
		points = append(points, model.Point2D{X: p[0], Y: p[1]})
	}

	return model.BodyLandmarks{
		Angle:       angle,
		Landmarks:   points,
		ImageWidth:  d.ImageWidth,
		ImageHeight: d.ImageHeight,
		Confidence:  d.Confidence,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FromBodyLandmarks converts a model view back into its document form.
func FromBodyLandmarks(view model.BodyLandmarks) Document {
	points := make([][]float64, len(view.Landmarks))
	for i, p := range view.Landmarks {
		points[i] = []float64{p.X, p.Y}
	}
	return Document{
		Angle:       string(view.Angle),
		Landmarks:   points,
		ImageWidth:  view.ImageWidth,
		ImageHeight: view.ImageHeight,
		Confidence:  view.Confidence,
	}
}

// Convert turns a list of documents into model views, stopping at the first invalid one.
func Convert(docs []Document) ([]model.BodyLandmarks, error) {
	views := make([]model.BodyLandmarks, 0, len(docs))
	for i, doc := range docs {
		view, err := doc.ToBodyLandmarks()
		if err != nil {
			return nil, fmt.Errorf("view %d: %w", i, err)
		}
		views = append(views, view)
	}
	return views, nil
}

// Package body converts front-view pose landmarks into body ratios and linear measurements.
package body

import (
	"fmt"

	"github.com/Veraticus/silhouette/internal/common"
	"github.com/Veraticus/silhouette/internal/geometry"
	"github.com/Veraticus/silhouette/internal/model"
)

// Empirical estimation constants. No contour detection backs either value; both are tunable placeholders.
const (
	// WaistShoulderCoefficient estimates waist width as a fraction of shoulder width.
	WaistShoulderCoefficient = 0.75
	// WaistHeightFraction places the waist line this far down from the shoulder line toward the hip line.
	WaistHeightFraction = 0.6
)

// CalculateBodyRatios derives shoulder, waist and hip ratios from a front-view landmark set.
// It returns common.ErrIncompleteLandmarks when the hip landmarks are missing.
func CalculateBodyRatios(front model.BodyLandmarks) (model.BodyRatios, error) {
	lm := front.Landmarks
	if !lm.Complete() {
		return model.BodyRatios{}, fmt.Errorf("%w: got %d points, need %d", common.ErrIncompleteLandmarks, len(lm), model.MinLandmarks)
	}

	shoulderWidth := geometry.Distance(lm[model.LeftShoulder], lm[model.RightShoulder])
	hipWidth := geometry.Distance(lm[model.LeftHip], lm[model.RightHip])
	waistWidth := EstimateWaistWidth(shoulderWidth)

	return model.BodyRatios{
		ShoulderToHip:   safeRatio(shoulderWidth, hipWidth),
		WaistToHip:      safeRatio(waistWidth, hipWidth),
		WaistToShoulder: safeRatio(waistWidth, shoulderWidth),
		ShoulderWidthPx: shoulderWidth,
		WaistWidthPx:    waistWidth,
		HipWidthPx:      hipWidth,
	}, nil
}

// EstimateWaistWidth approximates waist width from shoulder width.
func EstimateWaistWidth(shoulderWidth float64) float64 {
	return shoulderWidth * WaistShoulderCoefficient
}

// EstimateWaistLine returns the estimated y-coordinate of the waist.
func EstimateWaistLine(front model.BodyLandmarks) (float64, error) {
	lm := front.Landmarks
	if !lm.Complete() {
		return 0, fmt.Errorf("%w: got %d points, need %d", common.ErrIncompleteLandmarks, len(lm), model.MinLandmarks)
	}

	shoulderY := geometry.Midpoint(lm[model.LeftShoulder], lm[model.RightShoulder]).Y
	hipY := geometry.Midpoint(lm[model.LeftHip], lm[model.RightHip]).Y

	return shoulderY + WaistHeightFraction*(hipY-shoulderY), nil
}

// safeRatio divides num by den, falling back to 1.0 for degenerate spans.
func safeRatio(num, den float64) float64 {
	if den <= 0 {
		return 1.0
	}
	return num / den
}

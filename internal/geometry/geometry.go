// Package geometry provides distance helpers over 2-D landmark points.
package geometry

import (
	"math"

	"github.com/Veraticus/silhouette/internal/model"
)

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 model.Point2D) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// Midpoint returns the point halfway between p1 and p2.
func Midpoint(p1, p2 model.Point2D) model.Point2D {
	return model.Point2D{
		X: (p1.X + p2.X) / 2,
		Y: (p1.Y + p2.Y) / 2,
	}
}

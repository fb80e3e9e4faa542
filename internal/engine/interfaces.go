package engine

import (
	"context"

	"github.com/Veraticus/silhouette/internal/model"
)

// LandmarkSource supplies pose landmarks detected by an upstream pose-estimation collaborator.
type LandmarkSource interface {
	// Name identifies the source in logs and results, typically a file path.
	Name() string
	// Load returns every photo view the source holds.
	Load(ctx context.Context) ([]model.BodyLandmarks, error)
}

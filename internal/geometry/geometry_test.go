package geometry

import (
	"testing"

	"github.com/Veraticus/silhouette/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		p1   model.Point2D
		p2   model.Point2D
		want float64
	}{
		{name: "same point", p1: model.Point2D{X: 4, Y: 4}, p2: model.Point2D{X: 4, Y: 4}, want: 0},
		{name: "horizontal", p1: model.Point2D{X: 100, Y: 200}, p2: model.Point2D{X: 260, Y: 200}, want: 160},
		{name: "pythagorean triple", p1: model.Point2D{X: 0, Y: 0}, p2: model.Point2D{X: 3, Y: 4}, want: 5},
		{name: "negative coordinates", p1: model.Point2D{X: -3, Y: -4}, p2: model.Point2D{X: 0, Y: 0}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.p1, tt.p2), 1e-9)
			assert.InDelta(t, tt.want, Distance(tt.p2, tt.p1), 1e-9, "distance must be symmetric")
		})
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(model.Point2D{X: 10, Y: 20}, model.Point2D{X: 30, Y: 60})
	assert.Equal(t, model.Point2D{X: 20, Y: 40}, got)
}

package body

import "github.com/Veraticus/silhouette/internal/model"

// DefaultReferenceInches is the assumed real shoulder width used to scale ratios.
const DefaultReferenceInches = 36.0

// ToMeasurements scales ratios into inch measurements, using referenceInches as the shoulder width.
// Bust is not measured independently and always equals shoulders.
func ToMeasurements(ratios model.BodyRatios, referenceInches float64) model.BodyMeasurements {
	shoulders := referenceInches

	hips := shoulders
	if ratios.ShoulderToHip != 0 {
		hips = shoulders / ratios.ShoulderToHip
	}

	return model.BodyMeasurements{
		Shoulders: shoulders,
		Bust:      shoulders,
		Waist:     shoulders * ratios.WaistToShoulder,
		Hips:      hips,
	}
}

package model

// BodyRatios holds dimensionless width comparisons derived from front-view landmarks.
type BodyRatios struct {
	ShoulderToHip   float64 `json:"shoulder_to_hip_ratio"`
	WaistToHip      float64 `json:"waist_to_hip_ratio"`
	WaistToShoulder float64 `json:"waist_to_shoulder_ratio"`
	ShoulderWidthPx float64 `json:"shoulder_width_pixels"`
	WaistWidthPx    float64 `json:"waist_width_pixels"`
	HipWidthPx      float64 `json:"hip_width_pixels"`
}

// BodyMeasurements are body measurements in inches.
type BodyMeasurements struct {
	Shoulders float64 `json:"shoulders" yaml:"shoulders"`
	Bust      float64 `json:"bust" yaml:"bust"`
	Waist     float64 `json:"waist" yaml:"waist"`
	Hips      float64 `json:"hips" yaml:"hips"`
}

// BodyType is a silhouette category that drives styling rules.
type BodyType string

// Body type constants.
const (
	BodyTypeRectangle        BodyType = "rectangle"
	BodyTypeHourglass        BodyType = "hourglass"
	BodyTypeTriangle         BodyType = "triangle"
	BodyTypeInvertedTriangle BodyType = "inverted_triangle"
)

// AllBodyTypes returns every body type in display order.
func AllBodyTypes() []BodyType {
	return []BodyType{
		BodyTypeRectangle,
		BodyTypeHourglass,
		BodyTypeTriangle,
		BodyTypeInvertedTriangle,
	}
}

func (b BodyType) String() string { return string(b) }

// Valid reports whether b is a known body type.
func (b BodyType) Valid() bool { return isMember(b, AllBodyTypes()) }

// ParseBodyType converts user input into a BodyType.
func ParseBodyType(s string) (BodyType, error) {
	return parseEnum("body type", s, AllBodyTypes())
}

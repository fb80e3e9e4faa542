package model

// AnalysisResult is the outcome of analyzing one or more photo views of a body.
// Success is true only when a body shape was classified.
type AnalysisResult struct {
	Ratios       *BodyRatios       `json:"ratios"`
	Measurements *BodyMeasurements `json:"measurements"`
	WaistLineY   *float64          `json:"waist_line_y,omitempty"`
	BodyShape    BodyType          `json:"body_shape,omitempty"`
	Source       string            `json:"source,omitempty"`
	Views        []PhotoAngle      `json:"views"`
	Errors       []string          `json:"errors"`
	Confidence   float64           `json:"confidence"`
	Success      bool              `json:"success"`
}

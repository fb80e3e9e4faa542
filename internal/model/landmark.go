// Package model defines the core domain models used throughout the application.
package model

// Landmark indices in the 33-point pose schema.
const (
	LeftShoulder  = 11
	RightShoulder = 12
	LeftHip       = 23
	RightHip      = 24

	// MinLandmarks is the smallest set that still contains both hip landmarks.
	MinLandmarks = 25
	// PoseLandmarkCount is the size of a full pose landmark set.
	PoseLandmarkCount = 33
)

// Point2D is a position in pixel or normalized image space.
type Point2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// LandmarkSet is an ordered, positionally indexed list of pose landmarks.
type LandmarkSet []Point2D

// Complete reports whether the set contains every landmark needed for ratio analysis.
func (s LandmarkSet) Complete() bool {
	return len(s) >= MinLandmarks
}

// PhotoAngle identifies which view of the body a landmark set was detected from.
type PhotoAngle string

// Photo angle constants.
const (
	AngleFront PhotoAngle = "front"
	AngleSide  PhotoAngle = "side"
	AngleBack  PhotoAngle = "back"
)

// AllPhotoAngles returns every supported photo angle.
func AllPhotoAngles() []PhotoAngle {
	return []PhotoAngle{AngleFront, AngleSide, AngleBack}
}

func (a PhotoAngle) String() string { return string(a) }

// Valid reports whether a is a known photo angle.
func (a PhotoAngle) Valid() bool { return isMember(a, AllPhotoAngles()) }

// ParsePhotoAngle converts user input into a PhotoAngle.
func ParsePhotoAngle(s string) (PhotoAngle, error) {
	return parseEnum("angle", s, AllPhotoAngles())
}

// BodyLandmarks stores the pose landmarks detected in a single photo.
// Image dimensions and confidence are kept for traceability; the ratio stage does not use them.
type BodyLandmarks struct {
	Angle       PhotoAngle  `json:"angle"`
	Landmarks   LandmarkSet `json:"landmarks"`
	ImageWidth  int         `json:"image_width"`
	ImageHeight int         `json:"image_height"`
	Confidence  float64     `json:"confidence"`
}

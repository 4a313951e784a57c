package pipeline

import "github.com/Kru5hna/SecureGate/pkg/geometry"

// PlateResult is the outcome for one detected plate region. Text may be
// empty when no usable candidate survived extraction; that is a valid
// terminal outcome, not an error.
type PlateResult struct {
	Box                 geometry.Box `json:"bbox"`
	DetectionConfidence float64      `json:"detection_confidence"`
	Text                string       `json:"plate_text"`
	Confidence          float64      `json:"ocr_confidence"`
	ValidFormat         bool         `json:"is_valid_format"`
	CropRef             string       `json:"crop_ref,omitempty"`
}

// Result aggregates the plates found in one image, in detector-reported
// order.
type Result struct {
	Plates       []PlateResult `json:"detections"`
	Count        int           `json:"total_plates_found"`
	AnnotatedRef string        `json:"annotated_ref,omitempty"`
}

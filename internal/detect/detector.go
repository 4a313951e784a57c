// Package detect locates license plates in full images. The detection
// model itself is a pretrained collaborator; this package adapts its
// output into clamped bounding boxes with confidences.
package detect

import (
	"gocv.io/x/gocv"

	"github.com/Kru5hna/SecureGate/pkg/geometry"
)

// Detection is one plate region reported by the detector. The box is
// clamped to the image bounds before it is returned.
type Detection struct {
	Box        geometry.Box
	Confidence float64
}

// Detector is the upstream plate-localization contract. Detect returns
// regions in detector-reported order; an image with no plates returns
// an empty slice, not an error.
type Detector interface {
	Detect(img gocv.Mat) ([]Detection, error)
	Close() error
}

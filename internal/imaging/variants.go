// Package imaging expands a plate crop into the preprocessed variants
// the recognition engines read from, and converts decoded images into
// OpenCV Mats.
package imaging

import (
	"image"

	"gocv.io/x/gocv"
)

// Variant is one preprocessing transform of a plate crop, identified by
// its position in the generation sequence. Later variants build on
// earlier ones and are generally higher contrast; a variant is never
// mutated after it is produced.
type Variant struct {
	Index int
	Label string
	Mat   gocv.Mat
}

// VariantSet owns the Mats generated for one crop. Close it when the
// candidates extracted from it have been collected.
type VariantSet struct {
	variants []Variant
}

// Variants returns the generated variants in generation order.
func (s *VariantSet) Variants() []Variant {
	return s.variants
}

// Close releases every Mat in the set.
func (s *VariantSet) Close() {
	for i := range s.variants {
		s.variants[i].Mat.Close()
	}
	s.variants = nil
}

// Generate expands a BGR plate crop into the fixed preprocessing
// sequence: the unmodified crop, grayscale, a 2x cubic upscale, an
// edge-preserving bilateral filter, Otsu thresholding, adaptive
// thresholding, and a morphological close of the Otsu image. The input
// Mat is not modified. A zero-area crop yields an empty set, which
// tells the caller to skip the region entirely.
func Generate(crop gocv.Mat) *VariantSet {
	if crop.Empty() || crop.Cols() == 0 || crop.Rows() == 0 {
		return &VariantSet{}
	}

	original := crop.Clone()

	gray := gocv.NewMat()
	gocv.CvtColor(crop, &gray, gocv.ColorBGRToGray)

	// Scale up to improve OCR resolution.
	resized := gocv.NewMat()
	gocv.Resize(gray, &resized, image.Point{}, 2.0, 2.0, gocv.InterpolationCubic)

	// Reduce noise while keeping glyph edges sharp.
	filtered := gocv.NewMat()
	gocv.BilateralFilter(resized, &filtered, 11, 17, 17)

	otsu := gocv.NewMat()
	gocv.Threshold(filtered, &otsu, 0, 255, gocv.ThresholdBinary|gocv.ThresholdOtsu)

	adaptive := gocv.NewMat()
	gocv.AdaptiveThreshold(filtered, &adaptive, 255, gocv.AdaptiveThresholdGaussian, gocv.ThresholdBinary, 11, 2)

	// Close small holes left by the global threshold.
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer kernel.Close()
	morph := gocv.NewMat()
	gocv.MorphologyEx(otsu, &morph, gocv.MorphClose, kernel)

	mats := []gocv.Mat{original, gray, resized, filtered, otsu, adaptive, morph}
	labels := []string{"original", "gray", "upscaled", "bilateral", "otsu", "adaptive", "morph-close"}

	set := &VariantSet{variants: make([]Variant, len(mats))}
	for i, m := range mats {
		set.variants[i] = Variant{Index: i, Label: labels[i], Mat: m}
	}
	return set
}

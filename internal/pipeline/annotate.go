package pipeline

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/Kru5hna/SecureGate/pkg/geometry"
)

// annotate draws the detection box and its winning text onto the
// annotated overview image.
func annotate(img *gocv.Mat, box geometry.Box, text string, detConf float64) {
	green := color.RGBA{G: 255}
	gocv.Rectangle(img, box.Rect(), green, 3)

	label := fmt.Sprintf("%s (%.2f)", text, detConf)
	gocv.PutText(img, label, image.Pt(box.X1, box.Y1-10),
		gocv.FontHersheySimplex, 0.7, green, 2)
}

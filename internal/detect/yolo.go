package detect

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/Kru5hna/SecureGate/pkg/geometry"
)

// YOLODetector runs a pretrained ONNX plate-detection model through the
// OpenCV DNN module. Loading the model is expensive: construct the
// detector once at startup and share it for the process lifetime.
type YOLODetector struct {
	net    gocv.Net
	params Params
}

// NewYOLODetector loads the model from modelPath.
func NewYOLODetector(modelPath string, params Params) (*YOLODetector, error) {
	net := gocv.ReadNet(modelPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("failed to load detection model from %s", modelPath)
	}
	return &YOLODetector{net: net, params: params}, nil
}

// Close releases the model.
func (d *YOLODetector) Close() error {
	return d.net.Close()
}

// Detect runs one forward pass and returns the plate regions found.
func (d *YOLODetector) Detect(img gocv.Mat) ([]Detection, error) {
	if img.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	blob := gocv.BlobFromImage(img, 1.0/255.0,
		image.Pt(d.params.InputWidth, d.params.InputHeight),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.net.SetInput(blob, "")
	prob := d.net.Forward("")
	defer prob.Close()

	return d.decode(img, prob), nil
}

// decode converts raw model output rows [cx cy w h conf] into clamped
// pixel boxes, applying the confidence threshold and non-max
// suppression.
func (d *YOLODetector) decode(frame gocv.Mat, output gocv.Mat) []Detection {
	rows := output.Size()[1]

	var confidences []float32
	var rects []image.Rectangle

	for i := 0; i < rows; i++ {
		row := output.RowRange(i, i+1)
		conf := row.GetFloatAt(0, 4)
		if conf >= d.params.ConfThreshold {
			cx := row.GetFloatAt(0, 0)
			cy := row.GetFloatAt(0, 1)
			w := row.GetFloatAt(0, 2)
			h := row.GetFloatAt(0, 3)

			left := int((cx - w/2) * float32(frame.Cols()))
			top := int((cy - h/2) * float32(frame.Rows()))
			width := int(w * float32(frame.Cols()))
			height := int(h * float32(frame.Rows()))

			confidences = append(confidences, conf)
			rects = append(rects, image.Rect(left, top, left+width, top+height))
		}
		row.Close()
	}

	if len(rects) == 0 {
		return nil
	}

	indices := gocv.NMSBoxes(rects, confidences, d.params.ConfThreshold, d.params.NMSThreshold)
	detections := make([]Detection, 0, len(indices))
	for _, idx := range indices {
		r := rects[idx]
		box := geometry.NewBox(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y).Clamp(frame.Cols(), frame.Rows())
		detections = append(detections, Detection{
			Box:        box,
			Confidence: float64(confidences[idx]),
		})
	}
	return detections
}

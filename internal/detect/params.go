package detect

// Params tunes the YOLO plate detector.
type Params struct {
	// ConfThreshold is the minimum detection confidence. Regions below
	// it never reach the OCR stage.
	ConfThreshold float32
	// NMSThreshold controls non-max suppression of overlapping boxes.
	NMSThreshold float32
	// InputWidth and InputHeight are the model's tensor input size.
	InputWidth  int
	InputHeight int
}

// DefaultParams returns detection parameters tuned for the pretrained
// single-class plate model.
func DefaultParams() Params {
	return Params{
		ConfThreshold: 0.25,
		NMSThreshold:  0.45,
		InputWidth:    640,
		InputHeight:   640,
	}
}

// WithConfThreshold returns a copy of params with a custom minimum
// detection confidence.
func (p Params) WithConfThreshold(conf float32) Params {
	p.ConfThreshold = conf
	return p
}

// WithNMSThreshold returns a copy of params with a custom non-max
// suppression threshold.
func (p Params) WithNMSThreshold(nms float32) Params {
	p.NMSThreshold = nms
	return p
}

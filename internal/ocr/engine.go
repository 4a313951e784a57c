// Package ocr adapts heterogeneous text-recognition engines behind a
// uniform extraction contract so backends can be added or removed
// without touching the orchestration logic.
package ocr

import (
	"strings"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat"
)

// PlateChars is the allow-list alphabet for plate OCR.
// Excludes lowercase to reduce confusion (0/O, 1/I, etc.)
const PlateChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// FallbackConfidence is the nominal confidence assigned to fallback
// engine readings; the single-string pass does not report its own.
const FallbackConfidence = 0.6

// Candidate is one raw reading from an engine: the text as emitted and
// the engine's confidence mapped into [0,1].
type Candidate struct {
	Text       string
	Confidence float64
}

// Engine is the extraction contract every recognition backend
// implements. Extract may return zero candidates. Engines are tried
// independently; a failing engine never aborts the others.
type Engine interface {
	Name() string
	Extract(img gocv.Mat) ([]Candidate, error)
	Close() error
}

// combineFragments concatenates multi-region readings in detection
// order into one candidate carrying the arithmetic mean of the fragment
// confidences. Plates are often split across word boxes
// (e.g. "MH20" + "EE0841"); the combined reading is what usually wins.
func combineFragments(fragments []Candidate) (Candidate, bool) {
	if len(fragments) < 2 {
		return Candidate{}, false
	}
	var sb strings.Builder
	confs := make([]float64, len(fragments))
	for i, f := range fragments {
		sb.WriteString(f.Text)
		confs[i] = f.Confidence
	}
	return Candidate{Text: sb.String(), Confidence: stat.Mean(confs, nil)}, true
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

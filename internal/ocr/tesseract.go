package ocr

import (
	"fmt"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
	"gocv.io/x/gocv"
)

// newPlateClient builds a gosseract client configured for plate text.
func newPlateClient() (*gosseract.Client, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage("eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}

	// Disable dictionary-based word correction - plate strings aren't English words
	// This prevents Tesseract from "correcting" MH31AB1234 to something else
	_ = client.SetVariable("load_system_dawg", "false")
	_ = client.SetVariable("load_freq_dawg", "false")
	_ = client.SetVariable("language_model_penalty_non_dict_word", "0")
	_ = client.SetVariable("language_model_penalty_non_freq_dict_word", "0")

	if err := client.SetWhitelist(PlateChars); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set whitelist: %w", err)
	}

	return client, nil
}

// encodePNG renders a Mat into the byte form Tesseract accepts.
func encodePNG(img gocv.Mat) ([]byte, error) {
	buf, err := gocv.IMEncode(gocv.PNGFileExt, img)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	defer buf.Close()
	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())
	return data, nil
}

// SparseEngine is the primary recognizer. It reads word-level regions,
// so plate text split across several boxes is kept both as the
// individual fragments and as one combined reading with the mean
// fragment confidence.
//
// The engine holds a single Tesseract client for the process lifetime;
// the mutex serializes use of that shared handle.
type SparseEngine struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// NewSparseEngine creates the primary multi-region engine. Construct it
// once at startup and share it; client setup is expensive.
func NewSparseEngine() (*SparseEngine, error) {
	client, err := newPlateClient()
	if err != nil {
		return nil, err
	}
	return &SparseEngine{client: client}, nil
}

// Name identifies the engine in candidate provenance and diagnostics.
func (e *SparseEngine) Name() string { return "tesseract-sparse" }

// Close releases the Tesseract client.
func (e *SparseEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.client != nil {
		err := e.client.Close()
		e.client = nil
		return err
	}
	return nil
}

// Extract reads all word regions from one image variant. When more than
// one fragment is found, the concatenation (in detection order) is
// emitted first, followed by each fragment on its own.
func (e *SparseEngine) Extract(img gocv.Mat) ([]Candidate, error) {
	if img.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	data, err := encodePNG(img)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.client.SetPageSegMode(gosseract.PSM_SPARSE_TEXT); err != nil {
		return nil, fmt.Errorf("failed to set PSM: %w", err)
	}
	if err := e.client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := e.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("failed to get word boxes: %w", err)
	}

	var fragments []Candidate
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		fragments = append(fragments, Candidate{
			Text:       strings.ToUpper(text),
			Confidence: clampUnit(box.Confidence / 100.0),
		})
	}

	if combined, ok := combineFragments(fragments); ok {
		return append([]Candidate{combined}, fragments...), nil
	}
	return fragments, nil
}

// SingleEngine is the fallback recognizer: one single-string pass per
// variant. It does not report a confidence of its own, so every reading
// carries FallbackConfidence.
type SingleEngine struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// NewSingleEngine creates the fallback single-string engine.
func NewSingleEngine() (*SingleEngine, error) {
	client, err := newPlateClient()
	if err != nil {
		return nil, err
	}
	return &SingleEngine{client: client}, nil
}

// Name identifies the engine in candidate provenance and diagnostics.
func (e *SingleEngine) Name() string { return "tesseract-single" }

// Close releases the Tesseract client.
func (e *SingleEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.client != nil {
		err := e.client.Close()
		e.client = nil
		return err
	}
	return nil
}

// Extract reads the variant as a single word-like string.
func (e *SingleEngine) Extract(img gocv.Mat) ([]Candidate, error) {
	if img.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	data, err := encodePNG(img)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.client.SetPageSegMode(gosseract.PSM_SINGLE_WORD); err != nil {
		return nil, fmt.Errorf("failed to set PSM: %w", err)
	}
	if err := e.client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	text = strings.ToUpper(strings.Join(strings.Fields(text), ""))
	if text == "" {
		return nil, nil
	}
	return []Candidate{{Text: text, Confidence: FallbackConfidence}}, nil
}

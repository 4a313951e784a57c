// Package pipeline sequences plate detection, variant generation,
// multi-engine text extraction, candidate repair and selection into one
// structured result per image.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"

	"github.com/Kru5hna/SecureGate/internal/detect"
	"github.com/Kru5hna/SecureGate/internal/imaging"
	"github.com/Kru5hna/SecureGate/internal/ocr"
	"github.com/Kru5hna/SecureGate/internal/plate"
)

// ErrUnreadableImage reports an input image that could not be decoded.
// It is the only pipeline failure that surfaces to the caller; every
// extraction-level failure degrades to "no candidate" instead.
var ErrUnreadableImage = errors.New("unreadable image")

// ArtifactStore receives crop and annotated images as opaque encoded
// buffers with suggested filenames. Implementations own all file or
// network I/O; the pipeline itself never touches storage.
type ArtifactStore interface {
	SaveImage(name string, encoded []byte) (ref string, err error)
}

// Pipeline processes one image at a time. The detector and engines are
// shared process-wide handles constructed once at startup and injected
// here.
type Pipeline struct {
	detector detect.Detector
	engines  []ocr.Engine
	store    ArtifactStore
	cfg      Config
	logger   *log.Logger
}

// New wires a pipeline from its collaborators. store may be nil when no
// artifacts should be persisted; logger may be nil to silence
// diagnostics.
func New(detector detect.Detector, engines []ocr.Engine, store ArtifactStore, cfg Config, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Pipeline{
		detector: detector,
		engines:  engines,
		store:    store,
		cfg:      cfg,
		logger:   logger,
	}
}

// ProcessFile decodes an image from disk and runs the plate pipeline
// on it.
func (p *Pipeline) ProcessFile(path string) (*Result, error) {
	img, err := imaging.LoadMat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}
	defer img.Close()
	return p.Process(img, filepath.Base(path))
}

// Process runs detection and per-region text extraction on a decoded
// BGR image. name seeds the suggested artifact filenames.
func (p *Pipeline) Process(img gocv.Mat, name string) (*Result, error) {
	if img.Empty() {
		return nil, ErrUnreadableImage
	}

	detections, err := p.detector.Detect(img)
	if err != nil {
		return nil, fmt.Errorf("detect plates: %w", err)
	}

	annotated := img.Clone()
	defer annotated.Close()

	result := &Result{}
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	for i, det := range detections {
		box := det.Box.Clamp(img.Cols(), img.Rows())

		// Crop with a slightly larger margin than the detector reports;
		// plate borders help the thresholding variants.
		cropBox := box.Expand(p.cfg.CropPadding).Clamp(img.Cols(), img.Rows())
		if cropBox.Empty() {
			continue
		}

		crop := img.Region(cropBox.Rect())
		sel := p.readPlate(crop)

		cropRef := p.saveArtifact(fmt.Sprintf("plate_crop_%d_%s.png", i, stem), crop)
		crop.Close()

		annotate(&annotated, box, sel.Text, det.Confidence)

		result.Plates = append(result.Plates, PlateResult{
			Box:                 box,
			DetectionConfidence: det.Confidence,
			Text:                sel.Text,
			Confidence:          sel.Confidence,
			ValidFormat:         sel.Valid,
			CropRef:             cropRef,
		})
	}

	result.Count = len(result.Plates)
	result.AnnotatedRef = p.saveArtifact("annotated_"+stem+".png", annotated)
	return result, nil
}

// readPlate runs every engine over every variant of one crop and fuses
// the collected candidates into a single selection. Extraction failures
// are recorded and contribute zero candidates; they never abort the
// other (engine, variant) pairs.
func (p *Pipeline) readPlate(crop gocv.Mat) plate.Selection {
	set := imaging.Generate(crop)
	defer set.Close()

	var candidates []plate.Candidate
	for _, eng := range p.engines {
		for _, v := range set.Variants() {
			raws, err := eng.Extract(v.Mat)
			if err != nil {
				p.logger.Printf("ocr: %s failed on variant %d (%s): %v", eng.Name(), v.Index, v.Label, err)
				continue
			}
			for _, raw := range raws {
				cleaned := plate.Clean(raw.Text)
				if len(cleaned) < p.cfg.MinTextLen || len(cleaned) > p.cfg.MaxTextLen {
					continue
				}
				canonical := plate.Normalize(raw.Text)
				candidates = append(candidates, plate.Candidate{
					Raw:        raw.Text,
					Canonical:  canonical,
					Confidence: raw.Confidence,
					Valid:      plate.ValidFormat(canonical),
					Engine:     eng.Name(),
					Variant:    v.Index,
				})
			}
		}
	}

	return plate.Select(candidates)
}

// saveArtifact hands an encoded image to the store. Persistence is a
// side effect: failures are logged and leave the result untouched.
func (p *Pipeline) saveArtifact(name string, img gocv.Mat) string {
	if p.store == nil {
		return ""
	}
	buf, err := gocv.IMEncode(gocv.PNGFileExt, img)
	if err != nil {
		p.logger.Printf("artifact: encode %s: %v", name, err)
		return ""
	}
	defer buf.Close()

	ref, err := p.store.SaveImage(name, buf.GetBytes())
	if err != nil {
		p.logger.Printf("artifact: save %s: %v", name, err)
		return ""
	}
	return ref
}

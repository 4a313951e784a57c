// Package gate flags unregistered vehicles by combining the plate
// pipeline with the vehicle registry.
package gate

import (
	"fmt"

	"github.com/Kru5hna/SecureGate/internal/pipeline"
	"github.com/Kru5hna/SecureGate/internal/registry"
)

// Scanner produces plate results for an image file.
type Scanner interface {
	ProcessFile(path string) (*pipeline.Result, error)
}

// Report is one plate result enriched with its registration status.
type Report struct {
	pipeline.PlateResult
	Registered bool
	Owner      string
	// Flagged is true when the plate carried readable text that matched
	// no registered vehicle.
	Flagged bool
}

// Service checks detected plates against the registry and records every
// readable detection in the log.
type Service struct {
	scanner  Scanner
	registry registry.Registry
	log      registry.Log
}

// NewService wires the gate service. log may be nil when detections
// should not be recorded.
func NewService(scanner Scanner, reg registry.Registry, log registry.Log) *Service {
	return &Service{scanner: scanner, registry: reg, log: log}
}

// ScanFile runs the pipeline on one image and resolves registration
// status for every readable plate. Plates with no usable text are
// reported unflagged; they carry nothing to match against.
func (s *Service) ScanFile(path string) ([]Report, *pipeline.Result, error) {
	result, err := s.scanner.ProcessFile(path)
	if err != nil {
		return nil, nil, err
	}

	reports := make([]Report, 0, len(result.Plates))
	for _, pr := range result.Plates {
		rep := Report{PlateResult: pr}
		if pr.Text != "" {
			vehicle, ok := s.registry.Lookup(pr.Text)
			rep.Registered = ok
			rep.Flagged = !ok
			if ok {
				rep.Owner = vehicle.Owner
			}
			if s.log != nil {
				entry := registry.Entry{
					Plate:       pr.Text,
					Confidence:  pr.Confidence,
					Registered:  ok,
					ArtifactRef: pr.CropRef,
				}
				if err := s.log.Append(entry); err != nil {
					return nil, nil, fmt.Errorf("append detection log: %w", err)
				}
			}
		}
		reports = append(reports, rep)
	}
	return reports, result, nil
}

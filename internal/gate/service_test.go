package gate

import (
	"errors"
	"testing"

	"github.com/Kru5hna/SecureGate/internal/pipeline"
	"github.com/Kru5hna/SecureGate/internal/registry"
	"github.com/Kru5hna/SecureGate/pkg/geometry"
)

type fakeScanner struct {
	result *pipeline.Result
	err    error
	path   string
}

func (f *fakeScanner) ProcessFile(path string) (*pipeline.Result, error) {
	f.path = path
	return f.result, f.err
}

func TestScanFileFlagsUnregisteredPlates(t *testing.T) {
	result := &pipeline.Result{
		Plates: []pipeline.PlateResult{
			{Box: geometry.NewBox(0, 0, 10, 10), Text: "MH31AB1234", Confidence: 0.92, ValidFormat: true, CropRef: "crop-0.png"},
			{Box: geometry.NewBox(20, 0, 30, 10), Text: "GJ01ZZ9999", Confidence: 0.71, ValidFormat: true, CropRef: "crop-1.png"},
			{Box: geometry.NewBox(40, 0, 50, 10)}, // unreadable plate
		},
		Count: 3,
	}
	scanner := &fakeScanner{result: result}
	reg := registry.NewMemoryRegistry(registry.Vehicle{Plate: "MH31AB1234", Owner: "Krushna Raut"})
	detLog := &registry.MemoryLog{}

	svc := NewService(scanner, reg, detLog)
	reports, got, err := svc.ScanFile("gate-cam.jpg")
	if err != nil {
		t.Fatalf("ScanFile: %v", err)
	}
	if scanner.path != "gate-cam.jpg" {
		t.Errorf("scanner called with %q", scanner.path)
	}
	if got != result {
		t.Error("pipeline result not passed through")
	}
	if len(reports) != 3 {
		t.Fatalf("reports len = %d, want 3", len(reports))
	}

	if !reports[0].Registered || reports[0].Flagged || reports[0].Owner != "Krushna Raut" {
		t.Errorf("registered plate report = %+v", reports[0])
	}
	if reports[1].Registered || !reports[1].Flagged {
		t.Errorf("unregistered plate report = %+v", reports[1])
	}
	if reports[2].Registered || reports[2].Flagged {
		t.Errorf("unreadable plate must be neither registered nor flagged: %+v", reports[2])
	}

	entries := detLog.Entries()
	if len(entries) != 2 {
		t.Fatalf("log entries = %d, want 2 (unreadable plates are not logged)", len(entries))
	}
	if entries[0].Plate != "MH31AB1234" || !entries[0].Registered || entries[0].ArtifactRef != "crop-0.png" {
		t.Errorf("first log entry = %+v", entries[0])
	}
	if entries[1].Plate != "GJ01ZZ9999" || entries[1].Registered {
		t.Errorf("second log entry = %+v", entries[1])
	}
}

func TestScanFilePropagatesScanError(t *testing.T) {
	scanErr := errors.New("boom")
	svc := NewService(&fakeScanner{err: scanErr}, registry.NewMemoryRegistry(), nil)
	if _, _, err := svc.ScanFile("x.jpg"); !errors.Is(err, scanErr) {
		t.Fatalf("err = %v, want %v", err, scanErr)
	}
}

func TestScanFileNilLog(t *testing.T) {
	result := &pipeline.Result{
		Plates: []pipeline.PlateResult{{Text: "MH31AB1234", Confidence: 0.9}},
		Count:  1,
	}
	svc := NewService(&fakeScanner{result: result}, registry.NewMemoryRegistry(), nil)
	reports, _, err := svc.ScanFile("x.jpg")
	if err != nil {
		t.Fatalf("ScanFile with nil log: %v", err)
	}
	if !reports[0].Flagged {
		t.Error("unregistered readable plate not flagged")
	}
}

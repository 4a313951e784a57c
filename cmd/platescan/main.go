// Command platescan detects license plates in a photo, reads their
// text, and flags vehicles that are missing from the registry.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Kru5hna/SecureGate/internal/detect"
	"github.com/Kru5hna/SecureGate/internal/gate"
	"github.com/Kru5hna/SecureGate/internal/ocr"
	"github.com/Kru5hna/SecureGate/internal/pipeline"
	"github.com/Kru5hna/SecureGate/internal/registry"
	"github.com/Kru5hna/SecureGate/internal/storage"
)

func main() {
	imagePath := flag.String("image", "", "Path to photo (PNG, JPEG, or TIFF)")
	modelPath := flag.String("model", "models/plate-yolo.onnx", "Path to ONNX plate detection model")
	conf := flag.Float64("conf", 0.25, "Minimum detection confidence")
	outDir := flag.String("out", "artifacts", "Directory for crop and annotated images")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: platescan -image <path> [-model <path>] [-conf 0.25] [-out artifacts]")
		os.Exit(1)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	// Build the process-wide model and engine handles once, up front.
	params := detect.DefaultParams().WithConfThreshold(float32(*conf))
	detector, err := detect.NewYOLODetector(*modelPath, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load detector: %v\n", err)
		os.Exit(1)
	}
	defer detector.Close()

	sparse, err := ocr.NewSparseEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start primary OCR engine: %v\n", err)
		os.Exit(1)
	}
	defer sparse.Close()

	single, err := ocr.NewSingleEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start fallback OCR engine: %v\n", err)
		os.Exit(1)
	}
	defer single.Close()

	store, err := storage.NewDirStore(*outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to prepare artifact dir: %v\n", err)
		os.Exit(1)
	}

	engines := []ocr.Engine{sparse, single}
	pipe := pipeline.New(detector, engines, store, pipeline.DefaultConfig(), logger)

	reg := registry.NewMemoryRegistry(sampleFleet()...)
	detLog := &registry.MemoryLog{}
	svc := gate.NewService(pipe, reg, detLog)

	reports, result, err := svc.ScanFile(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Found %d plate(s) in %s\n\n", result.Count, *imagePath)
	fmt.Printf("%-4s %-24s %-12s %8s %8s %-6s %-11s %s\n",
		"#", "Box", "Plate", "DetConf", "OCRConf", "Valid", "Status", "Owner")
	for i, r := range reports {
		text := r.Text
		if text == "" {
			text = "(unreadable)"
		}
		status := "REGISTERED"
		if r.Flagged {
			status = "FLAGGED"
		} else if r.Text == "" {
			status = "-"
		}
		box := fmt.Sprintf("(%d,%d)-(%d,%d)", r.Box.X1, r.Box.Y1, r.Box.X2, r.Box.Y2)
		fmt.Printf("%-4d %-24s %-12s %8.2f %8.2f %-6v %-11s %s\n",
			i+1, box, text, r.DetectionConfidence, r.Confidence, r.ValidFormat, status, r.Owner)
	}

	if result.AnnotatedRef != "" {
		fmt.Printf("\nAnnotated image: %s\n", result.AnnotatedRef)
	}
	fmt.Printf("Logged %d detection(s)\n", len(detLog.Entries()))
}

// sampleFleet seeds the in-memory registry. A real deployment would
// back the Registry interface with its vehicle database instead.
func sampleFleet() []registry.Vehicle {
	return []registry.Vehicle{
		{Plate: "MH31AB1234", Owner: "Krushna Raut", Kind: "Car"},
		{Plate: "MH31CD5678", Owner: "Vikram Jaiswal", Kind: "Car"},
		{Plate: "MH31EF9012", Owner: "Sankalp Choubey", Kind: "Bike"},
		{Plate: "MH12GH3456", Owner: "Rajesh Kumar", Kind: "Car"},
		{Plate: "DL01NO6789", Owner: "Suresh Verma", Kind: "Car"},
		{Plate: "KA05RS8901", Owner: "Arun Joshi", Kind: "Bike"},
		{Plate: "GJ01VW6789", Owner: "Ravi Patel", Kind: "Truck"},
		{Plate: "MH20XY0123", Owner: "Pooja Singh", Kind: "Car"},
	}
}

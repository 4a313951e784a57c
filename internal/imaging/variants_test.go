package imaging

import (
	"testing"

	"gocv.io/x/gocv"
)

func testCrop(t *testing.T) gocv.Mat {
	t.Helper()
	crop := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(120, 120, 120, 0), 40, 120, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { crop.Close() })
	return crop
}

func TestGenerateSequence(t *testing.T) {
	crop := testCrop(t)
	set := Generate(crop)
	defer set.Close()

	variants := set.Variants()
	if len(variants) != 7 {
		t.Fatalf("variants = %d, want 7", len(variants))
	}

	wantLabels := []string{"original", "gray", "upscaled", "bilateral", "otsu", "adaptive", "morph-close"}
	for i, v := range variants {
		if v.Index != i {
			t.Errorf("variant %d has index %d", i, v.Index)
		}
		if v.Label != wantLabels[i] {
			t.Errorf("variant %d label = %q, want %q", i, v.Label, wantLabels[i])
		}
		if v.Mat.Empty() {
			t.Errorf("variant %d (%s) is empty", i, v.Label)
		}
	}

	// The first variant is the unmodified crop.
	if variants[0].Mat.Rows() != crop.Rows() || variants[0].Mat.Cols() != crop.Cols() {
		t.Errorf("original variant is %dx%d, want %dx%d",
			variants[0].Mat.Cols(), variants[0].Mat.Rows(), crop.Cols(), crop.Rows())
	}
	if variants[0].Mat.Type() != gocv.MatTypeCV8UC3 {
		t.Errorf("original variant type = %v", variants[0].Mat.Type())
	}

	// Grayscale is single channel, upscale doubles both dimensions, and
	// the later stages inherit the upscaled geometry.
	if variants[1].Mat.Type() != gocv.MatTypeCV8UC1 {
		t.Errorf("gray variant type = %v", variants[1].Mat.Type())
	}
	for _, i := range []int{2, 3, 4, 5, 6} {
		if variants[i].Mat.Rows() != crop.Rows()*2 || variants[i].Mat.Cols() != crop.Cols()*2 {
			t.Errorf("variant %d (%s) is %dx%d, want %dx%d", i, variants[i].Label,
				variants[i].Mat.Cols(), variants[i].Mat.Rows(), crop.Cols()*2, crop.Rows()*2)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	crop := testCrop(t)

	a := Generate(crop)
	defer a.Close()
	b := Generate(crop)
	defer b.Close()

	av, bv := a.Variants(), b.Variants()
	if len(av) != len(bv) {
		t.Fatalf("variant counts differ: %d vs %d", len(av), len(bv))
	}
	for i := range av {
		diff := gocv.NewMat()
		gocv.AbsDiff(av[i].Mat, bv[i].Mat, &diff)
		nonZero := countNonZero(diff)
		diff.Close()
		if nonZero != 0 {
			t.Errorf("variant %d (%s) differs between runs", i, av[i].Label)
		}
	}
}

// countNonZero flattens a possibly multi-channel Mat to one channel so
// CountNonZero can consume it.
func countNonZero(m gocv.Mat) int {
	if m.Channels() == 1 {
		return gocv.CountNonZero(m)
	}
	flat := m.Reshape(1, m.Rows())
	defer flat.Close()
	return gocv.CountNonZero(flat)
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	crop := testCrop(t)
	before := crop.Clone()
	defer before.Close()

	set := Generate(crop)
	set.Close()

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(crop, before, &diff)
	if countNonZero(diff) != 0 {
		t.Fatal("Generate mutated its input crop")
	}
}

func TestGenerateEmptyCrop(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	set := Generate(empty)
	defer set.Close()
	if len(set.Variants()) != 0 {
		t.Fatalf("empty crop produced %d variants, want 0", len(set.Variants()))
	}
}

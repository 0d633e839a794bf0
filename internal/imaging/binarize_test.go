package imaging

import (
	"image"
	"testing"
)

func TestBinarize(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.Pix = []uint8{
		10, 100,
		200, 250,
	}

	bm, err := Binarize(gray, 0.2, false)
	if err != nil {
		t.Fatalf("Binarize failed: %v", err)
	}

	// Only the 10-valued pixel sits below 0.2 * 255.
	if got := bm.Count(); got != 1 {
		t.Errorf("Count: got %d, want 1", got)
	}
	if !bm.At(0, 0) {
		t.Error("darkest pixel is not foreground")
	}
}

func TestBinarize_Invert(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.Pix = []uint8{
		10, 100,
		200, 250,
	}

	bm, err := Binarize(gray, 0.2, true)
	if err != nil {
		t.Fatalf("Binarize failed: %v", err)
	}

	if got := bm.Count(); got != 3 {
		t.Errorf("Count: got %d, want 3", got)
	}
	if bm.At(0, 0) {
		t.Error("darkest pixel is foreground despite invert")
	}
}

func TestBinarize_ThresholdValidation(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))

	for _, threshold := range []float64{-0.1, 1.1, 2} {
		if _, err := Binarize(gray, threshold, false); err == nil {
			t.Errorf("Binarize with threshold %.1f succeeded, want error", threshold)
		}
	}
}

func TestBinarize_AllBackgroundIsNotAnError(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range gray.Pix {
		gray.Pix[i] = 255
	}

	bm, err := Binarize(gray, 0.2, false)
	if err != nil {
		t.Fatalf("Binarize failed: %v", err)
	}
	if got := bm.Count(); got != 0 {
		t.Errorf("Count: got %d, want 0", got)
	}
}

func TestOtsuThreshold_BimodalHistogram(t *testing.T) {
	// Half the pixels around intensity 30, half around 200: the threshold
	// must land between the two modes.
	gray := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range gray.Pix {
		if i < 50 {
			gray.Pix[i] = 30
		} else {
			gray.Pix[i] = 200
		}
	}

	threshold := OtsuThreshold(gray)
	if threshold <= 30.0/255 || threshold > 200.0/255 {
		t.Fatalf("threshold %.4f not between the modes", threshold)
	}

	bm, err := Binarize(gray, threshold, false)
	if err != nil {
		t.Fatalf("Binarize failed: %v", err)
	}
	if got := bm.Count(); got != 50 {
		t.Errorf("foreground count: got %d, want 50", got)
	}
}

func TestOtsuThreshold_UniformImage(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range gray.Pix {
		gray.Pix[i] = 128
	}

	threshold := OtsuThreshold(gray)
	if threshold < 0 || threshold > 1 {
		t.Errorf("threshold %.4f outside [0,1]", threshold)
	}
}

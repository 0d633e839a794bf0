package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestNewBitmap_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBitmap(tt.width, tt.height); err == nil {
				t.Errorf("NewBitmap(%d, %d) succeeded, want error", tt.width, tt.height)
			}
		})
	}
}

func TestBitmap_SetAndAt(t *testing.T) {
	bm, err := NewBitmap(5, 4)
	if err != nil {
		t.Fatalf("NewBitmap failed: %v", err)
	}

	bm.Set(2, 1, true)
	bm.Set(4, 3, true)

	if !bm.At(2, 1) || !bm.At(4, 3) {
		t.Error("set pixels not reported as foreground")
	}
	if bm.At(0, 0) {
		t.Error("unset pixel reported as foreground")
	}
	if bm.At(-1, 0) || bm.At(5, 0) || bm.At(0, 4) {
		t.Error("out-of-range pixel reported as foreground")
	}
	if got := bm.Count(); got != 2 {
		t.Errorf("Count: got %d, want 2", got)
	}
}

func TestBitmap_SetOutOfRangeIgnored(t *testing.T) {
	bm, err := NewBitmap(3, 3)
	if err != nil {
		t.Fatalf("NewBitmap failed: %v", err)
	}

	bm.Set(-1, 0, true)
	bm.Set(3, 0, true)
	bm.Set(0, 3, true)

	if got := bm.Count(); got != 0 {
		t.Errorf("Count after out-of-range sets: got %d, want 0", got)
	}
}

func TestFromGray(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	gray.Pix = []uint8{
		10, 100, 200,
		30, 60, 250,
	}

	bm, err := FromGray(gray, 64, false)
	if err != nil {
		t.Fatalf("FromGray failed: %v", err)
	}

	wantForeground := [][2]int{{0, 0}, {0, 1}, {1, 1}}
	if got := bm.Count(); got != len(wantForeground) {
		t.Fatalf("Count: got %d, want %d", got, len(wantForeground))
	}
	for _, p := range wantForeground {
		if !bm.At(p[0], p[1]) {
			t.Errorf("pixel (%d,%d) not foreground", p[0], p[1])
		}
	}
}

func TestFromGray_Invert(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.Pix = []uint8{10, 200}

	bm, err := FromGray(gray, 64, true)
	if err != nil {
		t.Fatalf("FromGray failed: %v", err)
	}

	if bm.At(0, 0) {
		t.Error("dark pixel is foreground despite invert")
	}
	if !bm.At(1, 0) {
		t.Error("bright pixel is not foreground despite invert")
	}
}

func TestFromGray_NonZeroOrigin(t *testing.T) {
	gray := image.NewGray(image.Rect(5, 7, 8, 9))
	for i := range gray.Pix {
		gray.Pix[i] = 255
	}
	gray.SetGray(5, 7, color.Gray{Y: 0})
	gray.SetGray(7, 8, color.Gray{Y: 0})

	bm, err := FromGray(gray, 64, false)
	if err != nil {
		t.Fatalf("FromGray failed: %v", err)
	}

	if bm.Width != 3 || bm.Height != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", bm.Width, bm.Height)
	}
	if !bm.At(0, 0) || !bm.At(2, 1) {
		t.Error("foreground pixels lost in origin translation")
	}
}

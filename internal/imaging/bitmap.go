package imaging

import (
	"fmt"
	"image"
)

// Bitmap is a binary silhouette: a 2-D grid of foreground/background pixels.
//
// The coordinate system matches standard image bounds: (0,0) is the top-left
// pixel, X increases rightward, Y increases downward. Foreground pixels are
// true. A Bitmap is treated as immutable once handed to the extractor.
type Bitmap struct {
	// Width is the grid width in pixels.
	Width int

	// Height is the grid height in pixels.
	Height int

	pix []bool
}

// NewBitmap creates an all-background bitmap of the given dimensions.
//
// Returns an error if either dimension is not positive; a zero-sized grid
// is malformed input, not an empty image.
func NewBitmap(width, height int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid bitmap dimensions %dx%d", width, height)
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		pix:    make([]bool, width*height),
	}, nil
}

// At reports whether the pixel at (x, y) is foreground.
// Coordinates outside the grid are background.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	return b.pix[y*b.Width+x]
}

// Set marks the pixel at (x, y) as foreground or background.
// Out-of-range coordinates are ignored.
func (b *Bitmap) Set(x, y int, foreground bool) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.pix[y*b.Width+x] = foreground
}

// Count returns the number of foreground pixels.
func (b *Bitmap) Count() int {
	n := 0
	for _, p := range b.pix {
		if p {
			n++
		}
	}
	return n
}

// FromGray converts a thresholded grayscale image into a bitmap.
//
// Pixels strictly darker than level become foreground (dark ink on light
// paper). Set invert for white-on-black sources.
func FromGray(img *image.Gray, level uint8, invert bool) (*Bitmap, error) {
	bounds := img.Bounds()
	bm, err := NewBitmap(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			dark := img.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y < level
			bm.pix[y*bm.Width+x] = dark != invert
		}
	}
	return bm, nil
}

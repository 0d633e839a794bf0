package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/segment"
)

// Binarize thresholds a grayscale image into a foreground/background bitmap.
//
// The threshold is expressed on a [0,1] intensity scale. Pixels strictly
// darker than the threshold become foreground, matching dark ink on light
// paper; set invert for white-on-black sources.
//
// Returns an error for a threshold outside [0,1] or a zero-sized image. An
// image whose pixels all fall on the background side of the threshold is not
// an error; it produces a bitmap with no foreground pixels.
func Binarize(img *image.Gray, threshold float64, invert bool) (*Bitmap, error) {
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("threshold %.3f outside [0,1]", threshold)
	}

	level := uint8(threshold*255 + 0.5)

	// segment.Threshold maps pixels >= level to white and the rest to black,
	// which is exactly the darker-than-threshold split FromGray expects.
	thresholded := segment.Threshold(img, level)
	return FromGray(thresholded, level, invert)
}

// OtsuThreshold computes a global threshold from the grayscale histogram by
// maximizing the between-class variance of the foreground/background split.
//
// The result is on the same [0,1] scale Binarize accepts. For a flat or
// single-valued histogram the split is degenerate and the method falls back
// to the midpoint 0.5.
func OtsuThreshold(img *image.Gray) float64 {
	var hist [256]int
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0.5
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[img.GrayAt(x, y).Y]++
		}
	}

	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var (
		sumBack    float64
		weightBack int
		bestVar    float64
		bestLevel  = -1
	)
	for t := 0; t < 256; t++ {
		weightBack += hist[t]
		if weightBack == 0 {
			continue
		}
		weightFore := total - weightBack
		if weightFore == 0 {
			break
		}

		sumBack += float64(t) * float64(hist[t])
		meanBack := sumBack / float64(weightBack)
		meanFore := (sum - sumBack) / float64(weightFore)

		diff := meanBack - meanFore
		between := float64(weightBack) * float64(weightFore) * diff * diff
		if between > bestVar {
			bestVar = between
			bestLevel = t
		}
	}

	if bestLevel < 0 {
		return 0.5
	}
	// The winning level is the last intensity assigned to the background
	// class; threshold just above it so that class stays below the cut.
	return float64(bestLevel+1) / 255
}

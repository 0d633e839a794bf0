package regions

import (
	"errors"

	"github.com/shapelab/digitshape/internal/imaging"
)

// ErrInvalidInput marks input the extractor rejects before any computation:
// a nil bitmap or one with non-positive dimensions.
var ErrInvalidInput = errors.New("invalid input image")

// Extract finds the connected foreground regions of a binary image and
// measures each one.
//
// The result holds one Region per 8-connected foreground component, ordered
// by label (row-major discovery order, no guaranteed spatial ordering). A
// bitmap with no foreground pixels yields an empty slice and a nil error;
// "no region found" is the caller's interpretation, not a failure.
//
// Extract holds no cross-call state and never modifies the bitmap, so the
// same input always produces identical output and concurrent calls on
// different bitmaps do not interfere.
func Extract(bm *imaging.Bitmap) ([]Region, error) {
	if bm == nil || bm.Width <= 0 || bm.Height <= 0 {
		return nil, ErrInvalidInput
	}

	labels, count := labelForeground(bm)
	if count == 0 {
		return []Region{}, nil
	}

	accs := make([]accumulator, count+1)
	for i := range accs {
		accs[i] = newAccumulator(bm)
	}
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			if label := labels[y*bm.Width+x]; label != 0 {
				accs[label].add(x, y)
			}
		}
	}

	countHoles(bm, labels, accs)

	regions := make([]Region, 0, count)
	for label := 1; label <= count; label++ {
		regions = append(regions, accs[label].region(label))
	}
	return regions, nil
}

// countHoles attributes each enclosed background component to the foreground
// component that surrounds it.
//
// Background components that touch the image border belong to the exterior
// and are not holes. For an enclosed component, the pixel to the left of its
// first row-major pixel is always foreground (a background pixel there would
// be 4-connected to the same component), and for nested structures that
// neighbor belongs to the immediate encloser.
func countHoles(bm *imaging.Bitmap, labels []int32, accs []accumulator) {
	bg, bgCount, exterior := labelBackground(bm)
	if bgCount == 0 {
		return
	}

	seen := make([]bool, bgCount+1)
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			idx := y*bm.Width + x
			hole := bg[idx]
			if hole == 0 || seen[hole] || exterior[hole] {
				continue
			}
			seen[hole] = true
			accs[labels[idx-1]].holes++
		}
	}
}

// Largest selects the maximum-area region, breaking ties by lowest label.
//
// This is the selection policy for digit silhouettes: when binarization
// leaves small disconnected artifacts next to the digit, the digit itself
// wins. Returns ok=false for an empty slice.
func Largest(regions []Region) (Region, bool) {
	if len(regions) == 0 {
		return Region{}, false
	}

	best := regions[0]
	for _, r := range regions[1:] {
		if r.Area > best.Area {
			best = r
		}
	}
	return best, true
}

// EulerNumber returns the whole-image Euler number: the number of connected
// components minus the number of enclosed holes.
func EulerNumber(regions []Region) int {
	euler := 0
	for _, r := range regions {
		euler += r.EulerNumber
	}
	return euler
}

package imaging

// TrimToContent crops a bitmap to the bounding box of its foreground plus a
// margin of background pixels on each side.
//
// The margin is clamped to the original grid, so the result never grows past
// the input. Returns ok=false when the bitmap has no foreground pixels;
// callers treat that as "no region found", not as an error.
func TrimToContent(bm *Bitmap, margin int) (*Bitmap, bool) {
	if bm == nil || margin < 0 {
		return nil, false
	}

	minX, minY := bm.Width, bm.Height
	maxX, maxY := -1, -1
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			if !bm.At(x, y) {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return nil, false
	}

	minX = max(minX-margin, 0)
	minY = max(minY-margin, 0)
	maxX = min(maxX+margin, bm.Width-1)
	maxY = min(maxY+margin, bm.Height-1)

	out, err := NewBitmap(maxX-minX+1, maxY-minY+1)
	if err != nil {
		return nil, false
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			out.Set(x-minX, y-minY, bm.At(x, y))
		}
	}
	return out, true
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package regions

import (
	"github.com/shapelab/digitshape/internal/imaging"
)

type point struct {
	x, y int
}

// labelForeground assigns 1-based labels to the 8-connected foreground
// components of a bitmap.
//
// Uses an iterative stack-based flood fill (not recursive) to avoid stack
// overflow on large components. Labels are assigned in row-major discovery
// order, so label order is deterministic for a given bitmap.
//
// Returns the label grid in row-major order (0 = background) and the number
// of components found.
func labelForeground(bm *imaging.Bitmap) ([]int32, int) {
	grid := make([]int32, bm.Width*bm.Height)
	next := int32(0)

	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			if !bm.At(x, y) || grid[y*bm.Width+x] != 0 {
				continue
			}
			next++
			floodFill(bm, grid, x, y, next)
		}
	}
	return grid, int(next)
}

// floodFill marks every foreground pixel 8-connected to (startX, startY)
// with the given label.
func floodFill(bm *imaging.Bitmap, grid []int32, startX, startY int, label int32) {
	stack := []point{{x: startX, y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.x < 0 || p.x >= bm.Width || p.y < 0 || p.y >= bm.Height {
			continue
		}
		idx := p.y*bm.Width + p.x
		if grid[idx] != 0 || !bm.At(p.x, p.y) {
			continue
		}

		grid[idx] = label

		// 8-connected neighbors
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, point{x: p.x + dx, y: p.y + dy})
			}
		}
	}
}

// labelBackground assigns 1-based labels to the 4-connected background
// components of a bitmap.
//
// Background uses 4-connectivity as the dual of 8-connected foreground;
// otherwise a diagonal line of ink would not separate the regions on either
// side of it. The exterior slice (indexed by label) reports which components
// touch the image border and are therefore not holes.
func labelBackground(bm *imaging.Bitmap) (grid []int32, count int, exterior []bool) {
	grid = make([]int32, bm.Width*bm.Height)
	next := int32(0)
	touchesBorder := []bool{false}

	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			if bm.At(x, y) || grid[y*bm.Width+x] != 0 {
				continue
			}
			next++
			touchesBorder = append(touchesBorder, fillBackground(bm, grid, x, y, next))
		}
	}
	return grid, int(next), touchesBorder
}

// fillBackground floods one 4-connected background component and reports
// whether it touches the image border.
func fillBackground(bm *imaging.Bitmap, grid []int32, startX, startY int, label int32) bool {
	stack := []point{{x: startX, y: startY}}
	border := false

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.x < 0 || p.x >= bm.Width || p.y < 0 || p.y >= bm.Height {
			continue
		}
		idx := p.y*bm.Width + p.x
		if grid[idx] != 0 || bm.At(p.x, p.y) {
			continue
		}

		grid[idx] = label
		if p.x == 0 || p.x == bm.Width-1 || p.y == 0 || p.y == bm.Height-1 {
			border = true
		}

		stack = append(stack,
			point{x: p.x - 1, y: p.y},
			point{x: p.x + 1, y: p.y},
			point{x: p.x, y: p.y - 1},
			point{x: p.x, y: p.y + 1},
		)
	}
	return border
}

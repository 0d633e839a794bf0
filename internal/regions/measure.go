package regions

import (
	"math"

	"github.com/shapelab/digitshape/internal/imaging"
)

// Bounds represents a rectangular bounding box in pixel coordinates.
//
// (X1, Y1) is the top-left corner and (X2, Y2) the bottom-right corner,
// both inclusive.
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (inclusive)
	Y2 int `json:"y2"` // Bottom edge (inclusive)
}

// Region describes one 8-connected foreground component of a bitmap.
type Region struct {
	// Label is the 1-based component label in discovery (row-major) order.
	Label int `json:"label"`

	// Area is the number of foreground pixels in the component.
	Area int `json:"area"`

	// Bounds is the bounding box enclosing the component.
	Bounds Bounds `json:"bounds"`

	// CentroidX and CentroidY are the mean pixel coordinates.
	CentroidX float64 `json:"centroid_x"`
	CentroidY float64 `json:"centroid_y"`

	// Eccentricity measures elongation in [0,1): 0 for a circularly
	// symmetric component, approaching 1 for a line-like one. Derived from
	// the eigenvalues of the component's second-order moment matrix.
	Eccentricity float64 `json:"eccentricity"`

	// Holes is the number of background components fully enclosed by this
	// component.
	Holes int `json:"holes"`

	// EulerNumber is 1 - Holes: the component's topological genus measure.
	EulerNumber int `json:"euler_number"`
}

// accumulator gathers the per-component pixel sums a Region is derived from.
type accumulator struct {
	area                   int
	minX, minY, maxX, maxY int
	sumX, sumY             int64
	sumXX, sumYY, sumXY    int64
	holes                  int
}

func newAccumulator(bm *imaging.Bitmap) accumulator {
	return accumulator{
		minX: bm.Width,
		minY: bm.Height,
		maxX: -1,
		maxY: -1,
	}
}

func (a *accumulator) add(x, y int) {
	a.area++
	if x < a.minX {
		a.minX = x
	}
	if x > a.maxX {
		a.maxX = x
	}
	if y < a.minY {
		a.minY = y
	}
	if y > a.maxY {
		a.maxY = y
	}
	a.sumX += int64(x)
	a.sumY += int64(y)
	a.sumXX += int64(x) * int64(x)
	a.sumYY += int64(y) * int64(y)
	a.sumXY += int64(x) * int64(y)
}

// region converts the accumulated sums into a Region record.
func (a *accumulator) region(label int) Region {
	n := float64(a.area)
	cx := float64(a.sumX) / n
	cy := float64(a.sumY) / n

	return Region{
		Label: label,
		Area:  a.area,
		Bounds: Bounds{
			X1: a.minX,
			Y1: a.minY,
			X2: a.maxX,
			Y2: a.maxY,
		},
		CentroidX:    cx,
		CentroidY:    cy,
		Eccentricity: a.eccentricity(cx, cy),
		Holes:        a.holes,
		EulerNumber:  1 - a.holes,
	}
}

// eccentricity computes sqrt(1 - λmin/λmax) from the eigenvalues of the
// central second-order moment (covariance) matrix of the pixel coordinates.
//
// Each pixel is modeled as a unit square, contributing 1/12 to both diagonal
// moments. This keeps the result strictly below 1 even for one-pixel-wide
// lines and makes a single pixel come out as exactly 0.
func (a *accumulator) eccentricity(cx, cy float64) float64 {
	n := float64(a.area)
	mu20 := float64(a.sumXX)/n - cx*cx + 1.0/12
	mu02 := float64(a.sumYY)/n - cy*cy + 1.0/12
	mu11 := float64(a.sumXY)/n - cx*cy

	// Eigenvalues of [[mu20, mu11], [mu11, mu02]].
	mean := (mu20 + mu02) / 2
	d := (mu20 - mu02) / 2
	r := math.Sqrt(d*d + mu11*mu11)
	major := mean + r
	minor := mean - r

	if major <= 0 {
		return 0
	}
	ratio := minor / major
	if ratio < 0 {
		ratio = 0
	}
	return math.Sqrt(1 - ratio)
}

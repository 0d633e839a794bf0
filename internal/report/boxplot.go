package report

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"
)

// PlotOptions controls box plot rendering.
type PlotOptions struct {
	// Width and Height are the output image dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Title is drawn centered above the plot area.
	Title string `json:"title"`
}

// DefaultPlotOptions returns the rendering defaults for the Euler number
// comparison plot.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Width:  800,
		Height: 500,
		Title:  "Euler number by digit class",
	}
}

// Plot margins in pixels.
const (
	marginLeft   = 56
	marginRight  = 20
	marginTop    = 40
	marginBottom = 48
)

// RenderBoxPlot draws one box-and-whisker glyph per group: a box from Q1 to
// Q3 with the median line across it, and whiskers out to the minimum and
// maximum. Groups with no values are skipped.
//
// Returns an error when no group contributes any data or the dimensions
// leave no plot area.
func RenderBoxPlot(groups []Group, opts PlotOptions) (image.Image, error) {
	if opts.Width <= marginLeft+marginRight || opts.Height <= marginTop+marginBottom {
		return nil, fmt.Errorf("plot dimensions %dx%d too small", opts.Width, opts.Height)
	}

	type box struct {
		label string
		stats BoxStats
	}
	boxes := make([]box, 0, len(groups))
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, g := range groups {
		stats, ok := Summarize(g.Values)
		if !ok {
			continue
		}
		boxes = append(boxes, box{label: g.Label, stats: stats})
		lo = math.Min(lo, stats.Min)
		hi = math.Max(hi, stats.Max)
	}
	if len(boxes) == 0 {
		return nil, fmt.Errorf("no data to plot")
	}

	// Pad the value range so boxes never touch the frame. Euler numbers of
	// single digits span only a few integers, so a fixed pad works better
	// than a proportional one.
	lo -= 0.5
	hi += 0.5

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	plotW := float64(opts.Width - marginLeft - marginRight)
	plotH := float64(opts.Height - marginTop - marginBottom)
	yFor := func(v float64) float64 {
		return float64(marginTop) + (hi-v)/(hi-lo)*plotH
	}

	// Frame and title.
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1)
	dc.DrawRectangle(float64(marginLeft), float64(marginTop), plotW, plotH)
	dc.Stroke()
	if opts.Title != "" {
		dc.DrawStringAnchored(opts.Title, float64(opts.Width)/2, float64(marginTop)/2, 0.5, 0.5)
	}

	// Horizontal gridlines and y tick labels at integer values.
	for v := math.Ceil(lo); v <= hi; v++ {
		y := yFor(v)
		dc.SetRGBA(0, 0, 0, 0.12)
		dc.DrawLine(float64(marginLeft), y, float64(marginLeft)+plotW, y)
		dc.Stroke()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(fmt.Sprintf("%.0f", v), float64(marginLeft)-8, y, 1, 0.5)
	}

	slot := plotW / float64(len(boxes))
	boxHalf := math.Min(slot*0.3, 40)

	for i, b := range boxes {
		cx := float64(marginLeft) + slot*(float64(i)+0.5)

		fill := colorful.Hsv(float64(i)*360/float64(len(boxes)), 0.45, 0.9)
		stroke := colorful.Hsv(float64(i)*360/float64(len(boxes)), 0.6, 0.5)

		yMin := yFor(b.stats.Min)
		yQ1 := yFor(b.stats.Q1)
		yMed := yFor(b.stats.Median)
		yQ3 := yFor(b.stats.Q3)
		yMax := yFor(b.stats.Max)

		// Whiskers with end caps.
		dc.SetColor(stroke)
		dc.SetLineWidth(1)
		dc.DrawLine(cx, yQ1, cx, yMin)
		dc.DrawLine(cx, yQ3, cx, yMax)
		dc.DrawLine(cx-boxHalf/2, yMin, cx+boxHalf/2, yMin)
		dc.DrawLine(cx-boxHalf/2, yMax, cx+boxHalf/2, yMax)
		dc.Stroke()

		// Interquartile box. A degenerate box (Q1 == Q3) still gets a
		// visible sliver so single-valued classes do not vanish.
		boxTop := yQ3
		boxH := yQ1 - yQ3
		if boxH < 2 {
			boxTop = yMed - 1
			boxH = 2
		}
		dc.SetColor(fill)
		dc.DrawRectangle(cx-boxHalf, boxTop, boxHalf*2, boxH)
		dc.FillPreserve()
		dc.SetColor(stroke)
		dc.Stroke()

		// Median line.
		dc.SetLineWidth(2)
		dc.DrawLine(cx-boxHalf, yMed, cx+boxHalf, yMed)
		dc.Stroke()

		// Class label and sample count under the axis.
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(b.label, cx, float64(opts.Height-marginBottom)+14, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("n=%d", b.stats.Count), cx, float64(opts.Height-marginBottom)+28, 0.5, 0.5)
	}

	return dc.Image(), nil
}

// SaveBoxPlot renders the groups and writes the plot as a PNG file.
func SaveBoxPlot(path string, groups []Group, opts PlotOptions) error {
	img, err := RenderBoxPlot(groups, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRenderBoxPlot(t *testing.T) {
	groups := []Group{
		{Label: "0", Values: []float64{0, 0, 1, 0}},
		{Label: "1", Values: []float64{1, 1, 1}},
		{Label: "8", Values: []float64{-1, -1, 0}},
	}

	opts := DefaultPlotOptions()
	img, err := RenderBoxPlot(groups, opts)
	if err != nil {
		t.Fatalf("RenderBoxPlot failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != opts.Width || bounds.Dy() != opts.Height {
		t.Errorf("dimensions: got %dx%d, want %dx%d",
			bounds.Dx(), bounds.Dy(), opts.Width, opts.Height)
	}
}

func TestRenderBoxPlot_SkipsEmptyGroups(t *testing.T) {
	groups := []Group{
		{Label: "0", Values: []float64{0}},
		{Label: "5", Values: nil},
	}

	if _, err := RenderBoxPlot(groups, DefaultPlotOptions()); err != nil {
		t.Fatalf("RenderBoxPlot failed: %v", err)
	}
}

func TestRenderBoxPlot_Errors(t *testing.T) {
	valid := []Group{{Label: "0", Values: []float64{1}}}

	if _, err := RenderBoxPlot(nil, DefaultPlotOptions()); err == nil {
		t.Error("RenderBoxPlot with no groups succeeded")
	}
	if _, err := RenderBoxPlot(valid, PlotOptions{Width: 10, Height: 10}); err == nil {
		t.Error("RenderBoxPlot with tiny dimensions succeeded")
	}
}

func TestSaveBoxPlot(t *testing.T) {
	groups := []Group{
		{Label: "0", Values: []float64{0, 1}},
	}
	path := filepath.Join(t.TempDir(), "plot.png")

	if err := SaveBoxPlot(path, groups, DefaultPlotOptions()); err != nil {
		t.Fatalf("SaveBoxPlot failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

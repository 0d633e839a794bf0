package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/shapelab/digitshape/internal/pipeline"
)

// Group is the Euler numbers of every successfully measured image of one
// class label.
type Group struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// GroupEulerByLabel buckets the Euler number of each Success record by class
// label, sorted by label. Failed and empty records are excluded.
func GroupEulerByLabel(records []pipeline.DescriptorRecord) []Group {
	byLabel := make(map[string][]float64)
	for _, rec := range records {
		if !rec.OK() {
			continue
		}
		byLabel[rec.Label] = append(byLabel[rec.Label], float64(rec.EulerNumber))
	}

	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	groups := make([]Group, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, Group{Label: label, Values: byLabel[label]})
	}
	return groups
}

// BoxStats is the five-number summary a box plot is drawn from.
type BoxStats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Summarize computes the five-number summary of a value slice.
// Returns ok=false for an empty slice.
func Summarize(values []float64) (BoxStats, bool) {
	if len(values) == 0 {
		return BoxStats{}, false
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return BoxStats{
		Count:  len(sorted),
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}, true
}

// WriteSummary writes the five-number summary of each group as an aligned
// text table.
func WriteSummary(w io.Writer, groups []Group) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "LABEL\tCOUNT\tMIN\tQ1\tMEDIAN\tQ3\tMAX")
	for _, g := range groups {
		stats, ok := Summarize(g.Values)
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%.1f\t%.2f\t%.1f\t%.2f\t%.1f\n",
			g.Label, stats.Count, stats.Min, stats.Q1, stats.Median, stats.Q3, stats.Max)
	}
	return tw.Flush()
}

// quantile returns the p-th quantile of a sorted slice using linear
// interpolation between closest ranks.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	h := p * float64(len(sorted)-1)
	lo := int(h)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Package report tabulates descriptor records and renders the grouped
// summary outputs.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/shapelab/digitshape/internal/pipeline"
)

// WriteTable writes an aligned text table with one row per record.
func WriteTable(w io.Writer, records []pipeline.DescriptorRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "LABEL\tPATH\tAREA\tECCENTRICITY\tEULER\tSTATUS")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.4f\t%d\t%s\n",
			rec.Label, rec.Path, rec.Area, rec.Eccentricity, rec.EulerNumber, rec.Status)
	}
	return tw.Flush()
}

// WriteCSV writes the records as CSV with a header row.
func WriteCSV(w io.Writer, records []pipeline.DescriptorRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"label", "path", "area", "eccentricity", "euler_number", "status"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Label,
			rec.Path,
			strconv.Itoa(rec.Area),
			strconv.FormatFloat(rec.Eccentricity, 'f', 6, 64),
			strconv.Itoa(rec.EulerNumber),
			string(rec.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSONL streams the records as one JSON object per line.
func WriteJSONL(w io.Writer, records []pipeline.DescriptorRecord) error {
	encoder := json.NewEncoder(w)
	for _, rec := range records {
		if err := encoder.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	return nil
}

package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shapelab/digitshape/internal/pipeline"
)

func testRecords() []pipeline.DescriptorRecord {
	return []pipeline.DescriptorRecord{
		{
			Label:        "0",
			Path:         "digits/0/a.png",
			Area:         120,
			Eccentricity: 0.31,
			EulerNumber:  0,
			Regions:      1,
			Status:       pipeline.StatusSuccess,
		},
		{
			Label:  "5",
			Path:   "digits/5/blank.png",
			Status: pipeline.StatusNoRegion,
		},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, testRecords()); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"LABEL", "digits/0/a.png", "120", "no_region"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testRecords()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV back failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want 3 (header + 2 records)", len(rows))
	}
	if rows[0][0] != "label" || rows[0][4] != "euler_number" {
		t.Errorf("header: got %v", rows[0])
	}
	if rows[1][2] != "120" {
		t.Errorf("area cell: got %q, want 120", rows[1][2])
	}
	if rows[2][5] != "no_region" {
		t.Errorf("status cell: got %q, want no_region", rows[2][5])
	}
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSONL(&buf, testRecords()); err != nil {
		t.Fatalf("WriteJSONL failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines: got %d, want 2", len(lines))
	}

	var rec pipeline.DescriptorRecord
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("decoding line failed: %v", err)
	}
	if rec.Label != "0" || rec.Area != 120 {
		t.Errorf("decoded record: got %+v", rec)
	}
}

package chartfile

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/ggchart"
	"github.com/xuri/excelize/v2"
)

func TestParseInline(t *testing.T) {
	doc := `
width: 640
height: 320
title: Demo
x_axis:
  name: Letter
  labels: [a, b, c]
y_axis:
  name: Value
  min: 0
  max: 100
series:
  - [10, 20, 30]
  - [30, 20, 10]
`
	c, err := Parse([]byte(doc), ".")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if c.Width != 640 || c.Height != 320 || c.Title != "Demo" {
		t.Errorf("chart = %dx%d %q", c.Width, c.Height, c.Title)
	}
	if len(c.Series) != 2 || !slices.Equal(c.Series[1], ggchart.Series{30, 20, 10}) {
		t.Errorf("series = %v", c.Series)
	}
	if c.XAxis == nil || c.XAxis.Name != "Letter" || len(c.XAxis.Labels) != 3 || c.XAxis.Labels[2].String() != "c" {
		t.Errorf("x axis = %+v", c.XAxis)
	}
	if c.YAxis == nil || c.YAxis.Min == nil || *c.YAxis.Min != 0 || *c.YAxis.Max != 100 {
		t.Errorf("y axis = %+v", c.YAxis)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestParseDefaultsAndTimestamps(t *testing.T) {
	doc := `
x_axis:
  date_format: "2006-01-02"
  labels: [0, 86400, later]
series: [[1, 2, 3]]
`
	c, err := Parse([]byte(doc), ".")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Width != DefaultWidth || c.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want defaults", c.Width, c.Height)
	}
	labels := c.XAxis.Labels
	if !labels[0].IsTime() || labels[1].Unix() != 86400 || labels[2].IsTime() {
		t.Errorf("labels = %+v", labels)
	}
	if c.YAxis != nil {
		t.Errorf("y axis = %+v, want nil", c.YAxis)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("width: ["), ".")
	if !errors.Is(err, ggchart.ErrConfig) {
		t.Errorf("err = %v, want ErrConfig", err)
	}
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	csvData := "day,up,down\nmon,1,5\ntue,2,4\nwed,3,3\n"
	if err := os.WriteFile(filepath.Join(dir, "data.csv"), []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}
	doc := `
title: From CSV
x_axis: {name: Day}
data: {csv: data.csv, header: true, label_column: true}
`
	path := filepath.Join(dir, "chart.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Series) != 2 || !slices.Equal(c.Series[0], ggchart.Series{1, 2, 3}) || !slices.Equal(c.Series[1], ggchart.Series{5, 4, 3}) {
		t.Errorf("series = %v", c.Series)
	}
	if c.XAxis.Name != "Day" || c.XAxis.Labels[1].String() != "tue" {
		t.Errorf("x axis = %+v", c.XAxis)
	}

	out := filepath.Join(dir, "chart.png")
	if err := c.Render(out); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		header      bool
		labelColumn bool
		want        string
	}{
		{"no rows", "a,b\n", true, false, "no data rows"},
		{"bad number", "1,x\n", false, false, "not a number"},
		{"labels only", "a\nb\n", false, true, "no value columns"},
		{"ragged", "1,2\n3\n", false, false, "not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readCSV(strings.NewReader(tt.data), tt.header, tt.labelColumn)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestLoadXLSX(t *testing.T) {
	dir := t.TempDir()

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Metrics"
	if _, err := f.NewSheet(sheet); err != nil {
		t.Fatal(err)
	}
	rows := [][]any{
		{"t", "cpu", "mem"},
		{1700000000, 10, 40},
		{1700003600, 20, 35.5},
		{1700007200, 15, 50},
	}
	for r, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cellName, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(filepath.Join(dir, "data.xlsx")); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	doc := `
x_axis: {date_format: "15:04"}
data: {xlsx: data.xlsx, sheet: Metrics, header: true, label_column: true}
`
	c, err := Parse([]byte(doc), dir)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(c.Series) != 2 || !slices.Equal(c.Series[1], ggchart.Series{40, 35.5, 50}) {
		t.Errorf("series = %v", c.Series)
	}
	if l := c.XAxis.Labels[1]; !l.IsTime() || l.Unix() != 1700003600 {
		t.Errorf("label = %+v, want timestamp", l)
	}
}

func TestDataSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"both sources", "data: {csv: a.csv, xlsx: b.xlsx}"},
		{"no source", "data: {header: true}"},
		{"missing csv", "data: {csv: missing.csv}"},
		{"missing xlsx", "data: {xlsx: missing.xlsx}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), t.TempDir())
			if !errors.Is(err, ggchart.ErrConfig) {
				t.Errorf("err = %v, want ErrConfig", err)
			}
		})
	}
}

// Package chartfile loads chart descriptions from YAML files.
//
// A chart file carries the same information as a ggchart.Chart. Series can
// be listed inline or read from a CSV or XLSX table:
//
//	width: 800
//	height: 400
//	title: Requests
//	x_axis:
//	  name: Day
//	  date_format: "Jan 2"
//	y_axis:
//	  name: Count
//	  min: 0
//	data:
//	  csv: requests.csv
//	  header: true
//	  label_column: true
//
// In a table each row is one point. With label_column the first column
// holds the X labels and every further column is a series.
package chartfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gogpu/ggchart"
	"gopkg.in/yaml.v3"
)

// Default canvas size for files that do not set one.
const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

// File is the YAML document structure.
type File struct {
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Title  string      `yaml:"title"`
	XAxis  *XAxis      `yaml:"x_axis"`
	YAxis  *YAxis      `yaml:"y_axis"`
	Series [][]float64 `yaml:"series"`
	Data   *Data       `yaml:"data"`
}

// XAxis holds X axis settings. Labels that are integers become Unix
// timestamps when DateFormat is set.
type XAxis struct {
	Name       string   `yaml:"name"`
	Labels     []string `yaml:"labels"`
	DateFormat string   `yaml:"date_format"`
}

// YAxis holds Y axis settings.
// Min and Max are pointers to distinguish "not set" from an explicit 0.
type YAxis struct {
	Name string   `yaml:"name"`
	Min  *float64 `yaml:"min"`
	Max  *float64 `yaml:"max"`
}

// Data points at an external table that replaces the inline series.
// Exactly one of CSV and XLSX must be set; relative paths are resolved
// against the chart file's directory.
type Data struct {
	CSV         string `yaml:"csv"`
	XLSX        string `yaml:"xlsx"`
	Sheet       string `yaml:"sheet"`
	Header      bool   `yaml:"header"`
	LabelColumn bool   `yaml:"label_column"`
}

// Load reads and converts the chart file at path.
func Load(path string) (ggchart.Chart, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return ggchart.Chart{}, fmt.Errorf("read chart file: %w", err)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse converts a YAML chart description. baseDir resolves relative
// data paths.
func Parse(data []byte, baseDir string) (ggchart.Chart, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return ggchart.Chart{}, fmt.Errorf("%w: parse chart file: %w", ggchart.ErrConfig, err)
	}
	return f.Chart(baseDir)
}

// Chart converts f into a chart, reading its data table if one is set.
func (f *File) Chart(baseDir string) (ggchart.Chart, error) {
	width, height := f.Width, f.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	c := ggchart.New(width, height).WithTitle(f.Title)

	series, labels := f.Series, []string(nil)
	if f.XAxis != nil {
		labels = f.XAxis.Labels
	}
	if f.Data != nil {
		t, err := f.Data.load(baseDir)
		if err != nil {
			return ggchart.Chart{}, err
		}
		series = t.series
		if f.Data.LabelColumn {
			labels = t.labels
		}
	}

	if f.XAxis != nil || labels != nil {
		var a XAxis
		if f.XAxis != nil {
			a = *f.XAxis
		}
		c = c.WithXAxis(ggchart.NewXAxis(a.Name, toLabels(labels, a.DateFormat), a.DateFormat))
	}
	if f.YAxis != nil {
		c = c.WithYAxis(ggchart.YAxis{Name: f.YAxis.Name, Min: f.YAxis.Min, Max: f.YAxis.Max})
	}
	for _, s := range series {
		c = c.AddSeries(s...)
	}

	ggchart.Logger().Debug("chartfile: loaded",
		"series", len(c.Series), "points", c.Len(), "labels", len(labels))
	return c, nil
}

// toLabels turns raw label text into chart labels. Integer labels become
// timestamps only when a date format is set.
func toLabels(raw []string, dateFormat string) []ggchart.Label {
	labels := make([]ggchart.Label, len(raw))
	for i, s := range raw {
		if dateFormat != "" {
			if ts, err := strconv.ParseInt(s, 10, 64); err == nil {
				labels[i] = ggchart.TimeLabel(ts)
				continue
			}
		}
		labels[i] = ggchart.TextLabel(s)
	}
	return labels
}

func (d *Data) load(baseDir string) (*table, error) {
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}

	switch {
	case d.CSV != "" && d.XLSX != "":
		return nil, fmt.Errorf("%w: data sets both csv and xlsx", ggchart.ErrConfig)
	case d.CSV != "":
		return readCSVFile(resolve(d.CSV), d.Header, d.LabelColumn)
	case d.XLSX != "":
		return readXLSXFile(resolve(d.XLSX), d.Sheet, d.Header, d.LabelColumn)
	}
	return nil, fmt.Errorf("%w: data needs a csv or xlsx source", ggchart.ErrConfig)
}

// errNoRows is returned for tables without data rows.
var errNoRows = errors.New("table has no data rows")

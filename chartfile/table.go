package chartfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/ggchart"
	"github.com/xuri/excelize/v2"
)

// table is a column-oriented view of a data source: one series per value
// column, plus optional labels from the first column.
type table struct {
	labels []string
	series [][]float64
}

// fromRows builds a table from row-major cells. Rows shorter than the
// widest one are treated as having empty trailing cells, which is an error.
func fromRows(rows [][]string, header, labelColumn bool) (*table, error) {
	if header && len(rows) > 0 {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, errNoRows
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	first := 0
	if labelColumn {
		first = 1
	}
	if width <= first {
		return nil, errors.New("no value columns")
	}

	t := &table{series: make([][]float64, width-first)}
	for i := range t.series {
		t.series[i] = make([]float64, 0, len(rows))
	}
	for r, row := range rows {
		if labelColumn {
			t.labels = append(t.labels, cell(row, 0))
		}
		for col := first; col < width; col++ {
			text := cell(row, col)
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %q is not a number", r+1, col+1, text)
			}
			t.series[col-first] = append(t.series[col-first], v)
		}
	}
	return t, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func readCSV(r io.Reader, header, labelColumn bool) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromRows(rows, header, labelColumn)
}

func readCSVFile(path string, header, labelColumn bool) (*table, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("%w: open csv: %w", ggchart.ErrConfig, err)
	}
	defer f.Close()

	t, err := readCSV(f, header, labelColumn)
	if err != nil {
		return nil, fmt.Errorf("%w: csv %s: %w", ggchart.ErrConfig, path, err)
	}
	return t, nil
}

// readXLSXFile reads sheet (the first sheet when empty) of an Excel workbook.
func readXLSXFile(path, sheet string, header, labelColumn bool) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open xlsx: %w", ggchart.ErrConfig, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx %s sheet %q: %w", ggchart.ErrConfig, path, sheet, err)
	}

	t, err := fromRows(rows, header, labelColumn)
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx %s sheet %q: %w", ggchart.ErrConfig, path, sheet, err)
	}
	return t, nil
}

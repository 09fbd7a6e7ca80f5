package ggchart

import "fmt"

// drawSeries draws series i as a polyline across plot in its palette colour.
// Point j sits at plot.Left + j*plot.W/(n-1).
func drawSeries(cv Canvas, plot Rect, s Scale, i int, values Series) error {
	n := len(values)
	if n < 2 {
		return &EmptySeriesError{Series: i, Len: n}
	}

	col := SeriesColor(i)
	step := plot.W / float64(n-1)
	x0, y0 := plot.Left(), s.Y(values[0], plot.Top(), plot.Bottom())
	for j := 1; j < n; j++ {
		x1 := plot.Left() + float64(j)*step
		y1 := s.Y(values[j], plot.Top(), plot.Bottom())
		if err := cv.DrawLine(x0, y0, x1, y1, col); err != nil {
			return fmt.Errorf("series %d segment %d: %w", i, j, err)
		}
		x0, y0 = x1, y1
	}
	return nil
}

package ggchart

import (
	"fmt"
	"slices"
)

// Series is one plotted line: an ordered sequence of values.
type Series []float64

// Chart describes a line chart. Build it with New and the With methods;
// each method returns a modified copy, so a Chart value never changes once
// it has been handed to Render.
//
// Example:
//
//	c := ggchart.New(800, 400).
//		WithTitle("Demo").
//		WithXAxis(ggchart.NewXAxis("Day", ggchart.TextLabels("a", "b", "c"), "")).
//		AddSeries(1, 2, 3).
//		AddSeries(3, 2, 1)
//	err := c.Render("demo.png")
type Chart struct {
	Width  int
	Height int
	Title  string
	XAxis  *XAxis
	YAxis  *YAxis
	Series []Series
}

// New returns an empty chart of the given pixel dimensions.
func New(width, height int) Chart {
	return Chart{Width: width, Height: height}
}

// WithDimensions returns a copy of c with new pixel dimensions.
func (c Chart) WithDimensions(width, height int) Chart {
	c.Width, c.Height = width, height
	return c
}

// WithTitle returns a copy of c with a title.
func (c Chart) WithTitle(title string) Chart {
	c.Title = title
	return c
}

// WithXAxis returns a copy of c with the X axis configured.
func (c Chart) WithXAxis(a XAxis) Chart {
	a.Labels = slices.Clone(a.Labels)
	c.XAxis = &a
	return c
}

// WithYAxis returns a copy of c with the Y axis configured.
func (c Chart) WithYAxis(a YAxis) Chart {
	c.YAxis = &a
	return c
}

// WithAxis returns a copy of c with the given axis configured.
// A nil axis leaves c unchanged.
func (c Chart) WithAxis(a AxisConfig) Chart {
	switch a := a.(type) {
	case XAxis:
		return c.WithXAxis(a)
	case *XAxis:
		if a != nil {
			return c.WithXAxis(*a)
		}
	case YAxis:
		return c.WithYAxis(a)
	case *YAxis:
		if a != nil {
			return c.WithYAxis(*a)
		}
	}
	return c
}

// AddSeries returns a copy of c with one more series appended.
// Series are drawn, and coloured, in the order they are added.
func (c Chart) AddSeries(values ...float64) Chart {
	series := make([]Series, len(c.Series), len(c.Series)+1)
	copy(series, c.Series)
	c.Series = append(series, slices.Clone(Series(values)))
	return c
}

// Len returns the number of points per series, or 0 without series.
func (c Chart) Len() int {
	if len(c.Series) == 0 {
		return 0
	}
	return len(c.Series[0])
}

// Validate checks the chart before anything is drawn.
func (c Chart) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrConfig, c.Width, c.Height)
	}
	if len(c.Series) == 0 {
		return fmt.Errorf("%w: no series", ErrConfig)
	}

	n := c.Len()
	for i, s := range c.Series {
		if len(s) != n {
			return &ShapeMismatchError{Series: i, Len: len(s), Want: n}
		}
	}
	if err := checkFinite(c.Series); err != nil {
		return err
	}
	if c.XAxis != nil && len(c.XAxis.Labels) != n {
		return &ShapeMismatchError{Series: 0, Len: n, Want: len(c.XAxis.Labels), Labels: true}
	}
	if n < 2 {
		return &EmptySeriesError{Series: 0, Len: n}
	}
	return nil
}

// checkFinite rejects NaN and infinite values, which have no position on
// the value axis.
func checkFinite(series []Series) error {
	for i, values := range series {
		for j, v := range values {
			if !isFinite(v) {
				return fmt.Errorf("%w: series %d value %d is %v", ErrConfig, i, j, v)
			}
		}
	}
	return nil
}

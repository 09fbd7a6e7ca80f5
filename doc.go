// Package ggchart renders multi-series line charts to PNG images.
//
// # Overview
//
// ggchart is a small charting primitive built on the gg 2D graphics
// library. A Chart holds the image size, an optional title, optional axis
// configuration and one or more series of equal length. Render draws the
// chart on a white background with black axes and text, and one coloured
// polyline per series.
//
// # Quick Start
//
//	import "github.com/gogpu/ggchart"
//
//	c := ggchart.New(800, 400).
//		WithTitle("Demo").
//		WithXAxis(ggchart.NewXAxis("Day", ggchart.TextLabels("a", "b", "c", "d", "e"), "")).
//		WithYAxis(ggchart.NewYAxis("Value").WithMin(0)).
//		AddSeries(1, 2, 3, 4, 5).
//		AddSeries(5, 4, 3, 2, 1)
//
//	if err := c.Render("demo.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Axes
//
// The value (Y) axis always carries YTickCount ticks (10 by default) at
// Min + i*(Max-Min)/10. Its domain is the minimum and maximum over all
// series unless YAxis.Min or YAxis.Max override them. Larger values are
// drawn higher.
//
// The category (X) axis is drawn only when configured. Its labels are
// thinned by an XTickPlanner; the default Log10Planner ticks every label up
// to 99 labels and fewer beyond that. Time labels are formatted with the
// axis DateFormat, a Go reference-time layout.
//
// # Colours
//
// Series are coloured by position from a fixed palette: blue, red, green,
// then repeating. The same chart always renders to the same bytes.
//
// # Errors
//
// Invalid charts are rejected before anything is drawn. Errors match the
// sentinels ErrConfig, ErrShapeMismatch, ErrDegenerateScale,
// ErrDegenerateAxis, ErrLayout, ErrEmptySeries and ErrIO with errors.Is.
//
// # Concurrency
//
// A Chart is an immutable value and Render keeps no state between calls,
// so independent charts may be rendered concurrently.
package ggchart

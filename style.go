package ggchart

import "github.com/gogpu/gg"

// Style holds the fixed layout constants used while rendering.
// The zero value is not usable; start from DefaultStyle.
type Style struct {
	// Margin is the empty border kept on all four sides of the canvas.
	Margin float64

	// Spacing separates neighbouring elements (title and plot, labels and ticks).
	Spacing float64

	// TickLength is the length of axis tick marks.
	TickLength float64

	// TitleFontSize is the title size in points.
	TitleFontSize float64

	// LabelFontSize is the size of tick labels and axis names in points.
	LabelFontSize float64

	// LineWidth is the stroke width of axes and series.
	LineWidth float64

	// YTickCount is the number of ticks on the value axis.
	YTickCount int
}

// DefaultStyle returns the style used when none is supplied.
func DefaultStyle() Style {
	return Style{
		Margin:        10,
		Spacing:       10,
		TickLength:    5,
		TitleFontSize: 16,
		LabelFontSize: 11,
		LineWidth:     1,
		YTickCount:    10,
	}
}

// Colors used for everything that is not a series.
var (
	Background = gg.White
	Foreground = gg.Black
)

// Palette is the fixed series colour cycle: blue, red, green.
var Palette = [3]gg.RGBA{
	gg.RGB(0, 0, 1),
	gg.RGB(1, 0, 0),
	gg.RGB(0, 1, 0),
}

// SeriesColor returns the palette colour for the series at index i.
func SeriesColor(i int) gg.RGBA {
	return Palette[i%len(Palette)]
}

package ggchart

import (
	"github.com/gogpu/gg/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RenderOption configures a single render.
//
// Example:
//
//	// Default style, Go Regular font, plain tick labels
//	err := c.Render("chart.png")
//
//	// German number formatting on the value axis
//	err := c.Render("chart.png", ggchart.WithLocale(language.German))
type RenderOption func(*renderOptions)

type renderOptions struct {
	style   Style
	planner XTickPlanner
	dates   DateFormatter
	font    *text.FontSource
	printer *message.Printer
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		style:   DefaultStyle(),
		planner: Log10Planner{},
		dates:   TimeLayoutFormatter{},
	}
}

func newRenderOptions(opts []RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStyle replaces the layout constants.
func WithStyle(s Style) RenderOption {
	return func(o *renderOptions) {
		o.style = s
	}
}

// WithXTickPlanner replaces the X axis tick selection heuristic.
// Nil restores Log10Planner.
func WithXTickPlanner(p XTickPlanner) RenderOption {
	return func(o *renderOptions) {
		if p == nil {
			p = Log10Planner{}
		}
		o.planner = p
	}
}

// WithDateFormatter replaces the formatter used for time labels.
// Nil restores TimeLayoutFormatter in UTC.
func WithDateFormatter(f DateFormatter) RenderOption {
	return func(o *renderOptions) {
		if f == nil {
			f = TimeLayoutFormatter{}
		}
		o.dates = f
	}
}

// WithFontSource sets the font used for all text. The source is not closed
// by the chart. Without this option DefaultFontSource is used.
func WithFontSource(s *text.FontSource) RenderOption {
	return func(o *renderOptions) {
		o.font = s
	}
}

// WithLocale formats Y tick values for the given language, e.g. with
// digit grouping and a locale decimal separator.
func WithLocale(tag language.Tag) RenderOption {
	return func(o *renderOptions) {
		o.printer = message.NewPrinter(tag)
	}
}

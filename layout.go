package ggchart

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Rect is a pixel rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Left returns the x of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre of the rectangle.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Layout holds the pixel regions of one render.
type Layout struct {
	// Title is the top-left corner of the title text.
	Title Point

	// YAxis is the column left of the plot holding ticks, labels and the axis name.
	YAxis Rect

	// XAxis is the row below the plot holding ticks, labels and the axis name.
	XAxis Rect

	// Plot is the area series are drawn in. Its left and bottom edges are the axes.
	Plot Rect
}

// ComputeLayout places the title, axis regions and plot area on a
// c.Width x c.Height canvas. yLabels are the Y tick labels; the widest one
// sizes the Y axis column.
func ComputeLayout(c Chart, st Style, m TextMeasurer, yLabels []string) (Layout, error) {
	w, h := float64(c.Width), float64(c.Height)
	var l Layout

	top := st.Margin
	if c.Title != "" {
		titleWidth := m.MeasureText(st.TitleFontSize, c.Title)
		l.Title = Point{X: (w - titleWidth) / 2, Y: st.Margin}
		top += m.TextHeight(st.TitleFontSize) + st.Spacing
	}

	labelHeight := m.TextHeight(st.LabelFontSize)

	var labelWidth float64
	for _, s := range yLabels {
		labelWidth = max(labelWidth, m.MeasureText(st.LabelFontSize, s))
	}
	yWidth := labelWidth + st.TickLength + st.Spacing
	if c.YAxis != nil && c.YAxis.Name != "" {
		yWidth += labelHeight + st.Spacing
	}

	var xHeight float64
	if c.XAxis != nil {
		xHeight = st.TickLength + labelHeight + st.Spacing
		if c.XAxis.Name != "" {
			xHeight += labelHeight + st.Spacing
		}
	}

	left := st.Margin + yWidth
	bottom := h - st.Margin - xHeight
	l.Plot = Rect{X: left, Y: top, W: w - st.Margin - left, H: bottom - top}
	if l.Plot.W <= 0 || l.Plot.H <= 0 {
		return Layout{}, &LayoutError{Width: l.Plot.W, Height: l.Plot.H}
	}

	l.YAxis = Rect{X: st.Margin, Y: top, W: yWidth, H: l.Plot.H}
	l.XAxis = Rect{X: left, Y: bottom, W: l.Plot.W, H: xHeight}
	return l, nil
}

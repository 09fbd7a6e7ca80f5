package ggchart

import (
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// TextMeasurer reports text extents at a font size in points.
type TextMeasurer interface {
	// MeasureText returns the horizontal advance of s.
	MeasureText(size float64, s string) float64

	// TextHeight returns the line height of the font.
	TextHeight(size float64) float64
}

// Canvas is the raster surface a chart is drawn on.
//
// Text positions are the top-left corner of the text box. Vertical text
// reads bottom to top; its position is the bottom-left corner of the
// rotated box.
type Canvas interface {
	TextMeasurer

	Width() int
	Height() int

	Fill(c gg.RGBA)
	DrawLine(x1, y1, x2, y2 float64, c gg.RGBA) error
	DrawText(x, y, size float64, s string, c gg.RGBA)
	DrawTextVertical(x, y, size float64, s string, c gg.RGBA)

	// EncodePNG writes the canvas as a PNG image.
	EncodePNG(w io.Writer) error

	// Close releases the canvas. It is safe to call more than once.
	Close() error
}

// ggCanvas implements Canvas on a gg drawing context.
type ggCanvas struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[float64]text.Face
}

// NewCanvas returns a Canvas backed by a software gg context of the given
// size. Text is drawn with faces from source; lineWidth is used for lines.
func NewCanvas(width, height int, source *text.FontSource, lineWidth float64) Canvas {
	dc := gg.NewContext(width, height)
	dc.SetLineWidth(lineWidth)
	dc.SetLineCap(gg.LineCapButt)
	return &ggCanvas{
		dc:     dc,
		source: source,
		faces:  make(map[float64]text.Face),
	}
}

func (c *ggCanvas) Width() int  { return c.dc.Width() }
func (c *ggCanvas) Height() int { return c.dc.Height() }

func (c *ggCanvas) face(size float64) text.Face {
	f, ok := c.faces[size]
	if !ok {
		f = c.source.Face(size)
		c.faces[size] = f
	}
	return f
}

func (c *ggCanvas) MeasureText(size float64, s string) float64 {
	w, _ := text.Measure(s, c.face(size))
	return w
}

func (c *ggCanvas) TextHeight(size float64) float64 {
	return c.face(size).Metrics().LineHeight()
}

func (c *ggCanvas) Fill(col gg.RGBA) {
	c.dc.ClearWithColor(col)
}

func (c *ggCanvas) DrawLine(x1, y1, x2, y2 float64, col gg.RGBA) error {
	c.dc.SetColor(col.Color())
	c.dc.DrawLine(x1, y1, x2, y2)
	return c.dc.Stroke()
}

func (c *ggCanvas) DrawText(x, y, size float64, s string, col gg.RGBA) {
	f := c.face(size)
	c.dc.SetFont(f)
	c.dc.SetColor(col.Color())
	c.dc.DrawString(s, x, y+f.Metrics().Ascent)
}

func (c *ggCanvas) DrawTextVertical(x, y, size float64, s string, col gg.RGBA) {
	f := c.face(size)
	c.dc.SetFont(f)
	c.dc.SetColor(col.Color())
	c.dc.Push()
	c.dc.RotateAbout(-math.Pi/2, x, y)
	c.dc.DrawString(s, x, y+f.Metrics().Ascent)
	c.dc.Pop()
}

func (c *ggCanvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *ggCanvas) Close() error {
	return c.dc.Close()
}

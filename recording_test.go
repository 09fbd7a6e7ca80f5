package ggchart

import (
	"io"

	"github.com/gogpu/gg"
)

type lineOp struct {
	x1, y1, x2, y2 float64
	col            gg.RGBA
}

type textOp struct {
	x, y     float64
	size     float64
	s        string
	vertical bool
}

// recordingCanvas captures drawing operations instead of rasterizing them.
// Text is measured as 0.6 em per byte with a 1.2 em line height.
type recordingCanvas struct {
	w, h   int
	fill   []gg.RGBA
	lines  []lineOp
	texts  []textOp
	closed bool
}

func newRecordingCanvas(w, h int) *recordingCanvas {
	return &recordingCanvas{w: w, h: h}
}

func (r *recordingCanvas) Width() int  { return r.w }
func (r *recordingCanvas) Height() int { return r.h }

func (r *recordingCanvas) MeasureText(size float64, s string) float64 {
	return float64(len(s)) * size * 0.6
}

func (r *recordingCanvas) TextHeight(size float64) float64 { return size * 1.2 }

func (r *recordingCanvas) Fill(c gg.RGBA) { r.fill = append(r.fill, c) }

func (r *recordingCanvas) DrawLine(x1, y1, x2, y2 float64, c gg.RGBA) error {
	r.lines = append(r.lines, lineOp{x1, y1, x2, y2, c})
	return nil
}

func (r *recordingCanvas) DrawText(x, y, size float64, s string, _ gg.RGBA) {
	r.texts = append(r.texts, textOp{x: x, y: y, size: size, s: s})
}

func (r *recordingCanvas) DrawTextVertical(x, y, size float64, s string, _ gg.RGBA) {
	r.texts = append(r.texts, textOp{x: x, y: y, size: size, s: s, vertical: true})
}

func (r *recordingCanvas) EncodePNG(io.Writer) error { return nil }

func (r *recordingCanvas) Close() error {
	r.closed = true
	return nil
}

// linesIn returns the recorded lines drawn in col, in order.
func (r *recordingCanvas) linesIn(col gg.RGBA) []lineOp {
	var out []lineOp
	for _, l := range r.lines {
		if l.col == col {
			out = append(out, l)
		}
	}
	return out
}

func (r *recordingCanvas) hasText(s string) bool {
	for _, t := range r.texts {
		if t.s == s {
			return true
		}
	}
	return false
}

func (r *recordingCanvas) empty() bool {
	return len(r.fill) == 0 && len(r.lines) == 0 && len(r.texts) == 0
}

package ggchart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// plan is everything computed before the first pixel is drawn.
type plan struct {
	chart   Chart
	style   Style
	scale   Scale
	layout  Layout
	yValues []float64
	yLabels []string
	xTicks  []int
	xLabels []string
}

func (c Chart) plan(m TextMeasurer, o renderOptions) (*plan, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if o.style.YTickCount < 1 {
		return nil, fmt.Errorf("%w: y tick count %d", ErrConfig, o.style.YTickCount)
	}

	var lo, hi *float64
	if c.YAxis != nil {
		lo, hi = c.YAxis.Min, c.YAxis.Max
	}
	s, err := NewScale(c.Series, lo, hi)
	if err != nil {
		return nil, err
	}

	p := &plan{chart: c, style: o.style, scale: s}
	p.yValues = YTicks(s, o.style.YTickCount)
	p.yLabels = make([]string, len(p.yValues))
	for i, v := range p.yValues {
		p.yLabels[i] = formatValue(snapZero(v, s.Span()), o.printer)
	}

	if c.XAxis != nil {
		p.xTicks, err = o.planner.PlanX(len(c.XAxis.Labels))
		if err != nil {
			return nil, err
		}
		if len(p.xTicks) < 2 {
			return nil, &DegenerateAxisError{Labels: len(c.XAxis.Labels), Ticks: len(p.xTicks)}
		}
		p.xLabels = make([]string, len(p.xTicks))
		for k, idx := range p.xTicks {
			if idx < 0 || idx >= len(c.XAxis.Labels) {
				return nil, fmt.Errorf("%w: x tick %d selects label %d of %d", ErrConfig, k, idx, len(c.XAxis.Labels))
			}
			p.xLabels[k] = c.XAxis.labelText(idx, o.dates)
		}
	}

	p.layout, err = ComputeLayout(c, o.style, m, p.yLabels)
	if err != nil {
		return nil, err
	}

	Logger().Debug("ggchart: planned",
		"size", fmt.Sprintf("%dx%d", c.Width, c.Height),
		"series", len(c.Series),
		"points", c.Len(),
		"min", s.Min,
		"max", s.Max,
		"plot", p.layout.Plot,
		"xticks", len(p.xTicks))
	return p, nil
}

func (p *plan) draw(cv Canvas) error {
	cv.Fill(Background)

	if p.chart.Title != "" {
		cv.DrawText(p.layout.Title.X, p.layout.Title.Y, p.style.TitleFontSize, p.chart.Title, Foreground)
	}
	if err := p.drawYAxis(cv); err != nil {
		return err
	}
	if err := p.drawXAxis(cv); err != nil {
		return err
	}
	for i, values := range p.chart.Series {
		if err := drawSeries(cv, p.layout.Plot, p.scale, i, values); err != nil {
			return err
		}
	}
	return nil
}

func (p *plan) drawYAxis(cv Canvas) error {
	st, plot := p.style, p.layout.Plot
	if err := cv.DrawLine(plot.Left(), plot.Top(), plot.Left(), plot.Bottom(), Foreground); err != nil {
		return err
	}

	labelHeight := cv.TextHeight(st.LabelFontSize)
	for i, v := range p.yValues {
		y := p.scale.Y(v, plot.Top(), plot.Bottom())
		if err := cv.DrawLine(plot.Left()-st.TickLength, y, plot.Left(), y, Foreground); err != nil {
			return err
		}
		label := p.yLabels[i]
		x := plot.Left() - st.TickLength - st.Spacing/2 - cv.MeasureText(st.LabelFontSize, label)
		cv.DrawText(x, y-labelHeight/2, st.LabelFontSize, label, Foreground)
	}

	if a := p.chart.YAxis; a != nil && a.Name != "" {
		nameWidth := cv.MeasureText(st.LabelFontSize, a.Name)
		cv.DrawTextVertical(p.layout.YAxis.Left(), plot.Center().Y+nameWidth/2, st.LabelFontSize, a.Name, Foreground)
	}
	return nil
}

func (p *plan) drawXAxis(cv Canvas) error {
	st, plot := p.style, p.layout.Plot
	if err := cv.DrawLine(plot.Left(), plot.Bottom(), plot.Right(), plot.Bottom(), Foreground); err != nil {
		return err
	}

	a := p.chart.XAxis
	if a == nil {
		return nil
	}

	labelHeight := cv.TextHeight(st.LabelFontSize)
	spacing := plot.W / float64(len(p.xTicks)-1)
	for k, label := range p.xLabels {
		x := plot.Left() + float64(k)*spacing
		if err := cv.DrawLine(x, plot.Bottom(), x, plot.Bottom()+st.TickLength, Foreground); err != nil {
			return err
		}
		w := cv.MeasureText(st.LabelFontSize, label)
		cv.DrawText(x-w/2, plot.Bottom()+st.TickLength+st.Spacing/2, st.LabelFontSize, label, Foreground)
	}

	if a.Name != "" {
		nameWidth := cv.MeasureText(st.LabelFontSize, a.Name)
		y := plot.Bottom() + st.TickLength + labelHeight + st.Spacing + st.Spacing/2
		cv.DrawText(plot.Center().X-nameWidth/2, y, st.LabelFontSize, a.Name, Foreground)
	}
	return nil
}

// Draw validates c and draws it on cv. Nothing is drawn when validation,
// scaling, tick planning or layout fails.
func (c Chart) Draw(cv Canvas, opts ...RenderOption) error {
	p, err := c.plan(cv, newRenderOptions(opts))
	if err != nil {
		return err
	}
	return p.draw(cv)
}

// RenderTo renders c and writes it to w as a PNG image.
// Nothing is written to w when rendering fails.
func (c Chart) RenderTo(w io.Writer, opts ...RenderOption) error {
	data, err := c.encode(newRenderOptions(opts))
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// Render renders c and writes it to path as a PNG image.
//
// The image is composed and encoded in memory, then written to a temporary
// file next to path and renamed into place, so path is never left holding
// a partial image.
func (c Chart) Render(path string, opts ...RenderOption) error {
	data, err := c.encode(newRenderOptions(opts))
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	Logger().Debug("ggchart: rendered", "path", path, "bytes", len(data))
	return nil
}

// encode draws c on a fresh gg canvas and returns the PNG bytes.
func (c Chart) encode(o renderOptions) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	source := o.font
	if source == nil {
		var err error
		if source, err = DefaultFontSource(); err != nil {
			return nil, fmt.Errorf("%w: load default font: %w", ErrConfig, err)
		}
	}

	cv := NewCanvas(c.Width, c.Height, source, o.style.LineWidth)
	defer func() {
		if err := cv.Close(); err != nil {
			Logger().Warn("ggchart: close canvas", "error", err)
		}
	}()

	p, err := c.plan(cv, o)
	if err != nil {
		return nil, err
	}
	if err := p.draw(cv); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := cv.EncodePNG(&buf); err != nil {
		return nil, &IOError{Op: "encode", Err: err}
	}
	return buf.Bytes(), nil
}

// writeFileAtomic writes data to a uniquely named file in path's directory
// and renames it over path. The temporary file is removed on failure.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.Remove(tmp); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			Logger().Warn("ggchart: remove temporary file", "path", tmp, "error", rmErr)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	if err = f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err = os.Rename(tmp, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

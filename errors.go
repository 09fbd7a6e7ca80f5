package ggchart

import (
	"errors"
	"fmt"
)

// Sentinel errors for chart rendering. Every error returned by this package
// matches one of them with errors.Is.
var (
	// ErrConfig is returned when the chart is missing required configuration,
	// such as series data or positive dimensions.
	ErrConfig = errors.New("ggchart: invalid configuration")

	// ErrShapeMismatch is returned when series lengths disagree with each
	// other or with the X axis label count.
	ErrShapeMismatch = errors.New("ggchart: series shape mismatch")

	// ErrDegenerateScale is returned when the value domain is empty.
	ErrDegenerateScale = errors.New("ggchart: degenerate value scale")

	// ErrDegenerateAxis is returned when the X axis cannot be given at least two ticks.
	ErrDegenerateAxis = errors.New("ggchart: degenerate axis")

	// ErrLayout is returned when the canvas cannot fit the margins and axis regions.
	ErrLayout = errors.New("ggchart: canvas too small")

	// ErrEmptySeries is returned when a series has fewer than two points.
	ErrEmptySeries = errors.New("ggchart: series needs at least two points")

	// ErrIO is returned when the image cannot be encoded or written.
	ErrIO = errors.New("ggchart: i/o failure")
)

// ShapeMismatchError reports a series whose length differs from the expected one.
// Want is the length of the first series, or the X label count.
type ShapeMismatchError struct {
	Series int
	Len    int
	Want   int
	Labels bool
}

func (e *ShapeMismatchError) Error() string {
	if e.Labels {
		return fmt.Sprintf("ggchart: series %d has %d points, x axis has %d labels", e.Series, e.Len, e.Want)
	}
	return fmt.Sprintf("ggchart: series %d has %d points, want %d", e.Series, e.Len, e.Want)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// DegenerateScaleError reports an effective value domain with no extent.
type DegenerateScaleError struct {
	Min, Max float64
}

func (e *DegenerateScaleError) Error() string {
	return fmt.Sprintf("ggchart: value domain [%g, %g] is empty", e.Min, e.Max)
}

func (e *DegenerateScaleError) Unwrap() error { return ErrDegenerateScale }

// DegenerateAxisError reports an X axis whose tick plan has fewer than two ticks.
type DegenerateAxisError struct {
	Labels int
	Ticks  int
}

func (e *DegenerateAxisError) Error() string {
	return fmt.Sprintf("ggchart: %d labels yield %d ticks, need at least 2", e.Labels, e.Ticks)
}

func (e *DegenerateAxisError) Unwrap() error { return ErrDegenerateAxis }

// LayoutError reports the plot area size left after reserving fixed regions.
type LayoutError struct {
	Width, Height float64
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("ggchart: plot area %.0fx%.0f has no room to draw", e.Width, e.Height)
}

func (e *LayoutError) Unwrap() error { return ErrLayout }

// EmptySeriesError reports a series with too few points to draw a line.
type EmptySeriesError struct {
	Series int
	Len    int
}

func (e *EmptySeriesError) Error() string {
	return fmt.Sprintf("ggchart: series %d has %d points, need at least 2", e.Series, e.Len)
}

func (e *EmptySeriesError) Unwrap() error { return ErrEmptySeries }

// IOError wraps a failure to encode or persist the rendered image.
// It matches both ErrIO and the underlying cause.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("ggchart: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("ggchart: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }

package ggchart

import (
	"fmt"
	"math"
)

// Scale is the value domain mapped onto the vertical axis.
type Scale struct {
	Min, Max float64
}

// NewScale computes the value domain of series. The sampled extremes are
// taken over every value of every series; lo and hi, when non-nil,
// replace them independently.
func NewScale(series []Series, lo, hi *float64) (Scale, error) {
	if len(series) == 0 {
		return Scale{}, fmt.Errorf("%w: no series", ErrConfig)
	}

	if err := checkFinite(series); err != nil {
		return Scale{}, err
	}

	var s Scale
	for i, values := range series {
		if len(values) == 0 {
			return Scale{}, fmt.Errorf("%w: series %d is empty", ErrConfig, i)
		}
		for j, v := range values {
			if (i == 0 && j == 0) || v < s.Min {
				s.Min = v
			}
			if (i == 0 && j == 0) || v > s.Max {
				s.Max = v
			}
		}
	}

	if lo != nil {
		s.Min = *lo
	}
	if hi != nil {
		s.Max = *hi
	}
	if !isFinite(s.Min) || !isFinite(s.Max) || !isFinite(s.Max-s.Min) {
		return Scale{}, fmt.Errorf("%w: value bounds [%v, %v] must have a finite span", ErrConfig, s.Min, s.Max)
	}
	// Reversed bounds are rejected as well.
	if s.Min >= s.Max {
		return Scale{}, &DegenerateScaleError{Min: s.Min, Max: s.Max}
	}
	return s, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Span returns Max - Min.
func (s Scale) Span() float64 {
	return s.Max - s.Min
}

// Y maps v to a pixel row between top and bottom. Larger values map to
// smaller rows, so they render higher.
func (s Scale) Y(v, top, bottom float64) float64 {
	pct := (v - s.Min) / (s.Max - s.Min)
	return bottom - pct*(bottom-top)
}

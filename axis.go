package ggchart

import "strconv"

// AxisConfig is the configuration of one chart axis.
// It is implemented only by XAxis and YAxis.
type AxisConfig interface {
	// AxisName returns the display name drawn next to the axis.
	AxisName() string

	axisConfig()
}

// Label is a single X axis label: either literal text or a Unix timestamp.
type Label struct {
	text   string
	unix   int64
	isTime bool
}

// TextLabel returns a label drawn verbatim.
func TextLabel(s string) Label {
	return Label{text: s}
}

// TimeLabel returns a label holding a Unix timestamp in seconds.
// It is formatted with the axis date format when one is set.
func TimeLabel(unix int64) Label {
	return Label{unix: unix, isTime: true}
}

// TextLabels converts strings into text labels.
func TextLabels(ss ...string) []Label {
	labels := make([]Label, len(ss))
	for i, s := range ss {
		labels[i] = TextLabel(s)
	}
	return labels
}

// TimeLabels converts Unix timestamps into time labels.
func TimeLabels(ts ...int64) []Label {
	labels := make([]Label, len(ts))
	for i, t := range ts {
		labels[i] = TimeLabel(t)
	}
	return labels
}

// IsTime reports whether the label holds a timestamp.
func (l Label) IsTime() bool { return l.isTime }

// Unix returns the timestamp of a time label, or 0 for text labels.
func (l Label) Unix() int64 { return l.unix }

// String returns the literal label text. Timestamps print as integers.
func (l Label) String() string {
	if l.isTime {
		return strconv.FormatInt(l.unix, 10)
	}
	return l.text
}

// XAxis configures the category axis.
type XAxis struct {
	Name   string
	Labels []Label

	// DateFormat is a Go reference-time layout applied to time labels.
	// Text labels ignore it.
	DateFormat string
}

// NewXAxis returns an X axis configuration. dateFormat may be empty.
func NewXAxis(name string, labels []Label, dateFormat string) XAxis {
	return XAxis{Name: name, Labels: labels, DateFormat: dateFormat}
}

// AxisName implements AxisConfig.
func (a XAxis) AxisName() string { return a.Name }

func (XAxis) axisConfig() {}

// labelText returns the display text of label i.
func (a XAxis) labelText(i int, dates DateFormatter) string {
	l := a.Labels[i]
	if l.isTime && a.DateFormat != "" {
		return dates.FormatTimestamp(l.unix, a.DateFormat)
	}
	return l.String()
}

// YAxis configures the value axis. Min and Max override the sampled
// extremes independently when non-nil.
type YAxis struct {
	Name string
	Min  *float64
	Max  *float64
}

// NewYAxis returns a Y axis with no explicit bounds.
func NewYAxis(name string) YAxis {
	return YAxis{Name: name}
}

// WithMin returns a copy of the axis with an explicit lower bound.
func (a YAxis) WithMin(v float64) YAxis {
	a.Min = &v
	return a
}

// WithMax returns a copy of the axis with an explicit upper bound.
func (a YAxis) WithMax(v float64) YAxis {
	a.Max = &v
	return a
}

// AxisName implements AxisConfig.
func (a YAxis) AxisName() string { return a.Name }

func (YAxis) axisConfig() {}

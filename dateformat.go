package ggchart

import "time"

// DateFormatter turns a Unix timestamp into label text using a pattern.
// It is only consulted for time labels on an X axis with a date format.
type DateFormatter interface {
	FormatTimestamp(unix int64, pattern string) string
}

// DateFormatterFunc adapts a function to DateFormatter.
type DateFormatterFunc func(unix int64, pattern string) string

// FormatTimestamp implements DateFormatter.
func (f DateFormatterFunc) FormatTimestamp(unix int64, pattern string) string {
	return f(unix, pattern)
}

// TimeLayoutFormatter formats timestamps with Go reference-time layouts
// such as "2006-01-02" or time.Kitchen.
type TimeLayoutFormatter struct {
	// Location is the zone labels are shown in. Nil means UTC.
	Location *time.Location
}

// FormatTimestamp implements DateFormatter.
func (f TimeLayoutFormatter) FormatTimestamp(unix int64, pattern string) string {
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(unix, 0).In(loc).Format(pattern)
}

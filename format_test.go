package ggchart

import (
	"math"
	"slices"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{-2.5, "-2.5"},
		{0.1 + 0.2, "0.3"},
		{1234567, "1234567"},
		{-1e-9, "-1e-09"},
		{1e-7, "1e-07"},
		{1.2e-7, "1.2e-07"},
		{1e300, "1e+300"},
		{1.5e303, "1.5e+303"},
		{math.Copysign(0, -1), "0"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.v, nil); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestSnapZero(t *testing.T) {
	if got := snapZero(5.551115123125783e-17, 0.6); got != 0 {
		t.Errorf("snapZero(residue) = %v, want 0", got)
	}
	if got := snapZero(1e-7, 2e-7); got != 1e-7 {
		t.Errorf("snapZero(1e-7) = %v, want unchanged", got)
	}
}

// TestYLabelsMagnitude tests that tick labels stay distinct and finite for
// very small and very large domains.
func TestYLabelsMagnitude(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"small", []float64{1e-7, 2e-7, 3e-7}},
		{"large", []float64{1e300, 1.5e303}},
		{"around zero", []float64{-0.3, 0.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(400, 300).AddSeries(tt.values...)
			rec := newRecordingCanvas(c.Width, c.Height)
			p, err := c.plan(rec, newRenderOptions(nil))
			if err != nil {
				t.Fatalf("plan: %v", err)
			}

			sorted := slices.Clone(p.yLabels)
			slices.Sort(sorted)
			if len(slices.Compact(sorted)) != len(p.yLabels) {
				t.Errorf("duplicate labels: %q", p.yLabels)
			}
			for _, l := range p.yLabels {
				if strings.Contains(l, "Inf") || strings.Contains(l, "NaN") || len(l) > 20 {
					t.Errorf("bad label %q in %q", l, p.yLabels)
				}
			}
		})
	}
}

func TestFormatValueLocale(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		v    float64
		want string
	}{
		{language.English, 1234.5, "1,234.5"},
		{language.German, 1234.5, "1.234,5"},
		{language.English, 0.000123456, "0.000123456"},
		{language.German, 1e-7, "1e-07"},
		{language.English, 1e300, "1e+300"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.v, message.NewPrinter(tt.tag)); got != tt.want {
			t.Errorf("formatValue(%v, %v) = %q, want %q", tt.v, tt.tag, got, tt.want)
		}
	}
}

func TestTimeLayoutFormatter(t *testing.T) {
	f := TimeLayoutFormatter{}
	if got := f.FormatTimestamp(0, time.RFC3339); got != "1970-01-01T00:00:00Z" {
		t.Errorf("UTC = %q", got)
	}

	f.Location = time.FixedZone("plus2", 2*60*60)
	if got := f.FormatTimestamp(0, "15:04"); got != "02:00" {
		t.Errorf("fixed zone = %q, want 02:00", got)
	}

	custom := DateFormatterFunc(func(unix int64, pattern string) string { return pattern })
	if got := custom.FormatTimestamp(1, "p"); got != "p" {
		t.Errorf("DateFormatterFunc = %q", got)
	}
}

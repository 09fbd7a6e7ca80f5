package ggchart

import (
	"math"
	"strconv"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// significantDigits bounds tick label precision so accumulated float error
// (0.30000000000000004) does not leak into labels.
const significantDigits = 12

// Localized labels fall back to plain formatting outside this magnitude
// range, where grouped decimal notation would be unreadable.
const (
	minLocaleMagnitude = 1e-6
	maxLocaleMagnitude = 1e15
)

// formatValue returns the tick label for v, keeping significantDigits
// significant digits. With a printer the number is localized; otherwise it
// is printed plainly, switching to exponent notation for very small or
// very large magnitudes.
func formatValue(v float64, p *message.Printer) string {
	if v == 0 {
		return "0" // also drops negative zero
	}
	abs := math.Abs(v)
	if p != nil && abs >= minLocaleMagnitude && abs < maxLocaleMagnitude {
		exp := int(math.Floor(math.Log10(abs)))
		digits := max(0, significantDigits-1-exp)
		return p.Sprint(number.Decimal(v, number.MaxFractionDigits(digits)))
	}
	return strconv.FormatFloat(v, 'g', significantDigits, 64)
}

// snapZero returns 0 for ticks that differ from zero only by float error
// relative to the domain span.
func snapZero(v, span float64) float64 {
	if math.Abs(v) < span*1e-9 {
		return 0
	}
	return v
}

package ggchart

// YTicks returns n evenly stepped values starting at the domain minimum:
// s.Min + i*(s.Max-s.Min)/n for i in [0, n).
func YTicks(s Scale, n int) []float64 {
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = s.Min + float64(i)*(s.Max-s.Min)/float64(n)
	}
	return ticks
}

// XTickPlanner selects which X labels get a tick.
//
// PlanX returns label indices in increasing order. The ticks are drawn at
// equal spacing across the X axis, so a planner should return indices that
// are themselves evenly spaced.
type XTickPlanner interface {
	PlanX(labels int) ([]int, error)
}

// XTickPlannerFunc adapts a function to XTickPlanner.
type XTickPlannerFunc func(labels int) ([]int, error)

// PlanX implements XTickPlanner.
func (f XTickPlannerFunc) PlanX(labels int) ([]int, error) { return f(labels) }

// Log10Planner thins X labels by a stride derived from the label count's
// order of magnitude.
//
// For L labels the stride is S = max(1, 10^(floor(log10 L) - 1)), giving
// T = floor(L/S) ticks every O = floor(L/(T-1)) labels. Up to 99 labels
// every label is ticked; 1000 labels get 10 ticks, 111 labels apart.
// Counts that are not round can leave the last tick short of the final
// label.
type Log10Planner struct{}

// PlanX implements XTickPlanner.
func (Log10Planner) PlanX(labels int) ([]int, error) {
	if labels < 1 {
		return nil, &DegenerateAxisError{Labels: labels}
	}

	stride := log10Stride(labels)
	count := labels / stride
	if count < 2 {
		return nil, &DegenerateAxisError{Labels: labels, Ticks: count}
	}

	offset := labels / (count - 1)
	indices := make([]int, count)
	for k := range indices {
		indices[k] = min(k*offset, labels-1)
	}
	return indices, nil
}

// log10Stride returns max(1, 10^(floor(log10 n) - 1)) for n >= 1,
// using integer arithmetic so round counts are exact.
func log10Stride(n int) int {
	exp := 0
	for v := n; v >= 10; v /= 10 {
		exp++
	}
	stride := 1
	for i := 1; i < exp; i++ {
		stride *= 10
	}
	return stride
}

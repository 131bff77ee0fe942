package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Metric accumulates a value over the steps of a trace.
type Metric interface {
	Name() string
	Observe(step sorting.Step)
	Value() float64
	Reset()
}

// Defaults returns a fresh set of the metrics shown next to a visualization.
func Defaults() []Metric {
	return []Metric{
		NewComparisons(),
		NewSwaps(),
		NewInserts(),
		NewWrites(),
		NewInversions(),
	}
}

// Collect feeds steps into each metric and returns the values keyed by name.
func Collect(steps []sorting.Step, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Defaults()
	}
	for _, m := range ms {
		m.Reset()
		for _, s := range steps {
			m.Observe(s)
		}
	}

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

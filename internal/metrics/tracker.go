package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Sample holds the running totals after one step of a trace.
type Sample struct {
	Comparisons int
	Swaps       int
	Inserts     int
	Inversions  int
}

// Tracker keeps running totals for a growing trace so that the totals at any
// step can be read without rescanning the history. It is not safe for
// concurrent use.
type Tracker struct {
	samples []Sample
}

func NewTracker() *Tracker { return &Tracker{} }

// Observe appends the totals after step.
func (t *Tracker) Observe(step sorting.Step) {
	var s Sample
	if n := len(t.samples); n > 0 {
		s = t.samples[n-1]
	}
	switch step.Op.Kind {
	case sorting.KindCompare:
		s.Comparisons++
	case sorting.KindSwap:
		s.Swaps++
	case sorting.KindInsert:
		s.Inserts++
	}
	s.Inversions = Count(step.Snapshot)
	t.samples = append(t.samples, s)
}

func (t *Tracker) Len() int { return len(t.samples) }

// At returns the totals after step i, clamped to the observed range.
func (t *Tracker) At(i int) Sample {
	if len(t.samples) == 0 {
		return Sample{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(t.samples) {
		i = len(t.samples) - 1
	}
	return t.samples[i]
}

// Progress is the fraction of the initial inversions removed after step i.
func (t *Tracker) Progress(i int) float64 {
	return Progress(t.At(0).Inversions, t.At(i).Inversions)
}

// Inversions returns the inversion counts for steps 0..upto.
func (t *Tracker) Inversions(upto int) []float64 {
	if upto < 0 {
		return nil
	}
	if upto >= len(t.samples) {
		upto = len(t.samples) - 1
	}
	out := make([]float64, 0, upto+1)
	for _, s := range t.samples[:upto+1] {
		out = append(out, float64(s.Inversions))
	}
	return out
}

func (t *Tracker) Reset() { t.samples = t.samples[:0] }

package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// OpCount counts steps of one operation kind.
type OpCount struct {
	name  string
	kind  sorting.Kind
	count int
}

func NewComparisons() *OpCount { return &OpCount{name: "comparisons", kind: sorting.KindCompare} }
func NewSwaps() *OpCount       { return &OpCount{name: "swaps", kind: sorting.KindSwap} }
func NewInserts() *OpCount     { return &OpCount{name: "inserts", kind: sorting.KindInsert} }

func (c *OpCount) Name() string { return c.name }

func (c *OpCount) Observe(step sorting.Step) {
	if step.Op.Kind == c.kind {
		c.count++
	}
}

func (c *OpCount) Value() float64 { return float64(c.count) }

func (c *OpCount) Reset() { c.count = 0 }

// Writes counts every step that mutated the sequence.
type Writes struct {
	count int
}

func NewWrites() *Writes { return &Writes{} }

func (w *Writes) Name() string { return "writes" }

func (w *Writes) Observe(step sorting.Step) {
	switch step.Op.Kind {
	case sorting.KindSwap, sorting.KindInsert:
		w.count++
	}
}

func (w *Writes) Value() float64 { return float64(w.count) }

func (w *Writes) Reset() { w.count = 0 }

package sorting

import (
	"slices"
	"sync"
)

// Recorder receives every step an algorithm performs. Record may be called
// from a goroutine that does not own the recorder.
type Recorder interface {
	Record(op Operation, snapshot []int)
}

// Func sorts nums in place, reporting each step to rec.
type Func func(nums []int, rec Recorder)

// Step pairs an operation with the sequence as it looked right after it.
type Step struct {
	Op       Operation
	Snapshot []int
}

type NopRecorder struct{}

func (NopRecorder) Record(Operation, []int) {}

// Trace collects steps in memory.
type Trace struct {
	mu    sync.Mutex
	steps []Step
}

func NewTrace() *Trace { return &Trace{} }

func (t *Trace) Record(op Operation, snapshot []int) {
	t.mu.Lock()
	t.steps = append(t.steps, Step{Op: op, Snapshot: snapshot})
	t.mu.Unlock()
}

func (t *Trace) Steps() []Step {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.steps)
}

// Collect runs fn on a copy of nums and returns the full history, starting
// with a Noop step holding the unsorted input.
func Collect(fn Func, nums []int) []Step {
	work := slices.Clone(nums)
	t := NewTrace()
	t.Record(Noop(), slices.Clone(work))
	fn(work, t)
	return t.Steps()
}

// emit hands rec a private copy of nums.
func emit(rec Recorder, op Operation, nums []int) {
	rec.Record(op, slices.Clone(nums))
}

func IsSorted(nums []int) bool {
	return slices.IsSorted(nums)
}

// SameElements reports whether a and b hold the same multiset of values.
func SameElements(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Inversions reports the number of out-of-order pairs in the latest observed
// snapshot. It reaches zero once the sequence is sorted.
type Inversions struct {
	last int
}

func NewInversions() *Inversions { return &Inversions{} }

func (m *Inversions) Name() string { return "inversions" }

func (m *Inversions) Observe(step sorting.Step) { m.last = Count(step.Snapshot) }

func (m *Inversions) Value() float64 { return float64(m.last) }

func (m *Inversions) Reset() { m.last = 0 }

// Progress is the fraction of the initial inversions removed so far. An input
// without inversions counts as done.
func Progress(initial, current int) float64 {
	if initial == 0 {
		return 1
	}
	return 1 - float64(current)/float64(initial)
}

// Count returns the number of pairs i < j with nums[i] > nums[j].
func Count(nums []int) int {
	if len(nums) < 2 {
		return 0
	}
	buf := make([]int, len(nums))
	work := make([]int, len(nums))
	copy(work, nums)
	return countMerge(work, buf)
}

func countMerge(a, buf []int) int {
	n := len(a)
	if n < 2 {
		return 0
	}
	mid := n / 2
	inv := countMerge(a[:mid], buf[:mid]) + countMerge(a[mid:], buf[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if a[i] <= a[j] {
			buf[k] = a[i]
			i++
		} else {
			buf[k] = a[j]
			inv += mid - i
			j++
		}
		k++
	}
	k += copy(buf[k:], a[i:mid])
	copy(buf[k:], a[j:])
	copy(a, buf[:n])
	return inv
}

package sorting

import "math"

const combShrink = 1.3

// Comb compares pairs a shrinking gap apart. It keeps passing at gap 1 until
// a pass makes no swap.
func Comb(nums []int, rec Recorder) {
	n := len(nums)
	if n < 2 {
		emit(rec, Noop(), nums)
		return
	}

	gap := n
	swapped := true
	for gap > 1 || swapped {
		gap = int(math.Floor(float64(gap) / combShrink))
		if gap < 1 {
			gap = 1
		}

		swapped = false
		for i := 0; i+gap < n; i++ {
			j := i + gap
			emit(rec, Compare(i, j), nums)
			if nums[i] > nums[j] {
				nums[i], nums[j] = nums[j], nums[i]
				emit(rec, Swap(i, j), nums)
				swapped = true
			}
		}
	}
	emit(rec, Noop(), nums)
}

package sorting

// Bubble compares adjacent pairs over passes with a shrinking bound. A pass
// without swaps ends the sort early.
func Bubble(nums []int, rec Recorder) {
	n := len(nums)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			emit(rec, Compare(j, j+1), nums)
			if nums[j] > nums[j+1] {
				nums[j], nums[j+1] = nums[j+1], nums[j]
				emit(rec, Swap(j, j+1), nums)
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	emit(rec, Noop(), nums)
}
